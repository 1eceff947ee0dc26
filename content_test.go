package flexview

import (
	"math"
	"testing"
)

func TestTextContent_SizeThatFits(t *testing.T) {
	type tc struct {
		content    *TextContent
		constraint Size
		want       Size
	}

	inf := math.Inf(1)

	tests := map[string]tc{
		"empty": {
			content:    NewTextContent(""),
			constraint: Size{Width: inf, Height: inf},
			want:       Size{},
		},
		"single line": {
			content:    NewTextContent("hello world"),
			constraint: Size{Width: inf, Height: inf},
			want:       Size{Width: 11, Height: 1},
		},
		"wraps at words": {
			content:    NewTextContent("hello world"),
			constraint: Size{Width: 8, Height: inf},
			want:       Size{Width: 5, Height: 2},
		},
		"hard newlines": {
			content:    NewTextContent("ab\nlonger\n"),
			constraint: Size{Width: inf, Height: inf},
			want:       Size{Width: 6, Height: 3},
		},
		"truncates long words": {
			content:    NewTextContent("abcdefgh"),
			constraint: Size{Width: 3, Height: inf},
			want:       Size{Width: 3, Height: 1},
		},
		"wide runes": {
			content:    NewTextContent("日本"),
			constraint: Size{Width: inf, Height: inf},
			want:       Size{Width: 4, Height: 1},
		},
		"NaN width is unconstrained": {
			content:    NewTextContent("a b c"),
			constraint: Size{Width: math.NaN(), Height: inf},
			want:       Size{Width: 5, Height: 1},
		},
		"cell metrics": {
			content:    &TextContent{Text: "abc", CellWidth: 8, LineHeight: 16},
			constraint: Size{Width: inf, Height: inf},
			want:       Size{Width: 24, Height: 16},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.content.SizeThatFits(tt.constraint); got != tt.want {
				t.Errorf("SizeThatFits(%v) = %v, want %v", tt.constraint, got, tt.want)
			}
		})
	}
}

func TestFixedContent(t *testing.T) {
	c := FixedContent{Width: 7, Height: 9}

	if got := c.SizeThatFits(Size{Width: 1, Height: 1}); got != (Size{Width: 7, Height: 9}) {
		t.Errorf("SizeThatFits() = %v, want 7x9", got)
	}
}

func TestTextContent_Lines(t *testing.T) {
	c := NewTextContent("the quick brown fox")

	got := c.Lines(10)
	want := []string{"the quick", "brown fox"}
	if len(got) != len(want) {
		t.Fatalf("Lines(10) = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Lines(10)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if got := NewTextContent("").Lines(10); got != nil {
		t.Errorf("Lines() of empty text = %q, want nil", got)
	}
}
