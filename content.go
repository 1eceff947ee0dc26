package flexview

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ContentSizer is implemented by view content that has a natural size.
// Views without content are base views and always measure to zero.
type ContentSizer interface {
	// SizeThatFits returns the natural size within constraint.
	// An unconstrained axis is passed as +Inf.
	SizeThatFits(constraint Size) Size
}

// ContentFunc adapts a function to ContentSizer.
type ContentFunc func(constraint Size) Size

// SizeThatFits calls f(constraint).
func (f ContentFunc) SizeThatFits(constraint Size) Size {
	return f(constraint)
}

// FixedContent has the same natural size under every constraint, like an image.
type FixedContent Size

// SizeThatFits returns the fixed size.
func (c FixedContent) SizeThatFits(Size) Size {
	return Size(c)
}

// TextContent is text measured on a cell grid. Lines wrap at word boundaries
// when the width is constrained.
type TextContent struct {
	Text       string
	CellWidth  float64 // Points per terminal cell horizontally
	LineHeight float64 // Points per line
}

// NewTextContent returns text content using one point per cell and per line.
func NewTextContent(text string) *TextContent {
	return &TextContent{Text: text, CellWidth: 1, LineHeight: 1}
}

// SizeThatFits wraps the text to the constrained width and returns its extent.
func (t *TextContent) SizeThatFits(constraint Size) Size {
	lines := t.Lines(constraint.Width)
	if len(lines) == 0 {
		return Size{}
	}
	cell, line := t.metrics()

	widest := 0
	for _, l := range lines {
		widest = max(widest, runewidth.StringWidth(l))
	}
	return Size{
		Width:  float64(widest) * cell,
		Height: float64(len(lines)) * line,
	}
}

// Lines returns the text wrapped to width points. +Inf or NaN leaves it unwrapped.
func (t *TextContent) Lines(width float64) []string {
	if t.Text == "" {
		return nil
	}
	cell, _ := t.metrics()

	maxCells := math.MaxInt
	if !math.IsInf(width, 1) && !math.IsNaN(width) {
		maxCells = max(1, int(width/cell))
	}
	return t.wrap(maxCells)
}

func (t *TextContent) metrics() (cell, line float64) {
	cell, line = t.CellWidth, t.LineHeight
	if cell <= 0 {
		cell = 1
	}
	if line <= 0 {
		line = 1
	}
	return cell, line
}

// wrap breaks the text into lines no wider than maxCells. Hard newlines are
// kept; a single word wider than maxCells is truncated by display width.
func (t *TextContent) wrap(maxCells int) []string {
	var lines []string
	for _, paragraph := range strings.Split(t.Text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		current := ""
		for _, word := range words {
			if runewidth.StringWidth(word) > maxCells {
				word = runewidth.Truncate(word, maxCells, "")
			}
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if runewidth.StringWidth(candidate) <= maxCells {
				current = candidate
				continue
			}
			lines = append(lines, current)
			current = word
		}
		lines = append(lines, current)
	}
	return lines
}
