package main

import (
	"io"
	"math"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/grindlemire/go-flexview/internal/scene"
)

// maxGridCells bounds the character grid so huge scenes cannot exhaust memory.
const maxGridCells = 1000

func newRenderCmd(a *app) *cobra.Command {
	var size sizeFlags

	cmd := &cobra.Command{
		Use:   "render <scene.yaml>",
		Short: "Draw the frames of a scene on a character grid",
		Long: "Draw the frames of a scene on a character grid. A scene without a size\n" +
			"is laid out in the terminal's size when writing to a terminal.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			if s.Width == 0 && s.Height == 0 {
				if w, h, ok := terminalSize(cmd.OutOrStdout()); ok {
					s.Width, s.Height = float64(w), float64(max(h-1, 1))
				}
			}
			size.apply(s)

			res, err := a.layout(s)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), render(res, s.YUp))
			return err
		},
	}
	size.register(cmd)
	return cmd
}

// terminalSize reports the size of w when it is a terminal.
func terminalSize(w io.Writer) (width, height int, ok bool) {
	f, isFile := w.(*os.File)
	if !isFile || !term.IsTerminal(int(f.Fd())) {
		return 0, 0, false
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return 0, 0, false
	}
	return width, height, true
}

type grid struct {
	cells         [][]rune
	width, height int
}

func newGrid(width, height int) *grid {
	g := &grid{width: width, height: height, cells: make([][]rune, height)}
	for y := range g.cells {
		g.cells[y] = []rune(strings.Repeat(" ", width))
	}
	return g
}

func (g *grid) set(x, y int, r rune) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.cells[y][x] = r
	}
}

// text writes s starting at (x, y), clipped to maxWidth cells.
// Wide runes take two cells; the second holds a zero rune that is skipped on output.
func (g *grid) text(x, y int, s string, maxWidth int) {
	s = runewidth.Truncate(s, maxWidth, "")
	for _, r := range s {
		g.set(x, y, r)
		if runewidth.RuneWidth(r) == 2 {
			g.set(x+1, y, 0)
			x++
		}
		x++
	}
}

func (g *grid) lines(x, y int, lines []string, maxWidth, maxLines int) {
	for i, l := range lines {
		if i >= maxLines {
			return
		}
		g.text(x, y+i, l, maxWidth)
	}
}

func (g *grid) box(x0, y0, x1, y1 int) {
	for x := x0; x <= x1; x++ {
		g.set(x, y0, '-')
		g.set(x, y1, '-')
	}
	for y := y0; y <= y1; y++ {
		g.set(x0, y, '|')
		g.set(x1, y, '|')
	}
	for _, c := range [][2]int{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
		g.set(c[0], c[1], '+')
	}
}

func (g *grid) String() string {
	var b strings.Builder
	for _, row := range g.cells {
		var line strings.Builder
		for _, r := range row {
			if r != 0 {
				line.WriteRune(r)
			}
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}
	return b.String()
}

// render draws every included view as a box with its wrapped text inside.
// Views too small for a border only show their text.
func render(res *scene.Result, yUp bool) string {
	width := min(int(math.Ceil(res.Size.Width)), maxGridCells)
	height := min(int(math.Ceil(res.Size.Height)), maxGridCells)
	g := newGrid(width, height)

	for _, f := range res.Frames {
		if f.Excluded || f.Width <= 0 || f.Height <= 0 {
			continue
		}
		y := f.AbsY
		if yUp {
			y = res.Size.Height - f.AbsY - f.Height
		}
		x0, y0 := int(math.Round(f.AbsX)), int(math.Round(y))
		x1, y1 := int(math.Round(f.AbsX+f.Width))-1, int(math.Round(y+f.Height))-1

		bordered := x1-x0 >= 2 && y1-y0 >= 2
		if len(f.Lines) == 0 {
			bordered = x1-x0 >= 1 && y1-y0 >= 1
		}
		if !bordered {
			g.lines(x0, y0, f.Lines, x1-x0+1, y1-y0+1)
			continue
		}
		g.box(x0, y0, x1, y1)
		g.lines(x0+1, y0+1, f.Lines, x1-x0-1, y1-y0-1)
	}
	return g.String()
}
