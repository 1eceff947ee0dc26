package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grindlemire/go-flexview/internal/scene"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	excludedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	sizeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98"))
)

// sizeFlags override the scene size when non-zero.
type sizeFlags struct {
	width, height float64
}

func (f *sizeFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.width, "width", 0, "layout width, overrides the scene")
	cmd.Flags().Float64Var(&f.height, "height", 0, "layout height, overrides the scene")
}

func (f sizeFlags) apply(s *scene.Scene) {
	if f.width > 0 {
		s.Width = f.width
	}
	if f.height > 0 {
		s.Height = f.height
	}
}

func newLayoutCmd(a *app) *cobra.Command {
	var (
		format string
		size   sizeFlags
	)

	cmd := &cobra.Command{
		Use:   "layout <scene.yaml>",
		Short: "Print the frames computed for a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "table" && format != "json" {
				return fmt.Errorf("unknown format %q, want table or json", format)
			}

			s, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			size.apply(s)

			res, err := a.layout(s)
			if err != nil {
				return err
			}

			if format == "json" {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			return writeTable(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table or json")
	size.register(cmd)
	return cmd
}

func (a *app) layout(s *scene.Scene) (*scene.Result, error) {
	res, err := scene.Layout(s, a.cfg)
	if err != nil {
		return nil, fmt.Errorf("layout failed: %w", err)
	}
	a.logger.Debug("laid out scene",
		zap.Int("views", len(res.Frames)),
		zap.Float64("width", res.Size.Width),
		zap.Float64("height", res.Size.Height))
	return res, nil
}

type jsonOutput struct {
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
	Frames []scene.Frame `json:"frames"`
}

func writeJSON(w io.Writer, res *scene.Result) error {
	data, err := json.MarshalIndent(jsonOutput{
		Width:  res.Size.Width,
		Height: res.Size.Height,
		Frames: res.Frames,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode frames: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func writeTable(w io.Writer, res *scene.Result) error {
	nameWidth := len("VIEW")
	for _, f := range res.Frames {
		nameWidth = max(nameWidth, lipgloss.Width(label(f)))
	}

	var b strings.Builder
	b.WriteString(sizeStyle.Render(fmt.Sprintf("%gx%g", res.Size.Width, res.Size.Height)))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %8s %8s %8s %8s", nameWidth, "VIEW", "X", "Y", "WIDTH", "HEIGHT")))
	b.WriteString("\n")
	for _, f := range res.Frames {
		row := fmt.Sprintf("%-*s %8g %8g %8g %8g", nameWidth, label(f), f.X, f.Y, f.Width, f.Height)
		if f.Excluded {
			row = excludedStyle.Render(row + "  (excluded)")
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func label(f scene.Frame) string {
	return strings.Repeat("  ", f.Depth) + f.Name
}
