package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/perchkit/perch/pkg/place"
	"github.com/perchkit/perch/pkg/render"
	"github.com/perchkit/perch/pkg/render/svgsink"
	"github.com/perchkit/perch/pkg/scene"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string  // output file path ("-" for stdout)
	format string  // output format: "svg", "pdf", "png"
	scale  float64 // root pixels per SVG unit
	labels bool    // draw window and monitor labels
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "pdf": true, "png": true}

// renderCommand creates the render command for drawing resolved scenes.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{scale: 0.5}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a resolved scene as SVG",
		Long: `Render loads a scene file, resolves every placement on the simulated
display, and draws the outcome: monitor workareas, attachment
rectangles, window boxes, and the correction applied by clamping.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validFormats[opts.format] {
				return fmt.Errorf("invalid format: %s (must be 'svg', 'pdf', or 'png')", opts.format)
			}
			return c.runRender(args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input with the format's extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "svg", "output format: svg (default), pdf, png")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "root pixels per SVG unit")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "draw window and monitor labels")

	return cmd
}

func (c *CLI) runRender(input string, opts *renderOpts) error {
	prog := newProgress(c.Logger)

	s, err := scene.Load(input)
	if err != nil {
		return err
	}
	built, err := s.Build()
	if err != nil {
		return err
	}

	mover := place.NewMover(built.Display, c.Logger)
	items := make([]svgsink.Item, 0, len(built.Placements))
	for _, pl := range built.Placements {
		res, err := mover.MoveWindow(pl.Params, pl.Window)
		if err != nil {
			return err
		}
		rect, _ := pl.Params.AttachRect()
		items = append(items, svgsink.Item{
			Name:       pl.Name,
			AttachRect: rect,
			Size:       pl.Window.Size(),
			Shadow:     pl.Window.Shadow(),
			Result:     res,
		})
	}

	renderOptions := []svgsink.Option{svgsink.WithScale(opts.scale)}
	if opts.labels {
		renderOptions = append(renderOptions, svgsink.WithLabels())
	}
	data := svgsink.Render(built.Display.Monitors(), items, renderOptions...)
	c.Logger.Debugf("Generated SVG: %d bytes", len(data))

	switch opts.format {
	case "pdf":
		if data, err = render.ToPDF(data); err != nil {
			return err
		}
	case "png":
		if data, err = render.ToPNG(data, 2.0); err != nil {
			return err
		}
	}

	path := opts.output
	if path == "" {
		path = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	prog.done("Rendered " + input)
	printFile(path)
	return nil
}
