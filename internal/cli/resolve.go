package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/perchkit/perch/pkg/attach"
	"github.com/perchkit/perch/pkg/geom"
)

// resolveOpts holds the command-line flags for the resolve command.
type resolveOpts struct {
	rect         string // attachment rectangle "x,y,w,h"
	size         string // window size "w,h"
	shadow       string // shadow insets "top,left,right,bottom"
	offset       string // anchor offset "dx,dy"
	bounds       string // workarea "x,y,w,h" (empty: unbounded)
	rectAnchor   string // anchor name on the rectangle
	windowAnchor string // anchor name on the window
	noFlipX      bool   // forbid horizontal flipping
	noFlipY      bool   // forbid vertical flipping
	asJSON       bool   // emit the result as JSON
}

// resolveCommand creates the resolve command for one-shot placements.
func (c *CLI) resolveCommand() *cobra.Command {
	var opts resolveOpts

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Compute a single placement from flags",
		Long: `Resolve computes where a window of the given size lands when anchored
to the given rectangle, applying flips and clamping against the bounds
when they are provided.`,
		Example: `  # A 200x320 menu below a toolbar button, kept inside a 1920x1080 monitor
  perch resolve --rect 40,40,120,24 --size 200,320 \
      --rect-anchor bottom-left --window-anchor top-left \
      --bounds 0,0,1920,1080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runResolve(&opts)
		},
	}

	cmd.Flags().StringVar(&opts.rect, "rect", "", "attachment rectangle as x,y,w,h (required)")
	cmd.Flags().StringVar(&opts.size, "size", "", "window size as w,h (required)")
	cmd.Flags().StringVar(&opts.shadow, "shadow", "", "shadow insets as top,left,right,bottom")
	cmd.Flags().StringVar(&opts.offset, "offset", "", "anchor offset as dx,dy")
	cmd.Flags().StringVar(&opts.bounds, "bounds", "", "workarea as x,y,w,h (default: unbounded)")
	cmd.Flags().StringVar(&opts.rectAnchor, "rect-anchor", "", "anchor on the rectangle (default: center)")
	cmd.Flags().StringVar(&opts.windowAnchor, "window-anchor", "", "anchor on the window (default: center)")
	cmd.Flags().BoolVar(&opts.noFlipX, "no-flip-x", false, "forbid horizontal flipping")
	cmd.Flags().BoolVar(&opts.noFlipY, "no-flip-y", false, "forbid vertical flipping")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "emit the result as JSON")

	_ = cmd.MarkFlagRequired("rect")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}

func (c *CLI) runResolve(opts *resolveOpts) error {
	p, size, shadow, bounds, err := buildParams(opts)
	if err != nil {
		return err
	}

	res, err := attach.Resolve(p, size, shadow, bounds)
	if err != nil {
		return err
	}
	c.Logger.Debug("resolved", "result", res)

	if opts.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	printResult(res)
	return nil
}

// buildParams turns resolve flags into a descriptor plus the window and
// bounds geometry.
func buildParams(opts *resolveOpts) (*attach.Params, geom.Size, geom.Insets, *geom.Rect, error) {
	fail := func(err error) (*attach.Params, geom.Size, geom.Insets, *geom.Rect, error) {
		return nil, geom.Size{}, geom.Insets{}, nil, err
	}

	rect, err := parseRect(opts.rect)
	if err != nil {
		return fail(err)
	}
	size, err := parseSize(opts.size)
	if err != nil {
		return fail(err)
	}

	var shadow geom.Insets
	if opts.shadow != "" {
		if shadow, err = parseInsets(opts.shadow); err != nil {
			return fail(err)
		}
	}

	ra, err := parseAnchorFlag(opts.rectAnchor)
	if err != nil {
		return fail(fmt.Errorf("rect anchor: %w", err))
	}
	wa, err := parseAnchorFlag(opts.windowAnchor)
	if err != nil {
		return fail(fmt.Errorf("window anchor: %w", err))
	}

	p := attach.NewParams()
	p.SetAttachRect(rect, nil)
	p.SetAnchors(ra, wa)
	p.SetFlipHints(!opts.noFlipX, !opts.noFlipY)

	if opts.offset != "" {
		off, err := parsePoint(opts.offset)
		if err != nil {
			return fail(err)
		}
		p.SetOffset(off.X, off.Y)
	}

	var bounds *geom.Rect
	if opts.bounds != "" {
		b, err := parseRect(opts.bounds)
		if err != nil {
			return fail(err)
		}
		bounds = &b
	}

	return p, size, shadow, bounds, nil
}

// printResult prints a resolution outcome as labeled lines.
func printResult(res attach.Result) {
	printKeyValue("origin", fmt.Sprintf("%d, %d", res.X, res.Y))
	printKeyValue("offset", fmt.Sprintf("%d, %d", res.OffsetX, res.OffsetY))
	printKeyValue("flipped", fmt.Sprintf("x=%t y=%t", res.FlippedX, res.FlippedY))
	if res.Clamped() {
		printWarning("placement was clamped to fit the bounds")
	}
}
