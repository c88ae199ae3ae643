package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/perchkit/perch/pkg/attach"
	"github.com/perchkit/perch/pkg/place"
	"github.com/perchkit/perch/pkg/scene"
)

// sceneCommand creates the scene command group.
func (c *CLI) sceneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Work with scene files",
		Long:  `Scene files (.toml or .json) describe monitors, windows, and the placements to perform. See the scene package documentation for the format.`,
	}

	cmd.AddCommand(c.sceneValidateCommand())
	cmd.AddCommand(c.sceneResolveCommand())

	return cmd
}

// sceneValidateCommand checks a scene file without resolving it.
func (c *CLI) sceneValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.Load(args[0])
			if err != nil {
				printError("%v", err)
				return err
			}
			printSuccess("%s is valid", args[0])
			printDetail("%d monitors, %d frames, %d windows, %d placements",
				len(s.Monitors), len(s.Frames), len(s.Windows), len(s.Placements))
			return nil
		},
	}
}

// sceneResult is one resolved placement in scene resolve output.
type sceneResult struct {
	Window string        `json:"window"`
	Result attach.Result `json:"result"`
}

// sceneResolveCommand resolves every placement in a scene file.
func (c *CLI) sceneResolveCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "resolve <file>",
		Short: "Resolve all placements in a scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := c.resolveScene(args[0])
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			for _, r := range results {
				printInfo("%s", StyleHighlight.Render(r.Window))
				printResult(r.Result)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit results as JSON")
	return cmd
}

// resolveScene loads, builds, and resolves a scene, moving each window
// on the simulated display.
func (c *CLI) resolveScene(path string) ([]sceneResult, error) {
	prog := newProgress(c.Logger)

	s, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	built, err := s.Build()
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("scene built", "monitors", len(s.Monitors), "windows", len(s.Windows))

	mover := place.NewMover(built.Display, c.Logger)
	results := make([]sceneResult, 0, len(built.Placements))
	for _, pl := range built.Placements {
		res, err := mover.MoveWindow(pl.Params, pl.Window)
		if err != nil {
			return nil, err
		}
		results = append(results, sceneResult{Window: pl.Name, Result: res})
	}

	prog.done(fmt.Sprintf("Resolved %d placements", len(results)))
	return results, nil
}
