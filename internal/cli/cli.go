// Package cli implements the perch command-line interface.
//
// This package provides commands for resolving single placements,
// validating and resolving scene files, rendering scenes as SVG, and an
// interactive terminal preview of the placement engine. The CLI is
// built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - resolve: Compute a single placement from flags
//   - scene: Validate or batch-resolve a scene file
//   - render: Draw a resolved scene as SVG
//   - preview: Explore placements interactively in the terminal
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/perchkit/perch/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "perch"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Perch places floating windows relative to anchor rectangles",
		Long:         `Perch is a CLI for a floating-window placement engine: it anchors windows to rectangles, flips them when they would leave the monitor, and clamps what remains. Scenes describe monitors, windows, and placements; perch resolves and renders them.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.sceneCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.completionCommand())

	return root
}
