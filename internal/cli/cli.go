// Package cli implements the jsonheat command-line interface.
//
// jsonheat renders the size distribution of a JSON document as a
// proportional, indented, color-coded treemap in the terminal, making it
// easy to spot which keys, array segments, or subtrees dominate a large
// document.
//
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library. Defaults can be supplied through a TOML config
// file; command-line flags always win.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kweiler/jsonheat/pkg/buildinfo"
	"github.com/kweiler/jsonheat/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "jsonheat"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives the rendered treemap lines. Defaults to stdout;
	// overridable for tests.
	Out io.Writer
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	opts := rootOpts{}

	root := &cobra.Command{
		Use:   "jsonheat <file.json>",
		Short: "Jsonheat shows which parts of a JSON document dominate its size",
		Long: `Jsonheat renders the size distribution of a JSON document as a
proportional, color-coded treemap in the terminal, one line per node, so you
can quickly locate the keys and subtrees that dominate a large document.

Sizes can be measured in byte weight (the textual payload of each subtree)
or element count (how many structural elements each subtree contains).
Arrays are shown as a single line annotated with their cardinality.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, args[0], &opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.Flags()
	flags.Float64VarP(&opts.threshold, "threshold", "t", pipeline.DefaultThreshold,
		"minimum percentage of the total size a node must reach to be printed")
	flags.StringVarP(&opts.unit, "unit", "u", pipeline.DefaultUnit.String(),
		"size metric: bytes, count")
	flags.StringVarP(&opts.colors, "colors", "c", pipeline.DefaultPolicy.String(),
		"color policy: hellscape, gradient, monochrome, none")
	flags.IntVarP(&opts.maxDepth, "max-depth", "d", 0,
		"maximum depth to render; negative values count from the bottom of the tree")
	flags.IntVarP(&opts.width, "width", "w", 0,
		"total line width in columns; 0 detects the terminal width")
	flags.StringVar(&opts.configPath, "config", "",
		"path to a TOML config file (default: $XDG_CONFIG_HOME/jsonheat/config.toml)")

	root.AddCommand(c.completionCommand())

	return root
}
