package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kweiler/jsonheat/pkg/pipeline"
	"github.com/kweiler/jsonheat/pkg/render"
)

// rootOpts holds the command-line flags of the root command. Flag values are
// merged with the config file in run; an explicitly set flag always wins.
type rootOpts struct {
	threshold  float64 // minimum percentage share to print
	unit       string  // size metric name
	colors     string  // color policy name
	maxDepth   int     // depth cap, meaningful only when the flag was set
	width      int     // line width, 0 = detect
	configPath string  // explicit config file location
}

// run merges flags with config defaults, validates the enumerations, and
// executes the pipeline for the document at path.
func (c *CLI) run(cmd *cobra.Command, path string, opts *rootOpts) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()

	unitName := opts.unit
	if !flags.Changed("unit") && cfg.Unit != "" {
		unitName = cfg.Unit
	}
	unit, err := render.ParseUnit(unitName)
	if err != nil {
		return err
	}

	colorsName := opts.colors
	if !flags.Changed("colors") && cfg.Colors != "" {
		colorsName = cfg.Colors
	}
	policy, err := render.ParsePolicy(colorsName)
	if err != nil {
		return err
	}

	threshold := opts.threshold
	if !flags.Changed("threshold") && cfg.Threshold != 0 {
		threshold = cfg.Threshold
	}

	width := opts.width
	if !flags.Changed("width") && cfg.Width > 0 {
		width = cfg.Width
	}
	if width <= 0 {
		width = terminalWidth()
	}

	popts := pipeline.Options{
		Threshold: threshold,
		Unit:      unit,
		Policy:    policy,
		Width:     width,
		Out:       c.Out,
	}
	if flags.Changed("max-depth") {
		popts.MaxDepth = opts.maxDepth
		popts.HasMaxDepth = true
	}

	c.Logger.Debugf("Rendering %s (unit=%s colors=%s threshold=%.2f width=%d)",
		path, unit, policy, threshold, width)

	return pipeline.NewRunner(c.Logger).Run(cmd.Context(), path, popts)
}

// terminalWidth returns the current width of stdout, falling back to the
// pipeline default when stdout is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return pipeline.DefaultWidth
}
