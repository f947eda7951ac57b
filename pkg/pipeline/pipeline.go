// Package pipeline provides the core processing pipeline for jsonheat.
//
// The pipeline consists of four stages:
//
//  1. Read: load the JSON document from disk
//  2. Parse: decode it into a generic ordered value
//  3. Build: transform the value into a size-annotated tree
//  4. Render: write the proportional treemap lines to the output
//
// Centralizing this sequence keeps the CLI thin and the defaults in one
// place. The whole document is materialized before rendering begins; there
// is no streaming mode.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kweiler/jsonheat/pkg/errors"
	"github.com/kweiler/jsonheat/pkg/jsonval"
	"github.com/kweiler/jsonheat/pkg/render"
	"github.com/kweiler/jsonheat/pkg/sizetree"
)

// =============================================================================
// Default Values - Single Source of Truth for the CLI
// =============================================================================

const (
	// DefaultWidth is the line budget used when the terminal width cannot
	// be determined.
	DefaultWidth = 80

	// DefaultThreshold prints every node regardless of its share.
	DefaultThreshold = 0.0

	// RootLabel is the synthetic label of the document's root node.
	RootLabel = "Root"
)

// DefaultUnit is the metric used when none is selected.
const DefaultUnit = render.UnitBytes

// DefaultPolicy is the color policy used when none is selected.
const DefaultPolicy = render.PolicyHellscape

// Options holds the pipeline configuration, assembled once at startup and
// passed through the run.
type Options struct {
	// Threshold is the minimum percentage of the total size a node must
	// reach to be printed (0-100).
	Threshold float64

	// Unit selects the aggregate metric.
	Unit render.Unit

	// Policy selects the line coloring.
	Policy render.Policy

	// MaxDepth caps rendering depth when HasMaxDepth is set. Non-negative
	// values are absolute; negative values are resolved against the
	// tree's true maximum depth.
	MaxDepth    int
	HasMaxDepth bool

	// Width is the total line budget in columns; 0 falls back to
	// DefaultWidth.
	Width int

	// Out receives the rendered lines; nil falls back to stdout.
	Out io.Writer
}

// SetDefaults fills unset fields with the pipeline defaults.
func (o *Options) SetDefaults() {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
}

// Runner executes the pipeline.
type Runner struct {
	logger *log.Logger
}

// NewRunner creates a pipeline runner. A nil logger falls back to the
// package default.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{logger: logger}
}

// Run reads the document at path and renders its size distribution.
//
// Failures while reading or parsing abort before any tree construction or
// rendering; a document with zero weight under the selected unit renders
// nothing and returns nil.
func (r *Runner) Run(ctx context.Context, path string, opts Options) error {
	opts.SetDefaults()
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return errors.Wrap(errors.ErrCodeFileRead, err, "read %s", path)
	}
	r.logger.Debugf("Read %d bytes from %s", len(data), path)

	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := jsonval.DecodeBytes(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	tree := sizetree.Build(value, 0, RootLabel)
	r.logger.Debugf("Built size tree: %d B, %d elements, key footprint %d",
		tree.ByteSize, tree.ChildSize, tree.KeyFootprint)

	settings := render.Settings{
		Unit:      opts.Unit,
		Threshold: opts.Threshold / 100,
		Policy:    opts.Policy,
		Width:     opts.Width,
		Out:       opts.Out,
	}
	if opts.HasMaxDepth {
		settings.DepthCap = opts.MaxDepth
		settings.HasDepthCap = true
		if opts.MaxDepth < 0 {
			// Negative caps count from the bottom of the tree.
			settings.DepthCap = sizetree.MaxDepth(tree) + opts.MaxDepth - 1
			r.logger.Debugf("Resolved depth cap %d to %d", opts.MaxDepth, settings.DepthCap)
		}
	}

	total := render.Weight(tree, opts.Unit)
	if total == 0 {
		r.logger.Debug("Document has zero weight under the selected unit; nothing to render")
		return nil
	}

	render.Render(tree, total, 0, settings)
	r.logger.Debugf("Done (%s)", time.Since(start).Round(time.Millisecond))
	return nil
}
