// Package render turns a size-annotated tree into width-constrained,
// threshold-filtered, depth-limited, colorized terminal lines.
//
// Each rendered line shows a node's label (indented by depth), its share of
// the document's total size, a humanized magnitude, and a proportional bar.
// Nodes below the configured share threshold are omitted together with their
// whole subtree, which is safe because a child never outweighs its parent.
package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/kweiler/jsonheat/pkg/sizetree"
)

const (
	// fixedColumns is the room reserved for the percentage and magnitude
	// fields plus their separators.
	fixedColumns = 19

	// labelBarGap separates the label column from the bar column.
	labelBarGap = 2

	// indentStep is prepended once per depth level.
	indentStep = "  "

	// barGlyph fills the proportional bar.
	barGlyph = "#"

	// ellipsis terminates truncated labels.
	ellipsis = "…"
)

// Settings carries the immutable rendering configuration threaded through
// the traversal.
type Settings struct {
	Unit      Unit
	Threshold float64 // minimum share of the total, in [0,1]
	Policy    Policy
	Width     int // total line budget in columns

	// DepthCap limits how deep rendering recurses, counted from the root
	// (0 renders only the root line). Only honored when HasDepthCap is set.
	DepthCap    int
	HasDepthCap bool

	Out io.Writer
}

// Render writes the line for n and recurses into its retained children.
// total is the root's size under the selected unit and stays fixed across
// the traversal; the initial call passes depth 0. A non-positive total
// renders nothing: a degenerate document produces no output rather than
// NaN shares.
func Render(n sizetree.Node, total, depth int, s Settings) {
	if total <= 0 {
		return
	}
	if s.HasDepthCap && depth >= s.DepthCap {
		return
	}

	labelWidth, barWidth := columns(s.Width)

	rel := float64(Weight(n, s.Unit)) / float64(total)
	if rel < s.Threshold {
		return
	}

	label := composeLabel(n, depth, labelWidth)
	head := fmt.Sprintf("%s %6.2f%% %11s",
		runewidth.FillRight(label, labelWidth),
		100*rel,
		"("+magnitude(Weight(n, s.Unit), s.Unit)+")",
	)
	if c, ok := s.Policy.color(rel); ok {
		head = lipgloss.NewStyle().Foreground(c).Render(head)
	}

	bar := strings.Repeat(barGlyph, int(rel*float64(barWidth)))
	fmt.Fprintln(s.Out, head+bar)

	for _, child := range n.Children {
		Render(child, total, depth+1, s)
	}
}

// columns splits the width budget: 19 fixed columns for percentage and
// magnitude, the rest 2:1 between label and bar with a 2-column gap.
// Recomputed on every call from the fixed total width.
func columns(width int) (labelWidth, barWidth int) {
	avail := width - fixedColumns
	labelWidth = avail * 2 / 3
	if labelWidth < 0 {
		labelWidth = 0
	}
	barWidth = avail - labelWidth - labelBarGap
	if barWidth < 0 {
		barWidth = 0
	}
	return labelWidth, barWidth
}

// composeLabel builds the indented, cardinality-marked label, truncated to
// the label column.
func composeLabel(n sizetree.Node, depth, labelWidth int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(indentStep, depth))
	if n.Elems > 0 {
		fmt.Fprintf(&b, "[%s] ", humanize.Comma(int64(n.Elems)))
	}
	b.WriteString(n.Label)

	label := b.String()
	if utf8.RuneCountInString(label) > labelWidth {
		keep := labelWidth - 2
		if keep < 0 {
			keep = 0
		}
		label = string([]rune(label)[:keep]) + ellipsis
	}
	return label
}
