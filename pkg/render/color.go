package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kweiler/jsonheat/pkg/errors"
)

// Policy selects how a node's relative size maps to a line color. Each
// policy is a pure function of the share in [0,1]; heavier nodes stand out
// more.
type Policy int

const (
	// PolicyHellscape ramps red with size, leaving green and blue fixed.
	PolicyHellscape Policy = iota
	// PolicyGradient ramps red up and green down with size.
	PolicyGradient
	// PolicyMonochrome ramps all three channels together.
	PolicyMonochrome
	// PolicyNone applies no color.
	PolicyNone
)

var policyNames = map[string]Policy{
	"hellscape":  PolicyHellscape,
	"gradient":   PolicyGradient,
	"monochrome": PolicyMonochrome,
	"none":       PolicyNone,
}

// ParsePolicy converts a CLI spelling into a Policy.
func ParsePolicy(name string) (Policy, error) {
	if p, ok := policyNames[strings.ToLower(name)]; ok {
		return p, nil
	}
	return PolicyNone, errors.New(errors.ErrCodeInvalidColors,
		"unknown color policy %q (valid: hellscape, gradient, monochrome, none)", name)
}

// String returns the CLI spelling of the policy.
func (p Policy) String() string {
	for name, policy := range policyNames {
		if policy == p {
			return name
		}
	}
	return "none"
}

// color returns the truecolor foreground for a relative size, or ok=false
// when the policy applies no color. Channels stay within 0-255 for any
// rel in [0,1]: the ramp tops out at 100+155.
func (p Policy) color(rel float64) (lipgloss.Color, bool) {
	ramp := int(155 * rel)
	switch p {
	case PolicyHellscape:
		return hexColor(100+ramp, 100, 100), true
	case PolicyGradient:
		return hexColor(100+ramp, 200-ramp, 100), true
	case PolicyMonochrome:
		return hexColor(100+ramp, 100+ramp, 100+ramp), true
	default:
		return "", false
	}
}

func hexColor(r, g, b int) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}
