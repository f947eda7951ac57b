package render

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/kweiler/jsonheat/pkg/errors"
	"github.com/kweiler/jsonheat/pkg/sizetree"
)

// Unit selects which aggregate metric drives percentages, bar lengths, and
// the magnitude display.
type Unit int

const (
	// UnitBytes is the byte-weight metric.
	UnitBytes Unit = iota
	// UnitCount is the structural-weight metric (elements in the subtree).
	UnitCount
)

// unitNames maps CLI spellings to units.
var unitNames = map[string]Unit{
	"bytes": UnitBytes,
	"count": UnitCount,
}

// ParseUnit converts a CLI spelling into a Unit.
func ParseUnit(name string) (Unit, error) {
	if u, ok := unitNames[strings.ToLower(name)]; ok {
		return u, nil
	}
	return UnitBytes, errors.New(errors.ErrCodeInvalidUnit, "unknown unit %q (valid: bytes, count)", name)
}

// String returns the CLI spelling of the unit.
func (u Unit) String() string {
	if u == UnitCount {
		return "count"
	}
	return "bytes"
}

// Weight returns the node's aggregate size under the unit.
func Weight(n sizetree.Node, u Unit) int {
	if u == UnitCount {
		return n.ChildSize
	}
	return n.ByteSize
}

// magnitude formats a size for display: binary-scaled with a size suffix for
// byte weight, SI-scaled and unsuffixed for structural weight.
func magnitude(size int, u Unit) string {
	if u == UnitCount {
		return strings.TrimSpace(humanize.SIWithDigits(float64(size), 1, ""))
	}
	return humanize.IBytes(uint64(size))
}
