package lights

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Brightness values accepted by the bridge. Zero is not a valid brightness,
// the bridge models fully dark as power off.
const (
	BriMin = 1
	BriMax = 254
)

// Adjustment is a parsed brightness expression: an operator applied to a
// magnitude, optionally expressed as a percentage of the full range.
type Adjustment struct {
	Op      byte // '=', '+' or '-'
	Amount  int
	Percent bool
}

// ParseAdjustment matches a brightness expression of the form
// "=N", "+N" or "-N" with an optional trailing "%". The second return
// value is false when the token is not a brightness expression at all.
func ParseAdjustment(token string) (Adjustment, bool) {
	if len(token) < 2 {
		return Adjustment{}, false
	}
	op := token[0]
	if op != '=' && op != '+' && op != '-' {
		return Adjustment{}, false
	}
	digits := token[1:]
	percent := false
	if strings.HasSuffix(digits, "%") {
		percent = true
		digits = digits[:len(digits)-1]
	}
	if digits == "" {
		return Adjustment{}, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Adjustment{}, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return Adjustment{}, false
	}
	return Adjustment{Op: op, Amount: n, Percent: percent}, true
}

// Apply computes the new brightness from the light's current value. The
// result is always clamped into [BriMin, BriMax].
func (a Adjustment) Apply(current uint8) uint8 {
	n := a.Amount
	if a.Percent {
		n = int(math.Round(float64(a.Amount) * BriMax / 100))
	}
	var out int
	switch a.Op {
	case '+':
		out = int(current) + n
	case '-':
		out = int(current) - n
	default:
		out = n
	}
	if out < BriMin {
		out = BriMin
	}
	if out > BriMax {
		out = BriMax
	}
	return uint8(out)
}

// ResolveColor turns a color token into an RGB triple. The token is looked
// up in the override table first, then the builtin CSS names, and finally
// treated as a literal hex string ("#" optional, 3 or 6 digits).
func ResolveColor(token string, overrides map[string]string) (r, g, b uint8, err error) {
	name := strings.ToLower(token)
	hex, ok := overrides[name]
	if !ok {
		hex, ok = cssColors[name]
	}
	if !ok {
		hex = name
	}
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 3 && len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid color %q", token)
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid color %q: %w", token, err)
	}
	r, g, b = c.RGB255()
	return r, g, b, nil
}
