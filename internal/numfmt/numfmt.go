// Package numfmt formats a binary64 value the way the reference codec
// does: %.17g, 17 significant digits, trailing zeros and a redundant
// decimal point stripped, exponential notation once the magnitude falls
// outside the fixed-point range that precision affords.
package numfmt

import (
	"errors"
	"math"
	"strconv"
)

// ErrNotFinite is returned when FormatDouble is asked to format NaN or
// an infinity, neither of which has a JSON number representation.
var ErrNotFinite = errors.New("numfmt: value is not finite (NaN or Infinity)")

// FormatDouble renders f at 17 significant digits and lets strconv pick
// fixed or exponential form and trim trailing zeros, the Go equivalent
// of '{0:.17g}'.format(obj). Integer-valued doubles come out without a
// fractional part (e.g. "123", not "123.0").
func FormatDouble(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", ErrNotFinite
	}
	return strconv.FormatFloat(f, 'g', 17, 64), nil
}
