package calc

import (
	"strconv"
)

// UndefinedText is what the result label shows for an undefined result.
const UndefinedText = "-"

// Format renders a result for the display label. Whole numbers carry no
// decimal point; fractions are written out in full positional notation so a
// decimal point is always present, never an exponent.
func Format(r Result) string {
	v, ok := r.Float()
	if !ok {
		return UndefinedText
	}

	// negative zero reads as 0
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
