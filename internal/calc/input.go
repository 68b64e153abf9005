package calc

import (
	"math"
	"strconv"
	"strings"
)

// Inputs is what the input reader extracts from the form widgets.
type Inputs struct {
	A  float64
	B  float64
	Op Operation
}

// ParseNumber converts field text to a float. Empty, unparsable and
// non-finite text all read as zero.
func ParseNumber(text string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// ReadInputs reads both fields and the selected label. It never fails.
func ReadInputs(a, b, label string) Inputs {
	return Inputs{
		A:  ParseNumber(a),
		B:  ParseNumber(b),
		Op: ParseOperation(label),
	}
}
