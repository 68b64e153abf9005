package calc

// Result is either a number or the undefined marker produced by a division
// by zero.
type Result struct {
	value   float64
	defined bool
}

// Undefined is the result of dividing by zero.
var Undefined = Result{}

// Value wraps a numeric result.
func Value(v float64) Result {
	return Result{value: v, defined: true}
}

// Float returns the numeric value and whether the result is defined.
func (r Result) Float() (float64, bool) {
	return r.value, r.defined
}

// IsUndefined reports whether r is the undefined marker.
func (r Result) IsUndefined() bool {
	return !r.defined
}

func (r Result) String() string {
	return Format(r)
}

// Evaluate applies op to a and b.
func Evaluate(a, b float64, op Operation) Result {
	switch op {
	case Subtract:
		return Value(a - b)
	case Multiply:
		return Value(a * b)
	case Divide:
		if b == 0 {
			return Undefined
		}
		return Value(a / b)
	default:
		return Value(a + b)
	}
}

// Compute is the form's whole pipeline: read the two field texts and the
// picker label, evaluate, and return the text for the result label.
func Compute(a, b, label string) string {
	in := ReadInputs(a, b, label)
	return Format(Evaluate(in.A, in.B, in.Op))
}
