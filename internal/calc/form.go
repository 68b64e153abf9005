package calc

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned by Form.Set for a field name it does not hold.
var ErrUnknownField = errors.New("unknown form field")

// Field names accepted by Form.Set
const (
	FieldA         = "a"
	FieldB         = "b"
	FieldOperation = "operation"
)

// Snapshot is the visible state of a form.
type Snapshot struct {
	A         string `json:"a" yaml:"a"`
	B         string `json:"b" yaml:"b"`
	Operation string `json:"operation" yaml:"operation"`
	Result    string `json:"result" yaml:"result"`
	Undefined bool   `json:"undefined" yaml:"undefined"`
}

// Form holds the two numeric fields and the selected operation, and keeps the
// result label in step with them. Every edit recomputes the result from
// scratch. A Form is not safe for concurrent use; each host owns its own.
type Form struct {
	a      string
	b      string
	op     Operation
	result Result
}

// NewForm returns a form in its initial state: both fields empty, Suma
// selected, result 0.
func NewForm() *Form {
	f := &Form{op: Add}
	f.recalculate()
	return f
}

// SetA replaces the text of the first field.
func (f *Form) SetA(text string) {
	f.a = text
	f.recalculate()
}

// SetB replaces the text of the second field.
func (f *Form) SetB(text string) {
	f.b = text
	f.recalculate()
}

// Select picks an operation by label. Unknown labels select Suma.
func (f *Form) Select(label string) {
	f.SelectOperation(ParseOperation(label))
}

// SelectOperation picks an operation.
func (f *Form) SelectOperation(op Operation) {
	f.op = op
	f.recalculate()
}

// Set edits a field by name.
func (f *Form) Set(field, value string) error {
	switch field {
	case FieldA:
		f.SetA(value)
	case FieldB:
		f.SetB(value)
	case FieldOperation:
		f.Select(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// A returns the raw text of the first field.
func (f *Form) A() string { return f.a }

// B returns the raw text of the second field.
func (f *Form) B() string { return f.b }

// Operation returns the selected operation.
func (f *Form) Operation() Operation { return f.op }

// Result returns the text of the result label.
func (f *Form) Result() string {
	return Format(f.result)
}

// Snapshot captures the current state.
func (f *Form) Snapshot() Snapshot {
	return Snapshot{
		A:         f.a,
		B:         f.b,
		Operation: f.op.Label(),
		Result:    Format(f.result),
		Undefined: f.result.IsUndefined(),
	}
}

func (f *Form) recalculate() {
	f.result = Evaluate(ParseNumber(f.a), ParseNumber(f.b), f.op)
}
