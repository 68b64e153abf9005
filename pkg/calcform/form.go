// Package calcform provides a public API for embedding the calculator form in
// other programs. It exposes the same evaluation used by the calcform CLI,
// terminal form and HTTP server.
//
// The main functionality includes:
//   - Computing a result label from two raw field texts and an operation label
//   - Holding a live form whose result follows every edit
//   - Observing form edits through event listeners
//
// Example usage:
//
//	// One-off evaluation
//	result := calcform.Compute("7", "2", "División") // "3.5"
//
//	// A live form reporting every edit
//	form := calcform.NewForm(calcform.WithListener(events.ListenerFunc(func(e events.ChangeEvent) {
//		fmt.Printf("%s = %s\n", e.Field, e.Result)
//	})))
//	form.SetA("10")
//	form.SetB("0")
//	form.Select("División") // prints "operation = -"
package calcform

import (
	"time"

	"github.com/lacquerai/calcform/internal/calc"
	"github.com/lacquerai/calcform/pkg/events"
)

// Snapshot is the visible state of a form: the raw text of both fields, the
// label of the operation in effect and the result label.
type Snapshot = calc.Snapshot

// ErrUnknownField is returned by Form.Set for a field other than "a", "b" or
// "operation". Check for it with errors.Is.
var ErrUnknownField = calc.ErrUnknownField

// Option represents a functional option for configuring a Form.
type Option func(*Form)

// WithListener creates an Option that registers a listener for the form's
// change events. It may be given more than once; listeners are called in
// registration order.
//
// Example:
//
//	var results []string
//	form := NewForm(WithListener(events.ListenerFunc(func(e events.ChangeEvent) {
//		results = append(results, e.Result)
//	})))
func WithListener(listener events.Listener) Option {
	return func(f *Form) {
		if listener != nil {
			f.listeners = append(f.listeners, listener)
		}
	}
}

// Form is a calculator form whose result label is recomputed on every edit.
// A Form is not safe for concurrent use.
type Form struct {
	form      *calc.Form
	listeners []events.Listener
	now       func() time.Time
}

// NewForm returns a form in its initial state: both fields empty, "Suma"
// selected and a result of "0". No event is emitted for the initial state.
func NewForm(options ...Option) *Form {
	f := &Form{
		form: calc.NewForm(),
		now:  time.Now,
	}

	for _, option := range options {
		option(f)
	}

	return f
}

// Set applies an edit by field name, which is how the HTTP live session
// drives a form. Field is "a", "b" or "operation".
func (f *Form) Set(field, value string) error {
	if err := f.form.Set(field, value); err != nil {
		return err
	}

	eventType := events.EventFieldChanged
	if field == calc.FieldOperation {
		eventType = events.EventOperationChanged
	}
	f.emit(eventType, field, value)

	return nil
}

// SetA replaces the text of the first field. Text that is not a number counts
// as 0.
func (f *Form) SetA(text string) {
	f.form.SetA(text)
	f.emit(events.EventFieldChanged, calc.FieldA, text)
}

// SetB replaces the text of the second field. Text that is not a number
// counts as 0.
func (f *Form) SetB(text string) {
	f.form.SetB(text)
	f.emit(events.EventFieldChanged, calc.FieldB, text)
}

// Select picks an operation by its label: "Suma", "Resta", "Multiplicación"
// or "División". Any other label selects "Suma".
func (f *Form) Select(label string) {
	f.form.Select(label)
	f.emit(events.EventOperationChanged, calc.FieldOperation, label)
}

// Result returns the current result label.
func (f *Form) Result() string {
	return f.form.Result()
}

// Snapshot returns the current visible state of the form.
func (f *Form) Snapshot() Snapshot {
	return f.form.Snapshot()
}

func (f *Form) emit(eventType events.ChangeEventType, field, value string) {
	if len(f.listeners) == 0 {
		return
	}

	snapshot := f.form.Snapshot()
	event := events.ChangeEvent{
		Type:      eventType,
		Timestamp: f.now(),
		Field:     field,
		Value:     value,
		A:         snapshot.A,
		B:         snapshot.B,
		Operation: snapshot.Operation,
		Result:    snapshot.Result,
		Undefined: snapshot.Undefined,
	}

	for _, listener := range f.listeners {
		listener.OnChange(event)
	}
}

// Compute returns the result label for two raw field texts and an operation
// label, exactly as a form holding those values would show it.
//
// Example:
//
//	Compute("10", "5", "Suma")     // "15"
//	Compute("10", "0", "División") // "-"
//	Compute("", "4", "Resta")      // "-4"
//	Compute("abc", "abc", "")      // "0"
func Compute(a, b, operation string) string {
	return calc.Compute(a, b, operation)
}

// Operations returns the operation labels in picker order.
func Operations() []string {
	return calc.Labels()
}
