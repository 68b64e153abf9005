// Package events provides types and interfaces for observing a calculator
// form from outside. Every edit applied to a form produces a ChangeEvent
// carrying what was edited and the complete form state after the edit,
// result label included.
package events

import (
	"time"
)

// ChangeEventType represents the kind of edit that produced a ChangeEvent.
type ChangeEventType string

const (
	// EventFieldChanged is emitted when the text of one of the two numeric
	// fields is replaced.
	EventFieldChanged ChangeEventType = "field_changed"

	// EventOperationChanged is emitted when an operation is picked, even
	// when it is the operation that was already selected.
	EventOperationChanged ChangeEventType = "operation_changed"
)

// ChangeEvent describes one edit of a form and the state it left the form in.
type ChangeEvent struct {
	// Type specifies the kind of edit.
	Type ChangeEventType `json:"type"`
	// Timestamp indicates when the edit was applied.
	Timestamp time.Time `json:"timestamp"`
	// Field is the edited field: "a", "b" or "operation".
	Field string `json:"field"`
	// Value is the value the field was set to, as given by the caller.
	Value string `json:"value"`
	// A is the raw text of the first field after the edit.
	A string `json:"a"`
	// B is the raw text of the second field after the edit.
	B string `json:"b"`
	// Operation is the label of the operation in effect after the edit.
	// Unknown labels are reported as "Suma".
	Operation string `json:"operation"`
	// Result is the result label after the edit.
	Result string `json:"result"`
	// Undefined is true when Result is the division by zero marker.
	Undefined bool `json:"undefined"`
}

// Listener receives the change events of a form. OnChange is called
// synchronously, in edit order, on the goroutine that applied the edit.
type Listener interface {
	OnChange(event ChangeEvent)
}

// ListenerFunc adapts an ordinary function to the Listener interface.
type ListenerFunc func(event ChangeEvent)

// OnChange calls f(event).
func (f ListenerFunc) OnChange(event ChangeEvent) {
	f(event)
}

// NoopListener is a Listener implementation that performs no operations.
// It can be used as a default listener when change tracking is not needed.
type NoopListener struct{}

// OnChange implements the Listener interface but performs no operation.
func (n *NoopListener) OnChange(event ChangeEvent) {}
