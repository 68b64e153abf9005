package server

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/lacquerai/calcform/internal/calc"
)

// Operand is the raw text of a numeric field. Clients may send it as a JSON
// string or a JSON number; either way it reaches the calculator as text.
type Operand string

// UnmarshalJSON accepts strings, numbers and null.
func (o *Operand) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = ""
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*o = Operand(text)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("operand must be a string or a number, got %s", data)
	}
	*o = Operand(number.String())
	return nil
}

// JSONSchema describes Operand as a string or a number.
func (Operand) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "number"},
		},
		Description: "Raw field text. Anything that does not parse as a number counts as 0.",
	}
}

// EvaluateRequest is the body of POST /api/v1/evaluate. Every field is
// optional.
type EvaluateRequest struct {
	A         Operand `json:"a,omitempty" jsonschema:"description=First field"`
	B         Operand `json:"b,omitempty" jsonschema:"description=Second field"`
	Operation string  `json:"operation,omitempty" jsonschema:"description=Operation label; anything unrecognized is Suma,enum=Suma,enum=Resta,enum=Multiplicación,enum=División"`
}

// EvaluateResponse mirrors the form after the request has been applied.
type EvaluateResponse struct {
	A         string `json:"a" jsonschema:"description=First field as received"`
	B         string `json:"b" jsonschema:"description=Second field as received"`
	Operation string `json:"operation" jsonschema:"description=Operation actually applied"`
	Result    string `json:"result" jsonschema:"description=Result label text; - when undefined"`
	Undefined bool   `json:"undefined" jsonschema:"description=True for a division by zero"`
}

// OperationInfo describes one entry of the operation picker.
type OperationInfo struct {
	Label  string `json:"label" yaml:"label"`
	Symbol string `json:"symbol" yaml:"symbol"`
}

// LiveEdit is a message sent by a live session client.
type LiveEdit struct {
	Field string  `json:"field" jsonschema:"enum=a,enum=b,enum=operation"`
	Value Operand `json:"value"`
}

// LiveMessage is sent to a live session client: the form state after an edit,
// or an error for an edit that could not be applied.
type LiveMessage struct {
	*calc.Snapshot
	Error string `json:"error,omitempty"`
}

// ListOperations returns the picker entries in order.
func ListOperations() []OperationInfo {
	ops := calc.Operations()
	infos := make([]OperationInfo, 0, len(ops))
	for _, op := range ops {
		infos = append(infos, OperationInfo{Label: op.Label(), Symbol: op.Symbol()})
	}
	return infos
}

func newEvaluateResponse(snapshot calc.Snapshot) EvaluateResponse {
	return EvaluateResponse{
		A:         snapshot.A,
		B:         snapshot.B,
		Operation: snapshot.Operation,
		Result:    snapshot.Result,
		Undefined: snapshot.Undefined,
	}
}
