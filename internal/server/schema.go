package server

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/stoewer/go-strcase"
)

// Payloads lists every body the HTTP API reads or writes
type Payloads struct {
	EvaluateRequest  EvaluateRequest  `json:"evaluate_request"`
	EvaluateResponse EvaluateResponse `json:"evaluate_response"`
	Operations       []OperationInfo  `json:"operations"`
	LiveEdit         LiveEdit         `json:"live_edit"`
	LiveMessage      LiveMessage      `json:"live_message"`
}

// NewSchema returns the JSON Schema of the API payloads, indented
func NewSchema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		KeyNamer: strcase.SnakeCase,
		Namer: func(t reflect.Type) string {
			return strcase.SnakeCase(t.Name())
		},
		ExpandedStruct: true,
	}

	schema := reflector.Reflect(&Payloads{})
	schema.Title = "calcform HTTP API"
	return json.MarshalIndent(schema, "", "  ")
}
