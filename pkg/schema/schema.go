// Package schema provides the JSON Schema of the calcform HTTP API, for
// programs that talk to a running calcform server and want to validate or
// generate the payloads they exchange with it.
//
// Example usage:
//
//	raw, err := schema.GetSchema()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	var doc map[string]interface{}
//	json.Unmarshal(raw, &doc)
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/lacquerai/calcform/internal/server"
)

// GetSchema returns the JSON Schema of every payload the HTTP API reads or
// writes: the evaluate request and response, the operation list, and the
// messages of a live session.
func GetSchema() (json.RawMessage, error) {
	schemaBytes, err := server.NewSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to generate schema: %w", err)
	}

	return json.RawMessage(schemaBytes), nil
}
