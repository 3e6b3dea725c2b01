package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Request bodies are validated against these schemas before anything is
// decoded or persisted, so the store only ever sees well-formed entity
// documents.

var jobSchema = mustCompile("job.json", map[string]any{
	"type":     "object",
	"required": []any{"title", "category", "description", "deadline", "budget", "buyer"},
	"properties": map[string]any{
		"title":       map[string]any{"type": "string", "minLength": 1},
		"category":    map[string]any{"type": "string", "minLength": 1},
		"description": map[string]any{"type": "string"},
		"deadline":    map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}`},
		"budget":      map[string]any{"type": "number", "minimum": 0},
		"buyer": map[string]any{
			"type":     "object",
			"required": []any{"email"},
			"properties": map[string]any{
				"name":  map[string]any{"type": "string"},
				"email": map[string]any{"type": "string", "minLength": 3},
				"photo": map[string]any{"type": "string"},
			},
		},
	},
})

var bidSchema = mustCompile("bid.json", map[string]any{
	"type":     "object",
	"required": []any{"jobId", "email", "price", "deadline"},
	"properties": map[string]any{
		"jobId":    map[string]any{"type": "string", "minLength": 1},
		"email":    map[string]any{"type": "string", "minLength": 3},
		"price":    map[string]any{"type": "number", "minimum": 0},
		"deadline": map[string]any{"type": "string"},
		"comment":  map[string]any{"type": "string"},
	},
})

// ValidateJob checks a raw request body against the job schema.
func ValidateJob(data []byte) error { return validate(jobSchema, data) }

// ValidateBid checks a raw request body against the bid schema.
func ValidateBid(data []byte) error { return validate(bidSchema, data) }

func validate(s *jsonschema.Schema, data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return s.Validate(v)
}

func mustCompile(name string, schemaMap map[string]any) *jsonschema.Schema {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		panic(err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, bytes.NewReader(b)); err != nil {
		panic(err)
	}
	s, err := c.Compile(name)
	if err != nil {
		panic(err)
	}
	return s
}
