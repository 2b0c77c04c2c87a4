package generation

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// FieldType is the JSON shape of a schema field.
type FieldType string

// Supported field types.
const (
	FieldString     FieldType = "string"
	FieldStringList FieldType = "string_list"
	FieldObjectList FieldType = "object_list"
)

// Field describes one property of a structured response.
type Field struct {
	Name        string
	Type        FieldType
	Required    bool
	Description string
	// Items describes the elements of an object_list field.
	Items *Schema
}

// Schema is an explicit description of a structured model response. It is
// rendered into prompt instructions and used to validate what comes back.
type Schema struct {
	Name        string
	Description string
	Fields      []Field

	once     sync.Once
	compiled *gojsonschema.Schema
	err      error
}

// ValidationResult reports whether a response satisfied a schema.
type ValidationResult struct {
	Valid  bool
	Reason string
}

// JSONSchema returns the schema as a JSON Schema document.
func (s *Schema) JSONSchema() map[string]any {
	properties := make(map[string]any, len(s.Fields))
	required := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		properties[f.Name] = f.jsonSchema()
		if f.Required {
			required = append(required, f.Name)
		}
	}

	doc := map[string]any{
		"title":      s.Name,
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
	if s.Description != "" {
		doc["description"] = s.Description
	}
	return doc
}

func (f Field) jsonSchema() map[string]any {
	var prop map[string]any
	switch f.Type {
	case FieldStringList:
		prop = map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		}
	case FieldObjectList:
		items := map[string]any{"type": "object"}
		if f.Items != nil {
			items = f.Items.JSONSchema()
		}
		prop = map[string]any{
			"type":  "array",
			"items": items,
		}
	default:
		prop = map[string]any{"type": "string"}
	}
	if f.Description != "" {
		prop["description"] = f.Description
	}
	return prop
}

const formatInstructionsTemplate = `The output should be formatted as a JSON instance that conforms to the JSON schema below.

As an example, for the schema {"properties": {"foo": {"title": "Foo", "description": "a list of strings", "type": "array", "items": {"type": "string"}}}, "required": ["foo"]}
the object {"foo": ["bar", "baz"]} is a well-formatted instance of the schema. The object {"properties": {"foo": ["bar", "baz"]}} is not well-formatted.

Here is the output schema:
` + "```" + `
%s
` + "```"

// FormatInstructions returns the prompt text telling the model how to shape
// its answer. The output is deterministic for a given schema.
func (s *Schema) FormatInstructions() string {
	// Map keys are sorted by encoding/json, so the rendering is stable.
	raw, err := json.Marshal(s.JSONSchema())
	if err != nil {
		return ""
	}
	return fmt.Sprintf(formatInstructionsTemplate, raw)
}

func (s *Schema) compile() (*gojsonschema.Schema, error) {
	s.once.Do(func() {
		s.compiled, s.err = gojsonschema.NewSchema(gojsonschema.NewGoLoader(s.JSONSchema()))
	})
	return s.compiled, s.err
}

// Validate checks a raw JSON document against the schema.
func (s *Schema) Validate(raw []byte) ValidationResult {
	compiled, err := s.compile()
	if err != nil {
		return ValidationResult{Reason: fmt.Sprintf("schema %s does not compile: %v", s.Name, err)}
	}

	result, err := compiled.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return ValidationResult{Reason: fmt.Sprintf("malformed JSON: %v", err)}
	}
	if !result.Valid() {
		reasons := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			reasons = append(reasons, e.String())
		}
		return ValidationResult{Reason: strings.Join(reasons, "; ")}
	}
	return ValidationResult{Valid: true}
}

// Parse extracts a JSON document from model output, validates it against the
// schema and decodes it into a T.
func Parse[T any](s *Schema, output string) (T, error) {
	var out T

	raw := []byte(extractJSONBlock(output))
	if res := s.Validate(raw); !res.Valid {
		return out, fmt.Errorf("%w: %s", ErrInvalidResponse, res.Reason)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return out, nil
}
