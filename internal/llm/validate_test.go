package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-object",
		Description: "A test object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":  map[string]any{"type": "string"},
				"age":   map[string]any{"type": "integer", "minimum": 0},
				"grade": map[string]any{"type": "string", "enum": []any{"A", "B", "C"}},
			},
			"required": []any{"name", "age"},
		},
	}
}

func personaSchema() *Schema {
	return &Schema{
		Name: "test-persona",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{"type": "string", "minLength": 1},
				"subjects": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 1,
					"maxItems": 3,
				},
			},
			"required":             []any{"name", "subjects"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		schema  *Schema
		raw     string
		wantErr bool
	}{
		{"valid", testSchema(), `{"name":"Alice","age":10,"grade":"A"}`, false},
		{"valid without optional", testSchema(), `{"name":"Bob","age":8}`, false},
		{"missing required", testSchema(), `{"name":"Charlie"}`, true},
		{"wrong type", testSchema(), `{"name":"Dave","age":"ten"}`, true},
		{"invalid enum", testSchema(), `{"name":"Eve","age":9,"grade":"D"}`, true},
		{"negative minimum", testSchema(), `{"name":"Fay","age":-1}`, true},
		{"malformed", testSchema(), `{"name":`, true},
		{"persona ok", personaSchema(), `{"name":"Sage","subjects":["Math"]}`, false},
		{"persona empty subjects", personaSchema(), `{"name":"Sage","subjects":[]}`, true},
		{"persona too many subjects", personaSchema(), `{"name":"Sage","subjects":["a","b","c","d"]}`, true},
		{"persona extra field", personaSchema(), `{"name":"Sage","subjects":["a"],"age":3}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(tt.schema, json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var inv *ErrInvalidResponse
				if !errors.As(err, &inv) {
					t.Fatalf("expected ErrInvalidResponse, got %T", err)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"  {\"a\":1}\n", `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"```json {\"a\":1}```", `{"a":1}`},
	}
	for _, tt := range tests {
		if got := string(StripCodeFence([]byte(tt.in))); got != tt.want {
			t.Errorf("StripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecodeStructured(t *testing.T) {
	out, err := decodeStructured(personaSchema(), json.RawMessage("```json\n{\"name\":\"Sage\",\"subjects\":[\"Art\"]}\n```"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var v struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(out, &v); err != nil || v.Name != "Sage" {
		t.Fatalf("unexpected decode %q: %v", out, err)
	}
}
