package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func questionSchema() *Schema {
	return &Schema{
		Name:        "quiz-question",
		Description: "A single quiz question with its expected answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"answer":   map[string]any{"type": "string"},
				"difficulty": map[string]any{
					"type": "string",
					"enum": []any{"easy", "medium", "hard"},
				},
			},
			"required":             []any{"question", "answer"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	content := json.RawMessage(`{"question":"What does has_many :through set up?","answer":"A many-to-many association through a join model","difficulty":"medium"}`)
	if err := validateResponse(questionSchema(), content); err != nil {
		t.Fatalf("expected valid, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	content := json.RawMessage(`{"question":"What is a migration?"}`)
	err := validateResponse(questionSchema(), content)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	content := json.RawMessage(`{"question":"What is a migration?","answer":42}`)
	if err := validateResponse(questionSchema(), content); err == nil {
		t.Fatal("expected error for wrong field type")
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	content := json.RawMessage(`{"question":"q","answer":"a","difficulty":"impossible"}`)
	if err := validateResponse(questionSchema(), content); err == nil {
		t.Fatal("expected error for enum value outside the allowed set")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	content := json.RawMessage(`{"question": "truncated`)
	err := validateResponse(questionSchema(), content)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_EmptyContent(t *testing.T) {
	if err := validateResponse(questionSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty content")
	}
}

func TestValidateResponse_NilSchemaSkipsValidation(t *testing.T) {
	content := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, content); err != nil {
		t.Fatalf("nil schema should skip validation, got: %v", err)
	}
}

func TestValidateResponse_NestedArrays(t *testing.T) {
	schema := &Schema{
		Name: "quiz-questions",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"question": map[string]any{"type": "string"},
							"answer":   map[string]any{"type": "string"},
						},
						"required": []any{"question", "answer"},
					},
				},
			},
			"required": []any{"questions"},
		},
	}

	valid := json.RawMessage(`{"questions":[{"question":"What does rails db:migrate do?","answer":"Runs pending migrations"}]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected valid, got: %v", err)
	}

	invalid := json.RawMessage(`{"questions":[{"question":"missing answer"}]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for item missing required field")
	}
}

func TestValidateResponse_SchemaCacheReuse(t *testing.T) {
	schema := questionSchema()
	content := json.RawMessage(`{"question":"q","answer":"a"}`)

	for i := 0; i < 3; i++ {
		if err := validateResponse(schema, content); err != nil {
			t.Fatalf("pass %d: %v", i, err)
		}
	}
}
