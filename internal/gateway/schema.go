package gateway

import "github.com/abhisek/dreamteacher/internal/llm"

// ProfileSchema is the structured output contract for KindProfile.
// Item counts are checked by the parser rather than the schema, since
// strict-mode providers reject minItems/maxItems.
var ProfileSchema = &llm.Schema{
	Name:        "mentor-profile",
	Description: "An AI mentor persona with a short aptitude quiz and interest tags",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{
				"type":        "string",
				"description": "Creative mentor name",
			},
			"motto": map[string]any{
				"type":        "string",
				"description": "Short inspiring motto",
			},
			"subjects": map[string]any{
				"type":        "array",
				"description": "3-5 subjects the mentor teaches",
				"items":       map[string]any{"type": "string"},
			},
			"personality": map[string]any{
				"type":        "string",
				"description": "Brief personality description",
			},
			"teachingStyle": map[string]any{
				"type":        "string",
				"description": "How the mentor teaches, one sentence",
			},
			"aptitudeQuestions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"options": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"correctIndex": map[string]any{"type": "integer"},
					},
					"required":             []any{"question", "options", "correctIndex"},
					"additionalProperties": false,
				},
			},
			"interestTags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"name", "motto", "subjects", "personality", "teachingStyle", "aptitudeQuestions", "interestTags"},
		"additionalProperties": false,
	},
}
