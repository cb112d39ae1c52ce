package content

// lessonSchema is the JSON Schema every embedded lesson file must satisfy.
// Structural validation only; semantic rules (exactly one correct option,
// unique ids) are checked in code after unmarshalling.
var lessonSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":       map[string]any{"type": "string", "minLength": 1},
		"title":    map[string]any{"type": "string", "minLength": 1},
		"tagline":  map[string]any{"type": "string"},
		"hook":     map[string]any{"type": "string", "minLength": 1},
		"predict":  predictSchema,
		"play_hint": map[string]any{
			"type": "string",
		},
		"review":          map[string]any{"type": "string", "minLength": 1},
		"twist_predict":   predictSchema,
		"twist_play_hint": map[string]any{"type": "string"},
		"twist_review":    map[string]any{"type": "string", "minLength": 1},
		"mastery":         map[string]any{"type": "string"},
		"play_damage_gate": map[string]any{
			"type":    "number",
			"minimum": 0,
		},
		"pass_threshold": map[string]any{
			"type":    "integer",
			"minimum": 1,
		},
		"applications": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":       map[string]any{"type": "string", "minLength": 1},
					"description": map[string]any{"type": "string"},
					"prompt":      map[string]any{"type": "string"},
					"answer":      map[string]any{"type": "string"},
				},
				"required":             []any{"title", "description", "prompt", "answer"},
				"additionalProperties": false,
			},
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"scenario": map[string]any{"type": "string"},
					"prompt":   map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":     "array",
						"minItems": 2,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":      map[string]any{"type": "string", "minLength": 1},
								"label":   map[string]any{"type": "string", "minLength": 1},
								"correct": map[string]any{"type": "boolean"},
							},
							"required":             []any{"id", "label"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"prompt", "options"},
				"additionalProperties": false,
			},
		},
	},
	"required": []any{
		"id", "title", "hook", "predict", "review",
		"twist_predict", "twist_review",
		"applications", "questions", "pass_threshold",
	},
	"additionalProperties": false,
}

var predictSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"prompt": map[string]any{"type": "string", "minLength": 1},
		"options": map[string]any{
			"type":     "array",
			"minItems": 2,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":    map[string]any{"type": "string", "minLength": 1},
					"label": map[string]any{"type": "string", "minLength": 1},
				},
				"required":             []any{"id", "label"},
				"additionalProperties": false,
			},
		},
		"correct": map[string]any{"type": "string", "minLength": 1},
	},
	"required":             []any{"prompt", "options", "correct"},
	"additionalProperties": false,
}
