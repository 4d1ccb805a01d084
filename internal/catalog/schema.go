package catalog

// catalogSchema is the JSON schema the embedded content is validated
// against at load time. It encodes the structural invariants the grader
// relies on: known kinds, non-empty lessons, per-kind required fields.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"course":  map[string]any{"type": "string"},
		"mascot":  map[string]any{"type": "string"},
		"version": map[string]any{"type": "integer", "minimum": 1},
		"lessons": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       map[string]any{"type": "string", "minLength": 1},
					"category": map[string]any{"type": "string", "minLength": 1},
					"title":    map[string]any{"type": "string", "minLength": 1},
					"exercises": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    exerciseSchema,
					},
				},
				"required":             []any{"id", "category", "title", "exercises"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"course", "mascot", "version", "lessons"},
	"additionalProperties": false,
}

var exerciseSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"kind": map[string]any{
			"type": "string",
			"enum": []any{"choice", "fill", "order", "match", "audio"},
		},
		"prompt": map[string]any{"type": "string", "minLength": 1},
		"options": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string"},
			"minItems": 2,
		},
		"words": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string"},
			"minItems": 2,
		},
		"order": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string"},
			"minItems": 2,
		},
		"pairs": map[string]any{
			"type":     "array",
			"minItems": 2,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"left":  map[string]any{"type": "string", "minLength": 1},
					"right": map[string]any{"type": "string", "minLength": 1},
				},
				"required":             []any{"left", "right"},
				"additionalProperties": false,
			},
		},
		"speak": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text":   map[string]any{"type": "string", "minLength": 1},
				"locale": map[string]any{"type": "string", "minLength": 2},
			},
			"required":             []any{"text", "locale"},
			"additionalProperties": false,
		},
		"answer": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"single": map[string]any{"type": "string"},
				"any_of": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 1,
				},
			},
			"additionalProperties": false,
		},
	},
	"required":             []any{"kind", "prompt"},
	"additionalProperties": false,
}
