package screening

// catalogSchema defines the JSON schema for a user-defined instrument
// catalog file. Band coverage (contiguous, gap-free ranges) cannot be
// expressed in JSON schema and is checked separately after decoding.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"instruments": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":    "string",
						"pattern": "^[a-z][a-z0-9_-]*$",
					},
					"name": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"max_item_value": map[string]any{
						"type":    "integer",
						"minimum": 1,
					},
					"scale_labels": map[string]any{
						"type":     "array",
						"minItems": 2,
						"items":    map[string]any{"type": "string", "minLength": 1},
					},
					"questions": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    map[string]any{"type": "string", "minLength": 1},
					},
					"bands": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"low":   map[string]any{"type": "integer", "minimum": 0},
								"high":  map[string]any{"type": "integer", "minimum": 0},
								"label": map[string]any{"type": "string", "minLength": 1},
							},
							"required":             []any{"low", "high", "label"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "name", "max_item_value", "scale_labels", "questions", "bands"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"instruments"},
	"additionalProperties": false,
}
