package catalog

// courseSchema is the JSON schema for imported course files.
var courseSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"modules": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":      map[string]any{"type": "string", "minLength": 1},
					"title":   map[string]any{"type": "string", "minLength": 1},
					"summary": map[string]any{"type": "string"},
					"lessons": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":    map[string]any{"type": "string", "minLength": 1},
								"title": map[string]any{"type": "string", "minLength": 1},
								"cards": map[string]any{
									"type":     "array",
									"minItems": 1,
									"items": map[string]any{
										"type": "object",
										"properties": map[string]any{
											"id":    map[string]any{"type": "string", "minLength": 1},
											"front": map[string]any{"type": "string", "minLength": 1},
											"back":  map[string]any{"type": "string", "minLength": 1},
											"notes": map[string]any{"type": "string"},
										},
										"required":             []any{"id", "front", "back"},
										"additionalProperties": false,
									},
								},
								"questions": map[string]any{
									"type": "array",
									"items": map[string]any{
										"type": "object",
										"properties": map[string]any{
											"id":         map[string]any{"type": "string", "minLength": 1},
											"concept_id": map[string]any{"type": "string"},
											"prompt":     map[string]any{"type": "string", "minLength": 1},
											"options": map[string]any{
												"type":  "array",
												"items": map[string]any{"type": "string"},
											},
											"correct_answer": map[string]any{"type": "string", "minLength": 1},
											"explanation":    map[string]any{"type": "string"},
											"related_card_ids": map[string]any{
												"type":  "array",
												"items": map[string]any{"type": "string"},
											},
										},
										"required":             []any{"id", "prompt", "correct_answer"},
										"additionalProperties": false,
									},
								},
							},
							"required":             []any{"id", "title", "cards"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "title", "lessons"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"modules"},
	"additionalProperties": false,
}
