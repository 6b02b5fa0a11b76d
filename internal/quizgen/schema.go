package quizgen

import "github.com/abhisek/tubequiz/internal/llm"

// QuizSchema defines the JSON schema for LLM quiz generation responses:
// a raw list of question objects.
var QuizSchema = &llm.Schema{
	Name:        "quiz-items",
	Description: "A multiple-choice quiz generated from a video transcript",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type":        "string",
					"description": "The question shown to the user",
				},
				"options": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"minItems":    4,
					"maxItems":    4,
					"description": "Exactly 4 possible answers",
				},
				"answer": map[string]any{
					"type":        "string",
					"description": "The correct answer, identical to one of the options",
				},
			},
			"required":             []any{"question", "options", "answer"},
			"additionalProperties": false,
		},
	},
}
