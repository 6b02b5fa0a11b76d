package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/tubequiz/internal/llm"
	"github.com/abhisek/tubequiz/internal/quiz"
)

// DefaultQuestionCount is used when the caller requests zero questions.
const DefaultQuestionCount = 5

// Generator produces a quiz from a transcript using an LLM provider.
type Generator interface {
	// Generate produces a quiz of roughly count questions from the
	// transcript. The returned quiz is validated: every item has
	// exactly 4 options and its answer present among them. A failure
	// yields a nil quiz and a typed error; nothing panics past this
	// boundary.
	Generate(ctx context.Context, transcript string, count int) (quiz.Quiz, error)
}

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators run on every
	// generated item. The first failure rejects the whole generation.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&AnswerMatchValidator{},
		},
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// itemOutput is the raw LLM response shape before validation.
type itemOutput struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

func (g *LLMGenerator) Generate(ctx context.Context, transcript string, count int) (quiz.Quiz, error) {
	if count <= 0 {
		count = DefaultQuestionCount
	}

	ctx = llm.WithPurpose(ctx, "quiz-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(transcript, count)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	if resp.StopReason == "max_tokens" {
		return nil, &llm.ErrMaxTokensExceeded{Content: resp.Content}
	}

	var raw []itemOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("parse quiz response: %w", err),
		}
	}

	q := make(quiz.Quiz, len(raw))
	for i, item := range raw {
		q[i] = quiz.Item{
			Question: item.Question,
			Options:  item.Options,
			Answer:   item.Answer,
		}
	}

	// Run validators in order; the model occasionally returns a
	// different count than requested and that is accepted, but every
	// item must hold the invariants.
	for i, item := range q {
		for _, v := range g.config.Validators {
			if verr := v.Validate(item, i); verr != nil {
				return nil, verr
			}
		}
	}

	return q, nil
}
