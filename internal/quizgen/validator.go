package quizgen

import (
	"fmt"

	"github.com/abhisek/tubequiz/internal/quiz"
)

// Validator checks a generated quiz item for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, used in
	// error messages, e.g. "structural", "answer-match".
	Name() string

	// Validate checks the item at the given position and returns nil
	// if it passes.
	Validate(item quiz.Item, index int) *ValidationError
}

// ValidationError describes why a generated item failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Index     int    // Position of the offending item in the response
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: item %d: %s", e.Validator, e.Index, e.Message)
}

// StructuralValidator checks that required fields are present and the
// option count is exact.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(item quiz.Item, index int) *ValidationError {
	if item.Question == "" {
		return &ValidationError{
			Validator: v.Name(),
			Index:     index,
			Message:   "question is empty",
		}
	}
	if len(item.Options) != quiz.OptionCount {
		return &ValidationError{
			Validator: v.Name(),
			Index:     index,
			Message:   fmt.Sprintf("expected %d options, got %d", quiz.OptionCount, len(item.Options)),
		}
	}
	for i, opt := range item.Options {
		if opt == "" {
			return &ValidationError{
				Validator: v.Name(),
				Index:     index,
				Message:   fmt.Sprintf("option %d is empty", i),
			}
		}
	}
	if item.Answer == "" {
		return &ValidationError{
			Validator: v.Name(),
			Index:     index,
			Message:   "answer is empty",
		}
	}
	return nil
}

// AnswerMatchValidator enforces the core quiz invariant: the answer
// must appear verbatim among the options. The model contract demands
// it but models drift.
type AnswerMatchValidator struct{}

func (v *AnswerMatchValidator) Name() string { return "answer-match" }

func (v *AnswerMatchValidator) Validate(item quiz.Item, index int) *ValidationError {
	for _, opt := range item.Options {
		if opt == item.Answer {
			return nil
		}
	}
	return &ValidationError{
		Validator: v.Name(),
		Index:     index,
		Message:   fmt.Sprintf("answer %q not present among options", item.Answer),
	}
}
