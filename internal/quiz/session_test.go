package quiz

import (
	"errors"
	"testing"
)

func TestSession_StartsIdle(t *testing.T) {
	s := NewSession()
	if s.Phase() != PhaseIdle {
		t.Fatalf("phase = %s, want idle", s.Phase())
	}
	if s.ID == "" {
		t.Fatal("expected a session ID")
	}
}

func TestSession_GenerationSuccess(t *testing.T) {
	s := NewSession()
	s.BeginGeneration()
	if s.Phase() != PhaseGenerating {
		t.Fatalf("phase = %s, want generating", s.Phase())
	}

	s.CompleteGeneration(threeItemQuiz())
	if s.Phase() != PhaseReady {
		t.Fatalf("phase = %s, want ready", s.Phase())
	}
	if len(s.Quiz()) != 3 {
		t.Fatalf("quiz length = %d, want 3", len(s.Quiz()))
	}
}

func TestSession_GenerationFailureReturnsToIdle(t *testing.T) {
	s := NewSession()
	s.BeginGeneration()
	s.FailGeneration(errors.New("boom"))

	if s.Phase() != PhaseIdle {
		t.Fatalf("phase = %s, want idle", s.Phase())
	}
	if s.Err() == nil {
		t.Fatal("expected recorded error")
	}
	if s.Quiz() != nil {
		t.Fatal("expected no quiz after failed generation")
	}
}

func TestSession_EmptyQuizCountsAsFailure(t *testing.T) {
	s := NewSession()
	s.BeginGeneration()
	s.CompleteGeneration(Quiz{})

	if s.Phase() != PhaseIdle {
		t.Fatalf("phase = %s, want idle", s.Phase())
	}
	if s.Err() == nil {
		t.Fatal("expected recorded error for empty quiz")
	}
}

func TestSession_SubmitScoresAndTransitions(t *testing.T) {
	s := NewSession()
	s.BeginGeneration()
	s.CompleteGeneration(threeItemQuiz())

	s.SelectAnswer(0, "a")
	s.SelectAnswer(1, "g")
	s.SelectAnswer(2, "l")

	r := s.Submit()
	if s.Phase() != PhaseScored {
		t.Fatalf("phase = %s, want scored", s.Phase())
	}
	if r.Correct != 2 || r.Total != 3 {
		t.Fatalf("score = %d/%d, want 2/3", r.Correct, r.Total)
	}

	// Resubmitting the same answers yields the same score.
	again := s.Submit()
	if again.Correct != r.Correct || again.Total != r.Total {
		t.Fatalf("resubmit score = %d/%d, want %d/%d", again.Correct, again.Total, r.Correct, r.Total)
	}
}

func TestSession_RegenerationDiscardsEverything(t *testing.T) {
	s := NewSession()
	s.BeginGeneration()
	s.CompleteGeneration(threeItemQuiz())
	s.SelectAnswer(0, "a")
	s.Submit()

	s.BeginGeneration()
	if s.Quiz() != nil {
		t.Fatal("expected quiz discarded on regeneration")
	}
	if _, ok := s.Answer(0); ok {
		t.Fatal("expected answers discarded on regeneration")
	}
	if s.Result() != nil {
		t.Fatal("expected result discarded on regeneration")
	}
}

func TestSession_SelectAnswerIgnoredOutsideReady(t *testing.T) {
	s := NewSession()
	s.SelectAnswer(0, "a")
	if _, ok := s.Answer(0); ok {
		t.Fatal("idle session recorded an answer")
	}

	s.BeginGeneration()
	s.CompleteGeneration(threeItemQuiz())
	s.SelectAnswer(99, "a")
	if _, ok := s.Answer(99); ok {
		t.Fatal("out-of-range answer recorded")
	}
}
