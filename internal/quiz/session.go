package quiz

import (
	"fmt"

	"github.com/google/uuid"
)

// Phase is the session lifecycle state.
type Phase int

const (
	// PhaseIdle means no quiz is loaded and no generation is running.
	PhaseIdle Phase = iota

	// PhaseGenerating means a generation request is in flight.
	PhaseGenerating

	// PhaseReady means a quiz is loaded and accepting answers.
	PhaseReady

	// PhaseScored means answers were submitted and a result is available.
	PhaseScored
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseGenerating:
		return "generating"
	case PhaseReady:
		return "ready"
	case PhaseScored:
		return "scored"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Session owns at most one active quiz and one answer set at a time.
// Regeneration replaces both atomically; nothing survives across it.
type Session struct {
	ID      string
	phase   Phase
	quiz    Quiz
	answers Answers
	result  *Result
	err     error
}

// NewSession creates an idle session with no quiz loaded.
func NewSession() *Session {
	return &Session{
		ID:      uuid.New().String(),
		phase:   PhaseIdle,
		answers: Answers{},
	}
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Quiz returns the active quiz, nil-safe for idle sessions.
func (s *Session) Quiz() Quiz { return s.quiz }

// Err returns the error recorded by the last failed generation.
func (s *Session) Err() error { return s.err }

// Result returns the score from the last submission, or nil before one.
func (s *Session) Result() *Result { return s.result }

// BeginGeneration discards any prior quiz, answers, and result, and
// moves the session to the generating phase.
func (s *Session) BeginGeneration() {
	s.quiz = nil
	s.answers = Answers{}
	s.result = nil
	s.err = nil
	s.phase = PhaseGenerating
}

// CompleteGeneration installs a freshly generated quiz and moves to
// the ready phase. An empty quiz counts as a failure and returns the
// session to idle.
func (s *Session) CompleteGeneration(q Quiz) {
	if len(q) == 0 {
		s.FailGeneration(fmt.Errorf("generation produced no questions"))
		return
	}
	s.quiz = q
	s.phase = PhaseReady
}

// FailGeneration records the error and returns the session to idle.
// Any in-progress quiz state is already gone from BeginGeneration.
func (s *Session) FailGeneration(err error) {
	s.err = err
	s.phase = PhaseIdle
}

// SelectAnswer records the user's choice for a question. Ignored
// outside the ready phase or for out-of-range indexes.
func (s *Session) SelectAnswer(index int, option string) {
	if s.phase != PhaseReady || index < 0 || index >= len(s.quiz) {
		return
	}
	s.answers[index] = option
}

// Answer returns the recorded choice for a question index, and
// whether one was made.
func (s *Session) Answer(index int) (string, bool) {
	v, ok := s.answers[index]
	return v, ok
}

// Submit scores the current answers against the quiz and moves to the
// scored phase. Submitting again rescores the same state and yields
// the same result.
func (s *Session) Submit() Result {
	r := Score(s.quiz, s.answers)
	s.result = &r
	if s.phase == PhaseReady {
		s.phase = PhaseScored
	}
	return r
}
