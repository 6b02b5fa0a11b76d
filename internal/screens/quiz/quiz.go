package quiz

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	qz "github.com/abhisek/tubequiz/internal/quiz"
	"github.com/abhisek/tubequiz/internal/quizgen"
	"github.com/abhisek/tubequiz/internal/router"
	"github.com/abhisek/tubequiz/internal/screen"
	"github.com/abhisek/tubequiz/internal/screens/results"
	"github.com/abhisek/tubequiz/internal/ui/components"
	"github.com/abhisek/tubequiz/internal/ui/layout"
	"github.com/abhisek/tubequiz/internal/youtube"
)

const spinnerInterval = 100 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// QuizScreen drives the whole quiz flow: URL entry, generation,
// answering one question at a time, and submission. Session state
// lives in qz.Session; this screen only holds the view-side of it.
type QuizScreen struct {
	yt        *youtube.Client
	generator quizgen.Generator
	session   *qz.Session

	urlInput  components.TextInput
	videoID   string
	choices   []components.MultiChoice
	current   int
	errMsg    string
	spinFrame int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen with injected dependencies.
func New(yt *youtube.Client, generator quizgen.Generator) *QuizScreen {
	return &QuizScreen{
		yt:        yt,
		generator: generator,
		session:   qz.NewSession(),
		urlInput:  components.NewTextInput("Paste a YouTube URL...", 0),
	}
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.urlInput.Init()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.session.Phase() {
	case qz.PhaseGenerating:
		return nil
	case qz.PhaseReady:
		return []layout.KeyHint{
			{Key: "←/→", Description: "Question"},
			{Key: "1-4/Enter", Description: "Choose"},
			{Key: "S", Description: "Submit"},
			{Key: "N", Description: "New video"},
		}
	case qz.PhaseScored:
		return []layout.KeyHint{
			{Key: "←/→", Description: "Question"},
			{Key: "R", Description: "Results"},
			{Key: "G", Description: "Regenerate"},
			{Key: "N", Description: "New video"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Generate quiz"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return s.handleQuizReady(msg)

	case spinnerTickMsg:
		if s.session.Phase() != qz.PhaseGenerating {
			return s, nil
		}
		s.spinFrame++
		return s, spinnerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.session.Phase() == qz.PhaseIdle {
		var cmd tea.Cmd
		s.urlInput, cmd = s.urlInput.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.session.Phase() {
	case qz.PhaseIdle:
		if key == "enter" {
			return s.startGeneration()
		}
		s.errMsg = ""
		var cmd tea.Cmd
		s.urlInput, cmd = s.urlInput.Update(msg)
		s.videoID = youtube.ExtractVideoID(s.urlInput.Value())
		return s, cmd

	case qz.PhaseGenerating:
		// Generation is not cancellable from here; ignore input.
		return s, nil

	case qz.PhaseReady:
		switch key {
		case "left", "h":
			if s.current > 0 {
				s.current--
			}
			return s, nil
		case "right", "l":
			if s.current < len(s.choices)-1 {
				s.current++
			}
			return s, nil
		case "s":
			return s.submit()
		case "n":
			s.reset()
			return s, s.urlInput.Init()
		}
		return s.handleChoiceKey(msg)

	case qz.PhaseScored:
		switch key {
		case "left", "h":
			if s.current > 0 {
				s.current--
			}
		case "right", "l":
			if s.current < len(s.choices)-1 {
				s.current++
			}
		case "r":
			return s, s.pushResults()
		case "g":
			return s.regenerate()
		case "n":
			s.reset()
			return s, s.urlInput.Init()
		}
		return s, nil
	}

	return s, nil
}

// handleChoiceKey forwards a key to the active question and records
// the choice in the session.
func (s *QuizScreen) handleChoiceKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.current >= len(s.choices) {
		return s, nil
	}

	mc, cmd := s.choices[s.current].Update(msg)
	s.choices[s.current] = mc

	if mc.Chosen >= 0 {
		s.session.SelectAnswer(s.current, mc.ChosenOption())
	}

	return s, cmd
}

// startGeneration kicks off the transcript fetch and quiz generation.
// A URL with no recognizable video ID is ignored.
func (s *QuizScreen) startGeneration() (screen.Screen, tea.Cmd) {
	id := youtube.ExtractVideoID(s.urlInput.Value())
	if id == "" {
		return s, nil
	}

	s.videoID = id
	s.errMsg = ""
	s.session.BeginGeneration()

	return s, tea.Batch(s.generate(id), spinnerTick())
}

// regenerate re-runs generation for the current video, discarding the
// previous quiz and answers.
func (s *QuizScreen) regenerate() (screen.Screen, tea.Cmd) {
	if s.videoID == "" {
		return s, nil
	}

	s.errMsg = ""
	s.choices = nil
	s.current = 0
	s.session.BeginGeneration()

	return s, tea.Batch(s.generate(s.videoID), spinnerTick())
}

func (s *QuizScreen) generate(videoID string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		transcript, err := s.yt.Transcript(ctx, videoID)
		if err != nil {
			return quizReadyMsg{Err: err}
		}

		q, err := s.generator.Generate(ctx, transcript, quizgen.DefaultQuestionCount)
		return quizReadyMsg{Quiz: q, Err: err}
	}
}

func (s *QuizScreen) handleQuizReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.session.FailGeneration(msg.Err)
		s.errMsg = friendlyError(msg.Err)
		return s, nil
	}

	s.session.CompleteGeneration(msg.Quiz)
	if s.session.Phase() != qz.PhaseReady {
		s.errMsg = "The model returned an empty quiz. Try again."
		return s, nil
	}

	s.choices = make([]components.MultiChoice, len(msg.Quiz))
	for i, item := range msg.Quiz {
		s.choices[i] = components.NewMultiChoice(item.Question, item.Options, correctIndex(item))
	}
	s.current = 0

	return s, nil
}

func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	s.session.Submit()
	for i := range s.choices {
		s.choices[i].Reveal()
	}
	return s, s.pushResults()
}

func (s *QuizScreen) pushResults() tea.Cmd {
	result := s.session.Result()
	if result == nil {
		return nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: results.New(*result)}
	}
}

// reset returns the screen to URL entry, discarding the current quiz.
func (s *QuizScreen) reset() {
	s.session = qz.NewSession()
	s.urlInput = components.NewTextInput("Paste a YouTube URL...", 0)
	s.videoID = ""
	s.choices = nil
	s.current = 0
	s.errMsg = ""
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// correctIndex locates the answer among the options. Validation
// guarantees a match for generated quizzes; -1 means no option will
// be marked correct.
func correctIndex(item qz.Item) int {
	for i, opt := range item.Options {
		if opt == item.Answer {
			return i
		}
	}
	return -1
}

// friendlyError maps pipeline errors to a short message for the
// status line.
func friendlyError(err error) string {
	var noCaptions *youtube.ErrNoCaptions
	if errors.As(err, &noCaptions) {
		return "No captions available for this video."
	}

	var fetchErr *youtube.ErrCaptionFetch
	if errors.As(err, &fetchErr) {
		return "Could not fetch the transcript. Check your connection and try again."
	}

	var parseErr *youtube.ErrCaptionParse
	if errors.As(err, &parseErr) {
		return "The transcript could not be read for this video."
	}

	var vErr *quizgen.ValidationError
	if errors.As(err, &vErr) {
		return "The model produced a malformed quiz. Try regenerating."
	}

	return err.Error()
}
