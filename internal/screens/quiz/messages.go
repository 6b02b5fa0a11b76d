package quiz

import (
	"time"

	qz "github.com/abhisek/tubequiz/internal/quiz"
)

// quizReadyMsg is sent when the transcript has been fetched and the
// quiz generated, or when either step fails.
type quizReadyMsg struct {
	Quiz qz.Quiz
	Err  error
}

// spinnerTickMsg is sent at short intervals to animate the loading
// spinner while generation runs.
type spinnerTickMsg time.Time
