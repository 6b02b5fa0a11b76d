package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/tubequiz/internal/quiz"
	"github.com/abhisek/tubequiz/internal/ui/components"
	"github.com/abhisek/tubequiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	switch s.session.Phase() {
	case qz.PhaseGenerating:
		return s.renderGenerating(width, height)
	case qz.PhaseReady, qz.PhaseScored:
		return s.renderQuestion(width, height)
	}
	return s.renderURLEntry(width, height)
}

// renderURLEntry renders the URL prompt with a live video ID preview.
func (s *QuizScreen) renderURLEntry(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Quiz any YouTube video")
	sections = append(sections, title, "")

	sections = append(sections, "Video URL: "+s.urlInput.View())

	if s.videoID != "" {
		preview := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Video ID: %s", s.videoID))
		sections = append(sections, "", preview)
	}

	if s.errMsg != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderGenerating renders the loading state.
func (s *QuizScreen) renderGenerating(width, height int) string {
	frame := spinnerFrames[s.spinFrame%len(spinnerFrames)]

	spinner := lipgloss.NewStyle().Foreground(theme.Primary).Render(frame)
	line := fmt.Sprintf("%s Generating quiz for %s...", spinner, s.videoID)

	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Fetching the transcript and asking the model for questions.")

	content := line + "\n\n" + hint
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderQuestion renders one question with navigation context.
func (s *QuizScreen) renderQuestion(width, height int) string {
	if s.current >= len(s.choices) {
		return ""
	}

	var b strings.Builder

	answered := 0
	for i := range s.choices {
		if _, ok := s.session.Answer(i); ok {
			answered++
		}
	}

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", s.current+1, len(s.choices)))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Answered %d/%d", answered, len(s.choices)))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	question := s.choices[s.current].View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, question))
	b.WriteString("\n")

	if s.session.Phase() == qz.PhaseReady {
		submit := components.NewButton("Submit (s)", answered == len(s.choices), nil)
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, submit.View()))
	}

	if s.session.Phase() == qz.PhaseScored {
		result := s.session.Result()
		if result != nil {
			scoreLine := lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Text).
				Bold(true).
				Render(fmt.Sprintf("Score: %d/%d", result.Correct, result.Total))
			b.WriteString("\n")
			b.WriteString(scoreLine)
		}
	}

	return b.String()
}
