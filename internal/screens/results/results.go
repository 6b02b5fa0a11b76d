package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/tubequiz/internal/quiz"
	"github.com/abhisek/tubequiz/internal/router"
	"github.com/abhisek/tubequiz/internal/screen"
	"github.com/abhisek/tubequiz/internal/ui/layout"
	"github.com/abhisek/tubequiz/internal/ui/theme"
)

// ResultsScreen displays the scored quiz: a verdict per question and
// the total.
type ResultsScreen struct {
	result qz.Result
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for a scored quiz.
func New(result qz.Result) *ResultsScreen {
	return &ResultsScreen{result: result}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter/Esc", Description: "Back"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Quiz complete!"))
	b.WriteString("\n\n")

	scoreLine := fmt.Sprintf("Score: %d/%d", s.result.Correct, s.result.Total)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(scoreLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	lineWidth := min(width-8, 70)
	for i, v := range s.result.Verdicts {
		b.WriteString(s.renderVerdict(i, v, width, lineWidth))
	}

	return b.String()
}

func (s *ResultsScreen) renderVerdict(i int, v qz.Verdict, width, lineWidth int) string {
	var b strings.Builder

	mark := lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	if v.Correct {
		mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	}

	question := lipgloss.NewStyle().
		Width(lineWidth).
		Foreground(theme.Text).
		Render(fmt.Sprintf("%s Q%d: %s", mark, i+1, v.Question))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, question))
	b.WriteString("\n")

	if !v.Correct {
		chosen := v.Chosen
		if chosen == "" {
			chosen = "(no answer)"
		}
		detail := lipgloss.NewStyle().
			Width(lineWidth).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("   Your answer: %s\n   Correct: %s", chosen, v.Answer))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, detail))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
