package setup

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tubequiz/internal/llm"
	"github.com/abhisek/tubequiz/internal/router"
	"github.com/abhisek/tubequiz/internal/screen"
	"github.com/abhisek/tubequiz/internal/ui/components"
	"github.com/abhisek/tubequiz/internal/ui/layout"
	"github.com/abhisek/tubequiz/internal/ui/theme"
)

// SetupScreen collects an API key when none was found in the
// environment. The key is held in memory only; nothing is written to
// disk. On success it replaces itself with the screen produced by
// nextFactory.
type SetupScreen struct {
	cfg         llm.Config
	nextFactory func(llm.Provider) screen.Screen
	input       components.TextInput
	errMsg      string
	connecting  bool
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// providerReadyMsg is sent when the provider has been constructed.
type providerReadyMsg struct {
	Provider llm.Provider
	Err      error
}

// New creates a SetupScreen for the configured provider.
func New(cfg llm.Config, nextFactory func(llm.Provider) screen.Screen) *SetupScreen {
	return &SetupScreen{
		cfg:         cfg,
		nextFactory: nextFactory,
		input:       components.NewMaskedInput("Paste your API key...", 256),
	}
}

func (s *SetupScreen) Title() string {
	return "Setup"
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Connect"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case providerReadyMsg:
		s.connecting = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		next := s.nextFactory(msg.Provider)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}

	case tea.KeyMsg:
		if s.connecting {
			return s, nil
		}
		if msg.String() == "enter" {
			return s.connect()
		}
		s.errMsg = ""
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SetupScreen) connect() (screen.Screen, tea.Cmd) {
	key := strings.TrimSpace(s.input.Value())
	if key == "" {
		s.errMsg = "API key cannot be empty"
		return s, nil
	}

	cfg := s.cfg.WithAPIKey(key)
	if err := cfg.Validate(); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.connecting = true
	return s, func() tea.Msg {
		provider, err := llm.NewProvider(context.Background(), cfg)
		return providerReadyMsg{Provider: provider, Err: err}
	}
}

func (s *SetupScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Welcome to Tubequiz")
	sections = append(sections, title, "")

	intro := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("No API key found for the %s provider.", s.cfg.Provider))
	sections = append(sections, intro)

	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Set %s or paste a key below. The key stays in memory only.",
			envVarFor(s.cfg.Provider)))
	sections = append(sections, hint, "")

	sections = append(sections, "API key: "+s.input.View())

	if s.connecting {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Connecting..."))
	}

	if s.errMsg != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// envVarFor names the environment variable for a provider's key, for
// the on-screen hint.
func envVarFor(provider string) string {
	switch provider {
	case "gemini":
		return "GEMINI_API_KEY"
	case "openai":
		return "OPENAI_API_KEY"
	case "anthropic":
		return "ANTHROPIC_API_KEY"
	case "openrouter":
		return "OPENROUTER_API_KEY"
	}
	return "TUBEQUIZ_" + strings.ToUpper(provider) + "_API_KEY"
}
