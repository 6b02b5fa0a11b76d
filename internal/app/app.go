package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tubequiz/internal/llm"
	"github.com/abhisek/tubequiz/internal/quizgen"
	"github.com/abhisek/tubequiz/internal/router"
	"github.com/abhisek/tubequiz/internal/screen"
	quizscreen "github.com/abhisek/tubequiz/internal/screens/quiz"
	"github.com/abhisek/tubequiz/internal/screens/setup"
	"github.com/abhisek/tubequiz/internal/ui/layout"
	"github.com/abhisek/tubequiz/internal/youtube"
)

// Options configures the TUI.
type Options struct {
	// Config selects and configures the LLM provider.
	Config llm.Config

	// Language is the preferred caption language code.
	Language string

	// Verbose logs one line per LLM call to stderr.
	Verbose bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	model  string
	width  int
	height int
}

// newAppModel builds the screen stack. When the configured provider
// has no API key, the setup screen runs first and hands the provider
// to the quiz screen once the user supplies one.
func newAppModel(opts Options) AppModel {
	var ytOpts []youtube.Option
	if opts.Language != "" {
		ytOpts = append(ytOpts, youtube.WithLanguage(opts.Language))
	}
	yt := youtube.NewClient(ytOpts...)

	quizFactory := func(provider llm.Provider) screen.Screen {
		if opts.Verbose {
			provider = llm.WithLogging(provider, os.Stderr)
		}
		return quizscreen.New(yt, quizgen.New(provider, quizgen.DefaultConfig()))
	}

	var first screen.Screen
	if err := opts.Config.Validate(); err == nil {
		provider, perr := llm.NewProvider(context.Background(), opts.Config)
		if perr == nil {
			first = quizFactory(provider)
		}
	}
	if first == nil {
		first = setup.New(opts.Config, quizFactory)
	}

	return AppModel{
		router: router.New(first),
		model:  opts.Config.ModelName(),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.model, m.width)

	footerHints := []layout.KeyHint{}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(footerHints, hp.KeyHints()...)
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
