package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asouza/lorito/internal/catalog"
	"github.com/asouza/lorito/internal/ledger"
	"github.com/asouza/lorito/internal/router"
	"github.com/asouza/lorito/internal/screen"
	"github.com/asouza/lorito/internal/screens/home"
	"github.com/asouza/lorito/internal/screens/onboarding"
	"github.com/asouza/lorito/internal/screens/profile"
	"github.com/asouza/lorito/internal/speech"
	"github.com/asouza/lorito/internal/store"
	"github.com/asouza/lorito/internal/ui/layout"
)

// Options carries the app dependencies built by the command layer.
type Options struct {
	Ledger   *ledger.Ledger
	Catalog  *catalog.Catalog
	Sessions *store.SessionRepo
	Speaker  speech.Speaker
	Version  string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model. Unregistered learners start at
// onboarding, everyone else at home.
func newAppModel(opts Options) AppModel {
	return AppModel{
		opts:   opts,
		router: router.New(initialScreen(opts)),
	}
}

func initialScreen(opts Options) screen.Screen {
	homeFactory := func() screen.Screen {
		return home.New(home.Deps{
			Ledger:   opts.Ledger,
			Catalog:  opts.Catalog,
			Sessions: opts.Sessions,
			Speaker:  opts.Speaker,
			Version:  opts.Version,
		})
	}
	if !opts.Ledger.Profile().Registered() {
		return onboarding.New(opts.Ledger, homeFactory)
	}
	return homeFactory()
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case profile.ResetDoneMsg:
		// Everything is gone; route back through onboarding.
		m.router = router.New(initialScreen(m.opts))
		return m, m.router.Active().Init()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
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

	prof := m.opts.Ledger.Profile()
	header := layout.RenderHeader(title, layout.HeaderStats{
		Avatar: prof.Avatar,
		XP:     prof.XP,
		Hearts: prof.Hearts,
		Streak: prof.Streak,
	}, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

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

// footerHints asks the active screen first and falls back to stock hints.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
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
