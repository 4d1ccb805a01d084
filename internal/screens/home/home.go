package home

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/asouza/lorito/internal/catalog"
	"github.com/asouza/lorito/internal/ledger"
	"github.com/asouza/lorito/internal/router"
	"github.com/asouza/lorito/internal/screen"
	"github.com/asouza/lorito/internal/screens/history"
	"github.com/asouza/lorito/internal/screens/profile"
	sessionscreen "github.com/asouza/lorito/internal/screens/session"
	"github.com/asouza/lorito/internal/speech"
	"github.com/asouza/lorito/internal/store"
	"github.com/asouza/lorito/internal/ui/components"
	"github.com/asouza/lorito/internal/ui/layout"
	"github.com/asouza/lorito/internal/updatecheck"
)

// Deps are the collaborators the home screen hands down to the screens
// it opens.
type Deps struct {
	Ledger   *ledger.Ledger
	Catalog  *catalog.Catalog
	Sessions *store.SessionRepo
	Speaker  speech.Speaker
	Version  string
}

// updateNoteMsg carries the result of the async release check.
type updateNoteMsg struct {
	latestVersion string
}

// HomeScreen is the lesson picker and main hub.
type HomeScreen struct {
	deps       Deps
	categories []string
	category   int
	menu       components.Menu
	latest     string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{
		deps:       deps,
		categories: deps.Catalog.Categories(),
	}
	h.menu = components.NewMenu(h.buildMenu())
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.checkForUpdate()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Category"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// checkForUpdate pings the release API in the background. A failed check
// just means no note is shown.
func (h *HomeScreen) checkForUpdate() tea.Cmd {
	version := h.deps.Version
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		checker := updatecheck.NewChecker()
		result, err := checker.Check(ctx, &updatecheck.CheckInput{Version: version})
		if err != nil || !result.UpdateAvailable {
			return updateNoteMsg{}
		}
		return updateNoteMsg{latestVersion: result.LatestVersion}
	}
}

// buildMenu assembles the menu for the current category.
func (h *HomeScreen) buildMenu() []components.MenuItem {
	prof := h.deps.Ledger.Profile()
	cat := h.currentCategory()

	var items []components.MenuItem
	for _, l := range h.deps.Catalog.ByCategory(cat) {
		lesson := l
		label := fmt.Sprintf("%s  · %d%%", lesson.Title, prof.MasteryPercent(lesson.ID))
		items = append(items, components.MenuItem{
			Label: label,
			Action: func() tea.Cmd {
				return h.startLesson(lesson)
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "⚡ Teste Rápido", Action: h.startQuickTest},
		components.MenuItem{Label: "👤 Perfil", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: profile.New(h.deps.Ledger, h.deps.Sessions),
				}
			}
		}},
		components.MenuItem{Label: "🕘 Histórico", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: history.New(h.deps.Sessions, h.deps.Catalog),
				}
			}
		}},
		components.MenuItem{Label: "Sair", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)
	return items
}

func (h *HomeScreen) currentCategory() string {
	if len(h.categories) == 0 {
		return ""
	}
	return h.categories[h.category]
}

func (h *HomeScreen) sessionDeps() sessionscreen.Deps {
	return sessionscreen.Deps{
		Ledger:   h.deps.Ledger,
		Sessions: h.deps.Sessions,
		Speaker:  h.deps.Speaker,
	}
}

func (h *HomeScreen) startLesson(l catalog.Lesson) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: sessionscreen.NewLesson(h.sessionDeps(), l),
		}
	}
}

func (h *HomeScreen) startQuickTest() tea.Cmd {
	questions := h.deps.Catalog.QuickPick(ledger.QuickTestLength)
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: sessionscreen.NewQuickTest(h.sessionDeps(), questions),
		}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case updateNoteMsg:
		h.latest = msg.latestVersion
		return h, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			if h.category > 0 {
				h.category--
				h.menu = components.NewMenu(h.buildMenu())
			}
			return h, nil
		case "right", "l":
			if h.category < len(h.categories)-1 {
				h.category++
				h.menu = components.NewMenu(h.buildMenu())
			}
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}
