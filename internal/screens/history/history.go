// Package history lists recent lessons and quick tests.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asouza/lorito/internal/catalog"
	"github.com/asouza/lorito/internal/ledger"
	"github.com/asouza/lorito/internal/screen"
	"github.com/asouza/lorito/internal/store"
	"github.com/asouza/lorito/internal/ui/components"
	"github.com/asouza/lorito/internal/ui/layout"
	"github.com/asouza/lorito/internal/ui/theme"
)

const recentLimit = 15

// recordsMsg delivers the loaded history rows.
type recordsMsg struct {
	records []store.SessionRecord
	err     error
}

// HistoryScreen shows the most recent play sessions, newest first.
type HistoryScreen struct {
	sessions *store.SessionRepo
	catalog  *catalog.Catalog

	records []store.SessionRecord
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates the history screen.
func New(sessions *store.SessionRepo, cat *catalog.Catalog) *HistoryScreen {
	return &HistoryScreen{sessions: sessions, catalog: cat}
}

func (h *HistoryScreen) Init() tea.Cmd {
	sessions := h.sessions
	return func() tea.Msg {
		records, err := sessions.Recent(context.Background(), recentLimit)
		return recordsMsg{records: records, err: err}
	}
}

func (h *HistoryScreen) Title() string {
	return "Histórico"
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(recordsMsg); ok {
		h.loaded = true
		if m.err != nil {
			h.errMsg = m.err.Error()
		} else {
			h.records = m.records
		}
	}
	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	var lines []string
	lines = append(lines, theme.Title.Render("Histórico"))
	lines = append(lines, "")

	switch {
	case h.errMsg != "":
		lines = append(lines, theme.Incorrect.Render(h.errMsg))
	case !h.loaded:
		lines = append(lines, theme.Hint.Render("Carregando..."))
	case len(h.records) == 0:
		lines = append(lines, theme.Hint.Render("Nada por aqui ainda. Jogue uma lição!"))
	default:
		for _, rec := range h.records {
			lines = append(lines, h.renderRecord(rec))
		}
	}

	card := components.Card(strings.Join(lines, "\n"), components.ContentWidth(width))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (h *HistoryScreen) renderRecord(rec store.SessionRecord) string {
	name := "⚡ Teste Rápido"
	if rec.Kind == store.SessionLesson {
		name = rec.LessonID
		if l, ok := h.catalog.Lesson(rec.LessonID); ok {
			name = l.Title
		}
	}

	result := ledger.SessionResult{Correct: rec.Correct, Wrong: rec.Wrong}
	date := rec.PlayedAt.Local().Format("02/01 15:04")

	return fmt.Sprintf("%s  %s  %s  %s",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(date),
		result.Medal().Icon(),
		lipgloss.NewStyle().Foreground(theme.Text).Render(name),
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("+%d XP", rec.XP)),
	)
}
