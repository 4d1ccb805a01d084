package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asouza/lorito/internal/ledger"
	"github.com/asouza/lorito/internal/router"
	"github.com/asouza/lorito/internal/screen"
	"github.com/asouza/lorito/internal/ui/components"
	"github.com/asouza/lorito/internal/ui/layout"
	"github.com/asouza/lorito/internal/ui/theme"
)

// Input carries everything the summary displays.
type Input struct {
	Title   string
	Quick   bool
	Result  ledger.SessionResult
	XP      int
	Streak  int
	Hearts  int
	TotalXP int
}

// SummaryScreen shows the end-of-session medal and stats.
type SummaryScreen struct {
	in Input
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen for a finished session.
func New(in Input) *SummaryScreen {
	return &SummaryScreen{in: in}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Resultado"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "space", " ":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	in := s.in
	total := in.Result.Correct + in.Result.Wrong

	var lines []string

	medal := in.Result.Medal()
	lines = append(lines,
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("%s  %s", medal.Icon(), medalLabel(medal))))
	lines = append(lines, "")

	heading := "Lição completa!"
	if in.Quick {
		heading = "Teste completo!"
	}
	lines = append(lines, theme.Title.Render(heading))
	if in.Title != "" {
		lines = append(lines, theme.Subtitle.Render(in.Title))
	}
	lines = append(lines, "")

	lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("Acertos: %d/%d", in.Result.Correct, total)))

	bar := components.NewProgressBar("", in.Result.Accuracy(), true, 34)
	lines = append(lines, bar.View())
	lines = append(lines, "")

	lines = append(lines, lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("+%d XP", in.XP))+
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  (total %d)", in.TotalXP)))

	stats := fmt.Sprintf("🔥 %d day streak", in.Streak)
	if !in.Quick {
		stats += fmt.Sprintf("   ❤ %d", in.Hearts)
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render(stats))
	lines = append(lines, "")
	lines = append(lines, theme.Hint.Render("Enter to continue"))

	card := components.Card(strings.Join(lines, "\n"), components.ContentWidth(width))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func medalLabel(m ledger.Medal) string {
	switch m {
	case ledger.MedalGold:
		return "Ouro"
	case ledger.MedalSilver:
		return "Prata"
	case ledger.MedalBronze:
		return "Bronze"
	default:
		return "Fita"
	}
}
