// Package profile shows and edits the learner identity and allows a
// full progress reset.
package profile

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asouza/lorito/internal/ledger"
	"github.com/asouza/lorito/internal/router"
	"github.com/asouza/lorito/internal/screen"
	"github.com/asouza/lorito/internal/store"
	"github.com/asouza/lorito/internal/ui/components"
	"github.com/asouza/lorito/internal/ui/layout"
	"github.com/asouza/lorito/internal/ui/theme"
)

var avatars = []string{"🦜", "🐥", "🦊", "🐼", "🐙", "🦖"}

type mode int

const (
	modeView mode = iota
	modeEdit
	modeConfirmReset
)

// ProfileScreen shows learner stats with edit and reset flows.
type ProfileScreen struct {
	ledger   *ledger.Ledger
	sessions *store.SessionRepo

	mode      mode
	input     components.TextInput
	avatarSel int
	errMsg    string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates the profile screen.
func New(led *ledger.Ledger, sessions *store.SessionRepo) *ProfileScreen {
	return &ProfileScreen{ledger: led, sessions: sessions}
}

func (p *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (p *ProfileScreen) Title() string {
	return "Perfil"
}

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	switch p.mode {
	case modeEdit:
		return []layout.KeyHint{
			{Key: "←→", Description: "Avatar"},
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Back"},
		}
	case modeConfirmReset:
		return []layout.KeyHint{
			{Key: "Y", Description: "Erase everything"},
			{Key: "N", Description: "Keep my progress"},
		}
	default:
		return []layout.KeyHint{
			{Key: "E", Description: "Edit"},
			{Key: "R", Description: "Reset progress"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if p.mode == modeEdit {
			var cmd tea.Cmd
			p.input, cmd = p.input.Update(msg)
			return p, cmd
		}
		return p, nil
	}

	switch p.mode {
	case modeView:
		switch kmsg.String() {
		case "e", "E":
			prof := p.ledger.Profile()
			p.input = components.NewTextInput("Seu nome...", 24)
			p.input.Model.SetValue(prof.Name)
			p.avatarSel = avatarIndex(prof.Avatar)
			p.errMsg = ""
			p.mode = modeEdit
			return p, p.input.Init()
		case "r", "R":
			p.mode = modeConfirmReset
			return p, nil
		}

	case modeEdit:
		switch kmsg.String() {
		case "esc":
			p.mode = modeView
			return p, nil
		case "left":
			if p.avatarSel > 0 {
				p.avatarSel--
			}
			return p, nil
		case "right":
			if p.avatarSel < len(avatars)-1 {
				p.avatarSel++
			}
			return p, nil
		case "enter":
			return p.save()
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd

	case modeConfirmReset:
		switch kmsg.String() {
		case "y", "Y":
			return p.reset()
		case "n", "N", "esc":
			p.mode = modeView
			return p, nil
		}
	}

	return p, nil
}

func (p *ProfileScreen) save() (screen.Screen, tea.Cmd) {
	name := strings.TrimSpace(p.input.Value())
	err := p.ledger.SetIdentity(context.Background(), name, avatars[p.avatarSel])
	if err != nil {
		p.errMsg = "Digite um nome"
		return p, nil
	}
	p.errMsg = ""
	p.mode = modeView
	return p, nil
}

// reset wipes the play history and the profile, then returns to the
// home stack; the app routes back through onboarding. History goes
// first so a failure there leaves the profile untouched.
func (p *ProfileScreen) reset() (screen.Screen, tea.Cmd) {
	ctx := context.Background()
	if err := p.sessions.Clear(ctx); err != nil {
		p.errMsg = fmt.Errorf("clear history: %w", err).Error()
		p.mode = modeView
		return p, nil
	}
	if err := p.ledger.Reset(ctx); err != nil {
		p.errMsg = err.Error()
		p.mode = modeView
		return p, nil
	}
	return p, tea.Batch(
		func() tea.Msg { return router.PopScreenMsg{} },
		func() tea.Msg { return ResetDoneMsg{} },
	)
}

// ResetDoneMsg tells the app the learner erased their progress and must
// go through onboarding again.
type ResetDoneMsg struct{}

func (p *ProfileScreen) View(width, height int) string {
	prof := p.ledger.Profile()

	var lines []string

	switch p.mode {
	case modeEdit:
		lines = append(lines, theme.Title.Render("Editar perfil"))
		lines = append(lines, "")
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Render("Nome:"))
		lines = append(lines, p.input.View())
		lines = append(lines, "")
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Render("Mascote:"))
		var row []string
		for i, a := range avatars {
			if i == p.avatarSel {
				row = append(row, theme.Selected.Render("▸"+a+"◂"))
			} else {
				row = append(row, " "+a+" ")
			}
		}
		lines = append(lines, strings.Join(row, " "))

	case modeConfirmReset:
		lines = append(lines, theme.Incorrect.Render("Apagar todo o progresso?"))
		lines = append(lines, "")
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("XP, ofensiva, domínio e histórico serão perdidos."))
		lines = append(lines, "")
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Error).Render("[Y] Sim, apagar"))
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Primary).Render("[N] Não, manter"))

	default:
		lines = append(lines, theme.Title.Render(prof.Avatar+" "+prof.Name))
		lines = append(lines, "")
		lines = append(lines, statLine("⭐ XP", fmt.Sprintf("%d", prof.XP)))
		lines = append(lines, statLine("❤ Corações", fmt.Sprintf("%d/%d", prof.Hearts, ledger.MaxHearts)))
		lines = append(lines, statLine("🔥 Ofensiva", fmt.Sprintf("%d dias", prof.Streak)))
		if prof.LastPlayedDate != "" {
			lines = append(lines, statLine("Último jogo", prof.LastPlayedDate))
		}
		lines = append(lines, "")
		lines = append(lines, theme.Hint.Render("E editar · R apagar progresso"))
	}

	if p.errMsg != "" {
		lines = append(lines, "")
		lines = append(lines, theme.Incorrect.Render(p.errMsg))
	}

	card := components.Card(strings.Join(lines, "\n"), components.ContentWidth(width))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func statLine(label, value string) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label+":  ") +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value)
}

func avatarIndex(avatar string) int {
	for i, a := range avatars {
		if a == avatar {
			return i
		}
	}
	return 0
}
