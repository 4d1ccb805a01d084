// Package onboarding collects the learner's name and avatar on first run.
package onboarding

import (
	"context"
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

var avatars = []string{"🦜", "🐥", "🦊", "🐼", "🐙", "🦖"}

// OnboardingScreen asks for a name and avatar before the first lesson.
type OnboardingScreen struct {
	ledger      *ledger.Ledger
	homeFactory func() screen.Screen

	input     components.TextInput
	avatarSel int
	errMsg    string
}

var _ screen.Screen = (*OnboardingScreen)(nil)
var _ screen.KeyHintProvider = (*OnboardingScreen)(nil)

// New creates the onboarding screen. On completion it replaces itself
// with the screen produced by homeFactory.
func New(led *ledger.Ledger, homeFactory func() screen.Screen) *OnboardingScreen {
	return &OnboardingScreen{
		ledger:      led,
		homeFactory: homeFactory,
		input:       components.NewTextInput("Seu nome...", 24),
	}
}

func (o *OnboardingScreen) Init() tea.Cmd {
	return o.input.Init()
}

func (o *OnboardingScreen) Title() string {
	return "Bem-vindo"
}

func (o *OnboardingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Avatar"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (o *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "left":
			if o.avatarSel > 0 {
				o.avatarSel--
			}
			return o, nil
		case "right":
			if o.avatarSel < len(avatars)-1 {
				o.avatarSel++
			}
			return o, nil
		case "enter":
			return o.register()
		}
	}

	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	return o, cmd
}

func (o *OnboardingScreen) register() (screen.Screen, tea.Cmd) {
	name := strings.TrimSpace(o.input.Value())
	if name == "" {
		o.errMsg = "Digite um nome para começar"
		return o, nil
	}

	err := o.ledger.SetIdentity(context.Background(), name, avatars[o.avatarSel])
	if err != nil {
		o.errMsg = err.Error()
		return o, nil
	}

	home := o.homeFactory()
	return o, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (o *OnboardingScreen) View(width, height int) string {
	var lines []string

	lines = append(lines, theme.Title.Render("🦜 Lorito"))
	lines = append(lines, theme.Subtitle.Render("Inglês e Espanhol para crianças"))
	lines = append(lines, "")

	lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Render("Como você se chama?"))
	lines = append(lines, o.input.View())
	lines = append(lines, "")

	lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Render("Escolha seu mascote:"))
	var row []string
	for i, a := range avatars {
		if i == o.avatarSel {
			row = append(row, theme.Selected.Render("▸"+a+"◂"))
		} else {
			row = append(row, " "+a+" ")
		}
	}
	lines = append(lines, strings.Join(row, " "))

	if o.errMsg != "" {
		lines = append(lines, "")
		lines = append(lines, theme.Incorrect.Render(o.errMsg))
	}

	lines = append(lines, "")
	lines = append(lines, theme.Hint.Render("Enter para começar"))

	card := components.Card(strings.Join(lines, "\n"), components.ContentWidth(width))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
