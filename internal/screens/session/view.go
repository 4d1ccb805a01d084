package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/asouza/lorito/internal/exercise"
	"github.com/asouza/lorito/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.finishing {
		return centered(width, theme.Hint.Render("\n\n  Saving your progress..."))
	}
	ex := s.current()
	if ex == nil {
		return ""
	}
	if s.showingFeedback {
		return s.renderFeedback(width, ex)
	}
	return s.renderExercise(width, ex)
}

func (s *SessionScreen) renderExercise(width int, ex *exercise.Exercise) string {
	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + s.title)

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d/%d  %s %d",
			s.index+1, len(s.exercises),
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			s.correct,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	prompt := ex.Prompt
	if ex.Kind == exercise.KindAudio {
		prompt = "🔊 " + prompt
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(prompt))
	b.WriteString("\n")
	if s.speechNotice {
		b.WriteString(centered(width, theme.Hint.Render("Áudio indisponível neste aparelho. Leia a frase e responda.")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch ex.Kind {
	case exercise.KindChoice:
		b.WriteString(s.renderChoices(width))
	case exercise.KindFill, exercise.KindAudio:
		b.WriteString(centered(width, "Resposta: "+s.input.View()))
	case exercise.KindOrder:
		b.WriteString(s.renderOrder(width))
	case exercise.KindMatch:
		b.WriteString(s.renderMatch(width))
	}

	return b.String()
}

func (s *SessionScreen) renderChoices(width int) string {
	var b strings.Builder
	for i, opt := range s.choiceOpts {
		prefix := "  "
		if i == s.choiceSel {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		if i == s.choiceSel {
			b.WriteString(theme.Selected.Render(line))
		} else {
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *SessionScreen) renderOrder(width int) string {
	var b strings.Builder

	picked := s.order.Picked()
	sentence := strings.Join(picked, " ")
	if sentence == "" {
		sentence = theme.Hint.Render("(pick the words in order)")
	} else {
		sentence = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(sentence)
	}
	slot := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Render(sentence)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, slot))
	b.WriteString("\n\n")

	pool := s.order.Pool()
	if len(pool) == 0 {
		b.WriteString(centered(width, theme.Hint.Render("Enter to submit, Backspace to undo")))
		return b.String()
	}

	words := make([]string, 0, len(pool))
	for i, w := range pool {
		if i == s.choiceSel {
			words = append(words, theme.Selected.Render("["+w+"]"))
		} else {
			words = append(words, theme.Unselected.Render(" "+w+" "))
		}
	}
	b.WriteString(centered(width, strings.Join(words, "  ")))
	return b.String()
}

func (s *SessionScreen) renderMatch(width int) string {
	cards := s.match.Cards()

	var b strings.Builder
	cols := 4
	for i, c := range cards {
		label := c.Label
		var rendered string
		switch {
		case s.match.IsFound(i):
			rendered = lipgloss.NewStyle().Foreground(theme.TextDim).Render("· " + label + " ·")
		case s.match.IsPending(i):
			rendered = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("[" + label + "]")
		case i == s.matchSel:
			rendered = theme.Selected.Render("▸ " + label)
		default:
			rendered = theme.Unselected.Render("  " + label)
		}

		cell := lipgloss.NewStyle().Width(18).Render(rendered)
		b.WriteString(cell)
		if (i+1)%cols == 0 {
			b.WriteString("\n\n")
		}
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *SessionScreen) renderFeedback(width int, ex *exercise.Exercise) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if s.lastCorrect {
		b.WriteString(centered(width, theme.Correct.Render("Muito bem! ✓")))
	} else {
		b.WriteString(centered(width, theme.Incorrect.Render("Não foi dessa vez")))
		if answer := expectedAnswer(ex); answer != "" {
			b.WriteString("\n")
			b.WriteString(centered(width, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("Resposta: "+answer)))
		}
	}
	return b.String()
}

// expectedAnswer gives the display form of the right answer for feedback.
func expectedAnswer(ex *exercise.Exercise) string {
	switch ex.Kind {
	case exercise.KindOrder:
		return strings.Join(ex.Order, " ")
	case exercise.KindMatch:
		return ""
	default:
		if ex.Answer.Single != "" {
			return ex.Answer.Single
		}
		if len(ex.Answer.AnyOf) > 0 {
			return ex.Answer.AnyOf[0]
		}
	}
	return ""
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func centered(width int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(content)
}
