package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/asouza/lorito/internal/ui/components"
	"github.com/asouza/lorito/internal/ui/theme"
)

// Block-letter title.
const bannerFull = ` ██╗      ██████╗ ██████╗ ██╗████████╗ ██████╗
 ██║     ██╔═══██╗██╔══██╗██║╚══██╔══╝██╔═══██╗
 ██║     ██║   ██║██████╔╝██║   ██║   ██║   ██║
 ██║     ██║   ██║██╔══██╗██║   ██║   ██║   ██║
 ███████╗╚██████╔╝██║  ██║██║   ██║   ╚██████╔╝
 ╚══════╝ ╚═════╝ ╚═╝  ╚═╝╚═╝   ╚═╝    ╚═════╝`

const bannerCompact = "L · O · R · I · T · O"

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height by
	// adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderBanner(cw, compact))
	if !compact {
		sections = append(sections, renderGreeting(h.deps.Ledger.Profile().Name, cw))
	}
	sections = append(sections, h.renderStats(cw))
	sections = append(sections, h.renderTabs(cw))
	sections = append(sections, h.renderMenu(cw))

	if h.latest != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(cw).
			Align(lipgloss.Center).
			Render(fmt.Sprintf("New version %s available — run: lorito update", h.latest)))
	}

	content := strings.Join(sections, "\n\n")
	return components.Frame(content, width, height)
}

func renderBanner(cw int, compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	banner := bannerFull
	if compact {
		banner = bannerCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(banner))
}

func renderGreeting(name string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Olá, " + name + "!")
}

func (h *HomeScreen) renderStats(cw int) string {
	prof := h.deps.Ledger.Profile()

	xpStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	heartStyle := lipgloss.NewStyle().Foreground(theme.Heart).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	stats := fmt.Sprintf("%s  %s  %s",
		xpStyle.Render(fmt.Sprintf("⭐ %d XP", prof.XP)),
		heartStyle.Render(fmt.Sprintf("❤ %d", prof.Hearts)),
		streakStyle.Render(fmt.Sprintf("🔥 %d", prof.Streak)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func (h *HomeScreen) renderTabs(cw int) string {
	var tabs []string
	for i, cat := range h.categories {
		if i == h.category {
			tabs = append(tabs, theme.Selected.Render("["+cat+"]"))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(" "+cat+" "))
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(tabs, "  "))
}

// renderMenu draws the lesson entries with live mastery numbers so they
// update the moment a session ends.
func (h *HomeScreen) renderMenu(cw int) string {
	prof := h.deps.Ledger.Profile()
	lessons := h.deps.Catalog.ByCategory(h.currentCategory())
	extras := []string{"⚡ Teste Rápido", "👤 Perfil", "🕘 Histórico", "Sair"}

	var lines []string
	appendLine := func(i int, label string) {
		if i == h.menu.Selected {
			lines = append(lines, theme.Selected.Render("▸ "+label))
		} else {
			lines = append(lines, theme.Unselected.Render("  "+label))
		}
	}

	for i, l := range lessons {
		appendLine(i, fmt.Sprintf("%s  · %d%%", l.Title, prof.MasteryPercent(l.ID)))
	}
	for j, label := range extras {
		appendLine(len(lessons)+j, label)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}
