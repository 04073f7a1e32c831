package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mavrk/hueguess/internal/game"
)

// Layout constants for the game screen.
const (
	targetSwatchWidth  = 26
	targetSwatchHeight = 4
	optionSwatchWidth  = 8
	optionSwatchHeight = 3
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	correctStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	wrongStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	missedStyle = lipgloss.NewStyle().
			Faint(true).
			Foreground(lipgloss.Color("240"))
)

// View renders the current game state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	round := m.session.Round()

	var b strings.Builder

	b.WriteString(titleStyle.Render("Hue Guess"))
	b.WriteString("  ")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Score: %d   Round: %d", m.session.Score(), m.rounds)))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Find this color:"))
	b.WriteString("\n")
	b.WriteString(renderSwatch(round.Target, targetSwatchWidth, targetSwatchHeight))
	b.WriteString("\n")
	if m.cfg.UI.ShowLabel {
		b.WriteString(scoreStyle.Render(round.Target.HSL()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderOptions(round))
	b.WriteString("\n\n")

	switch {
	case m.locked:
		b.WriteString(correctStyle.Render(m.message))
	case m.message != "":
		b.WriteString(wrongStyle.Render(m.message))
	default:
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	b.WriteString(m.help.View(m.keys))

	content := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// renderOptions draws the candidate swatches side by side with their
// number labels and the cursor marker.
func (m Model) renderOptions(round game.Round) string {
	columns := make([]string, 0, len(round.Options))

	for i, c := range round.Options {
		swatch := renderSwatch(c, optionSwatchWidth, optionSwatchHeight)

		label := fmt.Sprintf("%d", i+1)
		switch {
		case m.missed[i]:
			swatch = missedStyle.Render(blankBlock(optionSwatchWidth, optionSwatchHeight, 'x'))
			label = missedStyle.Render(label)
		case i == m.cursor:
			label = cursorStyle.Render("[" + label + "]")
		default:
			label = scoreStyle.Render(" " + label + " ")
		}

		cell := lipgloss.JoinVertical(lipgloss.Center, swatch, label)
		columns = append(columns, cell)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, interleave(columns, "  ")...)
}

// renderSwatch draws a solid block of the given color.
func renderSwatch(c game.Color, width, height int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render(blankBlock(width, height, ' '))
}

// blankBlock builds a width x height block of the given rune.
func blankBlock(width, height int, r rune) string {
	row := strings.Repeat(string(r), width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// interleave joins items with the separator between each pair, as
// separate elements for lipgloss.JoinHorizontal.
func interleave(items []string, sep string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items)*2-1)
	for i, item := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, item)
	}
	return out
}
