package console

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const resetLabel = "Start Over"

var titleCaser = cases.Title(language.English)

func titleCase(s string) string {
	return titleCaser.String(s)
}

// renderSummary renders the final points of every category and the reset button.
func (m *CardModel) renderSummary() string {
	rowWidth := m.cardWidth() - styles.summaryCard.GetHorizontalFrameSize()
	if rowWidth < 20 {
		rowWidth = 20
	}

	parts := []string{styles.summaryTitle.Render("Category Points")}

	for _, category := range m.state.Categories() {
		color := lipgloss.Color(m.bank.Color(category))
		name := lipgloss.NewStyle().Foreground(color).Render(titleCase(category))
		score := styles.score.Render(strconv.Itoa(m.state.Tally(category)))

		row := styles.summaryRow.BorderForeground(color)
		inner := rowWidth - row.GetHorizontalFrameSize()
		gap := inner - lipgloss.Width(name) - lipgloss.Width(score)
		if gap < 1 {
			gap = 1
		}
		parts = append(parts, row.Render(name+strings.Repeat(" ", gap)+score))
	}

	parts = append(parts,
		styles.button.Render(resetLabel),
		styles.hint.Render("enter or r plays again"),
	)

	box := styles.summaryCard.Render(lipgloss.JoinVertical(lipgloss.Center, parts...))
	return lipgloss.Place(
		m.cardArea.GetWidth(), m.cardArea.GetHeight(),
		lipgloss.Center, lipgloss.Center,
		box,
	)
}
