package console

import (
	constants "github.com/ImGajeed76/datenight/internal"
	"github.com/charmbracelet/lipgloss"
)

// UI Styles configuration
var styles = struct {
	topBar       lipgloss.Style
	title        lipgloss.Style
	subtitle     lipgloss.Style
	area         lipgloss.Style
	footer       lipgloss.Style
	card         lipgloss.Style
	emptyCard    lipgloss.Style
	cardLabel    lipgloss.Style
	question     lipgloss.Style
	feedback     lipgloss.Style
	errorText    lipgloss.Style
	hint         lipgloss.Style
	summaryCard  lipgloss.Style
	summaryTitle lipgloss.Style
	summaryRow   lipgloss.Style
	score        lipgloss.Style
	button       lipgloss.Style
}{
	topBar: lipgloss.NewStyle().
		Padding(1).
		Foreground(lipgloss.Color(constants.Theme.SecondaryColor)).
		Align(lipgloss.Center),
	title: lipgloss.NewStyle().
		Foreground(lipgloss.Color(constants.Theme.PrimaryColor)).
		Bold(true),
	subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(constants.Theme.SecondaryColor)).
		Italic(true),
	area: lipgloss.NewStyle(),
	footer: lipgloss.NewStyle().
		Padding(0, 2).
		Align(lipgloss.Center),
	card: lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.RoundedBorder()).
		Foreground(lipgloss.Color(constants.Theme.CardTextColor)).
		Align(lipgloss.Center, lipgloss.Center),
	emptyCard: lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(constants.Theme.TertiaryColor)).
		Foreground(lipgloss.Color(constants.Theme.TertiaryColor)).
		Align(lipgloss.Center, lipgloss.Center),
	cardLabel: lipgloss.NewStyle().
		Bold(true).
		Faint(true),
	question: lipgloss.NewStyle().
		Bold(true),
	feedback: lipgloss.NewStyle().
		Foreground(lipgloss.Color(constants.Theme.PrimaryColor)).
		Bold(true),
	errorText: lipgloss.NewStyle().
		Foreground(lipgloss.Color(constants.Theme.ErrorColor)).
		Bold(true),
	hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(constants.Theme.TertiaryColor)),
	summaryCard: lipgloss.NewStyle().
		Padding(1, 4).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")), // Subtle border
	summaryTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(constants.Theme.PrimaryColor)).
		MarginBottom(1),
	summaryRow: lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.ThickBorder(), false, false, false, true),
	score: lipgloss.NewStyle().
		Bold(true),
	button: lipgloss.NewStyle().
		Padding(0, 3).
		MarginTop(1).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("237")). // Gray button like the original
		Bold(true),
}
