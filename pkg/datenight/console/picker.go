package console

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ImGajeed76/datenight/pkg/datenight/bank"
)

var ErrPickCancelled = errors.New("category selection cancelled")

const surpriseLabel = "Surprise me"

// PickCategory asks for the starting topic of an endless game. The empty
// string means a random category.
func PickCategory(b *bank.Bank) (string, error) {
	if b.Len() == 0 {
		return "", bank.ErrEmptyBank
	}

	p := tea.NewProgram(newPickerModel(b), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", err
	}

	m := final.(*pickerModel)
	if m.cancelled {
		return "", ErrPickCancelled
	}
	return m.selected(), nil
}

type pickerModel struct {
	bank      *bank.Bank
	items     []string // items[0] is the random choice
	cursor    int
	offset    int
	maxItems  int
	cancelled bool
}

func newPickerModel(b *bank.Bank) *pickerModel {
	return &pickerModel{
		bank:     b,
		items:    append([]string{""}, b.Categories()...),
		maxItems: b.Len() + 1,
	}
}

func (m *pickerModel) selected() string {
	return m.items[m.offset+m.cursor]
}

func (m *pickerModel) Init() tea.Cmd {
	return nil
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.maxItems = msg.Height - 4
		if m.maxItems < 1 {
			m.maxItems = 1
		}
		if m.cursor >= m.maxItems {
			m.offset += m.cursor - m.maxItems + 1
			m.cursor = m.maxItems - 1
		}
		// A taller window shows rows that were scrolled away.
		if maxOffset := max(0, len(m.items)-m.maxItems); m.offset > maxOffset {
			m.cursor += m.offset - maxOffset
			m.offset = maxOffset
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			} else if m.offset > 0 {
				m.offset--
			}
		case "down", "j":
			if m.offset+m.cursor >= len(m.items)-1 {
				break
			}
			if m.cursor < m.maxItems-1 {
				m.cursor++
			} else {
				m.offset++
			}
		}
	}

	return m, nil
}

func (m *pickerModel) View() string {
	var builder strings.Builder

	builder.WriteString(styles.title.Render("Pick a topic"))
	builder.WriteString("\n\n")

	end := m.offset + m.maxItems
	if end > len(m.items) {
		end = len(m.items)
	}

	for i, item := range m.items[m.offset:end] {
		label := surpriseLabel
		swatch := "  "
		if item != "" {
			label = titleCase(item)
			swatch = lipgloss.NewStyle().Background(lipgloss.Color(m.bank.Color(item))).Render("  ")
		}

		if i == m.cursor {
			builder.WriteString(styles.title.Render("▸ ") + swatch + " " + styles.title.Render(label))
		} else {
			builder.WriteString("  " + swatch + " " + styles.subtitle.Render(label))
		}
		builder.WriteString("\n")
	}

	builder.WriteString("\n")
	builder.WriteString(styles.hint.Render("↑/↓ to move • enter to select • esc to cancel"))

	return builder.String()
}
