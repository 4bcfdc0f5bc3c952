package console

import (
	"math"
	"strings"

	"github.com/ImGajeed76/datenight/pkg/datenight/gesture"
	"github.com/charmbracelet/lipgloss"
)

// renderTransformed places card in a width×height area, centred and then
// displaced by t. Translation is converted back from units into cells; the
// rotation is approximated by shearing rows around the card's middle line.
// The card is pinned to the top and left edges rather than cut off there.
func renderTransformed(card string, t gesture.Transform, width, height int, cellW, cellH float64) string {
	if width <= 0 || height <= 0 || cellW <= 0 || cellH <= 0 {
		return card
	}

	lines := strings.Split(card, "\n")
	cardW := lipgloss.Width(card)
	cardH := len(lines)

	left := (width-cardW)/2 + int(math.Round(t.TranslateX/cellW))
	top := (height-cardH)/2 + int(math.Round(t.TranslateY/cellH))
	if top < 0 {
		top = 0
	}

	// Rows are roughly twice as tall as columns are wide, so one row of
	// vertical distance spans cellH/cellW columns.
	slope := math.Tan(t.RotateDeg*math.Pi/180) * cellH / cellW
	middle := float64(cardH-1) / 2

	out := make([]string, 0, top+cardH)
	for i := 0; i < top; i++ {
		out = append(out, "")
	}
	for i, line := range lines {
		// Positive degrees turn clockwise: rows above the middle move right.
		pad := left + int(math.Round(-(float64(i)-middle)*slope))
		if pad < 0 {
			pad = 0
		}
		out = append(out, strings.Repeat(" ", pad)+line)
	}

	return lipgloss.NewStyle().
		MaxWidth(width).
		MaxHeight(height).
		Render(strings.Join(out, "\n"))
}
