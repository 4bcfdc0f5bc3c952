package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

const sessionHelp = `# How to play

Drag the card with the mouse, or use the arrow keys.

- **Swipe right** (→) draws the next question. After %d questions the
  round ends and the points are shown.
- **Swipe left** (←) goes back to an earlier question.
- **Swipe up** (↑) gives the question's category a point.
- **Swipe down** (↓) takes a point away.

On the summary press ` + "`enter`" + ` or click **Start Over** to play again.
`

const endlessHelp = `# How to play

Drag the card with the mouse, or use the arrow keys.

- **Swipe left or right** (← →) shows another question on the same topic.
- **Swipe up** (↑) likes the question and shows another on the same topic.
- **Swipe down** (↓) switches to a different topic.
`

const helpFooter = `
A swipe counts once the card has travelled far enough; short drags snap back.

Press ` + "`?`" + ` or ` + "`esc`" + ` to close this help, ` + "`q`" + ` to quit.
`

func helpMarkdown(endless bool, length int) string {
	var b strings.Builder
	if endless {
		b.WriteString(endlessHelp)
	} else {
		b.WriteString(fmt.Sprintf(sessionHelp, length))
	}
	b.WriteString(helpFooter)
	return b.String()
}

func newMarkdownRenderer(width int) *glamour.TermRenderer {
	if width < 20 {
		width = 20
	}
	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	return renderer
}

// renderHelp renders the help text, falling back to the raw markdown when the
// renderer is unavailable.
func renderHelp(renderer *glamour.TermRenderer, markdown string) string {
	if renderer == nil {
		return markdown
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}
