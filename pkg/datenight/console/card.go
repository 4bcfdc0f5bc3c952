package console

import (
	"fmt"
	"strings"
	"time"

	"github.com/76creates/stickers/flexbox"
	constants "github.com/ImGajeed76/datenight/internal"
	"github.com/ImGajeed76/datenight/pkg/datenight/bank"
	"github.com/ImGajeed76/datenight/pkg/datenight/gesture"
	"github.com/ImGajeed76/datenight/pkg/datenight/session"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	settleFrames   = 6
	settleInterval = 50 * time.Millisecond
)

// CardOptions tunes the card view.
type CardOptions struct {
	Threshold  float64 // swipe threshold in units, 0 uses the policy default
	CellWidth  float64 // units per terminal column
	CellHeight float64 // units per terminal row
	CardWidth  int     // card width in columns
}

// settleMsg advances the snap-back animation after a drag.
type settleMsg struct {
	generation int
	frame      int
}

type settleState struct {
	from       gesture.Offset
	frame      int
	generation int
	active     bool
}

// CardModel is the Bubble Tea model of the question card. It owns the only
// mutable reference to the session state and swaps it for the reducer's
// result on every input.
type CardModel struct {
	policy  session.Policy
	bank    *bank.Bank
	state   session.State
	options CardOptions
	log     *zap.Logger
	length  int
	endless bool

	// Drag state
	recognizer gesture.Recognizer
	transform  gesture.Transform
	settle     settleState
	lastErr    error

	// UI components
	flexbox  *flexbox.FlexBox
	topBar   *flexbox.Cell
	cardArea *flexbox.Cell
	footer   *flexbox.Cell
	progress progress.Model
	help     help.Model
	keys     keyMap

	// Help overlay
	showHelp         bool
	markdownRenderer *glamour.TermRenderer
	helpText         string

	width    int
	height   int
	resetRow int
	quitting bool
}

// NewCardModel creates the card view for a policy and its starting state.
func NewCardModel(policy session.Policy, start session.State, b *bank.Bank, opts CardOptions, log *zap.Logger) *CardModel {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Threshold <= 0 {
		opts.Threshold = policy.Threshold()
	}
	if opts.CellWidth <= 0 {
		opts.CellWidth = 8
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = 16
	}
	if opts.CardWidth <= 0 {
		opts.CardWidth = 48
	}

	length := 0
	if h, ok := policy.(*session.History); ok {
		length = h.Length
	}
	endless := policy.Name() == session.ModeEndless

	// Initialize UI components
	topBar := flexbox.NewCell(1, 1).SetStyle(styles.topBar)
	cardArea := flexbox.NewCell(1, 7).SetStyle(styles.area)
	footer := flexbox.NewCell(1, 2).SetStyle(styles.footer)

	// Create flexbox layout
	fb := flexbox.New(0, 0)
	rows := []*flexbox.Row{
		fb.NewRow().AddCells(topBar),
		fb.NewRow().AddCells(cardArea),
		fb.NewRow().AddCells(footer),
	}
	fb.AddRows(rows)

	markdown := helpMarkdown(endless, length)
	renderer := newMarkdownRenderer(80)

	return &CardModel{
		policy:           policy,
		bank:             b,
		state:            start,
		options:          opts,
		log:              log,
		length:           length,
		endless:          endless,
		recognizer:       gesture.NewRecognizer(opts.Threshold),
		flexbox:          fb,
		topBar:           topBar,
		cardArea:         cardArea,
		footer:           footer,
		progress:         progress.New(progress.WithGradient("#5956e0", "#e86ef6"), progress.WithoutPercentage()),
		help:             help.New(),
		keys:             newKeyMap(endless),
		markdownRenderer: renderer,
		helpText:         renderHelp(renderer, markdown),
		resetRow:         -1,
	}
}

// State returns the current session state.
func (m *CardModel) State() session.State {
	return m.state
}

// Threshold returns the swipe threshold in effect.
func (m *CardModel) Threshold() float64 {
	return m.recognizer.Threshold()
}

func (m *CardModel) Init() tea.Cmd {
	title := styles.title.Render(fmt.Sprintf("Date Night - v%s", constants.Version))
	subtitle := "swipe right for the next question"
	if m.endless {
		subtitle = "swipe down for a new topic"
	}
	m.topBar.SetContent(title + "\n" + styles.subtitle.Render(m.policy.Name()+" mode · "+subtitle))
	return nil
}

// Update handles UI state updates based on user input
func (m *CardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	case settleMsg:
		return m.handleSettle(msg)
	}

	return m, nil
}

// handleWindowSize updates the UI layout based on window size
func (m *CardModel) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.flexbox.SetWidth(msg.Width)
	m.flexbox.SetHeight(msg.Height)
	m.flexbox.ForceRecalculate()

	m.progress.Width = m.cardWidth()
	m.help.Width = msg.Width - 4

	m.markdownRenderer = newMarkdownRenderer(m.cardArea.GetWidth() - 10)
	m.helpText = renderHelp(m.markdownRenderer, helpMarkdown(m.endless, m.length))
	return m, nil
}

// handleKeyPress processes keyboard input
func (m *CardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Close):
		m.showHelp = false
		return m, nil
	}

	if m.showHelp {
		return m, nil
	}

	if m.state.Summary() {
		if key.Matches(msg, m.keys.Reset) {
			m.dispatch(session.IntentReset, "key")
		}
		return m, nil
	}

	if in := session.IntentFromKey(msg.String()); in != session.IntentNone {
		m.dispatch(in, "key")
	}
	return m, nil
}

func (m *CardModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		return m, nil
	}

	if m.state.Summary() {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			m.resetRow >= 0 && msg.Y == m.resetRow {
			m.dispatch(session.IntentReset, "click")
		}
		return m, nil
	}

	p := m.toUnits(msg.X, msg.Y)

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !m.onCard(msg.Y) {
			return m, nil
		}
		// A new drag starts instantly; any snap-back still running is dropped.
		m.settle = settleState{generation: m.settle.generation + 1}
		m.recognizer = m.recognizer.Press(p)
		m.transform = gesture.Transform{}
		origin := m.recognizer.Origin()
		m.log.Debug("drag started",
			zap.Stringer("phase", m.recognizer.Phase()),
			zap.Float64("x", origin.X),
			zap.Float64("y", origin.Y),
		)

	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		next, t, ok := m.recognizer.Move(p)
		if ok {
			m.recognizer = next
			m.transform = t
		}

	case msg.Action == tea.MouseActionRelease,
		// A motion without a held button means the release happened
		// outside the terminal.
		msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonNone:
		return m.release()
	}

	return m, nil
}

func (m *CardModel) release() (tea.Model, tea.Cmd) {
	last := m.recognizer.Offset()
	next, g, ok := m.recognizer.Release()
	if !ok {
		return m, nil
	}
	m.recognizer = next
	m.transform = gesture.Transform{}

	m.log.Debug("gesture resolved",
		zap.Stringer("gesture", g),
		zap.Float64("dx", last.DX),
		zap.Float64("dy", last.DY),
	)
	if in := session.IntentFromGesture(g); in != session.IntentNone {
		m.dispatch(in, "swipe")
	}

	return m, m.startSettle(last)
}

func (m *CardModel) dispatch(in session.Intent, source string) {
	next, err := m.policy.Reduce(m.state, in)
	if err != nil {
		m.log.Error("transition failed",
			zap.Stringer("intent", in),
			zap.String("source", source),
			zap.Error(err),
		)
		m.lastErr = err
		return
	}
	m.state = next
	m.lastErr = nil

	q, _ := next.Current()
	m.log.Debug("transition",
		zap.Stringer("intent", in),
		zap.String("source", source),
		zap.Stringer("feedback", next.Feedback()),
		zap.Int("index", next.Index()),
		zap.String("category", q.Category),
		zap.Bool("summary", next.Summary()),
	)
}

func (m *CardModel) startSettle(from gesture.Offset) tea.Cmd {
	if from.IsZero() {
		return nil
	}
	m.settle = settleState{
		from:       from,
		generation: m.settle.generation + 1,
		active:     true,
	}
	return settleTick(m.settle.generation, 1)
}

func settleTick(generation, frame int) tea.Cmd {
	return tea.Tick(settleInterval, func(time.Time) tea.Msg {
		return settleMsg{generation: generation, frame: frame}
	})
}

func (m *CardModel) handleSettle(msg settleMsg) (tea.Model, tea.Cmd) {
	if !m.settle.active || msg.generation != m.settle.generation {
		return m, nil
	}
	if msg.frame >= settleFrames {
		// Back at rest; the next drag starts without any transition.
		m.settle = settleState{generation: m.settle.generation}
		return m, nil
	}
	m.settle.frame = msg.frame
	return m, settleTick(msg.generation, msg.frame+1)
}

// displayTransform is the transform the card is drawn with right now.
func (m *CardModel) displayTransform() gesture.Transform {
	if m.recognizer.Dragging() {
		return m.transform
	}
	if m.settle.active {
		f := 1 - float64(m.settle.frame)/settleFrames
		return gesture.TransformFor(m.settle.from.Scale(f))
	}
	return gesture.Transform{}
}

func (m *CardModel) toUnits(x, y int) gesture.Point {
	return gesture.Point{
		X: float64(x) * m.options.CellWidth,
		Y: float64(y) * m.options.CellHeight,
	}
}

// onCard reports whether screen row y lies in the card area. Before the first
// window size is known every row counts.
func (m *CardModel) onCard(y int) bool {
	if m.height == 0 {
		return true
	}
	top := m.topBar.GetHeight()
	return y >= top && y < top+m.cardArea.GetHeight()
}

func (m *CardModel) cardWidth() int {
	w := m.options.CardWidth
	if avail := m.cardArea.GetWidth() - 4; avail > 0 && avail < w {
		w = avail
	}
	return w
}

func (m *CardModel) cardHeight() int {
	// Cards are 3:4; convert the height from columns into rows.
	h := int(float64(m.cardWidth()) * 4 / 3 * m.options.CellWidth / m.options.CellHeight)
	if avail := m.cardArea.GetHeight() - 2; avail > 0 && avail < h {
		h = avail
	}
	if h < 7 {
		h = 7
	}
	return h
}

// View renders the UI
func (m *CardModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.showHelp:
		m.cardArea.SetContent(lipgloss.Place(
			m.cardArea.GetWidth(), m.cardArea.GetHeight(),
			lipgloss.Center, lipgloss.Center,
			m.helpText,
		))
	case m.state.Summary():
		m.cardArea.SetContent(m.renderSummary())
	default:
		m.cardArea.SetContent(renderTransformed(
			m.renderCard(),
			m.displayTransform(),
			m.cardArea.GetWidth(), m.cardArea.GetHeight(),
			m.options.CellWidth, m.options.CellHeight,
		))
	}
	m.footer.SetContent(m.renderFooter())

	out := m.flexbox.Render()

	m.resetRow = -1
	if m.state.Summary() && !m.showHelp {
		m.resetRow = findRow(out, resetLabel)
	}
	return out
}

// renderCard renders the current question inside a card coloured by its
// category.
func (m *CardModel) renderCard() string {
	width := m.cardWidth()
	height := m.cardHeight()

	q, ok := m.state.Current()
	if !ok {
		return styles.emptyCard.Width(width).Height(height).Render("No question yet")
	}

	color := lipgloss.Color(m.bank.Color(q.Category))
	style := styles.card.
		Width(width).
		Height(height).
		Background(color).
		BorderForeground(color)
	if m.recognizer.Dragging() {
		style = style.Border(lipgloss.ThickBorder())
	}

	textWidth := width - style.GetHorizontalPadding()
	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.cardLabel.Render(strings.ToUpper(q.Category)),
		"",
		styles.question.Width(textWidth).Align(lipgloss.Center).Render(q.Text),
	)
	return style.Render(content)
}

func (m *CardModel) renderFooter() string {
	var lines []string

	lines = append(lines, m.feedbackLine())

	if !m.endless && !m.state.Summary() && m.length > 0 {
		card := m.state.Index() + 1
		if card > m.length {
			card = m.length
		}
		counter := fmt.Sprintf("Card %d of %d", card, m.length)
		percent := float64(card) / float64(m.length)
		lines = append(lines, styles.hint.Render(counter)+"  "+m.progress.ViewAs(percent))
	}

	lines = append(lines, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *CardModel) feedbackLine() string {
	if m.lastErr != nil {
		return styles.errorText.Render("Something went wrong: " + m.lastErr.Error())
	}

	q, _ := m.state.Current()
	name := titleCase(q.Category)

	var text string
	switch m.state.Feedback() {
	case session.FeedbackNext:
		text = "Next question"
	case session.FeedbackPrevious:
		text = "Back to an earlier question"
	case session.FeedbackPointUp:
		text = fmt.Sprintf("+1 %s (%d)", name, m.state.Tally(q.Category))
	case session.FeedbackPointDown:
		text = fmt.Sprintf("-1 %s (%d)", name, m.state.Tally(q.Category))
	case session.FeedbackLike:
		text = "Liked! Here's another one"
	case session.FeedbackNewTopic:
		text = "New topic: " + name
	case session.FeedbackFinished:
		text = fmt.Sprintf("That's all %d questions!", m.length)
	case session.FeedbackReset:
		text = "Fresh start"
	default:
		return styles.hint.Render("Drag the card or use the arrow keys")
	}
	return styles.feedback.Render(text)
}

// findRow returns the index of the first line of view containing label, or -1.
func findRow(view, label string) int {
	for i, line := range strings.Split(view, "\n") {
		if strings.Contains(line, label) {
			return i
		}
	}
	return -1
}
