package session

import "github.com/ImGajeed76/datenight/pkg/datenight/bank"

// Feedback names the last transition so the display can acknowledge it.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackNext
	FeedbackPrevious
	FeedbackPointUp
	FeedbackPointDown
	FeedbackLike
	FeedbackNewTopic
	FeedbackFinished
	FeedbackReset
)

func (f Feedback) String() string {
	switch f {
	case FeedbackNext:
		return "next"
	case FeedbackPrevious:
		return "previous"
	case FeedbackPointUp:
		return "point-up"
	case FeedbackPointDown:
		return "point-down"
	case FeedbackLike:
		return "like"
	case FeedbackNewTopic:
		return "new-topic"
	case FeedbackFinished:
		return "finished"
	case FeedbackReset:
		return "reset"
	default:
		return "none"
	}
}

// State is one snapshot of a session. It is never modified in place: every
// transition builds a new State, so older snapshots stay valid.
type State struct {
	history  []bank.Question
	index    int
	tallies  map[string]int
	order    []string
	summary  bool
	feedback Feedback
}

func newState(categories []string, first bank.Question) State {
	tallies := make(map[string]int, len(categories))
	for _, c := range categories {
		tallies[c] = 0
	}
	return State{
		history: []bank.Question{first},
		tallies: tallies,
		order:   append([]string(nil), categories...),
	}
}

// Current returns the question on display. ok is false only for the zero State.
func (s State) Current() (q bank.Question, ok bool) {
	if len(s.history) == 0 {
		return bank.Question{}, false
	}
	return s.history[s.index], true
}

// Index is the position of the current question in History.
func (s State) Index() int { return s.index }

// Len is the number of questions drawn so far.
func (s State) Len() int { return len(s.history) }

// History returns a copy of the drawn questions, oldest first.
func (s State) History() []bank.Question {
	return append([]bank.Question(nil), s.history...)
}

// Tally returns the points of one category.
func (s State) Tally(category string) int { return s.tallies[category] }

// Tallies returns a copy of the points of every category.
func (s State) Tallies() map[string]int {
	out := make(map[string]int, len(s.tallies))
	for k, v := range s.tallies {
		out[k] = v
	}
	return out
}

// Categories returns the tallied categories in bank order.
func (s State) Categories() []string {
	return append([]string(nil), s.order...)
}

// Summary reports whether the session is over and the totals should be shown.
func (s State) Summary() bool { return s.summary }

// Feedback describes the transition that produced this state.
func (s State) Feedback() Feedback { return s.feedback }

func (s State) withFeedback(f Feedback) State {
	s.feedback = f
	return s
}

// appended drops the questions after the current one and adds q as the next.
// The index advances by exactly one.
func (s State) appended(q bank.Question) State {
	history := make([]bank.Question, s.index+1, s.index+2)
	copy(history, s.history[:s.index+1])
	s.history = append(history, q)
	s.index++
	return s
}

func (s State) replaced(q bank.Question) State {
	s.history = []bank.Question{q}
	s.index = 0
	return s
}

func (s State) scored(category string, delta int) State {
	s.tallies = s.Tallies()
	s.tallies[category] += delta
	return s
}
