package session

import (
	"github.com/ImGajeed76/datenight/pkg/datenight/gesture"
	"github.com/ImGajeed76/datenight/pkg/datenight/selection"
)

// History is the bounded session: swiping right draws a new question from any
// category, swiping left revisits earlier ones, vertical swipes score the
// current category. After Length questions the session ends in a summary.
type History struct {
	Engine *selection.Engine
	Length int
}

func (p *History) Name() string { return ModeSession }
func (p *History) Threshold() float64 { return gesture.HistoryThreshold }
func (p *History) MinCategories() int { return 1 }

func (p *History) Start() (State, error) {
	return newState(p.Engine.Bank().Categories(), p.Engine.PickAny()), nil
}

func (p *History) Reduce(s State, in Intent) (State, error) {
	if s.summary {
		if in == IntentReset {
			next, err := p.Start()
			if err != nil {
				return s, err
			}
			return next.withFeedback(FeedbackReset), nil
		}
		return s, nil
	}

	current, ok := s.Current()
	if !ok {
		return s, nil
	}

	switch in {
	case IntentForward:
		if s.index < p.Length-1 {
			return s.appended(p.Engine.PickAny()).withFeedback(FeedbackNext), nil
		}
		s.summary = true
		return s.withFeedback(FeedbackFinished), nil
	case IntentBackward:
		if s.index > 0 {
			s.index--
			return s.withFeedback(FeedbackPrevious), nil
		}
		return s, nil
	case IntentUp:
		return s.scored(current.Category, 1).withFeedback(FeedbackPointUp), nil
	case IntentDown:
		return s.scored(current.Category, -1).withFeedback(FeedbackPointDown), nil
	default:
		return s, nil
	}
}
