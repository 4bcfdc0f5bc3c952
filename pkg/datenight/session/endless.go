package session

import (
	"github.com/ImGajeed76/datenight/pkg/datenight/gesture"
	"github.com/ImGajeed76/datenight/pkg/datenight/selection"
)

// Endless never ends: every swipe shows another question, swiping down
// switches to a different category first. Only the current card is kept.
type Endless struct {
	Engine *selection.Engine
	// Category is the starting category; empty picks one at random.
	Category string
}

func (p *Endless) Name() string { return ModeEndless }
func (p *Endless) Threshold() float64 { return gesture.EndlessThreshold }
func (p *Endless) MinCategories() int { return 2 }

func (p *Endless) Start() (State, error) {
	if err := p.Engine.Bank().Require(p.MinCategories()); err != nil {
		return State{}, err
	}

	category := p.Category
	if category == "" {
		category = p.Engine.PickCategory()
	}
	q, err := p.Engine.PickQuestion(category)
	if err != nil {
		return State{}, err
	}
	return newState(p.Engine.Bank().Categories(), q), nil
}

func (p *Endless) Reduce(s State, in Intent) (State, error) {
	current, ok := s.Current()
	if !ok {
		return s, nil
	}

	switch in {
	case IntentForward, IntentBackward, IntentUp:
		q, err := p.Engine.PickQuestion(current.Category)
		if err != nil {
			return s, err
		}
		feedback := FeedbackNext
		if in == IntentUp {
			feedback = FeedbackLike
		}
		return s.replaced(q).withFeedback(feedback), nil
	case IntentDown:
		category, err := p.Engine.PickOtherCategory(current.Category)
		if err != nil {
			return s, err
		}
		q, err := p.Engine.PickQuestion(category)
		if err != nil {
			return s, err
		}
		return s.replaced(q).withFeedback(FeedbackNewTopic), nil
	default:
		return s, nil
	}
}
