package session

import "github.com/ImGajeed76/datenight/pkg/datenight/gesture"

// Intent is an input event already stripped of its source (swipe or key).
type Intent int

const (
	IntentNone Intent = iota
	IntentForward
	IntentBackward
	IntentUp
	IntentDown
	IntentReset
)

func (i Intent) String() string {
	switch i {
	case IntentForward:
		return "forward"
	case IntentBackward:
		return "backward"
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentReset:
		return "reset"
	default:
		return "none"
	}
}

// IntentFromGesture maps a classified swipe onto an intent.
func IntentFromGesture(g gesture.Gesture) Intent {
	switch g.Direction {
	case gesture.Forward:
		return IntentForward
	case gesture.Backward:
		return IntentBackward
	case gesture.Up:
		return IntentUp
	case gesture.Down:
		return IntentDown
	default:
		return IntentNone
	}
}

// IntentFromKey maps the four arrow keys onto swipe intents. Any other key is
// IntentNone.
func IntentFromKey(key string) Intent {
	switch key {
	case "right":
		return IntentForward
	case "left":
		return IntentBackward
	case "up":
		return IntentUp
	case "down":
		return IntentDown
	default:
		return IntentNone
	}
}
