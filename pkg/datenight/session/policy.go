package session

import (
	"errors"
	"fmt"

	"github.com/ImGajeed76/datenight/pkg/datenight/selection"
)

const (
	ModeSession = "session"
	ModeEndless = "endless"
)

// DefaultLength is the number of questions in a history session.
const DefaultLength = 25

var ErrUnknownMode = errors.New("unknown mode")

// Policy is a reducer over session states.
type Policy interface {
	// Name is the mode the policy is selected by.
	Name() string
	// Start draws the initial state.
	Start() (State, error)
	// Reduce applies one intent. On error the returned state is s.
	Reduce(s State, in Intent) (State, error)
	// Threshold is the default swipe threshold in units.
	Threshold() float64
	// MinCategories is the smallest bank the policy can run on.
	MinCategories() int
}

// Options configures NewPolicy.
type Options struct {
	Mode     string
	Length   int
	Category string
}

// NewPolicy builds the policy named by opts.Mode.
func NewPolicy(engine *selection.Engine, opts Options) (Policy, error) {
	switch opts.Mode {
	case ModeSession, "":
		length := opts.Length
		if length <= 0 {
			length = DefaultLength
		}
		return &History{Engine: engine, Length: length}, nil
	case ModeEndless:
		return &Endless{Engine: engine, Category: opts.Category}, nil
	default:
		return nil, fmt.Errorf("%q: %w", opts.Mode, ErrUnknownMode)
	}
}
