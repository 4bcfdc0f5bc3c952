package gesture

type Phase int

const (
	Idle Phase = iota
	Dragging
)

func (p Phase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

// Recognizer tracks one pointer drag at a time. It is a value: every method
// that changes it returns the new recognizer.
type Recognizer struct {
	threshold float64
	phase     Phase
	origin    Point
	offset    Offset
}

// NewRecognizer returns an idle recognizer using the given swipe threshold.
func NewRecognizer(threshold float64) Recognizer {
	return Recognizer{threshold: threshold}
}

func (r Recognizer) Threshold() float64 { return r.threshold }
func (r Recognizer) Phase() Phase { return r.phase }
func (r Recognizer) Dragging() bool { return r.phase == Dragging }
func (r Recognizer) Offset() Offset { return r.offset }
func (r Recognizer) Origin() Point { return r.origin }

// Press starts a drag at p. A press while already dragging restarts the drag.
func (r Recognizer) Press(p Point) Recognizer {
	r.phase = Dragging
	r.origin = p
	r.offset = Offset{}
	return r
}

// Move updates the live offset and returns the transform to display. Moves
// while idle are ignored and report ok == false.
func (r Recognizer) Move(p Point) (next Recognizer, t Transform, ok bool) {
	if r.phase != Dragging {
		return r, Transform{}, false
	}
	r.offset = p.Sub(r.origin)
	return r, TransformFor(r.offset), true
}

// Release ends the drag, classifying the most recent offset. The returned
// recognizer is idle with a zero offset. Releasing while idle reports
// ok == false.
func (r Recognizer) Release() (next Recognizer, g Gesture, ok bool) {
	if r.phase != Dragging {
		return r, Gesture{}, false
	}
	g = Classify(r.offset, r.threshold)
	return NewRecognizer(r.threshold), g, true
}

// Cancel abandons the drag without classifying it.
func (r Recognizer) Cancel() Recognizer {
	return NewRecognizer(r.threshold)
}
