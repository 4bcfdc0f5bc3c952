package gesture

import "math"

// RotationFactor converts horizontal offset into degrees of card rotation.
const RotationFactor = 0.1

// Default swipe thresholds, in units.
const (
	HistoryThreshold = 100
	EndlessThreshold = 50
)

// Point is a pointer position in units. Larger Y is further down the screen.
type Point struct {
	X, Y float64
}

// Offset is the distance travelled by a drag since its origin.
type Offset struct {
	DX, DY float64
}

// Sub returns the offset from origin to p.
func (p Point) Sub(origin Point) Offset {
	return Offset{DX: p.X - origin.X, DY: p.Y - origin.Y}
}

// IsZero reports whether the offset is neutral.
func (o Offset) IsZero() bool {
	return o.DX == 0 && o.DY == 0
}

// Scale multiplies both components by f.
func (o Offset) Scale(f float64) Offset {
	return Offset{DX: o.DX * f, DY: o.DY * f}
}

type Kind int

const (
	None Kind = iota
	Horizontal
	Vertical
)

func (k Kind) String() string {
	switch k {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "none"
	}
}

type Direction int

const (
	NoDirection Direction = iota
	Forward
	Backward
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "none"
	}
}

// Gesture is a classified drag.
type Gesture struct {
	Kind      Kind
	Direction Direction
}

// NoOp reports whether the gesture should not change anything.
func (g Gesture) NoOp() bool {
	return g.Kind == None
}

func (g Gesture) String() string {
	if g.NoOp() {
		return "none"
	}
	return g.Kind.String() + "-" + g.Direction.String()
}

// Classify turns a final drag offset into a gesture. A drag is a swipe once
// either axis reaches the threshold; an offset exactly at the threshold counts.
// The dominant axis wins, with ties going to horizontal. Negative DY is up.
func Classify(o Offset, threshold float64) Gesture {
	ax, ay := math.Abs(o.DX), math.Abs(o.DY)
	if ax < threshold && ay < threshold {
		return Gesture{}
	}

	if ax >= ay {
		if o.DX > 0 {
			return Gesture{Kind: Horizontal, Direction: Forward}
		}
		return Gesture{Kind: Horizontal, Direction: Backward}
	}

	if o.DY < 0 {
		return Gesture{Kind: Vertical, Direction: Up}
	}
	return Gesture{Kind: Vertical, Direction: Down}
}

// Transform is the visual displacement of the card during a drag.
type Transform struct {
	TranslateX float64
	TranslateY float64
	RotateDeg  float64
}

// TransformFor computes the card transform for a live drag offset.
func TransformFor(o Offset) Transform {
	return Transform{
		TranslateX: o.DX,
		TranslateY: o.DY,
		RotateDeg:  o.DX * RotationFactor,
	}
}

// Identity reports whether t leaves the card untouched.
func (t Transform) Identity() bool {
	return t == Transform{}
}
