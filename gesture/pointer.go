// Package gesture implements the pointer gestures used to move and resize
// rectangles: a constrained, collision aware resize engine, an unconstrained
// drag engine and a controller that routes pointer events to the gesture
// that is currently active.
package gesture

import "fmt"

type Point struct {
	X, Y float64
}

type PhaseType int

var Phase = struct{ Down, Move, Up PhaseType }{0, 1, 2}

func (self PhaseType) String() string {
	switch self {
	case Phase.Down:
		return "down"
	case Phase.Move:
		return "move"
	case Phase.Up:
		return "up"
	}
	return fmt.Sprintf("PhaseType(%d)", int(self))
}

// PointerEvent is a single pointer event in container coordinates.
type PointerEvent struct {
	Phase            PhaseType
	Pos              Point
	defaultPrevented bool
}

func NewPointerEvent(phase PhaseType, x, y float64) *PointerEvent {
	return &PointerEvent{Phase: phase, Pos: Point{x, y}}
}

// PreventDefault tells the event source not to perform its own handling of
// the event, like starting a text selection or focusing the element below.
func (self *PointerEvent) PreventDefault() {
	self.defaultPrevented = true
}

func (self *PointerEvent) DefaultPrevented() bool {
	return self.defaultPrevented
}
