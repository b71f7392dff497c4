package gesture

import (
	"fmt"
	"math"

	. "github.com/JaMo42/stickyboard/common"
	"github.com/JaMo42/stickyboard/geometry"
)

const (
	DefaultMinWidth  = 80
	DefaultMinHeight = 60
)

// CornerType names the corner that follows the pointer during a resize, the
// opposite corner stays in place.
type CornerType int

var Corner = struct {
	TopLeft, TopRight, BottomLeft, BottomRight CornerType
}{0, 1, 2, 3}

func (self CornerType) String() string {
	switch self {
	case Corner.TopLeft:
		return "top-left"
	case Corner.TopRight:
		return "top-right"
	case Corner.BottomLeft:
		return "bottom-left"
	case Corner.BottomRight:
		return "bottom-right"
	}
	return fmt.Sprintf("CornerType(%d)", int(self))
}

func (self CornerType) left() bool {
	return self == Corner.TopLeft || self == Corner.BottomLeft
}

func (self CornerType) top() bool {
	return self == Corner.TopLeft || self == Corner.TopRight
}

type ResizeOptions struct {
	// Rect returns the live rectangle, it is read once when the gesture
	// begins.
	Rect func() geometry.Rect
	// Bounds is the region the rectangle must stay in, see
	// geometry.ConstrainToBounds for how it is interpreted.
	Bounds geometry.Rect
	// Obstacles returns the rectangles that may not be grown into. It is
	// called on every move. May be nil.
	Obstacles func() []geometry.Rect
	Corner    CornerType
	MinWidth  Optional[float64]
	MinHeight Optional[float64]
	// OnResize receives every accepted rectangle.
	OnResize func(geometry.Rect)
	// CanShrink is polled once per move, when it returns false neither
	// dimension may decrease during that move. Nil allows shrinking.
	CanShrink func() bool
}

// Resizer changes the size of a rectangle by dragging one of its corners.
// Deltas are incremental: after every accepted move the rectangle and pointer
// position become the new reference, while rejected moves leave the reference
// alone so small motions accumulate until they have an effect.
type Resizer struct {
	opts      ResizeOptions
	minWidth  float64
	minHeight float64
	active    bool
	start     Point
	current   geometry.Rect
}

func NewResizer(opts ResizeOptions) *Resizer {
	return &Resizer{
		opts:      opts,
		minWidth:  opts.MinWidth.UnwrapOr(DefaultMinWidth),
		minHeight: opts.MinHeight.UnwrapOr(DefaultMinHeight),
	}
}

func (self *Resizer) Corner() CornerType {
	return self.opts.Corner
}

func (self *Resizer) Active() bool {
	return self.active
}

func (self *Resizer) Begin(ev *PointerEvent) {
	ev.PreventDefault()
	self.start = ev.Pos
	self.current = self.opts.Rect()
	self.active = true
}

func (self *Resizer) End() {
	self.active = false
}

// Move applies the pointer motion and reports whether OnResize was called.
func (self *Resizer) Move(pos Point) bool {
	if !self.active {
		return false
	}
	next, changed := self.propose(pos)
	if !changed {
		return false
	}
	if self.opts.OnResize != nil {
		self.opts.OnResize(next)
	}
	self.current = next
	self.start = pos
	return true
}

func (self *Resizer) propose(pos Point) (geometry.Rect, bool) {
	canShrink := self.opts.CanShrink == nil || self.opts.CanShrink()
	dx := pos.X - self.start.X
	dy := pos.Y - self.start.Y
	current := self.current
	next := current

	width, height := current.Width, current.Height
	if self.opts.Corner.left() {
		width -= dx
	} else {
		width += dx
	}
	if self.opts.Corner.top() {
		height -= dy
	} else {
		height += dy
	}
	width = math.Max(self.minWidth, width)
	height = math.Max(self.minHeight, height)

	// The position only follows when the size really changed, and only by as
	// much as the size did so the opposite edge stays put when the minimum
	// absorbs part of the delta.
	if width != current.Width {
		next.Width = width
		if self.opts.Corner.left() {
			next.X = current.X + (current.Width - width)
		}
	}
	if height != current.Height {
		next.Height = height
		if self.opts.Corner.top() {
			next.Y = current.Y + (current.Height - height)
		}
	}

	if !canShrink {
		if next.Width < current.Width {
			next.Width = current.Width
			next.X = current.X
		}
		if next.Height < current.Height {
			next.Height = current.Height
			next.Y = current.Y
		}
	}

	next = geometry.ConstrainToBounds(next, self.opts.Bounds)

	// Each axis is checked against the obstacles on its own so a blocked
	// axis does not prevent resizing along the other one.
	var obstacles []geometry.Rect
	if self.opts.Obstacles != nil {
		obstacles = self.opts.Obstacles()
	}
	xTrial := current
	xTrial.X, xTrial.Width = next.X, next.Width
	yTrial := current
	yTrial.Y, yTrial.Height = next.Y, next.Height

	final := current
	if !geometry.IntersectsAny(xTrial, obstacles) {
		final.X, final.Width = next.X, next.Width
	}
	if !geometry.IntersectsAny(yTrial, obstacles) {
		final.Y, final.Height = next.Y, next.Height
	}
	if final.Width == current.Width {
		final.X = current.X
	}
	if final.Height == current.Height {
		final.Y = current.Y
	}
	return final, final != current
}
