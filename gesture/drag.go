package gesture

import (
	. "github.com/JaMo42/stickyboard/common"
	"github.com/JaMo42/stickyboard/geometry"
)

type DragOptions struct {
	Rect    func() geometry.Rect
	OnMove  func(geometry.Rect)
	OnStart func()
	OnEnd   func()
}

// Dragger translates a rectangle by the pointer offset from where the gesture
// began. It applies no constraints at all; keeping the result inside bounds
// or away from other rectangles is up to OnMove.
type Dragger struct {
	opts    DragOptions
	start   Point
	initial Optional[geometry.Rect]
}

func NewDragger(opts DragOptions) *Dragger {
	return &Dragger{opts: opts}
}

func (self *Dragger) Active() bool {
	return self.initial.IsSome()
}

func (self *Dragger) Begin(ev *PointerEvent) {
	self.start = ev.Pos
	self.initial = Some(self.opts.Rect())
	if self.opts.OnStart != nil {
		self.opts.OnStart()
	}
}

// Move calls OnMove with the starting rectangle shifted by the total pointer
// offset. It reports false only if no gesture is active.
func (self *Dragger) Move(pos Point) bool {
	if !self.initial.IsSome() {
		return false
	}
	next := self.initial.Unwrap().Translate(pos.X-self.start.X, pos.Y-self.start.Y)
	if self.opts.OnMove != nil {
		self.opts.OnMove(next)
	}
	return true
}

func (self *Dragger) End() {
	if self.initial.Take().IsSome() && self.opts.OnEnd != nil {
		self.opts.OnEnd()
	}
}
