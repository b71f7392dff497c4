package gesture

// Gesture is driven by the Controller between a pointer-down and the matching
// pointer-up.
type Gesture interface {
	Begin(ev *PointerEvent)
	// Move reports whether the gesture changed anything.
	Move(pos Point) bool
	End()
}

// Subscription ties a gesture to the controller that delivers its events.
// Releasing it ends the gesture; only the first Release has an effect.
type Subscription struct {
	release func()
	done    bool
}

func (self *Subscription) Release() {
	if self.done {
		return
	}
	self.done = true
	self.release()
}

func (self *Subscription) Released() bool {
	return self.done
}

// Controller delivers move and up events to the captured gesture no matter
// where the pointer is. There is at most one captured gesture.
type Controller struct {
	gesture Gesture
	sub     *Subscription
}

func NewController() *Controller {
	return &Controller{}
}

func (self *Controller) Active() bool {
	return self.gesture != nil
}

// Current returns the captured gesture, or nil.
func (self *Controller) Current() Gesture {
	return self.gesture
}

// Capture begins g with the pointer-down event and routes all following
// pointer events to it until the returned subscription is released. A gesture
// that is still captured is released first.
func (self *Controller) Capture(g Gesture, ev *PointerEvent) *Subscription {
	if self.sub != nil {
		self.sub.Release()
	}
	sub := &Subscription{}
	sub.release = func() {
		g.End()
		if self.sub == sub {
			self.gesture = nil
			self.sub = nil
		}
	}
	g.Begin(ev)
	self.gesture = g
	self.sub = sub
	return sub
}

// Dispatch routes a move or up event to the captured gesture. It returns
// whether there was a gesture to receive it and whether anything changed.
func (self *Controller) Dispatch(ev *PointerEvent) (handled bool, changed bool) {
	if self.gesture == nil {
		return false, false
	}
	switch ev.Phase {
	case Phase.Move:
		changed = self.gesture.Move(ev.Pos)
	case Phase.Up:
		self.sub.Release()
		changed = true
	}
	return true, changed
}

// Close releases the captured gesture, if any. It is meant for teardown and
// is safe to call any number of times.
func (self *Controller) Close() {
	if self.sub != nil {
		self.sub.Release()
	}
}
