package tui

import (
	"log"

	"github.com/gdamore/tcell/v2"

	. "github.com/JaMo42/stickyboard/common"
	"github.com/JaMo42/stickyboard/gesture"
)

// PointerReceiver gets the pointer-down events. Receivers that start a
// gesture return it and receive the rest of the pointer events through it.
type PointerReceiver interface {
	PointerDown(ev *gesture.PointerEvent) Optional[gesture.Gesture]
	// Click is the default action of a pointer-down, it is skipped if the
	// event was prevented.
	Click(ev *gesture.PointerEvent)
}

type ArrowReceiver interface {
	Arrow(dx, dy int)
}

type TextReceiver interface {
	Rune(r rune)
	Backspace()
}

type Layout interface {
	Create()
	Layout(width, height int)
	Update(scr tcell.Screen, widget any)
}

type Tui struct {
	scr         tcell.Screen
	layout      Layout
	metrics     Metrics
	gestures    *gesture.Controller
	pointer     []PointerReceiver
	arrow       ArrowReceiver
	text        TextReceiver
	keys        map[tcell.Key]any
	interrupt   any
	prevButtons tcell.ButtonMask
}

func NewTui(scr tcell.Screen, layout Layout, metrics Metrics) Tui {
	layout.Create()
	layout.Layout(scr.Size())
	return Tui{
		scr:      scr,
		layout:   layout,
		metrics:  metrics,
		gestures: gesture.NewController(),
		keys:     make(map[tcell.Key]any),
	}
}

// Layout calls the layouts Layout method with the current screen size.
func (self *Tui) Layout() {
	self.layout.Layout(self.scr.Size())
}

// Update calls the layouts Update method and shows the screen.
func (self *Tui) Update(widget any) {
	if widget == nil {
		self.scr.Clear()
	}
	self.layout.Update(self.scr, widget)
	self.scr.Show()
}

func (self *Tui) SetKey(key tcell.Key, action any) {
	self.keys[key] = action
}

func (self *Tui) SetInterrupt(action any) {
	self.interrupt = action
}

func (self *Tui) SetArrowReceiver(receiver ArrowReceiver) {
	self.arrow = receiver
}

func (self *Tui) SetTextReceiver(receiver TextReceiver) {
	self.text = receiver
}

// SetPointerReceivers sets the receivers for pointer-down events, later
// receivers are asked first.
func (self *Tui) SetPointerReceivers(receivers []PointerReceiver) {
	self.pointer = receivers
}

// Gestures returns the controller routing pointer events to the active
// gesture.
func (self *Tui) Gestures() *gesture.Controller {
	return self.gestures
}

// Defer runs f from the event loop once the events queued so far, including
// the pending redraw, are handled.
func (self *Tui) Defer(f func()) {
	if err := self.scr.PostEvent(tcell.NewEventInterrupt(f)); err != nil {
		log.Printf("could not defer: %s, running now", err)
		f()
	}
}

// Post makes RunUntilAction return action. It is safe to call from other
// goroutines.
func (self *Tui) Post(action any) {
	if err := self.scr.PostEvent(tcell.NewEventInterrupt(action)); err != nil {
		log.Printf("could not post %T: %s", action, err)
	}
}

// Close ends an active gesture, it must be called before the screen is
// finalized.
func (self *Tui) Close() {
	self.gestures.Close()
}

// RunUntilAction handles events until a key bound to an action is pressed
// and returns that action.
func (self *Tui) RunUntilAction() any {
	for {
		var action Optional[any]
		redraw := false
		ev := self.scr.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// The screen was finalized.
			return self.interrupt
		case *tcell.EventKey:
			action, redraw = self.keyEvent(ev)
		case *tcell.EventMouse:
			redraw = self.mouseEvent(ev)
		case *tcell.EventInterrupt:
			if f, ok := ev.Data().(func()); ok {
				f()
				redraw = true
			} else if ev.Data() != nil {
				action = Some(ev.Data())
			}
		case *tcell.EventResize:
			self.Layout()
			redraw = true
		}
		if action.IsSome() {
			return action.Unwrap()
		}
		if redraw {
			self.Update(nil)
		}
	}
}

func (self *Tui) keyEvent(ev *tcell.EventKey) (Optional[any], bool) {
	switch ev.Key() {
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
		if self.arrow == nil {
			return None[any](), false
		}
		dx, dy := arrowDelta(ev.Key())
		self.arrow.Arrow(dx, dy)
		return None[any](), true
	case tcell.KeyRune:
		if self.text == nil {
			return None[any](), false
		}
		self.text.Rune(ev.Rune())
		return None[any](), true
	case tcell.KeyEnter:
		if self.text == nil {
			return None[any](), false
		}
		self.text.Rune('\n')
		return None[any](), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if self.text == nil {
			return None[any](), false
		}
		self.text.Backspace()
		return None[any](), true
	case tcell.KeyCtrlC:
		return Some(self.interrupt), false
	}
	if action, found := self.keys[ev.Key()]; found {
		return Some(action), false
	}
	return None[any](), false
}

func arrowDelta(key tcell.Key) (int, int) {
	switch key {
	case tcell.KeyUp:
		return 0, -1
	case tcell.KeyDown:
		return 0, 1
	case tcell.KeyLeft:
		return -1, 0
	case tcell.KeyRight:
		return 1, 0
	}
	return 0, 0
}

// mouseEvent turns the button state reported by tcell into pointer-down,
// move and up events. Only the primary button drives gestures.
func (self *Tui) mouseEvent(ev *tcell.EventMouse) bool {
	col, row := ev.Position()
	x, y := self.metrics.ToPixels(col, row)
	prevDown := self.prevButtons&tcell.Button1 != 0
	nowDown := ev.Buttons()&tcell.Button1 != 0
	self.prevButtons = ev.Buttons()

	switch {
	case nowDown && !prevDown:
		pev := gesture.NewPointerEvent(gesture.Phase.Down, x, y)
		for i := len(self.pointer) - 1; i >= 0; i-- {
			receiver := self.pointer[i]
			if g := receiver.PointerDown(pev); g.IsSome() {
				self.gestures.Capture(g.Unwrap(), pev)
				if !pev.DefaultPrevented() {
					receiver.Click(pev)
				}
				return true
			}
		}
		for _, receiver := range self.pointer {
			receiver.Click(pev)
		}
		return true
	case nowDown:
		_, changed := self.gestures.Dispatch(gesture.NewPointerEvent(gesture.Phase.Move, x, y))
		return changed
	case prevDown:
		handled, _ := self.gestures.Dispatch(gesture.NewPointerEvent(gesture.Phase.Up, x, y))
		return handled
	}
	return false
}
