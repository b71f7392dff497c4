package board

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/JaMo42/stickyboard/autofit"
	. "github.com/JaMo42/stickyboard/common"
	"github.com/JaMo42/stickyboard/geometry"
	"github.com/JaMo42/stickyboard/gesture"
	"github.com/JaMo42/stickyboard/tui"
)

type boardHarness struct {
	board    *Board
	gestures *gesture.Controller
	queue    []func()
}

func newBoardHarness() *boardHarness {
	h := &boardHarness{gestures: gesture.NewController()}
	h.board = NewBoard(NewStore(), Options{
		Metrics:       tui.Metrics{CellWidth: 8, CellHeight: 16},
		MinWidth:      80,
		MinHeight:     60,
		MinFontSize:   10,
		MaxFontSize:   32,
		NoteChroma:    0.25,
		NoteLuminance: 0.85,
		Defer:         func(f func()) { h.queue = append(h.queue, f) },
	})
	h.board.SetViewport(tui.NewRectangle(0, 0, 100, 30))
	return h
}

// press presses the pointer on a cell and returns whether a gesture started.
func (self *boardHarness) press(col, row int) bool {
	ev := gesture.NewPointerEvent(gesture.Phase.Down, float64(col*8), float64(row*16))
	g := self.board.PointerDown(ev)
	if !g.IsSome() {
		self.board.Click(ev)
		return false
	}
	self.gestures.Capture(g.Unwrap(), ev)
	if !ev.DefaultPrevented() {
		self.board.Click(ev)
	}
	return true
}

func (self *boardHarness) moveTo(col, row int) {
	self.gestures.Dispatch(gesture.NewPointerEvent(gesture.Phase.Move, float64(col*8), float64(row*16)))
}

func (self *boardHarness) release() {
	self.gestures.Dispatch(gesture.NewPointerEvent(gesture.Phase.Up, 0, 0))
}

func (self *boardHarness) flush() {
	queue := self.queue
	self.queue = nil
	for _, f := range queue {
		f()
	}
}

func TestBoardBounds(t *testing.T) {
	h := newBoardHarness()
	if b := h.board.Bounds(); b != geometry.NewRect(0, 0, 800, 480) {
		t.Errorf("Bounds() = %+v", b)
	}
}

func TestNewNotesDoNotOverlap(t *testing.T) {
	h := newBoardHarness()
	a := h.board.NewNote("a")
	b := h.board.NewNote("b")
	if a.Rect != geometry.NewRect(50, 50, 200, 120) {
		t.Errorf("first note at %+v", a.Rect)
	}
	if geometry.Intersects(a.Rect, b.Rect) {
		t.Errorf("second note %+v overlaps the first %+v", b.Rect, a.Rect)
	}
	if active := h.board.Store().Active(); !active.IsSome() || active.Unwrap() != b {
		t.Errorf("newest note should be active")
	}
}

func TestCornerStartsResize(t *testing.T) {
	h := newBoardHarness()
	note := h.board.NewNote("a")
	// {50, 50, 200, 120} covers columns 6..30 and rows 3..10.
	if !h.press(30, 10) {
		t.Fatalf("no gesture on the corner")
	}
	if _, ok := h.gestures.Current().(*gesture.Resizer); !ok {
		t.Fatalf("corner started %T", h.gestures.Current())
	}
	if status := h.board.Status(); !strings.HasPrefix(status, "Resizing B") {
		t.Errorf("Status() = %q", status)
	}
	h.moveTo(35, 12)
	h.release()
	if note.Rect != geometry.NewRect(50, 50, 240, 152) {
		t.Errorf("resized to %+v", note.Rect)
	}
	if h.gestures.Active() {
		t.Errorf("gesture still active after release")
	}
}

func TestResizeStopsAtNeighbour(t *testing.T) {
	h := newBoardHarness()
	a := h.board.NewNote("a")
	b := h.board.NewNote("b")
	h.board.Store().SetRect(b.ID, geometry.NewRect(260, 50, 200, 120))
	h.press(30, 10)
	h.moveTo(35, 12)
	h.release()
	// Growing right runs into b, growing down is free.
	if a.Rect != geometry.NewRect(50, 50, 200, 152) {
		t.Errorf("resized to %+v", a.Rect)
	}
}

func TestShrinkLock(t *testing.T) {
	h := newBoardHarness()
	note := h.board.NewNote("a")
	h.board.ToggleShrinkLock()
	if !strings.Contains(h.board.Status(), "shrink locked") {
		t.Errorf("Status() = %q", h.board.Status())
	}
	h.press(30, 10)
	h.moveTo(25, 12)
	h.release()
	if note.Rect != geometry.NewRect(50, 50, 200, 152) {
		t.Errorf("resized to %+v", note.Rect)
	}
}

func TestBodyStartsDrag(t *testing.T) {
	h := newBoardHarness()
	note := h.board.NewNote("a")
	h.board.Store().SetActive(None[string]())
	if !h.press(15, 6) {
		t.Fatalf("no gesture on the body")
	}
	if _, ok := h.gestures.Current().(*gesture.Dragger); !ok {
		t.Fatalf("body started %T", h.gestures.Current())
	}
	if h.board.Status() != "Moving" {
		t.Errorf("Status() = %q", h.board.Status())
	}
	h.moveTo(25, 7)
	h.release()
	if note.Rect != geometry.NewRect(130, 66, 200, 120) {
		t.Errorf("dragged to %+v", note.Rect)
	}
	if active := h.board.Store().Active(); !active.IsSome() || active.Unwrap() != note {
		t.Errorf("clicking a note should activate it")
	}
}

func TestDragPolicy(t *testing.T) {
	h := newBoardHarness()
	a := h.board.NewNote("a")
	b := h.board.NewNote("b")
	h.board.Store().SetRect(b.ID, geometry.NewRect(500, 50, 200, 120))

	h.press(15, 6)
	h.moveTo(35, 6)
	if a.Rect.X != 210 {
		t.Errorf("free move not applied: %+v", a.Rect)
	}
	h.moveTo(55, 6)
	if a.Rect.X != 210 {
		t.Errorf("move into a neighbour applied: %+v", a.Rect)
	}
	h.moveTo(-40, 6)
	if a.Rect.X != 0 {
		t.Errorf("move past the edge not clamped: %+v", a.Rect)
	}
	h.release()
}

func TestPressOnEmptyAreaDeactivates(t *testing.T) {
	h := newBoardHarness()
	h.board.NewNote("a")
	if h.press(90, 25) {
		t.Errorf("gesture started on the empty board")
	}
	if h.board.Store().Active().IsSome() {
		t.Errorf("empty click kept the active note")
	}
}

func TestPressBringsToFront(t *testing.T) {
	h := newBoardHarness()
	a := h.board.NewNote("a")
	b := h.board.NewNote("b")
	h.board.Store().SetRect(b.ID, geometry.NewRect(400, 50, 200, 120))
	h.press(15, 6)
	h.release()
	if a.ZIndex <= b.ZIndex {
		t.Errorf("pressed note not in front: %d <= %d", a.ZIndex, b.ZIndex)
	}
}

func TestArrowNudgesActive(t *testing.T) {
	h := newBoardHarness()
	note := h.board.NewNote("a")
	h.board.Arrow(1, -1)
	if note.Rect != geometry.NewRect(58, 34, 200, 120) {
		t.Errorf("nudged to %+v", note.Rect)
	}
	h.board.Arrow(0, -5)
	if note.Rect.Y != 0 {
		t.Errorf("nudge past the edge not clamped: %+v", note.Rect)
	}
}

func TestTextEditing(t *testing.T) {
	h := newBoardHarness()
	note := h.board.NewNote("")
	for _, r := range "héllo" {
		h.board.Rune(r)
	}
	h.board.Backspace()
	if note.Text != "héll" {
		t.Errorf("Text = %q", note.Text)
	}
	h.board.Store().SetActive(None[string]())
	h.board.Rune('x')
	if note.Text != "héll" {
		t.Errorf("typing without an active note changed it")
	}
}

func TestDeleteActive(t *testing.T) {
	h := newBoardHarness()
	h.board.NewNote("a")
	if !h.board.DeleteActive() || h.board.Store().Len() != 0 {
		t.Errorf("active note not deleted")
	}
	if h.board.DeleteActive() {
		t.Errorf("deleted without an active note")
	}
}

func TestViewportShrinkKeepsNotesInside(t *testing.T) {
	h := newBoardHarness()
	note := h.board.NewNote("a")
	h.board.Store().SetRect(note.ID, geometry.NewRect(500, 300, 200, 120))
	h.board.SetViewport(tui.NewRectangle(0, 0, 60, 20))
	if note.Rect != geometry.NewRect(280, 200, 200, 120) {
		t.Errorf("note at %+v after shrinking the viewport", note.Rect)
	}
}

func TestRedrawFitsFontAfterPass(t *testing.T) {
	h := newBoardHarness()
	note := h.board.NewNote(strings.Repeat("word ", 40))
	scr := tcell.NewSimulationScreen("UTF-8")
	if err := scr.Init(); err != nil {
		t.Fatalf("could not initialize screen: %s", err)
	}
	defer scr.Fini()
	scr.SetSize(100, 30)

	h.board.Redraw(scr)
	if h.board.FontSize(note.ID) != autofit.InitialFontSize {
		t.Errorf("font fitted before the deferred pass")
	}
	h.flush()
	small := h.board.FontSize(note.ID)
	if small < 10 || small >= 32 {
		t.Errorf("long text fitted at %d", small)
	}

	h.board.Store().Update(note.ID, func(s *Sticker) { s.Text = "hi" })
	h.board.Redraw(scr)
	h.flush()
	if h.board.FontSize(note.ID) != 32 {
		t.Errorf("short text should fit at the maximum, got %d", h.board.FontSize(note.ID))
	}

	h.board.Redraw(scr)
	scr.Show()
	mainc, _, _, _ := scr.GetContent(6, 3)
	if mainc != '╭' {
		t.Errorf("top left corner is %q", mainc)
	}
	mainc, _, _, _ = scr.GetContent(7, 4)
	if mainc != 'h' {
		t.Errorf("text starts with %q", mainc)
	}
}

func TestCornerPressActivates(t *testing.T) {
	h := newBoardHarness()
	note := h.board.NewNote("a")
	h.board.Store().SetActive(None[string]())
	h.press(30, 10)
	h.moveTo(35, 12)
	h.release()
	if note.Rect != geometry.NewRect(50, 50, 240, 152) {
		t.Errorf("resized to %+v", note.Rect)
	}
	if active := h.board.Store().Active(); !active.IsSome() || active.Unwrap() != note {
		t.Errorf("pressing a corner should activate the note")
	}
}

func TestRaisingKeepsColor(t *testing.T) {
	h := newBoardHarness()
	a := h.board.NewNote("a")
	b := h.board.NewNote("b")
	h.board.Store().SetRect(b.ID, geometry.NewRect(400, 50, 200, 120))
	scr := tcell.NewSimulationScreen("UTF-8")
	if err := scr.Init(); err != nil {
		t.Fatalf("could not initialize screen: %s", err)
	}
	defer scr.Fini()
	scr.SetSize(100, 30)

	h.board.Redraw(scr)
	_, _, before, _ := scr.GetContent(10, 6)
	z := a.ZIndex
	h.press(15, 6)
	h.release()
	if a.ZIndex == z {
		t.Fatalf("press did not raise the note")
	}
	h.board.Redraw(scr)
	_, _, after, _ := scr.GetContent(10, 6)
	if before != after {
		t.Errorf("raising changed the note style from %v to %v", before, after)
	}
}
