package board

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/JaMo42/stickyboard/autofit"
	. "github.com/JaMo42/stickyboard/common"
	"github.com/JaMo42/stickyboard/geometry"
	"github.com/JaMo42/stickyboard/gesture"
	"github.com/JaMo42/stickyboard/tui"
	"github.com/JaMo42/stickyboard/util"
)

type Options struct {
	Metrics       tui.Metrics
	MinWidth      float64
	MinHeight     float64
	MinFontSize   int
	MaxFontSize   int
	NoteChroma    float64
	NoteLuminance float64
	// Defer runs a function after the current redraw. Nil runs it right
	// away.
	Defer func(func())
}

func OptionsFromConfig(cfg *Config, deferFn func(func())) Options {
	return Options{
		Metrics:       tui.NewMetrics(cfg),
		MinWidth:      cfg.General.MinWidth,
		MinHeight:     cfg.General.MinHeight,
		MinFontSize:   cfg.General.MinFontSize,
		MaxFontSize:   cfg.General.MaxFontSize,
		NoteChroma:    cfg.Colors.NoteChroma,
		NoteLuminance: cfg.Colors.NoteLuminance,
		Defer:         deferFn,
	}
}

// noteView is the per-sticker UI state.
type noteView struct {
	layout *tui.TextLayout
	fitter *autofit.Fitter
}

// Board shows the stickers of a store and lets the pointer move and resize
// them. Resizing goes through the collision aware resize engine, dragging is
// unconstrained and the board applies its own policy to the result.
type Board struct {
	store        *Store
	opts         Options
	viewport     tui.Rectangle
	views        map[string]*noteView
	shrinkLocked bool
	current      gesture.Gesture
}

func NewBoard(store *Store, opts Options) *Board {
	return &Board{
		store: store,
		opts:  opts,
		views: make(map[string]*noteView),
	}
}

func (self *Board) Store() *Store {
	return self.store
}

// SetViewport places the board on screen. Stickers that would end up
// outside of it are moved back in.
func (self *Board) SetViewport(viewport tui.Rectangle) {
	self.viewport = viewport
	bounds := self.Bounds()
	for _, s := range self.store.Stickers() {
		s.Rect = geometry.ConstrainToBounds(s.Rect, bounds)
	}
}

// Bounds returns the area stickers must stay in, in board pixels.
func (self *Board) Bounds() geometry.Rect {
	width, height := self.opts.Metrics.PixelSize(self.viewport)
	return geometry.NewRect(0, 0, width, height)
}

func (self *Board) ShrinkLocked() bool {
	return self.shrinkLocked
}

func (self *Board) SetShrinkLocked(locked bool) {
	self.shrinkLocked = locked
}

func (self *Board) ToggleShrinkLock() bool {
	self.shrinkLocked = !self.shrinkLocked
	return self.shrinkLocked
}

// cellRect returns the screen cells a sticker is drawn in.
func (self *Board) cellRect(s *Sticker) tui.Rectangle {
	return self.opts.Metrics.CellRect(s.Rect, self.viewport)
}

// stickerAt returns the topmost sticker drawn at the given screen cell.
func (self *Board) stickerAt(col, row int) Optional[*Sticker] {
	stickers := self.store.Stickers()
	for i := len(stickers) - 1; i >= 0; i-- {
		r := self.cellRect(stickers[i])
		if r.Contains(col, row) {
			return Some(stickers[i])
		}
	}
	return None[*Sticker]()
}

// NewNote creates a sticker in the first free spot and makes it active.
func (self *Board) NewNote(text string) *Sticker {
	s := self.store.Create(text)
	s.Rect = self.freeSpot(s.ID, s.Rect)
	self.store.SetActive(Some(s.ID))
	self.view(s.ID)
	log.Printf("created note %s at %+v", s.ID, s.Rect)
	return s
}

// freeSpot scans the board cell by cell for a place where rect does not
// overlap any other sticker, preferring its current position.
func (self *Board) freeSpot(id string, rect geometry.Rect) geometry.Rect {
	bounds := self.Bounds()
	obstacles := self.store.Obstacles(id)
	candidate := geometry.ConstrainToBounds(rect, bounds)
	if !geometry.IntersectsAny(candidate, obstacles) {
		return candidate
	}
	stepX, stepY := self.opts.Metrics.CellWidth, self.opts.Metrics.CellHeight
	for y := bounds.Y; y+rect.Height <= bounds.Height; y += stepY {
		for x := bounds.X; x+rect.Width <= bounds.Width; x += stepX {
			candidate = geometry.NewRect(x, y, rect.Width, rect.Height)
			if !geometry.IntersectsAny(candidate, obstacles) {
				return candidate
			}
		}
	}
	return geometry.ConstrainToBounds(rect, bounds)
}

// DeleteActive removes the active sticker and reports whether there was one.
func (self *Board) DeleteActive() bool {
	active := self.store.Active()
	if !active.IsSome() {
		return false
	}
	id := active.Unwrap().ID
	self.store.Remove(id)
	delete(self.views, id)
	log.Printf("deleted note %s", id)
	return true
}

// tryMove applies the drag policy: the rectangle is kept inside the board
// and a position overlapping another sticker is not taken.
func (self *Board) tryMove(id string, rect geometry.Rect) bool {
	rect = geometry.ConstrainToBounds(rect, self.Bounds())
	if geometry.IntersectsAny(rect, self.store.Obstacles(id)) {
		return false
	}
	self.store.SetRect(id, rect)
	return true
}

func (self *Board) resizer(s *Sticker, corner gesture.CornerType) *gesture.Resizer {
	id := s.ID
	return gesture.NewResizer(gesture.ResizeOptions{
		Rect: func() geometry.Rect {
			return self.store.Get(id).Unwrap().Rect
		},
		Bounds: self.Bounds(),
		Obstacles: func() []geometry.Rect {
			return self.store.Obstacles(id)
		},
		Corner:    corner,
		MinWidth:  Some(self.opts.MinWidth),
		MinHeight: Some(self.opts.MinHeight),
		OnResize: func(next geometry.Rect) {
			self.store.SetRect(id, next)
		},
		CanShrink: func() bool {
			return !self.shrinkLocked
		},
	})
}

func (self *Board) dragger(s *Sticker) *gesture.Dragger {
	id := s.ID
	return gesture.NewDragger(gesture.DragOptions{
		Rect: func() geometry.Rect {
			return self.store.Get(id).Unwrap().Rect
		},
		OnMove: func(next geometry.Rect) {
			self.tryMove(id, next)
		},
		OnEnd: func() {
			self.store.Get(id).Then(func(s *Sticker) {
				log.Printf("moved note %s to %+v", id, s.Rect)
			})
		},
	})
}

// PointerDown starts a resize on the corner cells of a sticker and a drag
// anywhere else on it. Either way the sticker is brought to the front and
// becomes active.
func (self *Board) PointerDown(ev *gesture.PointerEvent) Optional[gesture.Gesture] {
	col, row := self.opts.Metrics.ToCell(ev.Pos.X, ev.Pos.Y)
	hit := self.stickerAt(col, row)
	if !hit.IsSome() {
		return None[gesture.Gesture]()
	}
	s := hit.Unwrap()
	self.store.BringToFront(s.ID)
	self.store.SetActive(Some(s.ID))
	r := self.cellRect(s)
	if corner := r.CornerAt(col, row); corner.IsSome() {
		self.current = self.resizer(s, corner.Unwrap())
	} else {
		self.current = self.dragger(s)
	}
	return Some(self.current)
}

// Click is the default action of a pointer-down. Pressing a sticker already
// activated it, so this only clears the active sticker on empty space.
func (self *Board) Click(ev *gesture.PointerEvent) {
	col, row := self.opts.Metrics.ToCell(ev.Pos.X, ev.Pos.Y)
	if !self.stickerAt(col, row).IsSome() {
		self.store.SetActive(None[string]())
	}
}

// Arrow nudges the active sticker by one cell.
func (self *Board) Arrow(dx, dy int) {
	self.store.Active().Then(func(s *Sticker) {
		offsetX, offsetY := self.opts.Metrics.ToPixels(dx, dy)
		self.tryMove(s.ID, s.Rect.Translate(offsetX, offsetY))
	})
}

func (self *Board) Rune(r rune) {
	self.store.Active().Then(func(s *Sticker) {
		s.Text += string(r)
	})
}

func (self *Board) Backspace() {
	self.store.Active().Then(func(s *Sticker) {
		runes := []rune(s.Text)
		if len(runes) > 0 {
			s.Text = string(runes[:len(runes)-1])
		}
	})
}

// Status describes the gesture in progress, or the shrink lock state.
func (self *Board) Status() string {
	lock := ""
	if self.shrinkLocked {
		lock = " [shrink locked]"
	}
	title := cases.Title(language.English)
	switch g := self.current.(type) {
	case *gesture.Resizer:
		if g.Active() {
			return fmt.Sprintf("Resizing %s%s", title.String(g.Corner().String()), lock)
		}
	case *gesture.Dragger:
		if g.Active() {
			return "Moving" + lock
		}
	}
	return fmt.Sprintf("%d notes%s", self.store.Len(), lock)
}

// view returns the UI state of a sticker, creating it on first use.
func (self *Board) view(id string) *noteView {
	if v, ok := self.views[id]; ok {
		return v
	}
	v := &noteView{layout: tui.NewTextLayout()}
	self.views[id] = v
	v.fitter = autofit.New(autofit.Options{
		Element: func() autofit.Element {
			s := self.store.Get(id)
			if !s.IsSome() {
				return nil
			}
			width, height := self.textArea(s.Unwrap().Rect)
			v.layout.SetContent(s.Unwrap().Text, width, height)
			return v.layout
		},
		Text: func() string {
			return self.store.Get(id).UnwrapOr(&Sticker{}).Text
		},
		Width: func() float64 {
			return self.store.Get(id).UnwrapOr(&Sticker{}).Rect.Width
		},
		Height: func() float64 {
			return self.store.Get(id).UnwrapOr(&Sticker{}).Rect.Height
		},
		MinSize:  self.opts.MinFontSize,
		MaxSize:  self.opts.MaxFontSize,
		Schedule: self.opts.Defer,
	})
	return v
}

// FontSize returns the fitted font size of a sticker.
func (self *Board) FontSize(id string) int {
	return self.view(id).fitter.FontSize()
}

// textArea is the part of a sticker inside its border, in pixels.
func (self *Board) textArea(rect geometry.Rect) (float64, float64) {
	m := self.opts.Metrics
	return util.Max(rect.Width-2*m.CellWidth, 0), util.Max(rect.Height-2*m.CellHeight, 0)
}

func (self *Board) Redraw(scr tcell.Screen) {
	active := self.store.Active()
	for _, s := range self.store.Stickers() {
		v := self.view(s.ID)
		// Fits run after this pass, once the new geometry is on screen.
		v.fitter.Watch()
		isActive := active.IsSome() && active.Unwrap() == s
		self.drawNote(scr, s, v, isActive)
	}
}

func (self *Board) drawNote(scr tcell.Screen, s *Sticker, v *noteView, isActive bool) {
	r := self.cellRect(s)
	if visible := r.Clip(self.viewport); visible.Empty() {
		return
	}
	x, y, width, height := r.Parts()
	style := tui.NoteStyle(s.Serial, self.opts.NoteChroma, self.opts.NoteLuminance)
	outline := tui.Overlay(style, tui.Colors.BoxOutline)
	if isActive {
		outline = tui.Overlay(style, tui.Colors.ActiveOutline)
	}
	tui.FillRect(scr, x+1, y+1, width-2, height-2, ' ', style)
	tui.Box(scr, x, y, width, height, outline)
	if isActive {
		tui.Corners(scr, x, y, width, height, tui.Overlay(style, tui.Colors.Handle))
	}
	for i, line := range tui.Wrap(s.Text, width-2) {
		if i >= height-2 {
			break
		}
		tui.ClippedText(scr, x+1, y+1+i, width-2, line, style)
	}
	label := fmt.Sprintf("%dpx", v.fitter.FontSize())
	if len(label)+2 < width {
		tui.RightText(scr, x+1, y+height-1, width-3, label, outline)
	}
}
