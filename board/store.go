// Package board hosts the sticky notes: it owns their state and drives the
// gesture engines from the terminal UI.
package board

import (
	"sort"

	"github.com/google/uuid"

	. "github.com/JaMo42/stickyboard/common"
	"github.com/JaMo42/stickyboard/geometry"
	"github.com/JaMo42/stickyboard/util"
)

var defaultRect = geometry.NewRect(50, 50, 200, 120)

type Sticker struct {
	ID   string
	Text string
	Rect geometry.Rect
	// ZIndex changes whenever the sticker is raised.
	ZIndex int
	// Serial is the creation order within the store, it never changes.
	Serial int
}

// Store is the authoritative state of all stickers. The z-order counter lives
// here instead of in a global so separate boards do not share it.
type Store struct {
	stickers []*Sticker
	active   Optional[string]
	zCounter int
	created  int
}

func NewStore() *Store {
	return &Store{zCounter: 1}
}

// Create adds a sticker at the default position on top of all others.
func (self *Store) Create(text string) *Sticker {
	sticker := &Sticker{
		ID:     uuid.NewString(),
		Text:   text,
		Rect:   defaultRect,
		ZIndex: self.nextZ(),
		Serial: self.created,
	}
	self.created += 1
	self.stickers = append(self.stickers, sticker)
	return sticker
}

func (self *Store) nextZ() int {
	z := self.zCounter
	self.zCounter += 1
	return z
}

func (self *Store) Get(id string) Optional[*Sticker] {
	idx, found := util.Position(self.stickers, func(s *Sticker) bool {
		return s.ID == id
	})
	if !found {
		return None[*Sticker]()
	}
	return Some(self.stickers[idx])
}

// Update applies f to the sticker with the given id, unknown ids are ignored.
func (self *Store) Update(id string, f func(*Sticker)) {
	self.Get(id).Then(f)
}

// SetRect is a shorthand for an Update that only changes the geometry.
func (self *Store) SetRect(id string, rect geometry.Rect) {
	self.Update(id, func(s *Sticker) {
		s.Rect = rect
	})
}

func (self *Store) BringToFront(id string) {
	self.Update(id, func(s *Sticker) {
		s.ZIndex = self.nextZ()
	})
}

func (self *Store) Remove(id string) {
	self.stickers = util.Filter(self.stickers, func(s *Sticker) bool {
		return s.ID != id
	})
	if self.active.IsSome() && self.active.Unwrap() == id {
		self.active = None[string]()
	}
}

func (self *Store) SetActive(id Optional[string]) {
	self.active = id
}

func (self *Store) Active() Optional[*Sticker] {
	if !self.active.IsSome() {
		return None[*Sticker]()
	}
	return self.Get(self.active.Unwrap())
}

func (self *Store) Len() int {
	return len(self.stickers)
}

// Stickers returns the stickers ordered from bottom to top.
func (self *Store) Stickers() []*Sticker {
	sorted := make([]*Sticker, len(self.stickers))
	copy(sorted, self.stickers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ZIndex < sorted[j].ZIndex
	})
	return sorted
}

// Obstacles returns the rectangles of all stickers except the given one.
func (self *Store) Obstacles(exceptID string) []geometry.Rect {
	obstacles := make([]geometry.Rect, 0, len(self.stickers))
	for _, s := range self.stickers {
		if s.ID != exceptID {
			obstacles = append(obstacles, s.Rect)
		}
	}
	return obstacles
}
