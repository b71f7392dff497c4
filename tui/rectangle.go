package tui

import (
	"math"

	. "github.com/JaMo42/stickyboard/common"
	"github.com/JaMo42/stickyboard/geometry"
	"github.com/JaMo42/stickyboard/gesture"
	"github.com/JaMo42/stickyboard/util"
)

// Rectangle is a rectangle of terminal cells.
type Rectangle struct {
	x, y, width, height int
}

func NewRectangle(x, y, width, height int) Rectangle {
	return Rectangle{x, y, width, height}
}

func (self *Rectangle) Bottom() int {
	return self.y + self.height
}

func (self *Rectangle) Right() int {
	return self.x + self.width
}

func (self *Rectangle) Parts() (int, int, int, int) {
	return self.x, self.y, self.width, self.height
}

func (self *Rectangle) Contains(x, y int) bool {
	return x >= self.x && y >= self.y && x < self.Right() && y < self.Bottom()
}

// Clip returns the part of the rectangle that lies inside of inside.
func (self *Rectangle) Clip(inside Rectangle) Rectangle {
	x := util.Max(self.x, inside.x)
	y := util.Max(self.y, inside.y)
	right := util.Min(self.Right(), inside.Right())
	bottom := util.Min(self.Bottom(), inside.Bottom())
	return NewRectangle(x, y, util.Max(right-x, 0), util.Max(bottom-y, 0))
}

// CornerAt returns the corner whose cell is at the given position, if any.
func (self *Rectangle) CornerAt(x, y int) Optional[gesture.CornerType] {
	left := x == self.x
	right := x == self.Right()-1
	top := y == self.y
	bottom := y == self.Bottom()-1
	switch {
	case top && left:
		return Some(gesture.Corner.TopLeft)
	case top && right:
		return Some(gesture.Corner.TopRight)
	case bottom && left:
		return Some(gesture.Corner.BottomLeft)
	case bottom && right:
		return Some(gesture.Corner.BottomRight)
	}
	return None[gesture.CornerType]()
}

// Metrics maps between terminal cells and the pixel coordinates the
// geometry is kept in.
type Metrics struct {
	CellWidth, CellHeight float64
}

func NewMetrics(cfg *Config) Metrics {
	return Metrics{cfg.General.CellWidth, cfg.General.CellHeight}
}

// ToPixels returns the position of the top left corner of a cell.
func (self Metrics) ToPixels(col, row int) (float64, float64) {
	return float64(col) * self.CellWidth, float64(row) * self.CellHeight
}

// ToCell returns the cell containing the pixel position.
func (self Metrics) ToCell(x, y float64) (int, int) {
	return int(math.Floor(x / self.CellWidth)), int(math.Floor(y / self.CellHeight))
}

// CellRect returns the cells covered by rect when the pixel space starts at
// the origin cell. Edges are rounded to the closest cell boundary.
func (self Metrics) CellRect(rect geometry.Rect, origin Rectangle) Rectangle {
	left := int(math.Round(rect.X / self.CellWidth))
	top := int(math.Round(rect.Y / self.CellHeight))
	right := int(math.Round(rect.Right() / self.CellWidth))
	bottom := int(math.Round(rect.Bottom() / self.CellHeight))
	return NewRectangle(origin.x+left, origin.y+top, right-left, bottom-top)
}

// PixelSize returns the size of a cell rectangle in pixels.
func (self Metrics) PixelSize(r Rectangle) (float64, float64) {
	return float64(r.width) * self.CellWidth, float64(r.height) * self.CellHeight
}

func (self *Rectangle) Empty() bool {
	return self.width <= 0 || self.height <= 0
}
