// Package geometry contains the rectangle primitives shared by the gesture
// engines and the board. All values are in pixels, in container-local
// coordinates.
package geometry

type Rect struct {
	X, Y, Width, Height float64
}

func NewRect(x, y, width, height float64) Rect {
	return Rect{x, y, width, height}
}

func (self Rect) Right() float64 {
	return self.X + self.Width
}

func (self Rect) Bottom() float64 {
	return self.Y + self.Height
}

func (self Rect) Parts() (float64, float64, float64, float64) {
	return self.X, self.Y, self.Width, self.Height
}

// Translate returns the rectangle moved by (dx, dy).
func (self Rect) Translate(dx, dy float64) Rect {
	self.X += dx
	self.Y += dy
	return self
}

func (self Rect) Contains(x, y float64) bool {
	return x >= self.X && y >= self.Y && x < self.Right() && y < self.Bottom()
}

// Clamp limits value to [min, max]. If min is greater than max the result is
// min.
func Clamp(value, min, max float64) float64 {
	if value > max {
		value = max
	}
	if value < min {
		value = min
	}
	return value
}

// Intersects reports whether a and b overlap with a non-zero area. Rectangles
// that only share an edge do not intersect.
func Intersects(a, b Rect) bool {
	return !(a.Right() <= b.X ||
		a.X >= b.Right() ||
		a.Bottom() <= b.Y ||
		a.Y >= b.Bottom())
}

// IntersectsAny reports whether rect intersects any of the obstacles.
func IntersectsAny(rect Rect, obstacles []Rect) bool {
	for _, o := range obstacles {
		if Intersects(rect, o) {
			return true
		}
	}
	return false
}

// ConstrainToBounds moves rect so it lies inside bounds, leaving its size
// alone. Note that bounds.Width and bounds.Height are the largest allowed
// coordinates of the right and bottom edge, not the size of the bounds.
func ConstrainToBounds(rect, bounds Rect) Rect {
	rect.X = Clamp(rect.X, bounds.X, bounds.Width-rect.Width)
	rect.Y = Clamp(rect.Y, bounds.Y, bounds.Height-rect.Height)
	return rect
}
