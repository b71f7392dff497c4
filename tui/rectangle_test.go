package tui

import (
	"testing"

	"github.com/JaMo42/stickyboard/geometry"
	"github.com/JaMo42/stickyboard/gesture"
)

func TestCornerAt(t *testing.T) {
	r := NewRectangle(2, 3, 10, 5)
	tests := []struct {
		x, y     int
		expected gesture.CornerType
	}{
		{2, 3, gesture.Corner.TopLeft},
		{11, 3, gesture.Corner.TopRight},
		{2, 7, gesture.Corner.BottomLeft},
		{11, 7, gesture.Corner.BottomRight},
	}
	for _, tc := range tests {
		got := r.CornerAt(tc.x, tc.y)
		if !got.IsSome() || got.Unwrap() != tc.expected {
			t.Errorf("CornerAt(%d, %d) = %v, expected %s", tc.x, tc.y, got, tc.expected)
		}
	}
	for _, p := range [][2]int{{5, 3}, {2, 5}, {6, 5}, {12, 3}} {
		if got := r.CornerAt(p[0], p[1]); got.IsSome() {
			t.Errorf("CornerAt(%d, %d) = %s, expected none", p[0], p[1], got.Unwrap())
		}
	}
}

func TestCellRect(t *testing.T) {
	origin := NewRectangle(1, 2, 0, 0)
	got := testMetrics.CellRect(geometry.NewRect(50, 50, 200, 120), origin)
	// 50/8 = 6.25 -> 6, 250/8 = 31.25 -> 31, 50/16 = 3.125 -> 3,
	// 170/16 = 10.625 -> 11
	expected := NewRectangle(7, 5, 25, 8)
	if got != expected {
		t.Errorf("CellRect() = %+v, expected %+v", got, expected)
	}
}

func TestMetricsRoundTrip(t *testing.T) {
	x, y := testMetrics.ToPixels(3, 4)
	if x != 24 || y != 64 {
		t.Errorf("ToPixels(3, 4) = %v, %v", x, y)
	}
	if col, row := testMetrics.ToCell(x+7.9, y+15.9); col != 3 || row != 4 {
		t.Errorf("ToCell() = %d, %d", col, row)
	}
	if w, h := testMetrics.PixelSize(NewRectangle(0, 0, 10, 2)); w != 80 || h != 32 {
		t.Errorf("PixelSize() = %v, %v", w, h)
	}
}

func TestClip(t *testing.T) {
	r := NewRectangle(5, 5, 10, 10)
	if got := r.Clip(NewRectangle(0, 0, 12, 8)); got != NewRectangle(5, 5, 7, 3) {
		t.Errorf("Clip() = %+v", got)
	}
	if got := r.Clip(NewRectangle(20, 20, 5, 5)); got.width != 0 || got.height != 0 {
		t.Errorf("disjoint Clip() = %+v", got)
	}
}
