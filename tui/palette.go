package tui

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// goldenAngle spreads consecutive hues far apart.
const goldenAngle = 137.508

// NoteColor returns the background color for the n-th note. Chroma and
// luminance are in [0, 1] and are the same for all notes so text stays
// readable on every one of them.
func NoteColor(n int, chroma, luminance float64) tcell.Color {
	hue := math.Mod(float64(n)*goldenAngle, 360)
	c := colorful.Hcl(hue, chroma, luminance).Clamped()
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// NoteStyle returns a style with the note color as background and a text
// color that contrasts with it.
func NoteStyle(n int, chroma, luminance float64) tcell.Style {
	fg := tcell.ColorBlack
	if luminance < 0.5 {
		fg = tcell.ColorWhite
	}
	return tcell.StyleDefault.
		Background(NoteColor(n, chroma, luminance)).
		Foreground(fg)
}
