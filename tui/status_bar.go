package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

type StatusBar struct {
	left  string
	right string
	width int
	y     int
}

func NewStatusBar() StatusBar {
	return StatusBar{}
}

func (self *StatusBar) SetLeft(text string) {
	self.left = text
}

func (self *StatusBar) SetRight(text string) {
	self.right = text
}

func (self *StatusBar) Viewport(y, width int) {
	self.y = y
	self.width = width
}

func (self *StatusBar) Redraw(scr tcell.Screen) {
	HLine(scr, 0, self.y, self.width, ' ', Colors.StatusBar)
	width := runewidth.StringWidth(self.right)
	ClippedText(scr, 1, self.y, self.width-width-3, self.left, Colors.StatusBar)
	Text(scr, self.width-1-width, self.y, self.right, Colors.StatusBar)
}
