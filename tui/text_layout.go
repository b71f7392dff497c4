package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/JaMo42/stickyboard/util"
)

// Monospace font metrics relative to the font size.
const (
	advanceRatio    = 0.6
	lineHeightRatio = 1.25
)

// Wrap breaks text into lines of at most columns cells, breaking at spaces.
// Words wider than a line are kept whole and overflow it. Explicit newlines
// are kept.
func Wrap(text string, columns int) []string {
	columns = util.Max(columns, 1)
	lines := []string{}
	for _, paragraph := range strings.Split(text, "\n") {
		line := ""
		lineWidth := 0
		for _, word := range strings.Fields(paragraph) {
			wordWidth := runewidth.StringWidth(word)
			switch {
			case lineWidth == 0:
				line, lineWidth = word, wordWidth
			case lineWidth+1+wordWidth <= columns:
				line += " " + word
				lineWidth += 1 + wordWidth
			default:
				lines = append(lines, line)
				line, lineWidth = word, wordWidth
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// TextLayout measures wrapped text at a font size inside a box, all in
// pixels. It is the element the note font size is fitted against.
type TextLayout struct {
	text          string
	width, height float64
	fontSize      int
}

func NewTextLayout() *TextLayout {
	return &TextLayout{}
}

// SetContent sets the text and the size of the box it is laid out in.
func (self *TextLayout) SetContent(text string, width, height float64) {
	self.text = text
	self.width = util.Max(width, 0)
	self.height = util.Max(height, 0)
}

func (self *TextLayout) SetFontSize(size int) {
	self.fontSize = size
}

func (self *TextLayout) FontSize() int {
	return self.fontSize
}

func (self *TextLayout) advance() float64 {
	return float64(self.fontSize) * advanceRatio
}

// Columns returns how many characters fit on a line at the current size.
func (self *TextLayout) Columns() int {
	if self.fontSize <= 0 {
		return 1
	}
	return util.Max(int(self.width/self.advance()), 1)
}

func (self *TextLayout) ScrollSize() (float64, float64) {
	lines := Wrap(self.text, self.Columns())
	widest := 0
	for _, line := range lines {
		widest = util.Max(widest, runewidth.StringWidth(line))
	}
	lineHeight := float64(self.fontSize) * lineHeightRatio
	return float64(widest) * self.advance(), float64(len(lines)) * lineHeight
}

func (self *TextLayout) ClientSize() (float64, float64) {
	return self.width, self.height
}
