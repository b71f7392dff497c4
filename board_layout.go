package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/JaMo42/stickyboard/board"
	"github.com/JaMo42/stickyboard/tui"
)

// BoardLayout puts the board above a one line status bar.
type BoardLayout struct {
	board     *board.Board
	statusBar tui.StatusBar
}

func NewBoardLayout(b *board.Board) *BoardLayout {
	return &BoardLayout{board: b}
}

func (self *BoardLayout) PointerReceivers() []tui.PointerReceiver {
	return []tui.PointerReceiver{self.board}
}

func (self *BoardLayout) Create() {
	self.statusBar = tui.NewStatusBar()
	self.statusBar.SetRight(fmt.Sprintf("%s %s", appName, appVersion))
}

func (self *BoardLayout) Layout(width, height int) {
	self.board.SetViewport(tui.NewRectangle(0, 0, width, height-1))
	self.statusBar.Viewport(height-1, width)
}

func (self *BoardLayout) Update(scr tcell.Screen, widget any) {
	if widget == nil || widget == self.board {
		self.board.Redraw(scr)
	}
	self.statusBar.SetLeft(self.board.Status())
	self.statusBar.Redraw(scr)
}
