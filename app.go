package main

import (
	"log"
	"os/exec"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/kballard/go-shellquote"

	"github.com/JaMo42/stickyboard/board"
	. "github.com/JaMo42/stickyboard/common"
	"github.com/JaMo42/stickyboard/interrupt"
	"github.com/JaMo42/stickyboard/tui"
)

type ActionNewNote struct{}
type ActionDelete struct{}
type ActionToggleShrinkLock struct{}
type ActionDeselect struct{}
type ActionQuit struct{}

type App struct {
	scr    tcell.Screen
	ui     tui.Tui
	layout *BoardLayout
	board  *board.Board
	cfg    *Config
}

func NewApp(scr tcell.Screen, cfg *Config) *App {
	app := &App{scr: scr, cfg: cfg}
	app.board = board.NewBoard(board.NewStore(), board.OptionsFromConfig(cfg, func(f func()) {
		app.ui.Defer(f)
	}))
	app.layout = NewBoardLayout(app.board)
	app.ui = tui.NewTui(scr, app.layout, tui.NewMetrics(cfg))
	app.ui.SetPointerReceivers(app.layout.PointerReceivers())
	app.ui.SetArrowReceiver(app.board)
	app.ui.SetTextReceiver(app.board)
	app.ui.SetInterrupt(ActionQuit{})
	app.ui.SetKey(tcell.KeyCtrlN, ActionNewNote{})
	app.ui.SetKey(tcell.KeyCtrlD, ActionDelete{})
	app.ui.SetKey(tcell.KeyCtrlL, ActionToggleShrinkLock{})
	app.ui.SetKey(tcell.KeyEscape, ActionDeselect{})
	app.ui.SetKey(tcell.KeyCtrlQ, ActionQuit{})
	return app
}

func (self *App) Board() *board.Board {
	return self.board
}

func (self *App) NewNote() {
	self.board.NewNote(newNoteText(self.cfg))
}

// Run handles input until the user quits.
func (self *App) Run() {
	for {
		self.ui.Update(nil)
		switch self.ui.RunUntilAction().(type) {
		case ActionNewNote:
			self.NewNote()

		case ActionDelete:
			if !self.board.Store().Active().IsSome() {
				break
			}
			// The box takes the pointer-up, a gesture must not outlive it.
			self.ui.Close()
			if tui.AskYesNo(self.scr, "Delete this note?") {
				self.board.DeleteActive()
			}

		case ActionToggleShrinkLock:
			if self.board.ToggleShrinkLock() {
				log.Println("shrink lock on")
			} else {
				log.Println("shrink lock off")
			}

		case ActionDeselect:
			self.board.Store().SetActive(None[string]())

		case ActionQuit:
			if interrupt.Received() {
				log.Println("terminated by signal")
				return
			}
			self.ui.Close()
			if self.board.Store().Len() == 0 ||
				tui.AskYesNo(self.scr, "Quit and discard all notes?") {
				return
			}
		}
	}
}

// Post makes the main loop handle action, it may be called from any
// goroutine.
func (self *App) Post(action any) {
	self.ui.Post(action)
}

// Close ends a gesture still in progress.
func (self *App) Close() {
	self.ui.Close()
}

// newNoteText returns the output of the configured new note command, or the
// default text if there is none or it fails.
func newNoteText(cfg *Config) string {
	command := cfg.General.NewNoteCommand
	if len(command) == 0 {
		return cfg.General.DefaultText
	}
	commandLine, err := shellquote.Split(command)
	if err != nil || len(commandLine) == 0 {
		log.Printf("invalid new note command %q: %v", command, err)
		return cfg.General.DefaultText
	}
	output, err := exec.Command(commandLine[0], commandLine[1:]...).Output()
	if err != nil {
		log.Printf("new note command failed: %s", err)
		return cfg.General.DefaultText
	}
	return strings.TrimRight(string(output), "\n")
}
