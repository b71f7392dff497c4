package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestMessageBoxKeys(t *testing.T) {
	scr := newTestScreen(t)
	tests := []struct {
		name     string
		events   []tcell.Event
		expected string
	}{
		{"hotkey", []tcell.Event{tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone)}, "Yes"},
		{"enter keeps selection", []tcell.Event{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)}, "No"},
		{
			"move then confirm",
			[]tcell.Event{
				tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone),
				tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone),
			},
			"Yes",
		},
		{"escape", []tcell.Event{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)}, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mb := newMessageBox(scr, "Delete note?", []string{"Yes", "No"}, 1)
			mb.Layout()
			result, done := "", false
			for _, ev := range tc.events {
				result, done = mb.handle(ev)
			}
			if !done || result != tc.expected {
				t.Errorf("got (%q, %v), expected %q", result, done, tc.expected)
			}
		})
	}
}

func TestMessageBoxClick(t *testing.T) {
	scr := newTestScreen(t)
	mb := newMessageBox(scr, "Delete note?", []string{"Yes", "No"}, 1)
	mb.Layout()
	yes := mb.buttons[0]
	result, done := mb.handle(tcell.NewEventMouse(yes.x+1, mb.buttonsY, tcell.Button1, tcell.ModNone))
	if !done || result != "Yes" {
		t.Errorf("got (%q, %v), expected Yes", result, done)
	}
}

func TestAskYesNo(t *testing.T) {
	scr := newTestScreen(t)
	scr.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	if AskYesNo(scr, "Delete note?") {
		t.Errorf("answered no but got yes")
	}
	scr.InjectKey(tcell.KeyRune, 'Y', tcell.ModNone)
	if !AskYesNo(scr, "Delete note?") {
		t.Errorf("answered yes but got no")
	}
}

func TestMessageBoxRunsDeferredWork(t *testing.T) {
	scr := newTestScreen(t)
	mb := newMessageBox(scr, "Delete note?", []string{"Yes", "No"}, 1)
	mb.Layout()
	ran := false
	if _, done := mb.handle(tcell.NewEventInterrupt(func() { ran = true })); done {
		t.Errorf("interrupt closed the box")
	}
	if !ran {
		t.Errorf("deferred function did not run")
	}
}
