package tui

import (
	"strings"
	"testing"

	"github.com/JaMo42/stickyboard/autofit"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		columns  int
		expected []string
	}{
		{"fits", "hello world", 20, []string{"hello world"}},
		{"breaks at spaces", "hello world again", 11, []string{"hello world", "again"}},
		{"long word overflows", "a extraordinary b", 5, []string{"a", "extraordinary", "b"}},
		{"keeps newlines", "a\n\nb", 10, []string{"a", "", "b"}},
		{"empty", "", 10, []string{""}},
		{"wide runes", "日本語 日本", 8, []string{"日本語", "日本"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Wrap(tc.text, tc.columns)
			if strings.Join(got, "|") != strings.Join(tc.expected, "|") {
				t.Errorf("Wrap() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestTextLayoutOverflowIsMonotonic(t *testing.T) {
	layout := NewTextLayout()
	layout.SetContent(strings.Repeat("sticky note text ", 8), 184, 88)
	overflowedBefore := false
	for size := 6; size <= 40; size++ {
		layout.SetFontSize(size)
		sw, sh := layout.ScrollSize()
		cw, ch := layout.ClientSize()
		overflows := sw > cw || sh > ch
		if overflowedBefore && !overflows {
			t.Fatalf("fits at %d but overflowed at a smaller size", size)
		}
		overflowedBefore = overflows
	}
	if !overflowedBefore {
		t.Errorf("expected the text to overflow at the largest size")
	}
}

func TestTextLayoutFits(t *testing.T) {
	layout := NewTextLayout()
	layout.SetContent("one two three four five six seven eight nine ten", 184, 88)
	f := autofit.New(autofit.Options{
		Element:  func() autofit.Element { return layout },
		Text:     func() string { return layout.text },
		Width:    func() float64 { return layout.width },
		Height:   func() float64 { return layout.height },
		MinSize:  10,
		MaxSize:  32,
		Schedule: nil,
	})
	size := f.FontSize()
	layout.SetFontSize(size)
	sw, sh := layout.ScrollSize()
	if sw > 184 || sh > 88 {
		t.Errorf("size %d overflows: %vx%v", size, sw, sh)
	}
	layout.SetFontSize(size + 1)
	sw, sh = layout.ScrollSize()
	if size < 32 && sw <= 184 && sh <= 88 {
		t.Errorf("size %d is not the largest that fits", size)
	}
}
