// Package autofit picks the largest font size at which an element's content
// fits inside its box.
package autofit

import (
	. "github.com/JaMo42/stickyboard/common"
)

// InitialFontSize is reported until the first fit ran.
const InitialFontSize = 16

// Element is something whose content can be measured at a font size.
type Element interface {
	SetFontSize(size int)
	// ScrollSize is the extent of the laid out content.
	ScrollSize() (float64, float64)
	// ClientSize is the extent of the visible box.
	ClientSize() (float64, float64)
}

type Options struct {
	// Element returns the element to measure, nil if it does not exist
	// (yet).
	Element          func() Element
	Text             func() string
	Width, Height    func() float64
	MinSize, MaxSize int
	// Schedule runs a function after the next layout pass, so measurements
	// see the new content. Nil runs it right away.
	Schedule func(func())
}

type dependencies struct {
	text          string
	width, height float64
}

// Fitter recomputes the font size whenever the text or the box size
// changes.
type Fitter struct {
	opts     Options
	fontSize int
	seen     Optional[dependencies]
	pending  bool
}

// New creates a Fitter and schedules the first fit.
func New(opts Options) *Fitter {
	f := &Fitter{opts: opts, fontSize: InitialFontSize}
	f.Watch()
	return f
}

func (self *Fitter) FontSize() int {
	return self.fontSize
}

// Pending reports whether a fit is scheduled but did not run yet.
func (self *Fitter) Pending() bool {
	return self.pending
}

func (self *Fitter) dependencies() dependencies {
	return dependencies{
		text:   self.opts.Text(),
		width:  self.opts.Width(),
		height: self.opts.Height(),
	}
}

// Watch schedules a fit if any dependency changed since the last call and
// reports whether it did. Changes arriving while a fit is pending are folded
// into it.
func (self *Fitter) Watch() bool {
	current := self.dependencies()
	if self.seen.IsSome() && self.seen.Unwrap() == current {
		return false
	}
	self.seen = Some(current)
	if self.pending {
		return true
	}
	self.pending = true
	run := func() {
		self.pending = false
		self.Fit()
	}
	if self.opts.Schedule == nil {
		run()
	} else {
		self.opts.Schedule(run)
	}
	return true
}

// Fit starts at the maximum size and steps down one unit at a time while the
// content overflows, stopping at the minimum.
func (self *Fitter) Fit() {
	el := self.opts.Element()
	if el == nil {
		return
	}
	size := self.opts.MaxSize
	el.SetFontSize(size)
	for size > self.opts.MinSize && overflows(el) {
		size -= 1
		el.SetFontSize(size)
	}
	self.fontSize = size
}

func overflows(el Element) bool {
	scrollWidth, scrollHeight := el.ScrollSize()
	clientWidth, clientHeight := el.ClientSize()
	return scrollHeight > clientHeight || scrollWidth > clientWidth
}
