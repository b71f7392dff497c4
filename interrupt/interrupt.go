// Package interrupt forwards termination signals into the UI event loop so
// the terminal is given back before the program exits.
package interrupt

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

var (
	signals  chan os.Signal
	received atomic.Bool
)

// Begin calls post with action for every SIGINT, SIGTERM or SIGHUP until
// Stop is called.
func Begin(post func(any), action any) {
	signals = make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		// Runs until Stop closes the channel.
		for range signals {
			received.Store(true)
			post(action)
		}
	}()
}

func Stop() {
	signal.Stop(signals)
	close(signals)
}

// Received reports whether a signal arrived since the last call.
func Received() bool {
	return received.Swap(false)
}
