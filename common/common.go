// Package common contains types and utilities needed by all other packages.
package common

import (
	"fmt"
	"io"
	"log"
	"os"
)

var (
	InvocationName string
	// BeforeExit runs before Fatal terminates the program, it is used to give
	// the terminal back.
	BeforeExit func()

	logToFile bool
)

// Fatal aborts the program with an errors message that is prefixed with the
// invocation name of the program. The message goes to the log as well as
// standard error since the log may be redirected.
func Fatal(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if BeforeExit != nil {
		BeforeExit()
	}
	if logToFile {
		log.Printf("%s: %s\n", InvocationName, msg)
	}
	fmt.Fprintf(os.Stderr, "%s: %s\n", InvocationName, msg)
	os.Exit(1)
}

// RedirectLog sends log output to the given file, appending to it. With an
// empty pathname logging is discarded since the terminal belongs to the UI.
// The returned closer must be closed on exit.
func RedirectLog(pathname string) (io.Closer, error) {
	if len(pathname) == 0 {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(pathname, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags)
	logToFile = true
	return f, nil
}
