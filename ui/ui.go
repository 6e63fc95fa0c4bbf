// Package ui provides levelled terminal logging for crossbuild.
//
// Messages below warning go to stdout, everything else to stderr. Output is
// ANSI coloured when the destination is a terminal.
package ui

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/alecthomas/colour"
	"golang.org/x/term"

	"github.com/cashapp/crossbuild/util/debug"
)

// UI writes log messages and command output.
type UI struct {
	*loggingMixin
	lock        sync.Mutex
	stdout      io.Writer
	stderr      io.Writer
	stdoutIsTTY bool
	stderrIsTTY bool
	minlevel    Level
	width       int
}

var _ Logger = &UI{}

// NewForTesting returns a new UI that writes all output to the returned bytes.Buffer.
func NewForTesting() (*UI, *bytes.Buffer) {
	b := &bytes.Buffer{}
	return New(LevelTrace, b, b, false, false), b
}

// New creates a new UI.
func New(level Level, stdout, stderr io.Writer, stdoutIsTTY, stderrIsTTY bool) *UI {
	w := &UI{
		stdout:      stdout,
		stderr:      stderr,
		stdoutIsTTY: stdoutIsTTY && !debug.Flags.NoColour,
		stderrIsTTY: stderrIsTTY && !debug.Flags.NoColour,
		minlevel:    level,
		width:       80,
	}
	if stdoutIsTTY {
		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width >= 20 {
			w.width = width
		}
	}
	w.loggingMixin = &loggingMixin{logf: w.logf}
	return w
}

// SetLevel sets the UI's minimum log level.
func (w *UI) SetLevel(level Level) {
	w.lock.Lock()
	defer w.lock.Unlock()
	w.minlevel = level
}

// WillLog returns true if "level" will be logged.
func (w *UI) WillLog(level Level) bool {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.minlevel.Visible(level)
}

// Task returns a Logger that prefixes messages with "task".
func (w *UI) Task(task string) Logger {
	return &loggingMixin{label: task, logf: w.logf}
}

// Width of the terminal, or 80 if stdout is not a terminal.
func (w *UI) Width() int {
	return w.width
}

// IsTTY returns true if stdout is a terminal and colour has not been disabled.
func (w *UI) IsTTY() bool {
	return w.stdoutIsTTY
}

func (w *UI) logf(level Level, label string, format string, args ...interface{}) {
	w.lock.Lock()
	defer w.lock.Unlock()
	if !w.minlevel.Visible(level) {
		return
	}
	out, ansi := w.stdout, w.stdoutIsTTY
	if level >= LevelWarn {
		out, ansi = w.stderr, w.stderrIsTTY
	}

	var msg string
	if ansi {
		msg += "\033[1m" + levelColor[level]
	}
	msg += level.String() + ":"
	if label != "" {
		msg += label + ":"
	}
	msg += " "
	if ansi {
		msg += "\033[0m" + levelColor[level] + fmt.Sprintf(format, args...) + "\033[0m"
	} else {
		msg += fmt.Sprintf(format, args...)
	}
	fmt.Fprintln(out, msg)
}

// Printf prints directly to stdout without log formatting.
func (w *UI) Printf(format string, args ...interface{}) {
	w.lock.Lock()
	defer w.lock.Unlock()
	fmt.Fprintf(w.stdout, format, args...)
}

// Colourf prints colour formatted text (eg. "^B^2name^R") to stdout.
//
// Colour codes are stripped when stdout is not a terminal.
func (w *UI) Colourf(format string, args ...interface{}) {
	w.lock.Lock()
	defer w.lock.Unlock()
	printer := colour.Strip(w.stdout)
	if w.stdoutIsTTY {
		printer = colour.Colour(w.stdout)
	}
	_, _ = printer.Printf(format, args...)
}
