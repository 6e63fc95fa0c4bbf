// Package errors annotates errors with the source location they were created at.
//
// Locations are only rendered with "%+v", or for every error when
// CROSSBUILD_DEBUG="errortrace" is set.
package errors

import (
	"errors" // nolint: depguard
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/cashapp/crossbuild/util/debug"
)

// Root of the source tree, stripped from recorded file names.
var sourceRoot = func() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Dir(filepath.Dir(file)) + "/"
}()

type location struct {
	file string
	line int
}

// Location of the caller of the exported constructor calling this.
func callerLocation() location {
	_, file, line, _ := runtime.Caller(3)
	return location{file: strings.TrimPrefix(file, sourceRoot), line: line}
}

func (l location) String() string { return l.file + ":" + strconv.Itoa(l.line) }

// An annotated error is one link in a chain: an optional message, where it
// was added, and the error it annotates.
type annotated struct {
	at    location
	msg   string
	cause error
}

func annotate(cause error, msg string) error {
	return &annotated{at: callerLocation(), msg: msg, cause: cause}
}

func (a *annotated) Error() string { return a.render(debug.Flags.ErrorTrace) }
func (a *annotated) Unwrap() error { return a.cause }

func (a *annotated) Format(s fmt.State, verb rune) {
	text := a.Error()
	switch {
	case verb == 'v' && s.Flag('+'):
		text = a.render(true)
	case verb == 'q':
		text = strconv.Quote(text)
	}
	fmt.Fprint(s, text)
}

// Render the chain outermost link first, joining non-empty parts with ": ".
func (a *annotated) render(locations bool) string {
	var parts []string
	var err error = a
	for err != nil {
		link, ok := err.(*annotated)
		if !ok {
			if locations {
				parts = append(parts, fmt.Sprintf("%+v", err))
			} else {
				parts = append(parts, err.Error())
			}
			break
		}
		if locations {
			parts = append(parts, link.at.String())
		}
		if link.msg != "" {
			parts = append(parts, link.msg)
		}
		err = link.cause
	}
	return strings.Join(parts, ": ")
}

// New creates a new error.
func New(message string) error {
	return annotate(nil, message)
}

// Errorf creates a new error using fmt.Sprintf().
func Errorf(format string, args ...interface{}) error {
	return annotate(nil, fmt.Sprintf(format, args...))
}

// Wrap annotates "err" with a message, or returns nil if "err" is nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return annotate(err, message)
}

// Wrapf is Wrap with a fmt.Sprintf() formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return annotate(err, fmt.Sprintf(format, args...))
}

// WithStack records where "err" passed through without changing its message.
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	return annotate(err, "")
}

// Is mirrors the stdlib errors.Is function.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As mirrors the stdlib errors.As function.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
