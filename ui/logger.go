package ui

import (
	"os"

	"github.com/cashapp/crossbuild/errors"
)

// Level for a log message.
type Level int

// Log levels.
const (
	// LevelAuto will detect the log level from the environment via
	// CROSSBUILD_LOG=<level>, DEBUG=1, then finally from flag.
	LevelAuto Level = iota
	LevelTrace
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var (
	levelNames = []string{"auto", "trace", "debug", "info", "warn", "error", "fatal"}
	levelColor = map[Level]string{
		LevelTrace: "\033[37m",
		LevelDebug: "\033[36m",
		LevelInfo:  "\033[32m",
		LevelWarn:  "\033[33m",
		LevelError: "\033[31m",
		LevelFatal: "\033[31m",
	}
)

func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[l]
}

// Visible returns true if "other" is visible.
func (l Level) Visible(other Level) bool {
	return other >= l
}

// UnmarshalText lets Kong and HCL decode levels by name.
func (l *Level) UnmarshalText(text []byte) error {
	var err error
	*l, err = LevelFromString(string(text))
	return err
}

// LevelFromString maps a string to a level.
func LevelFromString(s string) (Level, error) {
	switch s {
	case "warning":
		return LevelWarn, nil
	default:
		for i, name := range levelNames {
			if name == s {
				return Level(i), nil
			}
		}
		return 0, errors.Errorf("invalid log level %q", s)
	}
}

// Logger interface.
type Logger interface {
	Tracef(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

type loggingMixin struct {
	label string
	logf  func(level Level, label string, format string, args ...interface{})
}

// Tracef logs a message at trace level.
func (l *loggingMixin) Tracef(format string, args ...interface{}) {
	l.logf(LevelTrace, l.label, format, args...)
}

// Debugf logs a message at debug level.
func (l *loggingMixin) Debugf(format string, args ...interface{}) {
	l.logf(LevelDebug, l.label, format, args...)
}

// Infof logs a message at info level.
func (l *loggingMixin) Infof(format string, args ...interface{}) {
	l.logf(LevelInfo, l.label, format, args...)
}

// Warnf logs a message at warning level.
func (l *loggingMixin) Warnf(format string, args ...interface{}) {
	l.logf(LevelWarn, l.label, format, args...)
}

// Errorf logs a message at error level.
func (l *loggingMixin) Errorf(format string, args ...interface{}) {
	l.logf(LevelError, l.label, format, args...)
}

// Fatalf logs a message at fatal level.
//
// It does not exit, callers decide the exit status.
func (l *loggingMixin) Fatalf(format string, args ...interface{}) {
	l.logf(LevelFatal, l.label, format, args...)
}

// AutoLevel sets the log level from environment variables if set to LevelAuto.
func AutoLevel(level Level) Level {
	if level != LevelAuto {
		return level
	}
	if envLevel := os.Getenv("CROSSBUILD_LOG"); envLevel != "" {
		if err := level.UnmarshalText([]byte(envLevel)); err == nil {
			return level
		}
	} else if os.Getenv("DEBUG") != "" {
		return LevelTrace
	}
	return LevelInfo
}
