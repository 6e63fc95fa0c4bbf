package errors

// ExitCoder is an error that carries the process exit status to report.
type ExitCoder interface {
	error
	ExitCode() int
}

type exitErr struct {
	err  error
	code int
}

// WithExitCode attaches a process exit status to "err" if it is not nil.
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &exitErr{err: err, code: code}
}

func (e *exitErr) ExitCode() int { return e.code }
func (e *exitErr) Error() string { return e.err.Error() }
func (e *exitErr) Unwrap() error { return e.err }

// ExitCode returns the exit status carried by "err", or 1.
func ExitCode(err error) int {
	var coder ExitCoder
	if As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}
