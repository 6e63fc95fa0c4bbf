package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineAndFormatting(t *testing.T) {
	err := New("an error")
	wrapErr := Wrap(err, "another error")
	require.Equal(t, `an error`, fmt.Sprintf("%s", err))
	require.Equal(t, `"an error"`, fmt.Sprintf("%q", err))
	require.Equal(t, `errors/errors_test.go:11: an error`, fmt.Sprintf("%+v", err))
	require.Equal(t, `another error: an error`, fmt.Sprintf("%s", wrapErr))
	require.Equal(t, `errors/errors_test.go:12: another error: errors/errors_test.go:11: an error`, fmt.Sprintf("%+v", wrapErr))
}

func TestWrapNil(t *testing.T) {
	require.NoError(t, Wrap(nil, "nothing"))
	require.NoError(t, Wrapf(nil, "nothing %d", 1))
	require.NoError(t, WithStack(nil))
	require.NoError(t, WithExitCode(nil, 2))
}

func TestExitCode(t *testing.T) {
	base := Errorf("registry has %d problems", 3)
	err := Wrap(WithExitCode(base, 3), "validate")
	require.Equal(t, 3, ExitCode(err))
	require.True(t, Is(err, base))
	require.Equal(t, "validate: registry has 3 problems", err.Error())
	require.Equal(t, 1, ExitCode(New("plain")))
}

func TestWithStackKeepsMessage(t *testing.T) {
	base := Errorf("unsupported cpu arch %s", "sparc")
	err := WithStack(Wrapf(base, "%s", "sparc-sun-solaris"))
	require.Equal(t, "sparc-sun-solaris: unsupported cpu arch sparc", err.Error())
	require.Regexp(t, `^errors/errors_test.go:\d+: errors/errors_test.go:\d+: sparc-sun-solaris: errors/errors_test.go:\d+: unsupported cpu arch sparc$`,
		fmt.Sprintf("%+v", err))
	require.True(t, Is(err, base))
}
