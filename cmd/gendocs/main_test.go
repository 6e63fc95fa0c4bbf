package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cashapp/crossbuild/errors"
	"github.com/cashapp/crossbuild/target"
)

func TestRenderTargets(t *testing.T) {
	page := &strings.Builder{}
	err := renderTargets(page, 7)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(page.String(), "\n"), "\n")
	require.Equal(t, []string{"+++", `title = "Targets"`, "weight = 7", "+++"}, lines[:4])
	rows := lines[len(lines)-len(target.Available()):]
	require.Equal(t, "|--------|--------------|------|--------|--------------|-------|", lines[len(lines)-len(rows)-1])
	require.Contains(t, rows, "| `x86_64-apple-darwin` * | `darwin-x64` | x64 | macos-latest |  |  |")
	require.Contains(t, rows, "| `x86_64-unknown-linux-musl` | `linux-x64-musl` | x64 | ubuntu-latest | napi-rs/nodejs-rust:lts-alpine |  |")
	require.Contains(t, rows, "| `armv7-unknown-linux-gnueabihf` | `linux-arm-gnueabihf` | arm | ubuntu-latest |  | "+
		"`sudo apt-get update`<br>`sudo apt-get install gcc-arm-linux-gnueabihf g++-arm-linux-gnueabihf -y` |")
}

func TestRenderTargetsWriteError(t *testing.T) {
	err := renderTargets(failingWriter{}, 1)
	require.EqualError(t, err, "disk full")
}

var errDiskFull = errors.New("disk full")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }
