package workflow

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSteps(t *testing.T) {
	config := MustLookup("aarch64-unknown-linux-gnu")
	require.Equal(t, []string{
		"sudo apt-get update",
		"sudo apt-get install g++-aarch64-linux-gnu gcc-aarch64-linux-gnu -y",
	}, config.Steps())
	require.Nil(t, MustLookup("x86_64-apple-darwin").Steps())
	require.Equal(t, []string{"a", "b", "c"}, Config{Setup: "  a&&b  &&   c "}.Steps())
}

func TestCommands(t *testing.T) {
	commands, err := MustLookup("armv7-unknown-linux-gnueabihf").Commands()
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"sudo", "apt-get", "update"},
		{"sudo", "apt-get", "install", "gcc-arm-linux-gnueabihf", "g++-arm-linux-gnueabihf", "-y"},
	}, commands)

	_, err = Config{Host: ubuntu, Setup: `echo "unterminated`}.Commands()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		fail   string
	}{
		{name: "NoSetup", config: Config{Host: macOS}},
		{name: "Steps", config: Config{Host: ubuntu, Setup: "apt-get update && CC=clang make -j4"}},
		{name: "MissingHost", config: Config{}, fail: "missing host"},
		{name: "EmptyStep", config: Config{Host: ubuntu, Setup: "a && && b"}, fail: "setup step 2 is empty"},
		{name: "List", config: Config{Host: ubuntu, Setup: "a; b"}, fail: `setup step 1: "a; b" is 2 statements`},
		{name: "Or", config: Config{Host: ubuntu, Setup: "a || b"}, fail: "is not a simple command"},
		{name: "Pipe", config: Config{Host: ubuntu, Setup: "curl x | sh"}, fail: "is not a simple command"},
		{name: "Background", config: Config{Host: ubuntu, Setup: "sleep 1 &"}, fail: "is not a simple command"},
		{name: "Syntax", config: Config{Host: ubuntu, Setup: "echo 'oops"}, fail: "setup step 1"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.config.Validate()
			if test.fail != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), test.fail)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestTableIsValid(t *testing.T) {
	for _, triple := range Triples() {
		require.NoError(t, MustLookup(triple).Validate(), triple)
	}
}

func TestLookup(t *testing.T) {
	config, ok := Lookup("x86_64-unknown-linux-gnu")
	require.True(t, ok)
	require.Equal(t, Config{Host: "ubuntu-latest", DockerImage: "napi-rs/nodejs-rust:lts-debian"}, config)

	_, ok = Lookup("x86_64-unknown-linux")
	require.False(t, ok)
	require.Panics(t, func() { MustLookup("x86_64-unknown-linux") })
	require.Len(t, Triples(), 13)
}

func TestMarshal(t *testing.T) {
	config := MustLookup("aarch64-unknown-linux-gnu")
	data, err := json.Marshal(config)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"host": "ubuntu-latest",
		"setup": [
			"sudo apt-get update",
			"sudo apt-get install g++-aarch64-linux-gnu gcc-aarch64-linux-gnu -y"
		]
	}`, string(data))

	data, err = yaml.Marshal(MustLookup("aarch64-unknown-linux-musl"))
	require.NoError(t, err)
	require.Equal(t, "host: ubuntu-latest\ndocker_image: napi-rs/nodejs-rust:lts-alpine\n", string(data))
}
