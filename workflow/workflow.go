// Package workflow describes the GitHub Actions runner each target triple is built on.
package workflow

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"
	"mvdan.cc/sh/v3/syntax"

	"github.com/cashapp/crossbuild/errors"
)

// Config for building a target triple in GitHub Actions.
type Config struct {
	// Host is the runner label, eg. "ubuntu-latest".
	Host string
	// DockerImage to build inside, if any.
	DockerImage string
	// Setup is a "&&" separated list of commands to run on the host before building.
	Setup string
}

// Steps splits Setup into its individual trimmed commands.
func (c Config) Steps() []string {
	if c.Setup == "" {
		return nil
	}
	steps := strings.Split(c.Setup, "&&")
	for i, step := range steps {
		steps[i] = strings.TrimSpace(step)
	}
	return steps
}

// Commands splits each setup step into its shell words.
func (c Config) Commands() ([][]string, error) {
	steps := c.Steps()
	out := make([][]string, 0, len(steps))
	for _, step := range steps {
		words, err := shellquote.Split(step)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid setup step %q", step)
		}
		out = append(out, words)
	}
	return out, nil
}

// Validate that every setup step is exactly one simple command.
//
// Anything else (pipes, lists, "||", subshells) would not survive being split on "&&".
func (c Config) Validate() error {
	if c.Host == "" {
		return errors.New("missing host")
	}
	parser := syntax.NewParser()
	for i, step := range c.Steps() {
		if step == "" {
			return errors.Errorf("setup step %d is empty", i+1)
		}
		file, err := parser.Parse(strings.NewReader(step), "setup")
		if err != nil {
			return errors.Wrapf(err, "setup step %d", i+1)
		}
		if len(file.Stmts) != 1 {
			return errors.Errorf("setup step %d: %q is %d statements", i+1, step, len(file.Stmts))
		}
		stmt := file.Stmts[0]
		if _, ok := stmt.Cmd.(*syntax.CallExpr); !ok || stmt.Background || stmt.Negated {
			return errors.Errorf("setup step %d: %q is not a simple command", i+1, step)
		}
	}
	return nil
}

type encodedConfig struct {
	Host        string   `json:"host" yaml:"host"`
	DockerImage string   `json:"docker_image,omitempty" yaml:"docker_image,omitempty"`
	Setup       []string `json:"setup,omitempty" yaml:"setup,omitempty"`
}

func (c Config) encode() encodedConfig {
	return encodedConfig{Host: c.Host, DockerImage: c.DockerImage, Setup: c.Steps()}
}

// MarshalJSON emits setup as a list of steps.
func (c Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.encode())
}

// MarshalYAML emits setup as a list of steps.
func (c Config) MarshalYAML() (interface{}, error) {
	return c.encode(), nil
}

// Lookup the Config for a target triple.
func Lookup(triple string) (Config, bool) {
	config, ok := configs[triple]
	return config, ok
}

// MustLookup is like Lookup but panics if the triple has no Config.
func MustLookup(triple string) Config {
	config, ok := configs[triple]
	if !ok {
		panic(errors.Errorf("no workflow config for target %q", triple))
	}
	return config
}

// Triples returns every triple with a Config, sorted.
func Triples() []string {
	out := make([]string, 0, len(configs))
	for triple := range configs {
		out = append(out, triple)
	}
	sort.Strings(out)
	return out
}
