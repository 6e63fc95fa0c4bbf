package app

import (
	"github.com/alecthomas/kong"

	"github.com/cashapp/crossbuild/errors"
	"github.com/cashapp/crossbuild/target"
	"github.com/cashapp/crossbuild/ui"
)

// CLI structure.
type cli struct {
	VersionFlag kong.VersionFlag  `help:"Show version." name:"version"`
	Debug       bool              `help:"Enable debug logging." short:"d"`
	Trace       bool              `help:"Enable trace logging." short:"t"`
	Quiet       bool              `help:"Disable logging, except fatal errors." env:"CROSSBUILD_QUIET" short:"q"`
	Level       ui.Level          `help:"Set minimum log level (${enum})." env:"CROSSBUILD_LOG" default:"auto" enum:"auto,trace,debug,info,warn,error,fatal"`
	Config      projectConfigFlag `help:"Project configuration file." type:"path" placeholder:"PATH" env:"CROSSBUILD_CONFIG" default:"${config}"`

	Targets          targetsCmd          `cmd:"" help:"List supported target triples."`
	Resolve          resolveCmd          `cmd:"" help:"Resolve target triples to Node.js names and CI configuration."`
	Matrix           matrixCmd           `cmd:"" help:"Generate a GitHub Actions build matrix."`
	Setup            setupCmd            `cmd:"" help:"Print a shell script that prepares the CI host for a target."`
	Validate         validateCmd         `cmd:"" help:"Check the target registry and project configuration."`
	Version          versionCmd          `cmd:"" help:"Show version."`
	DumpConfigSchema dumpConfigSchemaCmd `cmd:"" help:"Dump project configuration schema." hidden:""`

	kong.Plugins
}

func (c *cli) level() ui.Level {
	switch {
	case c.Trace:
		return ui.LevelTrace
	case c.Debug:
		return ui.LevelDebug
	case c.Quiet:
		return ui.LevelFatal
	default:
		return ui.AutoLevel(c.Level)
	}
}

// Selection of targets shared by commands operating on several triples.
type Selection struct {
	Triples []string `arg:"" optional:"" name:"target" predictor:"target" help:"Target triples (default: project targets, or the default targets)."`
	Match   []string `short:"m" placeholder:"GLOB" help:"Select available targets matching GLOB, eg. 'aarch64-*'."`
}

// Select the triples to operate on.
//
// Explicit triples win over patterns, which win over the project config, which wins over the defaults.
func (s Selection) Select(l ui.Logger, config ProjectConfig) ([]string, error) {
	switch {
	case len(s.Triples) > 0:
		if err := checkAvailable(s.Triples, "unsupported target %q"); err != nil {
			return nil, err
		}
		return s.Triples, nil

	case len(s.Match) > 0:
		triples, err := target.Select(s.Match...)
		if err != nil {
			return nil, err
		}
		if len(triples) == 0 {
			return nil, errors.Errorf("no targets match %q", s.Match)
		}
		return triples, nil

	case len(config.Targets) > 0:
		l.Debugf("Using %d targets from project configuration", len(config.Targets))
		if err := checkAvailable(config.Targets, "project target %q is not available"); err != nil {
			return nil, err
		}
		return config.Targets, nil

	default:
		l.Debugf("Using default targets")
		return target.Defaults(), nil
	}
}

func checkAvailable(triples []string, format string) error {
	for _, triple := range triples {
		if !target.IsAvailable(triple) {
			return errors.Errorf(format, triple)
		}
	}
	return nil
}
