// Package app is the crossbuild command-line application.
package app

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
	"github.com/posener/complete"
	"github.com/willabides/kongplete"

	"github.com/cashapp/crossbuild/errors"
	"github.com/cashapp/crossbuild/target"
	"github.com/cashapp/crossbuild/ui"
)

const help = `Resolve Rust target triples to Node.js platform names and GitHub Actions build settings.`

// Config for the main crossbuild application.
type Config struct {
	Version  string
	LogLevel ui.Level
	// Default for --config, DefaultProjectConfigPath if empty.
	ProjectConfigPath string
	KongOptions       []kong.Option
	KongPlugins       kong.Plugins
	// Defaults to os.Stdout and os.Stderr.
	Stdout, Stderr *os.File
}

// Main runs the crossbuild command-line application with the given config.
func Main(config Config) {
	os.Exit(Run(config, os.Args[1:]))
}

// Run the application with "args" and return the process exit status.
func Run(config Config, args []string) int {
	if config.Stdout == nil {
		config.Stdout = os.Stdout
	}
	if config.Stderr == nil {
		config.Stderr = os.Stderr
	}
	p := ui.New(ui.AutoLevel(config.LogLevel), config.Stdout, config.Stderr,
		isatty.IsTerminal(config.Stdout.Fd()), isatty.IsTerminal(config.Stderr.Fd()))
	return run(config, p, config.Stdout, config.Stderr, args)
}

func run(config Config, p *ui.UI, stdout, stderr io.Writer, args []string) int {
	if config.ProjectConfigPath == "" {
		config.ProjectConfigPath = DefaultProjectConfigPath
	}
	cli := &cli{Plugins: config.KongPlugins}
	exitCode := -1
	kongOptions := []kong.Option{
		kong.Name("crossbuild"),
		kong.Description(help + "\n\nConfiguration format for " + DefaultProjectConfigPath + ":\n\n" + projectConfigSchema),
		kong.UsageOnError(),
		kong.Bind(config),
		kong.Vars{
			"version": config.Version,
			"config":  config.ProjectConfigPath,
		},
		kong.HelpOptions{
			Compact: true,
		},
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
	}
	kongOptions = append(kongOptions, config.KongOptions...)

	parser, err := kong.New(cli, kongOptions...)
	if err != nil {
		p.Fatalf("failed to initialise CLI: %s", err)
		return 1
	}

	kongplete.Complete(parser,
		kongplete.WithPredictor("target", complete.PredictSet(target.Available()...)),
	)
	if exitCode >= 0 {
		return exitCode
	}

	ctx, err := parser.Parse(args)
	if exitCode >= 0 {
		// --help or --version.
		return exitCode
	}
	if err != nil {
		p.Fatalf("%s", err)
		return 1
	}
	p.SetLevel(cli.level())

	err = ctx.Run(p)
	if err == nil {
		return 0
	}
	if p.WillLog(ui.LevelDebug) {
		p.Fatalf("%+v", err)
	} else {
		p.Fatalf("%s", err)
	}
	return errors.ExitCode(err)
}
