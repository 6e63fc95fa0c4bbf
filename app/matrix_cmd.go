package app

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cashapp/crossbuild/errors"
	"github.com/cashapp/crossbuild/target"
	"github.com/cashapp/crossbuild/ui"
)

type matrixCmd struct {
	Selection
	FailFast bool   `help:"Cancel the remaining builds when one target fails."`
	Output   string `short:"o" type:"path" placeholder:"PATH" help:"Write the matrix to PATH instead of stdout."`
}

func (cmd *matrixCmd) Run(l *ui.UI, config ProjectConfig) error {
	triples, err := cmd.Select(l, config)
	if err != nil {
		return err
	}
	targets, err := target.ResolveAll(triples)
	if err != nil {
		return err
	}
	content, err := yaml.Marshal(buildMatrix(targets, cmd.FailFast))
	if err != nil {
		return errors.Wrap(err, "error formatting matrix")
	}
	if cmd.Output == "" {
		l.Printf("%s", content)
		return nil
	}
	if err := os.WriteFile(cmd.Output, content, 0600); err != nil {
		return errors.WithStack(err)
	}
	l.Task("matrix").Infof("Wrote %d targets to %s", len(targets), cmd.Output)
	return nil
}

// A GitHub Actions "strategy" block with one "include" entry per target.
type matrixDocument struct {
	Strategy matrixStrategy `yaml:"strategy"`
}

type matrixStrategy struct {
	FailFast bool         `yaml:"fail-fast"`
	Matrix   matrixValues `yaml:"matrix"`
}

type matrixValues struct {
	Include []matrixEntry `yaml:"include"`
}

type matrixEntry struct {
	Target      string   `yaml:"target"`
	Host        string   `yaml:"host"`
	HostArch    string   `yaml:"host_arch"`
	PlatformABI string   `yaml:"platform_abi"`
	Docker      string   `yaml:"docker,omitempty"`
	Setup       []string `yaml:"setup,omitempty"`
}

func buildMatrix(targets []target.Target, failFast bool) matrixDocument {
	entries := make([]matrixEntry, 0, len(targets))
	for _, t := range targets {
		entries = append(entries, matrixEntry{
			Target:      t.Triple,
			Host:        t.GithubWorkflowConfig.Host,
			HostArch:    t.Detail.Arch.GithubActionArch(),
			PlatformABI: t.Detail.PlatformABI,
			Docker:      t.GithubWorkflowConfig.DockerImage,
			Setup:       t.GithubWorkflowConfig.Steps(),
		})
	}
	return matrixDocument{Strategy: matrixStrategy{
		FailFast: failFast,
		Matrix:   matrixValues{Include: entries},
	}}
}
