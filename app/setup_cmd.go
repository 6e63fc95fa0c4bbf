package app

import (
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/cashapp/crossbuild/target"
	"github.com/cashapp/crossbuild/ui"
)

type setupCmd struct {
	Triple string `arg:"" name:"target" predictor:"target" help:"Target triple to print host setup for."`
}

func (cmd *setupCmd) Run(l *ui.UI) error {
	script, err := setupScript(cmd.Triple)
	if err != nil {
		return err
	}
	l.Printf("%s", script)
	return nil
}

// A POSIX shell script running the target's setup steps on its CI host.
func setupScript(triple string) (string, error) {
	t, err := target.Resolve(triple)
	if err != nil {
		return "", err
	}
	commands, err := t.GithubWorkflowConfig.Commands()
	if err != nil {
		return "", err
	}
	w := &strings.Builder{}
	w.WriteString("#!/bin/sh\n")
	w.WriteString("# Host setup for " + triple + " on " + t.GithubWorkflowConfig.Host + "\n")
	w.WriteString("set -eu\n")
	for _, command := range commands {
		w.WriteString(shellquote.Join(command...) + "\n")
	}
	return w.String(), nil
}
