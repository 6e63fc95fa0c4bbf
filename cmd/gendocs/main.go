// nolint
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/cashapp/crossbuild/errors"
	"github.com/cashapp/crossbuild/target"
)

var cli struct {
	Weight int    `default:"401"`
	Dest   string `arg:"" type:"existingdir" required:""`
}

func main() {
	ctx := kong.Parse(&cli)
	path := filepath.Join(cli.Dest, "targets.md")
	fmt.Println(path)
	w, err := os.Create(path)
	ctx.FatalIfErrorf(err)
	err = renderTargets(w, cli.Weight)
	if err != nil {
		_ = w.Close()
		ctx.FatalIfErrorf(err)
	}
	ctx.FatalIfErrorf(w.Close())
}

// renderTargets writes the Hugo page documenting every available target.
func renderTargets(w io.Writer, weight int) error {
	targets, err := target.ResolveAll(target.Available())
	if err != nil {
		return err
	}
	defaults := map[string]bool{}
	for _, triple := range target.Defaults() {
		defaults[triple] = true
	}
	page := &strings.Builder{}
	fmt.Fprintf(page, `+++
title = "Targets"
weight = %d
+++

Target triples crossbuild can resolve. Default targets are marked with *.

| Target | Platform ABI | Arch | Runner | Docker image | Setup |
|--------|--------------|------|--------|--------------|-------|
`, weight)
	for _, t := range targets {
		name := "`" + t.Triple + "`"
		if defaults[t.Triple] {
			name += " *"
		}
		config := t.GithubWorkflowConfig
		setup := make([]string, 0, len(config.Steps()))
		for _, step := range config.Steps() {
			setup = append(setup, "`"+step+"`")
		}
		fmt.Fprintf(page, "| %s | `%s` | %s | %s | %s | %s |\n",
			name, t.Detail.PlatformABI, t.Detail.Arch, config.Host, config.DockerImage, strings.Join(setup, "<br>"))
	}
	_, err = io.WriteString(w, page.String())
	return errors.WithStack(err)
}
