package app

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/cashapp/crossbuild/errors"
	"github.com/cashapp/crossbuild/target"
	"github.com/cashapp/crossbuild/ui"
)

type resolveCmd struct {
	Selection
	Format string `short:"f" enum:"json,yaml" default:"json" help:"Output format (${enum})."`
}

func (cmd *resolveCmd) Run(l *ui.UI, config ProjectConfig) error {
	triples, err := cmd.Select(l, config)
	if err != nil {
		return err
	}
	targets, err := target.ResolveAll(triples)
	if err != nil {
		return err
	}
	var content []byte
	switch cmd.Format {
	case "yaml":
		content, err = yaml.Marshal(targets)
	default:
		content, err = json.MarshalIndent(targets, "", "  ")
		content = append(content, '\n')
	}
	if err != nil {
		return errors.Wrapf(err, "error formatting targets as %s", cmd.Format)
	}
	l.Printf("%s", content)
	return nil
}
