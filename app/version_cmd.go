package app

import (
	"github.com/cashapp/crossbuild/ui"
)

type versionCmd struct{}

func (v *versionCmd) Run(l *ui.UI, config Config) error {
	l.Printf("%s\n", config.Version)
	return nil
}

type dumpConfigSchemaCmd struct{}

func (d *dumpConfigSchemaCmd) Run(l *ui.UI) error {
	l.Printf("%s\n", projectConfigSchema)
	return nil
}
