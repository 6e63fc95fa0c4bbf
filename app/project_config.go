package app

import (
	"os"

	"github.com/alecthomas/hcl"
	"github.com/alecthomas/kong"

	"github.com/cashapp/crossbuild/errors"
)

// DefaultProjectConfigPath is read from the working directory unless --config or CROSSBUILD_CONFIG is set.
const DefaultProjectConfigPath = ".crossbuild.hcl"

var projectConfigSchema = func() string {
	schema, err := hcl.Schema(&ProjectConfig{})
	if err != nil {
		return ""
	}
	data, err := hcl.MarshalAST(schema)
	if err != nil {
		return ""
	}
	return string(data)
}()

// ProjectConfig is stored in .crossbuild.hcl
type ProjectConfig struct {
	Targets []string `hcl:"targets,optional" help:"Target triples to use when none are given on the command line."`
	Format  string   `hcl:"format,optional" default:"json" enum:"json,yaml" help:"Output format of resolve (json or yaml)."`
}

// LoadProjectConfig from disk.
//
// A missing file is not an error, the returned config then only carries defaults.
// Targets are not checked against the registry here, commands report those.
func LoadProjectConfig(path string) (ProjectConfig, error) {
	config := ProjectConfig{}
	// always return a valid config on error, with defaults set.
	_ = hcl.Unmarshal([]byte{}, &config)
	data, err := os.ReadFile(kong.ExpandPath(path))
	if os.IsNotExist(err) {
		return config, nil
	} else if err != nil {
		return config, errors.WithStack(err)
	}
	err = hcl.Unmarshal(data, &config)
	if err != nil {
		return config, errors.Wrap(err, path)
	}
	return config, nil
}

// projectConfigFlag is the path of the project configuration.
//
// The file is loaded before flags are resolved so that it can supply flag
// defaults, and the resulting ProjectConfig is bound for commands.
type projectConfigFlag string

func (f projectConfigFlag) BeforeResolve(ctx *kong.Context, trace *kong.Path) error {
	path := string(ctx.FlagValue(trace.Flag).(projectConfigFlag))
	config, err := LoadProjectConfig(path)
	if err != nil {
		return err
	}
	ctx.AddResolver(ProjectConfigResolver(config))
	ctx.Bind(config)
	return nil
}

// ProjectConfigResolver is a Kong configuration resolver for the project configuration file.
func ProjectConfigResolver(config ProjectConfig) kong.Resolver {
	return &projectConfigResolver{config}
}

type projectConfigResolver struct{ config ProjectConfig }

func (p *projectConfigResolver) Validate(app *kong.Application) error { return nil }
func (p *projectConfigResolver) Resolve(context *kong.Context, parent *kong.Path, flag *kong.Flag) (interface{}, error) {
	switch flag.Name {
	case "format":
		if p.config.Format == "" {
			return nil, nil
		}
		return p.config.Format, nil

	default:
		return nil, nil
	}
}
