package app

import (
	"github.com/cashapp/crossbuild/errors"
	"github.com/cashapp/crossbuild/target"
	"github.com/cashapp/crossbuild/ui"
	"github.com/cashapp/crossbuild/workflow"
)

// Exit status when validation finds problems.
const exitInvalid = 2

type validateCmd struct{}

func (v *validateCmd) Run(l *ui.UI, config ProjectConfig) error {
	task := l.Task("validate")
	problems := validateRegistry(target.Available(), target.Defaults(), workflow.Triples())
	for _, triple := range config.Targets {
		if !target.IsAvailable(triple) {
			problems = append(problems, errors.Errorf("project target %q is not available", triple))
		}
	}
	for _, problem := range problems {
		task.Errorf("%s", problem)
	}
	if len(problems) > 0 {
		return errors.WithExitCode(errors.Errorf("%d problems found", len(problems)), exitInvalid)
	}
	task.Infof("%d targets OK", len(target.Available()))
	return nil
}

// Check that every available triple resolves and has a usable workflow, and
// that defaults and configured workflows only refer to available triples.
func validateRegistry(available, defaults, configured []string) []error {
	var problems []error
	seen := map[string]bool{}
	for _, triple := range available {
		if seen[triple] {
			problems = append(problems, errors.Errorf("%s: listed twice", triple))
			continue
		}
		seen[triple] = true
		t, err := target.Resolve(triple)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		if err := t.GithubWorkflowConfig.Validate(); err != nil {
			problems = append(problems, errors.Wrap(err, triple))
		}
		if _, err := t.GithubWorkflowConfig.Commands(); err != nil {
			problems = append(problems, errors.Wrap(err, triple))
		}
	}
	for _, triple := range defaults {
		if !seen[triple] {
			problems = append(problems, errors.Errorf("default target %q is not available", triple))
		}
	}
	if len(defaults) >= len(available) {
		problems = append(problems, errors.New("default targets must be a strict subset of the available targets"))
	}
	for _, triple := range configured {
		if !seen[triple] {
			problems = append(problems, errors.Errorf("workflow config for %q has no available target", triple))
		}
	}
	return problems
}
