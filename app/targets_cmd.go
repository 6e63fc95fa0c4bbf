package app

import (
	"encoding/json"
	"strings"

	"github.com/cashapp/crossbuild/errors"
	"github.com/cashapp/crossbuild/target"
	"github.com/cashapp/crossbuild/ui"
)

// JSONFormattable contains the shared JSON boolean flag for Kong
type JSONFormattable struct {
	JSON bool `help:"Format information as a JSON array" default:"false"`
}

type targetsCmd struct {
	Defaults bool     `help:"Only list the default targets."`
	Match    []string `short:"m" placeholder:"GLOB" help:"Only list targets matching GLOB."`
	JSONFormattable
}

func (cmd *targetsCmd) Run(l *ui.UI) error {
	triples := target.Available()
	if cmd.Defaults {
		triples = target.Defaults()
	}
	if len(cmd.Match) > 0 {
		matched, err := target.Select(cmd.Match...)
		if err != nil {
			return err
		}
		triples = intersect(triples, matched)
	}

	if cmd.JSON {
		content, err := json.Marshal(triples)
		if err != nil {
			return errors.Wrap(err, "error formatting targets output to json")
		}
		l.Printf("%s\n", content)
		return nil
	}

	if !l.IsTTY() {
		for _, triple := range triples {
			l.Printf("%s\n", triple)
		}
		return nil
	}
	defaults := target.Defaults()
	for _, line := range columns(triples, l.Width()) {
		for _, triple := range line {
			padding := strings.Repeat(" ", columnWidth(triples)-len(triple))
			if contains(defaults, triple) {
				l.Colourf("^B^2%s^R%s", triple, padding)
			} else {
				l.Colourf("%s%s", triple, padding)
			}
		}
		l.Colourf("\n")
	}
	return nil
}

func columnWidth(triples []string) int {
	width := 0
	for _, triple := range triples {
		if len(triple) > width {
			width = len(triple)
		}
	}
	return width + 2
}

// Lay triples out in rows of as many columns as fit in "width".
func columns(triples []string, width int) [][]string {
	perRow := width / columnWidth(triples)
	if perRow < 1 {
		perRow = 1
	}
	var rows [][]string
	for len(triples) > 0 {
		n := perRow
		if n > len(triples) {
			n = len(triples)
		}
		rows = append(rows, triples[:n])
		triples = triples[n:]
	}
	return rows
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// Elements of "a" that are also in "b", in the order of "a".
func intersect(a, b []string) []string {
	var out []string
	for _, s := range a {
		if contains(b, s) {
			out = append(out, s)
		}
	}
	return out
}
