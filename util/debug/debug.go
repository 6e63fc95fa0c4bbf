// Package debug holds developer toggles set from the CROSSBUILD_DEBUG envar.
package debug

import (
	"fmt"
	"os"

	"github.com/alecthomas/hcl"
)

// Flags set from the HCL formatted CROSSBUILD_DEBUG envar, eg. CROSSBUILD_DEBUG="errortrace nocolour".
var Flags struct {
	ErrorTrace bool `hcl:"errortrace,optional" help:"Include source locations in all error messages."`
	NoColour   bool `hcl:"nocolour,optional" help:"Never emit ANSI colour, even on a terminal."`
}

func init() {
	envar := os.Getenv("CROSSBUILD_DEBUG")
	err := hcl.Unmarshal([]byte(envar), &Flags, hcl.BareBooleanAttributes(true))
	if err != nil {
		baseErr := err
		schema, err := hcl.Schema(&Flags)
		if err != nil {
			panic(err)
		}
		schemaBytes, err := hcl.MarshalAST(schema)
		if err != nil {
			panic(err)
		}
		fmt.Fprintf(os.Stderr, "Invalid CROSSBUILD_DEBUG=%q: %s\n\nSchema:\n\n%s\n", envar, baseErr, string(schemaBytes))
		os.Exit(1)
	}
}
