package platform

import (
	"github.com/cashapp/crossbuild/errors"
)

// Arch is a CPU architecture, named the way the Node.js runtime names it.
type Arch int

// Architectures known to the Node.js runtime.
const (
	X86    Arch = iota + 1 // x86
	X64                    // x64
	IA32                   // ia32
	Arm                    // arm
	Arm64                  // arm64
	Mips                   // mips
	Mipsel                 // mipsel
	PPC                    // ppc
	PPC64                  // ppc64
	S390                   // s390
	S390X                  // s390x
)

var archNames = map[Arch]string{
	X86:    "x86",
	X64:    "x64",
	IA32:   "ia32",
	Arm:    "arm",
	Arm64:  "arm64",
	Mips:   "mips",
	Mipsel: "mipsel",
	PPC:    "ppc",
	PPC64:  "ppc64",
	S390:   "s390",
	S390X:  "s390x",
}

// Compiler CPU names, as they appear in the first field of a target triple.
var cpuArch = map[string]Arch{
	"x32":     X86,
	"x86_64":  X64,
	"i686":    IA32,
	"armv7":   Arm,
	"aarch64": Arm64,
	"mips":    Mips,
	"mipsel":  Mipsel,
	"ppc":     PPC,
	"ppc64":   PPC64,
	"s390":    S390,
	"s390x":   S390X,
}

// ParseArch maps a compiler CPU name (eg. "x86_64", "aarch64") to an Arch.
func ParseArch(cpu string) (Arch, error) {
	arch, ok := cpuArch[cpu]
	if !ok {
		return 0, errors.Errorf("unsupported cpu arch %s", cpu)
	}
	return arch, nil
}

func (a Arch) String() string {
	if name, ok := archNames[a]; ok {
		return name
	}
	return "invalid"
}

// GithubActionArch is the host architecture GitHub Actions runners understand.
//
// Runners only distinguish x86 and x64, so everything that isn't 32-bit x86 folds to x64.
func (a Arch) GithubActionArch() string {
	if a == X86 {
		return "x86"
	}
	return "x64"
}

// MarshalText renders the runtime name.
func (a Arch) MarshalText() ([]byte, error) {
	if _, ok := archNames[a]; !ok {
		return nil, errors.Errorf("invalid arch %d", int(a))
	}
	return []byte(a.String()), nil
}
