package platform

import (
	"strings"

	"github.com/cashapp/crossbuild/errors"
)

// Detail is what a target triple means to the Node.js package ecosystem.
type Detail struct {
	// PlatformABI names build artifacts, eg. "linux-arm64-musl".
	PlatformABI string
	Arch        Arch
	Platform    Platform
	// ABI is the optional fourth field of the triple, empty if absent.
	ABI string
}

// ParseTriple splits a triple of the form <arch>-<vendor>-<os>[-<abi>].
//
// The OS is always the third field, so triples without a vendor such as
// "aarch64-linux-android" report the last field as their OS.
func ParseTriple(triple string) (Detail, error) {
	parts := strings.Split(triple, "-")
	if len(parts) < 3 {
		return Detail{}, errors.Errorf("malformed target triple %q", triple)
	}
	arch, err := ParseArch(parts[0])
	if err != nil {
		return Detail{}, errors.Wrap(err, triple)
	}
	detail := Detail{
		Arch:     arch,
		Platform: ParsePlatform(parts[2]),
	}
	if len(parts) > 3 {
		detail.ABI = parts[3]
	}
	detail.PlatformABI = detail.Platform.String() + "-" + detail.Arch.String()
	if detail.HasABI() {
		detail.PlatformABI += "-" + detail.ABI
	}
	return detail, nil
}

// MustParseTriple is like ParseTriple but panics if the triple can't be parsed.
func MustParseTriple(triple string) Detail {
	detail, err := ParseTriple(triple)
	if err != nil {
		panic(err)
	}
	return detail
}

// HasABI returns true if the triple carried an ABI field.
func (d Detail) HasABI() bool { return d.ABI != "" }
