// Package platform maps target triples onto Node.js platform and architecture names.
package platform

// Platform is an operating system as named by the Node.js runtime.
//
// Operating systems Node.js has no dedicated name for are represented by Unknown,
// which carries the OS name from the triple verbatim.
type Platform struct {
	name  string
	known bool
}

// Operating systems with a Node.js specific name.
var (
	Darwin  = Platform{"darwin", true}
	FreeBSD = Platform{"freebsd", true}
	OpenBSD = Platform{"openbsd", true}
	Win32   = Platform{"win32", true}
)

var systems = map[string]Platform{
	"darwin":  Darwin,
	"freebsd": FreeBSD,
	"openbsd": OpenBSD,
	"windows": Win32,
}

// Unknown returns the Platform for an OS with no Node.js specific name.
func Unknown(os string) Platform {
	return Platform{name: os}
}

// ParsePlatform maps the OS field of a triple to a Platform.
//
// It never fails, unrecognised systems become Unknown.
func ParsePlatform(os string) Platform {
	if p, ok := systems[os]; ok {
		return p
	}
	return Unknown(os)
}

// IsUnknown returns true if the platform has no Node.js specific name.
func (p Platform) IsUnknown() bool { return !p.known }

func (p Platform) String() string { return p.name }

// MarshalText renders the display name.
func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p.name), nil
}
