package platform

import (
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/require"
)

func TestParseTriple(t *testing.T) {
	tests := []struct {
		triple   string
		expected Detail
		fail     string
	}{
		{triple: "x86_64-apple-darwin",
			expected: Detail{PlatformABI: "darwin-x64", Arch: X64, Platform: Darwin}},
		{triple: "aarch64-unknown-linux-musl",
			expected: Detail{PlatformABI: "linux-arm64-musl", Arch: Arm64, Platform: Unknown("linux"), ABI: "musl"}},
		{triple: "armv7-unknown-linux-gnueabihf",
			expected: Detail{PlatformABI: "linux-arm-gnueabihf", Arch: Arm, Platform: Unknown("linux"), ABI: "gnueabihf"}},
		{triple: "i686-pc-windows-msvc",
			expected: Detail{PlatformABI: "win32-ia32-msvc", Arch: IA32, Platform: Win32, ABI: "msvc"}},
		{triple: "x86_64-unknown-freebsd",
			expected: Detail{PlatformABI: "freebsd-x64", Arch: X64, Platform: FreeBSD}},
		{triple: "aarch64-linux-android",
			expected: Detail{PlatformABI: "android-arm64", Arch: Arm64, Platform: Unknown("android")}},
		{triple: "armv7-linux-androideabi",
			expected: Detail{PlatformABI: "androideabi-arm", Arch: Arm, Platform: Unknown("androideabi")}},
		{triple: "x32-unknown-openbsd",
			expected: Detail{PlatformABI: "openbsd-x86", Arch: X86, Platform: OpenBSD}},
		{triple: "s390x-ibm-linux-gnu-extra",
			expected: Detail{PlatformABI: "linux-s390x-gnu", Arch: S390X, Platform: Unknown("linux"), ABI: "gnu"}},
		{triple: "riscv64gc-unknown-linux-gnu", fail: "unsupported cpu arch riscv64gc"},
		{triple: "x86_64-apple", fail: `malformed target triple "x86_64-apple"`},
	}
	for _, test := range tests {
		t.Run(test.triple, func(t *testing.T) {
			actual, err := ParseTriple(test.triple)
			if test.fail != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), test.fail)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.expected, actual, repr.String(actual, repr.Indent("  ")))
		})
	}
}

func TestParseTripleIsDeterministic(t *testing.T) {
	first := MustParseTriple("aarch64-unknown-linux-gnu")
	for i := 0; i < 10; i++ {
		require.Equal(t, first, MustParseTriple("aarch64-unknown-linux-gnu"))
	}
}

func TestMustParseTriplePanicsOnUnknownArch(t *testing.T) {
	require.PanicsWithError(t, "sparc64-unknown-linux-gnu: unsupported cpu arch sparc64", func() {
		MustParseTriple("sparc64-unknown-linux-gnu")
	})
}

func TestParsePlatform(t *testing.T) {
	require.Equal(t, Win32, ParsePlatform("windows"))
	require.Equal(t, Darwin, ParsePlatform("darwin"))
	require.False(t, ParsePlatform("freebsd").IsUnknown())

	linux := ParsePlatform("linux")
	require.True(t, linux.IsUnknown())
	require.Equal(t, "linux", linux.String())

	// "win32" is not an OS name in a triple, so it does not map onto Win32.
	win32 := ParsePlatform("win32")
	require.True(t, win32.IsUnknown())
	require.NotEqual(t, Win32, win32)
	require.Equal(t, Win32.String(), win32.String())
}

func TestArchNames(t *testing.T) {
	tests := []struct {
		cpu    string
		node   string
		github string
	}{
		{"x32", "x86", "x86"},
		{"x86_64", "x64", "x64"},
		{"i686", "ia32", "x64"},
		{"armv7", "arm", "x64"},
		{"aarch64", "arm64", "x64"},
		{"mips", "mips", "x64"},
		{"mipsel", "mipsel", "x64"},
		{"ppc", "ppc", "x64"},
		{"ppc64", "ppc64", "x64"},
		{"s390", "s390", "x64"},
		{"s390x", "s390x", "x64"},
	}
	for _, test := range tests {
		t.Run(test.cpu, func(t *testing.T) {
			arch, err := ParseArch(test.cpu)
			require.NoError(t, err)
			require.Equal(t, test.node, arch.String())
			require.Equal(t, test.github, arch.GithubActionArch())
			text, err := arch.MarshalText()
			require.NoError(t, err)
			require.Equal(t, test.node, string(text))
		})
	}
}

func TestParseArchRejectsRuntimeNames(t *testing.T) {
	_, err := ParseArch("x64")
	require.EqualError(t, err, "unsupported cpu arch x64")
	_, err = Arch(0).MarshalText()
	require.Error(t, err)
}
