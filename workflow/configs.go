package workflow

const (
	macOS   = "macos-latest"
	windows = "windows-latest"
	ubuntu  = "ubuntu-latest"

	debianImage = "napi-rs/nodejs-rust:lts-debian"
	alpineImage = "napi-rs/nodejs-rust:lts-alpine"
)

var configs = map[string]Config{
	"x86_64-apple-darwin":    {Host: macOS},
	"x86_64-pc-windows-msvc": {Host: windows},
	"i686-pc-windows-msvc":   {Host: windows},
	"x86_64-unknown-linux-gnu": {
		Host:        ubuntu,
		DockerImage: debianImage,
	},
	"x86_64-unknown-linux-musl": {
		Host:        ubuntu,
		DockerImage: alpineImage,
	},
	// Cross compiled from Linux.
	"x86_64-unknown-freebsd": {Host: ubuntu},
	"aarch64-apple-darwin":   {Host: macOS},
	"aarch64-unknown-linux-gnu": {
		Host:  ubuntu,
		Setup: "sudo apt-get update && sudo apt-get install g++-aarch64-linux-gnu gcc-aarch64-linux-gnu -y",
	},
	"aarch64-unknown-linux-musl": {
		Host:        ubuntu,
		DockerImage: alpineImage,
	},
	"aarch64-pc-windows-msvc": {Host: windows},
	"aarch64-linux-android":   {Host: ubuntu},
	"armv7-unknown-linux-gnueabihf": {
		Host:  ubuntu,
		Setup: "sudo apt-get update && sudo apt-get install gcc-arm-linux-gnueabihf g++-arm-linux-gnueabihf -y",
	},
	"armv7-linux-androideabi": {Host: ubuntu},
}
