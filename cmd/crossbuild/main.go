package main

import (
	"github.com/cashapp/crossbuild/app"
)

var version = "devel"

func main() {
	app.Main(app.Config{
		Version: version,
	})
}
