package main

import (
	"os"

	"github.com/leonardinius/lispcalc/cmd"
)

func main() {
	app := cmd.NewLispApp()
	os.Exit(app.Main(os.Args[1:]))
}
