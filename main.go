package main

import (
	"os"

	"github.com/toolbench/toolbench/internal/cli"
)

func main() {
	code, _ := cli.Run(os.Args, nil)
	os.Exit(code)
}
