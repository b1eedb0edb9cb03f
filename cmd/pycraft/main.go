package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/macropower/pycraft/internal/cli"
)

const (
	cmdName = "pycraft"

	shortDesc = "The pycraft Command Line Interface (CLI)."
	longDesc  = `The pycraft Command Line Interface (CLI).

Pycraft generates Python source programmatically. It builds a tree of
structural nodes (classes, functions, control-flow blocks, imports) and
renders it into formatted Python text, optionally formatting the result with
black and syntax-checking it with the Python interpreter.

This CLI generates Python modules from YAML definition documents; the Go
packages under pkg/ expose the underlying builder for programmatic use.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
