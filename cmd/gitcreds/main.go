// Package main is the main package.
package main

import (
	"context"
	"os"

	"github.com/act3-ai/gitcreds/cmd/gitcreds/cli"
)

// version is overridden at build time.
var version = "devel"

func main() {
	if err := cli.NewCLI(version).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
