// Package cli exports the gitcreds command.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/act3-ai/gitcreds/internal/cli"
)

// NewCLI creates the base gitcreds command.
func NewCLI(version string) *cobra.Command {
	return cli.NewCLI(version)
}
