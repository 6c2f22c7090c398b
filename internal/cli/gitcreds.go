// Package cli defines CLI commands.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/act3-ai/gitcreds/internal/actions"
	"github.com/act3-ai/go-common/pkg/config"
)

// NewCLI creates the base gitcreds command.
func NewCLI(version string) *cobra.Command {
	var verbosity int

	// cmd represents the base command when called without any subcommands
	cmd := &cobra.Command{
		Use:          "gitcreds URL",
		Short:        "Retrieve credentials for a remote URL from the configured git credential helper.",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetLogLoggerLevel(logLevel(verbosity))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFiles := config.EnvPathOr("GITCREDS_CONFIG", config.DefaultConfigSearchPath("gitcreds", "config.yaml"))

			action := actions.NewFill(cmd.OutOrStdout(), args[0], version, cfgFiles)
			return action.Run(cmd.Context())
		},
	}

	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	return cmd
}

func logLevel(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return slog.LevelError
	case verbosity == 1:
		return slog.LevelWarn
	case verbosity == 2:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
