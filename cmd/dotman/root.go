package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotman/internal/version"
	"github.com/arthur-debert/dotman/pkg/config"
	"github.com/arthur-debert/dotman/pkg/logging"
)

var (
	verbosity    int
	flagConfig   string
	flagHome     string
	flagDotfiles string
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "dotman",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given: show help and fail the invocation.
			_ = cmd.Help()
			return errNoCommand
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&flagHome, "home", "", MsgFlagHome)
	rootCmd.PersistentFlags().StringVar(&flagDotfiles, "dotfiles", "", MsgFlagDotfiles)

	rootCmd.AddCommand(newDeployCmd())
	rootCmd.AddCommand(newCloneCmd())
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newCheckCmd())

	return rootCmd
}

// loadConfig resolves the invocation's configuration from the global
// flags. Flag values always win over file values.
func loadConfig() (*config.Config, error) {
	return config.Load(config.Flags{
		ConfigFile:   flagConfig,
		HomeDir:      flagHome,
		DotfilesRoot: flagDotfiles,
	})
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
