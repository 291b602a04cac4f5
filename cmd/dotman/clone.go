package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotman/pkg/config"
	"github.com/arthur-debert/dotman/pkg/vcs"
)

func newCloneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clone GIT_URL [BRANCH]",
		Short: MsgCloneShort,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			url := args[0]
			branch := ""
			if len(args) == 2 {
				branch = args[1]
			}

			if err := vcs.Clone(url, branch, cfg.DotfilesRoot); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgCloned, url, cfg.DotfilesRoot)

			// The root is configured once; record it so later
			// invocations need no --dotfiles flag.
			if err := config.SaveDotfilesRoot(cfg, cfg.DotfilesRoot); err != nil {
				return err
			}
			return nil
		},
	}
}
