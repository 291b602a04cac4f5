package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotman/pkg/vcs"
)

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: MsgUpdateShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			out, err := vcs.Update(cfg.DotfilesRoot)
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Fprint(cmd.OutOrStdout(), MsgUpToDate)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
}
