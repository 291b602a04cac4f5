package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotman/pkg/actions"
	"github.com/arthur-debert/dotman/pkg/deploy"
)

func newDeployCmd() *cobra.Command {
	var (
		all    bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "deploy [--all] [PROGRAM...]",
		Short: MsgDeployShort,
		Long:  MsgDeployLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if !all && len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNothingToDo)
				return nil
			}

			summary, err := deploy.Deploy(deploy.Request{
				Programs: args,
				All:      all,
				RepoRoot: cfg.DotfilesRoot,
				HomeDir:  cfg.HomeDir,
				Options:  actions.Options{DryRun: dryRun},
			})
			if err != nil {
				return err
			}

			renderSummary(cmd, summary, verbosity)
			if dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), MsgDryRunNotice)
			}

			if summary.Failures() {
				return fmt.Errorf("deployment failed: %d entries failed, %d programs aborted",
					summary.Failed, len(summary.ProgramErrors))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, MsgFlagAll)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	return cmd
}
