package main

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotman/pkg/errors"
)

// TODO: implement check as a read-only classification report once the
// status output format settles.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: MsgCheckShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New(errors.ErrNotImplemented, "check is not implemented yet")
		},
	}
}
