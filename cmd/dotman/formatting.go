package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotman/pkg/actions"
	"github.com/arthur-debert/dotman/pkg/deploy"
	"github.com/arthur-debert/dotman/pkg/manifest"
	"github.com/arthur-debert/dotman/pkg/style"
)

// renderSummary prints per-entry lines and the final counts. Satisfied
// entries only show up from -v; diffs for skipped copies from -vv.
func renderSummary(cmd *cobra.Command, summary *deploy.Summary, verbosity int) {
	out := cmd.OutOrStdout()

	for _, entry := range summary.Entries {
		renderEntry(cmd, entry, verbosity)
	}

	for _, pe := range summary.ProgramErrors {
		fmt.Fprintf(out, "%s %s: %v\n", style.Error("✗"), pe.Program, pe.Err)
	}

	fmt.Fprintf(out, MsgSummaryFormat,
		summary.Applied, summary.Satisfied, summary.Skipped, summary.Failed)
}

func renderEntry(cmd *cobra.Command, entry manifest.EntryResult, verbosity int) {
	out := cmd.OutOrStdout()

	switch entry.Outcome {
	case actions.OutcomeApplied:
		fmt.Fprintf(out, "%s %s: %s %s\n",
			style.Success("✓"), entry.Program, entry.Message, style.Path(entry.Dest))

	case actions.OutcomeSatisfied:
		if verbosity >= 1 {
			fmt.Fprintf(out, "%s %s: %s %s\n",
				style.Muted("·"), entry.Program, entry.Message, style.Path(entry.Dest))
		}

	case actions.OutcomeSkipped:
		fmt.Fprintf(out, "%s %s: %s %s (%s)\n",
			style.Warning("!"), entry.Program, entry.Message,
			style.Path(entry.Dest), entry.Classification)
		if verbosity >= 2 && entry.Diff != "" {
			fmt.Fprintln(out, style.Muted(entry.Diff))
		}

	case actions.OutcomeFailed:
		fmt.Fprintf(out, "%s %s: %v\n", style.Error("✗"), entry.Program, entry.Err)
	}
}
