// Package actions performs the minimal safe filesystem change for one
// manifest entry, or reports why it will not. Both actions decide off
// the classification and never destroy an existing destination.
package actions

import (
	"github.com/arthur-debert/dotman/pkg/classify"
)

// Outcome is the terminal state of one manifest entry
type Outcome int

const (
	// OutcomeApplied means the filesystem was changed (or would be,
	// under dry-run).
	OutcomeApplied Outcome = iota
	// OutcomeSatisfied means the destination was already correct.
	OutcomeSatisfied
	// OutcomeSkipped means the entry was deliberately left alone and
	// needs manual resolution. Skips are not failures.
	OutcomeSkipped
	// OutcomeFailed means the entry could not be applied.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeSatisfied:
		return "satisfied"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result records what happened to one entry
type Result struct {
	Outcome        Outcome
	Classification classify.Classification
	Source         string
	Dest           string
	Message        string
	// Diff holds a unified diff between source and a diverged copy
	// destination, for display at elevated verbosity.
	Diff string
	Err  error
}

// Options tweak how actions run
type Options struct {
	// DryRun reports what would change without touching the
	// filesystem.
	DryRun bool
}
