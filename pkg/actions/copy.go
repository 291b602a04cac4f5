package actions

import (
	"os"
	"path/filepath"

	"github.com/aymanbagabas/go-udiff"

	"github.com/arthur-debert/dotman/pkg/classify"
	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/logging"
)

// ApplyCopy ensures dest holds the content of source. Copy is meant
// for files the user may edit locally, so a diverged destination is
// never resolved automatically in either direction: the entry is
// skipped and surfaced, with a unified diff available for inspection.
// Any destination already carrying the source's content (including a
// hard link or symlink to it) counts as satisfied.
func ApplyCopy(source, dest string, opts Options) Result {
	logger := logging.GetLogger("actions.copy")

	c, err := classify.Classify(source, dest)
	if err != nil {
		return Result{Outcome: OutcomeFailed, Classification: c, Source: source, Dest: dest, Err: err}
	}

	res := Result{Classification: c, Source: source, Dest: dest}

	switch c {
	case classify.SourceMissing:
		res.Outcome = OutcomeFailed
		res.Err = errors.Newf(errors.ErrMissingSource, "source %q does not exist", source)

	case classify.DestMissing:
		if opts.DryRun {
			res.Outcome = OutcomeApplied
			res.Message = "would copy"
			return res
		}
		if err := copyFile(source, dest); err != nil {
			res.Outcome = OutcomeFailed
			res.Err = err
			return res
		}
		logger.Info().Str("source", source).Str("dest", dest).Msg("file copied")
		res.Outcome = OutcomeApplied
		res.Message = "copied"

	case classify.Diverged:
		logger.Warn().Str("source", source).Str("dest", dest).Msg("destination diverged, not copying")
		res.Outcome = OutcomeSkipped
		res.Message = "content mismatch, skipped"
		res.Diff = unifiedDiff(source, dest)
		res.Err = errors.Newf(errors.ErrContentMismatch,
			"destination %q differs from %q, resolve manually", dest, source)

	default:
		// HardLinked, SymlinkedToSource, IdenticalContent: the
		// destination already carries the right content.
		logger.Debug().Str("dest", dest).Str("classification", c.String()).Msg("already satisfied")
		res.Outcome = OutcomeSatisfied
		res.Message = "already up to date"
	}

	return res
}

func copyFile(source, dest string) error {
	info, err := os.Stat(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat source %q", source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read source %q", source)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create parent directory for %q", dest)
	}
	if err := os.WriteFile(dest, data, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "cannot write %q", dest)
	}
	// WriteFile's perm argument is filtered by the umask on create
	if err := os.Chmod(dest, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "cannot set permissions on %q", dest)
	}
	return nil
}

// unifiedDiff renders source vs dest for display. An unreadable side
// (e.g. a dangling symlink) yields an empty diff rather than an error;
// the skip itself is already reported.
func unifiedDiff(source, dest string) string {
	srcBytes, err := os.ReadFile(source)
	if err != nil {
		return ""
	}
	destBytes, err := os.ReadFile(dest)
	if err != nil {
		return ""
	}
	return udiff.Unified(source, dest, string(srcBytes), string(destBytes))
}
