package actions

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotman/pkg/classify"
	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/logging"
	"github.com/arthur-debert/dotman/pkg/paths"
)

// ApplyLink ensures dest is a symlink to source. It only ever creates;
// an existing dest that is not already the correct symlink is a
// conflict, reported with its classification so the user sees exactly
// what is in the way. Calling it twice converges to the same result.
func ApplyLink(source, dest string, opts Options) Result {
	logger := logging.GetLogger("actions.link")

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
			res.Message = "would link"
			return res
		}
		if err := createLink(source, dest); err != nil {
			res.Outcome = OutcomeFailed
			res.Err = err
			return res
		}
		logger.Info().Str("source", source).Str("dest", dest).Msg("symlink created")
		res.Outcome = OutcomeApplied
		res.Message = "linked"

	case classify.SymlinkedToSource:
		logger.Debug().Str("dest", dest).Msg("already linked")
		res.Outcome = OutcomeSatisfied
		res.Message = "already linked"

	default:
		// HardLinked, IdenticalContent, Diverged: something is at
		// dest and it is not the symlink we want.
		res.Outcome = OutcomeFailed
		res.Err = errors.Newf(errors.ErrConflictingDest,
			"destination %q exists (%s), refusing to overwrite", dest, c).
			WithDetail("source", source).
			WithDetail("classification", c.String())
	}

	return res
}

func createLink(source, dest string) error {
	target, err := paths.Canonical(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve source %q", source)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create parent directory for %q", dest)
	}
	if err := os.Symlink(target, dest); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot symlink %q to %q", dest, target)
	}
	return nil
}
