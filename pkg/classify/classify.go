// Package classify computes the relationship between a source file in
// the dotfiles repository and its destination in the home directory.
// Every deployment decision pivots on this value.
package classify

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/logging"
	"github.com/arthur-debert/dotman/pkg/paths"
)

// Classification is the computed relationship between a source and a
// destination path. Exactly one applies to any pair.
type Classification int

const (
	// SourceMissing means the source does not exist (a broken symlink
	// counts as missing).
	SourceMissing Classification = iota
	// DestMissing means the destination does not exist at all.
	DestMissing
	// HardLinked means source and destination are the same inode.
	HardLinked
	// SymlinkedToSource means the destination is a symlink that
	// ultimately resolves to the source.
	SymlinkedToSource
	// IdenticalContent means the destination is a distinct file whose
	// bytes equal the source's.
	IdenticalContent
	// Diverged means the destination exists and matches none of the
	// above.
	Diverged
)

// String returns the human-readable name used in diagnostics
func (c Classification) String() string {
	switch c {
	case SourceMissing:
		return "source missing"
	case DestMissing:
		return "destination missing"
	case HardLinked:
		return "hard linked"
	case SymlinkedToSource:
		return "symlinked to source"
	case IdenticalContent:
		return "identical content"
	case Diverged:
		return "diverged"
	default:
		return "unknown"
	}
}

// Classify determines the relationship between source and dest. The
// checks are ordered; each assumes the preceding ones failed. An
// existing symlink to the right target must be recognized before the
// slower content comparison gets a say.
func Classify(source, dest string) (Classification, error) {
	logger := logging.GetLogger("classify")

	// Stat follows symlinks, so a broken source symlink reads as
	// missing, which is what deployment wants.
	srcInfo, err := os.Stat(source)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Trace().Str("source", source).Msg("source does not exist")
			return SourceMissing, nil
		}
		return SourceMissing, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat source %q", source)
	}

	canonDest, err := paths.CanonicalParent(dest)
	if err != nil {
		return DestMissing, errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve destination %q", dest)
	}

	destInfo, err := os.Lstat(canonDest)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Trace().Str("dest", canonDest).Msg("destination does not exist")
			return DestMissing, nil
		}
		return DestMissing, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat destination %q", canonDest)
	}

	// Same inode without following the destination's own symlink:
	// a hard link, or the very same path.
	if os.SameFile(srcInfo, destInfo) {
		return HardLinked, nil
	}

	// A broken symlink at dest exists but resolves to nothing; it is
	// neither correct nor identical, so it falls through to Diverged.
	resolved, evalErr := filepath.EvalSymlinks(canonDest)
	if evalErr == nil {
		resolvedInfo, statErr := os.Stat(resolved)
		if statErr == nil && os.SameFile(srcInfo, resolvedInfo) {
			return SymlinkedToSource, nil
		}
	}

	same, err := sameContent(source, canonDest)
	if err != nil {
		if os.IsNotExist(err) {
			// Dangling symlink leaf
			return Diverged, nil
		}
		return Diverged, errors.Wrapf(err, errors.ErrFileAccess, "cannot compare %q and %q", source, canonDest)
	}
	if same {
		return IdenticalContent, nil
	}

	return Diverged, nil
}

// sameContent reports whether the two files hold identical bytes. Size
// is checked first to skip reading obvious mismatches.
func sameContent(a, b string) (bool, error) {
	aInfo, err := os.Stat(a)
	if err != nil {
		return false, err
	}
	bInfo, err := os.Stat(b)
	if err != nil {
		return false, err
	}
	if aInfo.IsDir() || bInfo.IsDir() {
		return false, nil
	}
	if aInfo.Size() != bInfo.Size() {
		return false, nil
	}

	aBytes, err := os.ReadFile(a)
	if err != nil {
		return false, err
	}
	bBytes, err := os.ReadFile(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(aBytes, bBytes), nil
}
