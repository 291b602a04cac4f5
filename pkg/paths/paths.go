// Package paths centralizes path expansion and canonicalization for
// dotman. Manifest destinations may be absolute, home-relative ("~/x")
// or bare relative paths; everything funnels through here so the rest
// of the code only ever sees absolute paths.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/arthur-debert/dotman/pkg/errors"
)

// ExpandHome expands a leading ~ or ~/ in path against the process's
// home directory. This is for configuration values; manifest
// destinations go through ResolveDest, where the tilde means the
// configured target home instead. Paths without a tilde are returned
// unchanged.
func ExpandHome(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot expand %q", path)
	}
	return expanded, nil
}

// ResolveDest turns a manifest destination into an absolute path.
// Absolute destinations are taken as-is; relative and ~-prefixed ones
// resolve under homeDir. The tilde always means the configured target
// home, never the process's $HOME, so --home redirects every entry of
// a manifest consistently.
func ResolveDest(dest, homeDir string) (string, error) {
	if dest == "~" {
		return filepath.Clean(homeDir), nil
	}
	if strings.HasPrefix(dest, "~/") {
		return filepath.Join(homeDir, dest[2:]), nil
	}
	if strings.HasPrefix(dest, "~") {
		return "", errors.Newf(errors.ErrInvalidInput, "cannot expand user-specific home in %q", dest)
	}
	if filepath.IsAbs(dest) {
		return filepath.Clean(dest), nil
	}
	return filepath.Join(homeDir, dest), nil
}

// ResolveSource turns a manifest source into an absolute path. Relative
// sources live under the program directory.
func ResolveSource(source, programDir string) string {
	if filepath.IsAbs(source) {
		return filepath.Clean(source)
	}
	return filepath.Join(programDir, source)
}

// Canonical resolves path fully, following symlinks. The path must
// exist.
func Canonical(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}

// CanonicalParent resolves the directory portion of path, following
// symlinks, and rejoins the leaf unresolved. The leaf may not exist
// yet, and when it is itself a symlink it must stay observable as one.
func CanonicalParent(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	dir, leaf := filepath.Split(abs)
	dir = filepath.Clean(dir)
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		if os.IsNotExist(err) {
			// Parent does not exist yet; the cleaned absolute path is
			// as canonical as it gets.
			return abs, nil
		}
		return "", err
	}
	return filepath.Join(resolved, leaf), nil
}
