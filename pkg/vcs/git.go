// Package vcs shells out to git for fetching and updating the
// dotfiles repository. dotman does no version control of its own; git
// owns the repository and this wrapper only drives it.
package vcs

import (
	"os/exec"
	"strings"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/logging"
)

// Clone fetches url into dest. When branch is non-empty that branch is
// checked out instead of the remote default. After a successful clone,
// dest is usable as the repository root.
func Clone(url, branch, dest string) error {
	logger := logging.GetLogger("vcs")

	args := []string{"clone"}
	if branch != "" {
		args = append(args, "--branch", branch)
	}
	args = append(args, url, dest)

	logger.Info().Str("url", url).Str("branch", branch).Str("dest", dest).Msg("cloning repository")

	out, err := exec.Command("git", args...).CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, errors.ErrGitClone, "git clone failed: %s", strings.TrimSpace(string(out)))
	}
	return nil
}

// Update pulls the latest changes into repoRoot. Fast-forward only:
// merge conflicts are the user's to handle with git directly, never
// dotman's. Returns git's output for display.
func Update(repoRoot string) (string, error) {
	logger := logging.GetLogger("vcs")
	logger.Info().Str("root", repoRoot).Msg("updating repository")

	out, err := exec.Command("git", "-C", repoRoot, "pull", "--ff-only").CombinedOutput()
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrGitUpdate, "git pull failed: %s", strings.TrimSpace(string(out)))
	}
	return strings.TrimSpace(string(out)), nil
}
