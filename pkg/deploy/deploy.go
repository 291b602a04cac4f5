// Package deploy resolves which programs to deploy and runs their
// manifests, aggregating everything into a Summary. A failing program
// never stops the run; the final exit status is decided after every
// resolved program has been attempted.
package deploy

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/dotman/pkg/actions"
	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/logging"
	"github.com/arthur-debert/dotman/pkg/manifest"
)

// Request describes one deployment run
type Request struct {
	// Programs is the explicit program list. May be empty when All is
	// set.
	Programs []string
	// All additionally deploys every program discovered under
	// RepoRoot.
	All      bool
	RepoRoot string
	HomeDir  string
	Options  actions.Options
}

// ProgramError is a program-level failure (typically a missing
// manifest) that aborted one program but not the run
type ProgramError struct {
	Program string
	Err     error
}

// Summary aggregates the outcome of a whole deployment run
type Summary struct {
	Programs      []string
	Entries       []manifest.EntryResult
	ProgramErrors []ProgramError

	Applied   int
	Satisfied int
	Skipped   int
	Failed    int
}

// Failures reports whether anything in the run failed. Skips do not
// count.
func (s *Summary) Failures() bool {
	return s.Failed > 0 || len(s.ProgramErrors) > 0
}

func (s *Summary) record(entry manifest.EntryResult) {
	s.Entries = append(s.Entries, entry)
	switch entry.Outcome {
	case actions.OutcomeApplied:
		s.Applied++
	case actions.OutcomeSatisfied:
		s.Satisfied++
	case actions.OutcomeSkipped:
		s.Skipped++
	case actions.OutcomeFailed:
		s.Failed++
	}
}

// Deploy runs the manifests of every resolved program. The returned
// error covers structural problems only (unusable repository root);
// per-program and per-entry failures live in the Summary.
func Deploy(req Request) (*Summary, error) {
	logger := logging.GetLogger("deploy")

	programs, err := resolvePrograms(req)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Strs("programs", programs).
		Bool("all", req.All).
		Str("root", req.RepoRoot).
		Msg("starting deployment")

	summary := &Summary{Programs: programs}
	for _, program := range programs {
		programDir := filepath.Join(req.RepoRoot, program)
		results, err := manifest.Process(programDir, program, req.HomeDir, req.Options)
		if err != nil {
			logger.Warn().Str("program", program).Err(err).Msg("program aborted")
			summary.ProgramErrors = append(summary.ProgramErrors, ProgramError{Program: program, Err: err})
			continue
		}
		for _, entry := range results {
			summary.record(entry)
		}
	}

	logger.Info().
		Int("applied", summary.Applied).
		Int("satisfied", summary.Satisfied).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Msg("deployment finished")

	return summary, nil
}

// resolvePrograms returns the explicit list, unioned with discovered
// programs when All is set, deduplicated and sorted.
func resolvePrograms(req Request) ([]string, error) {
	seen := make(map[string]bool)
	var programs []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			programs = append(programs, name)
		}
	}

	for _, name := range req.Programs {
		add(name)
	}

	if req.All {
		discovered, err := Discover(req.RepoRoot)
		if err != nil {
			return nil, err
		}
		for _, name := range discovered {
			add(name)
		}
	}

	sort.Strings(programs)
	return programs, nil
}

// Discover lists every subdirectory of repoRoot that holds a manifest
// named after itself. Directory name equals program name, by
// convention.
func Discover(repoRoot string) ([]string, error) {
	logger := logging.GetLogger("deploy.discover")

	info, err := os.Stat(repoRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrRepoRoot, "repository root %q does not exist", repoRoot)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot access repository root %q", repoRoot)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrRepoRoot, "repository root %q is not a directory", repoRoot)
	}

	entries, err := os.ReadDir(repoRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read repository root %q", repoRoot)
	}

	var programs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		manifestPath := filepath.Join(repoRoot, name, name+manifest.ManifestSuffix)
		if _, err := os.Stat(manifestPath); err != nil {
			logger.Trace().Str("dir", name).Msg("no manifest, not a program")
			continue
		}
		programs = append(programs, name)
	}

	sort.Strings(programs)
	logger.Debug().Int("count", len(programs)).Msg("programs discovered")
	return programs, nil
}
