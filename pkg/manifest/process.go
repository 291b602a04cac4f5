package manifest

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotman/pkg/actions"
	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/logging"
	"github.com/arthur-debert/dotman/pkg/paths"
)

// EntryResult is the terminal state of one manifest line
type EntryResult struct {
	Program string
	Line    int
	Raw     string
	Verb    Verb
	actions.Result
}

// Process reads <programName>.dotfiles under programDir and applies
// every directive, resolving sources against programDir and
// destinations against homeDir. One failing entry never stops the
// rest; all results come back for the caller to aggregate. A missing
// manifest is fatal for this program only and is reported through the
// returned error.
func Process(programDir, programName, homeDir string, opts actions.Options) ([]EntryResult, error) {
	logger := logging.GetLogger("manifest")

	manifestPath := filepath.Join(programDir, programName+ManifestSuffix)
	file, err := os.Open(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrManifestNotFound,
				"program %q has no manifest at %q", programName, manifestPath)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot open manifest %q", manifestPath)
	}
	defer func() { _ = file.Close() }()

	directives, err := Parse(file)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("program", programName).
		Int("directives", len(directives)).
		Msg("processing manifest")

	results := make([]EntryResult, 0, len(directives))
	for _, d := range directives {
		entry := EntryResult{Program: programName, Line: d.Line, Raw: d.Raw, Verb: d.Verb}

		if d.Err != nil {
			entry.Result = actions.Result{Outcome: actions.OutcomeFailed, Err: d.Err}
			results = append(results, entry)
			continue
		}

		source := paths.ResolveSource(d.Source, programDir)
		dest, err := paths.ResolveDest(d.Dest, homeDir)
		if err != nil {
			entry.Result = actions.Result{
				Outcome: actions.OutcomeFailed,
				Source:  source,
				Dest:    d.Dest,
				Err:     err,
			}
			results = append(results, entry)
			continue
		}

		switch d.Verb {
		case VerbLink:
			entry.Result = actions.ApplyLink(source, dest, opts)
		case VerbCopy:
			entry.Result = actions.ApplyCopy(source, dest, opts)
		}
		results = append(results, entry)
	}

	return results, nil
}
