// Package manifest reads per-program manifest files. A manifest is an
// ordered list of link/copy directives, one per line:
//
//	link vimrc ~/.vimrc
//	copy gitconfig ~/.gitconfig
//	# comments and blank lines are ignored
//
// Paths containing spaces may be double-quoted. A bad line never
// aborts the rest of the manifest; it is reported and processing
// continues.
package manifest

import (
	"bufio"
	"io"
	"strings"

	"github.com/arthur-debert/dotman/pkg/errors"
)

// ManifestSuffix is appended to the program name to form the manifest
// file name, e.g. vim/vim.dotfiles.
const ManifestSuffix = ".dotfiles"

// Verb is the directive kind
type Verb int

const (
	VerbUnknown Verb = iota
	VerbLink
	VerbCopy
)

func (v Verb) String() string {
	switch v {
	case VerbLink:
		return "link"
	case VerbCopy:
		return "copy"
	default:
		return "unknown"
	}
}

// Directive is one parsed manifest line. When Err is set the line was
// malformed (unknown verb, wrong argument count, unterminated quote)
// and Verb/Source/Dest are not meaningful.
type Directive struct {
	Line   int
	Raw    string
	Verb   Verb
	Source string
	Dest   string
	Err    error
}

// Parse reads directives from r, skipping blank lines and comments.
// Malformed lines come back with Err set rather than aborting the
// whole parse.
func Parse(r io.Reader) ([]Directive, error) {
	var directives []Directive

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		d := Directive{Line: lineNo, Raw: raw}
		tokens, err := splitTokens(line)
		if err != nil {
			d.Err = errors.Wrapf(err, errors.ErrManifestMalformed, "line %d", lineNo)
			directives = append(directives, d)
			continue
		}

		switch tokens[0] {
		case "link":
			d.Verb = VerbLink
		case "copy":
			d.Verb = VerbCopy
		default:
			d.Err = errors.Newf(errors.ErrUnknownDirective,
				"line %d: unknown directive %q", lineNo, tokens[0])
			directives = append(directives, d)
			continue
		}

		if len(tokens) != 3 {
			d.Verb = VerbUnknown
			d.Err = errors.Newf(errors.ErrManifestMalformed,
				"line %d: %s takes a source and a destination, got %d arguments",
				lineNo, tokens[0], len(tokens)-1)
			directives = append(directives, d)
			continue
		}

		d.Source = tokens[1]
		d.Dest = tokens[2]
		directives = append(directives, d)
	}

	if err := scanner.Err(); err != nil {
		return directives, errors.Wrap(err, errors.ErrFileAccess, "cannot read manifest")
	}
	return directives, nil
}

// splitTokens splits a line on whitespace, honoring double quotes so
// paths may contain spaces. Inside quotes, \" escapes a quote and \\ a
// backslash.
func splitTokens(line string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	inQuote := false
	escaped := false
	inToken := false

	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case inQuote && r == '\\':
			escaped = true
		case r == '"':
			inQuote = !inQuote
			inToken = true
		case !inQuote && (r == ' ' || r == '\t'):
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(r)
			inToken = true
		}
	}
	if inQuote {
		return nil, errors.New(errors.ErrManifestMalformed, "unterminated quote")
	}
	if inToken {
		tokens = append(tokens, current.String())
	}
	return tokens, nil
}
