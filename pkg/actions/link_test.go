package actions_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotman/pkg/actions"
	"github.com/arthur-debert/dotman/pkg/classify"
	"github.com/arthur-debert/dotman/pkg/errors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestApplyLinkCreatesSymlink(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "repo", "vim", "vimrc")
	dest := filepath.Join(dir, "home", ".vimrc")
	writeFile(t, source, "set nocompatible\n")

	res := actions.ApplyLink(source, dest, actions.Options{})
	assert.Equal(t, actions.OutcomeApplied, res.Outcome)
	assert.Equal(t, classify.DestMissing, res.Classification)

	// Parent directories were created and the link resolves to source.
	c, err := classify.Classify(source, dest)
	require.NoError(t, err)
	assert.Equal(t, classify.SymlinkedToSource, c)
}

func TestApplyLinkIdempotent(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "repo", "vim", "vimrc")
	dest := filepath.Join(dir, "home", ".vimrc")
	writeFile(t, source, "set nocompatible\n")

	first := actions.ApplyLink(source, dest, actions.Options{})
	require.Equal(t, actions.OutcomeApplied, first.Outcome)

	second := actions.ApplyLink(source, dest, actions.Options{})
	assert.Equal(t, actions.OutcomeSatisfied, second.Outcome)
	assert.Equal(t, classify.SymlinkedToSource, second.Classification)
	assert.Equal(t, "already linked", second.Message)
}

func TestApplyLinkMissingSource(t *testing.T) {
	dir := t.TempDir()
	res := actions.ApplyLink(
		filepath.Join(dir, "repo", "vim", "vimrc"),
		filepath.Join(dir, "home", ".vimrc"),
		actions.Options{})
	assert.Equal(t, actions.OutcomeFailed, res.Outcome)
	assert.True(t, errors.IsErrorCode(res.Err, errors.ErrMissingSource))
}

func TestApplyLinkNeverOverwrites(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, source, dest string)
		want  classify.Classification
	}{
		{
			name: "diverged file",
			setup: func(t *testing.T, source, dest string) {
				writeFile(t, dest, "local edits\n")
			},
			want: classify.Diverged,
		},
		{
			name: "identical file",
			setup: func(t *testing.T, source, dest string) {
				writeFile(t, dest, "set nocompatible\n")
			},
			want: classify.IdenticalContent,
		},
		{
			name: "hard link",
			setup: func(t *testing.T, source, dest string) {
				require.NoError(t, os.MkdirAll(filepath.Dir(dest), 0755))
				require.NoError(t, os.Link(source, dest))
			},
			want: classify.HardLinked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			source := filepath.Join(dir, "repo", "vim", "vimrc")
			dest := filepath.Join(dir, "home", ".vimrc")
			writeFile(t, source, "set nocompatible\n")
			tt.setup(t, source, dest)

			before, err := os.ReadFile(dest)
			require.NoError(t, err)

			res := actions.ApplyLink(source, dest, actions.Options{})
			assert.Equal(t, actions.OutcomeFailed, res.Outcome)
			assert.Equal(t, tt.want, res.Classification)
			assert.True(t, errors.IsErrorCode(res.Err, errors.ErrConflictingDest))

			// Destination untouched.
			after, err := os.ReadFile(dest)
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}

func TestApplyLinkDryRun(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "repo", "vim", "vimrc")
	dest := filepath.Join(dir, "home", ".vimrc")
	writeFile(t, source, "set nocompatible\n")

	res := actions.ApplyLink(source, dest, actions.Options{DryRun: true})
	assert.Equal(t, actions.OutcomeApplied, res.Outcome)
	assert.Equal(t, "would link", res.Message)

	_, err := os.Lstat(dest)
	assert.True(t, os.IsNotExist(err))
}
