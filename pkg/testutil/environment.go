// Package testutil builds isolated on-disk environments for tests: a
// dotfiles repository with program directories and a fake home, all
// under t.TempDir with HOME pointed accordingly.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotman/pkg/manifest"
)

// Environment is a throwaway dotfiles repository plus home directory
type Environment struct {
	RepoRoot string
	HomeDir  string

	t *testing.T
}

// NewEnvironment creates the directories and points HOME at the fake
// home for the duration of the test.
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()
	root := t.TempDir()
	env := &Environment{
		RepoRoot: filepath.Join(root, "dotfiles"),
		HomeDir:  filepath.Join(root, "home"),
		t:        t,
	}
	require.NoError(t, os.MkdirAll(env.RepoRoot, 0755))
	require.NoError(t, os.MkdirAll(env.HomeDir, 0755))
	t.Setenv("HOME", env.HomeDir)
	// go-homedir caches the detected home, which would leak across
	// tests with different fake homes.
	homedir.Reset()
	t.Cleanup(homedir.Reset)
	return env
}

// AddProgram creates a program directory with its manifest and source
// files. An empty manifestBody leaves the program without a manifest,
// which is useful for not-a-program and missing-manifest cases.
func (e *Environment) AddProgram(name, manifestBody string, files map[string]string) string {
	e.t.Helper()
	programDir := filepath.Join(e.RepoRoot, name)
	require.NoError(e.t, os.MkdirAll(programDir, 0755))
	if manifestBody != "" {
		require.NoError(e.t, os.WriteFile(
			filepath.Join(programDir, name+manifest.ManifestSuffix), []byte(manifestBody), 0644))
	}
	for rel, content := range files {
		path := filepath.Join(programDir, rel)
		require.NoError(e.t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(e.t, os.WriteFile(path, []byte(content), 0644))
	}
	return programDir
}

// WriteHome places a file in the fake home directory
func (e *Environment) WriteHome(rel, content string) string {
	e.t.Helper()
	path := filepath.Join(e.HomeDir, rel)
	require.NoError(e.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// HomePath returns an absolute path inside the fake home
func (e *Environment) HomePath(rel string) string {
	return filepath.Join(e.HomeDir, rel)
}
