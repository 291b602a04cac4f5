package deploy_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotman/pkg/actions"
	"github.com/arthur-debert/dotman/pkg/deploy"
	"github.com/arthur-debert/dotman/pkg/errors"
)

// buildRepo writes a dotfiles repository layout: one directory per
// program, each with sources and a <name>.dotfiles manifest.
type program struct {
	manifest string
	files    map[string]string
}

func buildRepo(t *testing.T, programs map[string]program) (repoRoot, homeDir string) {
	t.Helper()
	dir := t.TempDir()
	repoRoot = filepath.Join(dir, "dotfiles")
	homeDir = filepath.Join(dir, "home")
	require.NoError(t, os.MkdirAll(homeDir, 0755))

	for name, p := range programs {
		programDir := filepath.Join(repoRoot, name)
		require.NoError(t, os.MkdirAll(programDir, 0755))
		if p.manifest != "" {
			require.NoError(t, os.WriteFile(
				filepath.Join(programDir, name+".dotfiles"), []byte(p.manifest), 0644))
		}
		for rel, content := range p.files {
			path := filepath.Join(programDir, rel)
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		}
	}
	return repoRoot, homeDir
}

func TestDiscover(t *testing.T) {
	repoRoot, _ := buildRepo(t, map[string]program{
		"vim":  {manifest: "link vimrc .vimrc\n", files: map[string]string{"vimrc": "a\n"}},
		"zsh":  {manifest: "link zshrc .zshrc\n", files: map[string]string{"zshrc": "b\n"}},
		"misc": {files: map[string]string{"readme": "no manifest here\n"}},
	})
	// A stray file at the root is not a program.
	require.NoError(t, os.WriteFile(filepath.Join(repoRoot, "README.md"), []byte("hi\n"), 0644))

	programs, err := deploy.Discover(repoRoot)
	require.NoError(t, err)
	assert.Equal(t, []string{"vim", "zsh"}, programs)
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := deploy.Discover(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRepoRoot))
}

func TestDeployAll(t *testing.T) {
	repoRoot, homeDir := buildRepo(t, map[string]program{
		"vim": {manifest: "link vimrc .vimrc\n", files: map[string]string{"vimrc": "a\n"}},
		"zsh": {manifest: "copy zshrc .zshrc\n", files: map[string]string{"zshrc": "b\n"}},
	})

	summary, err := deploy.Deploy(deploy.Request{All: true, RepoRoot: repoRoot, HomeDir: homeDir})
	require.NoError(t, err)
	assert.Equal(t, []string{"vim", "zsh"}, summary.Programs)
	assert.Equal(t, 2, summary.Applied)
	assert.False(t, summary.Failures())
}

func TestDeployExplicitUnionAll(t *testing.T) {
	repoRoot, homeDir := buildRepo(t, map[string]program{
		"vim": {manifest: "link vimrc .vimrc\n", files: map[string]string{"vimrc": "a\n"}},
		"zsh": {manifest: "link zshrc .zshrc\n", files: map[string]string{"zshrc": "b\n"}},
	})

	summary, err := deploy.Deploy(deploy.Request{
		Programs: []string{"vim"},
		All:      true,
		RepoRoot: repoRoot,
		HomeDir:  homeDir,
	})
	require.NoError(t, err)
	// vim appears once despite being both explicit and discovered.
	assert.Equal(t, []string{"vim", "zsh"}, summary.Programs)
	assert.Equal(t, 2, summary.Applied)
}

// Running twice converges: the second run performs zero mutations and
// reports everything as satisfied.
func TestDeployIdempotent(t *testing.T) {
	repoRoot, homeDir := buildRepo(t, map[string]program{
		"vim": {manifest: "link vimrc .vimrc\ncopy gvimrc .gvimrc\n",
			files: map[string]string{"vimrc": "a\n", "gvimrc": "b\n"}},
	})

	req := deploy.Request{All: true, RepoRoot: repoRoot, HomeDir: homeDir}

	first, err := deploy.Deploy(req)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Applied)

	second, err := deploy.Deploy(req)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Applied)
	assert.Equal(t, 2, second.Satisfied)
	assert.False(t, second.Failures())
}

// A program whose manifest is missing aborts that program only.
func TestDeployProgramIsolation(t *testing.T) {
	repoRoot, homeDir := buildRepo(t, map[string]program{
		"vim":    {manifest: "link vimrc .vimrc\n", files: map[string]string{"vimrc": "a\n"}},
		"broken": {files: map[string]string{"stuff": "x\n"}},
	})

	summary, err := deploy.Deploy(deploy.Request{
		Programs: []string{"broken", "vim"},
		RepoRoot: repoRoot,
		HomeDir:  homeDir,
	})
	require.NoError(t, err)

	require.Len(t, summary.ProgramErrors, 1)
	assert.Equal(t, "broken", summary.ProgramErrors[0].Program)
	assert.True(t, errors.IsErrorCode(summary.ProgramErrors[0].Err, errors.ErrManifestNotFound))

	// vim still deployed.
	assert.Equal(t, 1, summary.Applied)
	assert.True(t, summary.Failures())
}

// Skips (diverged copy destinations) are not failures: exit status
// stays clean while the entry is surfaced.
func TestDeploySkipsAreNotFailures(t *testing.T) {
	repoRoot, homeDir := buildRepo(t, map[string]program{
		"git": {manifest: "copy gitconfig .gitconfig\n",
			files: map[string]string{"gitconfig": "[user]\nname = upstream\n"}},
	})
	require.NoError(t, os.WriteFile(
		filepath.Join(homeDir, ".gitconfig"), []byte("[user]\nname = local\n"), 0644))

	summary, err := deploy.Deploy(deploy.Request{All: true, RepoRoot: repoRoot, HomeDir: homeDir})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 0, summary.Failed)
	assert.False(t, summary.Failures())

	// Local file untouched.
	data, err := os.ReadFile(filepath.Join(homeDir, ".gitconfig"))
	require.NoError(t, err)
	assert.Equal(t, "[user]\nname = local\n", string(data))
}

// A diverged link destination fails the entry and the run.
func TestDeployLinkConflictFailsRun(t *testing.T) {
	repoRoot, homeDir := buildRepo(t, map[string]program{
		"vim": {manifest: "link vimrc .vimrc\n", files: map[string]string{"vimrc": "a\n"}},
	})
	require.NoError(t, os.WriteFile(filepath.Join(homeDir, ".vimrc"), []byte("local\n"), 0644))

	summary, err := deploy.Deploy(deploy.Request{All: true, RepoRoot: repoRoot, HomeDir: homeDir})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)
	assert.True(t, summary.Failures())

	data, err := os.ReadFile(filepath.Join(homeDir, ".vimrc"))
	require.NoError(t, err)
	assert.Equal(t, "local\n", string(data))
}

func TestDeployDryRunTouchesNothing(t *testing.T) {
	repoRoot, homeDir := buildRepo(t, map[string]program{
		"vim": {manifest: "link vimrc .vimrc\n", files: map[string]string{"vimrc": "a\n"}},
	})

	summary, err := deploy.Deploy(deploy.Request{
		All:      true,
		RepoRoot: repoRoot,
		HomeDir:  homeDir,
		Options:  actions.Options{DryRun: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Applied)

	_, err = os.Lstat(filepath.Join(homeDir, ".vimrc"))
	assert.True(t, os.IsNotExist(err))
}
