package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotman/pkg/config"
	"github.com/arthur-debert/dotman/pkg/errors"
)

// isolate points HOME and XDG_CONFIG_HOME at fresh temp dirs so real
// user configuration never leaks into tests. xdg caches the
// environment at init, hence the Reload.
func isolate(t *testing.T) (home string) {
	t.Helper()
	home = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	xdg.Reload()
	homedir.Reset()
	t.Cleanup(func() {
		xdg.Reload()
		homedir.Reset()
	})
	return home
}

func TestLoadBuiltinDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := config.Load(config.Flags{})
	require.NoError(t, err)
	assert.Equal(t, home, cfg.HomeDir)
	assert.Equal(t, filepath.Join(home, ".dotfiles"), cfg.DotfilesRoot)
	assert.Equal(t, filepath.Join(home, ".dotmanrc"), cfg.ConfigFile)
}

func TestLoadFlagsWin(t *testing.T) {
	home := isolate(t)
	rc := filepath.Join(home, ".dotmanrc")
	require.NoError(t, os.WriteFile(rc, []byte("dotman-files = /from/rcfile\n"), 0644))

	cfg, err := config.Load(config.Flags{DotfilesRoot: "/from/flag"})
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.DotfilesRoot)
}

func TestLoadRCFileFillsUnset(t *testing.T) {
	home := isolate(t)
	rc := filepath.Join(home, ".dotmanrc")
	require.NoError(t, os.WriteFile(rc, []byte(
		"# my dotman config\ndotman-files = /from/rcfile\n"), 0644))

	cfg, err := config.Load(config.Flags{})
	require.NoError(t, err)
	assert.Equal(t, "/from/rcfile", cfg.DotfilesRoot)
}

func TestLoadExplicitConfigFlag(t *testing.T) {
	home := isolate(t)
	rc := filepath.Join(home, "custom.conf")
	require.NoError(t, os.WriteFile(rc, []byte("dotman-files = /custom/root\n"), 0644))

	cfg, err := config.Load(config.Flags{ConfigFile: rc})
	require.NoError(t, err)
	assert.Equal(t, rc, cfg.ConfigFile)
	assert.Equal(t, "/custom/root", cfg.DotfilesRoot)
}

func TestLoadFirstKeyWins(t *testing.T) {
	home := isolate(t)
	rc := filepath.Join(home, ".dotmanrc")
	require.NoError(t, os.WriteFile(rc, []byte(
		"dotman-files = /first\ndotman-files = /second\n"), 0644))

	cfg, err := config.Load(config.Flags{})
	require.NoError(t, err)
	assert.Equal(t, "/first", cfg.DotfilesRoot)
}

func TestLoadUnknownKeyIgnored(t *testing.T) {
	home := isolate(t)
	rc := filepath.Join(home, ".dotmanrc")
	require.NoError(t, os.WriteFile(rc, []byte(
		"shiny-new-key = whatever\ndotman-files = /root\n"), 0644))

	cfg, err := config.Load(config.Flags{})
	require.NoError(t, err)
	assert.Equal(t, "/root", cfg.DotfilesRoot)
}

func TestLoadMalformedLine(t *testing.T) {
	home := isolate(t)
	rc := filepath.Join(home, ".dotmanrc")
	require.NoError(t, os.WriteFile(rc, []byte("this is not a directive\n"), 0644))

	_, err := config.Load(config.Flags{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoadTOMLDefaultsBelowRC(t *testing.T) {
	home := isolate(t)
	tomlDir := filepath.Join(home, ".config", "dotman")
	require.NoError(t, os.MkdirAll(tomlDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tomlDir, "config.toml"),
		[]byte("dotfiles = \"/from/toml\"\n"), 0644))

	// TOML alone fills the value.
	cfg, err := config.Load(config.Flags{})
	require.NoError(t, err)
	assert.Equal(t, "/from/toml", cfg.DotfilesRoot)

	// The rc file outranks it.
	rc := filepath.Join(home, ".dotmanrc")
	require.NoError(t, os.WriteFile(rc, []byte("dotman-files = /from/rcfile\n"), 0644))
	cfg, err = config.Load(config.Flags{})
	require.NoError(t, err)
	assert.Equal(t, "/from/rcfile", cfg.DotfilesRoot)
}

func TestLoadTildeExpansion(t *testing.T) {
	home := isolate(t)
	rc := filepath.Join(home, ".dotmanrc")
	require.NoError(t, os.WriteFile(rc, []byte("dotman-files = ~/dotfiles\n"), 0644))

	cfg, err := config.Load(config.Flags{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "dotfiles"), cfg.DotfilesRoot)
}
