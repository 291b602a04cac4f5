// Package config builds the immutable configuration used for a whole
// invocation. Values are resolved once, with first-set-wins
// precedence: command-line flags, then the plain dotmanrc file, then
// the XDG TOML defaults file, then built-in defaults. Nothing later in
// the chain ever overrides a value that is already set.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/logging"
	"github.com/arthur-debert/dotman/pkg/paths"
)

// Recognized dotmanrc keys
const (
	KeyConf  = "dotman-conf"
	KeyFiles = "dotman-files"
)

// Config holds everything an invocation needs. Built once, passed
// down, never mutated.
type Config struct {
	// ConfigFile is the plain-text rc file that was consulted.
	ConfigFile string
	// DotfilesRoot is the repository root holding one directory per
	// program.
	DotfilesRoot string
	// HomeDir is where destinations resolve.
	HomeDir string
}

// Flags carries command-line values. Empty string means the flag was
// not given.
type Flags struct {
	ConfigFile   string
	HomeDir      string
	DotfilesRoot string
}

// Load resolves the configuration. Flag values win; the rc file and
// the XDG TOML file only fill what is still unset; built-in defaults
// close the rest.
func Load(flags Flags) (*Config, error) {
	logger := logging.GetLogger("config")

	cfg := &Config{
		ConfigFile:   flags.ConfigFile,
		HomeDir:      flags.HomeDir,
		DotfilesRoot: flags.DotfilesRoot,
	}

	if cfg.ConfigFile == "" {
		cfg.ConfigFile = defaultRCPath()
	}

	if err := loadRCFile(cfg); err != nil {
		return nil, err
	}
	if err := loadTOMLDefaults(cfg); err != nil {
		return nil, err
	}

	if cfg.HomeDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "cannot determine home directory")
		}
		cfg.HomeDir = home
	}
	if cfg.DotfilesRoot == "" {
		cfg.DotfilesRoot = filepath.Join(cfg.HomeDir, ".dotfiles")
	}

	var err error
	if cfg.HomeDir, err = paths.ExpandHome(cfg.HomeDir); err != nil {
		return nil, err
	}
	if cfg.DotfilesRoot, err = paths.ExpandHome(cfg.DotfilesRoot); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("configFile", cfg.ConfigFile).
		Str("dotfilesRoot", cfg.DotfilesRoot).
		Str("homeDir", cfg.HomeDir).
		Msg("configuration resolved")

	return cfg, nil
}

func defaultRCPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dotmanrc"
	}
	return filepath.Join(home, ".dotmanrc")
}

func defaultTOMLPath() string {
	return filepath.Join(xdg.ConfigHome, "dotman", "config.toml")
}
