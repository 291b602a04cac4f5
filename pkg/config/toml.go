package config

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/logging"
)

// tomlDefaults is the shape of $XDG_CONFIG_HOME/dotman/config.toml
type tomlDefaults struct {
	Dotfiles string `toml:"dotfiles"`
	Home     string `toml:"home"`
}

// loadTOMLDefaults fills still-unset values from the XDG config file.
// Sits below the rc file in precedence; a missing file is fine.
func loadTOMLDefaults(cfg *Config) error {
	logger := logging.GetLogger("config.toml")

	path := defaultTOMLPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Trace().Str("path", path).Msg("no toml defaults file")
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot read %q", path)
	}

	var defaults tomlDefaults
	if err := toml.Unmarshal(data, &defaults); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "cannot parse %q", path)
	}

	if cfg.DotfilesRoot == "" && defaults.Dotfiles != "" {
		cfg.DotfilesRoot = defaults.Dotfiles
	}
	if cfg.HomeDir == "" && defaults.Home != "" {
		cfg.HomeDir = defaults.Home
	}

	logger.Debug().Str("path", path).Msg("toml defaults applied")
	return nil
}
