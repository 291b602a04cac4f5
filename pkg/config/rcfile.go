package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/logging"
)

// loadRCFile reads the plain `key = value` rc file into cfg, filling
// only values that are still unset. A missing file is not an error;
// unknown keys are warned about and ignored. Within the file itself
// the first occurrence of a key wins.
func loadRCFile(cfg *Config) error {
	logger := logging.GetLogger("config.rcfile")

	file, err := os.Open(cfg.ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", cfg.ConfigFile).Msg("no rc file")
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot open config file %q", cfg.ConfigFile)
	}
	defer func() { _ = file.Close() }()

	seen := make(map[string]bool)
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return errors.Newf(errors.ErrConfigParse,
				"%s:%d: expected `key = value`, got %q", cfg.ConfigFile, lineNo, line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if seen[key] {
			logger.Warn().Str("key", key).Int("line", lineNo).Msg("duplicate key ignored")
			continue
		}
		seen[key] = true

		switch key {
		case KeyConf:
			// Informational: records where the config lives. The file
			// is already open, so this never re-points the load.
			logger.Trace().Str("value", value).Msg("dotman-conf noted")
		case KeyFiles:
			if cfg.DotfilesRoot == "" {
				cfg.DotfilesRoot = value
			}
		default:
			logger.Warn().
				Str("key", key).
				Int("line", lineNo).
				Str("file", cfg.ConfigFile).
				Msg("unknown configuration key ignored")
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %q", cfg.ConfigFile)
	}
	return nil
}
