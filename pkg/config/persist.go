package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/logging"
)

// SaveDotfilesRoot records root as dotman-files in the rc file, so
// later invocations find the repository without repeating the flag.
// The root is configured once: an existing dotman-files entry is left
// alone, since first-set-wins would render an appended duplicate dead
// anyway. Everything else in the file is preserved.
func SaveDotfilesRoot(cfg *Config, root string) error {
	logger := logging.GetLogger("config.persist")

	existing, err := recordedDotfilesRoot(cfg.ConfigFile)
	if err != nil {
		return err
	}
	if existing != "" {
		if existing != root {
			logger.Warn().
				Str("file", cfg.ConfigFile).
				Str("recorded", existing).
				Str("root", root).
				Msg("rc file already records a different repository root, not overwriting")
		}
		return nil
	}

	file, err := os.OpenFile(cfg.ConfigFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot open config file %q", cfg.ConfigFile)
	}
	defer func() { _ = file.Close() }()

	if _, err := fmt.Fprintf(file, "%s = %s\n", KeyFiles, root); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot write config file %q", cfg.ConfigFile)
	}

	logger.Info().Str("file", cfg.ConfigFile).Str("root", root).Msg("repository root recorded")
	return nil
}

// recordedDotfilesRoot returns the first dotman-files value in the rc
// file, or "" when the file or the key is absent.
func recordedDotfilesRoot(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, errors.ErrConfigLoad, "cannot open config file %q", path)
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		if strings.TrimSpace(key) == KeyFiles {
			return strings.TrimSpace(value), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %q", path)
	}
	return "", nil
}
