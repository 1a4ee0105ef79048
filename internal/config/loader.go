package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// configPathEnv names the variable that points at an explicit config file.
const configPathEnv = "CONFIG_PATH"

// searchPaths are tried in order when CONFIG_PATH is unset.
var searchPaths = []string{"./config.yaml", "/etc/signphon/config.yaml"}

// Load builds the service configuration. Values come from, in order of
// precedence, environment variables, the config file, and env-default tags.
// An explicit CONFIG_PATH must exist; otherwise the first existing search
// path is used, and with none the config is read from the environment alone.
func Load() (*Config, error) {
	var cfg Config

	path, err := findConfigFile(os.Getenv(configPathEnv), searchPaths)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid: %w", err)
	}
	return &cfg, nil
}

// findConfigFile returns the file to read, or "" when only the environment
// should be used. A missing explicit path is an error; missing search paths
// are skipped.
func findConfigFile(explicit string, candidates []string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("%s=%s: %w", configPathEnv, explicit, err)
		}
		return explicit, nil
	}

	for _, p := range candidates {
		_, err := os.Stat(p)
		switch {
		case err == nil:
			return p, nil
		case errors.Is(err, fs.ErrNotExist):
			continue
		default:
			return "", fmt.Errorf("stat %s: %w", p, err)
		}
	}
	return "", nil
}
