package conf

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// UserConfig represents user-specific configuration for the CLI.
type UserConfig struct {
	// Repositories are directories holding packaged dependencies.
	Repositories []string `json:"repositories,omitempty"`
}

func defaultUserConfigPath() (string, error) {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "locating home directory")
	}
	return filepath.Join(homedir, ".cmf", "config"), nil
}

// ReadDefaultUserConfig reads the configuration from ~/.cmf/config.
func ReadDefaultUserConfig() (UserConfig, error) {
	path, err := defaultUserConfigPath()
	if err != nil {
		return UserConfig{}, err
	}
	return ReadUserConfig(path)
}

// ReadUserConfig reads the configuration at path.
func ReadUserConfig(path string) (UserConfig, error) {
	var cfg UserConfig

	buf, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, ErrMissing
	} else if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}

	if err := json.Unmarshal(buf, &cfg); err != nil {
		return cfg, errors.Wrap(err, "unmarshal config")
	}
	return cfg, nil
}

// WriteUserConfig writes the configuration to path, creating parent
// directories as needed.
func WriteUserConfig(path string, cfg UserConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "mkdir")
	}

	buf, err := json.MarshalIndent(cfg, "", "\t")
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}

	if err := os.WriteFile(path, buf, 0600); err != nil {
		return errors.Wrap(err, "write config")
	}
	return nil
}
