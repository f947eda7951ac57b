package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/kweiler/jsonheat/pkg/errors"
)

// Config holds optional defaults read from the TOML config file. Zero
// values mean "unset" and leave the built-in defaults in place.
type Config struct {
	Unit      string  `toml:"unit"`
	Colors    string  `toml:"colors"`
	Threshold float64 `toml:"threshold"`
	Width     int     `toml:"width"`
}

// loadConfig reads the config file at path, or the discovered default
// location when path is empty. A missing discovered file is not an error;
// a missing or unparsable explicit file is.
func loadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
		}
		return cfg, nil
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}

// defaultConfigPath returns the config location using the XDG standard
// (~/.config/jsonheat/config.toml).
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
