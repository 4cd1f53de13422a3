package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load builds the configuration from a YAML file overlaid with environment
// variables; env-default tags fill anything left unset. A missing file is
// only an error when CONFIG_PATH named it explicitly; otherwise the process
// runs on ENV and defaults alone.
func Load() (*Config, error) {
	var cfg Config

	path, explicit := configPath()

	if _, err := os.Stat(path); err != nil {
		if explicit {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func configPath() (path string, explicit bool) {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p, true
	}
	return defaultConfigPath, false
}
