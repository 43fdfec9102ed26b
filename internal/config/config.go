package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/dfbb/qrterm/internal/encoder"
)

type Config struct {
	Level     encoder.Level `yaml:"level" env:"LEVEL"`
	Small     bool          `yaml:"small" env:"SMALL"`
	Backend   string        `yaml:"backend" env:"BACKEND"`
	Engine    string        `yaml:"engine" env:"ENGINE"`
	LogLevel  string        `yaml:"loglevel" env:"LOGLEVEL"`
	HistoryDB string        `yaml:"history_db" env:"HISTORY_DB"` // empty disables history
}

// EnvPrefix prefixes every environment override, e.g. QRTERM_LEVEL=H.
const EnvPrefix = "QRTERM_"

// Defaults returns a Config populated with all default values.
func Defaults() *Config {
	return defaults()
}

func defaults() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Level:     encoder.L,
		Backend:   encoder.BackendRSC,
		Engine:    "native",
		LogLevel:  "warn",
		HistoryDB: filepath.Join(home, ".qrterm", "history.db"),
	}
}

func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Level == 0 {
		cfg.Level = encoder.L
	}
	return cfg, nil
}

// ApplyEnv overrides cfg fields from QRTERM_* environment variables.
func ApplyEnv(cfg *Config) error {
	return env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix})
}

// Save writes cfg to path in YAML format, creating parent directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
