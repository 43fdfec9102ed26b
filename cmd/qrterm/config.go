package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dfbb/qrterm/internal/config"
)

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".qrterm", "config.yaml")
}

// loadConfig reads the config file, falling back to defaults when it does not
// exist, then applies QRTERM_* environment overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath())
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = config.Defaults()
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}

// updateConfig edits the raw YAML document so keys the caller does not touch
// are preserved as written.
func updateConfig(path string, fn func(map[string]any)) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	raw := make(map[string]any)
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		if raw == nil {
			raw = make(map[string]any)
		}
	}
	fn(raw)
	data, err := yaml.Marshal(raw)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
