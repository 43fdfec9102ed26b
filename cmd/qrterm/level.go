package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dfbb/qrterm/internal/config"
	"github.com/dfbb/qrterm/internal/encoder"
)

func newLevelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "level [L|M|Q|H]",
		Short: "Show or set the default error correction level",
		Long: `Without an argument, print the effective default level.
With one, persist it to the config file for later runs.

  L  ~7% of codewords can be restored
  M  ~15%
  Q  ~25%
  H  ~30%`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLevel,
	}
}

func runLevel(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, cfg.Level)
		return nil
	}

	level, err := encoder.ParseLevel(args[0])
	if err != nil {
		return err
	}
	path := configPath()
	if err := saveLevel(path, level); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintf(out, "Default level set to %s (saved to %s)\n", level, path)
	return nil
}

// saveLevel writes a complete default config when path does not exist yet,
// otherwise it rewrites only the level key.
func saveLevel(path string, level encoder.Level) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := config.Defaults()
		cfg.Level = level
		return config.Save(path, cfg)
	}
	return updateConfig(path, func(raw map[string]any) {
		raw["level"] = level.String()
	})
}
