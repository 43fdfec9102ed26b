package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default level and delete the history database",
		Args:  cobra.NoArgs,
		RunE:  runReset,
	}
}

func runReset(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cfgPath := configPath()
	if _, err := os.Stat(cfgPath); err == nil {
		if err := updateConfig(cfgPath, func(raw map[string]any) {
			delete(raw, "level")
		}); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not update config: %v\n", err)
		} else {
			fmt.Fprintln(out, "Cleared default level in config.")
		}
	}

	if cfg.HistoryDB == "" {
		return nil
	}
	// WAL mode leaves side files next to the database.
	for _, suffix := range []string{"", "-wal", "-shm"} {
		path := cfg.HistoryDB + suffix
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("removing history: %w", err)
		}
		fmt.Fprintf(out, "Deleted %s\n", path)
	}
	return nil
}
