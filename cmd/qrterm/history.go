package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dfbb/qrterm/internal/history"
)

func newHistoryCmd() *cobra.Command {
	var (
		limit int
		wipe  bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently generated codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, limit, wipe)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries to show")
	cmd.Flags().BoolVar(&wipe, "clear", false, "delete all entries")
	return cmd
}

func runHistory(cmd *cobra.Command, limit int, wipe bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if cfg.HistoryDB == "" {
		fmt.Fprintln(out, "History is disabled (history_db is empty).")
		return nil
	}
	if _, err := os.Stat(cfg.HistoryDB); os.IsNotExist(err) {
		fmt.Fprintln(out, "No history yet.")
		return nil
	}

	h, err := history.New(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer h.Close()

	if wipe {
		if err := h.Clear(); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		fmt.Fprintln(out, "History cleared.")
		return nil
	}

	entries, err := h.Recent(limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No history yet.")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s  %s %s %s  %s\n",
			styleDim.Render(e.Time.Local().Format("2006-01-02 15:04:05")),
			styleNumber.Render(e.Level),
			styleDim.Render(fmt.Sprintf("%-5s", e.Mode)),
			styleDim.Render(fmt.Sprintf("%3dx%-3d", e.Size, e.Size)),
			styleValue.Render(oneLine(e.Input, 60)),
		)
	}
	return nil
}

// oneLine flattens s to a single line of at most n runes.
func oneLine(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
