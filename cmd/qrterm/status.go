package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dfbb/qrterm/internal/config"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the effective configuration",
		RunE:  runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	path := configPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		path += " (not found, using defaults)"
	}

	printTitle(out, "qrterm "+Version)
	printKeyValue(out, "config", path)
	printKeyValue(out, "level", cfg.Level.String())
	printKeyValue(out, "small", strconv.FormatBool(cfg.Small))
	printKeyValue(out, "backend", cfg.Backend)
	printKeyValue(out, "engine", cfg.Engine)
	printKeyValue(out, "loglevel", cfg.LogLevel)
	history := cfg.HistoryDB
	if history == "" {
		history = "disabled"
	}
	printKeyValue(out, "history", history)

	fd := int(os.Stdout.Fd())
	if w, h, err := term.GetSize(fd); err == nil && term.IsTerminal(fd) {
		printKeyValue(out, "terminal", fmt.Sprintf("%dx%d", w, h))
	} else {
		printKeyValue(out, "terminal", styleWarning.Render("not a terminal"))
	}

	for _, name := range []string{"LEVEL", "SMALL", "BACKEND", "ENGINE", "LOGLEVEL", "HISTORY_DB"} {
		if v, ok := os.LookupEnv(config.EnvPrefix + name); ok {
			printKeyValue(out, "env", styleDim.Render(config.EnvPrefix+name+"="+v))
		}
	}
	return nil
}
