package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagVerbose bool
)

func newRootCmd() *cobra.Command {
	gen := &generateFlags{}
	root := &cobra.Command{
		Use:   "qrterm [text]",
		Short: "Render QR codes in the terminal",
		Long: `qrterm encodes text as a QR code and prints it with colored blocks.
Use --small for a half-height rendering built from Unicode half blocks.
Without arguments the text is read from stdin.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			level := cfg.LogLevel
			if flagVerbose {
				level = "debug"
			}
			slog.SetDefault(slog.New(newLogger(cmd.ErrOrStderr(), level)))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && inputIsTerminal(cmd.InOrStdin()) {
				return cmd.Help()
			}
			return runGenerate(cmd, args, gen)
		},
	}
	gen.bind(root)

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ~/.qrterm/config.yaml)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newLevelCmd())
	root.AddCommand(newHistoryCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newResetCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
