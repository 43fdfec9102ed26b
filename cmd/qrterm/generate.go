package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dfbb/qrterm/internal/config"
	"github.com/dfbb/qrterm/internal/encoder"
	"github.com/dfbb/qrterm/internal/generator"
	"github.com/dfbb/qrterm/internal/history"
	"github.com/dfbb/qrterm/internal/render"
	"github.com/dfbb/qrterm/internal/sink"
)

type generateFlags struct {
	small     bool
	level     string
	backend   string
	engine    string
	out       string
	noHistory bool
}

func (f *generateFlags) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.small, "small", "s", false, "half-height rendering with half blocks")
	cmd.Flags().StringVarP(&f.level, "level", "l", "", "error correction level L|M|Q|H (default from config)")
	cmd.Flags().StringVar(&f.backend, "backend", "", "QR encoder: "+strings.Join(encoder.Backends(), ", "))
	cmd.Flags().StringVar(&f.engine, "engine", "", "renderer: native, qrterminal")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "write the code to a file instead of stdout")
	cmd.Flags().BoolVar(&f.noHistory, "no-history", false, "do not record this code in the history database")
}

func newGenerateCmd() *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate [text...]",
		Short: "Print text as a QR code (reads stdin when no text is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && inputIsTerminal(cmd.InOrStdin()) {
				return cmd.Help()
			}
			return runGenerate(cmd, args, f)
		},
	}
	f.bind(cmd)
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, f *generateFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	input, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	g, opts, err := newGenerator(cmd, cfg, f)
	if err != nil {
		return err
	}
	res, err := g.Generate(input, opts)
	if err != nil {
		return err
	}
	if f.out != "" {
		slog.Info("qr code written", "path", f.out, "size", res.Size)
	} else {
		warnIfTooLarge(res)
	}

	if !f.noHistory && cfg.HistoryDB != "" {
		recordHistory(cfg.HistoryDB, input, res)
	}
	return nil
}

// newGenerator resolves flags over config into a Generator and per-call options.
func newGenerator(cmd *cobra.Command, cfg *config.Config, f *generateFlags) (*generator.Generator, generator.Options, error) {
	var opts generator.Options

	backend := cfg.Backend
	if f.backend != "" {
		backend = f.backend
	}
	enc, err := encoder.New(backend)
	if err != nil {
		return nil, opts, err
	}

	engineName := cfg.Engine
	if f.engine != "" {
		engineName = f.engine
	}
	engine, err := generator.ParseEngine(engineName)
	if err != nil {
		return nil, opts, err
	}

	out := sink.Writer(cmd.OutOrStdout())
	if f.out != "" {
		out = sink.File(f.out)
	}

	g := generator.New(enc,
		generator.WithLevel(cfg.Level),
		generator.WithEngine(engine),
		generator.WithSink(out),
		generator.WithLogger(slog.Default()),
	)

	opts.Small = cfg.Small
	if cmd.Flags().Changed("small") {
		opts.Small = f.small
	}
	if f.level != "" {
		if opts.Level, err = encoder.ParseLevel(f.level); err != nil {
			return nil, opts, err
		}
	}
	return g, opts, nil
}

// readInput joins args with spaces, or reads r when there are none.
func readInput(r io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	input := strings.TrimRight(string(data), "\r\n")
	if input == "" {
		return "", errors.New("nothing to encode: pass text as arguments or pipe it on stdin")
	}
	return input, nil
}

// inputIsTerminal reports whether r is an interactive terminal, where reading
// until EOF would block on the user.
func inputIsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// warnIfTooLarge logs when the code will not fit the terminal on stdout.
func warnIfTooLarge(res generator.Result) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return
	}
	cols, lines := render.Bounds(res.Output)
	if cols <= width && lines <= height {
		return
	}
	args := []any{"cols", cols, "lines", lines, "term_cols", width, "term_lines", height}
	if res.Mode == render.Full {
		slog.Warn("qr code is larger than the terminal, try --small", args...)
	} else {
		slog.Warn("qr code is larger than the terminal", args...)
	}
}

func recordHistory(dbPath, input string, res generator.Result) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		slog.Warn("history: creating data dir", "err", err)
		return
	}
	h, err := history.New(dbPath)
	if err != nil {
		slog.Warn("history unavailable", "err", err)
		return
	}
	defer h.Close()
	err = h.Record(history.Entry{
		Input: input,
		Level: res.Level.String(),
		Mode:  res.Mode.String(),
		Size:  res.Size,
	})
	if err != nil {
		slog.Warn("history: record failed", "err", err)
	}
}
