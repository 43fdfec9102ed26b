package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dfbb/qrterm/internal/encoder"
	"github.com/dfbb/qrterm/internal/generator"
)

const checkProbe = "https://example.com/qrterm-check"

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [backend|engine]",
		Short: "Verify that every encoder backend and engine can render a probe code",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	type entry struct {
		name string
		gen  func() (*generator.Generator, error)
	}

	var entries []entry
	for _, name := range encoder.Backends() {
		entries = append(entries, entry{name, func() (*generator.Generator, error) {
			enc, err := encoder.New(name)
			if err != nil {
				return nil, err
			}
			return generator.New(enc), nil
		}})
	}
	entries = append(entries, entry{string(generator.EngineQRTerminal), func() (*generator.Generator, error) {
		return generator.New(nil, generator.WithEngine(generator.EngineQRTerminal)), nil
	}})

	filter := ""
	if len(args) > 0 {
		filter = args[0]
	}

	out := cmd.OutOrStdout()
	ok, failed := 0, 0
	for _, e := range entries {
		if filter != "" && e.name != filter {
			continue
		}
		detail, err := checkEntry(e.gen)
		if err != nil {
			fmt.Fprintf(out, "  %s %-12s failed     (%v)\n", styleError.Render(iconError), e.name, err)
			failed++
		} else {
			fmt.Fprintf(out, "  %s %-12s ok         (%s)\n", styleSuccess.Render(iconSuccess), e.name, detail)
			ok++
		}
	}
	if ok+failed == 0 {
		return fmt.Errorf("unknown backend or engine: %s", filter)
	}
	fmt.Fprintf(out, "\n%d ok, %d failed\n", ok, failed)
	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	return nil
}

// checkEntry renders the probe in both modes at every level.
func checkEntry(mk func() (*generator.Generator, error)) (string, error) {
	g, err := mk()
	if err != nil {
		return "", err
	}
	var size int
	for _, level := range encoder.Levels {
		for _, small := range []bool{false, true} {
			res, err := g.Build(checkProbe, generator.Options{Small: small, Level: level})
			if err != nil {
				return "", fmt.Errorf("level %s: %w", level, err)
			}
			if res.Output == "" {
				return "", fmt.Errorf("level %s: empty output", level)
			}
			if level == encoder.L && !small {
				size = res.Size
			}
		}
	}
	return fmt.Sprintf("%dx%d at L, all levels and modes", size, size), nil
}
