package generator

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/mdp/qrterminal/v3"
	"rsc.io/qr"

	"github.com/dfbb/qrterm/internal/encoder"
	"github.com/dfbb/qrterm/internal/render"
)

// ErrUnknownEngine is returned for an unrecognised engine name.
var ErrUnknownEngine = errors.New("generator: unknown engine")

// Engine selects who draws the terminal text.
type Engine string

const (
	// EngineNative encodes with the configured encoder and draws with package render.
	EngineNative Engine = "native"
	// EngineQRTerminal hands drawing to github.com/mdp/qrterminal, which
	// always encodes with rsc.io/qr.
	EngineQRTerminal Engine = "qrterminal"
)

// Engines lists the supported engines.
var Engines = []Engine{EngineNative, EngineQRTerminal}

// ParseEngine validates an engine name. Empty selects EngineNative.
func ParseEngine(s string) (Engine, error) {
	switch e := Engine(strings.ToLower(strings.TrimSpace(s))); e {
	case "":
		return EngineNative, nil
	case EngineNative, EngineQRTerminal:
		return e, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEngine, s)
}

// delegate renders through qrterminal using the same glyph palette as the
// native renderer.
func delegate(input string, level encoder.Level, mode render.Mode) (string, int, error) {
	ql, err := encoder.RSCLevel(level)
	if err != nil {
		return "", 0, err
	}
	// qrterminal discards encode errors, so surface them first.
	code, err := qr.Encode(input, ql)
	if err != nil {
		return "", 0, err
	}

	var buf bytes.Buffer
	cfg := qrterminal.Config{
		Level:     ql,
		Writer:    &buf,
		QuietZone: 1,
	}
	if mode == render.Compressed {
		cfg.HalfBlocks = true
		cfg.BlackChar = render.DarkDark
		cfg.WhiteChar = render.LightLight
		cfg.BlackWhiteChar = render.DarkLight
		cfg.WhiteBlackChar = render.LightDark
	} else {
		cfg.BlackChar = render.FullDark
		cfg.WhiteChar = render.FullLight
	}
	qrterminal.GenerateWithConfig(input, cfg)
	return strings.TrimSuffix(buf.String(), "\n"), code.Size, nil
}
