// Package generator is the caller-facing entry point: it encodes text with a
// pluggable QR encoder, renders the module matrix for the terminal and hands
// the result to a sink or completion handler.
//
// The default error correction level belongs to the Generator rather than to
// the process. Per-call Options may override it.
package generator

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/dfbb/qrterm/internal/encoder"
	"github.com/dfbb/qrterm/internal/render"
	"github.com/dfbb/qrterm/internal/sink"
)

// DefaultLevel is used until SetErrorLevel is called.
const DefaultLevel = encoder.L

// Options controls a single Generate call.
type Options struct {
	// Small selects compressed half-block rendering.
	Small bool
	// Level overrides the generator default when set.
	Level encoder.Level
	// Done, if set, receives the output instead of the generator's sink.
	Done func(output string)
}

// Mode returns the render mode Options selects.
func (o Options) Mode() render.Mode {
	if o.Small {
		return render.Compressed
	}
	return render.Full
}

// Result is one rendered code.
type Result struct {
	Output string
	Size   int
	Level  encoder.Level
	Mode   render.Mode
}

// Generator renders QR codes. It is safe for concurrent use.
type Generator struct {
	enc    encoder.Encoder
	engine Engine
	sink   sink.Sink
	logger *slog.Logger

	// level is read and written without ordering: the last SetErrorLevel wins
	// and in-flight calls may observe either value.
	level atomic.Int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithLevel sets the initial default level. Invalid levels are ignored.
func WithLevel(l encoder.Level) Option {
	return func(g *Generator) {
		if l.Valid() {
			g.level.Store(int64(l))
		}
	}
}

// WithSink replaces the default stdout sink.
func WithSink(s sink.Sink) Option {
	return func(g *Generator) { g.sink = s }
}

// WithEngine selects the text rendering engine.
func WithEngine(e Engine) Option {
	return func(g *Generator) { g.engine = e }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// New returns a Generator backed by enc. A nil enc selects rsc.io/qr.
func New(enc encoder.Encoder, opts ...Option) *Generator {
	if enc == nil {
		enc = encoder.RSC{}
	}
	g := &Generator{
		enc:    enc,
		engine: EngineNative,
		sink:   sink.Stdout(),
		logger: slog.Default(),
	}
	g.level.Store(int64(DefaultLevel))
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SetErrorLevel changes the default level for later calls that do not set
// Options.Level.
func (g *Generator) SetErrorLevel(l encoder.Level) error {
	if !l.Valid() {
		return fmt.Errorf("%w: %v", encoder.ErrInvalidLevel, l)
	}
	g.level.Store(int64(l))
	return nil
}

// ErrorLevel returns the current default level.
func (g *Generator) ErrorLevel() encoder.Level {
	return encoder.Level(g.level.Load())
}

// Build encodes input and renders it. It performs no output.
func (g *Generator) Build(input string, opts Options) (Result, error) {
	level := opts.Level
	if level == 0 {
		level = g.ErrorLevel()
	}
	mode := opts.Mode()

	var (
		out  string
		size int
		err  error
	)
	switch g.engine {
	case EngineQRTerminal:
		out, size, err = delegate(input, level, mode)
	case EngineNative, "":
		out, size, err = g.native(input, level, mode)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownEngine, g.engine)
	}
	if err != nil {
		return Result{}, err
	}

	g.logger.Debug("qr rendered", "engine", g.engine, "level", level, "mode", mode, "size", size, "bytes", len(input))
	return Result{Output: out, Size: size, Level: level, Mode: mode}, nil
}

// Render is Build without the metadata.
func (g *Generator) Render(input string, opts Options) (string, error) {
	res, err := g.Build(input, opts)
	if err != nil {
		return "", err
	}
	return res.Output, nil
}

// Generate renders input and delivers it to opts.Done when set, otherwise to
// the generator's sink. The returned Result describes what was delivered.
func (g *Generator) Generate(input string, opts Options) (Result, error) {
	res, err := g.Build(input, opts)
	if err != nil {
		return Result{}, err
	}
	if opts.Done != nil {
		opts.Done(res.Output)
		return res, nil
	}
	if err := g.sink.Deliver(res.Output); err != nil {
		return Result{}, fmt.Errorf("deliver to %s: %w", g.sink.Name(), err)
	}
	return res, nil
}

func (g *Generator) native(input string, level encoder.Level, mode render.Mode) (string, int, error) {
	m, err := g.enc.Encode(input, level)
	if err != nil {
		return "", 0, err
	}
	out, err := render.Render(m, mode)
	if err != nil {
		return "", 0, err
	}
	return out, m.Size(), nil
}
