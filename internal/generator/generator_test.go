package generator_test

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfbb/qrterm/internal/encoder"
	"github.com/dfbb/qrterm/internal/generator"
	"github.com/dfbb/qrterm/internal/matrix"
	"github.com/dfbb/qrterm/internal/render"
	"github.com/dfbb/qrterm/internal/sink"
)

// stubEncoder records the level of every call and returns a fixed matrix.
type stubEncoder struct {
	mu     sync.Mutex
	levels []encoder.Level
	m      matrix.Matrix
	err    error
}

func (s *stubEncoder) Encode(_ string, level encoder.Level) (matrix.Matrix, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.levels = append(s.levels, level)
	return s.m, s.err
}

func (s *stubEncoder) last() encoder.Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.levels[len(s.levels)-1]
}

func generate(g *generator.Generator, input string, opts generator.Options) error {
	_, err := g.Generate(input, opts)
	return err
}

func newStub() *stubEncoder {
	return &stubEncoder{m: matrix.Matrix{{true, false}, {false, true}}}
}

func TestSetErrorLevel(t *testing.T) {
	t.Parallel()

	t.Run("default applies when options omit level", func(t *testing.T) {
		t.Parallel()
		stub := newStub()
		g := generator.New(stub, generator.WithSink(sink.Writer(&bytes.Buffer{})))
		assert.Equal(t, generator.DefaultLevel, g.ErrorLevel())

		require.NoError(t, generate(g, "test", generator.Options{}))
		assert.Equal(t, encoder.L, stub.last())

		require.NoError(t, g.SetErrorLevel(encoder.H))
		require.NoError(t, generate(g, "test", generator.Options{}))
		assert.Equal(t, encoder.H, stub.last())
	})

	t.Run("options override the default", func(t *testing.T) {
		t.Parallel()
		stub := newStub()
		g := generator.New(stub, generator.WithLevel(encoder.Q))
		_, err := g.Render("test", generator.Options{Level: encoder.M})
		require.NoError(t, err)
		assert.Equal(t, encoder.M, stub.last())
		assert.Equal(t, encoder.Q, g.ErrorLevel())
	})

	t.Run("invalid level is rejected", func(t *testing.T) {
		t.Parallel()
		g := generator.New(newStub())
		assert.ErrorIs(t, g.SetErrorLevel(0), encoder.ErrInvalidLevel)
		assert.ErrorIs(t, g.SetErrorLevel(encoder.Level(7)), encoder.ErrInvalidLevel)
		assert.Equal(t, generator.DefaultLevel, g.ErrorLevel())
	})
}

func TestGenerate_Delivery(t *testing.T) {
	t.Parallel()

	t.Run("sink receives output with newline", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		g := generator.New(newStub(), generator.WithSink(sink.Writer(&buf)))
		require.NoError(t, generate(g, "test", generator.Options{Small: true}))
		assert.Equal(t, "▄▄▄▄\n█▄▀█\n▀▀▀▀\n", buf.String())
	})

	t.Run("completion handler replaces sink", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		var got string
		g := generator.New(newStub(), generator.WithSink(sink.Writer(&buf)))
		require.NoError(t, generate(g, "test", generator.Options{
			Small: true,
			Done:  func(out string) { got = out },
		}))
		assert.Equal(t, "▄▄▄▄\n█▄▀█\n▀▀▀▀", got)
		assert.Zero(t, buf.Len())
	})
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	t.Run("encoder errors propagate unchanged", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("input too long")
		g := generator.New(&stubEncoder{err: boom})
		_, err := g.Generate("test", generator.Options{Done: func(string) { t.Error("handler must not run") }})
		assert.Same(t, boom, err)
	})

	t.Run("empty matrix", func(t *testing.T) {
		t.Parallel()
		g := generator.New(&stubEncoder{m: matrix.Matrix{}})
		_, err := g.Render("test", generator.Options{})
		assert.ErrorIs(t, err, render.ErrEmptyMatrix)
	})

	t.Run("unknown engine", func(t *testing.T) {
		t.Parallel()
		g := generator.New(newStub(), generator.WithEngine("ascii"))
		_, err := g.Render("test", generator.Options{})
		assert.ErrorIs(t, err, generator.ErrUnknownEngine)
	})
}

func TestGenerate_Test(t *testing.T) {
	t.Parallel()
	for _, name := range encoder.Backends() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			enc, err := encoder.New(name)
			require.NoError(t, err)
			g := generator.New(enc)

			var full, full2, small string
			require.NoError(t, generate(g, "test", generator.Options{Done: func(s string) { full = s }}))
			require.NoError(t, generate(g, "test", generator.Options{Done: func(s string) { full2 = s }}))
			require.NoError(t, generate(g, "test", generator.Options{Small: true, Done: func(s string) { small = s }}))

			assert.Contains(t, full, render.FullLight)
			assert.Contains(t, full, render.FullDark)
			assert.Contains(t, small, render.DarkLight)
			assert.Equal(t, full, full2)

			// Version 1 symbol: the border is 21+3 light cells.
			border := strings.SplitN(full, "\n", 2)[0]
			assert.Equal(t, 24, strings.Count(border, render.FullLight))
			assert.Equal(t, 48, render.Width(border))

			// Explicitly passing the default level matches the implicit default.
			explicit, err := g.Render("test", generator.Options{Level: generator.DefaultLevel})
			require.NoError(t, err)
			assert.Equal(t, full, explicit)
		})
	}
}

func TestBuild_Result(t *testing.T) {
	t.Parallel()
	g := generator.New(nil, generator.WithLevel(encoder.M))
	res, err := g.Build("test", generator.Options{Small: true})
	require.NoError(t, err)
	assert.Equal(t, 21, res.Size)
	assert.Equal(t, encoder.M, res.Level)
	assert.Equal(t, render.Compressed, res.Mode)
	_, lines := render.Bounds(res.Output)
	assert.Equal(t, 12, lines)
}

func TestEngine_QRTerminal(t *testing.T) {
	t.Parallel()
	g := generator.New(nil, generator.WithEngine(generator.EngineQRTerminal))

	full, err := g.Build("test", generator.Options{})
	require.NoError(t, err)
	assert.Equal(t, 21, full.Size)
	assert.Contains(t, full.Output, render.FullLight)
	assert.False(t, strings.HasSuffix(full.Output, "\n"))

	small, err := g.Render("test", generator.Options{Small: true})
	require.NoError(t, err)
	assert.Contains(t, small, render.DarkLight)

	_, err = g.Render(strings.Repeat("x", 4000), generator.Options{Level: encoder.H})
	assert.Error(t, err)
}

func TestParseEngine(t *testing.T) {
	t.Parallel()
	e, err := generator.ParseEngine("")
	require.NoError(t, err)
	assert.Equal(t, generator.EngineNative, e)

	e, err = generator.ParseEngine("QRTerminal")
	require.NoError(t, err)
	assert.Equal(t, generator.EngineQRTerminal, e)

	_, err = generator.ParseEngine("sixel")
	assert.ErrorIs(t, err, generator.ErrUnknownEngine)
}

func TestGenerate_Concurrent(t *testing.T) {
	t.Parallel()
	g := generator.New(newStub())
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = g.SetErrorLevel(encoder.Levels[i%len(encoder.Levels)])
		}()
		go func() {
			defer wg.Done()
			_, err := g.Render("test", generator.Options{})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.True(t, g.ErrorLevel().Valid())
}
