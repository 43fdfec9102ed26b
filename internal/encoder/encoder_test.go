package encoder_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfbb/qrterm/internal/encoder"
	"github.com/dfbb/qrterm/internal/matrix"
)

func TestNew(t *testing.T) {
	t.Parallel()

	enc, err := encoder.New("")
	require.NoError(t, err)
	assert.IsType(t, encoder.RSC{}, enc)

	enc, err = encoder.New(encoder.BackendGoQRCode)
	require.NoError(t, err)
	assert.IsType(t, encoder.GoQRCode{}, enc)

	_, err = encoder.New("zxing")
	assert.ErrorIs(t, err, encoder.ErrUnknownBackend)

	assert.Equal(t, []string{"goqrcode", "rsc"}, encoder.Backends())
}

// assertFinder checks the 7x7 finder pattern in the top-left corner.
func assertFinder(t *testing.T, m matrix.Matrix) {
	t.Helper()
	for r := 0; r < 7; r++ {
		for c := 0; c < 7; c++ {
			want := r == 0 || r == 6 || c == 0 || c == 6 || (r >= 2 && r <= 4 && c >= 2 && c <= 4)
			assert.Equal(t, want, m.At(r, c), "finder module (%d,%d)", r, c)
		}
	}
	// Separator column right of the finder is light.
	for r := 0; r < 7; r++ {
		assert.False(t, m.At(r, 7), "separator module (%d,7)", r)
	}
}

func TestBackends_Encode(t *testing.T) {
	t.Parallel()
	for _, name := range encoder.Backends() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			enc, err := encoder.New(name)
			require.NoError(t, err)

			for _, level := range encoder.Levels {
				m, err := enc.Encode("test", level)
				require.NoError(t, err, "level %s", level)
				require.NoError(t, m.Validate())
				assert.Equal(t, 21, m.Size(), "level %s: version 1 symbol", level)
				assertFinder(t, m)
			}
		})
	}
}

func TestBackends_Deterministic(t *testing.T) {
	t.Parallel()
	for _, name := range encoder.Backends() {
		enc, err := encoder.New(name)
		require.NoError(t, err)
		a, err := enc.Encode("https://example.com/qr", encoder.M)
		require.NoError(t, err)
		b, err := enc.Encode("https://example.com/qr", encoder.M)
		require.NoError(t, err)
		assert.Equal(t, a, b, name)
	}
}

func TestBackends_Errors(t *testing.T) {
	t.Parallel()
	for _, name := range encoder.Backends() {
		enc, err := encoder.New(name)
		require.NoError(t, err)

		_, err = enc.Encode("test", 0)
		assert.ErrorIs(t, err, encoder.ErrInvalidLevel, name)

		_, err = enc.Encode(strings.Repeat("x", 4000), encoder.H)
		assert.Error(t, err, "%s: payload exceeds version 40", name)
	}
}
