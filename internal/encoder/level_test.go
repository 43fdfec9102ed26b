package encoder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfbb/qrterm/internal/encoder"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want encoder.Level
	}{
		{"L", encoder.L},
		{"m", encoder.M},
		{" q ", encoder.Q},
		{"H", encoder.H},
	}
	for _, c := range cases {
		got, err := encoder.ParseLevel(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	for _, bad := range []string{"", "X", "low", "LM"} {
		_, err := encoder.ParseLevel(bad)
		assert.ErrorIs(t, err, encoder.ErrInvalidLevel, bad)
	}
}

func TestLevel_Text(t *testing.T) {
	t.Parallel()
	for _, l := range encoder.Levels {
		assert.True(t, l.Valid())
		text, err := l.MarshalText()
		require.NoError(t, err)

		var back encoder.Level
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, l, back)
	}

	var unset encoder.Level
	assert.False(t, unset.Valid())
	assert.Equal(t, "", unset.String())
	require.NoError(t, unset.UnmarshalText(nil))
	assert.Equal(t, encoder.Level(0), unset)

	_, err := encoder.Level(9).MarshalText()
	assert.ErrorIs(t, err, encoder.ErrInvalidLevel)
	assert.ErrorIs(t, unset.UnmarshalText([]byte("Z")), encoder.ErrInvalidLevel)
}
