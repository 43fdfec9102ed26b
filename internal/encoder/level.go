package encoder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLevel is returned for anything other than L, M, Q or H.
var ErrInvalidLevel = errors.New("encoder: invalid error correction level")

// Level is a QR error correction level. The zero value means "not set";
// callers fall back to their configured default.
type Level int

const (
	L Level = iota + 1 // ~7% recovery
	M                  // ~15% recovery
	Q                  // ~25% recovery
	H                  // ~30% recovery
)

// Levels lists every valid level from lowest to highest redundancy.
var Levels = []Level{L, M, Q, H}

// ParseLevel parses "L", "M", "Q" or "H", ignoring case and surrounding space.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return L, nil
	case "M":
		return M, nil
	case "Q":
		return Q, nil
	case "H":
		return H, nil
	}
	return 0, fmt.Errorf("%w: %q (want L, M, Q or H)", ErrInvalidLevel, s)
}

// Valid reports whether l is one of L, M, Q, H.
func (l Level) Valid() bool { return l >= L && l <= H }

func (l Level) String() string {
	switch l {
	case L:
		return "L"
	case M:
		return "M"
	case Q:
		return "Q"
	case H:
		return "H"
	case 0:
		return ""
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if l != 0 && !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text leaves the level unset.
func (l *Level) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == "" {
		*l = 0
		return nil
	}
	v, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
