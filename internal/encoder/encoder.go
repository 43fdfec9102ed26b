// Package encoder wraps third-party QR encoders behind a single interface
// that yields a module matrix. Encoding itself is left entirely to the
// libraries; this package only maps levels and adapts their output.
package encoder

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dfbb/qrterm/internal/matrix"
)

// ErrUnknownBackend is returned by New for an unregistered backend name.
var ErrUnknownBackend = errors.New("encoder: unknown backend")

// Encoder turns text into a QR module matrix at the given level.
// Errors from the underlying library are returned unchanged.
type Encoder interface {
	Encode(text string, level Level) (matrix.Matrix, error)
}

// Backend names.
const (
	BackendRSC      = "rsc"
	BackendGoQRCode = "goqrcode"
)

var backends = map[string]func() Encoder{
	BackendRSC:      func() Encoder { return RSC{} },
	BackendGoQRCode: func() Encoder { return GoQRCode{} },
}

// New returns the encoder registered under name. An empty name selects rsc.
func New(name string) (Encoder, error) {
	if name == "" {
		name = BackendRSC
	}
	mk, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %v)", ErrUnknownBackend, name, Backends())
	}
	return mk(), nil
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
