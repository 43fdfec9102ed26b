package encoder

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/dfbb/qrterm/internal/matrix"
)

// GoQRCode encodes with github.com/skip2/go-qrcode and adapts its nested bitmap.
type GoQRCode struct{}

func recoveryLevel(l Level) (qrcode.RecoveryLevel, error) {
	switch l {
	case L:
		return qrcode.Low, nil
	case M:
		return qrcode.Medium, nil
	case Q:
		return qrcode.High, nil
	case H:
		return qrcode.Highest, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrInvalidLevel, l)
}

func (GoQRCode) Encode(text string, level Level) (matrix.Matrix, error) {
	rl, err := recoveryLevel(level)
	if err != nil {
		return nil, err
	}
	code, err := qrcode.New(text, rl)
	if err != nil {
		return nil, err
	}
	// The renderer draws its own quiet zone.
	code.DisableBorder = true
	return matrix.FromGrid(code.Bitmap())
}
