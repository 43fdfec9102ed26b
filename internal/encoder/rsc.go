package encoder

import (
	"fmt"

	"rsc.io/qr"

	"github.com/dfbb/qrterm/internal/matrix"
)

// RSC encodes with rsc.io/qr and reads modules through its flat accessor.
type RSC struct{}

// RSCLevel maps l to the rsc.io/qr level of the same name.
func RSCLevel(l Level) (qr.Level, error) {
	switch l {
	case L:
		return qr.L, nil
	case M:
		return qr.M, nil
	case Q:
		return qr.Q, nil
	case H:
		return qr.H, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrInvalidLevel, l)
}

func (RSC) Encode(text string, level Level) (matrix.Matrix, error) {
	ql, err := RSCLevel(level)
	if err != nil {
		return nil, err
	}
	code, err := qr.Encode(text, ql)
	if err != nil {
		return nil, err
	}
	size := code.Size
	bits := make([]bool, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			bits[y*size+x] = code.Black(x, y)
		}
	}
	return matrix.FromFlat(bits, size)
}
