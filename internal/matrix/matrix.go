package matrix

import (
	"errors"
	"fmt"
)

// ErrMalformedMatrix is returned when encoder output cannot form a square matrix.
var ErrMalformedMatrix = errors.New("matrix: malformed module matrix")

// Matrix is a square grid of QR modules. true marks a dark module.
type Matrix [][]bool

// Size returns the side length N.
func (m Matrix) Size() int { return len(m) }

// At reports whether the module at (row, col) is dark.
func (m Matrix) At(row, col int) bool { return m[row][col] }

// Validate checks that every row is exactly Size() modules long.
func (m Matrix) Validate() error {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d modules, want %d", ErrMalformedMatrix, i, len(row), n)
		}
	}
	return nil
}

// FromFlat builds a Matrix from a row-major slice of size*size modules.
func FromFlat(bits []bool, size int) (Matrix, error) {
	if err := checkFlat(len(bits), size); err != nil {
		return nil, err
	}
	m := make(Matrix, size)
	for y := 0; y < size; y++ {
		row := make([]bool, size)
		copy(row, bits[y*size:(y+1)*size])
		m[y] = row
	}
	return m, nil
}

// FromBytes is FromFlat for 1/0 encoded modules. Any non-zero byte is dark.
func FromBytes(bits []byte, size int) (Matrix, error) {
	if err := checkFlat(len(bits), size); err != nil {
		return nil, err
	}
	m := make(Matrix, size)
	for y := 0; y < size; y++ {
		row := make([]bool, size)
		for x := 0; x < size; x++ {
			row[x] = bits[y*size+x] != 0
		}
		m[y] = row
	}
	return m, nil
}

// FromGrid copies an already nested grid, rejecting ragged or non-square input.
func FromGrid(grid [][]bool) (Matrix, error) {
	m := make(Matrix, len(grid))
	for y, src := range grid {
		if len(src) != len(grid) {
			return nil, fmt.Errorf("%w: row %d has %d modules, want %d", ErrMalformedMatrix, y, len(src), len(grid))
		}
		row := make([]bool, len(src))
		copy(row, src)
		m[y] = row
	}
	return m, nil
}

func checkFlat(n, size int) error {
	if size < 0 {
		return fmt.Errorf("%w: negative size %d", ErrMalformedMatrix, size)
	}
	if n != size*size {
		return fmt.Errorf("%w: %d modules for size %d, want %d", ErrMalformedMatrix, n, size, size*size)
	}
	return nil
}
