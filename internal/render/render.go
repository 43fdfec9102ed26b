// Package render turns a QR module matrix into terminal text.
//
// Full mode prints every module as a two-column ANSI colored cell. Compressed
// mode packs two vertically adjacent modules into one half-block character,
// halving the height of the code.
package render

import (
	"errors"
	"strings"

	"github.com/dfbb/qrterm/internal/matrix"
)

// ErrEmptyMatrix is returned for a zero-size matrix.
var ErrEmptyMatrix = errors.New("render: empty module matrix")

// Mode selects the rendering layout.
type Mode int

const (
	// Full renders one two-column cell per module.
	Full Mode = iota
	// Compressed renders one character per vertical pair of modules.
	Compressed
)

func (m Mode) String() string {
	if m == Compressed {
		return "small"
	}
	return "full"
}

// Full mode cells.
const (
	FullDark  = "\033[40m  \033[0m"
	FullLight = "\033[47m  \033[0m"
)

// Compressed mode glyphs, named top then bottom.
const (
	LightLight = "█"
	LightDark  = "▀"
	DarkLight  = "▄"
	DarkDark   = " "
)

// Render draws m in the given mode. It performs no I/O and is safe for
// concurrent use.
func Render(m matrix.Matrix, mode Mode) (string, error) {
	if m.Size() == 0 {
		return "", ErrEmptyMatrix
	}
	if err := m.Validate(); err != nil {
		return "", err
	}
	if mode == Compressed {
		return renderCompressed(m), nil
	}
	return renderFull(m), nil
}

func renderFull(m matrix.Matrix) string {
	size := m.Size()
	// Borders are one cell wider than the N+2 cells of a module row.
	border := strings.Repeat(FullLight, size+3)

	var b strings.Builder
	b.Grow((size + 2) * (size + 3) * len(FullLight))
	b.WriteString(border)
	b.WriteByte('\n')
	for _, row := range m {
		b.WriteString(FullLight)
		for _, dark := range row {
			if dark {
				b.WriteString(FullDark)
			} else {
				b.WriteString(FullLight)
			}
		}
		b.WriteString(FullLight)
		b.WriteByte('\n')
	}
	b.WriteString(border)
	return b.String()
}

func renderCompressed(m matrix.Matrix) string {
	size := m.Size()
	rows := [][]bool(m)
	oddRow := size%2 == 1
	if oddRow {
		// Pad with a light row so every row has a partner. m itself is left untouched.
		padded := make([][]bool, size, size+1)
		copy(padded, rows)
		rows = append(padded, make([]bool, size))
	}

	var b strings.Builder
	b.Grow((size/2 + 2) * (size + 3) * len(LightLight))
	b.WriteString(strings.Repeat(DarkLight, size+2))
	b.WriteByte('\n')
	for row := 0; row < size; row += 2 {
		b.WriteString(LightLight)
		for col := 0; col < size; col++ {
			b.WriteString(halfBlock(rows[row][col], rows[row+1][col]))
		}
		b.WriteString(LightLight)
		b.WriteByte('\n')
	}
	// For odd sizes the padding row already draws the bottom edge.
	if !oddRow {
		b.WriteString(strings.Repeat(LightDark, size+2))
	}
	return b.String()
}

func halfBlock(top, bottom bool) string {
	switch {
	case !top && !bottom:
		return LightLight
	case !top && bottom:
		return LightDark
	case top && !bottom:
		return DarkLight
	default:
		return DarkDark
	}
}
