package fen

import "strings"

// CharSquare addresses a CharBoard cell. Row 0 is the bottom rank.
type CharSquare struct {
	Row  int
	File int
}

// NoCharSquare is returned by lookups that find nothing.
var NoCharSquare = CharSquare{Row: -1, File: -1}

// squaredDistance is the squared euclidean distance between two cells.
func squaredDistance(a, b CharSquare) int {
	dr, df := a.Row-b.Row, a.File-b.File
	return dr*dr + df*df
}

// CharBoard is a grid of FEN glyphs used for geometry checks. Empty cells
// hold a space.
type CharBoard struct {
	ranks int
	files int
	cells []byte
}

// NewCharBoard returns an empty board of the given size.
func NewCharBoard(ranks, files int) *CharBoard {
	cells := make([]byte, ranks*files)
	for i := range cells {
		cells[i] = ' '
	}
	return &CharBoard{ranks: ranks, files: files, cells: cells}
}

// Ranks returns the number of rows.
func (b *CharBoard) Ranks() int { return b.ranks }

// Files returns the number of columns.
func (b *CharBoard) Files() int { return b.files }

// Set places glyph c on a cell.
func (b *CharBoard) Set(row, file int, c byte) {
	b.cells[row*b.files+file] = c
}

// At returns the glyph on a cell.
func (b *CharBoard) At(row, file int) byte {
	return b.cells[row*b.files+file]
}

// Find returns the first cell holding c, scanning from the bottom row.
func (b *CharBoard) Find(c byte) CharSquare {
	for r := 0; r < b.ranks; r++ {
		for f := 0; f < b.files; f++ {
			if b.At(r, f) == c {
				return CharSquare{Row: r, File: f}
			}
		}
	}
	return NoCharSquare
}

// FindAll returns every cell holding c in scan order.
func (b *CharBoard) FindAll(c byte) []CharSquare {
	var squares []CharSquare
	for r := 0; r < b.ranks; r++ {
		for f := 0; f < b.files; f++ {
			if b.At(r, f) == c {
				squares = append(squares, CharSquare{Row: r, File: f})
			}
		}
	}
	return squares
}

// OnRow reports whether c appears on the given row.
func (b *CharBoard) OnRow(c byte, row int) bool {
	if row < 0 || row >= b.ranks {
		return false
	}
	for f := 0; f < b.files; f++ {
		if b.At(row, f) == c {
			return true
		}
	}
	return false
}

// String renders each cell as "[x] ", one row per line, bottom row first.
func (b *CharBoard) String() string {
	var sb strings.Builder
	for r := 0; r < b.ranks; r++ {
		for f := 0; f < b.files; f++ {
			sb.WriteByte('[')
			sb.WriteByte(b.At(r, f))
			sb.WriteString("] ")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
