package chess

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of squares. Bit i of the 128-bit value stands for
// Square(i); only the low SquareNB bits are ever set.
type Bitboard struct {
	lo, hi uint64
}

// EmptyBB is the empty set.
var EmptyBB Bitboard

// SquareBB returns the set holding only s. Off-range squares yield EmptyBB.
func SquareBB(s Square) Bitboard {
	switch {
	case !s.IsOK():
		return EmptyBB
	case s < 64:
		return Bitboard{lo: 1 << uint(s)}
	default:
		return Bitboard{hi: 1 << uint(s-64)}
	}
}

// Has reports whether s is in the set.
func (b Bitboard) Has(s Square) bool {
	if !s.IsOK() {
		return false
	}
	if s < 64 {
		return b.lo&(1<<uint(s)) != 0
	}
	return b.hi&(1<<uint(s-64)) != 0
}

// With returns the set plus s.
func (b Bitboard) With(s Square) Bitboard {
	return b.Or(SquareBB(s))
}

// Without returns the set minus s.
func (b Bitboard) Without(s Square) Bitboard {
	return b.AndNot(SquareBB(s))
}

// Or returns the union.
func (b Bitboard) Or(o Bitboard) Bitboard {
	return Bitboard{b.lo | o.lo, b.hi | o.hi}
}

// And returns the intersection.
func (b Bitboard) And(o Bitboard) Bitboard {
	return Bitboard{b.lo & o.lo, b.hi & o.hi}
}

// Xor returns the symmetric difference.
func (b Bitboard) Xor(o Bitboard) Bitboard {
	return Bitboard{b.lo ^ o.lo, b.hi ^ o.hi}
}

// AndNot returns b minus o.
func (b Bitboard) AndNot(o Bitboard) Bitboard {
	return Bitboard{b.lo &^ o.lo, b.hi &^ o.hi}
}

// Any reports whether the set is non-empty.
func (b Bitboard) Any() bool {
	return b.lo != 0 || b.hi != 0
}

// Empty reports whether the set is empty.
func (b Bitboard) Empty() bool {
	return !b.Any()
}

// Count returns the number of squares in the set.
func (b Bitboard) Count() int {
	return bits.OnesCount64(b.lo) + bits.OnesCount64(b.hi)
}

// Lsb returns the lowest square in the set, or NoSquare if empty.
func (b Bitboard) Lsb() Square {
	if b.lo != 0 {
		return Square(bits.TrailingZeros64(b.lo))
	}
	if b.hi != 0 {
		return Square(64 + bits.TrailingZeros64(b.hi))
	}
	return NoSquare
}

// PopLsb removes and returns the lowest square.
func (b *Bitboard) PopLsb() Square {
	s := b.Lsb()
	*b = b.Without(s)
	return s
}

// Squares lists the members in ascending order.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.Count())
	for b.Any() {
		squares = append(squares, b.PopLsb())
	}
	return squares
}

// String renders the set as a grid, highest rank first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := RankNB - 1; r >= 0; r-- {
		for f := 0; f < FileNB; f++ {
			if b.Has(MakeSquare(f, r)) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FileBB returns every square of the given file.
func FileBB(file int) Bitboard {
	var b Bitboard
	for r := 0; r < RankNB; r++ {
		b = b.With(MakeSquare(file, r))
	}
	return b
}

// RankBB returns every square of the given rank.
func RankBB(rank int) Bitboard {
	var b Bitboard
	for f := 0; f < FileNB; f++ {
		b = b.With(MakeSquare(f, rank))
	}
	return b
}

// ForwardFileBB returns the squares on the file of s strictly in front of s
// from the point of view of colour c.
func ForwardFileBB(c Colour, s Square) Bitboard {
	var b Bitboard
	for r := s.Rank() + Forward(c); r >= 0 && r < RankNB; r += Forward(c) {
		b = b.With(MakeSquare(s.File(), r))
	}
	return b
}

// BoardBB returns the squares of a board with the given highest indices.
func BoardBB(maxFile, maxRank int) Bitboard {
	var b Bitboard
	for r := 0; r <= maxRank; r++ {
		for f := 0; f <= maxFile; f++ {
			b = b.With(MakeSquare(f, r))
		}
	}
	return b
}

// RectBB returns the squares with file in [f0, f1] and rank in [r0, r1].
func RectBB(f0, f1, r0, r1 int) Bitboard {
	var b Bitboard
	for r := r0; r <= r1; r++ {
		for f := f0; f <= f1; f++ {
			b = b.With(MakeSquare(f, r))
		}
	}
	return b
}

var darkSquares = func() Bitboard {
	var b Bitboard
	for s := Square(0); s < SquareNB; s++ {
		if (s.File()+s.Rank())%2 == 0 {
			b = b.With(s)
		}
	}
	return b
}()

// DarkSquares returns every square whose file and rank sum is even (a1 is dark).
func DarkSquares() Bitboard {
	return darkSquares
}

// MakeBB builds a set from the listed squares.
func MakeBB(squares ...Square) Bitboard {
	var b Bitboard
	for _, s := range squares {
		b = b.With(s)
	}
	return b
}
