package notation

import (
	"strconv"

	"github.com/lgbarn/variantkit-go/internal/chess"
)

// fileText renders the file of s. Shogi counts files from the right,
// janggi from the left, and xiangqi from each player's own right.
func fileText(pos Position, s chess.Square, n Notation) string {
	v := pos.Variant()
	switch n {
	case ShogiHosking, ShogiHodges, ShogiHodgesNumber:
		return strconv.Itoa(v.MaxFile - s.File() + 1)
	case Janggi:
		return strconv.Itoa(s.File() + 1)
	case XiangqiWXF:
		if pos.SideToMove() == chess.White {
			return strconv.Itoa(v.MaxFile - s.File() + 1)
		}
		return strconv.Itoa(s.File() + 1)
	default:
		return string(rune('a' + s.File()))
	}
}

// rankText renders the rank of s. For xiangqi an occupied square is written
// as "+" for the front and "-" for the rear of two pieces on one file.
func rankText(pos Position, s chess.Square, n Notation) string {
	v := pos.Variant()
	switch n {
	case ShogiHosking, ShogiHodgesNumber:
		return strconv.Itoa(v.MaxRank - s.Rank() + 1)
	case ShogiHodges:
		return string(rune('a' + v.MaxRank - s.Rank()))
	case Janggi:
		return strconv.Itoa((v.MaxRank - s.Rank() + 1) % 10)
	case XiangqiWXF:
		us := pos.SideToMove()
		if pos.Empty(s) {
			return strconv.Itoa(chess.RelativeRank(us, s, v.MaxRank) + 1)
		}
		if pos.Pieces(us, pos.PieceOn(s).Type()).And(chess.ForwardFileBB(us, s)).Any() {
			return "-"
		}
		return "+"
	default:
		return strconv.Itoa(s.Rank() + 1)
	}
}

// squareText renders s; janggi writes the rank first.
func squareText(pos Position, s chess.Square, n Notation) string {
	if n == Janggi {
		return rankText(pos, s, n) + fileText(pos, s, n)
	}
	return fileText(pos, s, n) + rankText(pos, s, n)
}
