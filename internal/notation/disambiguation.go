package notation

import "github.com/lgbarn/variantkit-go/internal/chess"

// Disambiguation is how much of a move's origin square is written out.
type Disambiguation int

const (
	NoDisambiguation Disambiguation = iota
	FileDisambiguation
	RankDisambiguation
	SquareDisambiguation
)

// String returns the name of the level.
func (d Disambiguation) String() string {
	switch d {
	case NoDisambiguation:
		return "none"
	case FileDisambiguation:
		return "file"
	case RankDisambiguation:
		return "rank"
	case SquareDisambiguation:
		return "square"
	default:
		return "unknown"
	}
}

// Disambiguate returns the disambiguation level of the legal move m in
// notation n.
func Disambiguate(pos Position, m chess.Move, n Notation) Disambiguation {
	if n == DefaultNotation {
		n = Default(pos.Variant())
	}
	if m.Type == chess.Drop {
		return NoDisambiguation
	}
	if n == LAN || n == Janggi {
		return SquareDisambiguation
	}

	us := pos.SideToMove()
	from, to := m.From, m.To
	pt := pos.MovedPiece(m).Type()

	if n == XiangqiWXF {
		onFile := pos.Pieces(us, pt).And(chess.FileBB(from.File()))
		if onFile.Count() == 2 {
			v := pos.Variant()
			otherFrom := onFile.Without(from).Lsb()
			file := otherFrom.File() + to.File() - from.File()
			rank := otherFrom.Rank() + to.Rank() - from.Rank()
			if file >= 0 && file <= v.MaxFile && rank >= 0 && rank <= v.MaxRank {
				otherTo := chess.MakeSquare(file, rank)
				if pos.BoardBB(us, pt).Has(otherTo) {
					return RankDisambiguation
				}
			}
		}
		return FileDisambiguation
	}

	if n == SAN && pt == chess.Pawn {
		if pos.Capture(m) {
			return FileDisambiguation
		}
		if m.Type == chess.Promotion && from != to && pos.Variant().SittuyinPromotion {
			return SquareDisambiguation
		}
	}

	var others chess.Bitboard
	candidates := pos.Pieces(us, pt).Without(from)
	for candidates.Any() {
		s := candidates.PopLsb()
		alt := chess.NewMove(s, to)
		if !pos.PseudoLegal(alt) || !pos.Legal(alt) {
			continue
		}
		if isShogi(n) && pos.UnpromotedPieceOn(s) != pos.UnpromotedPieceOn(from) {
			continue
		}
		others = others.With(s)
	}

	switch {
	case others.Empty():
		return NoDisambiguation
	case isShogi(n):
		return SquareDisambiguation
	case others.And(chess.FileBB(from.File())).Empty():
		return FileDisambiguation
	case others.And(chess.RankBB(from.Rank())).Empty():
		return RankDisambiguation
	default:
		return SquareDisambiguation
	}
}
