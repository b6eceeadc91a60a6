package engine

import "github.com/lgbarn/variantkit-go/internal/chess"

// generateCastling adds castling moves for every rook that still carries a
// castling right. The king and rook land on the variant's castling files,
// which covers chess960 and wider boards alike.
func (p *Position) generateCastling(moves []chess.Move, us chess.Colour) []chess.Move {
	if !p.v.Castling || p.inCheck(us) {
		return moves
	}
	ksq := p.kingSquare(us)
	if ksq == chess.NoSquare {
		return moves
	}
	rooks := p.st.castlingRooks.And(p.Pieces(us, chess.Rook))
	for rooks.Any() {
		rsq := rooks.PopLsb()
		if rsq.Rank() != ksq.Rank() || !p.castlingPathClear(us, ksq, rsq) {
			continue
		}
		m := chess.NewCastling(ksq, rsq)
		moves = append(moves, m)
		kto, rto := p.castlingTargets(ksq, rsq)
		for _, gate := range []chess.Square{ksq, rsq} {
			if gate != kto && gate != rto {
				moves = p.addGatings(moves, m, gate)
			}
		}
	}
	return moves
}

// castlingTargets returns the king and rook destinations of castling with
// the rook on rsq.
func (p *Position) castlingTargets(ksq, rsq chess.Square) (kto, rto chess.Square) {
	rank := ksq.Rank()
	if rsq.File() > ksq.File() {
		kto = chess.MakeSquare(p.v.CastlingKingsideFile, rank)
		return kto, kto - 1
	}
	kto = chess.MakeSquare(p.v.CastlingQueensideFile, rank)
	return kto, kto + 1
}

func (p *Position) castlingPathClear(us chess.Colour, ksq, rsq chess.Square) bool {
	kto, rto := p.castlingTargets(ksq, rsq)
	occupied := p.Occupied().Without(ksq).Without(rsq)
	if occupied.And(rankSpan(ksq, kto)).Any() || occupied.And(rankSpan(rsq, rto)).Any() {
		return false
	}
	for _, s := range rankSpan(ksq, kto).Without(ksq).Squares() {
		if p.IsAttacked(s, us.Opposite()) {
			return false
		}
	}
	return true
}

// rankSpan returns the squares from a to b inclusive on their shared rank.
func rankSpan(a, b chess.Square) chess.Bitboard {
	lo, hi := a.File(), b.File()
	if lo > hi {
		lo, hi = hi, lo
	}
	return chess.RectBB(lo, hi, a.Rank(), a.Rank())
}
