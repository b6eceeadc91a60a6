package engine

import "github.com/lgbarn/variantkit-go/internal/chess"

// addPieceMoves adds the moves of a non-pawn piece from from to to,
// expanding shogi-style promotions, demotions and gating.
func (p *Position) addPieceMoves(moves []chess.Move, us chess.Colour, pt chess.PieceType, from, to chess.Square) []chess.Move {
	promoted := p.st.unpromoted[from] != chess.NoPieceType
	if _, ok := p.v.PromotedPieceType[pt]; ok && !promoted {
		zone := p.v.PromotionZone(us)
		if zone.Has(from) || zone.Has(to) {
			moves = append(moves, chess.NewPiecePromotion(from, to))
			if p.immobile(us, pt, to) {
				return moves
			}
		}
	}
	if p.v.PieceDemotion && promoted {
		moves = append(moves, chess.NewPieceDemotion(from, to))
	}
	m := chess.NewMove(from, to)
	moves = append(moves, m)
	return p.addGatings(moves, m, from)
}

// immobile reports whether a piece of type pt on s could never move again.
func (p *Position) immobile(us chess.Colour, pt chess.PieceType, s chess.Square) bool {
	return p.quietsFrom(us, pt, s, chess.EmptyBB).Empty()
}

// addGatings adds a copy of m for every pocket piece that may be gated onto
// gate.
func (p *Position) addGatings(moves []chess.Move, m chess.Move, gate chess.Square) []chess.Move {
	if !p.v.Gating || !p.st.gates.Has(gate) {
		return moves
	}
	us := p.st.sideToMove
	for _, pt := range p.v.PieceTypes {
		if p.st.hand[us][pt] > 0 {
			moves = append(moves, m.WithGating(pt, gate))
		}
	}
	return moves
}

// generateDrops adds every drop of a pocket piece onto an empty square of
// the drop region.
func (p *Position) generateDrops(moves []chess.Move, us chess.Colour) []chess.Move {
	empty := p.v.Board().AndNot(p.Occupied())
	for _, pt := range p.v.PieceTypes {
		if p.st.hand[us][pt] == 0 {
			continue
		}
		targets := empty.And(p.v.DropRegion[us]).And(p.v.MobilityRegion(us, pt))
		targets = targets.AndNot(p.dropExclusions(us, pt))
		for targets.Any() {
			moves = append(moves, chess.NewDrop(pt, targets.PopLsb()))
		}
	}
	return moves
}

// dropExclusions returns the squares pt may not be dropped on.
func (p *Position) dropExclusions(us chess.Colour, pt chess.PieceType) chess.Bitboard {
	var excluded chess.Bitboard
	if pt == chess.Pawn {
		for _, s := range p.v.Board().Squares() {
			rr := chess.RelativeRank(us, s, p.v.MaxRank)
			if rr == 0 || rr >= p.v.PromotionRank {
				excluded = excluded.With(s)
			}
		}
	}
	if pt == p.v.DropNoDoubled {
		for _, s := range p.Pieces(us, pt).Squares() {
			excluded = excluded.Or(chess.FileBB(s.File()))
		}
	}
	if _, ok := p.v.PromotedPieceType[pt]; ok {
		for _, s := range p.v.Board().Squares() {
			if p.immobile(us, pt, s) {
				excluded = excluded.With(s)
			}
		}
	}
	if p.v.SittuyinRookDrop && pt == chess.Rook {
		for _, s := range p.v.Board().Squares() {
			if chess.RelativeRank(us, s, p.v.MaxRank) != 0 {
				excluded = excluded.With(s)
			}
		}
	}
	return excluded
}
