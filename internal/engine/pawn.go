package engine

import "github.com/lgbarn/variantkit-go/internal/chess"

// generatePawnMoves adds pushes, double steps, captures, en passant and
// promotions of the pawn on from.
func (p *Position) generatePawnMoves(moves []chess.Move, us chess.Colour, from chess.Square) []chess.Move {
	occupied := p.Occupied()
	push := relative(us, offset{0, 1})

	if fwd := p.shift(from, push); fwd != chess.NoSquare && !occupied.Has(fwd) {
		moves = p.addPawnMoves(moves, us, from, fwd)
		if p.v.DoubleStep && p.v.DoubleStepRegion[us].Has(from) {
			if two := p.shift(fwd, push); two != chess.NoSquare && !occupied.Has(two) {
				moves = p.addPawnMoves(moves, us, from, two)
			}
		}
	}

	attacks := p.attacksFrom(us, chess.Pawn, from, occupied)
	captures := attacks.And(p.st.byColour[us.Opposite()])
	for captures.Any() {
		moves = p.addPawnMoves(moves, us, from, captures.PopLsb())
	}
	if ep := p.st.epSquare; ep != chess.NoSquare && attacks.Has(ep) && !occupied.Has(ep) {
		moves = append(moves, chess.NewMove(from, ep))
	}

	if p.v.SittuyinPromotion {
		moves = p.addSittuyinPromotions(moves, us, from)
	}
	return moves
}

func (p *Position) addPawnMoves(moves []chess.Move, us chess.Colour, from, to chess.Square) []chess.Move {
	rr := chess.RelativeRank(us, to, p.v.MaxRank)
	if rr >= p.v.PromotionRank && len(p.v.PromotionPieceTypes) > 0 {
		for _, pt := range p.v.PromotionPieceTypes {
			moves = append(moves, chess.NewPromotion(from, to, pt))
		}
		if p.v.MandatoryPawnPromotion || rr == p.v.MaxRank {
			return moves
		}
	}
	return append(moves, chess.NewMove(from, to))
}

// addSittuyinPromotions adds promotion to a general (Fers) while the side
// has none: in place or one diagonal step onto an empty square, from the
// promotion region or with the last pawn.
func (p *Position) addSittuyinPromotions(moves []chess.Move, us chess.Colour, from chess.Square) []chess.Move {
	if p.Count(us, chess.Fers) > 0 {
		return moves
	}
	if !p.v.PromotionRegion[us].Has(from) && p.Count(us, chess.Pawn) > 1 {
		return moves
	}
	moves = append(moves, chess.NewPromotion(from, from, chess.Fers))
	for _, o := range diagonal {
		if to := p.shift(from, o); to != chess.NoSquare && p.Empty(to) {
			moves = append(moves, chess.NewPromotion(from, to, chess.Fers))
		}
	}
	return moves
}
