package engine

import (
	"github.com/lgbarn/variantkit-go/internal/chess"
	"github.com/lgbarn/variantkit-go/internal/variant"
)

// IsCheckmate returns true if the side to move is in check with no legal move.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate returns true if the side to move is not in check and has no
// legal move.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}

// IsExtinct reports whether colour c has lost every piece of one of the
// variant's extinction types.
func (p *Position) IsExtinct(c chess.Colour) bool {
	if !p.v.HasExtinction() {
		return false
	}
	for _, pt := range p.v.ExtinctionPieceTypes {
		if p.Count(c, pt) == 0 && p.CountInHand(c, pt) == 0 {
			return true
		}
	}
	return false
}

// FlagReached reports whether colour c has its flag piece in its flag region.
func (p *Position) FlagReached(c chess.Colour) bool {
	if p.v.FlagPiece == chess.NoPieceType {
		return false
	}
	return p.Pieces(c, p.v.FlagPiece).And(p.v.FlagRegion[c]).Any()
}

// Result returns the game outcome from the side to move's point of view and
// whether the game is over.
func (p *Position) Result() (variant.Value, bool) {
	us := p.st.sideToMove
	them := us.Opposite()
	switch {
	case p.IsExtinct(us):
		return p.v.ExtinctionValue, true
	case p.IsExtinct(them):
		return -p.v.ExtinctionValue, true
	case p.FlagReached(them):
		return -variant.ValueMate, true
	case p.v.CheckCounting && p.st.checksLeft[them] == 0:
		return -variant.ValueMate, true
	}
	if p.HasLegalMoves() {
		return variant.ValueDraw, false
	}
	if p.InCheck() {
		return p.v.CheckmateValue, true
	}
	return p.v.StalemateValue, true
}
