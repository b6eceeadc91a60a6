// Package material adjudicates draws by insufficient mating material.
package material

import (
	"github.com/lgbarn/variantkit-go/internal/chess"
	"github.com/lgbarn/variantkit-go/internal/variant"
)

// Position is the read-only view of a position the evaluator needs.
type Position interface {
	Variant() *variant.Variant
	ByColour(c chess.Colour) chess.Bitboard
	ByType(pt chess.PieceType) chess.Bitboard
	Occupied() chess.Bitboard
	Pieces(c chess.Colour, pt chess.PieceType) chess.Bitboard
	Count(c chess.Colour, pt chess.PieceType) int
	CountInHand(c chess.Colour, pt chess.PieceType) int
	BoardBB(c chess.Colour, pt chess.PieceType) chess.Bitboard
}

// Insufficient reports whether colour c can never force mate with the
// material it has, however long the game goes on. Whenever another win
// rule applies it answers false.
func Insufficient(pos Position, c chess.Colour) bool {
	v := pos.Variant()
	them := c.Opposite()

	if v.CapturesToHand ||
		pos.CountInHand(c, chess.AllPieces) > 0 ||
		v.ExtinctionValue != variant.ValueNone ||
		(v.FlagPiece != chess.NoPieceType && pos.Count(c, v.FlagPiece) > 0) {
		return false
	}

	// Pieces that can never enter the region of the enemy king do not count.
	restricted := pos.Pieces(them, chess.King)
	for _, pt := range v.PieceTypes {
		if pt == chess.King || pos.BoardBB(c, pt).And(pos.BoardBB(them, chess.King)).Empty() {
			restricted = restricted.Or(pos.Pieces(c, pt))
		}
	}

	hasPawns := pos.Count(c, chess.Pawn) > 0
	for _, pt := range chess.MatingPieceTypes() {
		if pos.Pieces(c, pt).AndNot(restricted).Any() || (hasPawns && v.IsPromotionPieceType(pt)) {
			return false
		}
	}

	var colourbound chess.Bitboard
	for _, pt := range chess.ColourboundPieceTypes() {
		colourbound = colourbound.Or(pos.ByType(pt).AndNot(restricted))
	}
	unbound := pos.Occupied().Xor(restricted).Xor(colourbound)

	dark := chess.DarkSquares()
	bothColours := colourbound.And(dark).Any() && colourbound.AndNot(dark).Any()
	if colourbound.And(pos.ByColour(c)).Any() && (bothColours || unbound.Any()) {
		return false
	}

	// A lone minor piece needs a helper of either colour to mate.
	if pos.ByColour(c).And(unbound).Any() &&
		(pos.Occupied().Xor(restricted).Count() >= 2 || v.StalemateValue != variant.ValueDraw) {
		return false
	}
	return true
}

// IsDraw reports whether neither side has mating material.
func IsDraw(pos Position) bool {
	return Insufficient(pos, chess.White) && Insufficient(pos, chess.Black)
}

// Report is the per-colour verdict for one position.
type Report struct {
	White bool `json:"white"`
	Black bool `json:"black"`
	Draw  bool `json:"draw"`
}

// Evaluate returns both verdicts at once.
func Evaluate(pos Position) Report {
	w := Insufficient(pos, chess.White)
	b := Insufficient(pos, chess.Black)
	return Report{White: w, Black: b, Draw: w && b}
}
