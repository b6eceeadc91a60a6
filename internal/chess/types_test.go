package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColour(t *testing.T) {
	assert.Equal(t, Black, White.Opposite())
	assert.Equal(t, White, Black.Opposite())
	assert.Equal(t, "White", White.String())
	assert.Equal(t, "Black", Black.String())
}

func TestPiece(t *testing.T) {
	for _, c := range Colours {
		for pt := Pawn; pt < PieceTypeNB; pt++ {
			p := MakePiece(c, pt)
			assert.Equal(t, c, p.Colour())
			assert.Equal(t, pt, p.Type())
			assert.Less(t, int(p), int(PieceNB))
		}
	}
	assert.Equal(t, "BlackCannon", MakePiece(Black, Cannon).String())
	assert.Equal(t, "NoPiece", NoPiece.String())
	assert.Equal(t, "Unknown", PieceType(99).String())
}

func TestMove(t *testing.T) {
	e2, e4 := MakeSquare(4, 1), MakeSquare(4, 3)

	drop := NewDrop(Knight, e4)
	assert.True(t, drop.IsDrop())
	assert.Equal(t, drop.From, drop.To)
	assert.Equal(t, Knight, drop.InHandType)

	promoted := NewPromotedDrop(Pawn, Gold, e4)
	assert.Equal(t, Pawn, promoted.InHandType)
	assert.Equal(t, Gold, promoted.DroppedType)

	m := NewMove(e2, e4)
	assert.False(t, m.IsGating())
	assert.True(t, m.WithGating(Elephant, e2).IsGating())
	assert.Equal(t, m, NewMove(e2, e4))
	assert.NotEqual(t, m, m.WithGating(Elephant, e2))

	assert.Equal(t, Castling, NewCastling(MakeSquare(4, 0), MakeSquare(7, 0)).Type)
	assert.Equal(t, Queen, NewPromotion(e2, e4, Queen).PromotionType)
	assert.Equal(t, "PiecePromotion", NewPiecePromotion(e2, e4).Type.String())
	assert.Equal(t, "PieceDemotion", NewPieceDemotion(e2, e4).Type.String())
	assert.Equal(t, "Unknown", MoveType(42).String())
}
