// Package notation renders legal moves as text in one of eight move
// notations, spelling out as much of the origin as needed to keep the text
// unambiguous.
package notation

import (
	"strings"

	"github.com/lgbarn/variantkit-go/internal/chess"
	"github.com/lgbarn/variantkit-go/internal/errors"
	"github.com/lgbarn/variantkit-go/internal/variant"
)

// Notation selects a move text style.
type Notation int

const (
	// DefaultNotation resolves to the variant's usual notation, see Default.
	DefaultNotation Notation = iota
	SAN
	LAN
	ShogiHosking
	ShogiHodges
	ShogiHodgesNumber
	Janggi
	XiangqiWXF
)

var notationNames = [...]string{
	DefaultNotation:   "default",
	SAN:               "san",
	LAN:               "lan",
	ShogiHosking:      "shogi-hosking",
	ShogiHodges:       "shogi-hodges",
	ShogiHodgesNumber: "shogi-hodges-number",
	Janggi:            "janggi",
	XiangqiWXF:        "xiangqi-wxf",
}

// String returns the command-line name of the notation.
func (n Notation) String() string {
	if n >= 0 && int(n) < len(notationNames) {
		return notationNames[n]
	}
	return "unknown"
}

// Parse maps a notation name to its Notation. Matching ignores case.
func Parse(name string) (Notation, error) {
	for n, s := range notationNames {
		if strings.EqualFold(s, name) {
			return Notation(n), nil
		}
	}
	return DefaultNotation, errors.Wrapf(errors.ErrUnknownNotation, "%q", name)
}

// Names lists every notation name.
func Names() []string {
	return append([]string(nil), notationNames[:]...)
}

// Default returns the notation used for DefaultNotation in variant v.
func Default(v *variant.Variant) Notation {
	if v.Template == "shogi" {
		return ShogiHodgesNumber
	}
	return SAN
}

func isShogi(n Notation) bool {
	return n == ShogiHosking || n == ShogiHodges || n == ShogiHodgesNumber
}

// Position is the view of a live position the formatter needs. DoMove and
// UndoMove are used for one scoped look-ahead per formatted move.
type Position interface {
	Variant() *variant.Variant
	SideToMove() chess.Colour
	PieceOn(s chess.Square) chess.Piece
	Empty(s chess.Square) bool
	MovedPiece(m chess.Move) chess.Piece
	UnpromotedPieceOn(s chess.Square) chess.PieceType
	Pieces(c chess.Colour, pt chess.PieceType) chess.Bitboard
	BoardBB(c chess.Colour, pt chess.PieceType) chess.Bitboard
	PseudoLegal(m chess.Move) bool
	Legal(m chess.Move) bool
	Capture(m chess.Move) bool
	GivesCheck(m chess.Move) bool
	LegalMoves() []chess.Move
	DoMove(m chess.Move)
	UndoMove()
}
