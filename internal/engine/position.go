// Package engine is a reference move generator for every built-in variant:
// FEN parsing, pseudo-legal and legal move generation, do/undo and UCI text.
package engine

import (
	"github.com/lgbarn/variantkit-go/internal/chess"
	"github.com/lgbarn/variantkit-go/internal/hashing"
	"github.com/lgbarn/variantkit-go/internal/variant"
)

// state is everything DoMove changes. It holds only arrays and scalars so a
// plain assignment takes a full snapshot.
type state struct {
	board      [chess.SquareNB]chess.Piece
	unpromoted [chess.SquareNB]chess.PieceType
	byColour   [chess.ColourNB]chess.Bitboard
	byType     [chess.PieceTypeNB]chess.Bitboard
	hand       [chess.ColourNB][chess.PieceTypeNB]int

	sideToMove    chess.Colour
	castlingRooks chess.Bitboard
	gates         chess.Bitboard
	epSquare      chess.Square
	checksLeft    [chess.ColourNB]int
	rule50        int
	fullmove      int
}

// Position is a mutable board state for one variant. It is not safe for
// concurrent use.
type Position struct {
	v       *variant.Variant
	st      state
	history []state
}

// NewPosition returns the variant's starting position.
func NewPosition(v *variant.Variant) (*Position, error) {
	return NewPositionFromFEN(v, v.StartFEN)
}

// Variant returns the rule descriptor of the position.
func (p *Position) Variant() *variant.Variant {
	return p.v
}

// SideToMove returns the colour to move.
func (p *Position) SideToMove() chess.Colour {
	return p.st.sideToMove
}

// PieceOn returns the piece on s, NoPiece if empty.
func (p *Position) PieceOn(s chess.Square) chess.Piece {
	if !s.IsOK() {
		return chess.NoPiece
	}
	return p.st.board[s]
}

// Empty reports whether s holds no piece.
func (p *Position) Empty(s chess.Square) bool {
	return p.PieceOn(s) == chess.NoPiece
}

// MovedPiece returns the piece that m moves or drops.
func (p *Position) MovedPiece(m chess.Move) chess.Piece {
	if m.Type == chess.Drop {
		return chess.MakePiece(p.st.sideToMove, m.DroppedType)
	}
	return p.PieceOn(m.From)
}

// UnpromotedPieceOn returns the original type of a promoted piece on s, or
// NoPieceType if the piece there is not promoted.
func (p *Position) UnpromotedPieceOn(s chess.Square) chess.PieceType {
	if !s.IsOK() {
		return chess.NoPieceType
	}
	return p.st.unpromoted[s]
}

// ByColour returns the squares occupied by colour c.
func (p *Position) ByColour(c chess.Colour) chess.Bitboard {
	return p.st.byColour[c]
}

// ByType returns the squares occupied by pieces of type pt of both colours.
func (p *Position) ByType(pt chess.PieceType) chess.Bitboard {
	if pt == chess.AllPieces {
		return p.Occupied()
	}
	return p.st.byType[pt]
}

// Occupied returns every occupied square.
func (p *Position) Occupied() chess.Bitboard {
	return p.st.byColour[chess.White].Or(p.st.byColour[chess.Black])
}

// Pieces returns the squares holding pieces of colour c and type pt.
// AllPieces selects every piece of the colour.
func (p *Position) Pieces(c chess.Colour, pt chess.PieceType) chess.Bitboard {
	if pt == chess.AllPieces {
		return p.st.byColour[c]
	}
	return p.st.byColour[c].And(p.st.byType[pt])
}

// Count returns the number of pieces of colour c and type pt on the board.
func (p *Position) Count(c chess.Colour, pt chess.PieceType) int {
	return p.Pieces(c, pt).Count()
}

// CountInHand returns how many pieces of type pt colour c holds in its
// pocket. AllPieces sums the whole pocket.
func (p *Position) CountInHand(c chess.Colour, pt chess.PieceType) int {
	if pt == chess.AllPieces {
		n := 0
		for _, k := range p.st.hand[c] {
			n += k
		}
		return n
	}
	return p.st.hand[c][pt]
}

// BoardBB returns the region pieces of colour c and type pt may stand on.
func (p *Position) BoardBB(c chess.Colour, pt chess.PieceType) chess.Bitboard {
	return p.v.MobilityRegion(c, pt)
}

// EPSquare returns the en passant target square, NoSquare if none.
func (p *Position) EPSquare() chess.Square {
	return p.st.epSquare
}

// CastlingRooks returns the squares of rooks that keep a castling right.
func (p *Position) CastlingRooks() chess.Bitboard {
	return p.st.castlingRooks
}

// ChecksLeft returns the checks colour c still has to give in check-counting
// variants.
func (p *Position) ChecksLeft(c chess.Colour) int {
	return p.st.checksLeft[c]
}

// Rule50 returns the half-move clock.
func (p *Position) Rule50() int {
	return p.st.rule50
}

// Key returns the Zobrist key of the position.
func (p *Position) Key() uint64 {
	return hashing.Key(p)
}

// Copy returns an independent position with the same state and history.
func (p *Position) Copy() *Position {
	c := &Position{v: p.v, st: p.st}
	c.history = append([]state(nil), p.history...)
	return c
}

func (p *Position) kingSquare(c chess.Colour) chess.Square {
	return p.Pieces(c, chess.King).Lsb()
}

func (p *Position) put(pc chess.Piece, s chess.Square) {
	st := &p.st
	st.board[s] = pc
	st.byColour[pc.Colour()] = st.byColour[pc.Colour()].With(s)
	st.byType[pc.Type()] = st.byType[pc.Type()].With(s)
}

func (p *Position) remove(s chess.Square) chess.Piece {
	st := &p.st
	pc := st.board[s]
	if pc == chess.NoPiece {
		return pc
	}
	st.board[s] = chess.NoPiece
	st.byColour[pc.Colour()] = st.byColour[pc.Colour()].Without(s)
	st.byType[pc.Type()] = st.byType[pc.Type()].Without(s)
	st.unpromoted[s] = chess.NoPieceType
	return pc
}
