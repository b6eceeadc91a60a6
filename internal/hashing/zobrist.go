package hashing

import (
	"github.com/lgbarn/variantkit-go/internal/chess"
	"github.com/lgbarn/variantkit-go/internal/variant"
)

// maxHandCount bounds the pocket counts that get distinct keys. Larger
// counts share the last key.
const maxHandCount = 32

// KeySource is the part of a position that a Zobrist key covers.
type KeySource interface {
	Variant() *variant.Variant
	PieceOn(s chess.Square) chess.Piece
	UnpromotedPieceOn(s chess.Square) chess.PieceType
	SideToMove() chess.Colour
	CountInHand(c chess.Colour, pt chess.PieceType) int
	EPSquare() chess.Square
	CastlingRooks() chess.Bitboard
	ChecksLeft(c chess.Colour) int
}

var zobrist struct {
	psq        [chess.PieceNB][chess.SquareNB]uint64
	promoted   [chess.SquareNB]uint64
	hand       [chess.PieceNB][maxHandCount]uint64
	enPassant  [chess.SquareNB]uint64
	castling   [chess.SquareNB]uint64
	checks     [chess.ColourNB][maxHandCount]uint64
	sideToMove uint64
}

func init() {
	rng := prng{s: 1070372}
	for pc := range zobrist.psq {
		for s := range zobrist.psq[pc] {
			zobrist.psq[pc][s] = rng.next()
		}
		for n := range zobrist.hand[pc] {
			zobrist.hand[pc][n] = rng.next()
		}
	}
	for s := 0; s < chess.SquareNB; s++ {
		zobrist.promoted[s] = rng.next()
		zobrist.enPassant[s] = rng.next()
		zobrist.castling[s] = rng.next()
	}
	for c := range zobrist.checks {
		for n := range zobrist.checks[c] {
			zobrist.checks[c][n] = rng.next()
		}
	}
	zobrist.sideToMove = rng.next()
}

// prng is the xorshift64* generator; fixed seeds keep keys stable across runs.
type prng struct {
	s uint64
}

func (r *prng) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// Key generates the Zobrist key of a position: placement, promoted flags,
// pockets, side to move, castling rooks, en passant square and check counts.
func Key(src KeySource) uint64 {
	v := src.Variant()
	var key uint64
	for _, s := range v.Board().Squares() {
		pc := src.PieceOn(s)
		if pc == chess.NoPiece {
			continue
		}
		key ^= zobrist.psq[pc][s]
		if src.UnpromotedPieceOn(s) != chess.NoPieceType {
			key ^= zobrist.promoted[s]
		}
	}
	for _, c := range chess.Colours {
		for _, pt := range v.PieceTypes {
			if n := src.CountInHand(c, pt); n > 0 {
				key ^= zobrist.hand[chess.MakePiece(c, pt)][clampCount(n)]
			}
		}
		if v.CheckCounting {
			key ^= zobrist.checks[c][clampCount(src.ChecksLeft(c))]
		}
	}
	for _, s := range src.CastlingRooks().Squares() {
		key ^= zobrist.castling[s]
	}
	if ep := src.EPSquare(); ep.IsOK() {
		key ^= zobrist.enPassant[ep]
	}
	if src.SideToMove() == chess.Black {
		key ^= zobrist.sideToMove
	}
	return key
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	if n >= maxHandCount {
		return maxHandCount - 1
	}
	return n
}
