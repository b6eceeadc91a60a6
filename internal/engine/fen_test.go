package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/variantkit-go/internal/chess"
	"github.com/lgbarn/variantkit-go/internal/errors"
	"github.com/lgbarn/variantkit-go/internal/variant"
)

func TestNewPositionFromFEN_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		variant string
		fen     string
	}{
		{"chess start", "chess", ""},
		{"kiwipete", "chess", kiwipeteFEN},
		{"en passant", "chess", "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3"},
		{"crazyhouse pocket", "crazyhouse", "r1bqkbnr/ppp2ppp/2n5/3pp3/3PP3/8/PPP2PPP/RNBQKBNR[Nn] w KQkq - 0 4"},
		{"crazyhouse promoted", "crazyhouse", "rQ~1qkbnr/p4ppp/8/8/8/8/PPP2PPP/RNBQKBNR[PPpp] b KQk - 0 9"},
		{"seirawan start", "seirawan", ""},
		{"threecheck", "threecheck", "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 2+3 0 2"},
		{"capablanca", "capablanca", ""},
		{"grand", "grand", ""},
		{"makruk", "makruk", ""},
		{"shogi promoted", "shogi", "lnsgkgsnl/1r5b1/pppp+Ppppp/9/9/9/PPPP1PPPP/1B5R1/LNSGKGSNL[P] b 0 5"},
		{"xiangqi", "xiangqi", ""},
		{"janggi", "janggi", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.variant, tt.fen)
			want := tt.fen
			if want == "" {
				want = pos.Variant().StartFEN
			}
			assert.Equal(t, want, pos.FEN())
		})
	}
}

func TestNewPositionFromFEN_Fields(t *testing.T) {
	pos := mustPosition(t, "chess", "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w Kq f6 4 3")
	assert.Equal(t, chess.White, pos.SideToMove())
	assert.Equal(t, chess.MakeSquare(5, 5), pos.EPSquare())
	assert.Equal(t, 4, pos.Rule50())
	assert.ElementsMatch(t,
		[]chess.Square{chess.MakeSquare(7, 0), chess.MakeSquare(0, 7)},
		pos.CastlingRooks().Squares())
	assert.Equal(t, chess.MakePiece(chess.Black, chess.Pawn), pos.PieceOn(chess.MakeSquare(3, 4)))

	shogi := mustPosition(t, "shogi", "lnsgkgsnl/1r5b1/pppp+Ppppp/9/9/9/PPPP1PPPP/1B5R1/LNSGKGSNL[P] b 0 5")
	e7 := chess.MakeSquare(4, 6)
	assert.Equal(t, chess.MakePiece(chess.White, chess.Gold), shogi.PieceOn(e7))
	assert.Equal(t, chess.ShogiPawn, shogi.UnpromotedPieceOn(e7))
	assert.Equal(t, 1, shogi.CountInHand(chess.White, chess.ShogiPawn))
	assert.Equal(t, 1, shogi.CountInHand(chess.White, chess.AllPieces))
}

func TestNewPositionFromFEN_Synonyms(t *testing.T) {
	pos := mustPosition(t, "xiangqi", "rheakaehr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RHEAKAEHR w - - 0 1")
	assert.Equal(t, variant.MustGet("xiangqi").StartFEN, pos.FEN())
}

func TestNewPositionFromFEN_Errors(t *testing.T) {
	tests := []struct {
		name    string
		variant string
		fen     string
	}{
		{"empty", "chess", ""},
		{"board only", "chess", "8/8/8/8/8/8/8/8"},
		{"too few ranks", "chess", "8/8/8/8/8/8/8 w - - 0 1"},
		{"long rank", "chess", "9/8/8/8/8/8/8/8 w - - 0 1"},
		{"unknown piece", "chess", "8/8/8/8/8/8/8/7X w - - 0 1"},
		{"bad side", "chess", "8/8/8/8/8/8/8/8 x - - 0 1"},
		{"bad en passant", "chess", "8/8/8/8/8/8/8/8 w - z9 0 1"},
		{"unterminated pocket", "crazyhouse", "8/8/8/8/8/8/8/8[Pp w - - 0 1"},
		{"promoting a king", "shogi", "4+k4/9/9/9/9/9/9/9/4K4[] w 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPositionFromFEN(variant.MustGet(tt.variant), tt.fen)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidFEN), "got %v", err)
		})
	}
}
