package notation

import (
	"testing"

	"github.com/lgbarn/variantkit-go/internal/chess"
	"github.com/lgbarn/variantkit-go/internal/errors"
	"github.com/lgbarn/variantkit-go/internal/testutil"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		want    Notation
		wantErr bool
	}{
		{"san", SAN, false},
		{"LAN", LAN, false},
		{"shogi-hosking", ShogiHosking, false},
		{"Shogi-Hodges", ShogiHodges, false},
		{"shogi-hodges-number", ShogiHodgesNumber, false},
		{"janggi", Janggi, false},
		{"xiangqi-wxf", XiangqiWXF, false},
		{"default", DefaultNotation, false},
		{"figurine", DefaultNotation, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.name)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrUnknownNotation)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestNotation_StringRoundTrip(t *testing.T) {
	for _, name := range Names() {
		n, err := Parse(name)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, n.String(), name)
	}
	testutil.AssertEqual(t, len(Names()), 8)
	testutil.AssertEqual(t, Notation(42).String(), "unknown")
}

func TestDefault(t *testing.T) {
	tests := []struct {
		variant string
		want    Notation
	}{
		{"chess", SAN},
		{"crazyhouse", SAN},
		{"xiangqi", SAN},
		{"janggi", SAN},
		{"shogi", ShogiHodgesNumber},
		{"minishogi", ShogiHodgesNumber},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			testutil.AssertEqual(t, Default(testutil.MustVariant(t, tt.variant)), tt.want)
		})
	}
}

func TestDisambiguation_String(t *testing.T) {
	testutil.AssertEqual(t, NoDisambiguation.String(), "none")
	testutil.AssertEqual(t, FileDisambiguation.String(), "file")
	testutil.AssertEqual(t, RankDisambiguation.String(), "rank")
	testutil.AssertEqual(t, SquareDisambiguation.String(), "square")
	testutil.AssertEqual(t, Disambiguation(9).String(), "unknown")
}

func TestDisambiguate(t *testing.T) {
	tests := []struct {
		name     string
		variant  string
		fen      string
		uci      string
		notation Notation
		want     Disambiguation
	}{
		{"lone knight", "chess", "", "g1f3", SAN, NoDisambiguation},
		{"pawn push", "chess", "", "e2e4", SAN, NoDisambiguation},
		{"pawn capture", "chess", "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2", "e4d5", SAN, FileDisambiguation},
		{"knights on different files", "chess", "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1", "b1d2", SAN, FileDisambiguation},
		{"rooks on one file", "chess", "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", "a1a3", SAN, RankDisambiguation},
		{"three queens", "chess", "4k3/8/8/8/8/Q7/8/Q1Q1K3 w - - 0 1", "a1b2", SAN, SquareDisambiguation},
		{"lan always square", "chess", "", "g1f3", LAN, SquareDisambiguation},
		{"drop", "crazyhouse", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR[N] w KQkq - 0 1", "N@e4", SAN, NoDisambiguation},
		{"shogi golds", "shogi", "4k4/9/9/9/9/9/9/9/K2G1G3[-] w 0 1", "d1e2", ShogiHodges, SquareDisambiguation},
		{"janggi", "janggi", "", "a4a5", Janggi, SquareDisambiguation},
		{"xiangqi single piece", "xiangqi", "", "h3e3", XiangqiWXF, FileDisambiguation},
		{"xiangqi tandem rooks", "xiangqi", "3k5/9/9/9/9/R8/9/9/9/R3K4 w - - 0 1", "a5b5", XiangqiWXF, RankDisambiguation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustPosition(t, tt.variant, tt.fen)
			m := testutil.MustMove(t, pos, tt.uci)
			testutil.AssertEqual(t, Disambiguate(pos, m, tt.notation).String(), tt.want.String())
		})
	}
}

func TestDisambiguate_TandemFollowsMobilityRegion(t *testing.T) {
	v := testutil.MustVariant(t, "xiangqi").Clone()
	v.SetMobilityRegion(chess.Rook, chess.FileBB(0).With(chess.MakeSquare(1, 4)), v.Board())
	pos := testutil.MustPositionOf(t, v, "3k5/9/9/9/9/R8/9/9/9/R3K4 w - - 0 1")

	// The rear rook could not make the same sideways step onto b1.
	m := testutil.MustMove(t, pos, "a5b5")
	testutil.AssertEqual(t, Disambiguate(pos, m, XiangqiWXF).String(), FileDisambiguation.String())
	testutil.AssertEqual(t, Format(pos, m, XiangqiWXF), "R9=8")

	m = testutil.MustMove(t, pos, "a1a3")
	testutil.AssertEqual(t, Disambiguate(pos, m, XiangqiWXF).String(), RankDisambiguation.String())
}
