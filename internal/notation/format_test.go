package notation

import (
	"testing"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/variantkit-go/internal/chess"
	"github.com/lgbarn/variantkit-go/internal/testutil"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		variant  string
		fen      string
		uci      string
		notation Notation
		want     string
	}{
		// Chess SAN
		{"pawn push", "chess", "", "e2e4", SAN, "e4"},
		{"knight", "chess", "", "g1f3", SAN, "Nf3"},
		{"default is san", "chess", "", "g1f3", DefaultNotation, "Nf3"},
		{"pawn capture", "chess", "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2", "e4d5", SAN, "exd5"},
		{"en passant", "chess", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2", "e5d6", SAN, "exd6"},
		{"file disambiguation", "chess", "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1", "b1d2", SAN, "Nbd2"},
		{"rank disambiguation", "chess", "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", "a1a3", SAN, "R1a3"},
		{"square disambiguation", "chess", "4k3/8/8/8/8/Q7/8/Q1Q1K3 w - - 0 1", "a1b2", SAN, "Qa1b2"},
		{"promotion", "chess", "8/P6k/8/8/8/8/8/4K3 w - - 0 1", "a7a8q", SAN, "a8=Q"},
		{"underpromotion", "chess", "8/P6k/8/8/8/8/8/4K3 w - - 0 1", "a7a8n", SAN, "a8=N"},
		{"kingside castling", "chess", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", SAN, "O-O"},
		{"queenside castling", "chess", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", SAN, "O-O-O"},
		{"check", "chess", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1a8", SAN, "Ra8+"},
		{"mate", "chess", "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", "a1a8", SAN, "Ra8#"},

		// Chess LAN
		{"lan pawn push", "chess", "", "e2e4", LAN, "e2-e4"},
		{"lan knight", "chess", "", "g1f3", LAN, "Ng1-f3"},
		{"lan capture", "chess", "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2", "e4d5", LAN, "e4xd5"},
		{"lan castling", "chess", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", LAN, "O-O"},

		// Drops and gating
		{"piece drop", "crazyhouse", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR[N] w KQkq - 0 1", "N@e4", SAN, "N@e4"},
		{"pawn drop", "crazyhouse", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR[P] w KQkq - 0 1", "P@e4", SAN, "P@e4"},
		{"gating", "seirawan", "", "g1f3h", SAN, "Nf3/Hg1"},
		{"no gating", "seirawan", "", "g1f3", SAN, "Nf3"},

		// Shogi
		{"hosking pawn", "shogi", "", "c3c4", ShogiHosking, "P76"},
		{"hodges pawn", "shogi", "", "c3c4", ShogiHodges, "P-7f"},
		{"hodges number pawn", "shogi", "", "c3c4", ShogiHodgesNumber, "P-76"},
		{"shogi default", "shogi", "", "c3c4", DefaultNotation, "P-76"},
		{"hosking drop", "shogi", "4k4/9/9/9/9/9/9/9/4K4[P] w 0 1", "P@e5", ShogiHosking, "P'55"},
		{"hodges drop", "shogi", "4k4/9/9/9/9/9/9/9/4K4[P] w 0 1", "P@e5", ShogiHodges, "P*5e"},
		{"hodges number drop", "shogi", "4k4/9/9/9/9/9/9/9/4K4[P] w 0 1", "P@e5", ShogiHodgesNumber, "P*55"},
		{"promotion taken", "shogi", "4k4/9/9/4S4/9/9/9/9/4K4[-] w 0 1", "e6e7+", ShogiHodgesNumber, "S-53+"},
		{"promotion declined", "shogi", "4k4/9/9/4S4/9/9/9/9/4K4[-] w 0 1", "e6e7", ShogiHodgesNumber, "S-53="},
		{"hosking promotion", "shogi", "4k4/9/9/4S4/9/9/9/9/4K4[-] w 0 1", "e6e7+", ShogiHosking, "S53+"},
		{"promoted piece", "shogi", "4k4/9/4+P4/9/9/9/9/9/4K4[-] w 0 1", "e7e8", ShogiHodgesNumber, "+P-52"},
		{"hosking disambiguation", "shogi", "4k4/9/9/9/9/9/9/9/K2G1G3[-] w 0 1", "d1e2", ShogiHosking, "G69-58"},
		{"hodges disambiguation", "shogi", "4k4/9/9/9/9/9/9/9/K2G1G3[-] w 0 1", "d1e2", ShogiHodges, "G6i-5h"},
		{"san piece promotion", "shogi", "4k4/9/9/4S4/9/9/9/9/4K4[-] w 0 1", "e6e7+", SAN, "Se7=G"},

		// Janggi
		{"janggi horse", "janggi", "", "b1c3", Janggi, "H02-83"},
		{"janggi soldier", "janggi", "", "a4a5", Janggi, "P71-61"},

		// Xiangqi
		{"wxf cannon across", "xiangqi", "", "h3e3", XiangqiWXF, "C2=5"},
		{"wxf cannon forward", "xiangqi", "", "h3h7", XiangqiWXF, "C2+4"},
		{"wxf horse", "xiangqi", "", "b1c3", XiangqiWXF, "H8+7"},
		{"wxf front rook", "xiangqi", "3k5/9/9/9/9/R8/9/9/9/R3K4 w - - 0 1", "a5b5", XiangqiWXF, "R+=8"},
		{"wxf rear rook", "xiangqi", "3k5/9/9/9/9/R8/9/9/9/R3K4 w - - 0 1", "a1a3", XiangqiWXF, "R-+2"},
		{"wxf three pawns front", "xiangqi", "3k5/9/9/P8/P8/P8/9/9/9/4K4 w - - 0 1", "a7a8", XiangqiWXF, "19+1"},
		{"wxf three pawns middle", "xiangqi", "3k5/9/9/P8/P8/P8/9/9/9/4K4 w - - 0 1", "a6b6", XiangqiWXF, "29=8"},

		// Sittuyin
		{"sittuyin promotion in place", "sittuyin", "k7/8/5P2/8/8/8/8/K7[] w - - 0 1", "f6f6f", SAN, "f6=F"},
		{"sittuyin promotion step", "sittuyin", "k7/8/5P2/8/8/8/8/K7[] w - - 0 1", "f6g7f", SAN, "f6g7=F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustPosition(t, tt.variant, tt.fen)
			m := testutil.MustMove(t, pos, tt.uci)
			testutil.AssertEqual(t, Format(pos, m, tt.notation), tt.want)
		})
	}
}

func TestFormat_PieceDemotion(t *testing.T) {
	v := testutil.MustVariant(t, "shogi").Clone()
	v.PieceDemotion = true
	pos := testutil.MustPositionOf(t, v, "k8/9/4+P4/9/9/9/9/9/4K4[-] w 0 1")
	m := testutil.MustMove(t, pos, "e7e8-")

	testutil.AssertEqual(t, Format(pos, m, ShogiHodges), "+P-5b-")
	testutil.AssertEqual(t, Format(pos, m, ShogiHodgesNumber), "+P-52-")
	testutil.AssertEqual(t, Format(pos, m, SAN), "Ge8=P")
	testutil.AssertEqual(t, Format(pos, testutil.MustMove(t, pos, "e7e8"), ShogiHodgesNumber), "+P-52")
}

func TestFormat_PromotedDrop(t *testing.T) {
	pos := testutil.MustPosition(t, "shogi", "4k4/9/9/9/9/9/9/9/4K4[P] w 0 1")
	m := chess.NewPromotedDrop(chess.ShogiPawn, chess.Gold, chess.MakeSquare(4, 4))

	testutil.AssertEqual(t, Format(pos, m, ShogiHodges), "+P*5e")
	testutil.AssertEqual(t, Format(pos, m, ShogiHosking), "+P'55")
	testutil.AssertEqual(t, Format(pos, chess.NewDrop(chess.ShogiPawn, chess.MakeSquare(4, 4)), ShogiHodges), "P*5e")
}

func TestFormat_LeavesPositionUnchanged(t *testing.T) {
	notations := []Notation{SAN, LAN, ShogiHosking, ShogiHodges, ShogiHodgesNumber, Janggi, XiangqiWXF}
	for _, name := range []string{"chess", "crazyhouse", "seirawan", "shogi", "xiangqi", "janggi"} {
		t.Run(name, func(t *testing.T) {
			pos := testutil.MustPosition(t, name, "")
			fen, key := pos.FEN(), pos.Key()
			for _, m := range pos.LegalMoves() {
				for _, n := range notations {
					Format(pos, m, n)
				}
			}
			testutil.AssertEqual(t, pos.FEN(), fen)
			testutil.AssertEqual(t, pos.Key(), key)
		})
	}
}

func TestFormat_Distinct(t *testing.T) {
	tests := []struct {
		variant string
		fen     string
	}{
		{"chess", ""},
		{"chess", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"},
		{"chess", "4k3/8/8/8/8/Q7/8/Q1Q1K3 w - - 0 1"},
		{"crazyhouse", "r1bqkbnr/pppppppp/2n5/8/8/8/PPPPPPPP/RNBQKBNR[Pn] w KQkq - 0 1"},
		{"seirawan", ""},
		{"capablanca", ""},
		{"shogi", ""},
		{"xiangqi", ""},
		{"xiangqi", "3k5/9/9/9/9/R8/9/9/9/R3K4 w - - 0 1"},
		{"janggi", ""},
	}

	for _, tt := range tests {
		t.Run(tt.variant+" "+tt.fen, func(t *testing.T) {
			pos := testutil.MustPosition(t, tt.variant, tt.fen)
			notations := []Notation{DefaultNotation, LAN}
			switch pos.Variant().Template {
			case "xiangqi":
				notations = append(notations, XiangqiWXF)
			case "janggi":
				notations = append(notations, Janggi)
			case "shogi":
				notations = append(notations, ShogiHosking, ShogiHodges)
			}

			moves := pos.LegalMoves()
			for _, n := range notations {
				seen := map[string]string{}
				for _, m := range moves {
					text := Format(pos, m, n)
					if prev, ok := seen[text]; ok {
						t.Errorf("%s: %q used by %s and %s", n, text, prev, pos.UCI(m))
					}
					seen[text] = pos.UCI(m)
				}
			}
		})
	}
}

// TestFormat_MatchesReferenceSAN compares chess SAN against an independent
// implementation for every legal move.
func TestFormat_MatchesReferenceSAN(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1",
		"4k3/8/8/8/8/Q7/8/Q1Q1K3 w - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			opt, err := notnil.FEN(fen)
			testutil.AssertNoError(t, err)
			ref := notnil.NewGame(opt).Position()

			want := map[string]string{}
			for _, m := range ref.ValidMoves() {
				want[notnil.UCINotation{}.Encode(ref, m)] = notnil.AlgebraicNotation{}.Encode(ref, m)
			}

			pos := testutil.MustPosition(t, "chess", fen)
			got := map[string]string{}
			for _, m := range pos.LegalMoves() {
				got[pos.UCI(m)] = Format(pos, m, SAN)
			}
			testutil.AssertEqual(t, got, want)
		})
	}
}

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name     string
		variant  string
		ucis     []string
		notation Notation
		want     []string
	}{
		{"italian", "chess", []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4"}, SAN, []string{"e4", "e5", "Nf3", "Nc6", "Bc4"}},
		{"scholar mate", "chess", []string{"e2e4", "e7e5", "d1h5", "b8c6", "f1c4", "g8f6", "h5f7"}, SAN,
			[]string{"e4", "e5", "Qh5", "Nc6", "Bc4", "Nf6", "Qxf7#"}},
		{"central cannons", "xiangqi", []string{"h3e3", "h8e8"}, XiangqiWXF, []string{"C2=5", "C8=5"}},
		{"shogi opening", "shogi", []string{"c3c4", "g7g6"}, ShogiHodgesNumber, []string{"P-76", "P-34"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustPosition(t, tt.variant, "")
			fen := pos.FEN()

			moves := make([]chess.Move, 0, len(tt.ucis))
			replay := pos.Copy()
			for _, text := range tt.ucis {
				m := testutil.MustMove(t, replay, text)
				replay.DoMove(m)
				moves = append(moves, m)
			}

			testutil.AssertEqual(t, FormatLine(pos, moves, tt.notation), tt.want)
			testutil.AssertEqual(t, pos.FEN(), fen)
		})
	}
}
