package variant

import (
	"sort"

	"github.com/lgbarn/variantkit-go/internal/chess"
	"github.com/lgbarn/variantkit-go/internal/errors"
)

var registry = map[string]*Variant{}

func register(v *Variant) {
	registry[v.Name] = v
}

func init() {
	for _, v := range []*Variant{
		chessVariant(),
		fischerandomVariant(),
		crazyhouseVariant(),
		seirawanVariant(),
		kingofthehillVariant(),
		threecheckVariant(),
		hordeVariant(),
		giveawayVariant(),
		capablancaVariant(),
		grandVariant(),
		makrukVariant(),
		sittuyinVariant(),
		shogiVariant(),
		minishogiVariant(),
		xiangqiVariant(),
		janggiVariant(),
	} {
		register(v)
	}
}

// Get returns the built-in variant with the given name.
func Get(name string) (*Variant, error) {
	v, ok := registry[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownVariant, "%q", name)
	}
	return v, nil
}

// MustGet is like Get but panics on an unknown name.
func MustGet(name string) *Variant {
	v, err := Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Names lists the built-in variants in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sq(text string, v *Variant) chess.Square {
	return chess.ParseSquare(text, v.MaxFile, v.MaxRank)
}

func squares(v *Variant, texts ...string) chess.Bitboard {
	var b chess.Bitboard
	for _, t := range texts {
		b = b.With(sq(t, v))
	}
	return b
}

func ranks(v *Variant, from, to int) chess.Bitboard {
	return chess.RectBB(0, v.MaxFile, from, to)
}

func chessVariant() *Variant {
	v := &Variant{
		Name:     "chess",
		MaxFile:  7,
		MaxRank:  7,
		StartFEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		PieceTypes: []chess.PieceType{
			chess.Pawn, chess.Knight, chess.Bishop, chess.Rook, chess.Queen, chess.King,
		},
		PieceToChar: map[chess.PieceType]byte{
			chess.Pawn: 'P', chess.Knight: 'N', chess.Bishop: 'B',
			chess.Rook: 'R', chess.Queen: 'Q', chess.King: 'K',
		},
		PromotionPieceTypes:    []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight},
		PromotionRank:          7,
		MandatoryPawnPromotion: true,
		DoubleStep:             true,
		Castling:               true,
		CastlingKingsideFile:   6,
		CastlingQueensideFile:  2,
		ExtinctionValue:        ValueNone,
		StalemateValue:         ValueDraw,
		CheckmateValue:         -ValueMate,
	}
	v.DoubleStepRegion = [chess.ColourNB]chess.Bitboard{chess.RankBB(1), chess.RankBB(v.MaxRank - 1)}
	return v
}

func fischerandomVariant() *Variant {
	v := chessVariant()
	v.Name = "fischerandom"
	v.Chess960 = true
	return v
}

func crazyhouseVariant() *Variant {
	v := chessVariant()
	v.Name = "crazyhouse"
	v.StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR[] w KQkq - 0 1"
	v.PieceDrops = true
	v.CapturesToHand = true
	v.DropRegion = [chess.ColourNB]chess.Bitboard{v.Board(), v.Board()}
	return v
}

func seirawanVariant() *Variant {
	v := chessVariant()
	v.Name = "seirawan"
	v.StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR[HEhe] w KQBCDFGkqbcdfg - 0 1"
	v.PieceTypes = append(v.PieceTypes, chess.Archbishop, chess.Chancellor)
	v.PieceToChar[chess.Archbishop] = 'H'
	v.PieceToChar[chess.Chancellor] = 'E'
	v.PromotionPieceTypes = []chess.PieceType{
		chess.Archbishop, chess.Chancellor, chess.Queen, chess.Rook, chess.Bishop, chess.Knight,
	}
	v.Gating = true
	return v
}

func kingofthehillVariant() *Variant {
	v := chessVariant()
	v.Name = "kingofthehill"
	v.FlagPiece = chess.King
	hill := squares(v, "d4", "e4", "d5", "e5")
	v.FlagRegion = [chess.ColourNB]chess.Bitboard{hill, hill}
	return v
}

func threecheckVariant() *Variant {
	v := chessVariant()
	v.Name = "threecheck"
	v.StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 3+3 0 1"
	v.CheckCounting = true
	return v
}

func hordeVariant() *Variant {
	v := chessVariant()
	v.Name = "horde"
	v.StartFEN = "rnbqkbnr/pppppppp/8/1PP2PP1/PPPPPPPP/PPPPPPPP/PPPPPPPP/PPPPPPPP w kq - 0 1"
	v.DoubleStepRegion[chess.White] = ranks(v, 0, 1)
	v.ExtinctionValue = -ValueMate
	v.ExtinctionPieceTypes = []chess.PieceType{chess.AllPieces}
	return v
}

func giveawayVariant() *Variant {
	v := chessVariant()
	v.Name = "giveaway"
	v.StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"
	v.PieceTypes = []chess.PieceType{
		chess.Pawn, chess.Knight, chess.Bishop, chess.Rook, chess.Queen, chess.Commoner,
	}
	delete(v.PieceToChar, chess.King)
	v.PieceToChar[chess.Commoner] = 'K'
	v.PromotionPieceTypes = append(v.PromotionPieceTypes, chess.Commoner)
	v.Castling = false
	v.MustCapture = true
	v.StalemateValue = ValueMate
	v.ExtinctionValue = ValueMate
	v.ExtinctionPieceTypes = []chess.PieceType{chess.AllPieces}
	return v
}

func capablancaVariant() *Variant {
	v := chessVariant()
	v.Name = "capablanca"
	v.MaxFile = 9
	v.StartFEN = "rnabqkbcnr/pppppppppp/10/10/10/10/PPPPPPPPPP/RNABQKBCNR w KQkq - 0 1"
	v.PieceTypes = append(v.PieceTypes, chess.Archbishop, chess.Chancellor)
	v.PieceToChar[chess.Archbishop] = 'A'
	v.PieceToChar[chess.Chancellor] = 'C'
	v.PromotionPieceTypes = []chess.PieceType{
		chess.Queen, chess.Chancellor, chess.Archbishop, chess.Rook, chess.Bishop, chess.Knight,
	}
	v.CastlingKingsideFile = 8
	v.DoubleStepRegion = [chess.ColourNB]chess.Bitboard{chess.RankBB(1), chess.RankBB(v.MaxRank - 1)}
	return v
}

func grandVariant() *Variant {
	v := capablancaVariant()
	v.Name = "grand"
	v.MaxRank = 9
	v.StartFEN = "r8r/1nbqkcabn1/pppppppppp/10/10/10/10/PPPPPPPPPP/1NBQKCABN1/R8R w - - 0 1"
	v.Castling = false
	v.PromotionRank = 7
	v.MandatoryPawnPromotion = false
	v.DoubleStepRegion = [chess.ColourNB]chess.Bitboard{chess.RankBB(2), chess.RankBB(v.MaxRank - 2)}
	return v
}

func makrukVariant() *Variant {
	v := chessVariant()
	v.Name = "makruk"
	v.StartFEN = "rnsmksnr/8/pppppppp/8/8/PPPPPPPP/8/RNSKMSNR w - - 0 1"
	v.PieceTypes = []chess.PieceType{
		chess.Pawn, chess.Knight, chess.Silver, chess.Fers, chess.Rook, chess.King,
	}
	v.PieceToChar = map[chess.PieceType]byte{
		chess.Pawn: 'P', chess.Knight: 'N', chess.Silver: 'S',
		chess.Fers: 'M', chess.Rook: 'R', chess.King: 'K',
	}
	v.PromotionPieceTypes = []chess.PieceType{chess.Fers}
	v.PromotionRank = 5
	v.DoubleStep = false
	v.Castling = false
	return v
}

func sittuyinVariant() *Variant {
	v := makrukVariant()
	v.Name = "sittuyin"
	v.StartFEN = "8/8/4pppp/pppp4/4PPPP/PPPP4/8/8[KFRRSSNNkfrrssnn] w - - 0 1"
	v.PieceToChar[chess.Fers] = 'F'
	v.PromotionRank = v.MaxRank + 1
	v.MandatoryPawnPromotion = false
	v.SittuyinPromotion = true
	v.PromotionRegion = [chess.ColourNB]chess.Bitboard{
		squares(v, "a8", "b7", "c6", "d5", "e5", "f6", "g7", "h8"),
		squares(v, "a1", "b2", "c3", "d4", "e4", "f3", "g2", "h1"),
	}
	v.PieceDrops = true
	v.MustDrop = true
	v.SittuyinRookDrop = true
	v.DropRegion = [chess.ColourNB]chess.Bitboard{ranks(v, 0, 2), ranks(v, 5, 7)}
	v.StalemateValue = -ValueMate
	return v
}

func shogiVariant() *Variant {
	v := &Variant{
		Name:     "shogi",
		Template: "shogi",
		MaxFile:  8,
		MaxRank:  8,
		StartFEN: "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL[-] w 0 1",
		PieceTypes: []chess.PieceType{
			chess.ShogiPawn, chess.Lance, chess.ShogiKnight, chess.Silver, chess.Gold,
			chess.Bishop, chess.DragonHorse, chess.Rook, chess.Dragon, chess.King,
		},
		PieceToChar: map[chess.PieceType]byte{
			chess.ShogiPawn: 'P', chess.Lance: 'L', chess.ShogiKnight: 'N', chess.Silver: 'S',
			chess.Gold: 'G', chess.Bishop: 'B', chess.DragonHorse: 'H', chess.Rook: 'R',
			chess.Dragon: 'D', chess.King: 'K',
		},
		PromotedPieceType: map[chess.PieceType]chess.PieceType{
			chess.ShogiPawn:   chess.Gold,
			chess.Lance:       chess.Gold,
			chess.ShogiKnight: chess.Gold,
			chess.Silver:      chess.Gold,
			chess.Bishop:      chess.DragonHorse,
			chess.Rook:        chess.Dragon,
		},
		PromotionRank:        6,
		ShogiStylePromotions: true,
		PieceDrops:           true,
		CapturesToHand:       true,
		DropNoDoubled:        chess.ShogiPawn,
		ExtinctionValue:      ValueNone,
		StalemateValue:       -ValueMate,
		CheckmateValue:       -ValueMate,
	}
	v.DropRegion = [chess.ColourNB]chess.Bitboard{v.Board(), v.Board()}
	return v
}

func minishogiVariant() *Variant {
	v := shogiVariant()
	v.Name = "minishogi"
	v.MaxFile = 4
	v.MaxRank = 4
	v.StartFEN = "rbsgk/4p/5/P4/KGSBR[-] w 0 1"
	v.PieceTypes = []chess.PieceType{
		chess.ShogiPawn, chess.Silver, chess.Gold, chess.Bishop,
		chess.DragonHorse, chess.Rook, chess.Dragon, chess.King,
	}
	delete(v.PieceToChar, chess.Lance)
	delete(v.PieceToChar, chess.ShogiKnight)
	delete(v.PromotedPieceType, chess.Lance)
	delete(v.PromotedPieceType, chess.ShogiKnight)
	v.PromotionRank = 4
	v.DropRegion = [chess.ColourNB]chess.Bitboard{v.Board(), v.Board()}
	return v
}

func xiangqiVariant() *Variant {
	v := &Variant{
		Name:     "xiangqi",
		Template: "xiangqi",
		MaxFile:  8,
		MaxRank:  9,
		StartFEN: "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1",
		PieceTypes: []chess.PieceType{
			chess.Soldier, chess.Horse, chess.Elephant, chess.Fers,
			chess.Rook, chess.Cannon, chess.King,
		},
		PieceToChar: map[chess.PieceType]byte{
			chess.Soldier: 'P', chess.Horse: 'N', chess.Elephant: 'B', chess.Fers: 'A',
			chess.Rook: 'R', chess.Cannon: 'C', chess.King: 'K',
		},
		PieceToCharSynonyms: map[chess.PieceType]byte{
			chess.Horse: 'H', chess.Elephant: 'E',
		},
		KingType:             chess.Wazir,
		PromotionRank:        10,
		FlyingGeneral:        true,
		SoldierPromotionRank: 5,
		ExtinctionValue:      ValueNone,
		StalemateValue:       -ValueMate,
		CheckmateValue:       -ValueMate,
	}
	white := chess.RectBB(3, 5, 0, 2)
	black := chess.RectBB(3, 5, 7, 9)
	v.SetMobilityRegion(chess.King, white, black)
	v.SetMobilityRegion(chess.Fers, white, black)
	v.SetMobilityRegion(chess.Elephant, ranks(v, 0, 4), ranks(v, 5, 9))
	return v
}

func janggiVariant() *Variant {
	v := &Variant{
		Name:     "janggi",
		Template: "janggi",
		MaxFile:  8,
		MaxRank:  9,
		StartFEN: "rnba1abnr/4k4/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/4K4/RNBA1ABNR w - - 0 1",
		PieceTypes: []chess.PieceType{
			chess.Soldier, chess.Horse, chess.JanggiElephant, chess.Wazir,
			chess.Rook, chess.JanggiCannon, chess.King,
		},
		PieceToChar: map[chess.PieceType]byte{
			chess.Soldier: 'P', chess.Horse: 'N', chess.JanggiElephant: 'B', chess.Wazir: 'A',
			chess.Rook: 'R', chess.JanggiCannon: 'C', chess.King: 'K',
		},
		PieceToCharSynonyms: map[chess.PieceType]byte{
			chess.Horse: 'H', chess.JanggiElephant: 'E',
		},
		KingType:        chess.Wazir,
		PalaceDiagonals: true,
		PromotionRank:   10,
		ExtinctionValue: ValueNone,
		StalemateValue:  ValueDraw,
		CheckmateValue:  -ValueMate,
	}
	white := chess.RectBB(3, 5, 0, 2)
	black := chess.RectBB(3, 5, 7, 9)
	v.SetMobilityRegion(chess.King, white, black)
	v.SetMobilityRegion(chess.Wazir, white, black)
	return v
}
