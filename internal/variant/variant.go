// Package variant describes the static rules of one game variant as a single
// immutable value, plus the registry of built-in variants.
package variant

import (
	"unicode"

	"github.com/lgbarn/variantkit-go/internal/chess"
)

// Value is a game result from the point of view of the side to move.
type Value int

const (
	ValueDraw Value = 0
	ValueMate Value = 32000
	// ValueNone means the rule is not configured.
	ValueNone Value = 32002
)

// Variant is the rule descriptor consumed by notation, validation and
// material adjudication. Treat a *Variant obtained from the registry as
// read-only; use Clone to derive a modified copy.
type Variant struct {
	Name     string
	Template string

	MaxFile  int
	MaxRank  int
	StartFEN string

	PieceTypes          []chess.PieceType
	PieceToChar         map[chess.PieceType]byte
	PieceToCharSynonyms map[chess.PieceType]byte

	// KingType is the movement of the royal king (King means one step in
	// any direction).
	KingType        chess.PieceType
	PalaceDiagonals bool

	PromotionPieceTypes    []chess.PieceType
	PromotionRank          int
	MandatoryPawnPromotion bool
	PromotedPieceType      map[chess.PieceType]chess.PieceType
	ShogiStylePromotions   bool
	PieceDemotion          bool
	SittuyinPromotion      bool
	PromotionRegion        [chess.ColourNB]chess.Bitboard

	DoubleStep       bool
	DoubleStepRegion [chess.ColourNB]chess.Bitboard

	Castling              bool
	Chess960              bool
	CastlingKingsideFile  int
	CastlingQueensideFile int

	PieceDrops       bool
	CapturesToHand   bool
	DropRegion       [chess.ColourNB]chess.Bitboard
	DropNoDoubled    chess.PieceType
	MustDrop         bool
	SittuyinRookDrop bool

	Gating               bool
	MustCapture          bool
	FlyingGeneral        bool
	SoldierPromotionRank int
	CheckCounting        bool

	ExtinctionValue      Value
	ExtinctionPieceTypes []chess.PieceType
	StalemateValue       Value
	CheckmateValue       Value

	FlagPiece  chess.PieceType
	FlagRegion [chess.ColourNB]chess.Bitboard

	mobility map[chess.PieceType][chess.ColourNB]chess.Bitboard
}

// Board returns every on-board square.
func (v *Variant) Board() chess.Bitboard {
	return chess.BoardBB(v.MaxFile, v.MaxRank)
}

// Files returns the board width.
func (v *Variant) Files() int {
	return v.MaxFile + 1
}

// Ranks returns the board height.
func (v *Variant) Ranks() int {
	return v.MaxRank + 1
}

// MobilityRegion returns the squares pieces of type pt and colour c may
// ever stand on.
func (v *Variant) MobilityRegion(c chess.Colour, pt chess.PieceType) chess.Bitboard {
	if r, ok := v.mobility[pt]; ok {
		return r[c].And(v.Board())
	}
	return v.Board()
}

// HasPieceType reports whether pt belongs to the variant.
func (v *Variant) HasPieceType(pt chess.PieceType) bool {
	return containsType(v.PieceTypes, pt)
}

// IsPromotionPieceType reports whether pawns may promote to pt.
func (v *Variant) IsPromotionPieceType(pt chess.PieceType) bool {
	return containsType(v.PromotionPieceTypes, pt)
}

// HasExtinction reports whether an extinction win condition is configured.
func (v *Variant) HasExtinction() bool {
	return v.ExtinctionValue != ValueNone
}

// MovementType returns the movement pattern of pt, resolving the royal king.
func (v *Variant) MovementType(pt chess.PieceType) chess.PieceType {
	if pt == chess.King && v.KingType != chess.NoPieceType {
		return v.KingType
	}
	return pt
}

// Char returns the uppercase glyph of pt, or 0 if pt is undeclared.
func (v *Variant) Char(pt chess.PieceType) byte {
	return v.PieceToChar[pt]
}

// Synonym returns the uppercase alternate glyph of pt, or 0 if none.
func (v *Variant) Synonym(pt chess.PieceType) byte {
	return v.PieceToCharSynonyms[pt]
}

// PieceChar returns the FEN glyph of p: uppercase for White, lowercase for Black.
func (v *Variant) PieceChar(p chess.Piece) byte {
	c := v.Char(p.Type())
	if c == 0 {
		return '?'
	}
	if p.Colour() == chess.Black {
		return byte(unicode.ToLower(rune(c)))
	}
	return c
}

// PieceFromChar decodes a FEN glyph, accepting synonyms.
func (v *Variant) PieceFromChar(c byte) (chess.Piece, bool) {
	var upper byte
	colour := chess.White
	switch {
	case c >= 'A' && c <= 'Z':
		upper = c
	case c >= 'a' && c <= 'z':
		upper = c - 'a' + 'A'
		colour = chess.Black
	default:
		return chess.NoPiece, false
	}
	for _, pt := range v.PieceTypes {
		if v.PieceToChar[pt] == upper || v.PieceToCharSynonyms[pt] == upper {
			return chess.MakePiece(colour, pt), true
		}
	}
	return chess.NoPiece, false
}

// IsPieceChar reports whether c is a declared piece glyph of either colour.
func (v *Variant) IsPieceChar(c byte) bool {
	_, ok := v.PieceFromChar(c)
	return ok
}

// PromotionZone returns the squares where pieces of colour c promote.
func (v *Variant) PromotionZone(c chess.Colour) chess.Bitboard {
	var b chess.Bitboard
	for _, s := range v.Board().Squares() {
		if chess.RelativeRank(c, s, v.MaxRank) >= v.PromotionRank {
			b = b.With(s)
		}
	}
	return b
}

// Clone returns a deep copy that may be modified freely.
func (v *Variant) Clone() *Variant {
	c := *v
	c.PieceTypes = append([]chess.PieceType(nil), v.PieceTypes...)
	c.PromotionPieceTypes = append([]chess.PieceType(nil), v.PromotionPieceTypes...)
	c.ExtinctionPieceTypes = append([]chess.PieceType(nil), v.ExtinctionPieceTypes...)
	c.PieceToChar = cloneMap(v.PieceToChar)
	c.PieceToCharSynonyms = cloneMap(v.PieceToCharSynonyms)
	c.PromotedPieceType = cloneMap(v.PromotedPieceType)
	c.mobility = cloneMap(v.mobility)
	return &c
}

// SetMobilityRegion restricts pieces of type pt to the given per-colour
// regions. It is meant for building descriptors, not for shared ones.
func (v *Variant) SetMobilityRegion(pt chess.PieceType, white, black chess.Bitboard) {
	if v.mobility == nil {
		v.mobility = make(map[chess.PieceType][chess.ColourNB]chess.Bitboard)
	}
	v.mobility[pt] = [chess.ColourNB]chess.Bitboard{white, black}
}

func containsType(types []chess.PieceType, pt chess.PieceType) bool {
	for _, t := range types {
		if t == pt {
			return true
		}
	}
	return false
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
