package engine

import (
	"strings"
	"unicode"

	"github.com/lgbarn/variantkit-go/internal/chess"
	"github.com/lgbarn/variantkit-go/internal/errors"
)

// UCI returns the coordinate text of m: from and to squares, a lowercase
// promotion letter, "+" or "-" for piece promotion and demotion, "P@e4"
// for drops and a trailing lowercase letter for gating. Castling is written
// king to rook in chess960 and king to destination otherwise; gating on the
// rook square reverses the two squares.
func (p *Position) UCI(m chess.Move) string {
	var sb strings.Builder
	switch m.Type {
	case chess.Drop:
		sb.WriteByte(p.v.Char(m.InHandType))
		sb.WriteByte('@')
		sb.WriteString(m.To.String())
		return sb.String()
	case chess.Castling:
		kto, _ := p.castlingTargets(m.From, m.To)
		from, to := m.From, kto
		if p.v.Chess960 {
			to = m.To
		}
		if m.IsGating() && m.GatingSquare == m.To {
			from, to = m.To, m.From
		}
		sb.WriteString(from.String())
		sb.WriteString(to.String())
	default:
		sb.WriteString(m.From.String())
		sb.WriteString(m.To.String())
	}

	switch m.Type {
	case chess.Promotion:
		sb.WriteRune(unicode.ToLower(rune(p.v.Char(m.PromotionType))))
	case chess.PiecePromotion:
		sb.WriteByte('+')
	case chess.PieceDemotion:
		sb.WriteByte('-')
	}
	if m.IsGating() {
		sb.WriteRune(unicode.ToLower(rune(p.v.Char(m.GatingType))))
	}
	return sb.String()
}

// ParseUCI returns the legal move whose UCI text is text.
func (p *Position) ParseUCI(text string) (chess.Move, error) {
	if text == "" {
		return chess.NullMove, &errors.MoveError{Err: errors.ErrInvalidMove, Variant: p.v.Name, FEN: p.FEN()}
	}
	for _, m := range p.LegalMoves() {
		if p.UCI(m) == text {
			return m, nil
		}
	}
	return chess.NullMove, &errors.MoveError{
		Err:      errors.ErrIllegalMove,
		Variant:  p.v.Name,
		FEN:      p.FEN(),
		MoveText: text,
	}
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
