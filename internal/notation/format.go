package notation

import (
	"strconv"
	"strings"

	"github.com/lgbarn/variantkit-go/internal/chess"
)

// Format renders the legal move m in notation n. The position is restored
// before Format returns.
func Format(pos Position, m chess.Move, n Notation) string {
	if n == DefaultNotation {
		n = Default(pos.Variant())
	}

	var sb strings.Builder
	if m.Type == chess.Castling {
		if m.To > m.From {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}
		writeGating(&sb, pos, m, n)
	} else {
		writeMove(&sb, pos, m, n)
	}

	if !isShogi(n) && pos.GivesCheck(m) {
		sb.WriteString(checkSuffix(pos, m))
	}
	return sb.String()
}

// FormatLine renders a sequence of moves, each legal after the ones before
// it. Every move is taken back before FormatLine returns.
func FormatLine(pos Position, moves []chess.Move, n Notation) []string {
	played := 0
	defer func() {
		for ; played > 0; played-- {
			pos.UndoMove()
		}
	}()

	texts := make([]string, 0, len(moves))
	for _, m := range moves {
		texts = append(texts, Format(pos, m, n))
		pos.DoMove(m)
		played++
	}
	return texts
}

func writeMove(sb *strings.Builder, pos Position, m chess.Move, n Notation) {
	from, to := m.From, m.To
	d := Disambiguate(pos, m, n)

	sb.WriteString(pieceToken(pos, m, n))

	switch d {
	case FileDisambiguation:
		sb.WriteString(fileText(pos, from, n))
	case RankDisambiguation:
		sb.WriteString(rankText(pos, from, n))
	case SquareDisambiguation:
		sb.WriteString(squareText(pos, from, n))
	}

	sb.WriteString(separator(pos, m, n, d))

	if n == XiangqiWXF && m.Type != chess.Drop {
		if from.File() == to.File() {
			sb.WriteString(strconv.Itoa(abs(to.Rank() - from.Rank())))
		} else {
			sb.WriteString(fileText(pos, to, n))
		}
	} else {
		sb.WriteString(squareText(pos, to, n))
	}

	sb.WriteString(promotionSuffix(pos, m, n))
	writeGating(sb, pos, m, n)
}

// pieceToken returns the piece part of the move text.
func pieceToken(pos Position, m chess.Move, n Notation) string {
	v := pos.Variant()
	us := pos.SideToMove()
	pc := pos.MovedPiece(m)
	pt := pc.Type()

	switch {
	case (n == SAN || n == LAN) && pt == chess.Pawn && m.Type != chess.Drop:
		return ""
	case n == XiangqiWXF && pos.Pieces(us, pt).And(chess.FileBB(m.From.File())).Count() > 2:
		ahead := chess.ForwardFileBB(us, m.From).And(pos.Pieces(us, pt)).Count()
		return strconv.Itoa(ahead + 1)
	case isShogi(n) && m.Type != chess.Drop && pos.UnpromotedPieceOn(m.From) != chess.NoPieceType:
		return "+" + string(v.Char(pos.UnpromotedPieceOn(m.From)))
	case isShogi(n) && m.Type == chess.Drop && m.DroppedType != m.InHandType:
		return "+" + string(v.Char(m.InHandType))
	case v.Synonym(pt) != 0:
		return string(v.Synonym(pt))
	default:
		return string(v.Char(pt))
	}
}

// separator returns the operator between origin and destination.
func separator(pos Position, m chess.Move, n Notation, d Disambiguation) string {
	switch {
	case m.Type == chess.Drop:
		switch {
		case n == ShogiHosking:
			return "'"
		case isShogi(n):
			return "*"
		default:
			return "@"
		}
	case n == XiangqiWXF:
		us := pos.SideToMove()
		maxRank := pos.Variant().MaxRank
		switch {
		case m.From.Rank() == m.To.Rank():
			return "="
		case chess.RelativeRank(us, m.To, maxRank) > chess.RelativeRank(us, m.From, maxRank):
			return "+"
		default:
			return "-"
		}
	case pos.Capture(m):
		return "x"
	case n == LAN || n == Janggi || (isShogi(n) && (n != ShogiHosking || d == SquareDisambiguation)):
		return "-"
	default:
		return ""
	}
}

// promotionSuffix marks promotions, demotions and, in shogi, a move that
// declined an available promotion.
func promotionSuffix(pos Position, m chess.Move, n Notation) string {
	v := pos.Variant()
	switch m.Type {
	case chess.Promotion:
		return "=" + string(v.Char(m.PromotionType))
	case chess.PiecePromotion:
		if isShogi(n) {
			return "+"
		}
		return "=" + string(v.Char(v.PromotedPieceType[pos.MovedPiece(m).Type()]))
	case chess.PieceDemotion:
		if isShogi(n) {
			return "-"
		}
		return "=" + string(v.Char(pos.UnpromotedPieceOn(m.From)))
	case chess.Normal:
		if isShogi(n) && pos.PseudoLegal(chess.NewPiecePromotion(m.From, m.To)) {
			return "="
		}
	}
	return ""
}

func writeGating(sb *strings.Builder, pos Position, m chess.Move, n Notation) {
	if !m.IsGating() {
		return
	}
	sb.WriteByte('/')
	sb.WriteByte(pos.Variant().Char(m.GatingType))
	sb.WriteString(squareText(pos, m.GatingSquare, n))
}

// checkSuffix plays m, counts the replies and takes m back on every exit
// path.
func checkSuffix(pos Position, m chess.Move) string {
	pos.DoMove(m)
	defer pos.UndoMove()
	if len(pos.LegalMoves()) > 0 {
		return "+"
	}
	return "#"
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
