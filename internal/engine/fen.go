package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/variantkit-go/internal/chess"
	"github.com/lgbarn/variantkit-go/internal/errors"
	"github.com/lgbarn/variantkit-go/internal/variant"
)

// defaultChecks applies when a check-counting FEN has no checks field.
const defaultChecks = 3

// NewPositionFromFEN sets up a position of variant v from a FEN string.
// Fields after the side to move are optional; counters are read from the end.
func NewPositionFromFEN(v *variant.Variant, fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, fmt.Errorf("%q: expected at least 2 fields: %w", fen, errors.ErrInvalidFEN)
	}

	p := &Position{v: v}
	p.st.epSquare = chess.NoSquare
	p.st.fullmove = 1
	p.st.checksLeft = [chess.ColourNB]int{defaultChecks, defaultChecks}

	if err := p.parsePiecePositions(parts[0]); err != nil {
		return nil, fmt.Errorf("%q: %v: %w", fen, err, errors.ErrInvalidFEN)
	}
	if err := p.parseSideToMove(parts[1]); err != nil {
		return nil, fmt.Errorf("%q: %v: %w", fen, err, errors.ErrInvalidFEN)
	}
	if err := p.parseOptionalFields(parts[2:]); err != nil {
		return nil, fmt.Errorf("%q: %v: %w", fen, err, errors.ErrInvalidFEN)
	}
	return p, nil
}

// parsePiecePositions reads the board field, including a bracketed pocket
// or a pocket written as one extra rank.
func (p *Position) parsePiecePositions(field string) error {
	board, pocket := field, ""
	if i := strings.IndexByte(field, '['); i >= 0 {
		end := strings.IndexByte(field[i:], ']')
		if end < 0 {
			return fmt.Errorf("unterminated pocket")
		}
		board, pocket = field[:i], field[i+1:i+end]
	}

	rows := strings.Split(board, "/")
	if p.v.PieceDrops && len(rows) == p.v.Ranks()+1 {
		pocket = rows[len(rows)-1]
		rows = rows[:len(rows)-1]
	}
	if len(rows) != p.v.Ranks() {
		return fmt.Errorf("expected %d ranks, got %d", p.v.Ranks(), len(rows))
	}

	for i, row := range rows {
		if err := p.parseRank(row, p.v.MaxRank-i); err != nil {
			return err
		}
	}
	return p.parsePocket(pocket)
}

func (p *Position) parseRank(row string, rank int) error {
	file := 0
	last := chess.NoSquare
	promoted := false
	for j := 0; j < len(row); j++ {
		c := row[j]
		switch {
		case isDigit(c):
			n := int(c - '0')
			for j+1 < len(row) && isDigit(row[j+1]) {
				j++
				n = n*10 + int(row[j]-'0')
			}
			file += n
		case c == '+':
			promoted = true
		case c == '~':
			if last == chess.NoSquare {
				return fmt.Errorf("'~' without a piece on rank %d", rank+1)
			}
			p.st.unpromoted[last] = chess.Pawn
		default:
			pc, ok := p.v.PieceFromChar(c)
			if !ok {
				return fmt.Errorf("unknown piece %q", c)
			}
			if file > p.v.MaxFile {
				return fmt.Errorf("rank %d is too long", rank+1)
			}
			s := chess.MakeSquare(file, rank)
			if promoted {
				pt, ok := p.v.PromotedPieceType[pc.Type()]
				if !ok {
					return fmt.Errorf("piece %q cannot be promoted", c)
				}
				p.put(chess.MakePiece(pc.Colour(), pt), s)
				p.st.unpromoted[s] = pc.Type()
				promoted = false
			} else {
				p.put(pc, s)
			}
			last = s
			file++
		}
	}
	if file != p.v.Files() {
		return fmt.Errorf("rank %d has %d files, want %d", rank+1, file, p.v.Files())
	}
	return nil
}

func (p *Position) parsePocket(pocket string) error {
	for i := 0; i < len(pocket); i++ {
		c := pocket[i]
		if c == '-' {
			continue
		}
		pc, ok := p.v.PieceFromChar(c)
		if !ok {
			return fmt.Errorf("unknown pocket piece %q", c)
		}
		p.st.hand[pc.Colour()][pc.Type()]++
	}
	return nil
}

func (p *Position) parseSideToMove(field string) error {
	switch field {
	case "w":
		p.st.sideToMove = chess.White
	case "b":
		p.st.sideToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move %q", field)
	}
	return nil
}

// parseOptionalFields reads castling, en passant, check counts and the two
// move counters. Counters are taken from the end so variants whose FEN
// omits castling and en passant parse too.
func (p *Position) parseOptionalFields(rest []string) error {
	var counters []string
	for len(rest) > 0 && len(counters) < 2 && isCounter(rest[len(rest)-1]) {
		counters = append([]string{rest[len(rest)-1]}, counters...)
		rest = rest[:len(rest)-1]
	}

	castlingSeen := false
	for _, field := range rest {
		switch {
		case p.v.CheckCounting && strings.Contains(field, "+"):
			if err := p.parseChecks(field); err != nil {
				return err
			}
		case !castlingSeen:
			castlingSeen = true
			if err := p.parseCastling(field); err != nil {
				return err
			}
		default:
			if err := p.parseEnPassant(field); err != nil {
				return err
			}
		}
	}

	if len(counters) > 0 {
		p.st.rule50 = counterValue(counters[0])
	}
	if len(counters) > 1 {
		p.st.fullmove = counterValue(counters[1])
		if p.st.fullmove < 1 {
			p.st.fullmove = 1
		}
	}
	return nil
}

func (p *Position) parseEnPassant(field string) error {
	if field == "-" {
		return nil
	}
	s := chess.ParseSquare(field, p.v.MaxFile, p.v.MaxRank)
	if s == chess.NoSquare {
		return fmt.Errorf("invalid en passant square %q", field)
	}
	if p.v.DoubleStep {
		p.st.epSquare = s
	}
	return nil
}

func (p *Position) parseChecks(field string) error {
	w, b, ok := strings.Cut(field, "+")
	white, err1 := strconv.Atoi(w)
	black, err2 := strconv.Atoi(b)
	if !ok || err1 != nil || err2 != nil {
		return fmt.Errorf("invalid check counts %q", field)
	}
	p.st.checksLeft = [chess.ColourNB]int{white, black}
	return nil
}

// FEN serializes the position. Castling and en passant fields are written
// only when the variant's own start FEN carries them.
func (p *Position) FEN() string {
	var sb strings.Builder
	for r := p.v.MaxRank; r >= 0; r-- {
		empty := 0
		for f := 0; f <= p.v.MaxFile; f++ {
			s := chess.MakeSquare(f, r)
			pc := p.st.board[s]
			if pc == chess.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			p.writePiece(&sb, s, pc)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}

	if p.v.PieceDrops || p.v.Gating {
		sb.WriteByte('[')
		for _, c := range chess.Colours {
			for _, pt := range p.v.PieceTypes {
				for n := p.st.hand[c][pt]; n > 0; n-- {
					sb.WriteByte(p.v.PieceChar(chess.MakePiece(c, pt)))
				}
			}
		}
		sb.WriteByte(']')
	}

	if p.st.sideToMove == chess.White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}

	if len(strings.Fields(p.v.StartFEN)) >= 6 {
		sb.WriteByte(' ')
		sb.WriteString(p.castlingField())
		sb.WriteByte(' ')
		sb.WriteString(p.st.epSquare.String())
	}
	if p.v.CheckCounting {
		fmt.Fprintf(&sb, " %d+%d", p.st.checksLeft[chess.White], p.st.checksLeft[chess.Black])
	}
	fmt.Fprintf(&sb, " %d %d", p.st.rule50, p.st.fullmove)
	return sb.String()
}

func (p *Position) writePiece(sb *strings.Builder, s chess.Square, pc chess.Piece) {
	shadow := p.st.unpromoted[s]
	switch {
	case shadow == chess.NoPieceType:
		sb.WriteByte(p.v.PieceChar(pc))
	case p.v.ShogiStylePromotions:
		sb.WriteByte('+')
		sb.WriteByte(p.v.PieceChar(chess.MakePiece(pc.Colour(), shadow)))
	default:
		sb.WriteByte(p.v.PieceChar(pc))
		sb.WriteByte('~')
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isCounter reports whether field is a move counter: "-" or all digits.
func isCounter(field string) bool {
	if field == "-" {
		return true
	}
	for i := 0; i < len(field); i++ {
		if !isDigit(field[i]) {
			return false
		}
	}
	return field != ""
}

func counterValue(field string) int {
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0
	}
	return n
}
