package engine

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/lgbarn/variantkit-go/internal/chess"
)

// parseCastling reads the castling field. K and Q select the outermost
// rook on that side of the king; file letters (Shredder-FEN) select the
// rook on that file. In gating variants file letters mark gate squares and
// K/Q also open the king and rook squares as gates.
func (p *Position) parseCastling(field string) error {
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		c := rune(field[i])
		if !unicode.IsLetter(c) {
			return fmt.Errorf("invalid castling character %q", c)
		}
		colour := chess.White
		if unicode.IsLower(c) {
			colour = chess.Black
		}
		upper := unicode.ToUpper(c)
		ksq := p.kingSquare(colour)

		switch {
		case upper == 'K' || upper == 'Q':
			rsq := p.outermostRook(colour, ksq, upper == 'K')
			if rsq == chess.NoSquare {
				continue
			}
			p.st.castlingRooks = p.st.castlingRooks.With(rsq)
			if p.v.Gating {
				p.st.gates = p.st.gates.With(rsq).With(ksq)
			}
		case int(upper-'A') <= p.v.MaxFile:
			s := chess.MakeSquare(int(upper-'A'), p.backRankIndex(colour))
			if p.v.Gating && !p.v.Chess960 {
				p.st.gates = p.st.gates.With(s)
				continue
			}
			if p.st.board[s] == chess.MakePiece(colour, chess.Rook) {
				p.st.castlingRooks = p.st.castlingRooks.With(s)
			}
		default:
			return fmt.Errorf("castling file %q is off the board", c)
		}
	}
	if !p.v.Castling {
		p.st.castlingRooks = chess.EmptyBB
	}
	return nil
}

// outermostRook finds the own rook closest to the board edge on the given
// side of the king, on the king's rank.
func (p *Position) outermostRook(c chess.Colour, ksq chess.Square, kingside bool) chess.Square {
	if ksq == chess.NoSquare || ksq.Rank() != p.backRankIndex(c) {
		return chess.NoSquare
	}
	rook := chess.MakePiece(c, chess.Rook)
	if kingside {
		for f := p.v.MaxFile; f > ksq.File(); f-- {
			if s := chess.MakeSquare(f, ksq.Rank()); p.st.board[s] == rook {
				return s
			}
		}
		return chess.NoSquare
	}
	for f := 0; f < ksq.File(); f++ {
		if s := chess.MakeSquare(f, ksq.Rank()); p.st.board[s] == rook {
			return s
		}
	}
	return chess.NoSquare
}

// castlingField writes castling rights kingside first, then gate letters.
// Chess960 rights are written as rook file letters.
func (p *Position) castlingField() string {
	var sb strings.Builder
	for _, c := range chess.Colours {
		var letters []rune
		ksq := p.kingSquare(c)
		rooks := p.st.castlingRooks.And(p.Pieces(c, chess.Rook)).And(p.backRank(c)).Squares()
		sort.Slice(rooks, func(i, j int) bool { return rooks[i] > rooks[j] })
		covered := chess.EmptyBB
		for _, rsq := range rooks {
			kingside := rsq.File() > ksq.File()
			switch {
			case !p.v.Chess960 && p.outermostRook(c, ksq, kingside) == rsq && kingside:
				letters = append(letters, 'K')
			case !p.v.Chess960 && p.outermostRook(c, ksq, kingside) == rsq:
				letters = append(letters, 'Q')
			default:
				letters = append(letters, rune('A'+rsq.File()))
			}
			covered = covered.With(rsq).With(ksq)
		}
		if p.v.Gating {
			for _, s := range p.st.gates.And(p.backRank(c)).AndNot(covered).Squares() {
				letters = append(letters, rune('A'+s.File()))
			}
		}
		for _, l := range letters {
			if c == chess.Black {
				l = unicode.ToLower(l)
			}
			sb.WriteRune(l)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

func (p *Position) backRankIndex(c chess.Colour) int {
	if c == chess.White {
		return 0
	}
	return p.v.MaxRank
}
