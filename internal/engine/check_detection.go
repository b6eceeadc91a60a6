package engine

import "github.com/lgbarn/variantkit-go/internal/chess"

// IsAttacked reports whether any piece of colour by attacks s.
func (p *Position) IsAttacked(s chess.Square, by chess.Colour) bool {
	return p.attackedWith(s, by, p.Occupied())
}

func (p *Position) attackedWith(s chess.Square, by chess.Colour, occupied chess.Bitboard) bool {
	pieces := p.st.byColour[by].And(occupied)
	for pieces.Any() {
		from := pieces.PopLsb()
		if p.attacksFrom(by, p.st.board[from].Type(), from, occupied).Has(s) {
			return true
		}
	}
	return false
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	return p.inCheck(p.st.sideToMove)
}

func (p *Position) inCheck(c chess.Colour) bool {
	ksq := p.kingSquare(c)
	if ksq == chess.NoSquare {
		return false
	}
	return p.IsAttacked(ksq, c.Opposite()) || p.generalsFace()
}

// generalsFace reports whether the two kings see each other along an open
// file under the flying-general rule.
func (p *Position) generalsFace() bool {
	if !p.v.FlyingGeneral {
		return false
	}
	w, b := p.kingSquare(chess.White), p.kingSquare(chess.Black)
	if w == chess.NoSquare || b == chess.NoSquare || w.File() != b.File() {
		return false
	}
	lo, hi := w, b
	if lo > hi {
		lo, hi = hi, lo
	}
	for s := lo + chess.FileNB; s < hi; s += chess.FileNB {
		if p.st.board[s] != chess.NoPiece {
			return false
		}
	}
	return true
}

// GivesCheck reports whether m, played by the side to move, checks the
// opponent.
func (p *Position) GivesCheck(m chess.Move) bool {
	them := p.st.sideToMove.Opposite()
	p.DoMove(m)
	defer p.UndoMove()
	ksq := p.kingSquare(them)
	return ksq != chess.NoSquare && p.IsAttacked(ksq, them.Opposite())
}
