package engine

import "github.com/lgbarn/variantkit-go/internal/chess"

// PseudoLegalMoves returns every move of the side to move that obeys piece
// movement and variant placement rules, ignoring king safety.
func (p *Position) PseudoLegalMoves() []chess.Move {
	us := p.st.sideToMove
	them := us.Opposite()

	var moves []chess.Move
	if p.v.PieceDrops {
		moves = p.generateDrops(moves, us)
		if p.v.MustDrop && p.CountInHand(us, chess.AllPieces) > 0 {
			return moves
		}
	}

	occupied := p.Occupied()
	pieces := p.st.byColour[us]
	for pieces.Any() {
		from := pieces.PopLsb()
		pt := p.st.board[from].Type()
		if pt == chess.Pawn {
			moves = p.generatePawnMoves(moves, us, from)
			continue
		}
		targets := p.quietsFrom(us, pt, from, occupied).
			Or(p.attacksFrom(us, pt, from, occupied).And(p.st.byColour[them]))
		for targets.Any() {
			moves = p.addPieceMoves(moves, us, pt, from, targets.PopLsb())
		}
	}

	return p.generateCastling(moves, us)
}

// LegalMoves returns the legal moves of the side to move.
func (p *Position) LegalMoves() []chess.Move {
	pseudo := p.PseudoLegalMoves()
	legal := make([]chess.Move, 0, len(pseudo))
	hasCapture := false
	for _, m := range pseudo {
		if p.kingSafeAfter(m) {
			legal = append(legal, m)
			hasCapture = hasCapture || p.Capture(m)
		}
	}
	if !p.v.MustCapture || !hasCapture {
		return legal
	}
	captures := legal[:0]
	for _, m := range legal {
		if p.Capture(m) {
			captures = append(captures, m)
		}
	}
	return captures
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func (p *Position) HasLegalMoves() bool {
	for _, m := range p.PseudoLegalMoves() {
		if p.kingSafeAfter(m) {
			return true
		}
	}
	return false
}

// PseudoLegal reports whether m is among the pseudo-legal moves.
func (p *Position) PseudoLegal(m chess.Move) bool {
	for _, c := range p.PseudoLegalMoves() {
		if c == m {
			return true
		}
	}
	return false
}

// Legal reports whether the pseudo-legal move m leaves the mover's king safe
// and respects forced captures.
func (p *Position) Legal(m chess.Move) bool {
	if !p.kingSafeAfter(m) {
		return false
	}
	if p.v.MustCapture && !p.Capture(m) {
		for _, c := range p.PseudoLegalMoves() {
			if p.Capture(c) && p.kingSafeAfter(c) {
				return false
			}
		}
	}
	return true
}

// Capture reports whether m removes an enemy piece.
func (p *Position) Capture(m chess.Move) bool {
	if m.Type == chess.Drop || m.Type == chess.Castling {
		return false
	}
	if pc := p.PieceOn(m.To); pc != chess.NoPiece && pc.Colour() != p.st.sideToMove {
		return true
	}
	return m.To == p.st.epSquare && m.From != m.To && p.PieceOn(m.From).Type() == chess.Pawn
}

func (p *Position) kingSafeAfter(m chess.Move) bool {
	us := p.st.sideToMove
	p.DoMove(m)
	defer p.UndoMove()
	return !p.inCheck(us)
}
