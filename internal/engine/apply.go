package engine

import "github.com/lgbarn/variantkit-go/internal/chess"

// DoMove plays m, which must be pseudo-legal, and pushes the previous state
// so UndoMove can restore it exactly.
func (p *Position) DoMove(m chess.Move) {
	p.history = append(p.history, p.st)

	st := &p.st
	us := st.sideToMove
	them := us.Opposite()
	prevEP := st.epSquare
	st.epSquare = chess.NoSquare
	st.rule50++

	switch m.Type {
	case chess.Drop:
		p.applyDrop(us, m)
	case chess.Castling:
		p.applyCastling(us, m)
	default:
		p.applyBoardMove(us, m, prevEP)
	}

	if m.IsGating() {
		st.hand[us][m.GatingType]--
		p.put(chess.MakePiece(us, m.GatingType), m.GatingSquare)
	}

	if p.v.CheckCounting && p.inCheck(them) && st.checksLeft[us] > 0 {
		st.checksLeft[us]--
	}
	if us == chess.Black {
		st.fullmove++
	}
	st.sideToMove = them
}

// UndoMove takes back the last move played with DoMove.
func (p *Position) UndoMove() {
	n := len(p.history)
	if n == 0 {
		return
	}
	p.st = p.history[n-1]
	p.history = p.history[:n-1]
}

func (p *Position) applyDrop(us chess.Colour, m chess.Move) {
	p.st.hand[us][m.InHandType]--
	p.put(chess.MakePiece(us, m.DroppedType), m.To)
	if m.DroppedType != m.InHandType {
		p.st.unpromoted[m.To] = m.InHandType
	}
}

func (p *Position) applyCastling(us chess.Colour, m chess.Move) {
	kto, rto := p.castlingTargets(m.From, m.To)
	king := p.remove(m.From)
	rook := p.remove(m.To)
	p.put(king, kto)
	p.put(rook, rto)
	p.clearCastling(us)
	p.st.gates = p.st.gates.Without(m.From).Without(m.To)
}

func (p *Position) applyBoardMove(us chess.Colour, m chess.Move, prevEP chess.Square) {
	st := &p.st
	from, to := m.From, m.To
	shadow := st.unpromoted[from]
	pc := p.remove(from)
	pt := pc.Type()

	capsq := to
	if pt == chess.Pawn && to == prevEP && st.board[to] == chess.NoPiece && from != to {
		capsq = p.shift(to, relative(us, offset{0, -1}))
	}
	if captured := st.board[capsq]; captured != chess.NoPiece {
		p.capture(us, capsq)
	}

	switch m.Type {
	case chess.Promotion:
		pc = chess.MakePiece(us, m.PromotionType)
		if p.v.CapturesToHand {
			shadow = pt
		}
	case chess.PiecePromotion:
		pc = chess.MakePiece(us, p.v.PromotedPieceType[pt])
		shadow = pt
	case chess.PieceDemotion:
		pc = chess.MakePiece(us, shadow)
		shadow = chess.NoPieceType
	}
	p.put(pc, to)
	st.unpromoted[to] = shadow

	if pt == chess.Pawn {
		st.rule50 = 0
		if abs(to.Rank()-from.Rank()) == 2 && from.File() == to.File() {
			p.setEnPassant(us, from, to)
		}
	}
	if pt == chess.King {
		p.clearCastling(us)
	}
	st.castlingRooks = st.castlingRooks.Without(from)
	st.gates = st.gates.Without(from)
}

// capture removes the piece on s, crediting the capturer's pocket with its
// unpromoted type when captures go to hand.
func (p *Position) capture(us chess.Colour, s chess.Square) {
	st := &p.st
	pt := st.board[s].Type()
	if shadow := st.unpromoted[s]; shadow != chess.NoPieceType {
		pt = shadow
	}
	p.remove(s)
	if p.v.CapturesToHand {
		st.hand[us][pt]++
	}
	st.castlingRooks = st.castlingRooks.Without(s)
	st.gates = st.gates.Without(s)
	st.rule50 = 0
}

// setEnPassant records the skipped square if an enemy pawn could take on it.
func (p *Position) setEnPassant(us chess.Colour, from, to chess.Square) {
	mid := chess.MakeSquare(from.File(), (from.Rank()+to.Rank())/2)
	them := us.Opposite()
	for _, o := range []offset{{-1, 0}, {1, 0}} {
		s := p.shift(to, o)
		if s != chess.NoSquare && p.st.board[s] == chess.MakePiece(them, chess.Pawn) {
			p.st.epSquare = mid
			return
		}
	}
}

func (p *Position) clearCastling(c chess.Colour) {
	p.st.castlingRooks = p.st.castlingRooks.AndNot(p.backRank(c))
}

func (p *Position) backRank(c chess.Colour) chess.Bitboard {
	if c == chess.White {
		return chess.RankBB(0)
	}
	return chess.RankBB(p.v.MaxRank)
}
