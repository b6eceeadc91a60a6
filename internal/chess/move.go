package chess

// MoveType tags what a Move does.
type MoveType int

const (
	Normal MoveType = iota
	Drop
	Castling
	Promotion
	PiecePromotion
	PieceDemotion
)

// String returns the name of a move type.
func (t MoveType) String() string {
	switch t {
	case Normal:
		return "Normal"
	case Drop:
		return "Drop"
	case Castling:
		return "Castling"
	case Promotion:
		return "Promotion"
	case PiecePromotion:
		return "PiecePromotion"
	case PieceDemotion:
		return "PieceDemotion"
	default:
		return "Unknown"
	}
}

// Move is a tagged action. Moves compare with ==, so fields that do not apply
// to a tag stay at their zero value.
//
// For Castling, From is the king square and To the castling rook square.
// For Drop, From equals To.
type Move struct {
	Type MoveType
	From Square
	To   Square

	// PromotionType is the piece a pawn becomes (Promotion only).
	PromotionType PieceType

	// DroppedType is the piece placed by a drop and InHandType the piece
	// taken from the pocket. They differ only for promoted drops.
	DroppedType PieceType
	InHandType  PieceType

	// GatingType is the pocket piece gated in, NoPieceType if none.
	GatingType   PieceType
	GatingSquare Square
}

// NullMove is the zero Move. It is never legal.
var NullMove Move

// NewMove returns a Normal move.
func NewMove(from, to Square) Move {
	return Move{Type: Normal, From: from, To: to}
}

// NewDrop returns a Drop of pt onto to.
func NewDrop(pt PieceType, to Square) Move {
	return Move{Type: Drop, From: to, To: to, DroppedType: pt, InHandType: pt}
}

// NewPromotedDrop returns a Drop taking inHand from the pocket and placing
// dropped on the board.
func NewPromotedDrop(inHand, dropped PieceType, to Square) Move {
	return Move{Type: Drop, From: to, To: to, DroppedType: dropped, InHandType: inHand}
}

// NewCastling returns a Castling move from the king square to the rook square.
func NewCastling(kingFrom, rookFrom Square) Move {
	return Move{Type: Castling, From: kingFrom, To: rookFrom}
}

// NewPromotion returns a pawn Promotion to pt.
func NewPromotion(from, to Square, pt PieceType) Move {
	return Move{Type: Promotion, From: from, To: to, PromotionType: pt}
}

// NewPiecePromotion returns a shogi-style promotion of the moving piece.
func NewPiecePromotion(from, to Square) Move {
	return Move{Type: PiecePromotion, From: from, To: to}
}

// NewPieceDemotion returns a move that reverts a promoted piece.
func NewPieceDemotion(from, to Square) Move {
	return Move{Type: PieceDemotion, From: from, To: to}
}

// WithGating returns a copy of m gating pt onto s.
func (m Move) WithGating(pt PieceType, s Square) Move {
	m.GatingType = pt
	m.GatingSquare = s
	return m
}

// IsGating reports whether the move gates a pocket piece.
func (m Move) IsGating() bool {
	return m.GatingType != NoPieceType
}

// IsDrop reports whether the move places a pocket piece.
func (m Move) IsDrop() bool {
	return m.Type == Drop
}
