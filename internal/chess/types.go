// Package chess provides the value types shared by every variant: colours,
// piece types, squares, bitboards and moves.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
	ColourNB
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	return c ^ 1
}

// Colours lists both colours in index order.
var Colours = [ColourNB]Colour{White, Black}

// PieceType identifies a movement type independent of colour.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	Fers
	Alfil
	FersAlfil
	Silver
	Archbishop
	Chancellor
	ShogiPawn
	Lance
	ShogiKnight
	Gold
	DragonHorse
	Dragon
	Wazir
	Commoner
	Centaur
	Horse
	Elephant
	JanggiElephant
	Cannon
	JanggiCannon
	Soldier
	King
	PieceTypeNB
)

var pieceTypeNames = [PieceTypeNB]string{
	"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "Fers", "Alfil",
	"FersAlfil", "Silver", "Archbishop", "Chancellor", "ShogiPawn", "Lance",
	"ShogiKnight", "Gold", "DragonHorse", "Dragon", "Wazir", "Commoner",
	"Centaur", "Horse", "Elephant", "JanggiElephant", "Cannon",
	"JanggiCannon", "Soldier", "King",
}

// String returns the name of a piece type.
func (pt PieceType) String() string {
	if pt >= 0 && pt < PieceTypeNB {
		return pieceTypeNames[pt]
	}
	return "Unknown"
}

// Piece is a coloured piece type. The zero value is NoPiece.
type Piece int

// NoPiece marks an empty square.
const NoPiece Piece = 0

// PieceNB bounds every Piece value.
const PieceNB = Piece(int(PieceTypeNB) << 1)

// MakePiece creates a coloured piece value.
func MakePiece(c Colour, pt PieceType) Piece {
	return Piece(int(pt)<<1 | int(c))
}

// Type extracts the piece type.
func (p Piece) Type() PieceType {
	return PieceType(p >> 1)
}

// Colour extracts the colour.
func (p Piece) Colour() Colour {
	return Colour(p & 1)
}

// String returns e.g. "WhiteRook".
func (p Piece) String() string {
	if p == NoPiece {
		return "NoPiece"
	}
	return p.Colour().String() + p.Type().String()
}

var (
	matingPieceTypes      = [...]PieceType{Rook, Queen, Archbishop, Chancellor, Silver, Gold, Commoner, Centaur}
	colourboundPieceTypes = [...]PieceType{Bishop, Fers, FersAlfil, Alfil, Elephant}
)

// MatingPieceTypes returns the piece types that can force mate together
// with their own king.
func MatingPieceTypes() [len(matingPieceTypes)]PieceType {
	return matingPieceTypes
}

// ColourboundPieceTypes returns the piece types that never leave the square
// colour they start on.
func ColourboundPieceTypes() [len(colourboundPieceTypes)]PieceType {
	return colourboundPieceTypes
}

// AllPieces stands for every piece type in rule sets such as extinction
// conditions. It is never placed on a board.
const AllPieces = PieceTypeNB
