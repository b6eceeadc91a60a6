package chess

import "strconv"

// Board dimensions large enough for every supported variant.
const (
	FileNB   = 12
	RankNB   = 10
	SquareNB = FileNB * RankNB
)

// Square is an index rank*FileNB + file. Rank 0 is White's back rank.
type Square int

// NoSquare marks an absent square.
const NoSquare Square = -1

// MakeSquare builds a square from zero-based file and rank.
func MakeSquare(file, rank int) Square {
	return Square(rank*FileNB + file)
}

// File returns the zero-based file of the square.
func (s Square) File() int {
	return int(s) % FileNB
}

// Rank returns the zero-based rank of the square.
func (s Square) Rank() int {
	return int(s) / FileNB
}

// IsOK reports whether the square lies inside the square index range.
func (s Square) IsOK() bool {
	return s >= 0 && s < SquareNB
}

// String returns coordinate notation, e.g. "e4" or "a10".
func (s Square) String() string {
	if !s.IsOK() {
		return "-"
	}
	return string(rune('a'+s.File())) + strconv.Itoa(s.Rank()+1)
}

// ParseSquare parses coordinate notation against a board of the given size.
// It returns NoSquare if the text does not name an on-board square.
func ParseSquare(text string, maxFile, maxRank int) Square {
	if len(text) < 2 || text[0] < 'a' || int(text[0]-'a') > maxFile {
		return NoSquare
	}
	rank, err := strconv.Atoi(text[1:])
	if err != nil || rank < 1 || rank-1 > maxRank {
		return NoSquare
	}
	return MakeSquare(int(text[0]-'a'), rank-1)
}

// RelativeRank returns the rank of s as seen from colour c on a board whose
// highest rank index is maxRank.
func RelativeRank(c Colour, s Square, maxRank int) int {
	if c == White {
		return s.Rank()
	}
	return maxRank - s.Rank()
}

// Forward returns +1 for White and -1 for Black (the rank direction of
// pawn advances).
func Forward(c Colour) int {
	if c == White {
		return 1
	}
	return -1
}
