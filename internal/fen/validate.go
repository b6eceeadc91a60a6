package fen

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/variantkit-go/internal/chess"
	"github.com/lgbarn/variantkit-go/internal/variant"
)

const (
	specialChars = "/+~[]-"
	maxFENParts  = 7
)

// Validator checks FEN strings and logs one Warn line per rejected string.
type Validator struct {
	Logger zerolog.Logger
}

// NewValidator returns a validator that reports to logger.
func NewValidator(logger zerolog.Logger) *Validator {
	return &Validator{Logger: logger}
}

var stderrValidator = NewValidator(
	zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
)

// Validate checks text against v and reports violations on stderr.
func Validate(text string, v *variant.Variant) Code {
	return stderrValidator.Validate(text, v)
}

// Validate returns the code of the first rule text violates for variant v,
// or OK. Neither text nor v is modified.
func (val *Validator) Validate(text string, v *variant.Variant) Code {
	r := run{log: val.Logger, text: text}

	if text == "" {
		return r.fail(Empty, "fen is empty")
	}
	if strings.IndexByte(text, ' ') < 0 {
		return r.fail(MissingSpaceDelim, "fen misses space as delimiter")
	}

	parts := splitFields(text)
	expected := len(splitFields(v.StartFEN))
	upper := min(expected+2, maxFENParts)
	if len(parts) < expected || len(parts) > upper {
		return r.fail(InvalidNbParts, "invalid number of fen parts: expected %d to %d, got %d",
			expected, upper, len(parts))
	}

	field := parts[0]
	for i := 0; i < len(field); i++ {
		c := field[i]
		if !isDigit(c) && !v.IsPieceChar(c) && !isSpecial(c) {
			return r.fail(InvalidChar, "invalid piece character %q", c)
		}
	}

	board := NewCharBoard(v.Ranks(), v.Files())
	if err := fillCharBoard(board, field, v); err != nil {
		return r.failErr(InvalidBoardGeometry, err)
	}

	var pockets [chess.ColourNB]string
	if v.PieceDrops {
		var err error
		if pockets, err = pocketInfo(field, v); err != nil {
			return r.failErr(InvalidPocketInfo, err)
		}
	}

	if v.HasPieceType(chess.King) && len(v.ExtinctionPieceTypes) == 0 {
		if code := r.checkKings(board, field, parts, pockets, v); code != OK {
			return code
		}
	}

	if side := parts[1]; side == "" || (side[0] != 'w' && side[0] != 'b') {
		return r.fail(InvalidSideToMove, "invalid side to move %q", side)
	}

	if v.DoubleStep && v.HasPieceType(chess.Pawn) {
		ep := ""
		if len(parts) > 3 {
			ep = parts[3]
		}
		if err := checkEnPassant(ep); err != nil {
			return r.failErr(InvalidEnPassantSq, err)
		}
	}

	if half := parts[len(parts)-2]; !isCounter(half) {
		return r.fail(InvalidHalfMoveCount, "invalid half move counter %q", half)
	}
	if full := parts[len(parts)-1]; !isCounter(full) {
		return r.fail(InvalidMoveCounter, "invalid move counter %q", full)
	}
	return OK
}

// run carries the per-call diagnostic context.
type run struct {
	log  zerolog.Logger
	text string
}

func (r run) fail(code Code, format string, args ...interface{}) Code {
	r.log.Warn().Str("fen", r.text).Str("code", code.String()).Msgf(format, args...)
	return code
}

func (r run) failErr(code Code, err error) Code {
	r.log.Warn().Err(err).Str("fen", r.text).Str("code", code.String()).Msg("fen rejected")
	return code
}

// checkKings covers the king count, touching kings and castling rights.
func (r run) checkKings(board *CharBoard, field string, parts []string,
	pockets [chess.ColourNB]string, v *variant.Variant) Code {
	king := v.Char(chess.King)
	glyphs := [chess.ColourNB]byte{upperByte(king), lowerByte(king)}

	for _, c := range chess.Colours {
		if n := strings.Count(field, string(glyphs[c])); n != 1 {
			return r.fail(InvalidNumberOfKings, "invalid number of %s kings: expected 1, got %d",
				strings.ToLower(c.String()), n)
		}
	}

	if strings.IndexByte(pockets[chess.White], lowerByte(king)) >= 0 ||
		strings.IndexByte(pockets[chess.Black], lowerByte(king)) >= 0 {
		return OK
	}

	kings := [chess.ColourNB]CharSquare{board.Find(glyphs[chess.White]), board.Find(glyphs[chess.Black])}
	if squaredDistance(kings[chess.White], kings[chess.Black]) <= 2 {
		r.log.Warn().Str("fen", r.text).Str("code", TouchingKings.String()).
			Str("board", board.String()).Msg("kings are next to each other")
		return TouchingKings
	}

	if !v.Castling || len(parts) < 3 {
		return OK
	}
	rights, err := splitCastling(parts[2])
	if err != nil {
		return r.failErr(InvalidCastlingInfo, err)
	}
	if rights[chess.White] == "" && rights[chess.Black] == "" {
		return OK
	}

	start := NewCharBoard(board.Ranks(), board.Files())
	// The start position of a registered variant always fits its board.
	_ = fillCharBoard(start, v.StartFEN, v)
	startKings := [chess.ColourNB]CharSquare{start.Find(glyphs[chess.White]), start.Find(glyphs[chess.Black])}

	if v.Chess960 {
		err = check960Castling(rights, board, startKings, glyphs)
	} else {
		err = checkStandardCastling(rights, board, start, kings, startKings)
	}
	if err != nil {
		return r.failErr(InvalidCastlingInfo, err)
	}
	return OK
}

// fillCharBoard places the pieces of the board field on b. Two adjacent
// digits d1 d2 add d1 + d2 + 9*d1 empty files, so "10" skips ten.
func fillCharBoard(b *CharBoard, field string, v *variant.Variant) error {
	rankIdx, fileIdx := 0, 0
	prev := byte('?')

	for i := 0; i < len(field); i++ {
		c := field[i]
		if c == ' ' || c == '[' {
			break
		}
		switch {
		case isDigit(c):
			fileIdx += int(c - '0')
			if isDigit(prev) {
				fileIdx += 9 * int(prev-'0')
			}
		case c == '/':
			rankIdx++
			if fileIdx != b.Files() {
				return fmt.Errorf("rank width %d != %d files", fileIdx, b.Files())
			}
			if rankIdx == b.Ranks() {
				return checkRankCount(rankIdx, b.Ranks(), v.PieceDrops)
			}
			fileIdx = 0
		case !isSpecial(c):
			if fileIdx >= b.Files() {
				return fmt.Errorf("file index %d for piece %q exceeds %d files", fileIdx, c, b.Files())
			}
			b.Set(v.MaxRank-rankIdx, fileIdx, c)
			fileIdx++
		}
		prev = c
	}
	return checkRankCount(rankIdx, b.Ranks(), v.PieceDrops)
}

// checkRankCount accepts one extra rank when drops keep the pocket there.
func checkRankCount(rankIdx, ranks int, drops bool) error {
	if rankIdx+1 == ranks || (drops && rankIdx == ranks) {
		return nil
	}
	return fmt.Errorf("invalid number of ranks: expected %d, got %d", ranks, rankIdx+1)
}

// pocketInfo reads the pocket at the end of the board field, either after
// the last '/' of an extra rank or between brackets. Pieces are returned in
// lowercase per colour.
func pocketInfo(field string, v *variant.Variant) ([chess.ColourNB]string, error) {
	var pockets [chess.ColourNB]string

	stop := byte('[')
	end := len(field)
	if strings.Count(field, "/") == v.Ranks() {
		stop = '/'
	} else {
		if !strings.HasSuffix(field, "]") {
			return pockets, fmt.Errorf("pocket does not end with ']'")
		}
		end--
	}

	for i := end - 1; i >= 0; i-- {
		c := field[i]
		if c == stop {
			return pockets, nil
		}
		if c == '-' {
			continue
		}
		if !v.IsPieceChar(c) {
			return pockets, fmt.Errorf("invalid pocket piece %q", c)
		}
		if isUpper(c) {
			pockets[chess.White] += string(lowerByte(c))
		} else {
			pockets[chess.Black] += string(c)
		}
	}
	return pockets, fmt.Errorf("pocket opening character %q not found", stop)
}

// splitCastling buckets castling letters by colour, in lowercase.
func splitCastling(field string) ([chess.ColourNB]string, error) {
	var rights [chess.ColourNB]string
	for i := 0; i < len(field); i++ {
		c := field[i]
		switch {
		case c == '-':
		case !isLetter(c):
			return rights, fmt.Errorf("invalid castling character %q", c)
		case isUpper(c):
			rights[chess.White] += string(lowerByte(c))
		default:
			rights[chess.Black] += string(c)
		}
	}
	return rights, nil
}

// check960Castling requires king and rook on the starting king row of
// every colour that keeps a castling right.
func check960Castling(rights [chess.ColourNB]string, b *CharBoard,
	startKings [chess.ColourNB]CharSquare, kings [chess.ColourNB]byte) error {
	rooks := [chess.ColourNB]byte{'R', 'r'}
	for _, c := range chess.Colours {
		if rights[c] == "" {
			continue
		}
		row := startKings[c].Row
		for _, glyph := range []byte{kings[c], rooks[c]} {
			if !b.OnRow(glyph, row) {
				return fmt.Errorf("%s king and rook must be on row %d to castle", c, row)
			}
		}
	}
	return nil
}

// checkStandardCastling requires the king on its starting square and, per
// requested side, the rook on its own. Rook squares come from the start
// position in scan order, so index 0 is the queenside rook.
func checkStandardCastling(rights [chess.ColourNB]string, b, start *CharBoard,
	kings, startKings [chess.ColourNB]CharSquare) error {
	rooks := [chess.ColourNB]byte{'R', 'r'}
	for _, c := range chess.Colours {
		if rights[c] == "" {
			continue
		}
		if kings[c] != startKings[c] {
			return fmt.Errorf("%s king has moved", c)
		}

		startRooks := start.FindAll(rooks[c])
		for i, side := range []byte{'q', 'k'} {
			if strings.IndexByte(rights[c], side) < 0 {
				continue
			}
			if i >= len(startRooks) {
				return fmt.Errorf("%s has no %c-side rook in the start position", c, side)
			}
			s := startRooks[i]
			if b.At(s.Row, s.File) != rooks[c] {
				return fmt.Errorf("%s %c-side rook has moved", c, side)
			}
		}
	}
	return nil
}

func checkEnPassant(ep string) error {
	switch {
	case ep == "-" || (ep != "" && ep[0] == '-'):
		return nil
	case len(ep) != 2:
		return fmt.Errorf("en passant square %q: expected 2 characters, got %d", ep, len(ep))
	case isDigit(ep[0]):
		return fmt.Errorf("en passant square %q: file must not be a digit", ep)
	case !isDigit(ep[1]):
		return fmt.Errorf("en passant square %q: rank must be a digit", ep)
	}
	return nil
}

// splitFields splits on single spaces and drops one trailing empty field.
func splitFields(text string) []string {
	parts := strings.Split(text, " ")
	if n := len(parts); n > 0 && parts[n-1] == "" {
		parts = parts[:n-1]
	}
	return parts
}

func isCounter(field string) bool {
	if field == "-" {
		return true
	}
	for i := 0; i < len(field); i++ {
		if !isDigit(field[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpecial(c byte) bool { return strings.IndexByte(specialChars, c) >= 0 }

// Glyph helpers are ASCII only; other bytes are never piece letters.
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

func isLetter(c byte) bool { return isUpper(c) || (c >= 'a' && c <= 'z') }

func upperByte(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func lowerByte(c byte) byte {
	if isUpper(c) {
		return c - 'A' + 'a'
	}
	return c
}
