// Package fen checks the structure of FEN strings against a variant
// descriptor before they are handed to a position parser.
package fen

import (
	"strconv"

	"github.com/lgbarn/variantkit-go/internal/errors"
)

// Code is the outcome of a validation. Negative values name the first rule
// that failed.
type Code int

const (
	MissingSpaceDelim    Code = -12
	InvalidNbParts       Code = -11
	InvalidChar          Code = -10
	TouchingKings        Code = -9
	InvalidBoardGeometry Code = -8
	InvalidPocketInfo    Code = -7
	InvalidSideToMove    Code = -6
	InvalidCastlingInfo  Code = -5
	InvalidEnPassantSq   Code = -4
	InvalidNumberOfKings Code = -3
	InvalidHalfMoveCount Code = -2
	InvalidMoveCounter   Code = -1
	Empty                Code = 0
	OK                   Code = 1
)

var codeNames = map[Code]string{
	MissingSpaceDelim:    "FEN_MISSING_SPACE_DELIM",
	InvalidNbParts:       "FEN_INVALID_NB_PARTS",
	InvalidChar:          "FEN_INVALID_CHAR",
	TouchingKings:        "FEN_TOUCHING_KINGS",
	InvalidBoardGeometry: "FEN_INVALID_BOARD_GEOMETRY",
	InvalidPocketInfo:    "FEN_INVALID_POCKET_INFO",
	InvalidSideToMove:    "FEN_INVALID_SIDE_TO_MOVE",
	InvalidCastlingInfo:  "FEN_INVALID_CASTLING_INFO",
	InvalidEnPassantSq:   "FEN_INVALID_EN_PASSANT_SQ",
	InvalidNumberOfKings: "FEN_INVALID_NUMBER_OF_KINGS",
	InvalidHalfMoveCount: "FEN_INVALID_HALF_MOVE_COUNTER",
	InvalidMoveCounter:   "FEN_INVALID_MOVE_COUNTER",
	Empty:                "FEN_EMPTY",
	OK:                   "FEN_OK",
}

// String returns the symbolic name, e.g. FEN_TOUCHING_KINGS.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "FEN_CODE(" + strconv.Itoa(int(c)) + ")"
}

// Err returns nil for OK and a *errors.FENError wrapping ErrInvalidFEN
// otherwise.
func (c Code) Err() error {
	if c == OK {
		return nil
	}
	return &errors.FENError{
		Err:    errors.ErrInvalidFEN,
		Code:   int(c),
		Reason: c.String(),
	}
}

// Codes lists every code from the most negative to OK.
func Codes() []Code {
	codes := make([]Code, 0, len(codeNames))
	for c := MissingSpaceDelim; c <= OK; c++ {
		codes = append(codes, c)
	}
	return codes
}
