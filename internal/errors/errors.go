// Package errors provides sentinel errors and error types for variantkit.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a FEN string the position could not be set from.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that is not legal in the position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidMove indicates move text that does not parse.
	ErrInvalidMove = errors.New("invalid move text")

	// ErrUnknownVariant indicates a variant name missing from the registry.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrUnknownNotation indicates a notation name that does not parse.
	ErrUnknownNotation = errors.New("unknown notation")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// MoveError wraps errors with the move being processed: the variant, the
// position it was played from and its text.
type MoveError struct {
	Err      error  // The underlying error
	Variant  string // Variant name (if known)
	FEN      string // Position the move was played from (if known)
	Ply      int    // 1-based ply in a move line (0 if not applicable)
	MoveText string // The move text that caused the error
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Variant != "" {
		parts = append(parts, e.Variant)
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("fen %q", e.FEN))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// FENError reports a FEN string that failed structural validation.
type FENError struct {
	Err    error  // The underlying error
	Code   int    // Numeric validation code (negative)
	Reason string // Symbolic code name, e.g. "INVALID_CHAR"
	Input  string // Line number or name of the input (if known)
	FEN    string // The rejected string
}

// Error returns a formatted error message with the code and input context.
func (e *FENError) Error() string {
	var parts []string

	if e.Input != "" {
		parts = append(parts, e.Input)
	}
	if e.Reason != "" {
		parts = append(parts, fmt.Sprintf("%s (%d)", e.Reason, e.Code))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("%q", e.FEN))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "fen error"
}

// Unwrap returns the underlying error.
func (e *FENError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
