package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidMove", ErrInvalidMove, ErrInvalidMove},
		{"ErrUnknownVariant", ErrUnknownVariant, ErrUnknownVariant},
		{"ErrUnknownNotation", ErrUnknownNotation, ErrUnknownNotation},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies sentinels do not match each other
func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrInvalidMove) {
		t.Error("ErrIllegalMove should not match ErrInvalidMove")
	}
	if Is(ErrUnknownVariant, ErrUnknownNotation) {
		t.Error("ErrUnknownVariant should not match ErrUnknownNotation")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:      ErrIllegalMove,
				Variant:  "xiangqi",
				FEN:      "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1",
				Ply:      3,
				MoveText: "h2e9",
			},
			contains: []string{"xiangqi", "ply 3", "h2e9", "rnbakabnr", "illegal move"},
		},
		{
			name: "minimal context",
			err: &MoveError{
				Err: ErrInvalidMove,
			},
			contains: []string{"invalid move text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_As verifies that errors.As works through further wrapping
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:      ErrIllegalMove,
		Variant:  "shogi",
		MoveText: "P*e5",
	}

	wrapped := fmt.Errorf("notate failed: %w", moveErr)

	var extracted *MoveError
	if !As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.MoveText != "P*e5" {
		t.Errorf("extracted.MoveText = %q, want %q", extracted.MoveText, "P*e5")
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

// TestFENError_Error verifies FENError formatting
func TestFENError_Error(t *testing.T) {
	err := &FENError{
		Err:    ErrInvalidFEN,
		Code:   -10,
		Reason: "INVALID_CHAR",
		Input:  "line 7",
		FEN:    "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",
	}

	msg := err.Error()
	for _, s := range []string{"line 7", "INVALID_CHAR", "-10", "RNBQKBNX"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("FENError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrInvalidFEN) {
		t.Error("errors.Is(err, ErrInvalidFEN) = false, want true")
	}
}

func TestFENError_Empty(t *testing.T) {
	if got := (&FENError{}).Error(); got != "fen error" {
		t.Errorf("FENError{}.Error() = %q, want %q", got, "fen error")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "setting position")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "setting position") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrUnknownVariant, "%q", "chaturanga")

	if !errors.Is(wrapped, ErrUnknownVariant) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), `"chaturanga"`) {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
