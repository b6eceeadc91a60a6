package testutil

import (
	"testing"

	"github.com/lgbarn/variantkit-go/internal/chess"
	"github.com/lgbarn/variantkit-go/internal/engine"
	"github.com/lgbarn/variantkit-go/internal/variant"
)

// MustVariant returns a built-in variant. It calls t.Fatal if the name is
// not registered.
func MustVariant(t testing.TB, name string) *variant.Variant {
	t.Helper()
	v, err := variant.Get(name)
	if err != nil {
		t.Fatalf("variant %q: %v", name, err)
	}
	return v
}

// MustPosition sets up a position of the named variant. An empty fen
// selects the start position.
func MustPosition(t testing.TB, variantName, fen string) *engine.Position {
	t.Helper()
	return MustPositionOf(t, MustVariant(t, variantName), fen)
}

// MustPositionOf is MustPosition for a variant value, typically a modified
// clone of a built-in one.
func MustPositionOf(t testing.TB, v *variant.Variant, fen string) *engine.Position {
	t.Helper()
	if fen == "" {
		fen = v.StartFEN
	}
	pos, err := engine.NewPositionFromFEN(v, fen)
	if err != nil {
		t.Fatalf("position %q (%s): %v", fen, v.Name, err)
	}
	return pos
}

// MustMove parses a UCI move that must be legal in pos.
func MustMove(t testing.TB, pos *engine.Position, uci string) chess.Move {
	t.Helper()
	m, err := pos.ParseUCI(uci)
	if err != nil {
		t.Fatalf("move %q: %v", uci, err)
	}
	return m
}

// MustPlay plays a sequence of UCI moves on pos and returns them.
func MustPlay(t testing.TB, pos *engine.Position, ucis ...string) []chess.Move {
	t.Helper()
	moves := make([]chess.Move, 0, len(ucis))
	for _, text := range ucis {
		m := MustMove(t, pos, text)
		pos.DoMove(m)
		moves = append(moves, m)
	}
	return moves
}
