package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Placement maps algebraic square names to the piece standing there.
type Placement map[string]chess.Piece

// NewTestBoard builds a board holding exactly the given pieces with side to move.
// It calls t.Fatal on a bad square name.
func NewTestBoard(t *testing.T, side chess.Side, pieces Placement) *chess.Board {
	t.Helper()
	b := chess.NewEmptyBoard()
	for name, p := range pieces {
		sq, err := chess.ParseSquare(name)
		if err != nil {
			t.Fatalf("NewTestBoard: %v", err)
		}
		b.Set(sq, p)
	}
	b.SetSideToMove(side)
	return b
}

// Sq parses an algebraic square name, calling t.Fatal if it is invalid.
func Sq(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("Sq(%q): %v", name, err)
	}
	return sq
}

// SquareNames converts squares to sorted algebraic names, which makes
// destination sets easy to compare with AssertEqual.
func SquareNames(squares []chess.Square) []string {
	names := make([]string, 0, len(squares))
	for _, sq := range squares {
		names = append(names, sq.String())
	}
	sort.Strings(names)
	return names
}
