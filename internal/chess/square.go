package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase = '1'
	FileBase = 'a'
)

// Square is a (rank, file) board coordinate. Rank 0 is White's home rank
// and file 0 is the a-file.
type Square struct {
	Rank int
	File int
}

// Sq is shorthand for Square{Rank: rank, File: file}.
func Sq(rank, file int) Square {
	return Square{Rank: rank, File: file}
}

// Valid reports whether both coordinates are on the board.
func (s Square) Valid() bool {
	return s.Rank >= 0 && s.Rank < BoardSize && s.File >= 0 && s.File < BoardSize
}

// Index returns the flat board index rank*8+file.
func (s Square) Index() int {
	return s.Rank*BoardSize + s.File
}

// SquareAt converts a flat index back to a Square.
func SquareAt(index int) Square {
	return Square{Rank: index / BoardSize, File: index % BoardSize}
}

// String returns the algebraic name of the square, e.g. "e2".
// Off-board squares are printed as their raw coordinates.
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Rank, s.File)
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase + s.Rank)})
}

// ParseSquare converts an algebraic name like "e2" to a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", name, errors.ErrInvalidSquare)
	}
	file, rank := name[0], name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("square %q: %w", name, errors.ErrInvalidSquare)
	}
	return Square{Rank: int(rank - RankBase), File: int(file - FileBase)}, nil
}

// MustParseSquare is ParseSquare for constant inputs; it panics on a bad name.
func MustParseSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}
