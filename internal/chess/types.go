// Package chess provides the core board types: sides, pieces, squares and the board itself.
package chess

// Side represents one of the two players.
type Side int

const (
	White Side = iota
	Black
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// Direction returns +1 for White, -1 for Black (pawn direction along the ranks).
func (s Side) Direction() int {
	if s == White {
		return 1
	}
	return -1
}

// PawnRank returns the rank index pawns of this side start on.
func (s Side) PawnRank() int {
	if s == White {
		return 1
	}
	return BoardSize - 2
}

// HomeRank returns the rank index of this side's back rank.
func (s Side) HomeRank() int {
	if s == White {
		return 0
	}
	return BoardSize - 1
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	Empty PieceKind = iota // Unoccupied square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a piece kind.
// It returns Empty for anything that is not a piece letter.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	default:
		return Empty
	}
}

// Piece is a kind paired with the side that owns it.
// The zero value is the empty square.
type Piece struct {
	Kind PieceKind
	Side Side
}

// NoPiece is the empty square value.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return Piece{Kind: kind, Side: White}
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return Piece{Kind: kind, Side: Black}
}

// IsEmpty reports whether p represents an unoccupied square.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Symbol returns the FEN letter for the piece: uppercase for White,
// lowercase for Black, '.' for an empty square.
func (p Piece) Symbol() byte {
	letter := p.Kind.Letter()
	if p.Side == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Knight" or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Side.String() + " " + p.Kind.String()
}

// BackRank is the standard piece order from the a-file to the h-file.
var BackRank = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
