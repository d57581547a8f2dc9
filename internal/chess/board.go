package chess

// Board holds the current position and whose turn it is.
//
// The grid is a flat array indexed by rank*8+file, so every square is
// always either empty or occupied. A Board is not safe for concurrent
// mutation; see the session package for a serialized wrapper.
type Board struct {
	squares    [NumSquares]Piece
	toMove     Side
	moveNumber uint

	// version is bumped by every mutation so validated moves can detect
	// that the position changed under them.
	version uint64
}

// NewEmptyBoard creates a board with every square empty and White to move.
func NewEmptyBoard() *Board {
	return &Board{
		toMove:     White,
		moveNumber: 1,
	}
}

// NewBoard creates a board set up in the standard starting position.
func NewBoard() *Board {
	b := NewEmptyBoard()
	for file := 0; file < BoardSize; file++ {
		b.squares[Sq(White.HomeRank(), file).Index()] = W(BackRank[file])
		b.squares[Sq(White.PawnRank(), file).Index()] = W(Pawn)
		b.squares[Sq(Black.PawnRank(), file).Index()] = B(Pawn)
		b.squares[Sq(Black.HomeRank(), file).Index()] = B(BackRank[file])
	}
	return b
}

// PieceAt returns the piece on sq and whether the square is occupied.
// sq must be on the board.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	p := b.squares[sq.Index()]
	return p, !p.IsEmpty()
}

// SideToMove returns the side allowed to move next.
func (b *Board) SideToMove() Side {
	return b.toMove
}

// MoveNumber returns the full-move number, starting at 1 and incremented
// after each Black move.
func (b *Board) MoveNumber() uint {
	return b.moveNumber
}

// Version returns a counter that changes whenever the board is mutated.
func (b *Board) Version() uint64 {
	return b.version
}

// Set places a piece on a square. Used for position setup.
func (b *Board) Set(sq Square, p Piece) {
	b.squares[sq.Index()] = p
	b.version++
}

// Clear empties a square. Used for position setup.
func (b *Board) Clear(sq Square) {
	b.Set(sq, NoPiece)
}

// SetSideToMove overrides whose turn it is. Used for position setup.
func (b *Board) SetSideToMove(s Side) {
	b.toMove = s
	b.version++
}

// SetMoveNumber overrides the full-move number. Used for position setup.
func (b *Board) SetMoveNumber(n uint) {
	b.moveNumber = n
	b.version++
}

// Relocate moves whatever is on from to to, overwriting the destination
// (that is how captures happen), empties from and hands the move to the
// other side.
//
// Relocate does no legality checking. Called on an empty from square it
// still clears to and flips the turn. Use engine.Apply with a validated
// move instead unless the move is known to be legal.
func (b *Board) Relocate(from, to Square) {
	b.squares[to.Index()] = b.squares[from.Index()]
	b.squares[from.Index()] = NoPiece
	if b.toMove == Black {
		b.moveNumber++
	}
	b.toMove = b.toMove.Opposite()
	b.version++
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Each calls fn for every occupied square, from a1 to h8.
func (b *Board) Each(fn func(sq Square, p Piece)) {
	for i, p := range b.squares {
		if !p.IsEmpty() {
			fn(SquareAt(i), p)
		}
	}
}

// Count returns how many squares hold exactly p.
func (b *Board) Count(p Piece) int {
	n := 0
	for _, q := range b.squares {
		if q == p {
			n++
		}
	}
	return n
}
