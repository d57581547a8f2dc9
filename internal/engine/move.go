package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Move is a move the engine has validated on a specific board.
//
// The only way to obtain a non-zero Move is through Validate, Play or
// LegalMoves, so holding one is proof that the legality check passed.
// A Move is bound to the board and the board version it was checked
// against; Apply refuses it once either no longer matches.
type Move struct {
	board    *chess.Board
	version  uint64
	from     chess.Square
	to       chess.Square
	piece    chess.Piece
	captured chess.Piece
}

// From returns the origin square.
func (m Move) From() chess.Square {
	return m.from
}

// To returns the destination square.
func (m Move) To() chess.Square {
	return m.to
}

// Piece returns the piece being moved.
func (m Move) Piece() chess.Piece {
	return m.piece
}

// Captured returns the piece standing on the destination, if any.
func (m Move) Captured() (chess.Piece, bool) {
	return m.captured, !m.captured.IsEmpty()
}

// IsZero reports whether m was never issued by the engine.
func (m Move) IsZero() bool {
	return m.board == nil
}

// String returns the move in long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	if m.IsZero() {
		return "0000"
	}
	return m.from.String() + m.to.String()
}

// newMove captures the position details for a move that passed Check.
func newMove(board *chess.Board, from, to chess.Square) Move {
	piece, _ := board.PieceAt(from)
	captured, _ := board.PieceAt(to)
	return Move{
		board:    board,
		version:  board.Version(),
		from:     from,
		to:       to,
		piece:    piece,
		captured: captured,
	}
}
