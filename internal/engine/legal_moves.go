package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Destinations returns every square the piece on from may legally move to,
// in a1..h8 order. It returns nil if from is empty, off the board or not
// owned by the side to move.
func (e *Engine) Destinations(board *chess.Board, from chess.Square) []chess.Square {
	if !from.Valid() {
		return nil
	}
	piece, ok := board.PieceAt(from)
	if !ok || piece.Side != board.SideToMove() {
		return nil
	}

	var targets []chess.Square
	for i := 0; i < chess.NumSquares; i++ {
		to := chess.SquareAt(i)
		if e.IsLegal(board, from, to) {
			targets = append(targets, to)
		}
	}
	return targets
}

// LegalMoves returns every legal move for the side to move, ordered by
// origin square and then destination square.
func (e *Engine) LegalMoves(board *chess.Board) []Move {
	var moves []Move
	for i := 0; i < chess.NumSquares; i++ {
		from := chess.SquareAt(i)
		for _, to := range e.Destinations(board, from) {
			moves = append(moves, newMove(board, from, to))
		}
	}
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (e *Engine) HasLegalMoves(board *chess.Board) bool {
	for i := 0; i < chess.NumSquares; i++ {
		if len(e.Destinations(board, chess.SquareAt(i))) > 0 {
			return true
		}
	}
	return false
}
