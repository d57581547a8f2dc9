package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// canPawnMove checks a pawn move: one step forward onto an empty square,
// two steps forward from the starting rank over an empty square, or one
// step diagonally forward onto an occupied square. Same-side targets were
// already rejected by the caller, so any occupant here is a capture.
func canPawnMove(board *chess.Board, side chess.Side, from, to chess.Square) bool {
	direction := side.Direction()
	forward := from.Rank + direction
	_, targetOccupied := board.PieceAt(to)

	// Single step
	if to.Rank == forward && to.File == from.File {
		return !targetOccupied
	}

	// Double step from the starting rank
	if from.Rank == side.PawnRank() && to.Rank == from.Rank+2*direction && to.File == from.File {
		_, middleOccupied := board.PieceAt(chess.Sq(forward, from.File))
		return !middleOccupied && !targetOccupied
	}

	// Diagonal capture
	if to.Rank == forward && abs(to.File-from.File) == 1 {
		return targetOccupied
	}

	return false
}
