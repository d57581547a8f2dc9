package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// canPieceMove checks if the move matches the movement rule of the piece.
// Only pawns look at the board; everything else is pure geometry.
func canPieceMove(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	rankDiff := abs(to.Rank - from.Rank)
	fileDiff := abs(to.File - from.File)

	switch piece.Kind {
	case chess.Pawn:
		return canPawnMove(board, piece.Side, from, to)

	case chess.Knight:
		return (rankDiff == 2 && fileDiff == 1) || (rankDiff == 1 && fileDiff == 2)

	case chess.Bishop:
		return isDiagonal(rankDiff, fileDiff)

	case chess.Rook:
		return isStraight(rankDiff, fileDiff)

	case chess.Queen:
		return isStraight(rankDiff, fileDiff) || isDiagonal(rankDiff, fileDiff)

	case chess.King:
		return rankDiff <= 1 && fileDiff <= 1
	}

	return false
}

func isStraight(rankDiff, fileDiff int) bool {
	return rankDiff == 0 || fileDiff == 0
}

func isDiagonal(rankDiff, fileDiff int) bool {
	return rankDiff == fileDiff
}

// isSlider reports whether the piece moves along open lines.
func isSlider(kind chess.PieceKind) bool {
	switch kind {
	case chess.Bishop, chess.Rook, chess.Queen:
		return true
	}
	return false
}
