package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Validate checks a candidate move and, if it is legal, returns a Move
// that Apply will accept. An illegal move yields a *errors.MoveError
// wrapping errors.ErrIllegalMove.
func (e *Engine) Validate(board *chess.Board, from, to chess.Square) (Move, error) {
	if reason := e.Check(board, from, to); !reason.Legal() {
		return Move{}, newMoveError(board, from, to, reason)
	}
	return newMove(board, from, to), nil
}

// Play validates a move and applies it in one step.
func (e *Engine) Play(board *chess.Board, from, to chess.Square) (Move, error) {
	mv, err := e.Validate(board, from, to)
	if err != nil {
		return Move{}, err
	}
	if err := Apply(board, mv); err != nil {
		return Move{}, err
	}
	return mv, nil
}

// Apply performs a validated move: the piece is relocated, anything on the
// destination is captured and the other side is to move.
//
// Apply refuses a zero Move, a Move validated on another board and a Move
// whose board has changed since it was validated. The board is left
// untouched in all of those cases.
func Apply(board *chess.Board, mv Move) error {
	if mv.IsZero() {
		return fmt.Errorf("move was not validated: %w", errors.ErrIllegalMove)
	}
	if mv.board != board {
		return &errors.MoveError{
			Err:  errors.ErrForeignMove,
			From: mv.from.String(),
			To:   mv.to.String(),
			Side: mv.piece.Side.String(),
		}
	}
	if mv.version != board.Version() {
		return &errors.MoveError{
			Err:  errors.ErrStaleMove,
			From: mv.from.String(),
			To:   mv.to.String(),
			Side: mv.piece.Side.String(),
		}
	}

	board.Relocate(mv.from, mv.to)
	return nil
}

// newMoveError describes a rejected move.
func newMoveError(board *chess.Board, from, to chess.Square, reason Reason) *errors.MoveError {
	side := board.SideToMove().String()
	if from.Valid() {
		if p, ok := board.PieceAt(from); ok {
			side = p.Side.String()
		}
	}
	return &errors.MoveError{
		Err:    errors.ErrIllegalMove,
		From:   from.String(),
		To:     to.String(),
		Side:   side,
		Reason: reason.String(),
	}
}
