// Package engine provides chess move validation and board manipulation.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// Engine decides the legality of single moves. It holds no game state,
// only the rule variant it enforces, so one Engine can serve any number
// of boards.
type Engine struct {
	pathBlocking bool
}

// Baseline enforces the reference rule set: shape and destination
// occupancy only, sliding pieces are not blocked by pieces in between.
var Baseline = &Engine{}

// Blocking enforces the baseline rules plus path blocking for rooks,
// bishops and queens.
var Blocking = &Engine{pathBlocking: true}

// New creates an Engine for the rule variant selected in cfg.
// A nil cfg selects the baseline rules.
func New(cfg *config.Config) *Engine {
	if cfg == nil || cfg.Rules == nil {
		return Baseline
	}
	return &Engine{pathBlocking: cfg.Rules.PathBlocking}
}

// PathBlocking reports whether sliding pieces are stopped by occupied squares.
func (e *Engine) PathBlocking() bool {
	return e.pathBlocking
}

// IsLegalMove reports whether moving the piece on from to to is legal
// under the baseline rule set.
func IsLegalMove(board *chess.Board, from, to chess.Square) bool {
	return Baseline.IsLegal(board, from, to)
}

// IsLegal reports whether moving the piece on from to to is legal.
func (e *Engine) IsLegal(board *chess.Board, from, to chess.Square) bool {
	return e.Check(board, from, to).Legal()
}

// Check runs the guards and the piece rule for a candidate move and
// returns the first reason that rejects it, or ReasonLegal.
// Turn order is checked here and nowhere else.
func (e *Engine) Check(board *chess.Board, from, to chess.Square) Reason {
	if from == to {
		return ReasonNullMove
	}
	if !from.Valid() || !to.Valid() {
		return ReasonOffBoard
	}

	mover, ok := board.PieceAt(from)
	if !ok {
		return ReasonNoPiece
	}
	if mover.Side != board.SideToMove() {
		return ReasonWrongTurn
	}
	if target, occupied := board.PieceAt(to); occupied && target.Side == mover.Side {
		return ReasonSelfCapture
	}

	if !canPieceMove(board, mover, from, to) {
		return ReasonInvalidShape
	}
	if e.pathBlocking && isSlider(mover.Kind) && !isPathClear(board, from, to) {
		return ReasonPathBlocked
	}
	return ReasonLegal
}
