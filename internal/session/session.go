// Package session provides a game that can be shared between goroutines.
package session

import (
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Game wraps a board and the engine that rules it with mutex protection.
// Each Move checks and applies under one write lock, so two goroutines
// racing on the same position cannot both succeed.
type Game struct {
	mu     sync.RWMutex
	board  *chess.Board
	engine *engine.Engine
}

// New creates a game at the standard starting position.
// A nil eng selects the baseline rules.
func New(eng *engine.Engine) *Game {
	if eng == nil {
		eng = engine.Baseline
	}
	return &Game{board: chess.NewBoard(), engine: eng}
}

// NewFromFEN creates a game at the position described by fen.
func NewFromFEN(eng *engine.Engine, fen string) (*Game, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	g := New(eng)
	g.board = board
	return g, nil
}

// Move validates and plays from-to atomically.
func (g *Game) Move(from, to chess.Square) (engine.Move, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.engine.Play(g.board, from, to)
}

// Check reports why from-to would be accepted or rejected right now.
func (g *Game) Check(from, to chess.Square) engine.Reason {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.engine.Check(g.board, from, to)
}

// PieceAt returns the piece on sq.
func (g *Game) PieceAt(sq chess.Square) (chess.Piece, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.board.PieceAt(sq)
}

// SideToMove returns the side whose turn it is.
func (g *Game) SideToMove() chess.Side {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.board.SideToMove()
}

// FEN returns the current position.
func (g *Game) FEN() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return engine.BoardToFEN(g.board)
}

// Destinations lists where the piece on from may legally go.
func (g *Game) Destinations(from chess.Square) []chess.Square {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.engine.Destinations(g.board, from)
}

// Snapshot returns a private copy of the board. Changes to the copy do
// not affect the game.
func (g *Game) Snapshot() *chess.Board {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.board.Copy()
}
