package output

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Report describes one probe of a position.
type Report struct {
	FEN          string             `json:"fen"`
	SideToMove   string             `json:"sideToMove"`
	Rules        string             `json:"rules"`
	Move         *MoveReport        `json:"move,omitempty"`
	Destinations *DestinationReport `json:"destinations,omitempty"`
}

// MoveReport is the verdict on a single candidate move.
type MoveReport struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece,omitempty"`
	Captured  string `json:"captured,omitempty"`
	Legal     bool   `json:"legal"`
	Reason    string `json:"reason"`
	ResultFEN string `json:"resultFEN,omitempty"`
}

// DestinationReport lists every legal target of one piece.
type DestinationReport struct {
	From    string   `json:"from"`
	Squares []string `json:"squares"`
}

// NewReport starts a report for board under the rules of eng.
func NewReport(eng *engine.Engine, board *chess.Board) *Report {
	return &Report{
		FEN:        engine.BoardToFEN(board),
		SideToMove: board.SideToMove().String(),
		Rules:      rulesName(eng),
	}
}

// AddMove records whether from-to is legal. For a legal move the
// resulting position is computed on a copy, so board is not modified.
func (r *Report) AddMove(eng *engine.Engine, board *chess.Board, from, to chess.Square) {
	reason := eng.Check(board, from, to)
	mr := &MoveReport{
		From:   from.String(),
		To:     to.String(),
		Legal:  reason.Legal(),
		Reason: reason.String(),
	}

	if from.Valid() {
		if p, ok := board.PieceAt(from); ok {
			mr.Piece = p.String()
		}
	}

	if reason.Legal() {
		after := board.Copy()
		mv, err := eng.Play(after, from, to)
		if err == nil {
			if captured, ok := mv.Captured(); ok {
				mr.Captured = captured.String()
			}
			mr.ResultFEN = engine.BoardToFEN(after)
		}
	}

	r.Move = mr
}

// AddDestinations records the legal targets of the piece on from.
func (r *Report) AddDestinations(eng *engine.Engine, board *chess.Board, from chess.Square) {
	squares := eng.Destinations(board, from)
	names := make([]string, 0, len(squares))
	for _, sq := range squares {
		names = append(names, sq.String())
	}
	r.Destinations = &DestinationReport{From: from.String(), Squares: names}
}

func rulesName(eng *engine.Engine) string {
	if eng.PathBlocking() {
		return "blocking"
	}
	return "baseline"
}
