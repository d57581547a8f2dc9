package engine

// Reason says why the engine accepted or rejected a move.
type Reason int

const (
	ReasonLegal        Reason = iota
	ReasonNullMove            // from and to are the same square
	ReasonOffBoard            // a square lies outside a1..h8
	ReasonNoPiece             // nothing stands on the origin square
	ReasonWrongTurn           // the piece belongs to the side not on move
	ReasonSelfCapture         // the destination holds a piece of the mover's side
	ReasonInvalidShape        // the geometry does not match the piece's movement
	ReasonPathBlocked         // a sliding piece would pass through an occupied square
)

// String returns a short human-readable description of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonLegal:
		return "legal"
	case ReasonNullMove:
		return "null move"
	case ReasonOffBoard:
		return "off board"
	case ReasonNoPiece:
		return "no piece on origin"
	case ReasonWrongTurn:
		return "wrong side to move"
	case ReasonSelfCapture:
		return "self capture"
	case ReasonInvalidShape:
		return "invalid shape for piece"
	case ReasonPathBlocked:
		return "path blocked"
	}
	return "unknown"
}

// Legal reports whether r is ReasonLegal.
func (r Reason) Legal() bool {
	return r == ReasonLegal
}
