package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
// Castling is not part of the rule set, so no castling rights are listed.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// NewBoardFromFEN creates a board from a FEN string.
//
// Only the piece placement is required. The side to move defaults to White
// and the full-move number to 1. Castling, en passant and halfmove fields
// are accepted for compatibility and ignored.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Expected: "piece placement", Got: "empty string"}
	}

	board := chess.NewEmptyBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}

	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}

	if err := parseMoveNumber(board, parts); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank := chess.BoardSize - 1
	file := 0

	fail := func(i int, expected, got string) error {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    positions,
			Column:   i + 1,
			Expected: expected,
			Got:      got,
		}
	}

	for i := 0; i < len(positions); i++ {
		c := positions[i]
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return fail(i, "8 files per rank", strconv.Itoa(file))
			}
			rank--
			file = 0
			if rank < 0 {
				return fail(i, "8 ranks", "more")
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return fail(i, "8 files per rank", strconv.Itoa(file))
			}
		default:
			kind := chess.KindFromLetter(c)
			if kind == chess.Empty {
				return fail(i, "piece letter", fmt.Sprintf("%q", c))
			}
			if file >= chess.BoardSize {
				return fail(i, "8 files per rank", "more")
			}

			side := chess.White
			if c >= 'a' && c <= 'z' {
				side = chess.Black
			}
			board.Set(chess.Sq(rank, file), chess.Piece{Kind: kind, Side: side})
			file++
		}
	}

	if rank != 0 || file != chess.BoardSize {
		return fail(len(positions)-1, "8 complete ranks", "truncated placement")
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.SetSideToMove(chess.White)
	case "b":
		board.SetSideToMove(chess.Black)
	default:
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: parts[1], Expected: "w or b", Got: parts[1]}
	}
	return nil
}

// parseMoveNumber parses the fullmove number field.
func parseMoveNumber(board *chess.Board, parts []string) error {
	if len(parts) < 6 {
		return nil
	}
	n, err := strconv.ParseUint(parts[5], 10, 32)
	if err != nil || n == 0 {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: parts[5], Expected: "positive move number", Got: parts[5]}
	}
	board.SetMoveNumber(uint(n))
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	fmt.Fprintf(&sb, " - - 0 %d", board.MoveNumber())

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece, ok := board.PieceAt(chess.Sq(rank, file))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.SideToMove() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}
