package engine

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// lone returns a board holding only p on sq, with p's side to move.
func lone(t *testing.T, sq string, p chess.Piece) *chess.Board {
	t.Helper()
	return testutil.NewTestBoard(t, p.Side, testutil.Placement{sq: p})
}

func TestCheck_Guards(t *testing.T) {
	start := chess.NewBoard()

	tests := []struct {
		name string
		from string
		to   string
		want Reason
	}{
		{"legal pawn push", "e2", "e4", ReasonLegal},
		{"no piece on origin", "e4", "e5", ReasonNoPiece},
		{"black piece on white's turn", "e7", "e5", ReasonWrongTurn},
		{"self capture", "d1", "d2", ReasonSelfCapture},
		{"bad knight shape", "g1", "g3", ReasonInvalidShape},
		{"king cannot step two", "e1", "e3", ReasonInvalidShape},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Baseline.Check(start, testutil.Sq(t, tt.from), testutil.Sq(t, tt.to))
			if got != tt.want {
				t.Errorf("Check(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestCheck_NullMove(t *testing.T) {
	start := chess.NewBoard()
	for i := 0; i < chess.NumSquares; i++ {
		sq := chess.SquareAt(i)
		if IsLegalMove(start, sq, sq) {
			t.Errorf("IsLegalMove(%v, %v) = true, want false", sq, sq)
		}
		if got := Blocking.Check(start, sq, sq); got != ReasonNullMove {
			t.Errorf("Check(%v, %v) = %v, want %v", sq, sq, got, ReasonNullMove)
		}
	}
}

func TestCheck_OffBoard(t *testing.T) {
	b := lone(t, "a1", chess.W(chess.Rook))
	if got := Baseline.Check(b, chess.Sq(0, 0), chess.Sq(0, 8)); got != ReasonOffBoard {
		t.Errorf("Check(a1, off board) = %v, want %v", got, ReasonOffBoard)
	}
	if got := Baseline.Check(b, chess.Sq(-1, 0), chess.Sq(0, 0)); got != ReasonOffBoard {
		t.Errorf("Check(off board, a1) = %v, want %v", got, ReasonOffBoard)
	}
}

func TestCheck_NoSelfCapture(t *testing.T) {
	// Every piece of the side to move against every square holding a
	// piece of the same side, in the starting position and after 1.e4.
	boards := []*chess.Board{chess.NewBoard()}
	after := chess.NewBoard()
	after.Relocate(chess.Sq(1, 4), chess.Sq(3, 4))
	boards = append(boards, after)

	for _, b := range boards {
		mover := b.SideToMove()
		b.Each(func(from chess.Square, p chess.Piece) {
			if p.Side != mover {
				return
			}
			b.Each(func(to chess.Square, q chess.Piece) {
				if q.Side != mover || from == to {
					return
				}
				for _, e := range []*Engine{Baseline, Blocking} {
					if got := e.Check(b, from, to); got != ReasonSelfCapture {
						t.Errorf("%s to move: Check(%v, %v) = %v, want %v", mover, from, to, got, ReasonSelfCapture)
					}
				}
			})
		})
	}
}

func TestCheck_WrongTurn(t *testing.T) {
	b := chess.NewBoard()
	b.SetSideToMove(chess.Black)

	if IsLegalMove(b, testutil.Sq(t, "e2"), testutil.Sq(t, "e4")) {
		t.Error("white pawn moved on black's turn")
	}
	if !IsLegalMove(b, testutil.Sq(t, "e7"), testutil.Sq(t, "e5")) {
		t.Error("black pawn e7-e5 rejected on black's turn")
	}
}

func TestKnight(t *testing.T) {
	tests := []struct {
		from string
		want []string
	}{
		{"b2", []string{"a4", "c4", "d1", "d3"}},
		{"d4", []string{"b3", "b5", "c2", "c6", "e2", "e6", "f3", "f5"}},
		{"a1", []string{"b3", "c2"}},
		{"h8", []string{"f7", "g6"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.from, func(t *testing.T) {
			t.Parallel()
			b := lone(t, tt.from, chess.W(chess.Knight))
			got := testutil.SquareNames(Baseline.Destinations(b, testutil.Sq(t, tt.from)))
			testutil.AssertEqual(t, got, tt.want, "knight on %s", tt.from)
		})
	}
}

func TestKnight_FromRankOneFileOne(t *testing.T) {
	b := lone(t, "b2", chess.W(chess.Knight))
	from := chess.Sq(1, 1)
	want := map[chess.Square]bool{
		chess.Sq(3, 2): true,
		chess.Sq(3, 0): true,
		chess.Sq(2, 3): true,
		chess.Sq(0, 3): true,
	}

	for i := 0; i < chess.NumSquares; i++ {
		to := chess.SquareAt(i)
		if got := IsLegalMove(b, from, to); got != want[to] {
			t.Errorf("IsLegalMove((1,1), %+v) = %v, want %v", to, got, want[to])
		}
	}

	central := lone(t, "d4", chess.W(chess.Knight))
	if n := len(Baseline.Destinations(central, chess.Sq(3, 3))); n != 8 {
		t.Errorf("knight on (3,3) has %d destinations, want 8", n)
	}
}

func TestKing(t *testing.T) {
	tests := []struct {
		from string
		want []string
	}{
		{"e4", []string{"d3", "d4", "d5", "e3", "e5", "f3", "f4", "f5"}},
		{"a1", []string{"a2", "b1", "b2"}},
		{"h5", []string{"g4", "g5", "g6", "h4", "h6"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.from, func(t *testing.T) {
			t.Parallel()
			b := lone(t, tt.from, chess.B(chess.King))
			got := testutil.SquareNames(Baseline.Destinations(b, testutil.Sq(t, tt.from)))
			testutil.AssertEqual(t, got, tt.want, "king on %s", tt.from)
		})
	}
}

func TestSlidersOnEmptyBoard(t *testing.T) {
	tests := []struct {
		kind  chess.PieceKind
		from  string
		count int
	}{
		{chess.Rook, "d4", 14},
		{chess.Rook, "a1", 14},
		{chess.Bishop, "d4", 13},
		{chess.Bishop, "a1", 7},
		{chess.Queen, "d4", 27},
		{chess.Queen, "h8", 21},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("%v on %s", tt.kind, tt.from), func(t *testing.T) {
			t.Parallel()
			b := lone(t, tt.from, chess.W(tt.kind))
			for _, e := range []*Engine{Baseline, Blocking} {
				if n := len(e.Destinations(b, testutil.Sq(t, tt.from))); n != tt.count {
					t.Errorf("PathBlocking=%v: %d destinations, want %d", e.PathBlocking(), n, tt.count)
				}
			}
		})
	}
}

func TestShapes(t *testing.T) {
	tests := []struct {
		kind chess.PieceKind
		from string
		to   string
		want bool
	}{
		{chess.Rook, "a1", "a8", true},
		{chess.Rook, "a1", "h1", true},
		{chess.Rook, "a1", "b2", false},
		{chess.Bishop, "c1", "h6", true},
		{chess.Bishop, "c1", "a3", true},
		{chess.Bishop, "c1", "c2", false},
		{chess.Queen, "d1", "d8", true},
		{chess.Queen, "d1", "h5", true},
		{chess.Queen, "d1", "e3", false},
		{chess.Knight, "g1", "f3", true},
		{chess.Knight, "g1", "g3", false},
		{chess.King, "e1", "f2", true},
		{chess.King, "e1", "g1", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("%v %s-%s", tt.kind, tt.from, tt.to), func(t *testing.T) {
			t.Parallel()
			b := lone(t, tt.from, chess.W(tt.kind))
			got := IsLegalMove(b, testutil.Sq(t, tt.from), testutil.Sq(t, tt.to))
			if got != tt.want {
				t.Errorf("IsLegalMove = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPawn(t *testing.T) {
	tests := []struct {
		name   string
		side   chess.Side
		pieces testutil.Placement
		from   string
		to     string
		want   bool
	}{
		{"white single step", chess.White, testutil.Placement{"e2": chess.W(chess.Pawn)}, "e2", "e3", true},
		{"white double step", chess.White, testutil.Placement{"e2": chess.W(chess.Pawn)}, "e2", "e4", true},
		{"white double step off start rank", chess.White, testutil.Placement{"e3": chess.W(chess.Pawn)}, "e3", "e5", false},
		{"white triple step", chess.White, testutil.Placement{"e2": chess.W(chess.Pawn)}, "e2", "e5", false},
		{"white backwards", chess.White, testutil.Placement{"e3": chess.W(chess.Pawn)}, "e3", "e2", false},
		{"white sideways", chess.White, testutil.Placement{"e3": chess.W(chess.Pawn)}, "e3", "f3", false},
		{"white diagonal onto empty", chess.White, testutil.Placement{"e2": chess.W(chess.Pawn)}, "e2", "f3", false},
		{"white diagonal capture", chess.White, testutil.Placement{"e4": chess.W(chess.Pawn), "d5": chess.B(chess.Knight)}, "e4", "d5", true},
		{"white straight capture", chess.White, testutil.Placement{"e4": chess.W(chess.Pawn), "e5": chess.B(chess.Knight)}, "e4", "e5", false},
		{"white double step onto piece", chess.White, testutil.Placement{"e2": chess.W(chess.Pawn), "e4": chess.B(chess.Pawn)}, "e2", "e4", false},
		{"white capture two files away", chess.White, testutil.Placement{"e4": chess.W(chess.Pawn), "g5": chess.B(chess.Pawn)}, "e4", "g5", false},
		{"black single step", chess.Black, testutil.Placement{"d7": chess.B(chess.Pawn)}, "d7", "d6", true},
		{"black double step", chess.Black, testutil.Placement{"d7": chess.B(chess.Pawn)}, "d7", "d5", true},
		{"black backwards", chess.Black, testutil.Placement{"d6": chess.B(chess.Pawn)}, "d6", "d7", false},
		{"black diagonal capture", chess.Black, testutil.Placement{"d5": chess.B(chess.Pawn), "e4": chess.W(chess.Pawn)}, "d5", "e4", true},
		{"black capture backwards", chess.Black, testutil.Placement{"d5": chess.B(chess.Pawn), "e6": chess.W(chess.Pawn)}, "d5", "e6", false},
		{"black double step blocked", chess.Black, testutil.Placement{"d7": chess.B(chess.Pawn), "d6": chess.W(chess.Pawn)}, "d7", "d5", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := testutil.NewTestBoard(t, tt.side, tt.pieces)
			got := IsLegalMove(b, testutil.Sq(t, tt.from), testutil.Sq(t, tt.to))
			if got != tt.want {
				t.Errorf("IsLegalMove(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestPawn_DoubleStepNeedsEmptyIntermediate(t *testing.T) {
	from, mid, dest := chess.Sq(1, 0), chess.Sq(2, 0), chess.Sq(3, 0)

	b := lone(t, "a2", chess.W(chess.Pawn))
	testutil.AssertTrue(t, IsLegalMove(b, from, mid), "single step onto empty square")
	testutil.AssertTrue(t, IsLegalMove(b, from, dest), "double step over empty square")

	for _, blocker := range []chess.Piece{chess.W(chess.Knight), chess.B(chess.Knight)} {
		b := lone(t, "a2", chess.W(chess.Pawn))
		b.Set(mid, blocker)
		testutil.AssertFalse(t, IsLegalMove(b, from, dest), "double step over %v", blocker)
		testutil.AssertFalse(t, IsLegalMove(b, from, mid), "single step onto %v", blocker)
	}
}

func TestScenario_OpeningPawnMoves(t *testing.T) {
	b := chess.NewBoard()
	e2, e4 := chess.Sq(1, 4), chess.Sq(3, 4)
	e7, e5 := chess.Sq(6, 4), chess.Sq(4, 4)

	testutil.AssertTrue(t, IsLegalMove(b, e2, e4), "e2-e4")
	testutil.AssertFalse(t, IsLegalMove(b, e7, e5), "e7-e5 before White moved")

	_, err := Baseline.Play(b, e2, e4)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, b.SideToMove(), chess.Black)

	testutil.AssertTrue(t, IsLegalMove(b, e7, e5), "e7-e5")
	_, err = Baseline.Play(b, e7, e5)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, b.SideToMove(), chess.White)
	testutil.AssertEqual(t, BoardToFEN(b), "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w - - 0 2")
}

func TestPathBlocking(t *testing.T) {
	tests := []struct {
		name         string
		from         string
		to           string
		wantBaseline Reason
		wantBlocking Reason
	}{
		// The h1 rook is White's own, so this fails on both variants.
		{"rook a1-h1", "a1", "h1", ReasonSelfCapture, ReasonSelfCapture},
		{"rook a1 through a2 to a5", "a1", "a5", ReasonLegal, ReasonPathBlocked},
		{"rook a1 through a2 takes a7", "a1", "a7", ReasonLegal, ReasonPathBlocked},
		{"bishop c1 through d2 to g5", "c1", "g5", ReasonLegal, ReasonPathBlocked},
		{"queen d1 through d2 takes d7", "d1", "d7", ReasonLegal, ReasonPathBlocked},
		{"queen d1 through e2 to h5", "d1", "h5", ReasonLegal, ReasonPathBlocked},
		{"knight jumps on both", "b1", "c3", ReasonLegal, ReasonLegal},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := chess.NewBoard()
			from, to := testutil.Sq(t, tt.from), testutil.Sq(t, tt.to)
			if got := Baseline.Check(b, from, to); got != tt.wantBaseline {
				t.Errorf("Baseline.Check = %v, want %v", got, tt.wantBaseline)
			}
			if got := Blocking.Check(b, from, to); got != tt.wantBlocking {
				t.Errorf("Blocking.Check = %v, want %v", got, tt.wantBlocking)
			}
		})
	}
}

func TestPathBlocking_AdjacentAndCaptureSquares(t *testing.T) {
	b := testutil.NewTestBoard(t, chess.White, testutil.Placement{
		"d4": chess.W(chess.Queen),
		"d5": chess.B(chess.Pawn),
		"f6": chess.B(chess.Pawn),
		"b4": chess.W(chess.Pawn),
	})
	d4 := testutil.Sq(t, "d4")

	tests := []struct {
		to   string
		want Reason
	}{
		{"d5", ReasonLegal},       // adjacent capture, nothing in between
		{"d6", ReasonPathBlocked}, // behind the d5 pawn
		{"f6", ReasonLegal},       // capture at the end of an open diagonal
		{"g7", ReasonPathBlocked},
		{"c4", ReasonLegal},
		{"a4", ReasonPathBlocked},
		{"b4", ReasonSelfCapture},
	}

	for _, tt := range tests {
		if got := Blocking.Check(b, d4, testutil.Sq(t, tt.to)); got != tt.want {
			t.Errorf("Blocking.Check(d4, %s) = %v, want %v", tt.to, got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	if New(nil) != Baseline {
		t.Error("New(nil) should return Baseline")
	}
	if New(nil).PathBlocking() {
		t.Error("baseline engine blocks paths")
	}
}

func TestReason_String(t *testing.T) {
	seen := make(map[string]Reason)
	for r := ReasonLegal; r <= ReasonPathBlocked; r++ {
		s := r.String()
		if s == "unknown" {
			t.Errorf("Reason(%d).String() = unknown", r)
		}
		if prev, dup := seen[s]; dup {
			t.Errorf("Reason(%d) and Reason(%d) share %q", prev, r, s)
		}
		seen[s] = r
	}
	if got := Reason(99).String(); got != "unknown" {
		t.Errorf("Reason(99).String() = %q", got)
	}
}
