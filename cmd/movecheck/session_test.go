package main

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/config"
	chesserrors "github.com/lgbarn/movecheck-go/internal/errors"
	"github.com/lgbarn/movecheck-go/internal/fen"
	"github.com/lgbarn/movecheck-go/internal/output"
	"github.com/lgbarn/movecheck-go/internal/testutil"
)

func newTestSession(t *testing.T) (*Session, *bytes.Buffer) {
	t.Helper()
	cfg := config.NewConfig()
	cfg.LogFile = io.Discard
	var buf bytes.Buffer
	return NewSession(cfg, chess.NewInitialBoard(), &buf), &buf
}

// runCommands executes each line and fails the test on any error.
func runCommands(t *testing.T, s *Session, lines ...string) {
	t.Helper()
	for _, line := range lines {
		if _, err := s.Execute(line); err != nil {
			t.Fatalf("Execute(%q): %v", line, err)
		}
	}
}

func TestSessionQueries(t *testing.T) {
	tests := []struct {
		name  string
		setup []string
		line  string
		want  string
	}{
		{"check", nil, "check e2e4", "e2e4 (White Pawn): legal\n"},
		{"bare move", nil, "e2e5", "e2e5 (White Pawn): illegal\n"},
		{"upper case command", nil, "CHECK g1f3", "g1f3 (White Knight): legal\n"},
		{"empty origin", nil, "e4e5", "e4e5 (empty): illegal\n"},
		{"moves", nil, "moves g1", "g1 (White Knight): f3 h3\n"},
		{"bare square", nil, "b8", "b8 (Black Knight): a6 c6\n"},
		{"blocked rook", nil, "moves a1", "a1 (White Rook): none\n"},
		{"set then capture", []string{"set e4 q"}, "e4e2", "e4e2 (Black Queen): legal\n"},
		{"clear opens path", []string{"clear e2"}, "e1e2", "e1e2 (White King): legal\n"},
		{"set advanced pawn has moved", []string{"empty", "set b4 P"}, "b4b6", "b4b6 (White Pawn): illegal\n"},
		{"set advanced pawn single step", []string{"empty", "set b4 P"}, "b4b5", "b4b5 (White Pawn): legal\n"},
		{"set home pawn double step", []string{"empty", "set b2 P"}, "b2b4", "b2b4 (White Pawn): legal\n"},
		{"set black home pawn double step", []string{"empty", "set c7 p"}, "c7c5", "c7c5 (Black Pawn): legal\n"},
		{"moved pawn loses double step", []string{"moved a2"}, "a2a4", "a2a4 (White Pawn): illegal\n"},
		{"reset", []string{"clear e2", "moved d2", "reset"}, "d2d4", "d2d4 (White Pawn): legal\n"},
		{"load placement", []string{"fen 8/8/8/8/8/8/8/R7"}, "a1a8", "a1a8 (White Rook): legal\n"},
		{"empty", []string{"empty"}, "fen", "8/8/8/8/8/8/8/8\n"},
		{"fen", nil, "fen", fen.InitialPlacement + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, buf := newTestSession(t)
			runCommands(t, s, tt.setup...)
			buf.Reset()
			runCommands(t, s, tt.line)
			testutil.AssertEqual(t, buf.String(), tt.want)
		})
	}
}

func TestSessionErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"xyzzy", chesserrors.ErrUnknownCommand},
		{"check", chesserrors.ErrUnknownCommand},
		{"set e4", chesserrors.ErrUnknownCommand},
		{"check e9e4", chesserrors.ErrInvalidSquare},
		{"check e2e", chesserrors.ErrInvalidMove},
		{"moves i1", chesserrors.ErrInvalidSquare},
		{"set e4 x", chesserrors.ErrInvalidPiece},
		{"set e4 NN", chesserrors.ErrInvalidPiece},
		{"moved e4", chesserrors.ErrInvalidSquare},
		{"fen 8/8/8", chesserrors.ErrInvalidFEN},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			s, buf := newTestSession(t)
			quit, err := s.Execute(tt.line)
			testutil.AssertFalse(t, quit, "quit")
			testutil.AssertErrorIs(t, err, tt.want)
			testutil.AssertEqual(t, buf.String(), "")
		})
	}
}

func TestSessionFailedLoadKeepsBoard(t *testing.T) {
	s, _ := newTestSession(t)
	before := s.Board()
	if _, err := s.Execute("fen 9/8/8/8/8/8/8/8"); err == nil {
		t.Fatal("expected an error for a nine-square rank")
	}
	if s.Board() != before {
		t.Error("board replaced after a failed load")
	}
	testutil.AssertEqual(t, len(s.Board().Pieces()), 32)
}

func TestSessionResetIsRepeatable(t *testing.T) {
	s, _ := newTestSession(t)
	runCommands(t, s, "empty", "reset", "empty", "reset")
	testutil.AssertEqual(t, fen.Format(s.Board()), fen.InitialPlacement)
}

func TestSessionQuit(t *testing.T) {
	for _, line := range []string{"quit", "exit", "q", "  QUIT  "} {
		s, _ := newTestSession(t)
		quit, err := s.Execute(line)
		testutil.AssertNoError(t, err)
		testutil.AssertTrue(t, quit, line)
	}

	s, _ := newTestSession(t)
	quit, err := s.Execute("   ")
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, quit, "blank line")
}

func TestSessionHelpAndShow(t *testing.T) {
	s, buf := newTestSession(t)
	runCommands(t, s, "help")
	testutil.AssertEqual(t, buf.String(), shellHelp)

	buf.Reset()
	runCommands(t, s, "show")
	testutil.AssertContains(t, buf.String(), "1 R N B Q K B N R")
	testutil.AssertContains(t, buf.String(), "  a b c d e f g h")
}

func TestSessionJSON(t *testing.T) {
	cfg := config.NewConfig()
	cfg.OutputFormat = config.JSON
	var out, log bytes.Buffer
	cfg.LogFile = &log
	s := NewSession(cfg, chess.NewInitialBoard(), &out)

	runCommands(t, s, "check e2e4", "show", "moves g1", "fen")
	testutil.AssertNoError(t, s.Report("zz", chesserrors.ErrUnknownCommand))
	if out.Len() != 0 {
		t.Errorf("JSON written before Close: %q", out.String())
	}
	testutil.AssertNoError(t, s.Close())

	var got []output.Result
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("session output is not one JSON document: %v\n%s", err, out.String())
	}
	testutil.AssertEqual(t, got, []output.Result{
		{Move: "e2e4", Piece: "White Pawn", Legal: true},
		{Move: "g1", Piece: "White Knight", Legal: true, Destinations: []string{"f3", "h3"}},
		{Move: "zz", Error: "unknown command"},
	})
	testutil.AssertContains(t, log.String(), "1 R N B Q K B N R")
	testutil.AssertContains(t, log.String(), fen.InitialPlacement)
}
