// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// options holds the parsed command line.
type options struct {
	fen      string
	blocking bool
	json     bool
	dests    string
	play     string
	batch    string
	workers  int
	help     bool
	version  bool

	from, to chess.Square
	hasMove  bool
}

// usageError marks a problem with the command line itself.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

// parseFlags parses args. Every flag falls back to a CHESS_RULES_*
// environment variable when it is not given on the command line.
func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("chess-rules", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(fs, stderr) }

	fs.StringVar(&opts.fen, "fen", getenv("CHESS_RULES_FEN", engine.InitialFEN), "Position to probe in FEN")
	fs.BoolVar(&opts.blocking, "blocking", getenb("CHESS_RULES_BLOCKING", false), "Stop rooks, bishops and queens at occupied squares")
	fs.BoolVar(&opts.json, "J", getenb("CHESS_RULES_JSON", false), "Output in JSON format")
	fs.StringVar(&opts.dests, "dests", getenv("CHESS_RULES_DESTS", ""), "List legal destinations of the piece on this square")
	fs.StringVar(&opts.play, "play", getenv("CHESS_RULES_PLAY", ""), "Moves to play before probing, e.g. 'e2e4 e7e5'")
	fs.StringVar(&opts.batch, "batch", getenv("CHESS_RULES_BATCH", ""), "Check every 'FROM TO [FEN]' line of this file ('-' for stdin)")
	fs.IntVar(&opts.workers, "workers", getenvInt("CHESS_RULES_WORKERS", 0), "Number of worker threads for -batch (0 = auto-detect based on CPU cores)")
	fs.BoolVar(&opts.help, "h", false, "Show help")
	fs.BoolVar(&opts.version, "version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.help || opts.version {
		return opts, nil
	}

	switch fs.NArg() {
	case 0:
		if opts.dests == "" && opts.batch == "" {
			return nil, &usageError{msg: "need FROM TO, -dests SQUARE or -batch FILE"}
		}
	case 2:
		from, err := chess.ParseSquare(fs.Arg(0))
		if err != nil {
			return nil, err
		}
		to, err := chess.ParseSquare(fs.Arg(1))
		if err != nil {
			return nil, err
		}
		opts.from, opts.to, opts.hasMove = from, to, true
	default:
		return nil, &usageError{msg: fmt.Sprintf("expected FROM TO, got %d arguments", fs.NArg())}
	}

	return opts, nil
}

// buildConfig turns options into a validated configuration.
func buildConfig(opts *options, stdout io.Writer) (*config.Config, error) {
	cfg := config.NewConfigBuilder().
		WithPathBlocking(opts.blocking).
		WithJSONOutput(opts.json).
		WithDestinations(opts.dests != "").
		WithOutput(stdout).
		Build()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// playList splits the -play value into from/to pairs.
func playList(s string) ([][2]chess.Square, error) {
	var moves [][2]chess.Square
	for _, tok := range strings.Fields(s) {
		if len(tok) != 4 {
			return nil, &usageError{msg: fmt.Sprintf("bad move %q in -play, want e.g. e2e4", tok)}
		}
		from, err := chess.ParseSquare(tok[:2])
		if err != nil {
			return nil, err
		}
		to, err := chess.ParseSquare(tok[2:])
		if err != nil {
			return nil, err
		}
		moves = append(moves, [2]chess.Square{from, to})
	}
	return moves, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}
