// chess-rules checks single chess moves against a position.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitLegal   = 0
	exitIllegal = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitLegal
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	if opts.help {
		usage(nil, stdout)
		return exitLegal
	}
	if opts.version {
		fmt.Fprintf(stdout, "chess-rules version %s\n", programVersion)
		return exitLegal
	}

	cfg, err := buildConfig(opts, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	eng := engine.New(cfg)

	game, err := session.NewFromFEN(eng, opts.fen)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	moves, err := playList(opts.play)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	for _, m := range moves {
		if _, err := game.Move(m[0], m[1]); err != nil {
			fmt.Fprintf(stderr, "Error: playing %s%s: %v\n", m[0], m[1], err)
			return exitIllegal
		}
	}

	if opts.batch != "" {
		return runBatch(opts, cfg, eng, game.FEN(), stdout, stderr)
	}

	board := game.Snapshot()
	report := output.NewReport(eng, board)

	code := exitLegal
	if opts.hasMove {
		report.AddMove(eng, board, opts.from, opts.to)
		if !report.Move.Legal {
			code = exitIllegal
		}
	}
	if cfg.Output.ListDestinations {
		from, err := chess.ParseSquare(opts.dests)
		if err != nil {
			fmt.Fprintf(stderr, "Error: -dests: %v\n", err)
			return exitUsage
		}
		report.AddDestinations(eng, board, from)
	}

	if err := output.NewWriter(cfg.Output).WriteReport(report); err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return exitUsage
	}
	return code
}

// usage prints help. With a flag set it also lists the flags.
func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: chess-rules [options] [FROM TO]\n")
	fmt.Fprintf(w, "       chess-rules [options] -batch FILE\n\n")
	fmt.Fprintf(w, "Checks whether moving the piece on FROM to TO is legal.\n\n")
	if fs != nil {
		fmt.Fprintf(w, "Options:\n")
		fs.PrintDefaults()
	}
	fmt.Fprintf(w, "\nExit status:\n")
	fmt.Fprintf(w, "  0  move is legal, or only destinations were listed\n")
	fmt.Fprintf(w, "  1  move is illegal (with -batch: at least one move is illegal)\n")
	fmt.Fprintf(w, "  2  usage or input error\n")
}
