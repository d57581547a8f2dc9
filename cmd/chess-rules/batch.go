package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// runBatch checks every move listed in opts.batch. Lines without a FEN
// are checked against defaultFEN.
func runBatch(opts *options, cfg *config.Config, eng *engine.Engine, defaultFEN string, stdout, stderr io.Writer) int {
	items, err := loadBatch(opts.batch, defaultFEN)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	numWorkers := opts.workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	pool := worker.NewPool(worker.CheckMove(eng),
		worker.WithWorkers(numWorkers),
		worker.WithBufferSize(numWorkers*2))
	results := pool.Run(items)

	w := output.NewWriter(cfg.Output)
	code := exitLegal
	for _, res := range results {
		if res.Error != nil {
			fmt.Fprintf(stderr, "Error: line %d: %v\n", res.Index+1, res.Error)
			code = exitUsage
			continue
		}
		if !res.Legal && code == exitLegal {
			code = exitIllegal
		}
		if err := w.WriteReport(res.Report); err != nil {
			fmt.Fprintf(stderr, "Error writing output: %v\n", err)
			return exitUsage
		}
	}
	return code
}

// loadBatch reads work items from path, or from stdin if path is "-".
func loadBatch(path, defaultFEN string) ([]worker.WorkItem, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path) //nolint:gosec // G304: path comes from the user's command line
		if err != nil {
			return nil, fmt.Errorf("opening batch file: %w", err)
		}
		defer f.Close()
		r = f
	}
	return parseBatch(r, defaultFEN)
}

// parseBatch reads one "FROM TO [FEN]" probe per line. Blank lines and
// lines starting with '#' are skipped. Index is the zero-based line number.
func parseBatch(r io.Reader, defaultFEN string) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected FROM TO [FEN], got %q", line, text)
		}
		from, err := chess.ParseSquare(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		to, err := chess.ParseSquare(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		fen := defaultFEN
		if len(fields) > 2 {
			fen = strings.Join(fields[2:], " ")
		}
		items = append(items, worker.WorkItem{Index: line - 1, FEN: fen, From: from, To: to})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading batch: %w", err)
	}
	return items, nil
}
