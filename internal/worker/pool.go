// Package worker checks batches of moves in parallel.
package worker

import (
	"sort"
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// WorkItem is one move to check against one position.
type WorkItem struct {
	Index int // Original index for ordering results
	FEN   string
	From  chess.Square
	To    chess.Square
}

// ProcessResult is the verdict on a WorkItem.
type ProcessResult struct {
	Index  int
	Item   WorkItem
	Report *output.Report // nil when Error is set
	Legal  bool
	Error  error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers for parallel move checking.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for item := range p.workChan {
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Close closes the work channel and waits for all workers to finish,
// then closes the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run starts the pool, processes items and returns the results in the
// order of item.Index.
func (p *Pool) Run(items []WorkItem) []ProcessResult {
	p.Start()
	go func() {
		for _, item := range items {
			p.Submit(item)
		}
		p.Close()
	}()

	results := make([]ProcessResult, 0, len(items))
	for r := range p.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}

// CheckMove returns a ProcessFunc that loads item.FEN and checks the move
// with eng. Every item gets its own board, so workers share nothing.
func CheckMove(eng *engine.Engine) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		res := ProcessResult{Index: item.Index, Item: item}
		board, err := engine.NewBoardFromFEN(item.FEN)
		if err != nil {
			res.Error = err
			return res
		}
		res.Report = output.NewReport(eng, board)
		res.Report.AddMove(eng, board, item.From, item.To)
		res.Legal = res.Report.Move.Legal
		return res
	}
}
