// Package worker provides a worker pool for answering queries in parallel.
// Queries only read the board, so any number of workers may share one.
package worker

import (
	"sync"

	"github.com/lgbarn/movecheck-go/internal/output"
)

// WorkItem is one query as typed by the user: a move or a square.
type WorkItem struct {
	Input string
	Index int // Position in the input, for restoring order
}

// ProcessResult is the answer to one WorkItem.
type ProcessResult struct {
	Index  int
	Result output.Result
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers answering queries.
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

// NewPool creates a pool. processFunc is required; other settings
// default to 1 worker and a buffer of 10.
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

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once the last worker exits.
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

// Run answers every input with process using the given number of workers
// and returns the results in input order.
func Run(inputs []string, workers int, process func(string) output.Result) []output.Result {
	pool := NewPool(func(item WorkItem) ProcessResult {
		return ProcessResult{Index: item.Index, Result: process(item.Input)}
	}, WithWorkers(workers), WithBufferSize(len(inputs)))
	pool.Start()

	go func() {
		for i, input := range inputs {
			pool.Submit(WorkItem{Input: input, Index: i})
		}
		pool.Close()
	}()

	results := make([]output.Result, len(inputs))
	for r := range pool.Results() {
		results[r.Index] = r.Result
	}
	return results
}
