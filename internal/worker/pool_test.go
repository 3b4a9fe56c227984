package worker

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/output"
	"github.com/lgbarn/movecheck-go/internal/testutil"
)

// echoProcessFunc returns a process function that echoes its input.
func echoProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Index: item.Index, Result: output.Result{Move: item.Input}}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Index: item.Index, Result: output.Result{Move: item.Input, Legal: true}}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Input: "e2e4", Index: i})
	}

	go pool.Close()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

func TestPoolSingleWorker(t *testing.T) {
	pool := NewPool(echoProcessFunc(), WithBufferSize(5))
	pool.Start()

	const numItems = 5
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Input: "a1", Index: i})
	}

	go pool.Close()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
}

func TestPoolResultOrder(t *testing.T) {
	variableDelayFunc := func(item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(10 * time.Millisecond)
		}
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(variableDelayFunc, WithWorkers(4), WithBufferSize(20))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Index: i})
	}

	go pool.Close()

	seen := make(map[int]bool)
	for result := range pool.Results() {
		seen[result.Index] = true
	}

	if len(seen) != numItems {
		t.Errorf("received %d results; want %d", len(seen), numItems)
	}
	for i := 0; i < numItems; i++ {
		if !seen[i] {
			t.Errorf("missing index %d in results", i)
		}
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(50))
	pool.Start()

	const numItems = 100
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(WorkItem{Index: i})
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

func TestNewPool(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"with multiple options", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"negative workers ignored", []PoolOption{WithWorkers(-1)}, 1, 10},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(echoProcessFunc(), tt.opts...)
			if got := pool.NumWorkers(); got != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}

func TestRun_PreservesOrder(t *testing.T) {
	inputs := make([]string, 50)
	for i := range inputs {
		inputs[i] = fmt.Sprintf("q%02d", i)
	}

	results := Run(inputs, 8, func(in string) output.Result {
		if in[len(in)-1]%2 == 0 {
			time.Sleep(time.Millisecond)
		}
		return output.Result{Move: in}
	})

	testutil.AssertEqual(t, len(results), len(inputs))
	for i, r := range results {
		if r.Move != inputs[i] {
			t.Fatalf("results[%d].Move = %q; want %q", i, r.Move, inputs[i])
		}
	}
}

func TestRun_SharedBoard(t *testing.T) {
	board := chess.NewInitialBoard()
	moves := []string{"e2e4", "e2e5", "g1f3", "b1b3", "d7d5", "f8c5"}

	sequential := Run(moves, 1, func(in string) output.Result {
		return output.NewResult(board, testutil.MustParseMove(t, in))
	})
	parallel := Run(moves, 4, func(in string) output.Result {
		return output.NewResult(board, testutil.MustParseMove(t, in))
	})

	testutil.AssertEqual(t, parallel, sequential)
	testutil.AssertTrue(t, parallel[0].Legal, "e2e4")
	testutil.AssertFalse(t, parallel[1].Legal, "e2e5")
	testutil.AssertFalse(t, parallel[5].Legal, "f8c5 through own pawn")
}

func TestRun_Empty(t *testing.T) {
	results := Run(nil, 4, func(string) output.Result {
		t.Error("process called with no inputs")
		return output.Result{}
	})
	testutil.AssertEqual(t, len(results), 0)
}
