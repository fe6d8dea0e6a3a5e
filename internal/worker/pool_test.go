package worker

import (
	"context"
	"sync/atomic"
	"testing"
)

type testJob struct {
	id      int
	execute func(ctx context.Context) error
}

type testResult struct {
	id  int
	err error
}

func (r *testResult) GetError() error { return r.err }

func (j *testJob) Execute(ctx context.Context) Result {
	var err error
	if j.execute != nil {
		err = j.execute(ctx)
	}
	return &testResult{id: j.id, err: err}
}

func TestPool_RunsAllJobs(t *testing.T) {
	pool := NewPool(3)
	pool.Start()

	var executed atomic.Int32
	for i := 0; i < 10; i++ {
		pool.Submit(&testJob{id: i, execute: func(ctx context.Context) error {
			executed.Add(1)
			return nil
		}})
	}

	results := pool.Wait()
	if len(results) != 10 {
		t.Fatalf("Expected 10 results, got %d", len(results))
	}
	if executed.Load() != 10 {
		t.Errorf("Expected 10 executions, got %d", executed.Load())
	}
}

func TestPool_ResultsCarryJobIdentity(t *testing.T) {
	pool := NewPool(4)
	pool.Start()

	for i := 0; i < 8; i++ {
		pool.Submit(&testJob{id: i})
	}

	seen := make(map[int]bool)
	for _, res := range pool.Wait() {
		tr := res.(*testResult)
		if seen[tr.id] {
			t.Errorf("Duplicate result for job %d", tr.id)
		}
		seen[tr.id] = true
	}
	if len(seen) != 8 {
		t.Errorf("Expected results for 8 distinct jobs, got %d", len(seen))
	}
}

func TestPool_ZeroWorkersClamped(t *testing.T) {
	pool := NewPool(0)
	pool.Start()

	pool.Submit(&testJob{id: 1})
	results := pool.Wait()
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
}

func TestPool_Shutdown(t *testing.T) {
	pool := NewPool(2)
	pool.Start()
	pool.Shutdown()

	// Submitting after shutdown must not block or panic.
	pool.Submit(&testJob{id: 1})
}
