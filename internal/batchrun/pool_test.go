package batchrun

import (
	"context"
	"testing"

	"github.com/gitrdm/gokando-sme/pkg/sme"
)

func simpleGraphs(t *testing.T) (*sme.Graph, *sme.Graph) {
	t.Helper()
	f := sme.NewPredicate("f", 1, sme.RelationPredicate)
	base, err := sme.NewGraph(sme.NewExpression(f, sme.NewEntity("a")))
	if err != nil {
		t.Fatalf("base graph: %v", err)
	}
	target, err := sme.NewGraph(sme.NewExpression(f, sme.NewEntity("x")))
	if err != nil {
		t.Fatalf("target graph: %v", err)
	}
	return base, target
}

func TestPool_RunReturnsOneResultPerJobInOrder(t *testing.T) {
	base, target := simpleGraphs(t)
	jobs := make([]Job, 5)
	for i := range jobs {
		jobs[i] = Job{Name: string(rune('a' + i)), Base: base, Target: target}
	}

	pool := NewPool(3)
	results, stats := pool.Run(context.Background(), jobs)

	if len(results) != len(jobs) {
		t.Fatalf("expected %d results, got %d", len(jobs), len(results))
	}
	for i, r := range results {
		if r.Name != jobs[i].Name {
			t.Errorf("result %d: name = %q, want %q", i, r.Name, jobs[i].Name)
		}
		if r.Err != nil {
			t.Errorf("job %d: unexpected error %v", i, r.Err)
		}
		if r.Result == nil || len(r.Result.GMaps) != 1 {
			t.Errorf("job %d: expected one GMap, got %v", i, r.Result)
		}
	}
	if stats.Completed != int64(len(jobs)) || stats.Failed != 0 {
		t.Errorf("stats = %+v, want %d completed, 0 failed", stats, len(jobs))
	}
}

func TestPool_EmptyJobsYieldsNoResults(t *testing.T) {
	pool := NewPool(4)
	results, stats := pool.Run(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("expected no results for an empty batch, got %d", len(results))
	}
	if stats.Submitted != 0 {
		t.Errorf("expected no submissions for an empty batch, got %d", stats.Submitted)
	}
}

func TestPool_CancelledContextFailsUnstartedJobs(t *testing.T) {
	base, target := simpleGraphs(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []Job{{Name: "a", Base: base, Target: target}, {Name: "b", Base: base, Target: target}}
	pool := NewPool(2)
	results, stats := pool.Run(ctx, jobs)

	for i, r := range results {
		if r.Err == nil {
			t.Errorf("job %d: expected cancellation error, got result %v", i, r.Result)
		}
	}
	if stats.Failed != int64(len(jobs)) {
		t.Errorf("expected all jobs to fail after cancellation, got %+v", stats)
	}
}

func TestPool_DefaultsToOneWorkerWhenNonPositive(t *testing.T) {
	pool := NewPool(0)
	if pool.workers != 1 {
		t.Errorf("workers = %d, want 1", pool.workers)
	}
}
