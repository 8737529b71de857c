// Package batchrun runs a fixed batch of independent Match invocations
// across a bounded pool of goroutines. Unlike a long-lived goal-search
// scheduler, the workload here is enumerable up front and every job is a
// pure, terminating call into pkg/sme — there is no need for dynamic
// worker scaling, work stealing, or deadlock detection, only a queue and a
// place to collect results.
package batchrun

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/gitrdm/gokando-sme/pkg/sme"
)

// Job names one Match invocation to run as part of a batch.
type Job struct {
	Name   string
	Base   *sme.Graph
	Target *sme.Graph
	Opts   []sme.MatchOption
}

// JobResult is one Job's outcome. Err is set instead of Result when Match
// itself failed (a rule failure or malformed graph); a Job that simply
// found no GMaps is not an error.
type JobResult struct {
	Name   string
	Result *sme.Result
	Err    error
}

// Stats counts what a Pool run did, for callers that want a one-line
// summary without walking every JobResult.
type Stats struct {
	Submitted int64
	Completed int64
	Failed    int64
}

// Pool runs jobs across a fixed number of worker goroutines.
type Pool struct {
	workers int
}

// NewPool constructs a Pool with the given worker count. A non-positive
// count defaults to 1 — batches are typically small enough that the
// caller should size this explicitly rather than reach for NumCPU.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Run executes every job and returns one JobResult per job, in the same
// order jobs were given. Run blocks until every job has either completed
// or ctx has been cancelled; a cancelled context stops dispatching new
// jobs but does not interrupt jobs already in flight, since Match itself
// only honours cancellation inside the combiner stage (via
// sme.WithContext, which callers thread into each Job's Opts).
func (p *Pool) Run(ctx context.Context, jobs []Job) ([]JobResult, Stats) {
	results := make([]JobResult, len(jobs))
	if len(jobs) == 0 {
		return results, Stats{}
	}

	var stats Stats
	type indexed struct {
		idx int
		job Job
	}
	work := make(chan indexed, len(jobs))
	for i, j := range jobs {
		work <- indexed{idx: i, job: j}
	}
	close(work)

	var wg sync.WaitGroup
	workers := p.workers
	if workers > len(jobs) {
		workers = len(jobs)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range work {
				select {
				case <-ctx.Done():
					results[item.idx] = JobResult{Name: item.job.Name, Err: ctx.Err()}
					atomic.AddInt64(&stats.Failed, 1)
					continue
				default:
				}

				atomic.AddInt64(&stats.Submitted, 1)
				res, err := sme.Match(item.job.Base, item.job.Target, item.job.Opts...)
				if err != nil {
					results[item.idx] = JobResult{Name: item.job.Name, Err: err}
					atomic.AddInt64(&stats.Failed, 1)
					continue
				}
				results[item.idx] = JobResult{Name: item.job.Name, Result: res}
				atomic.AddInt64(&stats.Completed, 1)
			}
		}()
	}
	wg.Wait()

	return results, stats
}
