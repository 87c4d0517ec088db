// Package bench drives load against the item service and aggregates
// latency statistics. Two modes are supported: a fixed request count and
// a fixed wall-clock duration.
package bench

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Operation performs one request against the target. The returned error
// marks the sample as failed; latency is recorded either way.
type Operation func(ctx context.Context) error

type Config struct {
	// Requests is the total number of operations for fixed-count runs.
	Requests int
	// Duration bounds fixed-duration runs.
	Duration time.Duration
	// Concurrency is the number of parallel workers. Values below 1 run
	// a single worker.
	Concurrency int
}

// Result aggregates the outcome of a run. Percentiles are computed over
// all samples, successful or not.
type Result struct {
	Total    int
	Success  int
	Failed   int
	Duration time.Duration
	RPS      float64

	Min  time.Duration
	Mean time.Duration
	Max  time.Duration
	P50  time.Duration
	P95  time.Duration
	P99  time.Duration

	Errors map[string]int
}

type sample struct {
	latency time.Duration
	err     error
}

type collector struct {
	mu      sync.Mutex
	samples []sample
}

func (c *collector) record(latency time.Duration, err error) {
	c.mu.Lock()
	c.samples = append(c.samples, sample{latency: latency, err: err})
	c.mu.Unlock()
}

// Run executes op cfg.Requests times across cfg.Concurrency workers.
func Run(ctx context.Context, cfg Config, op Operation) *Result {
	workers := cfg.Concurrency
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan struct{})
	col := &collector{samples: make([]sample, 0, cfg.Requests)}

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				t0 := time.Now()
				err := op(ctx)
				col.record(time.Since(t0), err)
			}
		}()
	}

	for i := 0; i < cfg.Requests && ctx.Err() == nil; i++ {
		select {
		case jobs <- struct{}{}:
		case <-ctx.Done():
		}
	}
	close(jobs)
	wg.Wait()

	return summarize(col.samples, time.Since(start))
}

// RunForDuration executes op continuously across cfg.Concurrency workers
// until cfg.Duration elapses or ctx is canceled.
func RunForDuration(ctx context.Context, cfg Config, op Operation) *Result {
	workers := cfg.Concurrency
	if workers < 1 {
		workers = 1
	}

	runCtx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	col := &collector{}

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for runCtx.Err() == nil {
				t0 := time.Now()
				err := op(runCtx)
				if runCtx.Err() != nil && err != nil {
					// The in-flight request was cut off by the deadline,
					// not failed by the server.
					return
				}
				col.record(time.Since(t0), err)
			}
		}()
	}
	wg.Wait()

	return summarize(col.samples, time.Since(start))
}

func summarize(samples []sample, elapsed time.Duration) *Result {
	result := &Result{
		Total:    len(samples),
		Duration: elapsed,
		Errors:   make(map[string]int),
	}
	if len(samples) == 0 {
		return result
	}

	latencies := make([]time.Duration, 0, len(samples))
	var sum time.Duration
	for _, s := range samples {
		latencies = append(latencies, s.latency)
		sum += s.latency
		if s.err != nil {
			result.Failed++
			result.Errors[s.err.Error()]++
		} else {
			result.Success++
		}
	}
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	result.Min = latencies[0]
	result.Max = latencies[len(latencies)-1]
	result.Mean = sum / time.Duration(len(latencies))
	result.P50 = percentile(latencies, 0.50)
	result.P95 = percentile(latencies, 0.95)
	result.P99 = percentile(latencies, 0.99)
	if elapsed > 0 {
		result.RPS = float64(len(samples)) / elapsed.Seconds()
	}
	return result
}

// percentile reads the q-th percentile from an ascending-sorted sample.
func percentile(sorted []time.Duration, q float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(float64(len(sorted)) * q)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
