// Package fanout provides a generic, bounded-concurrency helper for
// application-layer prefetching. The cache warmup path uses it to describe
// many entity types against the remote metadata API without opening an
// unbounded number of connections.
//
// It manages goroutines, a semaphore for the concurrency bound, and context
// cancellation, and nothing else; the function being fanned out is
// responsible for its own timeouts and retries.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of processing a single item: Value on success,
// a non-nil Err on failure.
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most limit concurrent goroutines
// and returns the results in input order.
//
// A goroutine that is still waiting for a semaphore slot when ctx is
// canceled records ctx.Err() and never calls fn. Goroutines that already
// hold a slot run to completion; fn should check ctx itself if it supports
// cancellation mid-flight.
//
// Run blocks until every goroutine finishes. An empty input returns an
// empty non-nil slice. limit must be >= 1.
func Run[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(idx int, it T) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, it)
			results[idx] = Result[R]{Value: val, Err: err}
		}(i, item)
	}

	wg.Wait()
	return results
}

// Errors collects the non-nil errors from a result slice, preserving input
// order. Returns nil when every item succeeded.
func Errors[R any](results []Result[R]) []error {
	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return errs
}
