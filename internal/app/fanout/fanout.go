// Package fanout runs one function over many inputs with a bounded number of
// goroutines. Results keep input order. The broadcast event publisher uses it
// to deliver each event to every sink at once.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Result holds the outcome for a single input.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most limit calls in flight and returns
// one Result per item, in input order. A limit below 1 is treated as 1.
//
// An item still waiting for a slot when ctx is done records ctx.Err() and
// fn is not called for it. Calls already running are left to observe ctx
// themselves. Run returns once every item has a result.
func Run[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}
	limit = max(limit, 1)

	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return
			}
			defer func() { <-sem }()

			results[i].Value, results[i].Err = fn(ctx, item)
		})
	}
	wg.Wait()

	return results
}

// Each is Run for functions without a value. It returns the failures joined
// with errors.Join, or nil when every call succeeded.
func Each[T any](ctx context.Context, limit int, items []T, fn func(context.Context, T) error) error {
	results := Run(ctx, limit, items, func(ctx context.Context, it T) (struct{}, error) {
		return struct{}{}, fn(ctx, it)
	})
	return JoinErrors(results)
}

// JoinErrors joins the non-nil errors of results in input order.
func JoinErrors[R any](results []Result[R]) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}
