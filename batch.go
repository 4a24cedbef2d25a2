package kdforest

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// SearchBatch runs Search for every query concurrently and returns the
// results in query order. The first failing query or a cancelled context
// aborts the batch.
func (f *Forest[T]) SearchBatch(ctx context.Context, queries [][]T, k, budget int, optFns ...func(o *SearchOptions[T])) ([][]Neighbor, error) {
	start := time.Now()

	results, err := f.searchBatch(ctx, queries, k, budget, optFns)

	failed := 0
	if err != nil {
		failed = 1
	}
	f.opts.MetricsCollector.RecordBatchSearch(len(queries), failed, time.Since(start))
	f.opts.Logger.LogBatchSearch(ctx, len(queries), err)

	return results, err
}

func (f *Forest[T]) searchBatch(ctx context.Context, queries [][]T, k, budget int, optFns []func(o *SearchOptions[T])) ([][]Neighbor, error) {
	results := make([][]Neighbor, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, query := range queries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := f.Search(query, k, budget, optFns...)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
