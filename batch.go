package staticsearch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one point query in a batch.
type Result struct {
	Value uint32
	Found bool
}

// batchChunk is the number of queries each worker handles per task. Large
// enough to amortize goroutine scheduling, small enough to balance load.
const batchChunk = 1024

// LowerBoundBatch answers many point queries, fanning chunks out across
// goroutines. Results are positionally aligned with xs. The context is
// checked between chunks; a canceled context abandons the batch and returns
// the context error.
func (ix *Index) LowerBoundBatch(ctx context.Context, xs []uint32) ([]Result, error) {
	out := make([]Result, len(xs))
	if len(xs) == 0 {
		return out, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for start := 0; start < len(xs); start += batchChunk {
		start := start
		end := min(start+batchChunk, len(xs))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				v, ok := ix.impl.LowerBound(xs[i])
				out[i] = Result{Value: v, Found: ok}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
