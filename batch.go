package spatialmap

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// NearestResult pairs a query with its nearest stored element.
type NearestResult[T any] struct {
	Query   T
	Nearest T
	Found   bool
}

// NearestBatch runs Nearest for every query concurrently, using at most the
// configured number of goroutines (see WithMaxConcurrency). Results are
// returned in query order. It fails only if ctx is cancelled.
func (m *SpatialMap[T]) NearestBatch(ctx context.Context, queries []T) ([]NearestResult[T], error) {
	results := make([]NearestResult[T], len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.maxConcurrency)

	for i, q := range queries {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			nearest, found := m.Nearest(q)
			results[i] = NearestResult[T]{Query: q, Nearest: nearest, Found: found}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
