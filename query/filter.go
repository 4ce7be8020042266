package query

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Filter applies a filter expression to every document in order and
// returns the matching subset plus a boolean mask aligned 1:1 with the
// input. The subset preserves input order; mask[i] is the Match result for
// documents[i]. A configuration error fails the whole call with no partial
// results.
func Filter(documents []map[string]any, filter map[string]any) ([]map[string]any, []bool, error) {
	if err := Validate(filter); err != nil {
		return nil, nil, err
	}

	mask := make([]bool, len(documents))
	subset := make([]map[string]any, 0, len(documents))
	for i, doc := range documents {
		ok, err := Match(doc, filter)
		if err != nil {
			return nil, nil, err
		}
		mask[i] = ok
		if ok {
			subset = append(subset, doc)
		}
	}
	return subset, mask, nil
}

// FilterParallel is Filter with document-level parallelism. Matching is
// stateless per document, so the mask is identical to Filter's for the
// same inputs. workers <= 0 uses one worker per CPU. Useful when documents
// number in the millions; for small collections Filter is cheaper.
func FilterParallel(ctx context.Context, documents []map[string]any, filter map[string]any, workers int) ([]map[string]any, []bool, error) {
	if err := Validate(filter); err != nil {
		return nil, nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	mask := make([]bool, len(documents))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range documents {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ok, err := Match(documents[i], filter)
			if err != nil {
				return err
			}
			mask[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	subset := make([]map[string]any, 0, len(documents))
	for i, ok := range mask {
		if ok {
			subset = append(subset, documents[i])
		}
	}
	return subset, mask, nil
}
