package sequence

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// mapParallel starts fn for every item before awaiting any of them. Results
// are stored by index.
func (e *Engine) mapParallel(ctx context.Context, fn Func) ([]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	items := e.items
	out := make([]any, len(items))
	g, gctx := errgroup.WithContext(ctx)
	if e.opts.concurrency > 0 {
		g.SetLimit(e.opts.concurrency)
	}
	started := 0
	for i, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			v, err := fn(gctx, item, i, items)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
		started++
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if started < len(items) {
		return nil, ctx.Err()
	}
	return out, nil
}

// mapSeries awaits fn for item i before starting item i+1.
func (e *Engine) mapSeries(ctx context.Context, fn Func) ([]any, error) {
	items := e.items
	out := make([]any, len(items))
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := fn(ctx, item, i, items)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// testAll evaluates pred for every item with the parallel discipline.
func (e *Engine) testAll(ctx context.Context, pred Predicate) ([]bool, error) {
	raw, err := e.mapParallel(ctx, pred.asFunc())
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(raw))
	for i, v := range raw {
		out[i], _ = v.(bool)
	}
	return out, nil
}

func (e *Engine) testSeries(ctx context.Context, pred Predicate) ([]bool, error) {
	raw, err := e.mapSeries(ctx, pred.asFunc())
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(raw))
	for i, v := range raw {
		out[i], _ = v.(bool)
	}
	return out, nil
}

// search returns the index of the first item (or last, when reverse is set)
// for which pred reports want, or -1. Items are checked in batches of width;
// a batch runs in parallel and no further batch starts once one decides.
func (e *Engine) search(ctx context.Context, pred Predicate, want bool, width int, reverse bool) (int, error) {
	items := e.items
	n := len(items)
	if width < 1 {
		width = 1
	}
	for done := 0; done < n; done += width {
		if err := ctx.Err(); err != nil {
			return -1, err
		}
		size := min(width, n-done)
		indices := make([]int, size)
		for k := range indices {
			if reverse {
				indices[k] = n - 1 - done - k
			} else {
				indices[k] = done + k
			}
		}
		results := make([]bool, size)
		if size == 1 {
			ok, err := pred(ctx, items[indices[0]], indices[0], items)
			if err != nil {
				return -1, err
			}
			results[0] = ok
		} else {
			g, gctx := errgroup.WithContext(ctx)
			for k, idx := range indices {
				g.Go(func() error {
					ok, err := pred(gctx, items[idx], idx, items)
					if err != nil {
						return err
					}
					results[k] = ok
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return -1, err
			}
		}
		for k, ok := range results {
			if ok == want {
				return indices[k], nil
			}
		}
	}
	return -1, nil
}
