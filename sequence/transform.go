package sequence

import (
	"context"
	"slices"
)

// Map applies fn to every item in parallel.
func (e *Engine) Map(ctx context.Context, fn Func) ([]any, error) {
	return e.mapParallel(ctx, fn)
}

// MapSeries applies fn to one item at a time, in order.
func (e *Engine) MapSeries(ctx context.Context, fn Func) ([]any, error) {
	return e.mapSeries(ctx, fn)
}

// MapIf applies fn in parallel when cond holds and otherwise returns the
// items unchanged.
func (e *Engine) MapIf(ctx context.Context, cond bool, fn Func) ([]any, error) {
	if !cond {
		return e.All(), nil
	}
	return e.mapParallel(ctx, fn)
}

// Filter keeps the items pred accepts. Predicates run in parallel.
func (e *Engine) Filter(ctx context.Context, pred Predicate) ([]any, error) {
	keep, err := e.testAll(ctx, pred)
	if err != nil {
		return nil, err
	}
	return e.pick(keep, true), nil
}

// FilterSeries is Filter with predicates run one at a time.
func (e *Engine) FilterSeries(ctx context.Context, pred Predicate) ([]any, error) {
	keep, err := e.testSeries(ctx, pred)
	if err != nil {
		return nil, err
	}
	return e.pick(keep, true), nil
}

// FilterIf filters when cond holds and otherwise returns the items unchanged.
func (e *Engine) FilterIf(ctx context.Context, cond bool, pred Predicate) ([]any, error) {
	if !cond {
		return e.All(), nil
	}
	return e.Filter(ctx, pred)
}

// Reject drops the items pred accepts.
func (e *Engine) Reject(ctx context.Context, pred Predicate) ([]any, error) {
	drop, err := e.testAll(ctx, pred)
	if err != nil {
		return nil, err
	}
	return e.pick(drop, false), nil
}

// RejectSeries is Reject with predicates run one at a time.
func (e *Engine) RejectSeries(ctx context.Context, pred Predicate) ([]any, error) {
	drop, err := e.testSeries(ctx, pred)
	if err != nil {
		return nil, err
	}
	return e.pick(drop, false), nil
}

func (e *Engine) pick(flags []bool, want bool) []any {
	out := make([]any, 0, len(e.items))
	for i, item := range e.items {
		if flags[i] == want {
			out = append(out, item)
		}
	}
	return out
}

// FlatMap maps in parallel, then spreads slice results one level.
func (e *Engine) FlatMap(ctx context.Context, fn Func) ([]any, error) {
	mapped, err := e.mapParallel(ctx, fn)
	if err != nil {
		return nil, err
	}
	return flattenOne(mapped), nil
}

// ForEach runs fn for every item in parallel.
func (e *Engine) ForEach(ctx context.Context, fn Action) error {
	_, err := e.mapParallel(ctx, fn.asFunc())
	return err
}

// ForEachSeries runs fn for one item at a time, in order.
func (e *Engine) ForEachSeries(ctx context.Context, fn Action) error {
	_, err := e.mapSeries(ctx, fn.asFunc())
	return err
}

// Tap runs fn for every item, one at a time, and returns the items unchanged.
func (e *Engine) Tap(ctx context.Context, fn Action) ([]any, error) {
	if err := e.ForEachSeries(ctx, fn); err != nil {
		return nil, err
	}
	return e.All(), nil
}

// Reduce folds the items left to right, starting from initial.
func (e *Engine) Reduce(ctx context.Context, fn Reducer, initial any) (any, error) {
	carry := initial
	for i, item := range e.items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, err := fn(ctx, carry, item, i, e.items)
		if err != nil {
			return nil, err
		}
		carry = next
	}
	return carry, nil
}

// ReduceRight folds the items right to left, starting from initial.
func (e *Engine) ReduceRight(ctx context.Context, fn Reducer, initial any) (any, error) {
	carry := initial
	for i := len(e.items) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, err := fn(ctx, carry, e.items[i], i, e.items)
		if err != nil {
			return nil, err
		}
		carry = next
	}
	return carry, nil
}

// UniqueBy keeps the first item for every identity sel returns. Selectors
// run in parallel; deduplication follows item order.
func (e *Engine) UniqueBy(ctx context.Context, sel Selector) ([]any, error) {
	ids, err := e.mapParallel(ctx, sel.asFunc())
	if err != nil {
		return nil, err
	}
	return e.dedupe(ids), nil
}

// dedupe keeps the first item for every distinct id; ids[i] belongs to item i.
func (e *Engine) dedupe(ids []any) []any {
	seen := make(map[any]struct{}, len(ids))
	out := make([]any, 0, len(e.items))
	for i, id := range ids {
		k := identityKey(id)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, e.items[i])
	}
	return out
}

// UniqueBySeries is UniqueBy with selectors run one at a time.
func (e *Engine) UniqueBySeries(ctx context.Context, sel Selector) ([]any, error) {
	ids, err := e.mapSeries(ctx, sel.asFunc())
	if err != nil {
		return nil, err
	}
	return e.dedupe(ids), nil
}

// Sort returns the items stably sorted by cmp, or by Compare when cmp is nil.
func (e *Engine) Sort(cmp Comparator) []any {
	if cmp == nil {
		cmp = Compare
	}
	out := e.All()
	slices.SortStableFunc(out, cmp)
	return out
}
