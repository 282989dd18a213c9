package collect

import (
	"context"

	apperrors "github.com/kbukum/lazycollect/errors"
	"github.com/kbukum/lazycollect/sequence"
)

// call runs op when fn is present and records an InvalidArgument error
// otherwise.
func (c *Collection) call(operation string, missing bool, op func(e *sequence.Engine) ([]any, error)) *Collection {
	if c.err == nil && missing {
		return c.derive(nil, apperrors.InvalidArgument(operation, "callback is nil"))
	}
	return c.chain(op)
}

func (c *Collection) shape(op func(e *sequence.Engine) []any) *Collection {
	return c.chain(func(e *sequence.Engine) ([]any, error) { return op(e), nil })
}

// Clone returns an independent copy.
func (c *Collection) Clone() *Collection {
	return c.shape((*sequence.Engine).All)
}

// Map transforms every item.
func (c *Collection) Map(fn MapFunc) *Collection {
	return c.call("map", fn == nil, func(e *sequence.Engine) ([]any, error) {
		return e.MapSeries(context.Background(), fn.seq())
	})
}

// MapIf transforms every item when cond holds and copies the items otherwise.
func (c *Collection) MapIf(cond bool, fn MapFunc) *Collection {
	if !cond {
		return c.Clone()
	}
	return c.Map(fn)
}

// Filter keeps the items pred accepts.
func (c *Collection) Filter(pred PredicateFunc) *Collection {
	return c.call("filter", pred == nil, func(e *sequence.Engine) ([]any, error) {
		return e.FilterSeries(context.Background(), pred.seq())
	})
}

// FilterIf filters when cond holds and copies the items otherwise.
func (c *Collection) FilterIf(cond bool, pred PredicateFunc) *Collection {
	if !cond {
		return c.Clone()
	}
	return c.Filter(pred)
}

// Reject drops the items pred accepts.
func (c *Collection) Reject(pred PredicateFunc) *Collection {
	return c.call("reject", pred == nil, func(e *sequence.Engine) ([]any, error) {
		return e.RejectSeries(context.Background(), pred.seq())
	})
}

// FlatMap transforms every item and spreads slice results one level.
func (c *Collection) FlatMap(fn MapFunc) *Collection {
	return c.call("flatMap", fn == nil, func(e *sequence.Engine) ([]any, error) {
		mapped, err := e.MapSeries(context.Background(), fn.seq())
		if err != nil {
			return nil, err
		}
		return sequence.New(mapped).Collapse(), nil
	})
}

// Tap calls fn for every item and keeps the items unchanged.
func (c *Collection) Tap(fn EachFunc) *Collection {
	return c.call("tap", fn == nil, func(e *sequence.Engine) ([]any, error) {
		return e.Tap(context.Background(), fn.seq())
	})
}

// UniqueBy keeps the first item for every identity sel returns.
func (c *Collection) UniqueBy(sel SelectorFunc) *Collection {
	return c.call("uniqueBy", sel == nil, func(e *sequence.Engine) ([]any, error) {
		return e.UniqueBySeries(context.Background(), sel.seq())
	})
}

// Chunk splits the items into groups of size.
func (c *Collection) Chunk(size int) *Collection {
	return c.chain(func(e *sequence.Engine) ([]any, error) { return e.Chunk(size) })
}

// Collapse spreads nested slices one level.
func (c *Collection) Collapse() *Collection { return c.shape((*sequence.Engine).Collapse) }

// Flatten is an alias of Collapse.
func (c *Collection) Flatten() *Collection { return c.Collapse() }

// Compact drops falsy items.
func (c *Collection) Compact() *Collection { return c.shape((*sequence.Engine).Compact) }

// Diff keeps the items absent from values.
func (c *Collection) Diff(values any) *Collection {
	return c.shape(func(e *sequence.Engine) []any { return e.Diff(sequence.Normalize(values)) })
}

// Intersect keeps the items present in values.
func (c *Collection) Intersect(values any) *Collection {
	return c.shape(func(e *sequence.Engine) []any { return e.Intersect(sequence.Normalize(values)) })
}

// Union appends values and drops duplicates.
func (c *Collection) Union(values any) *Collection {
	return c.shape(func(e *sequence.Engine) []any { return e.Union(sequence.Normalize(values)) })
}

// Concat appends values, spreading slices one level.
func (c *Collection) Concat(values ...any) *Collection {
	return c.shape(func(e *sequence.Engine) []any { return e.Concat(values...) })
}

// Push appends values.
func (c *Collection) Push(values ...any) *Collection {
	return c.shape(func(e *sequence.Engine) []any { return e.Push(values...) })
}

// Unshift prepends values.
func (c *Collection) Unshift(values ...any) *Collection {
	return c.shape(func(e *sequence.Engine) []any { return e.Unshift(values...) })
}

// Unique drops duplicates, comparing the value at key when one is given.
func (c *Collection) Unique(key ...string) *Collection {
	return c.chain(func(e *sequence.Engine) ([]any, error) { return e.Unique(key...) })
}

// Pluck extracts the value at each key path.
func (c *Collection) Pluck(keys ...string) *Collection {
	return c.chain(func(e *sequence.Engine) ([]any, error) { return e.Pluck(keys...) })
}

// Reverse reverses the order of the items.
func (c *Collection) Reverse() *Collection { return c.shape((*sequence.Engine).Reverse) }

// Sort orders the items with cmp, or with the default ordering when cmp is
// nil. The sort is stable.
func (c *Collection) Sort(cmp sequence.Comparator) *Collection {
	return c.shape(func(e *sequence.Engine) []any { return e.Sort(cmp) })
}

// Slice returns the items from start, limited to limit items when given.
func (c *Collection) Slice(start int, limit ...int) *Collection {
	return c.shape(func(e *sequence.Engine) []any { return e.Slice(start, limit...) })
}

// Take returns the first limit items, or the last -limit items when limit
// is negative.
func (c *Collection) Take(limit int) *Collection {
	return c.shape(func(e *sequence.Engine) []any { return e.Take(limit) })
}

// Splice removes limit items from start, inserting inserts in their place.
// It changes c and returns the removed items.
func (c *Collection) Splice(start, limit int, inserts ...any) *Collection {
	return c.remove(func(e *sequence.Engine) []any { return e.Splice(start, limit, inserts...) })
}

// TakeAndRemove returns the same items as Take and removes them from c.
func (c *Collection) TakeAndRemove(limit int) *Collection {
	return c.remove(func(e *sequence.Engine) []any { return e.TakeAndRemove(limit) })
}

func (c *Collection) remove(op func(e *sequence.Engine) []any) *Collection {
	if c.err != nil {
		return c
	}
	e := c.engine()
	removed := op(e)
	c.items = e.All()
	return &Collection{items: removed, opts: c.opts}
}
