package collect

import (
	"context"

	"github.com/kbukum/lazycollect/pipeline"
	"github.com/kbukum/lazycollect/sequence"
)

// The Async surface accepts callbacks that take a context and may fail.
// Chain methods return a pipeline; nothing runs until one of its terminal
// methods is called. Terminal methods build the same pipeline and drain it.

// MapAsync queues a parallel map on a new pipeline.
func (c *Collection) MapAsync(fn sequence.Func) *pipeline.Pipeline {
	return c.Defer().Map(fn)
}

// MapSeries queues a map that runs one item at a time.
func (c *Collection) MapSeries(fn sequence.Func) *pipeline.Pipeline {
	return c.Defer().MapSeries(fn)
}

// FilterAsync queues a parallel filter on a new pipeline.
func (c *Collection) FilterAsync(pred sequence.Predicate) *pipeline.Pipeline {
	return c.Defer().Filter(pred)
}

// FilterSeries queues a filter that runs one item at a time.
func (c *Collection) FilterSeries(pred sequence.Predicate) *pipeline.Pipeline {
	return c.Defer().FilterSeries(pred)
}

// RejectAsync queues a parallel reject on a new pipeline.
func (c *Collection) RejectAsync(pred sequence.Predicate) *pipeline.Pipeline {
	return c.Defer().Reject(pred)
}

// RejectSeries queues a reject that runs one item at a time.
func (c *Collection) RejectSeries(pred sequence.Predicate) *pipeline.Pipeline {
	return c.Defer().RejectSeries(pred)
}

// FlatMapAsync queues a parallel flat map on a new pipeline.
func (c *Collection) FlatMapAsync(fn sequence.Func) *pipeline.Pipeline {
	return c.Defer().FlatMap(fn)
}

// TapAsync queues a side effect on a new pipeline.
func (c *Collection) TapAsync(fn sequence.Action) *pipeline.Pipeline {
	return c.Defer().Tap(fn)
}

// UniqueByAsync queues deduplication by a selector that may block.
func (c *Collection) UniqueByAsync(sel sequence.Selector) *pipeline.Pipeline {
	return c.Defer().UniqueBy(sel)
}

// SomeAsync reports whether pred accepts at least one item.
func (c *Collection) SomeAsync(ctx context.Context, pred sequence.Predicate) (bool, error) {
	return c.Defer().Some(ctx, pred)
}

// SomeSeries is SomeAsync probing one item at a time.
func (c *Collection) SomeSeries(ctx context.Context, pred sequence.Predicate) (bool, error) {
	return c.Defer().SomeSeries(ctx, pred)
}

// EveryAsync reports whether pred accepts every item.
func (c *Collection) EveryAsync(ctx context.Context, pred sequence.Predicate) (bool, error) {
	return c.Defer().Every(ctx, pred)
}

// EverySeries is EveryAsync probing one item at a time.
func (c *Collection) EverySeries(ctx context.Context, pred sequence.Predicate) (bool, error) {
	return c.Defer().EverySeries(ctx, pred)
}

// FindAsync returns the first item pred accepts.
func (c *Collection) FindAsync(ctx context.Context, pred sequence.Predicate) (any, bool, error) {
	return c.Defer().Find(ctx, pred)
}

// FindSeries is FindAsync probing one item at a time.
func (c *Collection) FindSeries(ctx context.Context, pred sequence.Predicate) (any, bool, error) {
	return c.Defer().FindSeries(ctx, pred)
}

// ReduceAsync folds the items left to right with a reducer that may block.
func (c *Collection) ReduceAsync(ctx context.Context, fn sequence.Reducer, initial any) (any, error) {
	return c.Defer().Reduce(ctx, fn, initial)
}

// ReduceRightAsync folds the items right to left with a reducer that may
// block.
func (c *Collection) ReduceRightAsync(ctx context.Context, fn sequence.Reducer, initial any) (any, error) {
	return c.Defer().ReduceRight(ctx, fn, initial)
}

// ForEachAsync runs fn for every item in parallel.
func (c *Collection) ForEachAsync(ctx context.Context, fn sequence.Action) error {
	return c.Defer().ForEach(ctx, fn)
}

// ForEachSeries runs fn for every item, one at a time and in order.
func (c *Collection) ForEachSeries(ctx context.Context, fn sequence.Action) error {
	return c.Defer().ForEachSeries(ctx, fn)
}

// CountAsync returns the number of items pred accepts.
func (c *Collection) CountAsync(ctx context.Context, pred sequence.Predicate) (int, error) {
	return c.Defer().Count(ctx, pred)
}
