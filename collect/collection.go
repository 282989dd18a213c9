package collect

import (
	"context"

	"github.com/kbukum/lazycollect/pipeline"
	"github.com/kbukum/lazycollect/sequence"
)

// MapFunc transforms one item.
type MapFunc func(item any, index int) any

// PredicateFunc tests one item.
type PredicateFunc func(item any, index int) bool

// ReduceFunc folds one item into the accumulator.
type ReduceFunc func(carry, item any, index int) any

// SelectorFunc derives the identity used for deduplication.
type SelectorFunc func(item any) any

// EachFunc runs a side effect for one item.
type EachFunc func(item any, index int)

// Collection is an immutable, eagerly evaluated collection. Chain methods
// return new collections; only Splice, TakeAndRemove, Pop and Shift change
// the receiver.
type Collection struct {
	items []any
	opts  []pipeline.Option
	err   error
}

// From creates a Collection over input. nil yields an empty collection, a
// slice or array is copied element by element, and any other value becomes
// a single item. opts apply to every pipeline the collection is upgraded to.
func From(input any, opts ...pipeline.Option) *Collection {
	return &Collection{items: sequence.Normalize(input), opts: opts}
}

// AllAs converts every item of c to T.
func AllAs[T any](c *Collection) ([]T, error) {
	return pipeline.AllAs[T](context.Background(), c.Defer())
}

// Err returns the first error recorded on the collection.
func (c *Collection) Err() error { return c.err }

// All returns a copy of the items.
func (c *Collection) All() []any { return c.engine().All() }

// Defer returns a pipeline over the items. If the collection holds an
// error, every drain of the pipeline returns it.
func (c *Collection) Defer() *pipeline.Pipeline {
	if c.err != nil {
		return pipeline.Failed(c.err, c.opts...)
	}
	return pipeline.New(c.items, c.opts...)
}

// engine returns an engine over a copy of the items.
func (c *Collection) engine() *sequence.Engine {
	items := make([]any, len(c.items))
	copy(items, c.items)
	return sequence.New(items)
}

func (c *Collection) derive(items []any, err error) *Collection {
	if c.err != nil {
		return c
	}
	if err != nil {
		return &Collection{items: c.items, opts: c.opts, err: err}
	}
	return &Collection{items: items, opts: c.opts}
}

// chain runs op unless the collection already holds an error.
func (c *Collection) chain(op func(e *sequence.Engine) ([]any, error)) *Collection {
	if c.err != nil {
		return c
	}
	return c.derive(op(c.engine()))
}

// Adapters from plain callbacks to the engine's callback shapes. They never
// fail, so the series engine methods built on them only fail on bad
// arguments.

func (fn MapFunc) seq() sequence.Func {
	return func(_ context.Context, item any, index int, _ []any) (any, error) {
		return fn(item, index), nil
	}
}

func (fn PredicateFunc) seq() sequence.Predicate {
	return func(_ context.Context, item any, index int, _ []any) (bool, error) {
		return fn(item, index), nil
	}
}

func (fn ReduceFunc) seq() sequence.Reducer {
	return func(_ context.Context, carry, item any, index int, _ []any) (any, error) {
		return fn(carry, item, index), nil
	}
}

func (fn SelectorFunc) seq() sequence.Selector {
	return func(_ context.Context, item any) (any, error) {
		return fn(item), nil
	}
}

func (fn EachFunc) seq() sequence.Action {
	return func(_ context.Context, item any, index int, _ []any) error {
		fn(item, index)
		return nil
	}
}
