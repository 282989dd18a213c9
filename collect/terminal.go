package collect

import (
	"context"

	apperrors "github.com/kbukum/lazycollect/errors"
	"github.com/kbukum/lazycollect/sequence"
)

// Terminals that cannot fail report their zero value while the collection
// holds an error. Err tells the two cases apart.

func (c *Collection) number(op func(e *sequence.Engine) (float64, error)) (float64, error) {
	if c.err != nil {
		return 0, c.err
	}
	return op(c.engine())
}

func (c *Collection) test(pred PredicateFunc, op func(e *sequence.Engine, p sequence.Predicate) (bool, error)) bool {
	if c.err != nil || pred == nil {
		return false
	}
	ok, _ := op(c.engine(), pred.seq())
	return ok
}

func predicates(operation string, preds []PredicateFunc) ([]sequence.Predicate, error) {
	out := make([]sequence.Predicate, len(preds))
	for i, p := range preds {
		if p == nil {
			return nil, apperrors.InvalidArgument(operation, "callback is nil")
		}
		out[i] = p.seq()
	}
	return out, nil
}

// Avg returns the arithmetic mean of the items.
func (c *Collection) Avg() (float64, error) { return c.number((*sequence.Engine).Avg) }

// Sum returns the sum of the items. An empty collection sums to 0.
func (c *Collection) Sum() (float64, error) { return c.number((*sequence.Engine).Sum) }

// Min returns the smallest item.
func (c *Collection) Min() (float64, error) { return c.number((*sequence.Engine).Min) }

// Max returns the largest item.
func (c *Collection) Max() (float64, error) { return c.number((*sequence.Engine).Max) }

// Median returns the median of the items.
func (c *Collection) Median() (float64, error) { return c.number((*sequence.Engine).Median) }

// Size returns the number of items.
func (c *Collection) Size() int { return len(c.items) }

// IsEmpty reports whether there are no items.
func (c *Collection) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether there is at least one item.
func (c *Collection) IsNotEmpty() bool { return len(c.items) > 0 }

// Count returns the number of items, or the number pred accepts when one
// predicate is given.
func (c *Collection) Count(pred ...PredicateFunc) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	switch len(pred) {
	case 0:
		return len(c.items), nil
	case 1:
		if pred[0] == nil {
			return 0, apperrors.InvalidArgument("count", "callback is nil")
		}
		kept, err := c.engine().FilterSeries(context.Background(), pred[0].seq())
		return len(kept), err
	default:
		return 0, apperrors.InvalidArgument("count", "at most one predicate")
	}
}

// Every reports whether pred accepts every item. It stops at the first
// rejected item.
func (c *Collection) Every(pred PredicateFunc) bool {
	return c.test(pred, func(e *sequence.Engine, p sequence.Predicate) (bool, error) {
		return e.EverySeries(context.Background(), p)
	})
}

// Some reports whether pred accepts at least one item. It stops at the
// first accepted item.
func (c *Collection) Some(pred PredicateFunc) bool {
	return c.test(pred, func(e *sequence.Engine, p sequence.Predicate) (bool, error) {
		return e.SomeSeries(context.Background(), p)
	})
}

// Any is an alias of Some.
func (c *Collection) Any(pred PredicateFunc) bool { return c.Some(pred) }

// Has reports whether an item matches target. target is either a
// PredicateFunc (or a function of the same shape) or a literal compared by
// identity. A nil function matches nothing.
func (c *Collection) Has(target any) bool {
	if c.err != nil {
		return false
	}
	var pred sequence.Predicate
	switch t := target.(type) {
	case PredicateFunc:
		if t != nil {
			pred = t.seq()
		}
	case func(any, int) bool:
		if t != nil {
			pred = PredicateFunc(t).seq()
		}
	default:
		pred = sequence.AsPredicate(target)
	}
	if pred == nil {
		return false
	}
	ok, _ := c.engine().SomeSeries(context.Background(), pred)
	return ok
}

// Includes is an alias of Has.
func (c *Collection) Includes(target any) bool { return c.Has(target) }

// HasDuplicates reports whether two items share an identity.
func (c *Collection) HasDuplicates() bool {
	return c.err == nil && c.engine().HasDuplicates()
}

// Find returns the first item pred accepts.
func (c *Collection) Find(pred PredicateFunc) (any, bool) {
	if c.err != nil || pred == nil {
		return nil, false
	}
	v, found, _ := c.engine().FindSeries(context.Background(), pred.seq())
	return v, found
}

// First returns the first item, or the first item pred accepts when one
// predicate is given.
func (c *Collection) First(pred ...PredicateFunc) (any, bool, error) {
	if c.err != nil {
		return nil, false, c.err
	}
	preds, err := predicates("first", pred)
	if err != nil {
		return nil, false, err
	}
	return c.engine().First(context.Background(), preds...)
}

// Last returns the last item, or the last item pred accepts when one
// predicate is given.
func (c *Collection) Last(pred ...PredicateFunc) (any, bool, error) {
	if c.err != nil {
		return nil, false, c.err
	}
	preds, err := predicates("last", pred)
	if err != nil {
		return nil, false, err
	}
	return c.engine().Last(context.Background(), preds...)
}

// Pop removes and returns the last item of c.
func (c *Collection) Pop() (any, bool) {
	if c.err != nil {
		return nil, false
	}
	e := c.engine()
	v, ok := e.Pop()
	c.items = e.All()
	return v, ok
}

// Shift removes and returns the first item of c.
func (c *Collection) Shift() (any, bool) {
	if c.err != nil {
		return nil, false
	}
	e := c.engine()
	v, ok := e.Shift()
	c.items = e.All()
	return v, ok
}

// ForEach calls fn for every item in order and returns c.
func (c *Collection) ForEach(fn EachFunc) *Collection {
	if c.err != nil {
		return c
	}
	if fn == nil {
		return c.derive(nil, apperrors.InvalidArgument("forEach", "callback is nil"))
	}
	_ = c.engine().ForEachSeries(context.Background(), fn.seq())
	return c
}

// GroupBy groups the items by the value at key.
func (c *Collection) GroupBy(key string) (*sequence.Groups, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.engine().GroupBy(key)
}

// Join concatenates the string form of every item, separated by sep.
func (c *Collection) Join(sep string) string {
	if c.err != nil {
		return ""
	}
	return c.engine().Join(sep)
}

// Reduce folds the items left to right, starting from initial.
func (c *Collection) Reduce(fn ReduceFunc, initial any) (any, error) {
	return c.fold("reduce", fn, initial, (*sequence.Engine).Reduce)
}

// ReduceRight folds the items right to left, starting from initial.
func (c *Collection) ReduceRight(fn ReduceFunc, initial any) (any, error) {
	return c.fold("reduceRight", fn, initial, (*sequence.Engine).ReduceRight)
}

func (c *Collection) fold(
	operation string,
	fn ReduceFunc,
	initial any,
	op func(*sequence.Engine, context.Context, sequence.Reducer, any) (any, error),
) (any, error) {
	if c.err != nil {
		return nil, c.err
	}
	if fn == nil {
		return nil, apperrors.InvalidArgument(operation, "callback is nil")
	}
	return op(c.engine(), context.Background(), fn.seq(), initial)
}

// ToJSON encodes the items as a JSON array.
func (c *Collection) ToJSON() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.engine().ToJSON()
}
