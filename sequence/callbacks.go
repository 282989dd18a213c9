package sequence

import "context"

// Func transforms one item. items is the full sequence the item belongs to.
type Func func(ctx context.Context, item any, index int, items []any) (any, error)

// Predicate tests one item.
type Predicate func(ctx context.Context, item any, index int, items []any) (bool, error)

// Action runs a side effect for one item.
type Action func(ctx context.Context, item any, index int, items []any) error

// Reducer folds one item into the accumulator.
type Reducer func(ctx context.Context, carry, item any, index int, items []any) (any, error)

// Selector derives the identity used for deduplication.
type Selector func(ctx context.Context, item any) (any, error)

// Comparator orders two items: negative when a sorts before b, zero when
// equal, positive otherwise.
type Comparator func(a, b any) int

func (p Predicate) asFunc() Func {
	return func(ctx context.Context, item any, index int, items []any) (any, error) {
		return p(ctx, item, index, items)
	}
}

func (a Action) asFunc() Func {
	return func(ctx context.Context, item any, index int, items []any) (any, error) {
		return nil, a(ctx, item, index, items)
	}
}

func (s Selector) asFunc() Func {
	return func(ctx context.Context, item any, _ int, _ []any) (any, error) {
		return s(ctx, item)
	}
}

// Equals returns a predicate matching items identical to value, using the
// same identity rules as Unique.
func Equals(value any) Predicate {
	want := identityKey(value)
	return func(_ context.Context, item any, _ int, _ []any) (bool, error) {
		return identityKey(item) == want, nil
	}
}
