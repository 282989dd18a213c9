package sequence

import (
	"context"

	apperrors "github.com/kbukum/lazycollect/errors"
)

// Some reports whether pred accepts any item. It stops probing once a
// batch contains a match.
func (e *Engine) Some(ctx context.Context, pred Predicate) (bool, error) {
	idx, err := e.search(ctx, pred, true, e.opts.searchBatch, false)
	return idx >= 0, err
}

// SomeSeries is Some probing strictly one item at a time.
func (e *Engine) SomeSeries(ctx context.Context, pred Predicate) (bool, error) {
	idx, err := e.search(ctx, pred, true, 1, false)
	return idx >= 0, err
}

// Any is an alias of Some.
func (e *Engine) Any(ctx context.Context, pred Predicate) (bool, error) {
	return e.Some(ctx, pred)
}

// Every reports whether pred accepts all items. It stops probing once a
// batch contains a rejection.
func (e *Engine) Every(ctx context.Context, pred Predicate) (bool, error) {
	idx, err := e.search(ctx, pred, false, e.opts.searchBatch, false)
	if err != nil {
		return false, err
	}
	return idx < 0, nil
}

// EverySeries is Every probing strictly one item at a time.
func (e *Engine) EverySeries(ctx context.Context, pred Predicate) (bool, error) {
	idx, err := e.search(ctx, pred, false, 1, false)
	if err != nil {
		return false, err
	}
	return idx < 0, nil
}

// Find returns the first item pred accepts.
func (e *Engine) Find(ctx context.Context, pred Predicate) (any, bool, error) {
	return e.find(ctx, pred, e.opts.searchBatch, false)
}

// FindSeries is Find probing strictly one item at a time.
func (e *Engine) FindSeries(ctx context.Context, pred Predicate) (any, bool, error) {
	return e.find(ctx, pred, 1, false)
}

func (e *Engine) find(ctx context.Context, pred Predicate, width int, reverse bool) (any, bool, error) {
	idx, err := e.search(ctx, pred, true, width, reverse)
	if err != nil || idx < 0 {
		return nil, false, err
	}
	return e.items[idx], true, nil
}

// First returns the first item, or the first item pred accepts when one
// predicate is given.
func (e *Engine) First(ctx context.Context, pred ...Predicate) (any, bool, error) {
	switch len(pred) {
	case 0:
		if len(e.items) == 0 {
			return nil, false, nil
		}
		return e.items[0], true, nil
	case 1:
		return e.find(ctx, pred[0], e.opts.searchBatch, false)
	default:
		return nil, false, apperrors.InvalidArgument("first", "at most one predicate")
	}
}

// Last returns the last item, or the last item pred accepts when one
// predicate is given. Items are checked from the end.
func (e *Engine) Last(ctx context.Context, pred ...Predicate) (any, bool, error) {
	switch len(pred) {
	case 0:
		if len(e.items) == 0 {
			return nil, false, nil
		}
		return e.items[len(e.items)-1], true, nil
	case 1:
		return e.find(ctx, pred[0], e.opts.searchBatch, true)
	default:
		return nil, false, apperrors.InvalidArgument("last", "at most one predicate")
	}
}

// Has reports whether an item matches target. target is either a Predicate
// (or a function of the same shape) or a literal compared by identity. A
// nil predicate is an INVALID_ARGUMENT error.
func (e *Engine) Has(ctx context.Context, target any) (bool, error) {
	pred := AsPredicate(target)
	if pred == nil {
		return false, apperrors.InvalidArgument("has", "callback is nil")
	}
	return e.Some(ctx, pred)
}

// Includes is an alias of Has.
func (e *Engine) Includes(ctx context.Context, target any) (bool, error) {
	return e.Has(ctx, target)
}

// AsPredicate returns target itself when it is a predicate and an identity
// match against target otherwise. It returns nil for a nil predicate.
func AsPredicate(target any) Predicate {
	switch p := target.(type) {
	case Predicate:
		return p
	case func(context.Context, any, int, []any) (bool, error):
		return p
	}
	return Equals(target)
}

// Count returns the number of items, or the number pred accepts when one
// predicate is given. Predicates run in parallel.
func (e *Engine) Count(ctx context.Context, pred ...Predicate) (int, error) {
	switch len(pred) {
	case 0:
		return len(e.items), nil
	case 1:
		flags, err := e.testAll(ctx, pred[0])
		if err != nil {
			return 0, err
		}
		n := 0
		for _, ok := range flags {
			if ok {
				n++
			}
		}
		return n, nil
	default:
		return 0, apperrors.InvalidArgument("count", "at most one predicate")
	}
}
