package pipeline

import (
	"context"

	"github.com/kbukum/lazycollect/sequence"
)

func (p *Pipeline) float(ctx context.Context, op Op) (float64, error) {
	out, err := p.resolve(ctx, describe(op))
	if err != nil {
		return 0, err
	}
	v, _ := out.value.(float64)
	return v, nil
}

func (p *Pipeline) boolean(ctx context.Context, d Descriptor) (bool, error) {
	out, err := p.resolve(ctx, d)
	if err != nil {
		return false, err
	}
	v, _ := out.value.(bool)
	return v, nil
}

func (p *Pipeline) lookup(ctx context.Context, d Descriptor) (any, bool, error) {
	out, err := p.resolve(ctx, d)
	if err != nil {
		return nil, false, err
	}
	return out.value, out.found, nil
}

// Avg resolves the arithmetic mean.
func (p *Pipeline) Avg(ctx context.Context) (float64, error) { return p.float(ctx, OpAvg) }

// Sum resolves the sum. The sum of no items is 0.
func (p *Pipeline) Sum(ctx context.Context) (float64, error) { return p.float(ctx, OpSum) }

// Min resolves the smallest item.
func (p *Pipeline) Min(ctx context.Context) (float64, error) { return p.float(ctx, OpMin) }

// Max resolves the largest item.
func (p *Pipeline) Max(ctx context.Context) (float64, error) { return p.float(ctx, OpMax) }

// Median resolves the median.
func (p *Pipeline) Median(ctx context.Context) (float64, error) { return p.float(ctx, OpMedian) }

// Count resolves the number of items, or the number pred accepts.
func (p *Pipeline) Count(ctx context.Context, pred ...sequence.Predicate) (int, error) {
	out, err := p.resolve(ctx, withPredicate(OpCount, pred...))
	if err != nil {
		return 0, err
	}
	n, _ := out.value.(int)
	return n, nil
}

// Size resolves the number of items.
func (p *Pipeline) Size(ctx context.Context) (int, error) {
	out, err := p.resolve(ctx, describe(OpSize))
	if err != nil {
		return 0, err
	}
	n, _ := out.value.(int)
	return n, nil
}

// Every resolves whether pred accepts all items.
func (p *Pipeline) Every(ctx context.Context, pred sequence.Predicate) (bool, error) {
	return p.boolean(ctx, withPredicate(OpEvery, pred))
}

// EverySeries is Every probing one item at a time.
func (p *Pipeline) EverySeries(ctx context.Context, pred sequence.Predicate) (bool, error) {
	return p.boolean(ctx, withPredicate(OpEverySeries, pred))
}

// Some resolves whether pred accepts any item.
func (p *Pipeline) Some(ctx context.Context, pred sequence.Predicate) (bool, error) {
	return p.boolean(ctx, withPredicate(OpSome, pred))
}

// SomeSeries is Some probing one item at a time.
func (p *Pipeline) SomeSeries(ctx context.Context, pred sequence.Predicate) (bool, error) {
	return p.boolean(ctx, withPredicate(OpSomeSeries, pred))
}

// Any is an alias of Some.
func (p *Pipeline) Any(ctx context.Context, pred sequence.Predicate) (bool, error) {
	return p.Some(ctx, pred)
}

// Has resolves whether an item matches target, a predicate or a literal.
func (p *Pipeline) Has(ctx context.Context, target any) (bool, error) {
	return p.boolean(ctx, Descriptor{op: OpHas, args: args{target: target}})
}

// Includes is an alias of Has.
func (p *Pipeline) Includes(ctx context.Context, target any) (bool, error) {
	return p.Has(ctx, target)
}

// HasDuplicates resolves whether any two items share an identity.
func (p *Pipeline) HasDuplicates(ctx context.Context) (bool, error) {
	return p.boolean(ctx, describe(OpHasDuplicates))
}

// IsEmpty resolves whether there are no items.
func (p *Pipeline) IsEmpty(ctx context.Context) (bool, error) {
	return p.boolean(ctx, describe(OpIsEmpty))
}

// IsNotEmpty resolves whether there is at least one item.
func (p *Pipeline) IsNotEmpty(ctx context.Context) (bool, error) {
	return p.boolean(ctx, describe(OpIsNotEmpty))
}

// Find resolves the first item pred accepts.
func (p *Pipeline) Find(ctx context.Context, pred sequence.Predicate) (any, bool, error) {
	return p.lookup(ctx, withPredicate(OpFind, pred))
}

// FindSeries is Find probing one item at a time.
func (p *Pipeline) FindSeries(ctx context.Context, pred sequence.Predicate) (any, bool, error) {
	return p.lookup(ctx, withPredicate(OpFindSeries, pred))
}

// First resolves the first item, or the first item pred accepts.
func (p *Pipeline) First(ctx context.Context, pred ...sequence.Predicate) (any, bool, error) {
	return p.lookup(ctx, withPredicate(OpFirst, pred...))
}

// Last resolves the last item, or the last item pred accepts.
func (p *Pipeline) Last(ctx context.Context, pred ...sequence.Predicate) (any, bool, error) {
	return p.lookup(ctx, withPredicate(OpLast, pred...))
}

// Pop resolves the last item and queues its removal on the receiver.
func (p *Pipeline) Pop(ctx context.Context) (any, bool, error) {
	branch := p.Clone()
	p.queue.Enqueue(Descriptor{op: OpSplice, args: args{start: -1, limit: 1}})
	return branch.lookup(ctx, describe(OpPop))
}

// Shift resolves the first item and queues its removal on the receiver.
func (p *Pipeline) Shift(ctx context.Context) (any, bool, error) {
	branch := p.Clone()
	p.queue.Enqueue(Descriptor{op: OpSplice, args: args{start: 0, limit: 1}})
	return branch.lookup(ctx, describe(OpShift))
}

// ForEach runs fn for every item in parallel.
func (p *Pipeline) ForEach(ctx context.Context, fn sequence.Action) error {
	_, err := p.resolve(ctx, Descriptor{op: OpForEach, action: fn})
	return err
}

// ForEachSeries runs fn for one item at a time.
func (p *Pipeline) ForEachSeries(ctx context.Context, fn sequence.Action) error {
	_, err := p.resolve(ctx, Descriptor{op: OpForEachSeries, action: fn})
	return err
}

// GroupBy resolves the items grouped by the value at key.
func (p *Pipeline) GroupBy(ctx context.Context, key string) (*sequence.Groups, error) {
	out, err := p.resolve(ctx, withKeys(OpGroupBy, []string{key}))
	if err != nil {
		return nil, err
	}
	g, _ := out.value.(*sequence.Groups)
	return g, nil
}

// Join resolves the items rendered as strings and joined by sep.
func (p *Pipeline) Join(ctx context.Context, sep string) (string, error) {
	out, err := p.resolve(ctx, Descriptor{op: OpJoin, args: args{sep: sep}})
	if err != nil {
		return "", err
	}
	s, _ := out.value.(string)
	return s, nil
}

// Reduce folds the items left to right, one at a time.
func (p *Pipeline) Reduce(ctx context.Context, fn sequence.Reducer, initial any) (any, error) {
	out, err := p.resolve(ctx, Descriptor{op: OpReduce, reducer: fn, args: args{initial: initial}})
	if err != nil {
		return nil, err
	}
	return out.value, nil
}

// ReduceRight folds the items right to left, one at a time.
func (p *Pipeline) ReduceRight(ctx context.Context, fn sequence.Reducer, initial any) (any, error) {
	out, err := p.resolve(ctx, Descriptor{op: OpReduceRight, reducer: fn, args: args{initial: initial}})
	if err != nil {
		return nil, err
	}
	return out.value, nil
}

// ToJSON resolves the items encoded as a JSON array.
func (p *Pipeline) ToJSON(ctx context.Context) (string, error) {
	out, err := p.resolve(ctx, describe(OpToJSON))
	if err != nil {
		return "", err
	}
	s, _ := out.value.(string)
	return s, nil
}
