package pipeline

import (
	"context"

	apperrors "github.com/kbukum/lazycollect/errors"
	"github.com/kbukum/lazycollect/sequence"
)

// outcome is the result of applying one descriptor: either a sequence that
// seeds the next step or a terminal value.
type outcome struct {
	items    []any
	value    any
	found    bool
	terminal bool
}

func sequenceOf(items []any, err error) (outcome, error) {
	if err != nil {
		return outcome{}, err
	}
	return outcome{items: items}, nil
}

func valueOf(v any, err error) (outcome, error) {
	if err != nil {
		return outcome{}, err
	}
	return outcome{value: v, terminal: true}, nil
}

func lookup(v any, found bool, err error) (outcome, error) {
	if err != nil {
		return outcome{}, err
	}
	return outcome{value: v, found: found, terminal: true}, nil
}

// apply runs d against e.
func apply(ctx context.Context, e *sequence.Engine, d Descriptor) (outcome, error) {
	if err := d.validate(); err != nil {
		return outcome{}, err
	}
	a := d.args
	switch d.op {
	case OpChunk:
		return sequenceOf(e.Chunk(a.limit))
	case OpCollapse:
		return sequenceOf(e.Collapse(), nil)
	case OpCompact:
		return sequenceOf(e.Compact(), nil)
	case OpConcat:
		return sequenceOf(e.Concat(a.values...), nil)
	case OpDiff:
		return sequenceOf(e.Diff(a.values), nil)
	case OpFilter:
		return sequenceOf(e.Filter(ctx, d.predicate()))
	case OpFilterIf:
		return sequenceOf(e.FilterIf(ctx, a.cond, d.predicate()))
	case OpFilterSeries:
		return sequenceOf(e.FilterSeries(ctx, d.predicate()))
	case OpFlatMap:
		return sequenceOf(e.FlatMap(ctx, d.fn))
	case OpIntersect:
		return sequenceOf(e.Intersect(a.values), nil)
	case OpMap:
		return sequenceOf(e.Map(ctx, d.fn))
	case OpMapIf:
		return sequenceOf(e.MapIf(ctx, a.cond, d.fn))
	case OpMapSeries:
		return sequenceOf(e.MapSeries(ctx, d.fn))
	case OpPluck:
		return sequenceOf(e.Pluck(a.keys...))
	case OpPush:
		return sequenceOf(e.Push(a.values...), nil)
	case OpReject:
		return sequenceOf(e.Reject(ctx, d.predicate()))
	case OpRejectSeries:
		return sequenceOf(e.RejectSeries(ctx, d.predicate()))
	case OpReverse:
		return sequenceOf(e.Reverse(), nil)
	case OpSlice:
		if a.hasLimit {
			return sequenceOf(e.Slice(a.start, a.limit), nil)
		}
		return sequenceOf(e.Slice(a.start), nil)
	case OpSort:
		return sequenceOf(e.Sort(d.cmp), nil)
	case OpSplice:
		e.Splice(a.start, a.limit, a.values...)
		return sequenceOf(e.All(), nil)
	case OpTake:
		return sequenceOf(e.Take(a.limit), nil)
	case OpTakeAndRemove:
		e.TakeAndRemove(a.limit)
		return sequenceOf(e.All(), nil)
	case OpTap:
		return sequenceOf(e.Tap(ctx, d.action))
	case OpUnion:
		return sequenceOf(e.Union(a.values), nil)
	case OpUnique:
		return sequenceOf(e.Unique(a.keys...))
	case OpUniqueBy:
		return sequenceOf(e.UniqueBy(ctx, d.selector))
	case OpUnshift:
		return sequenceOf(e.Unshift(a.values...), nil)

	case OpAvg:
		return valueOf(e.Avg())
	case OpCount:
		return valueOf(e.Count(ctx, d.preds...))
	case OpEvery:
		return valueOf(e.Every(ctx, d.predicate()))
	case OpEverySeries:
		return valueOf(e.EverySeries(ctx, d.predicate()))
	case OpFind:
		return lookup(e.Find(ctx, d.predicate()))
	case OpFindSeries:
		return lookup(e.FindSeries(ctx, d.predicate()))
	case OpFirst:
		return lookup(e.First(ctx, d.preds...))
	case OpForEach:
		return valueOf(nil, e.ForEach(ctx, d.action))
	case OpForEachSeries:
		return valueOf(nil, e.ForEachSeries(ctx, d.action))
	case OpGroupBy:
		return valueOf(e.GroupBy(a.keys[0]))
	case OpHas:
		return valueOf(e.Has(ctx, a.target))
	case OpHasDuplicates:
		return valueOf(e.HasDuplicates(), nil)
	case OpIsEmpty:
		return valueOf(e.IsEmpty(), nil)
	case OpIsNotEmpty:
		return valueOf(e.IsNotEmpty(), nil)
	case OpJoin:
		return valueOf(e.Join(a.sep), nil)
	case OpLast:
		return lookup(e.Last(ctx, d.preds...))
	case OpMax:
		return valueOf(e.Max())
	case OpMedian:
		return valueOf(e.Median())
	case OpMin:
		return valueOf(e.Min())
	case OpPop:
		v, ok := e.Pop()
		return lookup(v, ok, nil)
	case OpReduce:
		return valueOf(e.Reduce(ctx, d.reducer, a.initial))
	case OpReduceRight:
		return valueOf(e.ReduceRight(ctx, d.reducer, a.initial))
	case OpShift:
		v, ok := e.Shift()
		return lookup(v, ok, nil)
	case OpSize:
		return valueOf(e.Size(), nil)
	case OpSome:
		return valueOf(e.Some(ctx, d.predicate()))
	case OpSomeSeries:
		return valueOf(e.SomeSeries(ctx, d.predicate()))
	case OpSum:
		return valueOf(e.Sum())
	case OpToJSON:
		return valueOf(e.ToJSON())
	default:
		return outcome{}, apperrors.UnknownOperation(d.op.String())
	}
}
