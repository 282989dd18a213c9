package pipeline

import (
	apperrors "github.com/kbukum/lazycollect/errors"
	"github.com/kbukum/lazycollect/sequence"
)

// Descriptor is one queued operation: what to apply, with which callback
// and which arguments. Descriptors are built by Pipeline methods only and
// never change after construction.
type Descriptor struct {
	op       Op
	fn       sequence.Func
	preds    []sequence.Predicate
	action   sequence.Action
	reducer  sequence.Reducer
	selector sequence.Selector
	cmp      sequence.Comparator
	args     args
}

type args struct {
	start    int
	limit    int
	hasLimit bool
	cond     bool
	keys     []string
	values   []any
	target   any
	initial  any
	sep      string
}

// Op returns the operation the descriptor applies.
func (d Descriptor) Op() Op { return d.op }

func (d Descriptor) String() string { return d.op.String() }

func describe(op Op) Descriptor { return Descriptor{op: op} }

func withFunc(op Op, fn sequence.Func) Descriptor { return Descriptor{op: op, fn: fn} }

func withPredicate(op Op, preds ...sequence.Predicate) Descriptor {
	return Descriptor{op: op, preds: append([]sequence.Predicate(nil), preds...)}
}

func withValues(op Op, values []any) Descriptor {
	return Descriptor{op: op, args: args{values: append([]any(nil), values...)}}
}

func withKeys(op Op, keys []string) Descriptor {
	return Descriptor{op: op, args: args{keys: append([]string(nil), keys...)}}
}

func (d Descriptor) predicate() sequence.Predicate {
	if len(d.preds) == 0 {
		return nil
	}
	return d.preds[0]
}

func (d Descriptor) validate() error {
	missing := func() error {
		return apperrors.InvalidArgument(d.op.String(), "callback must not be nil")
	}
	switch d.op {
	case OpMap, OpMapIf, OpMapSeries, OpFlatMap:
		if d.fn == nil {
			return missing()
		}
	case OpFilter, OpFilterIf, OpFilterSeries, OpReject, OpRejectSeries,
		OpEvery, OpEverySeries, OpFind, OpFindSeries, OpSome, OpSomeSeries:
		if d.predicate() == nil {
			return missing()
		}
	case OpFirst, OpLast, OpCount:
		for _, p := range d.preds {
			if p == nil {
				return missing()
			}
		}
	case OpTap, OpForEach, OpForEachSeries:
		if d.action == nil {
			return missing()
		}
	case OpReduce, OpReduceRight:
		if d.reducer == nil {
			return missing()
		}
	case OpUniqueBy:
		if d.selector == nil {
			return missing()
		}
	case OpGroupBy:
		if len(d.args.keys) != 1 {
			return apperrors.InvalidArgument(d.op.String(), "exactly one key")
		}
	}
	return nil
}
