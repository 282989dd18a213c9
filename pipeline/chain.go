package pipeline

import "github.com/kbukum/lazycollect/sequence"

// Map queues a parallel map.
func (p *Pipeline) Map(fn sequence.Func) *Pipeline {
	return p.enqueue(withFunc(OpMap, fn))
}

// MapSeries queues a map that runs one item at a time.
func (p *Pipeline) MapSeries(fn sequence.Func) *Pipeline {
	return p.enqueue(withFunc(OpMapSeries, fn))
}

// MapIf queues a map applied only when cond holds.
func (p *Pipeline) MapIf(cond bool, fn sequence.Func) *Pipeline {
	d := withFunc(OpMapIf, fn)
	d.args.cond = cond
	return p.enqueue(d)
}

// Filter queues a parallel filter.
func (p *Pipeline) Filter(pred sequence.Predicate) *Pipeline {
	return p.enqueue(withPredicate(OpFilter, pred))
}

// FilterSeries queues a filter that runs one item at a time.
func (p *Pipeline) FilterSeries(pred sequence.Predicate) *Pipeline {
	return p.enqueue(withPredicate(OpFilterSeries, pred))
}

// FilterIf queues a filter applied only when cond holds.
func (p *Pipeline) FilterIf(cond bool, pred sequence.Predicate) *Pipeline {
	d := withPredicate(OpFilterIf, pred)
	d.args.cond = cond
	return p.enqueue(d)
}

// Reject queues a parallel reject.
func (p *Pipeline) Reject(pred sequence.Predicate) *Pipeline {
	return p.enqueue(withPredicate(OpReject, pred))
}

// RejectSeries queues a reject that runs one item at a time.
func (p *Pipeline) RejectSeries(pred sequence.Predicate) *Pipeline {
	return p.enqueue(withPredicate(OpRejectSeries, pred))
}

// FlatMap queues a parallel map whose slice results are spread one level.
func (p *Pipeline) FlatMap(fn sequence.Func) *Pipeline {
	return p.enqueue(withFunc(OpFlatMap, fn))
}

// Tap queues a side effect run for every item, one at a time.
func (p *Pipeline) Tap(fn sequence.Action) *Pipeline {
	return p.enqueue(Descriptor{op: OpTap, action: fn})
}

// Chunk queues splitting into groups of size.
func (p *Pipeline) Chunk(size int) *Pipeline {
	return p.enqueue(Descriptor{op: OpChunk, args: args{limit: size}})
}

// Collapse queues spreading slice items one level.
func (p *Pipeline) Collapse() *Pipeline { return p.enqueue(describe(OpCollapse)) }

// Flatten is an alias of Collapse.
func (p *Pipeline) Flatten() *Pipeline { return p.Collapse() }

// Compact queues dropping falsy items.
func (p *Pipeline) Compact() *Pipeline { return p.enqueue(describe(OpCompact)) }

// Diff queues dropping the items found in values.
func (p *Pipeline) Diff(values any) *Pipeline {
	return p.enqueue(withValues(OpDiff, sequence.Normalize(values)))
}

// Intersect queues keeping the distinct items found in values.
func (p *Pipeline) Intersect(values any) *Pipeline {
	return p.enqueue(withValues(OpIntersect, sequence.Normalize(values)))
}

// Push queues appending values.
func (p *Pipeline) Push(values ...any) *Pipeline {
	return p.enqueue(withValues(OpPush, values))
}

// Unshift queues prepending values.
func (p *Pipeline) Unshift(values ...any) *Pipeline {
	return p.enqueue(withValues(OpUnshift, values))
}

// Unique queues deduplication by identity, or by a field path when key is
// given.
func (p *Pipeline) Unique(key ...string) *Pipeline {
	return p.enqueue(withKeys(OpUnique, key))
}

// UniqueBy queues deduplication by the identity sel returns.
func (p *Pipeline) UniqueBy(sel sequence.Selector) *Pipeline {
	return p.enqueue(Descriptor{op: OpUniqueBy, selector: sel})
}

// Concat returns a branch with values appended. Slice values are spread
// one level.
func (p *Pipeline) Concat(values ...any) *Pipeline {
	return p.Clone().enqueue(withValues(OpConcat, values))
}

// Union returns a branch with values appended and duplicates removed.
func (p *Pipeline) Union(values any) *Pipeline {
	return p.Clone().enqueue(withValues(OpUnion, sequence.Normalize(values)))
}

// Pluck returns a branch holding the value at each key path.
func (p *Pipeline) Pluck(keys ...string) *Pipeline {
	return p.Clone().enqueue(withKeys(OpPluck, keys))
}

// Reverse returns a branch in reverse order.
func (p *Pipeline) Reverse() *Pipeline {
	return p.Clone().enqueue(describe(OpReverse))
}

// Sort returns a branch sorted stably by cmp, or by sequence.Compare when
// cmp is nil.
func (p *Pipeline) Sort(cmp sequence.Comparator) *Pipeline {
	return p.Clone().enqueue(Descriptor{op: OpSort, cmp: cmp})
}

// Slice returns a branch holding the items from start, limited to limit
// items when given.
func (p *Pipeline) Slice(start int, limit ...int) *Pipeline {
	d := Descriptor{op: OpSlice, args: args{start: start}}
	if len(limit) > 0 {
		d.args.limit, d.args.hasLimit = limit[0], true
	}
	return p.Clone().enqueue(d)
}

// Take returns a branch holding the first limit items, or the last -limit
// items when limit is negative.
func (p *Pipeline) Take(limit int) *Pipeline {
	return p.Clone().enqueue(Descriptor{op: OpTake, args: args{limit: limit}})
}

// Splice returns a branch resolving to the limit items from start and
// queues their removal on the receiver, with inserts put in their place.
// A limit of zero or less means through the end.
func (p *Pipeline) Splice(start, limit int, inserts ...any) *Pipeline {
	branch := p.Slice(start)
	if limit > 0 {
		branch = p.Slice(start, limit)
	}
	d := withValues(OpSplice, inserts)
	d.args.start, d.args.limit = start, limit
	p.queue.Enqueue(d)
	return branch
}

// TakeAndRemove returns a branch resolving to Take(limit) and queues the
// removal of those items on the receiver.
func (p *Pipeline) TakeAndRemove(limit int) *Pipeline {
	branch := p.Take(limit)
	p.queue.Enqueue(Descriptor{op: OpTakeAndRemove, args: args{limit: limit}})
	return branch
}
