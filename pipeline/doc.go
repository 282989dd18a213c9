// Package pipeline provides the pending pipeline: a chainable, deferred view
// over a collection.
//
// Chain methods (Map, Filter, Chunk, ...) do no work. Each appends an
// operation descriptor to the receiver's queue and returns a new Pipeline
// holding copies of the receiver's items and queue. Terminal methods (All,
// Sum, Find, ...) append their own descriptor and drain the queue against a
// fresh sequence engine, applying descriptors strictly in enqueue order.
//
// Branching methods (Clone, Concat, Slice, Take, Reverse, Sort, Union,
// Pluck) work on a clone, so the receiver's queue is left untouched.
// Splice, TakeAndRemove, Pop and Shift return or resolve the removed part
// and queue the removal on the receiver.
//
// If a callback fails during a drain, the remaining queue is discarded and
// the callback's error is returned unchanged. The pipeline's items are only
// replaced when a drain succeeds.
//
// # Usage
//
//	p := pipeline.From([]int{1, 2, 3, 4, 5}).
//	    Map(func(_ context.Context, item any, _ int, _ []any) (any, error) {
//	        return item.(int) * 10, nil
//	    }).
//	    Filter(func(_ context.Context, item any, _ int, _ []any) (bool, error) {
//	        return item.(int) > 20, nil
//	    })
//	last, _, _ := p.Pop(ctx)  // 50
//	rest, _ := p.All(ctx)     // [30 40]
//
// A Pipeline is owned by one goroutine at a time.
package pipeline
