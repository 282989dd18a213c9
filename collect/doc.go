// Package collect is the entry point of lazycollect.
//
// From wraps any input in a Collection. A Collection has two call
// surfaces:
//
//   - plain callbacks (func(item any, index int) any, ...) run immediately,
//     in the calling goroutine and in item order, and return a new
//     Collection;
//   - Async methods take context-aware callbacks that may block. They
//     return a *pipeline.Pipeline, or resolve through one for terminal
//     operations, so the rest of the chain stays deferred.
//
// Defer upgrades a Collection to a pipeline explicitly.
//
// Errors on the synchronous surface are sticky: the first one is recorded,
// later chain calls pass it along without running, and Err and every
// error-returning terminal report it.
//
// # Usage
//
//	c := collect.From([]int{1, 2, 3, 4}).
//	    Map(func(item any, _ int) any { return item.(int) * 2 }).
//	    Filter(func(item any, _ int) bool { return item.(int) > 2 })
//	items := c.All() // [4 6 8]
//
//	p := c.MapAsync(fetchDetails).FilterSeries(isActive)
//	details, err := p.All(ctx)
package collect
