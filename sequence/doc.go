// Package sequence implements the eager sequence engine: every operation
// runs immediately against a materialised []any.
//
// Callbacks are context-aware and may block. Operations that accept a
// callback come in two disciplines:
//
//   - parallel (Map, Filter, Reject, ForEach, FlatMap, Count, UniqueBy):
//     the callback is started for every item before any result is awaited.
//     Results are stored by index, so output order always matches input
//     order regardless of completion order.
//   - series (MapSeries, FilterSeries, ...): item i+1 is not started until
//     item i has returned.
//
// Searches (Some, Every, Find, First, Last, Has) short-circuit. They check
// items in batches of the configured search width (1 by default) and stop
// after the first batch that decides the result.
//
// The first error returned by a callback aborts the operation and is
// returned unchanged. Argument problems are reported as *errors.AppError.
package sequence
