// Package errors defines the structured error type returned by lazycollect
// for invalid arguments, contract violations and configuration problems.
//
// Errors produced by user callbacks are never wrapped in an AppError: they
// reach the caller of a terminal operation unchanged.
package errors
