// Package queue provides a generic FIFO used to hold pending pipeline
// operations. It wraps github.com/gammazero/deque.
//
// Items leave the queue in exactly the order they entered it. Nothing is
// skipped, merged or reordered.
package queue
