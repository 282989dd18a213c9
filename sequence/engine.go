package sequence

// Engine executes collection operations eagerly against its items.
//
// The engine owns the slice it is given. Destructive operations (Push, Pop,
// Shift, Unshift, Splice, TakeAndRemove) change it in place; all others
// return new slices.
type Engine struct {
	items []any
	opts  options
}

type options struct {
	concurrency int
	searchBatch int
}

// Option configures an Engine.
type Option func(*options)

// WithConcurrency bounds how many callbacks the parallel discipline runs at
// once. Zero or less means unbounded.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.concurrency = n
	}
}

// WithSearchBatch sets how many items a short-circuiting search checks
// before checking whether the result is decided. Values below 1 mean 1.
func WithSearchBatch(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.searchBatch = n
	}
}

// New creates an Engine over items. A nil slice is treated as empty.
func New(items []any, opts ...Option) *Engine {
	o := options{searchBatch: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if items == nil {
		items = []any{}
	}
	return &Engine{items: items, opts: o}
}

// All returns a copy of the items.
func (e *Engine) All() []any {
	out := make([]any, len(e.items))
	copy(out, e.items)
	return out
}

// Size returns the number of items.
func (e *Engine) Size() int { return len(e.items) }

// IsEmpty reports whether there are no items.
func (e *Engine) IsEmpty() bool { return len(e.items) == 0 }

// IsNotEmpty reports whether there is at least one item.
func (e *Engine) IsNotEmpty() bool { return len(e.items) > 0 }
