package sequence

import (
	"github.com/samber/lo"
	"github.com/samber/lo/mutable"

	apperrors "github.com/kbukum/lazycollect/errors"
)

// Chunk splits the items into consecutive groups of size. Each group is a
// []any; the last one may be shorter.
func (e *Engine) Chunk(size int) ([]any, error) {
	if size <= 0 {
		return nil, apperrors.InvalidArgument("chunk", "size must be positive").
			WithDetail("size", size)
	}
	chunks := lo.Chunk(e.items, size)
	out := make([]any, len(chunks))
	for i, c := range chunks {
		out[i] = c
	}
	return out, nil
}

// Collapse spreads slice items one level into a flat sequence.
func (e *Engine) Collapse() []any { return flattenOne(e.items) }

// Flatten is an alias of Collapse.
func (e *Engine) Flatten() []any { return e.Collapse() }

// Compact drops falsy items.
func (e *Engine) Compact() []any {
	out := make([]any, 0, len(e.items))
	for _, item := range e.items {
		if Truthy(item) {
			out = append(out, item)
		}
	}
	return out
}

// Concat appends values to the items. Slice values are spread one level.
func (e *Engine) Concat(values ...any) []any {
	return append(e.All(), flattenOne(values)...)
}

// Diff keeps the items that do not occur in values.
func (e *Engine) Diff(values []any) []any {
	exclude := identitySet(values)
	out := make([]any, 0, len(e.items))
	for _, item := range e.items {
		if _, found := exclude[identityKey(item)]; !found {
			out = append(out, item)
		}
	}
	return out
}

// Intersect returns the distinct items that also occur in values.
func (e *Engine) Intersect(values []any) []any {
	include := identitySet(values)
	seen := make(map[any]struct{})
	out := make([]any, 0)
	for _, item := range e.items {
		k := identityKey(item)
		if _, found := include[k]; !found {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Union concatenates values and keeps the first occurrence of every item.
func (e *Engine) Union(values []any) []any {
	return uniqueOf(e.Concat(values))
}

// Unique keeps the first occurrence of every item, compared by identity, or
// by the value at a field path when key is given.
func (e *Engine) Unique(key ...string) ([]any, error) {
	switch len(key) {
	case 0:
		return uniqueOf(e.items), nil
	case 1:
		seen := make(map[any]struct{})
		out := make([]any, 0, len(e.items))
		for _, item := range e.items {
			v, _ := Field(item, key[0])
			k := identityKey(v)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, item)
		}
		return out, nil
	default:
		return nil, apperrors.InvalidArgument("unique", "at most one key")
	}
}

// HasDuplicates reports whether any two items share an identity.
func (e *Engine) HasDuplicates() bool {
	return len(identitySet(e.items)) != len(e.items)
}

func identitySet(values []any) map[any]struct{} {
	set := make(map[any]struct{}, len(values))
	for _, v := range values {
		set[identityKey(v)] = struct{}{}
	}
	return set
}

func uniqueOf(items []any) []any {
	seen := make(map[any]struct{}, len(items))
	out := make([]any, 0, len(items))
	for _, item := range items {
		k := identityKey(item)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Reverse returns the items in reverse order.
func (e *Engine) Reverse() []any {
	out := e.All()
	mutable.Reverse(out)
	return out
}

// bound clamps a possibly negative offset into [0, n]. Negative offsets
// count from the end.
func bound(i, n int) int {
	if i < 0 {
		return max(n+i, 0)
	}
	return min(i, n)
}

// Slice returns the items from start, limited to limit items when given.
// A negative start counts from the end; a negative limit drops that many
// items from the end of the slice.
func (e *Engine) Slice(start int, limit ...int) []any {
	rest := e.items[bound(start, len(e.items)):]
	if len(limit) > 0 {
		rest = rest[:bound(limit[0], len(rest))]
	}
	out := make([]any, len(rest))
	copy(out, rest)
	return out
}

// Splice removes limit items from start, inserts inserts in their place and
// returns the removed items. A limit of zero or less removes through the
// end. Slice inserts are spread one level.
func (e *Engine) Splice(start, limit int, inserts ...any) []any {
	n := len(e.items)
	s := bound(start, n)
	count := n - s
	if limit > 0 {
		count = min(limit, count)
	}
	removed := make([]any, count)
	copy(removed, e.items[s:s+count])

	added := flattenOne(inserts)
	next := make([]any, 0, n-count+len(added))
	next = append(next, e.items[:s]...)
	next = append(next, added...)
	next = append(next, e.items[s+count:]...)
	e.items = next
	return removed
}

// Take returns the first limit items, or the last -limit items when limit
// is negative.
func (e *Engine) Take(limit int) []any {
	if limit < 0 {
		return e.Slice(limit)
	}
	return e.Slice(0, limit)
}

// TakeAndRemove returns the same items as Take and removes them.
func (e *Engine) TakeAndRemove(limit int) []any {
	n := len(e.items)
	if limit < 0 {
		k := min(-limit, n)
		return e.Splice(n-k, k)
	}
	k := min(limit, n)
	taken := make([]any, k)
	copy(taken, e.items[:k])
	e.items = append([]any{}, e.items[k:]...)
	return taken
}

// Push appends values and returns the resulting items.
func (e *Engine) Push(values ...any) []any {
	e.items = append(e.items, values...)
	return e.All()
}

// Unshift prepends values and returns the resulting items.
func (e *Engine) Unshift(values ...any) []any {
	e.items = lo.Splice(e.items, 0, values...)
	return e.All()
}

// Pop removes and returns the last item.
func (e *Engine) Pop() (any, bool) {
	n := len(e.items)
	if n == 0 {
		return nil, false
	}
	last := e.items[n-1]
	e.items = e.items[:n-1]
	return last, true
}

// Shift removes and returns the first item.
func (e *Engine) Shift() (any, bool) {
	if len(e.items) == 0 {
		return nil, false
	}
	first := e.items[0]
	e.items = e.items[1:]
	return first, true
}

// Pluck extracts the value at each key path. With one key the result holds
// the bare values; with several, each result is a map holding the requested
// paths. Missing paths yield nil.
func (e *Engine) Pluck(keys ...string) ([]any, error) {
	if len(keys) == 0 {
		return nil, apperrors.InvalidArgument("pluck", "at least one key")
	}
	out := make([]any, len(e.items))
	for i, item := range e.items {
		if len(keys) == 1 {
			out[i], _ = Field(item, keys[0])
			continue
		}
		row := make(map[string]any, len(keys))
		for _, k := range keys {
			v, _ := Field(item, k)
			setPath(row, k, v)
		}
		out[i] = row
	}
	return out, nil
}
