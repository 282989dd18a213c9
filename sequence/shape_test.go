package sequence

import (
	"math"
	"testing"

	apperrors "github.com/kbukum/lazycollect/errors"
)

func TestChunk(t *testing.T) {
	e := New(ints(1, 2, 3, 4, 5))
	got, err := e.Chunk(2)
	if err != nil {
		t.Fatal(err)
	}
	assertItems(t, got, []any{ints(1, 2), ints(3, 4), ints(5)})

	for _, size := range []int{0, -1} {
		if _, err := e.Chunk(size); !apperrors.IsCode(err, apperrors.ErrCodeInvalidArgument) {
			t.Errorf("Chunk(%d) err = %v", size, err)
		}
	}
}

func TestCollapseCompactConcat(t *testing.T) {
	e := New([]any{ints(1, 2), 3, []string{"a"}, ints()})
	assertItems(t, e.Collapse(), []any{1, 2, 3, "a"})
	assertItems(t, e.Flatten(), e.Collapse())

	c := New([]any{0, 1, "", "x", nil, false, true})
	assertItems(t, c.Compact(), []any{1, "x", true})

	base := New(ints(1, 2))
	assertItems(t, base.Concat(3, ints(4, 5)), ints(1, 2, 3, 4, 5))
	assertItems(t, base.All(), ints(1, 2))
}

func TestSetOperations(t *testing.T) {
	e := New(ints(1, 2, 2, 3, 4))
	assertItems(t, e.Diff(ints(2, 4)), ints(1, 3))
	assertItems(t, e.Intersect(ints(4, 2, 9)), ints(2, 4))
	assertItems(t, e.Union(ints(4, 5)), ints(1, 2, 3, 4, 5))

	got, _ := e.Unique()
	assertItems(t, got, ints(1, 2, 3, 4))
	if !e.HasDuplicates() {
		t.Error("HasDuplicates should be true")
	}
	if New(ints(1, 2)).HasDuplicates() {
		t.Error("HasDuplicates should be false")
	}
}

type point struct{ x, y int }

func TestIdentityOfDistinctValues(t *testing.T) {
	big, next := int64(1<<53), int64(1<<53+1)
	tests := []struct {
		name      string
		items     []any
		want      []any
		duplicate bool
	}{
		{"int64 above float precision", []any{big, next}, []any{big, next}, false},
		{"uint64 above int64 range", []any{uint64(math.MaxUint64), uint64(math.MaxUint64 - 1)},
			[]any{uint64(math.MaxUint64), uint64(math.MaxUint64 - 1)}, false},
		{"structs with unexported fields", []any{point{1, 2}, point{3, 4}}, []any{point{1, 2}, point{3, 4}}, false},
		{"equal structs", []any{point{1, 2}, point{1, 2}}, []any{point{1, 2}}, true},
		{"whole float matches int", []any{3, 3.0, uint8(3)}, []any{3}, true},
		{"fraction stays distinct", []any{1, 1.5}, []any{1, 1.5}, false},
		{"NaN", []any{math.NaN(), 1, math.NaN()}, []any{math.NaN(), 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(tt.items)
			got, err := e.Unique()
			if err != nil {
				t.Fatalf("Unique: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Unique = %v, want %v", got, tt.want)
			}
			for i := range got {
				if identityKey(got[i]) != identityKey(tt.want[i]) {
					t.Errorf("Unique[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
			if e.HasDuplicates() != tt.duplicate {
				t.Errorf("HasDuplicates = %v, want %v", !tt.duplicate, tt.duplicate)
			}
		})
	}
}

func TestDiffIntersectKeepPreciseIntegers(t *testing.T) {
	big, next := int64(1<<53), int64(1<<53+1)
	e := New([]any{next})

	if got := e.Diff([]any{big}); len(got) != 1 || got[0] != next {
		t.Errorf("Diff = %v", got)
	}
	if got := e.Intersect([]any{big}); len(got) != 0 {
		t.Errorf("Intersect = %v", got)
	}
	if got := e.Union([]any{big}); len(got) != 2 {
		t.Errorf("Union = %v", got)
	}
}

func TestUnique_ByKey(t *testing.T) {
	a := map[string]any{"user": map[string]any{"id": 1}, "n": "a"}
	b := map[string]any{"user": map[string]any{"id": 1}, "n": "b"}
	c := map[string]any{"user": map[string]any{"id": 2}, "n": "c"}
	got, err := New([]any{a, b, c}).Unique("user.id")
	if err != nil {
		t.Fatal(err)
	}
	assertItems(t, got, []any{a, c})
}

func TestSliceTakeReverse(t *testing.T) {
	e := New(ints(1, 2, 3, 4, 5))
	tests := []struct {
		name string
		got  []any
		want []any
	}{
		{"slice from", e.Slice(2), ints(3, 4, 5)},
		{"slice with limit", e.Slice(1, 2), ints(2, 3)},
		{"slice negative start", e.Slice(-2), ints(4, 5)},
		{"slice past end", e.Slice(9), ints()},
		{"take", e.Take(2), ints(1, 2)},
		{"take negative", e.Take(-2), ints(4, 5)},
		{"take more than size", e.Take(10), ints(1, 2, 3, 4, 5)},
		{"reverse", e.Reverse(), ints(5, 4, 3, 2, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertItems(t, tt.got, tt.want)
		})
	}
	assertItems(t, e.All(), ints(1, 2, 3, 4, 5))
}

func TestSplice(t *testing.T) {
	tests := []struct {
		name        string
		start       int
		limit       int
		inserts     []any
		wantRemoved []any
		wantLeft    []any
	}{
		{"head", 0, 1, nil, ints(1), ints(2, 3, 4)},
		{"through end", 1, 0, nil, ints(2, 3, 4), ints(1)},
		{"negative start", -1, 1, nil, ints(4), ints(1, 2, 3)},
		{"with inserts", 1, 2, []any{ints(8, 9)}, ints(2, 3), ints(1, 8, 9, 4)},
		{"limit past end", 2, 10, nil, ints(3, 4), ints(1, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(ints(1, 2, 3, 4))
			removed := e.Splice(tt.start, tt.limit, tt.inserts...)
			assertItems(t, removed, tt.wantRemoved)
			assertItems(t, e.All(), tt.wantLeft)
		})
	}
}

func TestTakeAndRemove(t *testing.T) {
	e := New(ints(1, 2, 3, 4, 5, 6))
	assertItems(t, e.TakeAndRemove(-2), ints(5, 6))
	assertItems(t, e.All(), ints(1, 2, 3, 4))

	assertItems(t, e.TakeAndRemove(3), ints(1, 2, 3))
	assertItems(t, e.All(), ints(4))

	assertItems(t, e.TakeAndRemove(30), ints(4))
	if !e.IsEmpty() {
		t.Errorf("expected empty, got %v", e.All())
	}
}

func TestPushPopShiftUnshift(t *testing.T) {
	e := New(ints(2, 3))
	assertItems(t, e.Push(4, 5), ints(2, 3, 4, 5))
	assertItems(t, e.Unshift(0, 1), ints(0, 1, 2, 3, 4, 5))

	if v, ok := e.Pop(); !ok || v != 5 {
		t.Errorf("Pop = %v, %v", v, ok)
	}
	if v, ok := e.Shift(); !ok || v != 0 {
		t.Errorf("Shift = %v, %v", v, ok)
	}
	assertItems(t, e.All(), ints(1, 2, 3, 4))

	empty := New(nil)
	if _, ok := empty.Pop(); ok {
		t.Error("Pop on empty should report absent")
	}
	if _, ok := empty.Shift(); ok {
		t.Error("Shift on empty should report absent")
	}
}

func TestPluck(t *testing.T) {
	e := New([]any{
		map[string]any{"name": "a", "meta": map[string]any{"age": 1}},
		map[string]any{"name": "b"},
	})
	got, err := e.Pluck("name")
	if err != nil {
		t.Fatal(err)
	}
	assertItems(t, got, []any{"a", "b"})

	got, _ = e.Pluck("name", "meta.age")
	assertItems(t, got, []any{
		map[string]any{"name": "a", "meta": map[string]any{"age": 1}},
		map[string]any{"name": "b", "meta": map[string]any{"age": nil}},
	})

	if _, err := e.Pluck(); !apperrors.IsCode(err, apperrors.ErrCodeInvalidArgument) {
		t.Errorf("Pluck() err = %v", err)
	}
}
