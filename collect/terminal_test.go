package collect

import (
	"strings"
	"testing"

	apperrors "github.com/kbukum/lazycollect/errors"
)

func TestAggregates(t *testing.T) {
	c := From([]int{4, 1, 3, 2})
	tests := []struct {
		name string
		fn   func() (float64, error)
		want float64
	}{
		{"Sum", c.Sum, 10},
		{"Avg", c.Avg, 2.5},
		{"Min", c.Min, 1},
		{"Max", c.Max, 4},
		{"Median", c.Median, 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			if err != nil {
				t.Fatalf("err: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAggregateErrors(t *testing.T) {
	if _, err := From(nil).Min(); !apperrors.IsCode(err, apperrors.ErrCodeEmptySequence) {
		t.Errorf("Min on empty = %v", err)
	}
	if _, err := From([]any{1, "x"}).Sum(); !apperrors.IsCode(err, apperrors.ErrCodeNotNumeric) {
		t.Errorf("Sum on strings = %v", err)
	}
	if sum, err := From(nil).Sum(); err != nil || sum != 0 {
		t.Errorf("Sum on empty = %v, %v", sum, err)
	}
}

func TestCount(t *testing.T) {
	c := From([]int{1, 2, 3, 4})
	if n, _ := c.Count(); n != 4 {
		t.Errorf("Count() = %d", n)
	}
	if n, _ := c.Count(isEven); n != 2 {
		t.Errorf("Count(isEven) = %d", n)
	}
	if _, err := c.Count(isEven, isEven); !apperrors.IsCode(err, apperrors.ErrCodeInvalidArgument) {
		t.Errorf("two predicates err = %v", err)
	}
	if c.Size() != 4 || c.IsEmpty() || !c.IsNotEmpty() {
		t.Error("size helpers disagree")
	}
}

func TestSearches(t *testing.T) {
	c := From([]int{1, 3, 4, 5, 6})

	if !c.Some(isEven) || !c.Any(isEven) {
		t.Error("Some(isEven) = false")
	}
	if c.Every(isEven) {
		t.Error("Every(isEven) = true")
	}
	if !From(nil).Every(isEven) {
		t.Error("Every on empty collection should be true")
	}
	if v, ok := c.Find(isEven); !ok || v != 4 {
		t.Errorf("Find = %v, %v", v, ok)
	}
	if v, ok, _ := c.First(); !ok || v != 1 {
		t.Errorf("First() = %v, %v", v, ok)
	}
	if v, ok, _ := c.Last(isEven); !ok || v != 6 {
		t.Errorf("Last(isEven) = %v, %v", v, ok)
	}
	if _, _, err := c.First(isEven, isEven); !apperrors.IsCode(err, apperrors.ErrCodeInvalidArgument) {
		t.Errorf("First with two predicates err = %v", err)
	}
	if _, _, err := c.Last(nil); !apperrors.IsCode(err, apperrors.ErrCodeInvalidArgument) {
		t.Errorf("Last(nil) err = %v", err)
	}
}

func TestSearchStopsAtMatch(t *testing.T) {
	calls := 0
	From([]int{1, 2, 3, 4}).Some(func(item any, _ int) bool {
		calls++
		return item.(int) == 2
	})
	if calls != 2 {
		t.Errorf("predicate ran %d times, want 2", calls)
	}
}

func TestHas(t *testing.T) {
	c := From([]any{1, "two", 3.0})
	tests := []struct {
		name   string
		target any
		want   bool
	}{
		{"literal", "two", true},
		{"numeric identity", 3, true},
		{"missing literal", "four", false},
		{"predicate func", PredicateFunc(func(item any, _ int) bool { return item == "two" }), true},
		{"plain func", func(item any, _ int) bool { return item == 9 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Has(tt.target); got != tt.want {
				t.Errorf("Has = %v, want %v", got, tt.want)
			}
			if got := c.Includes(tt.target); got != tt.want {
				t.Errorf("Includes = %v, want %v", got, tt.want)
			}
		})
	}
	if !From([]int{1, 1}).HasDuplicates() || From([]int{1, 2}).HasDuplicates() {
		t.Error("HasDuplicates disagrees")
	}
}

func TestHas_NilFunction(t *testing.T) {
	c := From([]int{1})
	targets := []any{
		PredicateFunc(nil),
		(func(any, int) bool)(nil),
	}
	for _, target := range targets {
		if c.Has(target) || c.Includes(target) {
			t.Errorf("Has(%T nil) = true", target)
		}
	}
}

func TestReduce(t *testing.T) {
	c := From([]string{"a", "b", "c"})
	concat := func(carry, item any, _ int) any { return carry.(string) + item.(string) }

	left, err := c.Reduce(concat, "")
	if err != nil || left != "abc" {
		t.Errorf("Reduce = %v, %v", left, err)
	}
	right, err := c.ReduceRight(concat, "")
	if err != nil || right != "cba" {
		t.Errorf("ReduceRight = %v, %v", right, err)
	}
	if _, err := c.Reduce(nil, ""); !apperrors.IsCode(err, apperrors.ErrCodeInvalidArgument) {
		t.Errorf("Reduce(nil) err = %v", err)
	}
}

func TestForEach(t *testing.T) {
	var b strings.Builder
	c := From([]string{"x", "y"})
	if got := c.ForEach(func(item any, _ int) { b.WriteString(item.(string)) }); got != c {
		t.Error("ForEach should return the receiver")
	}
	if b.String() != "xy" {
		t.Errorf("visited %q", b.String())
	}
}

func TestGroupByJoinToJSON(t *testing.T) {
	c := From([]any{
		map[string]any{"name": "a", "team": "core"},
		map[string]any{"name": "b"},
		map[string]any{"name": "c", "team": "core"},
	})

	groups, err := c.GroupBy("team")
	if err != nil {
		t.Fatalf("GroupBy: %v", err)
	}
	if keys := groups.Keys(); len(keys) != 2 || keys[0] != "core" || keys[1] != "" {
		t.Errorf("keys = %q", keys)
	}

	if got := From([]int{1, 2, 3}).Join(", "); got != "1, 2, 3" {
		t.Errorf("Join = %q", got)
	}

	js, err := From([]any{1, "a", true}).ToJSON()
	if err != nil || js != `[1,"a",true]` {
		t.Errorf("ToJSON = %s, %v", js, err)
	}
}
