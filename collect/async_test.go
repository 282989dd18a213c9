package collect

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	apperrors "github.com/kbukum/lazycollect/errors"
)

func asyncDouble(_ context.Context, item any, _ int, _ []any) (any, error) {
	return item.(int) * 2, nil
}

func asyncEven(_ context.Context, item any, _ int, _ []any) (bool, error) {
	return item.(int)%2 == 0, nil
}

func TestAsyncChainIsDeferred(t *testing.T) {
	var calls atomic.Int32
	fn := func(ctx context.Context, item any, i int, items []any) (any, error) {
		calls.Add(1)
		return asyncDouble(ctx, item, i, items)
	}

	p := From([]int{1, 2, 3}).MapAsync(fn).FilterSeries(func(_ context.Context, item any, _ int, _ []any) (bool, error) {
		return item.(int) > 2, nil
	})
	if calls.Load() != 0 {
		t.Fatalf("callback ran %d times before a terminal call", calls.Load())
	}

	got, err := p.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	assertItems(t, got, ints(4, 6))
	if calls.Load() != 3 {
		t.Errorf("callback ran %d times, want 3", calls.Load())
	}
}

func TestAsyncChainMethods(t *testing.T) {
	ctx := context.Background()
	c := From([]int{1, 2, 3, 4})
	tests := []struct {
		name string
		run  func(context.Context) ([]any, error)
		want []any
	}{
		{"MapSeries", c.MapSeries(asyncDouble).All, ints(2, 4, 6, 8)},
		{"FilterAsync", c.FilterAsync(asyncEven).All, ints(2, 4)},
		{"RejectAsync", c.RejectAsync(asyncEven).All, ints(1, 3)},
		{"RejectSeries", c.RejectSeries(asyncEven).All, ints(1, 3)},
		{"FlatMapAsync", c.FlatMapAsync(func(_ context.Context, item any, _ int, _ []any) (any, error) {
			return []any{item, item}, nil
		}).Take(4).All, ints(1, 1, 2, 2)},
		{"TapAsync", c.TapAsync(func(context.Context, any, int, []any) error { return nil }).All, ints(1, 2, 3, 4)},
		{"UniqueByAsync", c.UniqueByAsync(func(_ context.Context, item any) (any, error) {
			return item.(int) > 2, nil
		}).All, ints(1, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.run(ctx)
			if err != nil {
				t.Fatalf("err: %v", err)
			}
			assertItems(t, got, tt.want)
		})
	}
}

func TestAsyncTerminals(t *testing.T) {
	ctx := context.Background()
	c := From([]int{1, 2, 3, 4})

	if ok, err := c.SomeAsync(ctx, asyncEven); err != nil || !ok {
		t.Errorf("SomeAsync = %v, %v", ok, err)
	}
	if ok, err := c.SomeSeries(ctx, asyncEven); err != nil || !ok {
		t.Errorf("SomeSeries = %v, %v", ok, err)
	}
	if ok, err := c.EveryAsync(ctx, asyncEven); err != nil || ok {
		t.Errorf("EveryAsync = %v, %v", ok, err)
	}
	if ok, err := c.EverySeries(ctx, asyncEven); err != nil || ok {
		t.Errorf("EverySeries = %v, %v", ok, err)
	}
	if v, found, err := c.FindAsync(ctx, asyncEven); err != nil || !found || v != 2 {
		t.Errorf("FindAsync = %v, %v, %v", v, found, err)
	}
	if v, found, err := c.FindSeries(ctx, asyncEven); err != nil || !found || v != 2 {
		t.Errorf("FindSeries = %v, %v, %v", v, found, err)
	}
	if n, err := c.CountAsync(ctx, asyncEven); err != nil || n != 2 {
		t.Errorf("CountAsync = %v, %v", n, err)
	}

	sum := func(_ context.Context, carry, item any, _ int, _ []any) (any, error) {
		return carry.(int) + item.(int), nil
	}
	if v, err := c.ReduceAsync(ctx, sum, 0); err != nil || v != 10 {
		t.Errorf("ReduceAsync = %v, %v", v, err)
	}
	if v, err := c.ReduceRightAsync(ctx, sum, 0); err != nil || v != 10 {
		t.Errorf("ReduceRightAsync = %v, %v", v, err)
	}

	var seen atomic.Int32
	each := func(context.Context, any, int, []any) error {
		seen.Add(1)
		return nil
	}
	if err := c.ForEachAsync(ctx, each); err != nil {
		t.Errorf("ForEachAsync: %v", err)
	}
	if err := c.ForEachSeries(ctx, each); err != nil {
		t.Errorf("ForEachSeries: %v", err)
	}
	if seen.Load() != 8 {
		t.Errorf("visited %d items, want 8", seen.Load())
	}
}

func TestAsyncErrorIsReturnedUnchanged(t *testing.T) {
	boom := errors.New("boom")
	_, err := From([]int{1, 2}).MapAsync(func(context.Context, any, int, []any) (any, error) {
		return nil, boom
	}).All(context.Background())
	if err != boom {
		t.Errorf("err = %v, want %v", err, boom)
	}
}

func TestAsyncCarriesStickyError(t *testing.T) {
	c := From([]int{1}).Map(nil)
	_, err := c.MapAsync(asyncDouble).All(context.Background())
	if !apperrors.IsCode(err, apperrors.ErrCodeInvalidArgument) {
		t.Errorf("err = %v", err)
	}
}
