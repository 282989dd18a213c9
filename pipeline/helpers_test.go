package pipeline

import (
	"context"
	"reflect"
	"testing"
)

func ints(n ...int) []any {
	out := make([]any, len(n))
	for i, v := range n {
		out[i] = v
	}
	return out
}

func times(k int) func(context.Context, any, int, []any) (any, error) {
	return func(_ context.Context, item any, _ int, _ []any) (any, error) {
		return item.(int) * k, nil
	}
}

func greaterThan(k int) func(context.Context, any, int, []any) (bool, error) {
	return func(_ context.Context, item any, _ int, _ []any) (bool, error) {
		return item.(int) > k, nil
	}
}

func mustAll(t *testing.T, p *Pipeline) []any {
	t.Helper()
	got, err := p.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	return got
}

func assertItems(t *testing.T, got, want []any) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
