package sequence

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

func assertItems(t *testing.T, got, want []any) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func double(_ context.Context, item any, _ int, _ []any) (any, error) {
	return item.(int) * 2, nil
}

func isEven(_ context.Context, item any, _ int, _ []any) (bool, error) {
	return item.(int)%2 == 0, nil
}
