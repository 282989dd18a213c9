package pipeline_test

import (
	"context"
	"fmt"

	"github.com/kbukum/lazycollect/pipeline"
)

func Example() {
	ctx := context.Background()
	p := pipeline.From([]int{1, 2, 3, 4, 5}).
		Map(func(_ context.Context, item any, _ int, _ []any) (any, error) {
			return item.(int) * 10, nil
		}).
		Filter(func(_ context.Context, item any, _ int, _ []any) (bool, error) {
			return item.(int) > 20, nil
		})

	last, _, _ := p.Pop(ctx)
	rest, _ := p.All(ctx)
	fmt.Println(last, rest)
	// Output: 50 [30 40]
}

func ExamplePipeline_TakeAndRemove() {
	ctx := context.Background()
	p := pipeline.From([]int{1, 2, 3, 4, 5, 6})
	tail := p.TakeAndRemove(-2)

	taken, _ := tail.All(ctx)
	rest, _ := p.All(ctx)
	fmt.Println(taken, rest)
	// Output: [5 6] [1 2 3 4]
}

func ExamplePipeline_GroupBy() {
	people := []any{
		map[string]any{"name": "Ada", "team": "core"},
		map[string]any{"name": "Linus", "team": "kernel"},
		map[string]any{"name": "Grace", "team": "core"},
	}
	groups, _ := pipeline.From(people).GroupBy(context.Background(), "team")
	for _, key := range groups.Keys() {
		members, _ := groups.Get(key)
		fmt.Println(key, len(members))
	}
	// Output:
	// core 2
	// kernel 1
}

func ExampleAllAs() {
	ctx := context.Background()
	p := pipeline.From([]string{"b", "a", "c"}).Sort(nil)
	words, _ := pipeline.AllAs[string](ctx, p)
	fmt.Println(words)
	// Output: [a b c]
}
