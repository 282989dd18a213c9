package collect_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/kbukum/lazycollect/collect"
)

func Example() {
	c := collect.From([]int{1, 2, 3, 4}).
		Map(func(item any, _ int) any { return item.(int) * 2 }).
		Filter(func(item any, _ int) bool { return item.(int) > 2 })

	sum, _ := c.Sum()
	fmt.Println(c.All(), sum)
	// Output: [4 6 8] 18
}

func ExampleCollection_MapAsync() {
	ctx := context.Background()
	upper := func(_ context.Context, item any, _ int, _ []any) (any, error) {
		return strings.ToUpper(item.(string)), nil
	}

	p := collect.From([]string{"go", "is", "fun"}).MapAsync(upper)
	joined, _ := p.Join(ctx, " ")
	fmt.Println(joined)
	// Output: GO IS FUN
}

func ExampleCollection_Splice() {
	c := collect.From([]string{"a", "b", "c", "d"})
	removed := c.Splice(1, 2)
	fmt.Println(removed.All(), c.All())
	// Output: [b c] [a d]
}

func ExampleCollection_Err() {
	c := collect.From([]int{1, 2, 3}).Chunk(0).Reverse()
	fmt.Println(c.Err() != nil, c.Size())
	// Output: true 3
}
