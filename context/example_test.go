package context_test

import (
	"fmt"
	"os"

	"github.com/dndm/bcnum"
	"github.com/dndm/bcnum/context"
)

// average sets a new Number to the arithmetic mean of nums, computed at
// ctx's scale, and returns it. It fails if nums is empty, which divides by
// zero.
func average(ctx *context.Context, nums []*bcnum.Number) (*bcnum.Number, error) {
	sum := ctx.New()
	for _, n := range nums {
		ctx.Add(sum, sum, n)
	}
	count := ctx.NewUint64(uint64(len(nums)))
	ctx.Div(sum, sum, count)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return sum, nil
}

// Example demonstrates chaining several operations through a Context and
// checking for failure once at the end of a logical unit of work.
func Example() {
	ctx := context.New(0)
	ctx.SetOutput(os.Stdout)

	a, b, c := ctx.New(), ctx.New(), ctx.New()
	ctx.Parse(a, "10", 10)
	ctx.Parse(b, "15", 10)
	ctx.Parse(c, "20", 10)

	mean, err := average(ctx, []*bcnum.Number{a, b, c})
	if err != nil {
		fmt.Println("failed:", err)
		return
	}
	ctx.Print(mean, 10, true)

	_, err = average(ctx, nil)
	fmt.Println("empty average failed:", err != nil)

	// Output:
	// 15
	// empty average failed: true
}
