package yielder_test

import (
	"fmt"

	"github.com/dispatchrun/yielder"
)

func Example() {
	sum := 0
	_, err := yielder.New(func(b *yielder.Bridge) error {
		for i := 1; i <= 4; i++ {
			if _, err := b.Yield(i); err != nil {
				return err
			}
		}
		return nil
	}, yielder.ConsumerFunc(func(args ...any) (any, error) {
		sum += args[0].(int)
		return sum, nil
	}))
	if err != nil {
		panic(err)
	}
	fmt.Println(sum)
	// Output: 10
}

func ExampleBridge_Append() {
	_, err := yielder.New(func(b *yielder.Bridge) error {
		return b.Chain().Append("a").Append("b", "c").Append().Err()
	}, yielder.ConsumerFunc(func(args ...any) (any, error) {
		fmt.Println(len(args), args)
		return nil, nil
	}))
	if err != nil {
		panic(err)
	}
	// Output:
	// 1 [a]
	// 2 [b c]
	// 0 []
}
