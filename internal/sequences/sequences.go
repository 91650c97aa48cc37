// Package sequences contains producers used by the yieldseq command.
package sequences

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"

	"github.com/dispatchrun/yielder"
)

// ErrOverflow is returned by Fibonacci once the next number does not fit in
// an int.
var ErrOverflow = errors.New("sequence overflows int")

// Fibonacci yields the Fibonacci numbers, starting at 0, up to the largest one
// representable as an int, then returns ErrOverflow.
func Fibonacci(b *yielder.Bridge) error {
	a, c := 0, 1
	for {
		if _, err := b.Yield(a); err != nil {
			return err
		}
		// c was computed as the sum of the two previous numbers and wraps to
		// a negative value on overflow.
		if c < a {
			return ErrOverflow
		}
		a, c = c, a+c
	}
}

// Range yields start, start+step, ... up to but not including stop.
func Range(start, stop, step int) (yielder.Producer, error) {
	if step == 0 {
		return nil, fmt.Errorf("invalid range step: %d", step)
	}
	return func(b *yielder.Bridge) error {
		for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
			if _, err := b.Yield(i); err != nil {
				return err
			}
			if (step > 0 && i > math.MaxInt-step) || (step < 0 && i < math.MinInt-step) {
				break
			}
		}
		return nil
	}, nil
}

// Lines yields the lines read from r, without their line terminator.
func Lines(r io.Reader) yielder.Producer {
	return func(b *yielder.Bridge) error {
		s := bufio.NewScanner(r)
		for s.Scan() {
			if _, err := b.Yield(s.Text()); err != nil {
				return err
			}
		}
		return s.Err()
	}
}

// Pairs yields each key and value of m as a two argument call, in key order.
func Pairs[K cmp.Ordered, V any](m map[K]V) yielder.Producer {
	return func(b *yielder.Bridge) error {
		for _, k := range slices.Sorted(maps.Keys(m)) {
			if _, err := b.Yield(k, m[k]); err != nil {
				return err
			}
		}
		return nil
	}
}
