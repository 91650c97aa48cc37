package enumerator

import (
	"errors"
	"iter"

	"github.com/dispatchrun/yielder"
)

// Each calls fn with the argument list of every value yielded by producer.
// The producer runs on the calling goroutine and Each returns once it has
// returned.
//
// fn may return ErrStopped to end the iteration early, in which case Each
// returns nil. Any other error returned by fn is handed to the producer as
// the result of its Yield call, and is returned by Each if the producer
// returns it.
func Each(producer yielder.Producer, fn func(args ...any) error) error {
	_, err := yielder.New(producer, yielder.ConsumerFunc(func(args ...any) (any, error) {
		return nil, fn(args...)
	}))
	if errors.Is(err, ErrStopped) {
		return nil
	}
	return err
}

// Collect returns every value yielded by producer, converted with Value.
func Collect(producer yielder.Producer) ([]any, error) {
	var values []any
	err := Each(producer, func(args ...any) error {
		values = append(values, Value(args))
		return nil
	})
	return values, err
}

// Take returns the first n values yielded by producer, converted with Value.
// The producer is stopped once n values were received, which makes Take
// usable with producers describing infinite sequences.
func Take(producer yielder.Producer, n int) ([]any, error) {
	if n <= 0 {
		return nil, nil
	}
	values := make([]any, 0, n)
	err := Each(producer, func(args ...any) error {
		if len(values) == n {
			return ErrStopped
		}
		values = append(values, Value(args))
		if len(values) == n {
			return ErrStopped
		}
		return nil
	})
	return values, err
}

// Seq returns an iterator over the values yielded by producer, converted with
// Value. If the producer fails, the last pair produced by the iterator holds
// a nil value and the error.
//
// Breaking out of the loop stops the producer.
func Seq(producer yielder.Producer) iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		stopped := false
		err := Each(producer, func(args ...any) error {
			if stopped || !yield(Value(args), nil) {
				stopped = true
				return ErrStopped
			}
			return nil
		})
		if err != nil && !stopped {
			yield(nil, err)
		}
	}
}
