package enumerator

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dispatchrun/yielder"
)

// Merge runs producers concurrently, forwarding the values they yield to
// consumer. Calls to the consumer are serialized, values from a single
// producer reach it in the order they were yielded.
//
// The first producer to fail cancels the others: their next Yield returns the
// context error. Once the consumer returned an error it is not called again,
// and every later Yield returns that same error. Merge returns the first
// error, or nil if every producer completed or the consumer returned
// ErrStopped.
func Merge(ctx context.Context, consumer yielder.Consumer, producers ...yielder.Producer) error {
	shared := new(yielder.Bridge)
	if err := shared.Initialize(consumer); err != nil {
		return err
	}

	group, ctx := errgroup.WithContext(ctx)
	var (
		mutex sync.Mutex
		// failure is the first error returned by the consumer. Producers
		// waiting on the mutex when it was set must not reach the consumer.
		failure error
	)

	for i, producer := range producers {
		group.Go(func() error {
			_, err := yielder.New(producer, yielder.ConsumerFunc(func(args ...any) (any, error) {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				mutex.Lock()
				defer mutex.Unlock()
				if failure != nil {
					return nil, failure
				}
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				v, err := shared.Yield(args...)
				if err != nil {
					failure = err
				}
				return v, err
			}))
			if err != nil {
				Logger().Debug("merged producer failed", zap.Int("producer", i), zap.Error(err))
			}
			return err
		})
	}

	err := group.Wait()
	if errors.Is(err, ErrStopped) {
		return nil
	}
	return err
}
