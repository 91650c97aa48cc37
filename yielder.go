// Package yielder connects producer code that emits values by calling Yield
// with a consumer closure that receives each value synchronously.
//
// A Bridge is the object handed to a producer. Every call to Yield is forwarded
// on the same call stack to the consumer the bridge was bound to, and the
// consumer's result is returned to the producer:
//
//	b, err := yielder.New(func(b *yielder.Bridge) error {
//		for i := 0; i < 3; i++ {
//			if _, err := b.Yield(i); err != nil {
//				return err
//			}
//		}
//		return nil
//	}, yielder.ConsumerFunc(func(args ...any) (any, error) {
//		fmt.Println(args...)
//		return nil, nil
//	}))
//
// The bridge does not suspend the producer. All values are produced in one
// synchronous burst during New unless a driver runs the producer on a separate
// goroutine, which is what the enumerator package does.
package yielder

import (
	"errors"
	"reflect"
)

var (
	// ErrMissingProducerBinding is returned when a bridge is constructed or
	// initialized without the code it is meant to bind.
	ErrMissingProducerBinding = errors.New("no producer block given")

	// ErrUninitializedBridge is returned by Yield and Append when the bridge
	// was never bound to a consumer.
	ErrUninitializedBridge = errors.New("uninitialized yielder")

	// ErrAlreadyInitialized is returned when Initialize is called on a bridge
	// that is already bound.
	ErrAlreadyInitialized = errors.New("yielder already initialized")
)

// Producer is a routine describing a sequence by calling Yield on the bridge
// it receives. Producers should return as soon as Yield returns an error, the
// error is how the consumer side asks the producer to stop.
type Producer func(*Bridge) error

// Bridge forwards the values yielded by a producer to a consumer.
//
// The zero value is an unbound bridge; every Yield on it fails with
// ErrUninitializedBridge until Initialize is called.
type Bridge struct {
	consumer *relay
}

// New creates a bridge bound to consumer, then invokes producer once with the
// bridge before returning. Values yielded by the producer reach the consumer
// before New returns.
//
// The error returned by the producer is returned as is. The bridge is returned
// whenever it was bound, even if the producer failed.
func New(producer Producer, consumer Consumer) (*Bridge, error) {
	if producer == nil {
		return nil, ErrMissingProducerBinding
	}
	b := new(Bridge)
	if err := b.Initialize(consumer); err != nil {
		return nil, err
	}
	return b, producer(b)
}

// Initialize binds the bridge to consumer. A bridge can only be bound once.
//
// A consumer that cannot be called, such as a nil pointer or a
// UnaryConsumerFunc missing one of its functions, is rejected with
// ErrMissingProducerBinding.
func (b *Bridge) Initialize(consumer Consumer) error {
	if isNil(consumer) {
		return ErrMissingProducerBinding
	}
	if b.consumer != nil {
		return ErrAlreadyInitialized
	}
	b.consumer = newRelay(consumer)
	return nil
}

// Initialized reports whether the bridge is bound to a consumer.
func (b *Bridge) Initialized() bool {
	return b != nil && b.consumer != nil
}

// Yield passes args to the consumer and returns what the consumer returned.
//
// Zero, one or many arguments are accepted and reach the consumer in the same
// shape. Errors returned by the consumer are returned unchanged.
func (b *Bridge) Yield(args ...any) (any, error) {
	if !b.Initialized() {
		return nil, ErrUninitializedBridge
	}
	switch len(args) {
	case 1:
		return b.consumer.callOne(args[0])
	default:
		return b.consumer.call(args)
	}
}

// Append is the operator form of Yield. It discards the consumer's result and
// returns the bridge so calls can be chained. The bridge is returned even when
// err is not nil.
func (b *Bridge) Append(args ...any) (*Bridge, error) {
	_, err := b.Yield(args...)
	return b, err
}

// Chain returns a Chain appending to b.
func (b *Bridge) Chain() *Chain {
	return &Chain{bridge: b}
}

// Chain appends successive values to a bridge until one of the appends
// fails, after which every Append is a no-op:
//
//	err := b.Chain().Append(1).Append(2).Append(3).Err()
type Chain struct {
	bridge *Bridge
	err    error
}

// Append yields args on the underlying bridge unless a previous append failed.
func (c *Chain) Append(args ...any) *Chain {
	if c.err == nil {
		_, c.err = c.bridge.Append(args...)
	}
	return c
}

// Err returns the error of the first append that failed.
func (c *Chain) Err() error { return c.err }

// isNil reports whether c cannot be called: a nil interface, a nil pointer or
// func behind the interface, or a UnaryConsumerFunc missing one of its
// functions.
func isNil(c Consumer) bool {
	switch f := c.(type) {
	case nil:
		return true
	case ConsumerFunc:
		return f == nil
	case UnaryConsumerFunc:
		return f.One == nil || f.Many == nil
	case *UnaryConsumerFunc:
		return f == nil || f.One == nil || f.Many == nil
	}
	switch v := reflect.ValueOf(c); v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
