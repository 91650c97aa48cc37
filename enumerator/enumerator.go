// Package enumerator drives producers written against yielder.Bridge.
//
// An Enumerator runs its producer on a separate goroutine and hands values to
// the caller one at a time, so the producer only makes progress when Next is
// called. The helpers Each, Collect, Take and Seq run the producer on the
// caller's goroutine instead, consuming every value in one synchronous burst.
package enumerator

import (
	"errors"
	"fmt"
	"runtime/debug"
	"slices"

	"go.uber.org/zap"

	"github.com/dispatchrun/yielder"
)

// ErrStopped is returned by Yield when the consumer side asked the producer
// to stop. Producers should return it (or any error wrapping it) as is;
// the functions of this package treat it as a normal end of the sequence.
var ErrStopped = errors.New("enumerator stopped")

// Enumerator pulls values out of a producer lazily.
//
// The producer starts on the first call to Next and is suspended in each call
// to Yield until Next is called again. Programs that do not exhaust an
// enumerator must call Stop to release the goroutine running the producer.
type Enumerator struct {
	producer yielder.Producer

	next    chan struct{}
	args    []any
	send    any
	started bool
	stop    bool
	done    bool
	err     error
	panic   *PanicError
}

// New creates an enumerator over the values yielded by producer. The producer
// does not start until the first call to Next.
func New(producer yielder.Producer) *Enumerator {
	return &Enumerator{
		producer: producer,
		next:     make(chan struct{}),
	}
}

func (e *Enumerator) start() {
	e.started = true
	Logger().Debug("enumerator started")

	go func() {
		defer func() {
			if v := recover(); v != nil {
				e.panic = &PanicError{Value: v, Stack: debug.Stack()}
			}
			e.done = true
			close(e.next)
		}()

		<-e.next

		if e.stop {
			return
		}
		_, err := yielder.New(e.producer, yielder.ConsumerFunc(e.yield))
		if err != nil && !errors.Is(err, ErrStopped) {
			e.err = err
		}
	}()
}

// yield is the consumer bound to the producer's bridge. It runs on the
// producer goroutine and parks it until the next call to Next or Stop.
func (e *Enumerator) yield(args ...any) (any, error) {
	if e.stop {
		return nil, ErrStopped
	}
	e.send = nil
	e.args = args
	e.next <- struct{}{}
	<-e.next
	if e.stop {
		return nil, ErrStopped
	}
	return e.send, nil
}

// Next runs the producer until its next Yield, or until it returns. The method
// returns true if a value was yielded, after which Value and Args expose it.
//
// If the producer panicked, the panic is raised again on the caller of Next as
// a *PanicError.
func (e *Enumerator) Next() bool {
	if e.done {
		return false
	}
	if !e.started {
		e.start()
	}
	e.next <- struct{}{}
	if _, ok := <-e.next; !ok {
		e.finish()
		return false
	}
	return true
}

// Value returns the last yielded value. A single argument is returned as is,
// several arguments are returned as a copy of the argument list, and yielding
// no arguments gives a nil value.
func (e *Enumerator) Value() any { return Value(e.args) }

// Args returns the argument list of the last Yield, in the shape it was
// called with. The slice is the producer's own and is only valid until the
// next call to Next.
func (e *Enumerator) Args() []any { return e.args }

// Send sets the value returned to the producer by the Yield call it is
// suspended in, once Next resumes it. Only the last value sent before Next
// is seen; a Yield resumed without a Send returns nil.
func (e *Enumerator) Send(v any) { e.send = v }

// Err returns the error the producer returned, if any. ErrStopped is not
// reported. Err is only meaningful after Next has returned false.
func (e *Enumerator) Err() error { return e.err }

// Done reports whether the producer has returned, either on its own or
// because the enumerator was stopped.
func (e *Enumerator) Done() bool { return e.done }

// Stop interrupts the producer. The Yield call the producer is blocked on, and
// every Yield after it, returns ErrStopped. Stop waits for the producer to
// return.
//
// If the producer panics while it unwinds, the panic is raised again on the
// caller of Stop as a *PanicError.
//
// Stop is idempotent, calling it multiple times or after completion of the
// producer has no effect.
func (e *Enumerator) Stop() {
	if e.done {
		return
	}
	e.stop = true
	if !e.started {
		e.done = true
		return
	}
	e.next <- struct{}{}
	for range e.next {
	}
	Logger().Debug("enumerator stopped")
	e.finish()
}

func (e *Enumerator) finish() {
	e.args = nil
	if e.panic != nil {
		p := e.panic
		e.panic = nil
		panic(p)
	}
	if e.err != nil {
		Logger().Debug("enumerator failed", zap.Error(e.err))
	} else {
		Logger().Debug("enumerator completed")
	}
}

// PanicError is raised by Next and Stop when the producer panicked.
type PanicError struct {
	Value any
	Stack []byte
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("enumerator: producer panicked: %v\n\n%s", p.Value, p.Stack)
}

// Unwrap returns the panic value when it is an error.
func (p *PanicError) Unwrap() error {
	err, _ := p.Value.(error)
	return err
}

// Value converts an argument list to a single value the way Enumerator.Value
// does. Lists of several arguments are copied, producers may reuse the slice
// they yield.
func Value(args []any) any {
	switch len(args) {
	case 0:
		return nil
	case 1:
		return args[0]
	default:
		return slices.Clone(args)
	}
}
