package yielder

// Consumer receives the values yielded through a bridge.
//
// Call is invoked with the exact argument list passed to Yield when it was
// called with zero or several values. Single values go through CallOne when
// the consumer implements UnaryConsumer.
type Consumer interface {
	Call(args []any) (any, error)
}

// UnaryConsumer is implemented by consumers which want single values to be
// delivered without an argument list.
type UnaryConsumer interface {
	Consumer
	CallOne(arg any) (any, error)
}

// ConsumerFunc adapts a function to the Consumer interface.
type ConsumerFunc func(args ...any) (any, error)

func (f ConsumerFunc) Call(args []any) (any, error) { return f(args...) }

// UnaryConsumerFunc adapts a pair of functions to the UnaryConsumer
// interface. Many is called for zero or several values, One for single ones.
// Both functions must be set.
type UnaryConsumerFunc struct {
	One  func(arg any) (any, error)
	Many func(args ...any) (any, error)
}

func (f UnaryConsumerFunc) Call(args []any) (any, error) { return f.Many(args...) }

func (f UnaryConsumerFunc) CallOne(arg any) (any, error) { return f.One(arg) }

// relay forwards calls from a bridge to the consumer it was bound to, keeping
// the shape of the call.
type relay struct {
	consumer Consumer
	unary    UnaryConsumer
}

func newRelay(c Consumer) *relay {
	r := &relay{consumer: c}
	r.unary, _ = c.(UnaryConsumer)
	return r
}

func (r *relay) call(args []any) (any, error) {
	return r.consumer.Call(args)
}

func (r *relay) callOne(arg any) (any, error) {
	if r.unary != nil {
		return r.unary.CallOne(arg)
	}
	return r.consumer.Call([]any{arg})
}
