package producer

import "github.com/dispatchrun/yielder"

func checked(b *yielder.Bridge) error {
	if _, err := b.Yield(1); err != nil {
		return err
	}
	v, err := b.Yield(2)
	if err != nil {
		return err
	}
	_ = v
	_, err = b.Append(3)
	return err
}

func unchecked(b *yielder.Bridge) error {
	b.Yield(1)       // want `error returned by \(\*yielder\.Bridge\)\.Yield is not checked`
	(b.Append(2))    // want `error returned by \(\*yielder\.Bridge\)\.Append is not checked`
	_, _ = b.Yield() // want `error returned by \(\*yielder\.Bridge\)\.Yield is assigned to the blank identifier`
	b.Initialized()
	return nil
}

func construct(c yielder.Consumer) {
	yielder.New(unchecked, c) // want `error returned by yielder\.New is not checked`

	var b yielder.Bridge
	_ = b.Initialize(c) // want `error returned by \(\*yielder\.Bridge\)\.Initialize is assigned to the blank identifier`
}
