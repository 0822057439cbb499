// Package options implements the functional options of the capture writer and the text
// renderer.
package options

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a function to Option.
type Func[T any] func(T) error

func (f Func[T]) apply(target T) error {
	return f(target)
}

// New returns an option that may reject its argument. The error aborts construction.
func New[T any](fn func(T) error) Func[T] {
	return Func[T](fn)
}

// NoError returns an option that cannot fail.
func NoError[T any](fn func(T)) Func[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply applies opts to target in order and stops at the first error, so later options
// override earlier ones. Nil options are skipped, which lets callers build option lists
// conditionally.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
