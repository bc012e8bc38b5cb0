package result

import "fmt"

// Optional holds either a value or nothing. Queries return an empty Optional
// when a suppressed failure prevented them from producing a value.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsPresent reports whether o holds a value.
func (o Optional[T]) IsPresent() bool {
	return o.ok
}

// OrElse returns the value, or def if o is empty.
func (o Optional[T]) OrElse(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

// String implements fmt.Stringer.
func (o Optional[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map applies f to the value of o, if any.
func Map[T, U any](o Optional[T], f func(T) U) Optional[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(f(o.value))
}

// FlatMap applies f to the value of o, if any, and returns its result.
// Errors from f are returned unchanged.
func FlatMap[T, U any](o Optional[T], f func(T) (Optional[U], error)) (Optional[U], error) {
	if !o.ok {
		return None[U](), nil
	}
	return f(o.value)
}
