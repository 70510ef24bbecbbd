package collectz

import "fmt"

// Option holds a value that may be absent. Leaves that can finish without
// having seen a suitable item (Min, Max, First, Last, Find, Reduce) return
// one.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// ValueOr returns the value if present, otherwise returns the fallback.
func (o Option[T]) ValueOr(fallback T) T {
	if !o.ok {
		return fallback
	}
	return o.value
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
