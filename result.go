package collectz

// Result represents either a successful value or an error.
// Fallible leaves (TryFold) use it as their output, and DeadLetter routes a
// stream of Results into separate success and failure collectors.
type Result[T any] struct {
	value T
	err   *StreamError[T]
}

// NewSuccess creates a Result containing a successful value.
func NewSuccess[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// NewError creates a Result containing an error.
func NewError[T any](item T, err error, processorName string) Result[T] {
	return Result[T]{err: NewStreamError(item, err, processorName)}
}

// IsError returns true if this Result contains an error.
func (r Result[T]) IsError() bool {
	return r.err != nil
}

// IsSuccess returns true if this Result contains a successful value.
func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// Value returns the successful value.
// Panics if called on a Result containing an error - always check IsSuccess() first.
func (r Result[T]) Value() T {
	if r.err != nil {
		panic("called Value() on Result containing an error")
	}
	return r.value
}

// Error returns the StreamError.
// Returns nil if this Result contains a successful value.
func (r Result[T]) Error() *StreamError[T] {
	return r.err
}

// ValueOr returns the successful value if present, otherwise returns the fallback.
func (r Result[T]) ValueOr(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

// Map applies a function to the value if this Result is successful.
// If this Result contains an error, returns the error unchanged.
func (r Result[T]) Map(fn func(T) T) Result[T] {
	if r.err != nil {
		return r
	}
	return NewSuccess(fn(r.value))
}

// MapError applies a function to transform the error if this Result contains an error.
// If this Result is successful, returns the success value unchanged.
func (r Result[T]) MapError(fn func(*StreamError[T]) *StreamError[T]) Result[T] {
	if r.err == nil {
		return r
	}
	return Result[T]{
		value: r.value,
		err:   fn(r.err),
	}
}
