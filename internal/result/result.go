// Package result provides a two-case container holding either a failure or a
// value, used instead of error returns above the repository boundary.
package result

import "reflect"

// Result holds exactly one of a failure F or a value V.
// The zero Result is a failure carrying the zero F.
type Result[F, V any] struct {
	failure F
	value   V
	ok      bool
}

// Failure builds a Result holding f.
func Failure[F, V any](f F) Result[F, V] {
	return Result[F, V]{failure: f}
}

// Value builds a Result holding v.
func Value[F, V any](v V) Result[F, V] {
	return Result[F, V]{value: v, ok: true}
}

// IsFailure reports whether r holds a failure.
func (r Result[F, V]) IsFailure() bool {
	return !r.ok
}

// IsValue reports whether r holds a value.
func (r Result[F, V]) IsValue() bool {
	return r.ok
}

// Failure returns the failure and true, or the zero F and false.
func (r Result[F, V]) Failure() (F, bool) {
	if r.ok {
		var zero F
		return zero, false
	}
	return r.failure, true
}

// Value returns the value and true, or the zero V and false.
func (r Result[F, V]) Value() (V, bool) {
	if !r.ok {
		var zero V
		return zero, false
	}
	return r.value, true
}

// UnwrapOr returns the value, or def when r holds a failure.
func (r Result[F, V]) UnwrapOr(def V) V {
	if !r.ok {
		return def
	}
	return r.value
}

// Equal compares two results structurally on their populated side.
func (r Result[F, V]) Equal(other Result[F, V]) bool {
	if r.ok != other.ok {
		return false
	}
	if r.ok {
		return reflect.DeepEqual(r.value, other.value)
	}
	return reflect.DeepEqual(r.failure, other.failure)
}

// Map applies f to the value of r, leaving a failure untouched.
func Map[F, V, T any](r Result[F, V], f func(V) T) Result[F, T] {
	if !r.ok {
		return Failure[F, T](r.failure)
	}
	return Value[F](f(r.value))
}

// FlatMap chains an operation that itself produces a Result.
func FlatMap[F, V, T any](r Result[F, V], f func(V) Result[F, T]) Result[F, T] {
	if !r.ok {
		return Failure[F, T](r.failure)
	}
	return f(r.value)
}

// Fold invokes exactly one of onFailure or onValue and returns its output.
func Fold[F, V, T any](r Result[F, V], onFailure func(F) T, onValue func(V) T) T {
	if !r.ok {
		return onFailure(r.failure)
	}
	return onValue(r.value)
}
