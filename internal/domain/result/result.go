// Package result carries either a value or an *apperror.Error across component boundaries.
package result

import "github.com/Xausdorf/card-gateway/internal/domain/apperror"

const emptyResult = "empty result"

// Unit is the value of results that only signal success.
type Unit struct{}

// Result holds exactly one of a value or an error. Build it with Ok or Fail; the zero value
// reports an internal error.
type Result[T any] struct {
	value T
	err   *apperror.Error
	ok    bool
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Fail panics on a nil error: a failure without a cause is a programming error.
func Fail[T any](err *apperror.Error) Result[T] {
	if err == nil {
		panic("result: Fail called with nil error")
	}
	return Result[T]{err: err}
}

func Done() Result[Unit] {
	return Ok(Unit{})
}

func (r Result[T]) IsSuccess() bool {
	return r.ok
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() *apperror.Error {
	if r.ok {
		return nil
	}
	if r.err == nil {
		return apperror.Internal(emptyResult)
	}
	return r.err
}

// Unwrap returns the value and a nil error on success, or the zero value and the error.
func (r Result[T]) Unwrap() (T, *apperror.Error) {
	if r.ok {
		return r.value, nil
	}
	var zero T
	return zero, r.Err()
}

// Match calls exactly one of onOk or onErr.
func Match[T, R any](r Result[T], onOk func(T) R, onErr func(*apperror.Error) R) R {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.Err())
}
