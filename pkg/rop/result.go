package rop

import (
	"errors"
	"log/slog"
	"reflect"

	"github.com/ib-77/opres/pkg/rop/opt"
)

// Result is an outcome that may carry a value of type T. A value is present
// only on success, and only when a non-nil one was supplied.
type Result[T any] struct {
	state
	value    T
	hasValue bool
}

// Success returns a success without a value.
func Success[T any]() Result[T] {
	return Result[T]{state: newState(CodeOk)}
}

// SuccessOf returns a success holding v. A nil v leaves the result empty.
func SuccessOf[T any](v T) Result[T] {
	return Result[T]{
		state:    newState(CodeOk),
		value:    v,
		hasValue: !IsNil(v),
	}
}

// Of infers the status from v: success when v is non-nil, otherwise a
// CodeCustomError failure.
func Of[T any](v T) Result[T] {
	if IsNil(v) {
		return FailResult[T](CodeCustomError)
	}
	return SuccessOf(v)
}

func ResultOfBool[T any](isSuccess bool) Result[T] {
	if isSuccess {
		return Success[T]()
	}
	return Failure[T]()
}

// ResultOfString treats s as an error message: blank means success.
func ResultOfString[T any](s string) Result[T] {
	if IsBlank(s) {
		return Success[T]()
	}
	return FailResultMessage[T](s)
}

func ResultOfError[T any](err error) Result[T] {
	return FailResultCause[T](err)
}

// Failure returns a generic CodeError failure.
func Failure[T any]() Result[T] {
	return Result[T]{state: newState(CodeError)}
}

func FailResult[T any](code Code) Result[T] {
	return Result[T]{state: newState(code)}
}

func FailResultMessage[T any](message string) Result[T] {
	return Result[T]{state: newFailureState(CodeCustomError, message, nil)}
}

func FailResultCode[T any](code Code, message string) Result[T] {
	return Result[T]{state: newFailureState(code, message, nil)}
}

func FailResultCause[T any](err error) Result[T] {
	return Result[T]{state: newFailureState(CodeError, "", err)}
}

func FailResultWith[T any](code Code, message string, err error) Result[T] {
	return Result[T]{state: newFailureState(code, message, err)}
}

func FailResultCodeCause[T any](code Code, err error) Result[T] {
	return Result[T]{state: newFailureState(code, "", err)}
}

// Try converts a (value, error) pair into a Result.
func Try[T any](v T, err error) Result[T] {
	if err != nil {
		return ResultFromError[T](err)
	}
	return SuccessOf(v)
}

// ResultFromError mirrors FromError for valued results.
func ResultFromError[T any](err error) Result[T] {
	if err == nil {
		return Success[T]()
	}
	var oe *OutcomeError
	if errors.As(err, &oe) && oe.Code != CodeOk {
		return FailResultWith[T](oe.Code, oe.Message, oe.Cause)
	}
	return FailResultCause[T](err)
}

// FromOption returns a success holding the option value, or a generic
// failure when the option is empty.
func FromOption[T any](o opt.Option[T]) Result[T] {
	if v, ok := o.Get(); ok {
		return SuccessOf(v)
	}
	return Failure[T]()
}

// Get returns the value, or the zero value of T when there is none.
func (r Result[T]) Get() T {
	return r.value
}

func (r Result[T]) GetOk() (T, bool) {
	return r.value, r.hasValue
}

func (r Result[T]) GetOrDefault(d T) T {
	if r.hasValue {
		return r.value
	}
	return d
}

func (r Result[T]) IsPresent() bool {
	return r.hasValue
}

func (r Result[T]) IsEmpty() bool {
	return !r.hasValue
}

// Or returns r when it holds a value, otherwise a new success holding
// fallback.
func (r Result[T]) Or(fallback T) Result[T] {
	return Or(r, fallback)
}

// EqualsValue reports whether r holds v. An empty result equals only nil.
func (r Result[T]) EqualsValue(v T) bool {
	if !r.hasValue {
		return IsNil(v)
	}
	return reflect.DeepEqual(r.value, v)
}

func (r Result[T]) OnSuccess(f func(Result[T]) Result[T]) Result[T] {
	return OnSuccess(r, f)
}

func (r Result[T]) OnFailure(f func(Result[T]) Result[T]) Result[T] {
	return OnFailure(r, f)
}

func (r Result[T]) Else(f func(Result[T]) Result[T]) Result[T] {
	return Else(r, f)
}

func (r Result[T]) ToOption() opt.Option[T] {
	if r.hasValue {
		return opt.Some(r.value)
	}
	return opt.None[T]()
}

// Outcome drops the value and keeps the status.
func (r Result[T]) Outcome() *Outcome {
	return &Outcome{state: r.state}
}

// WithCode returns a copy of r with a different code. The value survives only
// if the new code is CodeOk.
func (r Result[T]) WithCode(code Code) Result[T] {
	return r.rebuild(build(code, r.message, r.cause))
}

func (r Result[T]) WithMessage(message string) Result[T] {
	return r.rebuild(build(r.code, message, r.cause))
}

func (r Result[T]) WithCause(err error) Result[T] {
	return r.rebuild(build(r.code, r.message, err))
}

func (r Result[T]) rebuild(s state) Result[T] {
	out := Result[T]{state: s}
	if s.IsSuccess() && r.hasValue {
		out.value = r.value
		out.hasValue = true
	}
	return out
}

func (r Result[T]) LogValue() slog.Value {
	attrs := r.logAttrs()
	if r.hasValue {
		attrs = append(attrs, slog.Any("value", r.value))
	}
	return slog.GroupValue(attrs...)
}

// Retype moves r into Result[R], keeping its status, id and branch marker.
// The value is kept only when it is itself an R.
func Retype[T, R any](r Result[T]) Result[R] {
	out := Result[R]{state: r.state}
	if r.hasValue {
		if v, ok := any(r.value).(R); ok {
			out.value = v
			out.hasValue = true
		}
	}
	return out
}

// Or returns r retyped when it holds a value, otherwise a new success
// holding fallback.
func Or[T, R any](r Result[T], fallback R) Result[R] {
	if r.hasValue {
		return Retype[T, R](r)
	}
	return SuccessOf(fallback)
}

// OnSuccess calls f with r when r is a success. Otherwise r is retyped and
// returned, remembering that the success branch was tested.
func OnSuccess[T, R any](r Result[T], f func(Result[T]) Result[R]) Result[R] {
	if r.testSuccess() {
		return f(r)
	}
	return Retype[T, R](r)
}

// OnFailure calls f with r when r is a failure.
func OnFailure[T, R any](r Result[T], f func(Result[T]) Result[R]) Result[R] {
	if r.testFailure() {
		return f(r)
	}
	return Retype[T, R](r)
}

// Else calls f when the branch tested just before r did not run.
func Else[T, R any](r Result[T], f func(Result[T]) Result[R]) Result[R] {
	if r.elseEligible() {
		return f(r)
	}
	return Retype[T, R](r)
}
