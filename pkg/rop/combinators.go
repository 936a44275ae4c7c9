package rop

// Map transforms the value of a success. Failures and successes without a
// value pass through retyped.
func Map[T, R any](r Result[T], onSuccess func(T) R) Result[R] {
	if r.hasValue {
		return SuccessOf(onSuccess(r.value))
	}
	return Retype[T, R](r)
}

// Bind switches a success holding a value to the Result returned by
// onSuccess.
func Bind[T, R any](r Result[T], onSuccess func(T) Result[R]) Result[R] {
	if r.hasValue {
		return onSuccess(r.value)
	}
	return Retype[T, R](r)
}

// Tee runs a side effect on success and returns r unchanged.
func Tee[T any](r Result[T], onSuccess func(Result[T])) Result[T] {
	if r.IsSuccess() {
		onSuccess(r)
	}
	return r
}

// Match collapses r into a single value. It never reads or sets the branch
// marker, so it is safe to use where OnSuccess/OnFailure/Else ordering would
// be hard to follow.
func Match[T, R any](r Result[T], onSuccess func(Result[T]) R, onFailure func(Result[T]) R) R {
	if r.IsSuccess() {
		return onSuccess(r)
	}
	return onFailure(r)
}
