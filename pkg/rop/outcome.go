package rop

import "errors"

// Outcome is a success or failure without a payload. Use the package
// factories to create one; the zero value is not meant to be used directly.
type Outcome struct {
	state
}

var (
	okOutcome     = &Outcome{state: newState(CodeOk)}
	failedOutcome = &Outcome{state: newState(CodeError)}
)

// Ok returns the shared generic success.
func Ok() *Outcome {
	return okOutcome
}

// Failed returns the shared generic failure, with no message or cause.
func Failed() *Outcome {
	return failedOutcome
}

func OfBool(isSuccess bool) *Outcome {
	if isSuccess {
		return okOutcome
	}
	return failedOutcome
}

// OfString treats s as an error message: blank means success.
func OfString(s string) *Outcome {
	if IsBlank(s) {
		return okOutcome
	}
	return FailMessage(s)
}

func Fail(code Code) *Outcome {
	return &Outcome{state: newState(code)}
}

// FailMessage creates a CodeCustomError outcome with the given message.
func FailMessage(message string) *Outcome {
	return &Outcome{state: newFailureState(CodeCustomError, message, nil)}
}

func FailCode(code Code, message string) *Outcome {
	return &Outcome{state: newFailureState(code, message, nil)}
}

// FailCause creates a generic CodeError failure caused by err.
func FailCause(err error) *Outcome {
	return &Outcome{state: newFailureState(CodeError, "", err)}
}

func FailWith(code Code, message string, err error) *Outcome {
	return &Outcome{state: newFailureState(code, message, err)}
}

func FailCodeCause(code Code, err error) *Outcome {
	return &Outcome{state: newFailureState(code, "", err)}
}

// FromError converts err back into an outcome. A nil error is success; an
// *OutcomeError in the chain restores its code, message and cause.
func FromError(err error) *Outcome {
	if err == nil {
		return okOutcome
	}
	var oe *OutcomeError
	if errors.As(err, &oe) && oe.Code != CodeOk {
		return FailWith(oe.Code, oe.Message, oe.Cause)
	}
	return FailCause(err)
}

// OnSuccess calls f with this outcome when it is a success.
func (o *Outcome) OnSuccess(f func(*Outcome) *Outcome) *Outcome {
	c := *o
	if c.testSuccess() {
		return f(&c)
	}
	return &c
}

// OnFailure calls f with this outcome when it is a failure.
func (o *Outcome) OnFailure(f func(*Outcome) *Outcome) *Outcome {
	c := *o
	if c.testFailure() {
		return f(&c)
	}
	return &c
}

// Else calls f when the branch tested just before did not run.
func (o *Outcome) Else(f func(*Outcome) *Outcome) *Outcome {
	if o.elseEligible() {
		return f(o)
	}
	return o
}

// And returns the first failure among o and other, or o when both succeed.
// A failed o wins over a nil other.
func (o *Outcome) And(other *Outcome) *Outcome {
	if o.IsFailure() {
		return o
	}
	if other == nil {
		return FailCode(CodeInvalidOperation, "logical and with null")
	}
	if other.IsFailure() {
		return other
	}
	return o
}

func (o *Outcome) AndAll(others ...*Outcome) *Outcome {
	for _, other := range others {
		if r := o.And(other); r.IsFailure() {
			return r
		}
	}
	return o
}

// Or returns the first success among o and other, or o when both fail.
// A successful o wins over a nil other.
func (o *Outcome) Or(other *Outcome) *Outcome {
	if o.IsSuccess() {
		return o
	}
	if other == nil {
		return FailCode(CodeInvalidOperation, "logical or with null")
	}
	if other.IsSuccess() {
		return other
	}
	return o
}

func (o *Outcome) OrAll(others ...*Outcome) *Outcome {
	for _, other := range others {
		if r := o.Or(other); r.IsSuccess() {
			return r
		}
	}
	return o
}

// WithCode returns a copy of o with a different code. The receiver is left
// untouched.
func (o *Outcome) WithCode(code Code) *Outcome {
	return &Outcome{state: build(code, o.message, o.cause)}
}

func (o *Outcome) WithMessage(message string) *Outcome {
	return &Outcome{state: build(o.code, message, o.cause)}
}

func (o *Outcome) WithCause(err error) *Outcome {
	return &Outcome{state: build(o.code, o.message, err)}
}
