package rop

import "strings"

// OutcomeError is the error form of a failed outcome.
type OutcomeError struct {
	Code    Code
	Message string
	Cause   error
}

func (e *OutcomeError) Error() string {
	s := state{code: e.Code, message: e.Message, cause: e.Cause}
	lines := s.detailLines()
	if len(lines) == 0 {
		return e.Code.String()
	}
	return strings.Join(lines, " ")
}

func (e *OutcomeError) Unwrap() error {
	return e.Cause
}

// Is matches any *OutcomeError with the same code, so errors.Is can be used
// to test a wrapped failure for its code.
func (e *OutcomeError) Is(target error) bool {
	t, ok := target.(*OutcomeError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}
