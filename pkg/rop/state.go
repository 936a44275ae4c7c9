package rop

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// branch records the last branch test made on an outcome, so that Else can
// tell whether the preceding OnSuccess or OnFailure was skipped.
type branch uint8

const (
	branchNone branch = iota
	branchTestedOk
	branchTestedError
)

// state is shared by Outcome and Result. It is only ever modified on copies.
type state struct {
	id        uuid.UUID
	createdAt time.Time
	code      Code
	message   string
	cause     error
	branch    branch
}

func newState(code Code) state {
	return state{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		code:      code,
	}
}

// newFailureState panics when asked for an Ok outcome carrying a message or a
// cause: that is a programming error, not a runtime failure.
func newFailureState(code Code, message string, cause error) state {
	if code == CodeOk {
		panic("rop: message or cause attached to an Ok outcome")
	}
	s := newState(code)
	s.message = message
	s.cause = cause
	return s
}

// build backs Builder and the With* copies. CodeOk is accepted as long as
// nothing is attached to it.
func build(code Code, message string, cause error) state {
	if code == CodeOk && (message != "" || cause != nil) {
		panic("rop: message or cause attached to an Ok outcome")
	}
	s := newState(code)
	s.message = message
	s.cause = cause
	return s
}

func (s state) Code() Code {
	return s.code
}

// Message returns the optional detail message, empty when none was given.
func (s state) Message() string {
	return s.message
}

// Cause returns the underlying error, if any.
func (s state) Cause() error {
	return s.cause
}

func (s state) IsSuccess() bool {
	return s.code == CodeOk
}

func (s state) IsFailure() bool {
	return s.code != CodeOk
}

func (s state) HasCause() bool {
	return s.cause != nil
}

// Causes splits a joined cause into its parts.
func (s state) Causes() []error {
	return GetErrors(s.cause)
}

// Matches reports whether the outcome has the given code.
func (s state) Matches(code Code) bool {
	return s.code == code
}

func (s state) Id() uuid.UUID {
	return s.id
}

// CreatedAt time creation (UTC)
func (s state) CreatedAt() time.Time {
	return s.createdAt
}

// Details joins the fixed code text, the message and the cause message, one
// per line, skipping the empty ones.
func (s state) Details() string {
	return strings.Join(s.detailLines(), "\n")
}

func (s state) detailLines() []string {
	lines := make([]string, 0, 3)
	if text := s.code.Text(); text != "" {
		lines = append(lines, text)
	}
	if s.message != "" {
		lines = append(lines, s.message)
	}
	if s.cause != nil {
		if msg := s.cause.Error(); msg != "" {
			lines = append(lines, msg)
		}
	}
	return lines
}

// Err returns nil for a success, otherwise an *OutcomeError describing the failure.
func (s state) Err() error {
	if s.IsSuccess() {
		return nil
	}
	return &OutcomeError{Code: s.code, Message: s.message, Cause: s.cause}
}

func (s state) LogValue() slog.Value {
	return slog.GroupValue(s.logAttrs()...)
}

func (s state) logAttrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.String("id", s.id.String()),
		slog.String("code", s.code.String()),
	}
	if s.message != "" {
		attrs = append(attrs, slog.String("message", s.message))
	}
	if s.cause != nil {
		attrs = append(attrs, slog.Any("cause", s.cause))
	}
	return attrs
}

func (s *state) testSuccess() bool {
	s.branch = branchTestedOk
	return s.IsSuccess()
}

func (s *state) testFailure() bool {
	s.branch = branchTestedError
	return s.IsFailure()
}

// elseEligible is true only when the last tested branch did not match.
func (s state) elseEligible() bool {
	switch s.branch {
	case branchTestedOk:
		return s.IsFailure()
	case branchTestedError:
		return s.IsSuccess()
	default:
		return false
	}
}
