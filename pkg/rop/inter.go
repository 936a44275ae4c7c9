package rop

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Diagnostics is the read side shared by Outcome and Result.
type Diagnostics interface {
	// Code returns the status code
	Code() Code
	// Message returns the optional detail message
	Message() string
	// Cause returns the underlying error, if any
	Cause() error
	// IsSuccess returns true if the code is CodeOk
	IsSuccess() bool
	// Details returns the multi-line diagnostic text
	Details() string
	// Id identifies the outcome in logs
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// ValueProvider extends Diagnostics with access to a payload
type ValueProvider[T any] interface {
	Diagnostics
	// Get returns the payload or the zero value
	Get() T
	// IsPresent returns true if a payload is held
	IsPresent() bool
}

var (
	_ Diagnostics        = (*Outcome)(nil)
	_ ValueProvider[int] = Result[int]{}
	_ slog.LogValuer     = (*Outcome)(nil)
	_ slog.LogValuer     = Result[int]{}
	_ error              = (*OutcomeError)(nil)
)
