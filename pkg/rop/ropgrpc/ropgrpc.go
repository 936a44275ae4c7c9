package ropgrpc

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ib-77/opres/pkg/rop"
)

var toGRPC = map[rop.Code]codes.Code{
	rop.CodeOk:                   codes.OK,
	rop.CodeError:                codes.Unknown,
	rop.CodeCustomError:          codes.Unknown,
	rop.CodeInvalidOperation:     codes.FailedPrecondition,
	rop.CodeMissingValue:         codes.NotFound,
	rop.CodeInternalServiceError: codes.Internal,
}

var fromGRPC = map[codes.Code]rop.Code{
	codes.OK:                 rop.CodeOk,
	codes.Unknown:            rop.CodeError,
	codes.FailedPrecondition: rop.CodeInvalidOperation,
	codes.NotFound:           rop.CodeMissingValue,
	codes.Internal:           rop.CodeInternalServiceError,
}

// ToGRPCCode maps an outcome code to a gRPC code. Unknown codes map to
// codes.Unknown.
func ToGRPCCode(code rop.Code) codes.Code {
	if c, ok := toGRPC[code]; ok {
		return c
	}
	return codes.Unknown
}

// FromGRPCCode maps a gRPC code to an outcome code. Codes without a direct
// counterpart become rop.CodeError.
func FromGRPCCode(code codes.Code) rop.Code {
	if c, ok := fromGRPC[code]; ok {
		return c
	}
	return rop.CodeError
}

// Status returns the gRPC status for o. The status message is the outcome
// message; the fixed code text is implied by the code and the cause stays on
// the sending side.
func Status(o rop.Diagnostics) *status.Status {
	if o.IsSuccess() {
		return status.New(codes.OK, "")
	}
	return status.New(ToGRPCCode(o.Code()), o.Message())
}

// Err returns nil for a success, otherwise a gRPC status error for o.
func Err(o rop.Diagnostics) error {
	return Status(o).Err()
}

// FromStatus turns a gRPC status back into an outcome. A nil status is a
// success.
func FromStatus(st *status.Status) *rop.Outcome {
	if st == nil || st.Code() == codes.OK {
		return rop.Ok()
	}
	return rop.FailCode(FromGRPCCode(st.Code()), st.Message())
}

// FromError converts an error returned by a gRPC call into an outcome, the
// same way FromStatus does. Errors that carry no gRPC status are handled by
// rop.FromError.
func FromError(err error) *rop.Outcome {
	if err == nil {
		return rop.Ok()
	}
	st, ok := status.FromError(err)
	if !ok {
		return rop.FromError(err)
	}
	return FromStatus(st)
}
