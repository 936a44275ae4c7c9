// Package ropgrpc converts rop outcomes to and from gRPC status values, so a
// service handler can return an outcome as a status error and a client can
// turn a status error back into an outcome.
package ropgrpc
