// Package angzarr is the client SDK and component runtime for angzarr
// event-sourced systems: routers and descriptors for aggregates, sagas,
// process managers, projectors, and upcasters, plus the gRPC servicers
// and gateway clients that carry them.
package angzarr

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorKind categorizes runtime and client errors.
type ErrorKind int

const (
	// ErrConnection indicates a connection failure.
	ErrConnection ErrorKind = iota
	// ErrTransport indicates a transport-level error. Retryable.
	ErrTransport
	// ErrGRPC indicates a gRPC error from the server.
	ErrGRPC
	// ErrInvalidArgument indicates malformed input or a missing required field.
	ErrInvalidArgument
	// ErrInvalidTimestamp indicates a timestamp parsing failure.
	ErrInvalidTimestamp
	// ErrUnknownType indicates no registered handler or decoder matched a
	// payload's type_url suffix.
	ErrUnknownType
	// ErrSequenceConflict indicates an optimistic concurrency violation.
	// Retryable with refreshed destinations.
	ErrSequenceConflict
	// ErrInternal indicates a programmer error.
	ErrInternal
)

// ClientError represents errors from runtime and client operations.
type ClientError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Code returns the gRPC status code if this is a gRPC error.
func (e *ClientError) Code() codes.Code {
	if e.Kind != ErrGRPC || e.Cause == nil {
		return codes.Unknown
	}
	if s, ok := status.FromError(e.Cause); ok {
		return s.Code()
	}
	return codes.Unknown
}

// Status returns the gRPC Status if this is a gRPC error.
func (e *ClientError) Status() *status.Status {
	if e.Kind != ErrGRPC || e.Cause == nil {
		return nil
	}
	s, _ := status.FromError(e.Cause)
	return s
}

// Retryable reports whether the caller may retry the operation.
// Sequence conflicts and transport failures are retryable; rejections
// and malformed input are not.
func (e *ClientError) Retryable() bool {
	switch e.Kind {
	case ErrSequenceConflict, ErrTransport, ErrConnection:
		return true
	case ErrGRPC:
		switch e.Code() {
		case codes.Aborted, codes.Unavailable, codes.DeadlineExceeded:
			return true
		}
	}
	return false
}

// IsNotFound returns true if this is a "not found" error.
func (e *ClientError) IsNotFound() bool {
	return e.Code() == codes.NotFound
}

// IsPreconditionFailed returns true if this is a "precondition failed" error.
func (e *ClientError) IsPreconditionFailed() bool {
	return e.Code() == codes.FailedPrecondition
}

// IsInvalidArgument returns true if this is an "invalid argument" error.
func (e *ClientError) IsInvalidArgument() bool {
	return e.Kind == ErrInvalidArgument || e.Code() == codes.InvalidArgument
}

// IsSequenceConflict returns true for optimistic concurrency violations.
func (e *ClientError) IsSequenceConflict() bool {
	return e.Kind == ErrSequenceConflict || e.Code() == codes.Aborted
}

// IsConnectionError returns true if this is a connection or transport error.
func (e *ClientError) IsConnectionError() bool {
	return e.Kind == ErrConnection || e.Kind == ErrTransport
}

// Error constructors

// ConnectionError creates a connection error.
func ConnectionError(msg string) *ClientError {
	return &ClientError{Kind: ErrConnection, Message: msg}
}

// TransportError wraps a transport error.
func TransportError(err error) *ClientError {
	return &ClientError{Kind: ErrTransport, Message: "transport error", Cause: err}
}

// GRPCError wraps a gRPC error.
func GRPCError(err error) *ClientError {
	return &ClientError{Kind: ErrGRPC, Message: "grpc error", Cause: err}
}

// InvalidArgumentError creates an invalid argument error.
func InvalidArgumentError(msg string) *ClientError {
	return &ClientError{Kind: ErrInvalidArgument, Message: msg}
}

// InvalidTimestampError creates a timestamp parsing error.
func InvalidTimestampError(msg string) *ClientError {
	return &ClientError{Kind: ErrInvalidTimestamp, Message: msg}
}

// UnknownTypeError creates an error for an unmatched payload type_url.
func UnknownTypeError(typeURL string) *ClientError {
	return &ClientError{Kind: ErrUnknownType, Message: "no handler registered for type " + typeURL}
}

// SequenceConflictError creates a retryable optimistic concurrency error.
func SequenceConflictError(msg string) *ClientError {
	return &ClientError{Kind: ErrSequenceConflict, Message: msg}
}

// InternalError wraps a programmer error.
func InternalError(err error) *ClientError {
	return &ClientError{Kind: ErrInternal, Message: "internal error", Cause: err}
}

// IsClientError checks if an error is a ClientError.
func IsClientError(err error) bool {
	var clientErr *ClientError
	return errors.As(err, &clientErr)
}

// AsClientError extracts a ClientError from an error chain.
func AsClientError(err error) *ClientError {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr
	}
	return nil
}

// CommandRejectedError indicates a business rule refusal. It carries a
// human-readable reason and is safe to surface to clients.
// Maps to gRPC FAILED_PRECONDITION.
type CommandRejectedError struct {
	Message string
}

func (e CommandRejectedError) Error() string {
	return e.Message
}

// NewCommandRejectedError creates a new command rejected error.
func NewCommandRejectedError(msg string) error {
	return CommandRejectedError{Message: msg}
}

// NewCommandRejectedErrorf creates a command rejected error with a formatted message.
func NewCommandRejectedErrorf(format string, args ...any) error {
	return CommandRejectedError{Message: fmt.Sprintf(format, args...)}
}

// MapHandlerError converts a handler error to a gRPC status error.
//
//   - CommandRejectedError -> FAILED_PRECONDITION
//   - ErrInvalidArgument / ErrUnknownType -> INVALID_ARGUMENT
//   - ErrSequenceConflict -> ABORTED
//   - ErrTransport / ErrConnection -> UNAVAILABLE
//   - anything else -> INTERNAL
func MapHandlerError(err error) error {
	var rejected CommandRejectedError
	if errors.As(err, &rejected) {
		return status.Error(codes.FailedPrecondition, rejected.Message)
	}
	if ce := AsClientError(err); ce != nil {
		switch ce.Kind {
		case ErrInvalidArgument, ErrInvalidTimestamp, ErrUnknownType:
			return status.Error(codes.InvalidArgument, ce.Message)
		case ErrSequenceConflict:
			return status.Error(codes.Aborted, ce.Message)
		case ErrTransport, ErrConnection:
			return status.Error(codes.Unavailable, ce.Message)
		case ErrGRPC:
			if ce.Cause != nil {
				return ce.Cause
			}
		}
	}
	return status.Errorf(codes.Internal, "internal error: %v", err)
}
