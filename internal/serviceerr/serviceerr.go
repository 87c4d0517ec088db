// Package serviceerr defines the service-wide error taxonomy. Client-facing
// errors are constructed where they are detected and pass through the
// service layer unchanged; anything unclassified is wrapped into an
// internal error at the outermost boundary with the cause retained for
// logging only.
package serviceerr

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
)

type Code string

const (
	CodeInvalidRequest        Code = "INVALID_REQUEST"
	CodeResourceNotFound      Code = "RESOURCE_NOT_FOUND"
	CodeResourceAlreadyExists Code = "RESOURCE_ALREADY_EXISTS"
	CodePermissionDenied      Code = "PERMISSION_DENIED"
	CodeAuthenticationFailed  Code = "AUTHENTICATION_FAILED"
	CodeRateLimitExceeded     Code = "RATE_LIMIT_EXCEEDED"
	CodePreconditionFailed    Code = "PRECONDITION_FAILED"
	CodeInternalError         Code = "INTERNAL_ERROR"
	CodeServiceUnavailable    Code = "SERVICE_UNAVAILABLE"
	CodeDatabaseError         Code = "DATABASE_ERROR"
	CodeExternalServiceError  Code = "EXTERNAL_SERVICE_ERROR"
	CodeTimeout               Code = "TIMEOUT"
	CodeValidationError       Code = "VALIDATION_ERROR"
	CodeConstraintViolation   Code = "CONSTRAINT_VIOLATION"
	CodeBusinessRuleViolation Code = "BUSINESS_RULE_VIOLATION"
	CodeOperationNotAllowed   Code = "OPERATION_NOT_ALLOWED"
	CodeNotImplemented        Code = "NOT_IMPLEMENTED"
)

var defaultMessages = map[Code]string{
	CodeInvalidRequest:        "The request contains invalid parameters",
	CodeResourceNotFound:      "The requested resource was not found",
	CodeResourceAlreadyExists: "The resource already exists",
	CodePermissionDenied:      "Permission denied to access this resource",
	CodeAuthenticationFailed:  "Authentication credentials are invalid",
	CodeRateLimitExceeded:     "Rate limit exceeded for this operation",
	CodePreconditionFailed:    "Precondition for this operation was not met",
	CodeInternalError:         "An internal server error occurred",
	CodeServiceUnavailable:    "The service is temporarily unavailable",
	CodeDatabaseError:         "A database operation failed",
	CodeExternalServiceError:  "An external service call failed",
	CodeTimeout:               "The operation timed out",
	CodeValidationError:       "Request validation failed",
	CodeConstraintViolation:   "A constraint was violated",
	CodeBusinessRuleViolation: "A business rule was violated",
	CodeOperationNotAllowed:   "This operation is not allowed in the current state",
	CodeNotImplemented:        "This feature is not yet implemented",
}

// DefaultMessage returns the canonical message for a code.
func DefaultMessage(code Code) string {
	if msg, ok := defaultMessages[code]; ok {
		return msg
	}
	return defaultMessages[CodeInternalError]
}

type ServiceError struct {
	Code          Code
	Message       string
	Cause         error
	CorrelationID string
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// WithCorrelationID returns a copy carrying the request correlation id.
func (e *ServiceError) WithCorrelationID(id string) *ServiceError {
	c := *e
	c.CorrelationID = id
	return &c
}

func New(code Code, message string) *ServiceError {
	if message == "" {
		message = DefaultMessage(code)
	}
	return &ServiceError{Code: code, Message: message}
}

func NotFound(resource, id string) *ServiceError {
	return New(CodeResourceNotFound, fmt.Sprintf("Resource '%s' with id '%s' not found", resource, id))
}

func InvalidRequest(message string) *ServiceError {
	return New(CodeInvalidRequest, message)
}

func ValidationError(message string) *ServiceError {
	return New(CodeValidationError, message)
}

func ConstraintViolation(message string) *ServiceError {
	return New(CodeConstraintViolation, message)
}

func PreconditionFailed(message string) *ServiceError {
	return New(CodePreconditionFailed, message)
}

func AuthenticationFailed(message string) *ServiceError {
	return New(CodeAuthenticationFailed, message)
}

func Internal(message string, cause error) *ServiceError {
	e := New(CodeInternalError, message)
	e.Cause = cause
	return e
}

// From extracts a *ServiceError, or wraps err as an internal error.
func From(err error) *ServiceError {
	var se *ServiceError
	if errors.As(err, &se) {
		return se
	}
	return Internal(DefaultMessage(CodeInternalError), err)
}

// HTTPStatus maps an error code to its HTTP status. Unknown codes map to
// 500 so nothing unclassified leaks a success status.
func HTTPStatus(code Code) int {
	switch code {
	case CodeResourceNotFound:
		return http.StatusNotFound
	case CodeResourceAlreadyExists:
		return http.StatusConflict
	case CodePreconditionFailed:
		return http.StatusConflict
	case CodeInvalidRequest, CodeValidationError, CodeConstraintViolation, CodeBusinessRuleViolation, CodeOperationNotAllowed:
		return http.StatusBadRequest
	case CodePermissionDenied:
		return http.StatusForbidden
	case CodeAuthenticationFailed:
		return http.StatusUnauthorized
	case CodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case CodeServiceUnavailable, CodeTimeout:
		return http.StatusServiceUnavailable
	case CodeNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// GRPCCode maps an error code to its canonical gRPC code.
func GRPCCode(code Code) codes.Code {
	switch code {
	case CodeResourceNotFound:
		return codes.NotFound
	case CodeResourceAlreadyExists:
		return codes.AlreadyExists
	case CodePreconditionFailed:
		return codes.FailedPrecondition
	case CodeInvalidRequest, CodeValidationError, CodeConstraintViolation, CodeBusinessRuleViolation, CodeOperationNotAllowed:
		return codes.InvalidArgument
	case CodePermissionDenied:
		return codes.PermissionDenied
	case CodeAuthenticationFailed:
		return codes.Unauthenticated
	case CodeRateLimitExceeded:
		return codes.ResourceExhausted
	case CodeServiceUnavailable:
		return codes.Unavailable
	case CodeTimeout:
		return codes.DeadlineExceeded
	case CodeNotImplemented:
		return codes.Unimplemented
	default:
		return codes.Internal
	}
}
