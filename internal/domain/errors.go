package domain

import (
	"errors"
	"fmt"
)

// ErrOrderNotFound is returned by direct order lookups for unknown ids.
var ErrOrderNotFound = errors.New("order not found")

// ValidationError reports a client-correctable problem with a request.
// Handlers map it to a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// TransitionError reports an illegal order-status change, identifying the
// current and attempted state.
type TransitionError struct {
	From   OrderStatus
	To     OrderStatus
	Reason string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q: %s", e.From, e.To, e.Reason)
}
