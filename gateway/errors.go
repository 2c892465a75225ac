package gateway

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ValidationError reports a bad field value detected before any call
// leaves the process. It never wraps a network failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// GatewayError reports a failed remote operation.
type GatewayError struct {
	Op    string
	Table string
	Err   error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway %s %s: %v", e.Op, e.Table, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// NotFoundError means the update/delete target no longer exists on the
// server. It is always wrapped inside a GatewayError.
type NotFoundError struct {
	Table string
	ID    uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Table, e.ID)
}

// IsNotFound reports whether err carries a NotFoundError anywhere in its chain.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err carries a ValidationError anywhere in its chain.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
