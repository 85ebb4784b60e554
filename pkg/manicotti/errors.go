package manicotti

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user dismissed the menu without making
	// a selection. This is normal flow control, not a failure.
	ErrCancelled = errors.New("menu cancelled by user")

	// ErrInterrupted indicates the session's interrupt flag (e.g. a
	// hang-up signal) was raised while the menu was up. Any pending
	// selection is discarded.
	ErrInterrupted = errors.New("menu interrupted")

	// ErrNotReady indicates an operation needed the laid-out viewport
	// but size negotiation has not completed yet. Scroll requests that
	// hit this are remembered and replayed on the first allocation.
	ErrNotReady = errors.New("menu layout not ready")
)

// InfrastructureError represents a framework-level failure (backend
// init failed, font missing, render target lost) that the consuming
// application cannot reasonably recover from at the domain level.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "create_window", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("manicotti: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("manicotti: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
