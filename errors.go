package spritebatch

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidState is matched by errors returned when an operation is
	// called in the wrong lifecycle state.
	ErrInvalidState = errors.New("spritebatch: invalid state")
	// ErrResourceCreationFailed is matched by errors returned when the
	// device fails to create a buffer, texture or program.
	ErrResourceCreationFailed = errors.New("spritebatch: resource creation failed")
)

// StateError reports an operation attempted in the wrong state.
type StateError struct {
	Op     string
	State  State
	Reason string // Optional detail
}

func (e *StateError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("spritebatch: %s called while %s: %s", e.Op, e.State, e.Reason)
	}
	return fmt.Sprintf("spritebatch: %s called while %s", e.Op, e.State)
}

// Is reports whether target is ErrInvalidState.
func (e *StateError) Is(target error) bool { return target == ErrInvalidState }

// ResourceError reports a device resource that could not be created.
// Err is nil when the device returned a null handle without an error.
type ResourceError struct {
	Resource string
	Err      error
}

func (e *ResourceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("spritebatch: create %s: null handle", e.Resource)
	}
	return fmt.Sprintf("spritebatch: create %s: %v", e.Resource, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// Is reports whether target is ErrResourceCreationFailed.
func (e *ResourceError) Is(target error) bool { return target == ErrResourceCreationFailed }

func resourceError(resource string, err error) error {
	return &ResourceError{Resource: resource, Err: err}
}
