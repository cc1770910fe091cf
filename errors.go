package panes

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Session operations. Compare with errors.Is;
// most are returned wrapped with the handle or host operation involved.
var (
	// ErrNotInitialized is returned by every operation called before Init.
	ErrNotInitialized = errors.New("panes: session not initialized, call Init first")

	// ErrAlreadyInitialized is returned when Init is called twice.
	ErrAlreadyInitialized = errors.New("panes: session already initialized")

	// ErrLocked is returned when the session is entered while it is already
	// held, typically from a host callback running inside an update.
	ErrLocked = errors.New("panes: session is locked by an operation in progress")

	// ErrNotAllocated is returned for a handle that was never issued.
	ErrNotAllocated = errors.New("panes: invalid handle, region was never allocated")

	// ErrUseAfterDelete is returned for a handle whose region was deleted.
	ErrUseAfterDelete = errors.New("panes: region has already been deleted")

	// ErrUndefinedSize is returned by GlobalResize when Init set no
	// reference size.
	ErrUndefinedSize = errors.New("panes: no reference size defined")

	// ErrMissingRoot is returned by Init when no root node is given.
	ErrMissingRoot = errors.New("panes: missing root node")

	// ErrMissingChild is returned when a node expected in the host tree is gone.
	ErrMissingChild = errors.New("panes: node is missing from the host tree")

	// ErrNoComponentHost is returned by component operations when the host
	// does not implement ComponentHost.
	ErrNoComponentHost = errors.New("panes: host cannot load components")

	// ErrUnknownComponent is returned for component names or handles the
	// session and host do not know.
	ErrUnknownComponent = errors.New("panes: unknown component")
)

// HandleError reports an invalid handle. Err is ErrNotAllocated or
// ErrUseAfterDelete.
type HandleError struct {
	Handle Handle
	Err    error
}

// Error implements the error interface.
func (e *HandleError) Error() string {
	return fmt.Sprintf("%v: %v", e.Handle, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *HandleError) Unwrap() error {
	return e.Err
}

// HostError wraps a failure returned by the Host. The cause is preserved.
type HostError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *HostError) Error() string {
	return "panes: host " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the host's error.
func (e *HostError) Unwrap() error {
	return e.Err
}

func hostErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &HostError{Op: op, Err: err}
}
