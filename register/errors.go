package register

import (
	"errors"
	"fmt"

	"github.com/dshills/regstorm/clipboard"
)

// Errors returned by register operations.
var (
	// ErrUnsupportedOperation indicates a write or push was attempted on a
	// computed-only register.
	ErrUnsupportedOperation = errors.New("unsupported register operation")

	// ErrClipboard indicates the underlying platform clipboard call failed.
	ErrClipboard = errors.New("clipboard operation failed")
)

// ClipboardError reports a failed external clipboard call during a register
// write or push. The cache and the external clipboard are left unchanged
// when it is returned.
type ClipboardError struct {
	// Op is the register operation that failed ("write" or "push").
	Op string
	// Kind is the clipboard kind involved.
	Kind clipboard.Kind
	// Err is the underlying provider error.
	Err error
}

// Error implements the error interface.
func (e *ClipboardError) Error() string {
	return fmt.Sprintf("register %s to %s: %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying provider error.
func (e *ClipboardError) Unwrap() error {
	return e.Err
}

// Is implements error matching for ClipboardError.
func (e *ClipboardError) Is(target error) bool {
	return target == ErrClipboard
}
