// Package errors provides structured error handling for the Vista framework.
//
// The reconciliation core has no recoverable-error channel: invariant
// violations (a kind whose payload type disagrees, a kind with no registered
// handlers, a re-entered update pass) are programming errors and fail fast
// with a panic carrying one of the typed errors below. The handler exists so
// the surrounding application can observe failures at its own boundary.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindMismatch indicates a node whose kind tag disagrees with its payload type.
	KindMismatch
	// KindMissingHandler indicates a view kind with no registered create/update functions.
	KindMissingHandler
	// KindReentrant indicates Render was called while an update pass was running.
	KindReentrant
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindMismatch:
		return "mismatch"
	case KindMissingHandler:
		return "missing_handler"
	case KindReentrant:
		return "reentrant"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// VistaError represents a structured error in the Vista framework.
type VistaError struct {
	// Op is the operation that failed (e.g., "reconcile.Host.Render").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the tree position involved, if applicable ("0.2.1").
	Path string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *VistaError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *VistaError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked.
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Mismatch builds the fatal error raised when a node's declared kind tag
// disagrees with its payload type.
func Mismatch(op, path string, format string, args ...any) *VistaError {
	return &VistaError{
		Op:         op,
		Kind:       KindMismatch,
		Path:       path,
		Err:        fmt.Errorf(format, args...),
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
}

// MissingHandler builds the fatal error raised when a view kind has no
// registered create/update functions.
func MissingHandler(op, kind string) *VistaError {
	return &VistaError{
		Op:         op,
		Kind:       KindMissingHandler,
		Err:        fmt.Errorf("no handlers registered for kind %q", kind),
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
}

// Reentrant builds the fatal error raised when an update pass is entered
// while another is still running.
func Reentrant(op string) *VistaError {
	return &VistaError{
		Op:         op,
		Kind:       KindReentrant,
		Err:        fmt.Errorf("update pass re-entered; passes must run to completion"),
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
}
