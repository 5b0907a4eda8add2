// Package errors provides structured error handling for the pix8 framework.
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
	// KindInit indicates a console or application initialization error.
	KindInit
	// KindAssets indicates an asset load, decode, or save failure.
	KindAssets
	// KindConfig indicates a project configuration error.
	KindConfig
	// KindBackend indicates a presentation backend setup or teardown error.
	KindBackend
	// KindPresent indicates a frame presentation failure. Always fatal.
	KindPresent
	// KindCapture indicates a screenshot or recording failure.
	KindCapture
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindAssets:
		return "assets"
	case KindConfig:
		return "config"
	case KindBackend:
		return "backend"
	case KindPresent:
		return "present"
	case KindCapture:
		return "capture"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ConsoleError represents a structured error in the pix8 framework.
type ConsoleError struct {
	// Op is the operation that failed (e.g., "engine.Present").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Backend is the presentation backend name, if applicable.
	Backend string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ConsoleError) Error() string {
	if e.Backend != "" {
		return fmt.Sprintf("%s [%s] backend=%s: %v", e.Op, e.Kind, e.Backend, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ConsoleError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.step").
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

// DecodeError represents a failure to decode an asset file.
type DecodeError struct {
	// File is the asset file name (e.g., "map.txt").
	File string
	// Expected describes what the decoder wanted (e.g., "8192 hex byte pairs").
	Expected string
	// Got describes what it found.
	Got string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: expected %s, got %s", e.File, e.Expected, e.Got)
}

// ErrorHandler receives errors reported by the pix8 framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ConsoleError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
