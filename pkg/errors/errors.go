// Package errors provides structured error handling for the CardKit SDK.
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
	// KindPlatform indicates a platform channel or native bridge error.
	KindPlatform
	// KindParsing indicates a payload parsing failure.
	KindParsing
	// KindTemplate indicates a content-card template conversion error.
	KindTemplate
	// KindRender indicates a component tree rendering error.
	KindRender
	// KindNavigation indicates a URL-open failure.
	KindNavigation
	// KindMedia indicates an image fetch or decode failure.
	KindMedia
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindParsing:
		return "parsing"
	case KindTemplate:
		return "template"
	case KindRender:
		return "render"
	case KindNavigation:
		return "navigation"
	case KindMedia:
		return "media"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// CardKitError represents a structured error in the CardKit SDK.
type CardKitError struct {
	// Op is the operation that failed (e.g., "render.openURL").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Channel is the platform channel name, if applicable.
	Channel string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *CardKitError) Error() string {
	if e.Channel != "" {
		return fmt.Sprintf("%s [%s] channel=%s: %v", e.Op, e.Kind, e.Channel, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *CardKitError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "render.Render").
	Op string
	// Value is the value passed to panic().
	Value any
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a failure to decode content or proposition data.
type ParseError struct {
	// Channel is the platform channel that delivered the payload.
	Channel string
	// DataType is the expected type name.
	DataType string
	// Got is the actual data received.
	Got any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s from channel %s: got %T", e.DataType, e.Channel, e.Got)
}

// ErrorHandler receives errors reported by the CardKit SDK.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *CardKitError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
