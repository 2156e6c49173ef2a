// Package errors provides the error taxonomy for widget decoration and the
// reporting hooks used by hosts that embed the widgets.
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
	// KindStructure indicates source markup that does not fit a widget's shape.
	KindStructure
	// KindConfig indicates an invalid configuration value.
	KindConfig
	// KindParsing indicates a markup parsing failure.
	KindParsing
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindStructure:
		return "structure"
	case KindConfig:
		return "config"
	case KindParsing:
		return "parsing"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// AriaError is a structured error reported by the block layer or a host.
type AriaError struct {
	// Op is the operation that failed (e.g., "blocks.Decorate").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Widget is the widget variant involved, if any.
	Widget string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *AriaError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *AriaError) Unwrap() error {
	return e.Err
}

// StructureError reports source markup that violates a widget's minimum shape,
// such as an empty block or mismatched tab and panel counts. Decoration stops
// and the widget is left undecorated.
type StructureError struct {
	// Widget is the variant being decorated ("accordion", "tabs", ...).
	Widget string
	// Reason describes the violated shape.
	Reason string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%s: %s", e.Widget, e.Reason)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "preview.HandleKey").
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

// ErrorHandler receives reported errors.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *AriaError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
