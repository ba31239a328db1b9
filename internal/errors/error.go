package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig   Category = "config"
	CategoryRegistry Category = "registry"
	CategoryExport   Category = "export"
	CategoryServe    Category = "serve"
	CategoryPublish  Category = "publish"
	CategoryCLI      Category = "cli"
)

// LallyError is a structured error with a code, detail, and fix suggestion.
type LallyError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type (config, registry, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example is a command or snippet showing the correct approach.
	Example string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *LallyError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *LallyError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *LallyError) WithDetail(d string) *LallyError {
	e.Detail = d
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *LallyError) WithSuggestion(s string) *LallyError {
	e.Suggestion = s
	return e
}

// WithExample adds a command example to the error.
func (e *LallyError) WithExample(ex string) *LallyError {
	e.Example = ex
	return e
}

// Wrap wraps another error.
func (e *LallyError) Wrap(err error) *LallyError {
	e.Wrapped = err
	return e
}

// New creates a LallyError from a registered error code.
func New(code string) *LallyError {
	template, ok := registry[code]
	if !ok {
		return &LallyError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &LallyError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new LallyError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *LallyError {
	return &LallyError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a LallyError.
func FromError(err error, code string) *LallyError {
	if err == nil {
		return nil
	}
	if le, ok := err.(*LallyError); ok {
		return le
	}
	return New(code).Wrap(err)
}
