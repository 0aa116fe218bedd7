// Package patherrors provides structured error types for pathtools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - SyntaxError: malformed join expressions (dangling separators, unbalanced
//     parentheses, unterminated string literals, empty input)
//   - BindingError: identifier operands with no bound value, or bound values
//     that are not path-like
//   - LimitError: resource exhaustion (operand count, nesting depth, size)
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.Is
//
//	chain, err := pathexpr.Parse(`root / "cache" /`)
//	if err != nil {
//	    var synErr *patherrors.SyntaxError
//	    if errors.As(err, &synErr) {
//	        fmt.Printf("bad expression at offset %d: %s\n", synErr.Offset, synErr.Message)
//	    }
//	}
package patherrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrSyntax indicates a malformed join expression.
	ErrSyntax = errors.New("syntax error")

	// ErrEmptyExpression indicates an empty or whitespace-only expression.
	ErrEmptyExpression = errors.New("empty expression")

	// ErrDanglingSeparator indicates a separator with no following operand.
	ErrDanglingSeparator = errors.New("dangling separator")

	// ErrBinding indicates an operand could not be resolved to a path-like value.
	ErrBinding = errors.New("binding error")

	// ErrMissingBinding indicates an identifier operand with no bound value.
	ErrMissingBinding = errors.New("missing binding")

	// ErrNotPathLike indicates a value that cannot be interpreted as a path.
	ErrNotPathLike = errors.New("value is not path-like")

	// ErrLimit indicates a resource limit was exceeded.
	ErrLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// SyntaxError represents a failure to parse a join expression.
// The expression did not match the chain grammar: operand ('/' operand)*.
type SyntaxError struct {
	// Expr is the expression text that failed to parse
	Expr string
	// Offset is the byte offset into Expr where the error occurred
	Offset int
	// Line is the line number where the error occurred (1-based, 0 if unknown)
	Line int
	// Column is the column number where the error occurred (1-based, 0 if unknown)
	Column int
	// IsEmpty is true if the expression contained no operands at all
	IsEmpty bool
	// IsDanglingSeparator is true if a separator had no following operand
	IsDanglingSeparator bool
	// Message describes the parse failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SyntaxError) Error() string {
	msg := "syntax error"
	if e.IsEmpty {
		msg = "empty expression"
	} else if e.IsDanglingSeparator {
		msg = "dangling separator"
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	} else if e.Offset > 0 {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SyntaxError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrSyntax, and also ErrEmptyExpression or ErrDanglingSeparator
// when the appropriate flags are set.
func (e *SyntaxError) Is(target error) bool {
	if target == ErrSyntax {
		return true
	}
	if target == ErrEmptyExpression && e.IsEmpty {
		return true
	}
	if target == ErrDanglingSeparator && e.IsDanglingSeparator {
		return true
	}
	return false
}

// BindingError represents a failure to resolve an operand to a path-like
// value. This includes identifiers with no bound value and bound values of
// unsupported types.
type BindingError struct {
	// Name is the identifier that failed to resolve ("" for anonymous values)
	Name string
	// Offset is the byte offset of the operand in the source expression
	// (0 if unknown)
	Offset int
	// IsMissing is true if no value was bound to the identifier
	IsMissing bool
	// IsWrongType is true if a value was bound but is not path-like
	IsWrongType bool
	// Value is the problematic value (may be nil)
	Value any
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *BindingError) Error() string {
	msg := "binding error"
	if e.IsMissing {
		msg = "missing binding"
	} else if e.IsWrongType {
		msg = "value is not path-like"
	}
	if e.Name != "" {
		msg += ": " + e.Name
	}
	if e.IsWrongType && e.Value != nil {
		msg += fmt.Sprintf(" (%T)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *BindingError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrBinding, and also ErrMissingBinding or ErrNotPathLike when the
// appropriate flags are set.
func (e *BindingError) Is(target error) bool {
	if target == ErrBinding {
		return true
	}
	if target == ErrMissingBinding && e.IsMissing {
		return true
	}
	if target == ErrNotPathLike && e.IsWrongType {
		return true
	}
	return false
}

// LimitError represents a resource exhaustion condition.
// This occurs when parsing or evaluation exceeds configured limits.
type LimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "operands", "nesting_depth", "expression_size"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *LimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as LimitError has no underlying cause.
func (e *LimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *LimitError) Is(target error) bool {
	return target == ErrLimit
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting
// settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
