// Package patherrors provides structured error types for the pathtools library.
//
// Import path: github.com/erraggy/pathtools/patherrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides four core error types:
//
//   - [SyntaxError]: malformed join expressions (dangling separators,
//     unbalanced parentheses, unterminated string literals, empty input)
//   - [BindingError]: identifier operands with no bound value, or bound
//     values that are not path-like
//   - [LimitError]: resource exhaustion (operand count, nesting depth, size)
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrSyntax]: matches any [SyntaxError]
//   - [ErrEmptyExpression]: matches [SyntaxError] with IsEmpty=true
//   - [ErrDanglingSeparator]: matches [SyntaxError] with IsDanglingSeparator=true
//   - [ErrBinding]: matches any [BindingError]
//   - [ErrMissingBinding]: matches [BindingError] with IsMissing=true
//   - [ErrNotPathLike]: matches [BindingError] with IsWrongType=true
//   - [ErrLimit]: matches any [LimitError]
//   - [ErrConfig]: matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	chain, err := pathexpr.Parse(expr)
//	if errors.Is(err, patherrors.ErrSyntax) {
//	    // Expression is malformed; fix the call site
//	}
//
// Extract error details with errors.As():
//
//	var bindErr *patherrors.BindingError
//	if errors.As(err, &bindErr) {
//	    fmt.Printf("failed to resolve operand: %s\n", bindErr.Name)
//	    if bindErr.IsMissing {
//	        // Add the missing binding
//	    }
//	}
//
// # Error Chaining
//
// All error types support error chaining via the Cause field and Unwrap()
// method. This allows finding root causes through the standard error chain.
package patherrors
