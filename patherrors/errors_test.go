package patherrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSyntaxError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &SyntaxError{
			Expr:    `root / "cache" /`,
			Offset:  16,
			Line:    1,
			Column:  17,
			Message: "expected operand after separator",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "syntax error at line 1, column 17: expected operand after separator: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &SyntaxError{}
		if err.Error() != "syntax error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message for empty expression", func(t *testing.T) {
		err := &SyntaxError{IsEmpty: true, Message: "expression has no operands"}
		if err.Error() != "empty expression: expression has no operands" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with offset only", func(t *testing.T) {
		err := &SyntaxError{Offset: 7, Message: "unexpected token"}
		if err.Error() != "syntax error at offset 7: unexpected token" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &SyntaxError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrSyntax", func(t *testing.T) {
		err := &SyntaxError{Message: "test"}
		if !errors.Is(err, ErrSyntax) {
			t.Error("SyntaxError should match ErrSyntax")
		}
	})

	t.Run("Is matches ErrEmptyExpression only when flagged", func(t *testing.T) {
		err := &SyntaxError{IsEmpty: true}
		if !errors.Is(err, ErrEmptyExpression) {
			t.Error("SyntaxError with IsEmpty should match ErrEmptyExpression")
		}
		err = &SyntaxError{}
		if errors.Is(err, ErrEmptyExpression) {
			t.Error("SyntaxError without IsEmpty should not match ErrEmptyExpression")
		}
	})

	t.Run("Is matches ErrDanglingSeparator only when flagged", func(t *testing.T) {
		err := &SyntaxError{IsDanglingSeparator: true}
		if !errors.Is(err, ErrDanglingSeparator) {
			t.Error("SyntaxError with IsDanglingSeparator should match ErrDanglingSeparator")
		}
		if err.Error() != "dangling separator" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &SyntaxError{}
		if errors.Is(err, ErrBinding) {
			t.Error("SyntaxError should not match ErrBinding")
		}
		if errors.Is(err, ErrLimit) {
			t.Error("SyntaxError should not match ErrLimit")
		}
	})

	t.Run("As extracts SyntaxError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &SyntaxError{Expr: "a /", Offset: 2})
		var synErr *SyntaxError
		if !errors.As(err, &synErr) {
			t.Fatal("errors.As should succeed")
		}
		if synErr.Expr != "a /" {
			t.Errorf("unexpected expr: %s", synErr.Expr)
		}
		if synErr.Offset != 2 {
			t.Errorf("unexpected offset: %d", synErr.Offset)
		}
	})
}

func TestBindingError(t *testing.T) {
	t.Run("Error message for missing binding", func(t *testing.T) {
		err := &BindingError{Name: "root", IsMissing: true}
		if err.Error() != "missing binding: root" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message for wrong type includes type", func(t *testing.T) {
		err := &BindingError{Name: "root", IsWrongType: true, Value: 42}
		if err.Error() != "value is not path-like: root (int)" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &BindingError{}
		if err.Error() != "binding error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrBinding", func(t *testing.T) {
		err := &BindingError{Name: "x"}
		if !errors.Is(err, ErrBinding) {
			t.Error("BindingError should match ErrBinding")
		}
	})

	t.Run("Is matches ErrMissingBinding only when flagged", func(t *testing.T) {
		err := &BindingError{Name: "x", IsMissing: true}
		if !errors.Is(err, ErrMissingBinding) {
			t.Error("BindingError with IsMissing should match ErrMissingBinding")
		}
		if errors.Is(err, ErrNotPathLike) {
			t.Error("BindingError without IsWrongType should not match ErrNotPathLike")
		}
	})

	t.Run("Is matches ErrNotPathLike only when flagged", func(t *testing.T) {
		err := &BindingError{IsWrongType: true, Value: []byte("a")}
		if !errors.Is(err, ErrNotPathLike) {
			t.Error("BindingError with IsWrongType should match ErrNotPathLike")
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &BindingError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("As extracts BindingError", func(t *testing.T) {
		err := fmt.Errorf("eval: %w", &BindingError{Name: "cfg.root", Offset: 3, IsMissing: true})
		var bindErr *BindingError
		if !errors.As(err, &bindErr) {
			t.Fatal("errors.As should succeed")
		}
		if bindErr.Name != "cfg.root" {
			t.Errorf("unexpected name: %s", bindErr.Name)
		}
	})
}

func TestLimitError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &LimitError{
			ResourceType: "operands",
			Limit:        16,
			Actual:       20,
			Message:      "reduce the expression",
		}
		if err.Error() != "resource limit exceeded: operands (limit: 16, actual: 20): reduce the expression" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &LimitError{}
		if err.Error() != "resource limit exceeded" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrLimit", func(t *testing.T) {
		err := &LimitError{ResourceType: "nesting_depth"}
		if !errors.Is(err, ErrLimit) {
			t.Error("LimitError should match ErrLimit")
		}
		if errors.Is(err, ErrSyntax) {
			t.Error("LimitError should not match ErrSyntax")
		}
	})

	t.Run("Unwrap returns nil", func(t *testing.T) {
		err := &LimitError{}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil")
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ConfigError{
			Option:  "WithMaxOperands",
			Value:   -1,
			Message: "must be positive",
			Cause:   cause,
		}
		if err.Error() != "configuration error for WithMaxOperands (value: -1): must be positive: underlying" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ConfigError{}
		if err.Error() != "configuration error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := &ConfigError{Option: "WithMaxDepth"}
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ConfigError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})
}
