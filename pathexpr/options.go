package pathexpr

import (
	"fmt"

	"github.com/erraggy/pathtools/patherrors"
)

// Default resource limits applied by [Parse]. They are deliberately
// generous; real join expressions are a handful of operands. The limits
// exist so expressions assembled from untrusted input cannot consume
// unbounded memory.
const (
	// DefaultMaxOperands is the default limit on total operands,
	// including operands inside parenthesized groups.
	DefaultMaxOperands = 256

	// DefaultMaxDepth is the default limit on parenthesis nesting.
	DefaultMaxDepth = 32

	// DefaultMaxExpressionSize is the default limit on expression
	// length in bytes.
	DefaultMaxExpressionSize = 64 * 1024
)

// Option is a function that configures a parse operation.
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation.
type parseConfig struct {
	maxOperands int
	maxDepth    int
	maxExprSize int
	logger      Logger
}

func defaultParseConfig() *parseConfig {
	return &parseConfig{
		maxOperands: DefaultMaxOperands,
		maxDepth:    DefaultMaxDepth,
		maxExprSize: DefaultMaxExpressionSize,
		logger:      NopLogger{},
	}
}

func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := defaultParseConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("pathexpr: invalid options: %w", err)
		}
	}
	return cfg, nil
}

// WithMaxOperands limits the total number of operands in an expression,
// counting operands inside parenthesized groups. Parsing an expression
// over the limit fails with a *patherrors.LimitError.
func WithMaxOperands(n int) Option {
	return func(cfg *parseConfig) error {
		if n < 1 {
			return &patherrors.ConfigError{
				Option:  "WithMaxOperands",
				Value:   n,
				Message: "must be at least 1",
			}
		}
		cfg.maxOperands = n
		return nil
	}
}

// WithMaxDepth limits parenthesis nesting depth. Parsing an expression
// over the limit fails with a *patherrors.LimitError.
func WithMaxDepth(n int) Option {
	return func(cfg *parseConfig) error {
		if n < 1 {
			return &patherrors.ConfigError{
				Option:  "WithMaxDepth",
				Value:   n,
				Message: "must be at least 1",
			}
		}
		cfg.maxDepth = n
		return nil
	}
}

// WithMaxExpressionSize limits expression length in bytes. Parsing a
// longer expression fails with a *patherrors.LimitError.
func WithMaxExpressionSize(n int) Option {
	return func(cfg *parseConfig) error {
		if n < 1 {
			return &patherrors.ConfigError{
				Option:  "WithMaxExpressionSize",
				Value:   n,
				Message: "must be at least 1",
			}
		}
		cfg.maxExprSize = n
		return nil
	}
}

// WithLogger sets the logger used during parsing. The logger is carried
// into the chain, so expansion and evaluation of the parsed expression
// log through it as well. The default is [NopLogger].
func WithLogger(logger Logger) Option {
	return func(cfg *parseConfig) error {
		if logger == nil {
			return &patherrors.ConfigError{
				Option:  "WithLogger",
				Message: "logger must not be nil",
			}
		}
		cfg.logger = logger
		return nil
	}
}
