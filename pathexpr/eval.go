package pathexpr

import (
	"errors"
	"fmt"

	"github.com/erraggy/pathtools/patherrors"
	"github.com/erraggy/pathtools/pathbuf"
)

// EvalOption is a function that configures an evaluation.
type EvalOption func(*evalConfig) error

// evalConfig holds configuration for evaluating an expansion.
type evalConfig struct {
	bindings map[string]any
	platform pathbuf.Platform
}

func applyEvalOptions(opts ...EvalOption) (*evalConfig, error) {
	cfg := &evalConfig{platform: pathbuf.Native()}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("pathexpr: invalid options: %w", err)
		}
	}
	return cfg, nil
}

// WithBindings supplies values for identifier operands. Values must be
// path-like: string, *pathbuf.Buf, or pathbuf.Pather. Later WithBindings
// calls merge over earlier ones.
func WithBindings(bindings map[string]any) EvalOption {
	return func(cfg *evalConfig) error {
		if cfg.bindings == nil {
			cfg.bindings = make(map[string]any, len(bindings))
		}
		for name, v := range bindings {
			cfg.bindings[name] = v
		}
		return nil
	}
}

// WithBinding supplies a single identifier binding.
func WithBinding(name string, value any) EvalOption {
	return func(cfg *evalConfig) error {
		if name == "" {
			return &patherrors.ConfigError{
				Option:  "WithBinding",
				Message: "binding name must not be empty",
			}
		}
		if cfg.bindings == nil {
			cfg.bindings = make(map[string]any, 1)
		}
		cfg.bindings[name] = value
		return nil
	}
}

// WithPlatform selects the path conventions used for buffer conversion
// and appending. The default is pathbuf.Native().
func WithPlatform(p pathbuf.Platform) EvalOption {
	return func(cfg *evalConfig) error {
		cfg.platform = p
		return nil
	}
}

// Eval runs the expansion: the base is converted into an owned buffer
// and each append operand is pushed onto it in order. The buffer's push
// primitive alone decides separator choice and absolute-segment
// override; Eval only sequences the calls.
//
// An identity expansion (single operand) returns the operand's value
// without conversion: when the operand is an identifier bound to a
// *pathbuf.Buf, that same buffer is returned, not a copy.
//
// Unresolvable operands return a *patherrors.BindingError carrying the
// identifier name and its offset in the source expression.
func (x *Expansion) Eval(opts ...EvalOption) (*pathbuf.Buf, error) {
	cfg, err := applyEvalOptions(opts...)
	if err != nil {
		return nil, err
	}
	return x.eval(cfg)
}

func (x *Expansion) eval(cfg *evalConfig) (*pathbuf.Buf, error) {
	x.logger.Debug("evaluating expansion",
		"expr", x.expr,
		"platform", cfg.platform.Name(),
		"appends", len(x.Appends),
	)

	if x.Identity {
		return x.evalIdentity(cfg)
	}

	base, err := x.resolve(x.Base, cfg)
	if err != nil {
		return nil, err
	}
	buf, err := cfg.platform.From(base)
	if err != nil {
		return nil, x.operandError(x.Base, err)
	}
	for _, op := range x.Appends {
		seg, err := x.resolve(op, cfg)
		if err != nil {
			return nil, err
		}
		if err := buf.Push(seg); err != nil {
			return nil, x.operandError(op, err)
		}
	}
	return buf, nil
}

// evalIdentity handles the single-operand case: the value passes through
// unconverted, preserving the contract that a chain with no join
// operators behaves exactly like writing the operand directly.
func (x *Expansion) evalIdentity(cfg *evalConfig) (*pathbuf.Buf, error) {
	v, err := x.resolve(x.Base, cfg)
	if err != nil {
		return nil, err
	}
	if buf, ok := v.(*pathbuf.Buf); ok {
		return buf, nil
	}
	buf, err := cfg.platform.From(v)
	if err != nil {
		return nil, x.operandError(x.Base, err)
	}
	return buf, nil
}

// resolve produces the path-like value an operand stands for. Type
// validation is deferred to the buffer primitives; resolve only finds
// the value.
func (x *Expansion) resolve(op Operand, cfg *evalConfig) (any, error) {
	switch op.Kind {
	case OperandLiteral:
		return op.Text, nil

	case OperandIdent:
		v, ok := cfg.bindings[op.Text]
		if !ok {
			return nil, &patherrors.BindingError{
				Name:      op.Text,
				Offset:    op.Offset,
				IsMissing: true,
				Message:   "no value bound for identifier",
			}
		}
		return v, nil

	case OperandChain:
		return op.Sub.Expand().eval(cfg)

	default:
		return nil, &patherrors.BindingError{
			Offset:  op.Offset,
			Message: fmt.Sprintf("unknown operand kind %d", op.Kind),
		}
	}
}

// operandError attributes a conversion or append failure to the operand's
// source position and, for identifiers, its name.
func (x *Expansion) operandError(op Operand, err error) error {
	var bindErr *patherrors.BindingError
	if errors.As(err, &bindErr) {
		if bindErr.Name == "" && op.Kind == OperandIdent {
			bindErr.Name = op.Text
		}
		if bindErr.Offset == 0 {
			bindErr.Offset = op.Offset
		}
	}
	return err
}
