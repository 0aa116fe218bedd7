package pathexpr

import "strconv"

// OperandKind identifies what an operand is.
type OperandKind int

const (
	// OperandLiteral is a quoted string; Text holds the decoded value.
	OperandLiteral OperandKind = iota

	// OperandIdent is a bare identifier; Text holds the name, resolved
	// through bindings at evaluation time.
	OperandIdent

	// OperandChain is a parenthesized sub-expression; Sub holds its chain.
	OperandChain
)

// String returns a human-readable name for the operand kind.
func (k OperandKind) String() string {
	switch k {
	case OperandLiteral:
		return "literal"
	case OperandIdent:
		return "identifier"
	case OperandChain:
		return "chain"
	default:
		return "unknown"
	}
}

// Operand is a single element of a join chain: the base or one segment.
type Operand struct {
	// Kind identifies the operand form.
	Kind OperandKind
	// Text is the decoded literal value or the identifier name.
	// It is empty for OperandChain.
	Text string
	// Offset is the operand's byte offset in the source expression,
	// used to attribute binding errors to the call site.
	Offset int
	// Sub is the nested chain for OperandChain operands.
	Sub *Chain
}

// describe renders the operand for diagnostics and debug logs.
func (o Operand) describe() string {
	switch o.Kind {
	case OperandLiteral:
		return strconv.Quote(o.Text)
	case OperandIdent:
		return o.Text
	case OperandChain:
		return "(" + o.Sub.describe() + ")"
	default:
		return "?"
	}
}

// Chain is the parsed form of a join expression: a strictly
// left-associative sequence of operands separated by '/'. Produce one
// with [Parse], then rewrite it into an append sequence with
// [Chain.Expand].
type Chain struct {
	expr     string
	operands []Operand
	logger   Logger
}

// Expr returns the source expression the chain was parsed from.
func (c *Chain) Expr() string {
	return c.expr
}

// Operands returns the chain's operands in source order. The first
// operand is the base; the rest are segments. The returned slice must
// not be modified.
func (c *Chain) Operands() []Operand {
	return c.operands
}

// Len returns the number of operands at the chain's top level.
func (c *Chain) Len() int {
	return len(c.operands)
}

func (c *Chain) describe() string {
	s := ""
	for i, op := range c.operands {
		if i > 0 {
			s += " / "
		}
		s += op.describe()
	}
	return s
}
