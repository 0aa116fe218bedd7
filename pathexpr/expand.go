package pathexpr

// Expansion is the rewrite product of a chain: the base operand plus the
// ordered sequence of segments to append onto it. It is the direct
// analogue of rewriting
//
//	base / seg1 / seg2
//
// into
//
//	buf := from(base); buf.push(seg1); buf.push(seg2)
//
// The structure is inspectable so callers (and tests) can verify append
// order without evaluating anything.
type Expansion struct {
	// Base is the leftmost operand, converted into the owned buffer.
	Base Operand
	// Appends are the remaining operands, pushed in order.
	Appends []Operand
	// Identity is true when the chain held a single operand and no
	// joining work is required. Evaluating an identity expansion
	// returns the operand's value unconverted.
	Identity bool

	expr   string
	logger Logger
}

// Expand rewrites the chain into its append sequence.
//
// A parenthesized group in base position contributes its own operands to
// the front of the sequence: (A / B) / C and A / B / C expand to the same
// structure, which is exactly the left-associativity of the operator. A
// group in segment position stays a single append whose value is the
// group's own join.
func (c *Chain) Expand() *Expansion {
	operands := flattenLeading(c.operands)
	x := &Expansion{
		Base:     operands[0],
		Appends:  operands[1:],
		Identity: len(operands) == 1,
		expr:     c.expr,
		logger:   c.logger,
	}
	c.logger.Debug("expanded chain",
		"chain", c.describe(),
		"appends", len(x.Appends),
		"identity", x.Identity,
	)
	return x
}

// Steps returns the full operand sequence: base first, then each append
// in order.
func (x *Expansion) Steps() []Operand {
	steps := make([]Operand, 0, len(x.Appends)+1)
	steps = append(steps, x.Base)
	return append(steps, x.Appends...)
}

// Expr returns the source expression the expansion came from.
func (x *Expansion) Expr() string {
	return x.expr
}

// flattenLeading splices chain operands in base position into the
// enclosing sequence, repeatedly, so ((A / B) / C) / D becomes
// A B C D. Non-leading groups are left alone.
func flattenLeading(operands []Operand) []Operand {
	for operands[0].Kind == OperandChain {
		sub := operands[0].Sub.operands
		merged := make([]Operand, 0, len(sub)+len(operands)-1)
		merged = append(merged, sub...)
		operands = append(merged, operands[1:]...)
	}
	return operands
}
