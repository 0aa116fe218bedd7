package pathexpr

import (
	"github.com/erraggy/pathtools/patherrors"
)

// Parse parses a join expression into a [Chain].
//
// The grammar is a strictly left-associative chain of one operator:
//
//	chain   := operand ('/' operand)*
//	operand := string | identifier | '(' chain ')'
//
// Strings are double-quoted with Go escape rules, or backquoted raw
// literals. Identifiers are placeholders resolved through bindings at
// evaluation time. A parenthesized group is itself a chain; a group in
// base position flattens into the enclosing chain (left-grouping does not
// change the append order), while a group in segment position is
// evaluated as its own join and appended as one segment.
//
// Structural failures (empty expression, dangling separator, unbalanced
// parentheses, unterminated strings) return a *patherrors.SyntaxError
// whose offset points at the problem in expr. Exceeding a configured
// limit returns a *patherrors.LimitError.
func Parse(expr string, opts ...Option) (*Chain, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	if len(expr) > cfg.maxExprSize {
		return nil, &patherrors.LimitError{
			ResourceType: "expression_size",
			Limit:        int64(cfg.maxExprSize),
			Actual:       int64(len(expr)),
		}
	}

	tokens, err := newLexer(expr).lex()
	if err != nil {
		cfg.logger.Debug("tokenization failed", "expr", expr, "error", err)
		return nil, err
	}
	cfg.logger.Debug("tokenized expression", "expr", expr, "tokens", len(tokens))

	p := &parser{expr: expr, tokens: tokens, cfg: cfg}
	operands, err := p.parseChain(1)
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		// Only an unmatched ')' can be left over after a chain.
		return nil, p.errorAt(tok.offset, "unexpected "+tok.describe(), nil)
	}

	chain := &Chain{expr: expr, operands: operands, logger: cfg.logger}
	cfg.logger.Debug("parsed chain", "expr", expr, "operands", len(operands))
	return chain, nil
}

// MustParse is like [Parse] but panics on error. It is intended for
// expressions written as literals in source, where a failure is a
// programming error caught by the package's own tests.
func MustParse(expr string, opts ...Option) *Chain {
	chain, err := Parse(expr, opts...)
	if err != nil {
		panic(err)
	}
	return chain
}

// parser assembles lexed tokens into operand chains.
type parser struct {
	expr     string
	tokens   []token
	pos      int
	operands int // running total across nesting, for the operand limit
	cfg      *parseConfig
}

// parseChain parses operand ('/' operand)* at the given nesting depth.
// The caller consumes any surrounding parentheses.
func (p *parser) parseChain(depth int) ([]Operand, error) {
	if depth > p.cfg.maxDepth {
		return nil, &patherrors.LimitError{
			ResourceType: "nesting_depth",
			Limit:        int64(p.cfg.maxDepth),
			Actual:       int64(depth),
		}
	}

	first, err := p.parseOperand(depth, true)
	if err != nil {
		return nil, err
	}
	operands := []Operand{first}

	for {
		tok, ok := p.peek()
		if !ok || tok.kind == tokenRParen {
			return operands, nil
		}
		if tok.kind != tokenSep {
			return nil, p.errorAt(tok.offset, "expected '/' before "+tok.describe(), nil)
		}
		p.pos++ // consume separator

		next, err := p.parseOperand(depth, false)
		if err != nil {
			return nil, err
		}
		operands = append(operands, next)

		if p.operands > p.cfg.maxOperands {
			return nil, &patherrors.LimitError{
				ResourceType: "operands",
				Limit:        int64(p.cfg.maxOperands),
				Actual:       int64(p.operands),
			}
		}
	}
}

// parseOperand parses a single operand. atStart distinguishes "nothing
// here at all" from "separator with nothing after it" for diagnostics.
func (p *parser) parseOperand(depth int, atStart bool) (Operand, error) {
	tok, ok := p.peek()
	if !ok {
		if atStart {
			if p.pos == 0 && depth == 1 {
				return Operand{}, p.emptyError()
			}
			return Operand{}, p.errorAt(len(p.expr), "expected operand", nil)
		}
		return Operand{}, p.danglingError(len(p.expr))
	}

	switch tok.kind {
	case tokenString:
		p.pos++
		p.operands++
		return Operand{Kind: OperandLiteral, Text: tok.value, Offset: tok.offset}, nil

	case tokenIdent:
		p.pos++
		p.operands++
		return Operand{Kind: OperandIdent, Text: tok.text, Offset: tok.offset}, nil

	case tokenLParen:
		p.pos++ // consume '('
		inner, err := p.parseChain(depth + 1)
		if err != nil {
			return Operand{}, err
		}
		closing, ok := p.peek()
		if !ok {
			return Operand{}, p.errorAt(len(p.expr), "missing ')'", nil)
		}
		if closing.kind != tokenRParen {
			return Operand{}, p.errorAt(closing.offset, "expected ')', found "+closing.describe(), nil)
		}
		p.pos++ // consume ')'
		if len(inner) == 1 {
			// A group around a single operand is just that operand.
			op := inner[0]
			op.Offset = tok.offset
			return op, nil
		}
		sub := &Chain{expr: p.expr, operands: inner, logger: p.cfg.logger}
		return Operand{Kind: OperandChain, Offset: tok.offset, Sub: sub}, nil

	case tokenSep:
		if !atStart {
			return Operand{}, p.errorAt(tok.offset, "expected operand between separators", nil)
		}
		return Operand{}, p.errorAt(tok.offset, "expected operand before '/'", nil)

	case tokenRParen:
		if atStart && !p.atTopLevel(depth) {
			return Operand{}, p.errorAt(tok.offset, "empty group", nil)
		}
		if !atStart {
			return Operand{}, p.danglingError(tok.offset)
		}
		return Operand{}, p.errorAt(tok.offset, "unexpected ')'", nil)

	default:
		return Operand{}, p.errorAt(tok.offset, "unexpected "+tok.describe(), nil)
	}
}

func (p *parser) atTopLevel(depth int) bool {
	return depth == 1
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) emptyError() error {
	return &patherrors.SyntaxError{
		Expr:    p.expr,
		IsEmpty: true,
		Message: "expression has no operands",
	}
}

func (p *parser) danglingError(offset int) error {
	line, column := position(p.expr, offset)
	return &patherrors.SyntaxError{
		Expr:                p.expr,
		Offset:              offset,
		Line:                line,
		Column:              column,
		IsDanglingSeparator: true,
		Message:             "expected operand after '/'",
	}
}

func (p *parser) errorAt(offset int, msg string, cause error) error {
	line, column := position(p.expr, offset)
	return &patherrors.SyntaxError{
		Expr:    p.expr,
		Offset:  offset,
		Line:    line,
		Column:  column,
		Message: msg,
		Cause:   cause,
	}
}
