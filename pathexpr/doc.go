// Package pathexpr rewrites chained join expressions into sequences of
// path-append operations.
//
// Import path: github.com/erraggy/pathtools/pathexpr
//
// Several languages let paths be composed with a division-like operator:
//
//	Path('a') / 'x' / 'y'
//
// Go has no operator overloading, so pathexpr provides the same ergonomic
// contract as a tiny expression language. An expression is a strictly
// left-associative chain of one operator:
//
//	"a" / "x" / "y" / "z"
//
// Rewriting converts the leftmost operand into an owned pathbuf.Buf and
// appends each remaining operand in order with its push primitive. The
// rewriter sequences those calls and nothing more: separator choice and
// absolute-segment override come entirely from the pathbuf package.
//
// # Quick Start
//
//	buf, err := pathexpr.Join(`"a" / "x" / "y" / "z"`)
//	// posix: "a/x/y/z"    windows: `a\x\y\z`
//
// Identifiers defer operand values to evaluation time:
//
//	buf, err := pathexpr.Join(`root / "cache" / name`,
//	    pathexpr.WithBinding("root", "/var/lib/app"),
//	    pathexpr.WithBinding("name", entry),
//	)
//
// Bound values may be strings, *pathbuf.Buf, or any pathbuf.Pather.
//
// # Phases
//
// The three phases are available separately when more control is needed:
//
//	chain, err := pathexpr.Parse(`base / "x"`)   // syntax -> Chain
//	x := chain.Expand()                          // Chain  -> append sequence
//	buf, err := x.Eval(opts...)                  // run the appends
//
// Parse rejects malformed expressions (empty input, dangling separators,
// unbalanced parentheses) with *patherrors.SyntaxError. Eval reports
// unbound identifiers and non-path-like values with
// *patherrors.BindingError, attributed to the operand's offset in the
// source expression. Structural problems therefore surface before any
// evaluation, mirroring the compile-time/runtime split of the operator
// syntax this package stands in for.
//
// # Associativity
//
// The chain is parsed strictly left-to-right: A / B / C means
// ((A / B) / C). A parenthesized group in base position expands to the
// identical append sequence, so (A / B) / C and A / B / C are the same
// expansion. A group in segment position is evaluated as its own join
// first and appended as a single segment.
//
// # Single Operand
//
// An expression with no join operator at all is an identity: evaluating
// it returns the operand's value unconverted. An identifier bound to a
// *pathbuf.Buf comes back as that same buffer, and no allocation or
// conversion occurs beyond what the caller already did.
package pathexpr
