package pathexpr

import "github.com/erraggy/pathtools/pathbuf"

// Join parses, expands, and evaluates a join expression in one call:
//
//	buf, err := pathexpr.Join(`root / "cache" / name`,
//	    pathexpr.WithBinding("root", cfg.Root),
//	    pathexpr.WithBinding("name", entry),
//	)
//
// Parsing uses the default limits; use [Parse] directly when they need
// adjusting or when the same expression is evaluated repeatedly (a
// parsed [Chain] is reusable).
func Join(expr string, opts ...EvalOption) (*pathbuf.Buf, error) {
	chain, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	return chain.Expand().Eval(opts...)
}

// MustJoin is like [Join] but panics on error. It is intended for
// literal-only expressions written in source, where a malformed
// expression or unbound identifier is a programming error:
//
//	var defaultCache = pathexpr.MustJoin(`"var" / "cache" / "pathtools"`)
func MustJoin(expr string, opts ...EvalOption) *pathbuf.Buf {
	buf, err := Join(expr, opts...)
	if err != nil {
		panic(err)
	}
	return buf
}
