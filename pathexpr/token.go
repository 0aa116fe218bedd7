package pathexpr

import "fmt"

// tokenKind identifies the lexical class of a token.
type tokenKind int

const (
	tokenInvalid tokenKind = iota
	tokenString            // quoted literal; value holds the decoded text
	tokenIdent             // bare identifier, resolved through bindings
	tokenSep               // the '/' join operator
	tokenLParen
	tokenRParen
)

// String returns a human-readable name for diagnostics.
func (k tokenKind) String() string {
	switch k {
	case tokenString:
		return "string"
	case tokenIdent:
		return "identifier"
	case tokenSep:
		return "'/'"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	default:
		return "invalid"
	}
}

// token is a single lexical element of a join expression.
type token struct {
	kind   tokenKind
	text   string // raw source text
	value  string // decoded value, set for tokenString
	offset int    // byte offset into the source expression
}

func (t token) describe() string {
	if t.kind == tokenString || t.kind == tokenIdent {
		return fmt.Sprintf("%s %q", t.kind, t.text)
	}
	return t.kind.String()
}

// position converts a byte offset into 1-based line and column numbers.
// Columns count bytes, matching how editors report positions in the
// single-line expressions this package typically sees.
func position(expr string, offset int) (line, column int) {
	line, column = 1, 1
	for i := 0; i < offset && i < len(expr); i++ {
		if expr[i] == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return line, column
}
