package pathexpr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/erraggy/pathtools/patherrors"
)

// lexer splits a join expression into tokens. The only operator it knows
// is '/'; everything between separators is an operand atom: a quoted
// string, an identifier, or a parenthesized group.
type lexer struct {
	expr string
	pos  int
}

func newLexer(expr string) *lexer {
	return &lexer{expr: expr}
}

// lex tokenizes the whole expression. It returns a *patherrors.SyntaxError
// for unterminated strings, bad escapes, and characters outside the
// expression grammar.
func (l *lexer) lex() ([]token, error) {
	var tokens []token
	for {
		l.skipSpace()
		if l.pos >= len(l.expr) {
			return tokens, nil
		}
		start := l.pos
		c := l.expr[l.pos]
		switch {
		case c == '/':
			l.pos++
			tokens = append(tokens, token{kind: tokenSep, text: "/", offset: start})
		case c == '(':
			l.pos++
			tokens = append(tokens, token{kind: tokenLParen, text: "(", offset: start})
		case c == ')':
			l.pos++
			tokens = append(tokens, token{kind: tokenRParen, text: ")", offset: start})
		case c == '"':
			tok, err := l.lexQuoted(start)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case c == '`':
			tok, err := l.lexRaw(start)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		default:
			r, _ := utf8.DecodeRuneInString(l.expr[l.pos:])
			if !isIdentStart(r) {
				return nil, l.errorAt(start, fmt.Sprintf("unexpected character %q", r), nil)
			}
			tokens = append(tokens, l.lexIdent(start))
		}
	}
}

// lexQuoted scans a double-quoted string literal with Go escape rules.
func (l *lexer) lexQuoted(start int) (token, error) {
	l.pos++ // opening quote
	for l.pos < len(l.expr) {
		switch l.expr[l.pos] {
		case '\\':
			l.pos += 2
		case '"':
			l.pos++
			raw := l.expr[start:l.pos]
			value, err := strconv.Unquote(raw)
			if err != nil {
				return token{}, l.errorAt(start, "invalid string literal", err)
			}
			return token{kind: tokenString, text: raw, value: value, offset: start}, nil
		case '\n':
			return token{}, l.errorAt(start, "unterminated string literal", nil)
		default:
			l.pos++
		}
	}
	return token{}, l.errorAt(start, "unterminated string literal", nil)
}

// lexRaw scans a backquoted raw string literal. No escapes are processed,
// which is convenient for windows-style segments: `C:\Windows`.
func (l *lexer) lexRaw(start int) (token, error) {
	l.pos++ // opening backquote
	end := strings.IndexByte(l.expr[l.pos:], '`')
	if end < 0 {
		return token{}, l.errorAt(start, "unterminated raw string literal", nil)
	}
	value := l.expr[l.pos : l.pos+end]
	l.pos += end + 1
	raw := l.expr[start:l.pos]
	return token{kind: tokenString, text: raw, value: value, offset: start}, nil
}

// lexIdent scans an identifier. Dots are allowed so bindings can be
// spelled like field accesses ("cfg.root"); hyphens are allowed because
// they are common in path-ish names.
func (l *lexer) lexIdent(start int) token {
	for l.pos < len(l.expr) {
		r, size := utf8.DecodeRuneInString(l.expr[l.pos:])
		if !isIdentPart(r) {
			break
		}
		l.pos += size
	}
	return token{kind: tokenIdent, text: l.expr[start:l.pos], offset: start}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.expr) {
		switch l.expr[l.pos] {
		case ' ', '\t', '\r', '\n':
			l.pos++
		default:
			return
		}
	}
}

func (l *lexer) errorAt(offset int, msg string, cause error) error {
	line, column := position(l.expr, offset)
	return &patherrors.SyntaxError{
		Expr:    l.expr,
		Offset:  offset,
		Line:    line,
		Column:  column,
		Message: msg,
		Cause:   cause,
	}
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '$'
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$' || r == '.' || r == '-'
}
