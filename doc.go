// Package pathtools provides ergonomic path composition for Go.
//
// Several languages let filesystem paths be built with a division-like
// operator:
//
//	>>> from pathlib import Path
//	>>> Path('a') / 'x' / 'y'
//	PosixPath('a/x/y')
//
// pathtools brings the same contract to Go as a small library. The result
// of a join is always the base converted into an owned, growable buffer
// with each segment appended in order by the path-append primitive; the
// primitive alone decides separator choice and what an absolute segment
// does.
//
// # Overview
//
// The library consists of three packages:
//
//   - pathbuf: the owned path buffer and its push/join primitives
//   - pathexpr: the '/'-chain expression rewriter built on top of pathbuf
//   - patherrors: structured error types shared by both
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/pathtools
//
// # Quick Start
//
// Join with the expression surface:
//
//	import "github.com/erraggy/pathtools/pathexpr"
//
//	buf, err := pathexpr.Join(`root / "cache" / name`,
//	    pathexpr.WithBinding("root", cfg.Root),
//	    pathexpr.WithBinding("name", entry),
//	)
//
// Or with the explicit builder surface:
//
//	import "github.com/erraggy/pathtools/pathbuf"
//
//	buf, err := pathbuf.Join(cfg.Root, "cache", entry)
//
// Both surfaces sequence the same append primitive, so they agree on
// every path they produce.
//
// # Why Not filepath.Join
//
// filepath.Join lexically cleans its result: "x/../a" collapses, repeated
// separators vanish, and an absolute later element does not replace
// earlier ones. pathtools keeps path text exactly as written and gives
// absolute segments the replace semantics path buffers have in other
// ecosystems. When cleaning is what you want, the standard library
// already does it well.
//
// # Error Handling
//
// Structural problems (malformed expressions) surface at parse time as
// *patherrors.SyntaxError; value problems (unbound identifiers,
// non-path-like types) surface at evaluation as *patherrors.BindingError.
// See the patherrors package for the full taxonomy.
package pathtools
