// Package pathbuf provides an owned, growable path buffer with in-place
// append semantics.
//
// Import path: github.com/erraggy/pathtools/pathbuf
//
// The standard library's filepath.Join lexically cleans its result, which
// silently rewrites paths containing "..", repeated separators, or other
// structure the caller meant literally. [Buf] keeps the text exactly as
// written and defines appending the way path buffers in other ecosystems
// do:
//
//   - a relative segment is appended after the platform separator;
//   - an absolute segment replaces the buffer's contents entirely;
//   - nothing is ever cleaned or normalized.
//
// # Quick Start
//
// Build a path by pushing segments:
//
//	buf := pathbuf.FromString("a")
//	buf.PushString("x")
//	buf.PushString("y")
//	// posix: "a/x/y"    windows: "a\x\y"
//
// Or join in one call:
//
//	buf, err := pathbuf.Join(configDir, "cache", name)
//
// # Path-Like Values
//
// [From], [Buf.Push], and [Join] accept any path-like value: a string, a
// *[Buf], or a type implementing [Pather]. Unsupported types return a
// *patherrors.BindingError matching patherrors.ErrNotPathLike.
//
// # Platforms
//
// Every buffer follows a [Platform]: [Posix] or [Windows]. The platform
// decides the separator inserted between segments and which segments count
// as absolute. [Native] selects the host convention; the explicit values
// make both conventions testable anywhere:
//
//	buf, _ := pathbuf.Windows.Join("a", "x", "y", "z")
//	// buf.String() == `a\x\y\z`
//
// # Absolute-Segment Override
//
// Pushing an absolute segment discards the base and every earlier segment:
//
//	buf, _ := pathbuf.Posix.Join("a", "b", "/etc", "passwd")
//	// buf.String() == "/etc/passwd"
//
// This mirrors the underlying append primitive's contract and is relied on
// by the pathexpr package, which only sequences calls to [Buf.Push].
package pathbuf
