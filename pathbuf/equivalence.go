package pathbuf

import (
	"strings"

	"golang.org/x/text/cases"
)

// EquivalentTo reports whether two buffers name the same path under
// relaxed, platform-aware comparison rules:
//
//   - on windows-convention buffers, '/' and '\' are interchangeable;
//   - case differences are ignored using Unicode case folding
//     (golang.org/x/text/cases), matching case-insensitive filesystems.
//
// This is a textual comparison only; no filesystem access occurs and
// lexically distinct paths such as "a/../b" and "b" remain distinct.
// For strict byte equality use [Buf.Equal].
func (b *Buf) EquivalentTo(other *Buf) bool {
	if other == nil {
		return b == nil
	}
	if string(b.b) == string(other.b) {
		return true
	}
	// Use golang.org/x/text/cases for proper Unicode case folding
	// (strings.EqualFold does not handle all full-case-folding pairs).
	folder := cases.Fold()
	return folder.String(b.comparableText()) == folder.String(other.comparableText())
}

// comparableText returns the buffer's text with separators normalized for
// comparison. Windows-convention buffers map '/' to '\'.
func (b *Buf) comparableText() string {
	s := string(b.b)
	if b.platform.orDefault().separator == '\\' {
		return strings.ReplaceAll(s, "/", `\`)
	}
	return s
}
