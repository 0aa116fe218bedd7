package pathbuf

import "fmt"

// Join converts base into a new buffer and pushes each segment onto it in
// order, following p's conventions. It is the explicit, builder-style
// counterpart to the pathexpr package's expression surface:
//
//	buf, err := pathbuf.Posix.Join("a", "x", "y", "z")
//	// buf.String() == "a/x/y/z"
//
// Absolute-segment semantics are those of [Buf.PushString]: a later
// absolute segment discards everything joined before it.
func (p Platform) Join(base any, segs ...any) (*Buf, error) {
	buf, err := p.From(base)
	if err != nil {
		return nil, fmt.Errorf("pathbuf: invalid base: %w", err)
	}
	for i, seg := range segs {
		if err := buf.Push(seg); err != nil {
			return nil, fmt.Errorf("pathbuf: invalid segment %d: %w", i+1, err)
		}
	}
	return buf, nil
}

// Join converts base into a new buffer and pushes each segment onto it in
// order, following the native platform's conventions.
func Join(base any, segs ...any) (*Buf, error) {
	return Native().Join(base, segs...)
}

// MustJoin is like [Join] but panics if any value is not path-like. It is
// intended for call sites built entirely from literals, where a failure is
// a programming error.
func MustJoin(base any, segs ...any) *Buf {
	buf, err := Join(base, segs...)
	if err != nil {
		panic(err)
	}
	return buf
}
