package pathbuf

import (
	"github.com/erraggy/pathtools/patherrors"
)

// Pather is implemented by types that can present themselves as path text.
// Values implementing Pather are accepted anywhere a path-like value is
// expected, alongside string and *Buf.
type Pather interface {
	// PathText returns the value's textual path representation.
	PathText() string
}

// Buf is an owned, growable path buffer. Segments are appended in place
// with [Buf.Push]; an absolute segment replaces the buffer's contents
// entirely. Unlike filepath.Join, no lexical cleaning is ever performed:
// "..", repeated separators, and mixed separators inside a segment are
// preserved verbatim.
//
// The zero value is not usable; construct buffers with [New], [From],
// [FromString], or the Platform-bound equivalents.
type Buf struct {
	platform Platform
	b        []byte
}

// New returns an empty buffer following the native platform's conventions.
func New() *Buf {
	return Native().NewBuf()
}

// NewBuf returns an empty buffer following p's conventions.
func (p Platform) NewBuf() *Buf {
	return &Buf{platform: p.orDefault()}
}

// FromString returns a buffer initialized with s, following the native
// platform's conventions. The string is taken as-is; no validation or
// cleaning occurs.
func FromString(s string) *Buf {
	return Native().FromString(s)
}

// FromString returns a buffer initialized with s, following p's conventions.
func (p Platform) FromString(s string) *Buf {
	return &Buf{platform: p.orDefault(), b: []byte(s)}
}

// From converts a path-like value into a new buffer following the native
// platform's conventions. See [Platform.From] for accepted types.
func From(v any) (*Buf, error) {
	return Native().From(v)
}

// From converts a path-like value into a new buffer following p's
// conventions. Accepted types are string, *Buf, and any [Pather]
// implementation. A *Buf argument is copied, so the returned buffer is
// independently owned. Any other type returns a *patherrors.BindingError
// matching patherrors.ErrNotPathLike.
func (p Platform) From(v any) (*Buf, error) {
	s, err := pathText(v)
	if err != nil {
		return nil, err
	}
	return p.FromString(s), nil
}

// Push appends a path-like value to the buffer in place. Accepted types
// match [Platform.From]; any other type returns a *patherrors.BindingError
// matching patherrors.ErrNotPathLike and leaves the buffer unchanged.
func (b *Buf) Push(v any) error {
	s, err := pathText(v)
	if err != nil {
		return err
	}
	b.PushString(s)
	return nil
}

// PushString appends a segment to the buffer in place:
//
//   - if seg is absolute under the buffer's platform, it replaces the
//     buffer's contents entirely;
//   - otherwise, if the buffer is non-empty and does not already end in a
//     separator, the platform's native separator is appended first;
//   - then seg is appended verbatim.
//
// Pushing an empty segment onto a non-empty buffer leaves a trailing
// separator, matching the behavior of the underlying append primitive this
// mirrors. Separators embedded in seg are preserved as written, even when
// they are not the platform's native separator.
func (b *Buf) PushString(seg string) {
	if b.platform.IsAbs(seg) {
		b.b = append(b.b[:0], seg...)
		return
	}
	if len(b.b) > 0 && !b.platform.IsSeparator(b.b[len(b.b)-1]) {
		b.b = append(b.b, b.platform.Separator())
	}
	b.b = append(b.b, seg...)
}

// String returns the buffer's current path text.
func (b *Buf) String() string {
	return string(b.b)
}

// PathText implements [Pather].
func (b *Buf) PathText() string {
	return string(b.b)
}

// Len returns the length of the buffer's path text in bytes.
func (b *Buf) Len() int {
	return len(b.b)
}

// IsEmpty reports whether the buffer holds no path text.
func (b *Buf) IsEmpty() bool {
	return len(b.b) == 0
}

// IsAbs reports whether the buffer's current contents form an absolute
// path under the buffer's platform.
func (b *Buf) IsAbs() bool {
	return b.platform.IsAbs(string(b.b))
}

// Platform returns the platform whose conventions the buffer follows.
func (b *Buf) Platform() Platform {
	return b.platform
}

// Clone returns an independently owned copy of the buffer.
func (b *Buf) Clone() *Buf {
	c := &Buf{platform: b.platform, b: make([]byte, len(b.b))}
	copy(c.b, b.b)
	return c
}

// Equal reports whether other holds byte-identical path text. Platform
// conventions are not compared; "a/b" on posix equals "a/b" on windows.
func (b *Buf) Equal(other *Buf) bool {
	if other == nil {
		return b == nil
	}
	return string(b.b) == string(other.b)
}

// EqualString reports whether the buffer's path text equals s.
func (b *Buf) EqualString(s string) bool {
	return string(b.b) == s
}

// Segments returns the buffer's non-empty path segments, split on the
// platform's separators. Root markers are not distinguished: "/a/b" and
// "a/b" both yield ["a" "b"].
func (b *Buf) Segments() []string {
	var segs []string
	start := -1
	for i := 0; i < len(b.b); i++ {
		if b.platform.IsSeparator(b.b[i]) {
			if start >= 0 {
				segs = append(segs, string(b.b[start:i]))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		segs = append(segs, string(b.b[start:]))
	}
	return segs
}

// pathText extracts the textual path from a path-like value.
func pathText(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case *Buf:
		if t == nil {
			return "", &patherrors.BindingError{
				IsWrongType: true,
				Message:     "nil *pathbuf.Buf",
			}
		}
		return t.String(), nil
	case Pather:
		return t.PathText(), nil
	default:
		return "", &patherrors.BindingError{
			IsWrongType: true,
			Value:       v,
			Message:     "want string, *pathbuf.Buf, or pathbuf.Pather",
		}
	}
}

// Ensure Buf implements Pather at compile time.
var _ Pather = (*Buf)(nil)
