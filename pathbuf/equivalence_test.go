package pathbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEquivalentTo(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		a, b     string
		want     bool
	}{
		{
			name:     "identical text",
			platform: Posix,
			a:        "a/b",
			b:        "a/b",
			want:     true,
		},
		{
			name:     "case fold ascii",
			platform: Windows,
			a:        `C:\Users\Alice`,
			b:        `c:\users\alice`,
			want:     true,
		},
		{
			name:     "case fold full mapping",
			platform: Posix,
			a:        "straße",
			b:        "STRASSE",
			want:     true,
		},
		{
			name:     "windows separators interchangeable",
			platform: Windows,
			a:        `a\b\c`,
			b:        "a/b/c",
			want:     true,
		},
		{
			name:     "posix separators not interchangeable",
			platform: Posix,
			a:        `a\b`,
			b:        "a/b",
			want:     false,
		},
		{
			name:     "distinct paths",
			platform: Posix,
			a:        "a/b",
			b:        "a/c",
			want:     false,
		},
		{
			name:     "no lexical resolution",
			platform: Posix,
			a:        "a/../b",
			b:        "b",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.platform.FromString(tt.a)
			b := tt.platform.FromString(tt.b)
			assert.Equal(t, tt.want, a.EquivalentTo(b))
			assert.Equal(t, tt.want, b.EquivalentTo(a), "equivalence must be symmetric")
		})
	}
}

func TestEquivalentToNil(t *testing.T) {
	buf := Posix.FromString("a")
	assert.False(t, buf.EquivalentTo(nil))
}
