package pathbuf

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformIsAbs(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		path     string
		want     bool
	}{
		{name: "posix rooted", platform: Posix, path: "/etc", want: true},
		{name: "posix relative", platform: Posix, path: "etc", want: false},
		{name: "posix dot-dot", platform: Posix, path: "../etc", want: false},
		{name: "posix empty", platform: Posix, path: "", want: false},
		{name: "posix backslash is not a root", platform: Posix, path: `\x`, want: false},
		{name: "posix drive letter is an ordinary name", platform: Posix, path: `C:\x`, want: false},

		{name: "windows drive backslash", platform: Windows, path: `C:\Windows`, want: true},
		{name: "windows drive forward slash", platform: Windows, path: "c:/temp", want: true},
		{name: "windows drive without slash", platform: Windows, path: "C:file", want: false},
		{name: "windows rooted", platform: Windows, path: `\x`, want: true},
		{name: "windows rooted forward slash", platform: Windows, path: "/x", want: true},
		{name: "windows UNC", platform: Windows, path: `\\host\share`, want: true},
		{name: "windows relative", platform: Windows, path: "x", want: false},
		{name: "windows empty", platform: Windows, path: "", want: false},
		{name: "windows colon only", platform: Windows, path: "C:", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.platform.IsAbs(tt.path))
		})
	}
}

func TestPlatformIsSeparator(t *testing.T) {
	assert.True(t, Posix.IsSeparator('/'))
	assert.False(t, Posix.IsSeparator('\\'))

	assert.True(t, Windows.IsSeparator('\\'))
	assert.True(t, Windows.IsSeparator('/'))
	assert.False(t, Windows.IsSeparator(':'))
}

func TestPlatformAccessors(t *testing.T) {
	assert.Equal(t, "posix", Posix.Name())
	assert.Equal(t, byte('/'), Posix.Separator())
	assert.Equal(t, "windows", Windows.Name())
	assert.Equal(t, byte('\\'), Windows.Separator())
}

func TestNative(t *testing.T) {
	if runtime.GOOS == "windows" {
		assert.Equal(t, "windows", Native().Name())
	} else {
		assert.Equal(t, "posix", Native().Name())
	}
}

func TestZeroPlatformBehavesAsNative(t *testing.T) {
	var p Platform
	assert.Equal(t, Native().Name(), p.Name())
	assert.Equal(t, Native().Separator(), p.Separator())

	buf := p.FromString("a")
	buf.PushString("b")
	assert.Equal(t, "a"+string(Native().Separator())+"b", buf.String())
}
