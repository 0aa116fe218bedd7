package pathbuf

import "runtime"

// Platform describes the path conventions a buffer follows: which byte
// separates segments and which paths count as absolute. Using an explicit
// platform value keeps both conventions testable on any host; production
// code normally uses [Native].
type Platform struct {
	name      string
	separator byte
}

var (
	// Posix uses '/' as the separator. Only paths beginning with '/' are
	// absolute.
	Posix = Platform{name: "posix", separator: '/'}

	// Windows uses '\' as the separator and accepts '/' as an alternate.
	// Drive-letter paths (C:\x), UNC paths (\\host\share), and rooted
	// paths (\x) are all treated as absolute for append purposes.
	Windows = Platform{name: "windows", separator: '\\'}
)

// Native returns the platform matching the current operating system.
func Native() Platform {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Posix
}

// Name returns the platform name: "posix" or "windows".
func (p Platform) Name() string {
	return p.orDefault().name
}

// Separator returns the byte inserted between appended segments.
func (p Platform) Separator() byte {
	return p.orDefault().separator
}

// IsSeparator reports whether c separates path segments under p's
// conventions. Windows recognizes both '\' and '/'.
func (p Platform) IsSeparator(c byte) bool {
	p = p.orDefault()
	if p.separator == '\\' {
		return c == '\\' || c == '/'
	}
	return c == '/'
}

// IsAbs reports whether path is absolute under p's conventions.
//
// On Windows this is deliberately broader than filepath.IsAbs: rooted paths
// such as `\x` are included, because appending one replaces the buffer just
// as a fully qualified path does.
func (p Platform) IsAbs(path string) bool {
	p = p.orDefault()
	if path == "" {
		return false
	}
	if p.separator == '\\' {
		if p.IsSeparator(path[0]) {
			// Covers both rooted (\x) and UNC (\\host\share) paths.
			return true
		}
		return len(path) >= 3 && isDriveLetter(path[0]) && path[1] == ':' && p.IsSeparator(path[2])
	}
	return path[0] == '/'
}

// orDefault substitutes the native platform for the zero value, so an
// uninitialized Platform behaves sensibly instead of panicking.
func (p Platform) orDefault() Platform {
	if p.separator == 0 {
		return Native()
	}
	return p
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
