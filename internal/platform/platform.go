//go:build !ios && !android && (amd64 || arm64)

// Package platform provides per-OS shared library naming for fmodgo.
package platform

import (
	"fmt"
	"runtime"
	"unsafe"
)

// Is64Bit indicates whether the platform is 64-bit.
// fmodgo only supports 64-bit platforms due to purego limitations.
const Is64Bit = unsafe.Sizeof(uintptr(0)) == 8

// LibraryExtension is the file extension for shared libraries on this platform.
var LibraryExtension string

// LibraryPrefix is the prefix for shared library names on this platform.
var LibraryPrefix string

func init() {
	switch runtime.GOOS {
	case "darwin":
		LibraryExtension = ".dylib"
		LibraryPrefix = "lib"
	case "windows":
		LibraryExtension = ".dll"
		LibraryPrefix = ""
	default: // linux, freebsd, etc.
		LibraryExtension = ".so"
		LibraryPrefix = "lib"
	}
}

// FormatLibraryName returns the platform-specific library filename.
// If version is 0, returns the unversioned library name.
//
// Examples:
//   - Linux:   FormatLibraryName("fmod", 13) -> "libfmod.so.13"
//   - macOS:   FormatLibraryName("fmod", 13) -> "libfmod.13.dylib"
//   - Windows: FormatLibraryName("fmod", 13) -> "fmod-13.dll"
func FormatLibraryName(name string, version int) string {
	switch runtime.GOOS {
	case "darwin":
		if version > 0 {
			return fmt.Sprintf("%s%s.%d%s", LibraryPrefix, name, version, LibraryExtension)
		}
		return fmt.Sprintf("%s%s%s", LibraryPrefix, name, LibraryExtension)
	case "windows":
		if version > 0 {
			return fmt.Sprintf("%s%s-%d%s", LibraryPrefix, name, version, LibraryExtension)
		}
		return fmt.Sprintf("%s%s%s", LibraryPrefix, name, LibraryExtension)
	default: // linux, freebsd
		if version > 0 {
			return fmt.Sprintf("%s%s%s.%d", LibraryPrefix, name, LibraryExtension, version)
		}
		return fmt.Sprintf("%s%s%s", LibraryPrefix, name, LibraryExtension)
	}
}

// LibraryPattern returns a doublestar pattern matching the unversioned and
// every versioned file name of library name, and nothing else. FMOD ships
// "fmod" and "fmodstudio" side by side, so the pattern must not let one
// match the other.
//
// Examples:
//   - Linux:   LibraryPattern("fmod") -> "libfmod.so{,.*}"
//   - macOS:   LibraryPattern("fmod") -> "libfmod{,.*}.dylib"
//   - Windows: LibraryPattern("fmod") -> "fmod{,-*}.dll"
func LibraryPattern(name string) string {
	switch runtime.GOOS {
	case "darwin":
		return fmt.Sprintf("%s%s{,.*}%s", LibraryPrefix, name, LibraryExtension)
	case "windows":
		return fmt.Sprintf("%s%s{,-*}%s", LibraryPrefix, name, LibraryExtension)
	default:
		return fmt.Sprintf("%s%s%s{,.*}", LibraryPrefix, name, LibraryExtension)
	}
}
