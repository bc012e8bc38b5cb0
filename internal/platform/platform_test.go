//go:build !ios && !android && (amd64 || arm64)

package platform

import (
	"runtime"
	"testing"
)

func TestIs64Bit(t *testing.T) {
	// We only support 64-bit platforms
	if !Is64Bit {
		t.Error("Platform should be 64-bit")
	}
}

func TestLibraryExtension(t *testing.T) {
	switch runtime.GOOS {
	case "darwin":
		if LibraryExtension != ".dylib" {
			t.Errorf("expected .dylib, got %s", LibraryExtension)
		}
	case "windows":
		if LibraryExtension != ".dll" {
			t.Errorf("expected .dll, got %s", LibraryExtension)
		}
	default:
		if LibraryExtension != ".so" {
			t.Errorf("expected .so, got %s", LibraryExtension)
		}
	}
}

func TestLibraryPrefix(t *testing.T) {
	switch runtime.GOOS {
	case "windows":
		if LibraryPrefix != "" {
			t.Errorf("expected empty prefix on Windows, got %s", LibraryPrefix)
		}
	default:
		if LibraryPrefix != "lib" {
			t.Errorf("expected 'lib' prefix, got %s", LibraryPrefix)
		}
	}
}

func TestFormatLibraryName(t *testing.T) {
	tests := []struct {
		name    string
		version int
		goos    string
		want    string
	}{
		{"fmod", 13, "linux", "libfmod.so.13"},
		{"fmodstudio", 0, "linux", "libfmodstudio.so"},
		{"fmod", 13, "darwin", "libfmod.13.dylib"},
		{"fmodL", 0, "darwin", "libfmodL.dylib"},
		{"fmod", 13, "windows", "fmod-13.dll"},
		{"fmodstudio", 0, "windows", "fmodstudio.dll"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"_"+tt.goos, func(t *testing.T) {
			if runtime.GOOS != tt.goos {
				t.Skipf("test only applies to %s", tt.goos)
			}
			got := FormatLibraryName(tt.name, tt.version)
			if got != tt.want {
				t.Errorf("FormatLibraryName(%q, %d) = %q, want %q", tt.name, tt.version, got, tt.want)
			}
		})
	}
}

func TestLibraryPattern(t *testing.T) {
	tests := []struct {
		name string
		goos string
		want string
	}{
		{"fmod", "linux", "libfmod.so{,.*}"},
		{"fmod", "darwin", "libfmod{,.*}.dylib"},
		{"fmodstudio", "windows", "fmodstudio{,-*}.dll"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"_"+tt.goos, func(t *testing.T) {
			if runtime.GOOS != tt.goos {
				t.Skipf("test only applies to %s", tt.goos)
			}
			if got := LibraryPattern(tt.name); got != tt.want {
				t.Errorf("LibraryPattern(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
