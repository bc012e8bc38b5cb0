//go:build !ios && !android && (amd64 || arm64)

package bindings

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/obinnaokechukwu/fmodgo/internal/platform"
)

func TestLibrarySearchPaths(t *testing.T) {
	paths := LibrarySearchPaths()
	if len(paths) == 0 {
		t.Error("LibrarySearchPaths should return at least one path")
	}
}

func TestLibrarySearchPathsEnv(t *testing.T) {
	t.Setenv("FMOD_LIBRARY_PATH", "/custom/fmod")
	paths := LibrarySearchPaths()
	if len(paths) == 0 || paths[0] != "/custom/fmod" {
		t.Errorf("FMOD_LIBRARY_PATH should be searched first, got %v", paths)
	}
}

func TestFindLibrary(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("file names below are Linux names")
	}
	dir := t.TempDir()
	for _, name := range []string{
		"libfmod.so",
		"libfmod.so.13",
		"libfmod.so.14",
		"libfmodstudio.so.14",
		"libfmodL.so.14",
		"readme.txt",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got := FindLibrary(dir, "fmod")
	want := []string{
		filepath.Join(dir, "libfmod.so.14"),
		filepath.Join(dir, "libfmod.so.13"),
		filepath.Join(dir, "libfmod.so"),
	}
	if len(got) != len(want) {
		t.Fatalf("FindLibrary = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FindLibrary[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if studio := FindLibrary(dir, "fmodstudio"); len(studio) != 1 {
		t.Errorf("FindLibrary(fmodstudio) = %v, want one match", studio)
	}
}

func TestFindLibraryMissingDir(t *testing.T) {
	if got := FindLibrary(filepath.Join(t.TempDir(), "nope"), "fmod"); len(got) != 0 {
		t.Errorf("FindLibrary on a missing dir = %v, want none", got)
	}
	if got := FindLibrary("", "fmod"); got != nil {
		t.Errorf("FindLibrary(\"\") = %v, want nil", got)
	}
}

func TestPatternMatchesFormattedNames(t *testing.T) {
	dir := t.TempDir()
	name := platform.FormatLibraryName("fmod", 13)
	if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if got := FindLibrary(dir, "fmod"); len(got) != 1 {
		t.Errorf("FindLibrary did not find %s: %v", name, got)
	}
}

func TestTablesNilBeforeLoad(t *testing.T) {
	if IsLoaded() {
		t.Skip("libraries already loaded")
	}
	if Channel().GetVolume != nil {
		t.Error("Channel table should be empty before Load")
	}
	if VCA().GetVolume != nil {
		t.Error("VCA table should be empty before Load")
	}
	if Debug().Initialize != nil {
		t.Error("Debug table should be empty before Load")
	}
}

func TestBool(t *testing.T) {
	if Bool(true) != 1 || Bool(false) != 0 {
		t.Error("Bool should map to FMOD_BOOL 1/0")
	}
}

func TestMembersAreDistinct(t *testing.T) {
	seen := map[Mode]bool{}
	for _, m := range ModeMembers() {
		if seen[m] {
			t.Errorf("duplicate Mode %#x", uint32(m))
		}
		seen[m] = true
	}
	if len(TimeUnitMembers()) != 8 {
		t.Errorf("TimeUnitMembers has %d entries, want 8", len(TimeUnitMembers()))
	}
}

// Integration test - only runs if FMOD is available
func TestLoadFMOD(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping FMOD load test in short mode")
	}

	if err := Load(Options{}); err != nil {
		t.Skipf("FMOD not available: %v", err)
	}

	if !IsLoaded() {
		t.Error("IsLoaded should be true after successful Load")
	}
	if Channel().GetVolume == nil {
		t.Error("Channel table should be populated after Load")
	}
	t.Logf("FMOD loaded: studio=%v", HasStudio())
}
