//go:build !ios && !android && (amd64 || arm64)

// Package bindings handles loading the FMOD shared libraries and registering
// function bindings using purego.
//
// Each native API surface is a struct of func fields (ChannelFuncs,
// VCAFuncs, DebugFuncs). The fields stay nil until Load succeeds; callers
// treat a nil field as ErrNotLoaded.
package bindings

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/ebitengine/purego"

	"github.com/obinnaokechukwu/fmodgo/internal/platform"
	"github.com/obinnaokechukwu/fmodgo/logging"
)

// ErrNotLoaded is returned when FMOD functions are called before Load().
var ErrNotLoaded = errors.New("fmodgo: FMOD libraries not loaded; call fmodgo.Init() first")

// ErrLibraryNotFound is returned when a required FMOD library cannot be found.
var ErrLibraryNotFound = errors.New("fmodgo: FMOD library not found")

// Library versions to try, newest first. FMOD 2.03 ships .so.14, 2.02 .so.13.
var libraryVersions = []int{14, 13, 12}

// Options controls how Load finds the libraries.
type Options struct {
	// SearchPaths are tried before the platform defaults.
	SearchPaths []string

	// Logging loads the logging builds (libfmodL, libfmodstudioL), which are
	// the only ones that emit debug messages.
	Logging bool

	// Logger receives loader diagnostics. Nil uses logging.New(nil).
	Logger logging.Logger
}

// Library handles
var (
	libCore   uintptr
	libStudio uintptr

	loaded   bool
	loadOnce sync.Once
	loadErr  error
)

// IsLoaded returns true if the core FMOD library has been successfully loaded.
func IsLoaded() bool {
	return loaded
}

// HasStudio returns true if the FMOD Studio library is available.
func HasStudio() bool {
	return libStudio != 0
}

// Load loads the FMOD libraries and registers all function bindings.
// It is safe to call multiple times; only the first call's options are used.
func Load(opts Options) error {
	loadOnce.Do(func() {
		loadErr = doLoad(opts)
		if loadErr == nil {
			loaded = true
		}
	})
	return loadErr
}

func doLoad(opts Options) error {
	log := opts.Logger
	if log == nil {
		log = logging.New(nil)
	}
	log = log.With("component", "bindings")

	core, studio := "fmod", "fmodstudio"
	if opts.Logging {
		core, studio = "fmodL", "fmodstudioL"
	}
	paths := append(append([]string(nil), opts.SearchPaths...), LibrarySearchPaths()...)

	var err error

	// 1. Core API (required)
	libCore, err = loadLibrary(log, core, paths)
	if err != nil {
		return fmt.Errorf("loading lib%s: %w", core, err)
	}

	// 2. Studio API (optional; depends on core)
	libStudio, err = loadLibrary(log, studio, paths)
	if err != nil {
		log.Info(context.Background(), "FMOD Studio not available", "error", err)
		libStudio = 0
	}

	channelFuncs.register(libCore)
	debugFuncs.register(libCore)
	if libStudio != 0 {
		vcaFuncs.register(libStudio)
	}
	return nil
}

// loadLibrary opens the first candidate for name that loads.
func loadLibrary(log logging.Logger, name string, paths []string) (uintptr, error) {
	ctx := context.Background()

	for _, dir := range paths {
		for _, candidate := range FindLibrary(dir, name) {
			lib, err := tryOpen(candidate)
			if err == nil {
				log.Debug(ctx, "loaded library", "name", name, "path", candidate)
				return lib, nil
			}
			log.Debug(ctx, "library candidate failed", "path", candidate, "error", err)
		}
	}

	// Let the dynamic loader search, versioned names first.
	for _, ver := range append(append([]int(nil), libraryVersions...), 0) {
		libName := platform.FormatLibraryName(name, ver)
		if lib, err := tryOpen(libName); err == nil {
			log.Debug(ctx, "loaded library", "name", name, "path", libName)
			return lib, nil
		}
	}

	return 0, fmt.Errorf("%w: %s", ErrLibraryNotFound, name)
}

// FindLibrary returns the files in dir that look like library name, newest
// version first. A missing or unreadable dir yields no candidates.
func FindLibrary(dir, name string) []string {
	if dir == "" {
		return nil
	}
	matches, err := doublestar.Glob(os.DirFS(dir), platform.LibraryPattern(name))
	if err != nil || len(matches) == 0 {
		return nil
	}
	sort.Sort(sort.Reverse(sort.StringSlice(matches)))
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = filepath.Join(dir, m)
	}
	return out
}

// tryOpen attempts to open a library with RTLD_NOW | RTLD_GLOBAL.
// fmodstudio resolves core symbols through the global namespace.
func tryOpen(path string) (uintptr, error) {
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	return lib, nil
}

// LibrarySearchPaths returns the platform default directories to search.
func LibrarySearchPaths() []string {
	var paths []string

	if p := os.Getenv("FMOD_LIBRARY_PATH"); p != "" {
		paths = append(paths, filepath.SplitList(p)...)
	}

	switch runtime.GOOS {
	case "linux", "freebsd":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/usr/local/lib",
			"/usr/lib",
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib/aarch64-linux-gnu",
			"/opt/fmod/lib",
		)

	case "darwin":
		if dyldPath := os.Getenv("DYLD_LIBRARY_PATH"); dyldPath != "" {
			paths = append(paths, filepath.SplitList(dyldPath)...)
		}
		paths = append(paths,
			"/opt/homebrew/lib",
			"/usr/local/lib",
			"/opt/fmod/lib",
		)

	case "windows":
		if exe, err := os.Executable(); err == nil {
			paths = append(paths, filepath.Dir(exe))
		}
		if winPath := os.Getenv("PATH"); winPath != "" {
			paths = append(paths, filepath.SplitList(winPath)...)
		}
		paths = append(paths,
			`C:\Program Files (x86)\FMOD SoundSystem\FMOD Studio API Windows\api\core\lib\x64`,
			`C:\Program Files (x86)\FMOD SoundSystem\FMOD Studio API Windows\api\studio\lib\x64`,
		)
	}

	return paths
}

// LibCore returns the core library handle.
func LibCore() uintptr {
	return libCore
}

// LibStudio returns the studio library handle, or 0 if it is not loaded.
func LibStudio() uintptr {
	return libStudio
}

// binding pairs a func field with the native symbol it is bound to.
type binding struct {
	fptr any
	name string
}

func registerAll(lib uintptr, bs []binding) {
	for _, b := range bs {
		purego.RegisterLibFunc(b.fptr, lib, b.name)
	}
}
