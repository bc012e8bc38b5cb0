//go:build !ios && !android && (amd64 || arm64)

package bindings

// DebugFuncs binds FMOD_Debug_Initialize.
type DebugFuncs struct {
	// Initialize(flags, mode, callback, filename). filename may be nil.
	Initialize func(flags DebugFlags, mode DebugMode, callback uintptr, filename *byte) int32
}

var debugFuncs DebugFuncs

// Debug returns the process-wide FMOD_Debug_* table.
func Debug() *DebugFuncs {
	return &debugFuncs
}

func (f *DebugFuncs) register(lib uintptr) {
	registerAll(lib, []binding{
		{&f.Initialize, "FMOD_Debug_Initialize"},
	})
}
