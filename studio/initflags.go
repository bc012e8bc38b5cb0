package studio

import "strings"

// InitFlags configures Studio system initialization.
type InitFlags uint32

const (
	InitNormal              InitFlags = 0x00000000 // Initialize normally
	InitLiveUpdate          InitFlags = 0x00000001 // Enable live update
	InitAllowMissingPlugins InitFlags = 0x00000002 // Load banks that reference missing plugins
	InitSynchronousUpdate   InitFlags = 0x00000004 // Process on the calling thread
	InitDeferredCallbacks   InitFlags = 0x00000008 // Defer timeline callbacks to the main update
	InitLoadFromUpdate      InitFlags = 0x00000010 // Drive bank loading from System::update
	InitMemoryTracking      InitFlags = 0x00000020 // Track memory per bank and event
)

var initFlagNames = []struct {
	flag InitFlags
	name string
}{
	{InitLiveUpdate, "liveupdate"},
	{InitAllowMissingPlugins, "allow_missing_plugins"},
	{InitSynchronousUpdate, "synchronous_update"},
	{InitDeferredCallbacks, "deferred_callbacks"},
	{InitLoadFromUpdate, "load_from_update"},
	{InitMemoryTracking, "memory_tracking"},
}

func (f InitFlags) String() string {
	if f == InitNormal {
		return "normal"
	}
	var parts []string
	rest := f
	for _, n := range initFlagNames {
		if f&n.flag != 0 {
			parts = append(parts, n.name)
			rest &^= n.flag
		}
	}
	if rest != 0 {
		parts = append(parts, "unknown")
	}
	return strings.Join(parts, "|")
}
