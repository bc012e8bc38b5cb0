//go:build !ios && !android && (amd64 || arm64)

package studio

import (
	"github.com/obinnaokechukwu/fmodgo/equiv"
	"github.com/obinnaokechukwu/fmodgo/internal/bindings"
)

var initFlags = equiv.Register(equiv.Declare(
	"studio.InitFlags <-> FMOD_STUDIO_INITFLAGS",
	InitFlagsMembers, bindings.InitFlagsMembers,
	equiv.Flags(),
))

// Native returns the FMOD_STUDIO_INITFLAGS value of f, for callers that
// initialize the Studio system themselves.
func (f InitFlags) Native() (uint32, error) {
	n, err := initFlags.Forward(f)
	return uint32(n), err
}

// InitFlagsFromNative translates an FMOD_STUDIO_INITFLAGS value.
func InitFlagsFromNative(v uint32) (InitFlags, error) {
	return initFlags.Backward(bindings.InitFlags(v))
}
