package lowlevel

import (
	"fmt"

	"github.com/obinnaokechukwu/fmodgo/handle"
)

// ChannelGroup wraps an FMOD_CHANNELGROUP*.
type ChannelGroup struct {
	ref handle.Ref
}

// ChannelGroupFromNative wraps p. A zero p is rejected.
func ChannelGroupFromNative(p uintptr) (ChannelGroup, error) {
	ref, err := handle.New(p)
	if err != nil {
		return ChannelGroup{}, fmt.Errorf("lowlevel: channel group: %w", err)
	}
	return ChannelGroup{ref: ref}, nil
}

// Native returns the FMOD_CHANNELGROUP*.
func (g ChannelGroup) Native() uintptr { return g.ref.Pointer() }

// Equal reports whether g and o wrap the same native group.
func (g ChannelGroup) Equal(o ChannelGroup) bool { return g.ref.Equal(o.ref) }

// Hash is consistent with Equal.
func (g ChannelGroup) Hash() uint64 { return g.ref.Hash() }

func (g ChannelGroup) String() string { return "ChannelGroup(" + g.ref.String() + ")" }

// Sound wraps an FMOD_SOUND*.
type Sound struct {
	ref handle.Ref
}

// SoundFromNative wraps p. A zero p is rejected.
func SoundFromNative(p uintptr) (Sound, error) {
	ref, err := handle.New(p)
	if err != nil {
		return Sound{}, fmt.Errorf("lowlevel: sound: %w", err)
	}
	return Sound{ref: ref}, nil
}

// Native returns the FMOD_SOUND*.
func (s Sound) Native() uintptr { return s.ref.Pointer() }

// Equal reports whether s and o wrap the same native sound.
func (s Sound) Equal(o Sound) bool { return s.ref.Equal(o.ref) }

// Hash is consistent with Equal.
func (s Sound) Hash() uint64 { return s.ref.Hash() }

func (s Sound) String() string { return "Sound(" + s.ref.String() + ")" }
