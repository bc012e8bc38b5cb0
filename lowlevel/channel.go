//go:build !ios && !android && (amd64 || arm64)

package lowlevel

import (
	"fmt"

	"github.com/obinnaokechukwu/fmodgo/handle"
	"github.com/obinnaokechukwu/fmodgo/internal/bindings"
	"github.com/obinnaokechukwu/fmodgo/internal/checked"
	"github.com/obinnaokechukwu/fmodgo/result"
)

// Channel wraps an FMOD_CHANNEL*.
//
// Channels are values. The suppression toggles belong to the value, so a
// copy carries the toggles it had when it was copied and changing them on
// one copy does not affect the other. Equality and Hash follow the native
// pointer only.
type Channel struct {
	ref    handle.Ref
	fns    *bindings.ChannelFuncs
	policy result.Policy
}

// ChannelFromNative wraps p. A zero p is rejected with an error matching
// result.ErrInvalidArgument. Both toggles start off.
func ChannelFromNative(p uintptr) (Channel, error) {
	return newChannel(bindings.Channel(), p)
}

func newChannel(fns *bindings.ChannelFuncs, p uintptr) (Channel, error) {
	ref, err := handle.New(p)
	if err != nil {
		return Channel{}, fmt.Errorf("lowlevel: channel: %w", err)
	}
	return Channel{ref: ref, fns: fns}, nil
}

// Native returns the FMOD_CHANNEL*.
func (c Channel) Native() uintptr { return c.ref.Pointer() }

// Equal reports whether c and o wrap the same native channel.
func (c Channel) Equal(o Channel) bool { return c.ref.Equal(o.ref) }

// Hash is consistent with Equal.
func (c Channel) Hash() uint64 { return c.ref.Hash() }

func (c Channel) String() string { return "Channel(" + c.ref.String() + ")" }

// SuppressInvalidHandle reports whether FMOD_ERR_INVALID_HANDLE is tolerated.
func (c Channel) SuppressInvalidHandle() bool { return c.policy.SuppressInvalidHandle }

// SetSuppressInvalidHandle sets whether FMOD_ERR_INVALID_HANDLE is tolerated.
func (c *Channel) SetSuppressInvalidHandle(v bool) { c.policy.SuppressInvalidHandle = v }

// SuppressHandleStolen reports whether FMOD_ERR_CHANNEL_STOLEN is tolerated.
func (c Channel) SuppressHandleStolen() bool { return c.policy.SuppressHandleStolen }

// SetSuppressHandleStolen sets whether FMOD_ERR_CHANNEL_STOLEN is tolerated.
func (c *Channel) SetSuppressHandleStolen(v bool) { c.policy.SuppressHandleStolen = v }

// Policy returns both toggles.
func (c Channel) Policy() result.Policy { return c.policy }

// WithPolicy returns a copy of c using p.
func (c Channel) WithPolicy(p result.Policy) Channel {
	c.policy = p
	return c
}

func (c Channel) funcs() *bindings.ChannelFuncs {
	if c.fns == nil {
		return bindings.Channel()
	}
	return c.fns
}

func (c Channel) h() uintptr { return c.ref.Pointer() }

// Frequency returns the playback frequency in Hz.
func (c Channel) Frequency() (result.Optional[float32], error) {
	return checked.Query(c.h(), c.policy, "FMOD_Channel_GetFrequency", c.funcs().GetFrequency)
}

// SetFrequency sets the playback frequency in Hz.
func (c Channel) SetFrequency(hz float32) error {
	return checked.Update(c.h(), c.policy, "FMOD_Channel_SetFrequency", c.funcs().SetFrequency, hz)
}

// Priority returns the voice priority, 0 (most important) to 256.
func (c Channel) Priority() (result.Optional[int], error) {
	v, err := checked.Query(c.h(), c.policy, "FMOD_Channel_GetPriority", c.funcs().GetPriority)
	return result.Map(v, toInt), err
}

// SetPriority sets the voice priority.
func (c Channel) SetPriority(priority int) error {
	return checked.Update(c.h(), c.policy, "FMOD_Channel_SetPriority", c.funcs().SetPriority, int32(priority))
}

// Position returns the playback position in unit.
func (c Channel) Position(unit TimeUnit) (result.Optional[uint32], error) {
	nu, err := timeUnits.Forward(unit)
	if err != nil {
		return result.None[uint32](), err
	}
	fn := c.funcs().GetPosition
	if fn == nil {
		return result.None[uint32](), bindings.ErrNotLoaded
	}
	var pos uint32
	code := result.Result(fn(c.h(), &pos, nu))
	return result.CheckValue(code, pos, "FMOD_Channel_GetPosition", c.policy)
}

// SetPosition seeks to position, expressed in unit.
func (c Channel) SetPosition(position uint32, unit TimeUnit) error {
	nu, err := timeUnits.Forward(unit)
	if err != nil {
		return err
	}
	fn := c.funcs().SetPosition
	if fn == nil {
		return bindings.ErrNotLoaded
	}
	_, err = result.Check(result.Result(fn(c.h(), position, nu)), "FMOD_Channel_SetPosition", c.policy)
	return err
}

// ChannelGroup returns the group c is routed into. None is also returned
// when FMOD reports no group.
func (c Channel) ChannelGroup() (result.Optional[ChannelGroup], error) {
	p, err := checked.Query(c.h(), c.policy, "FMOD_Channel_GetChannelGroup", c.funcs().GetChannelGroup)
	if err != nil {
		return result.None[ChannelGroup](), err
	}
	return result.FlatMap(p, func(p uintptr) (result.Optional[ChannelGroup], error) {
		if p == 0 {
			return result.None[ChannelGroup](), nil
		}
		g, err := ChannelGroupFromNative(p)
		return result.Some(g), err
	})
}

// SetChannelGroup routes c into g.
func (c Channel) SetChannelGroup(g ChannelGroup) error {
	return checked.Update(c.h(), c.policy, "FMOD_Channel_SetChannelGroup", c.funcs().SetChannelGroup, g.Native())
}

// LoopCount returns the remaining loop count; -1 loops forever.
func (c Channel) LoopCount() (result.Optional[int], error) {
	v, err := checked.Query(c.h(), c.policy, "FMOD_Channel_GetLoopCount", c.funcs().GetLoopCount)
	return result.Map(v, toInt), err
}

// SetLoopCount sets the loop count; -1 loops forever, 0 plays once.
func (c Channel) SetLoopCount(count int) error {
	return checked.Update(c.h(), c.policy, "FMOD_Channel_SetLoopCount", c.funcs().SetLoopCount, int32(count))
}

// Paused reports whether c is paused.
func (c Channel) Paused() (result.Optional[bool], error) {
	return checked.QueryBool(c.h(), c.policy, "FMOD_Channel_GetPaused", c.funcs().GetPaused)
}

// SetPaused pauses or resumes c.
func (c Channel) SetPaused(paused bool) error {
	return checked.UpdateBool(c.h(), c.policy, "FMOD_Channel_SetPaused", c.funcs().SetPaused, paused)
}

// Volume returns the linear volume.
func (c Channel) Volume() (result.Optional[float32], error) {
	return checked.Query(c.h(), c.policy, "FMOD_Channel_GetVolume", c.funcs().GetVolume)
}

// SetVolume sets the linear volume. 1 is unity gain.
func (c Channel) SetVolume(volume float32) error {
	return checked.Update(c.h(), c.policy, "FMOD_Channel_SetVolume", c.funcs().SetVolume, volume)
}

// VolumeRamp reports whether volume changes are ramped.
func (c Channel) VolumeRamp() (result.Optional[bool], error) {
	return checked.QueryBool(c.h(), c.policy, "FMOD_Channel_GetVolumeRamp", c.funcs().GetVolumeRamp)
}

// SetVolumeRamp enables or disables volume ramping.
func (c Channel) SetVolumeRamp(ramp bool) error {
	return checked.UpdateBool(c.h(), c.policy, "FMOD_Channel_SetVolumeRamp", c.funcs().SetVolumeRamp, ramp)
}

// Audibility returns the combined volume after 3D, occlusion and group
// attenuation.
func (c Channel) Audibility() (result.Optional[float32], error) {
	return checked.Query(c.h(), c.policy, "FMOD_Channel_GetAudibility", c.funcs().GetAudibility)
}

// Pitch returns the pitch multiplier.
func (c Channel) Pitch() (result.Optional[float32], error) {
	return checked.Query(c.h(), c.policy, "FMOD_Channel_GetPitch", c.funcs().GetPitch)
}

// SetPitch sets the pitch multiplier. 1 is the original pitch.
func (c Channel) SetPitch(pitch float32) error {
	return checked.Update(c.h(), c.policy, "FMOD_Channel_SetPitch", c.funcs().SetPitch, pitch)
}

// Mute reports whether c is muted.
func (c Channel) Mute() (result.Optional[bool], error) {
	return checked.QueryBool(c.h(), c.policy, "FMOD_Channel_GetMute", c.funcs().GetMute)
}

// SetMute mutes or unmutes c.
func (c Channel) SetMute(mute bool) error {
	return checked.UpdateBool(c.h(), c.policy, "FMOD_Channel_SetMute", c.funcs().SetMute, mute)
}

// SetPan pans c from -1 (left) to 1 (right).
func (c Channel) SetPan(pan float32) error {
	return checked.Update(c.h(), c.policy, "FMOD_Channel_SetPan", c.funcs().SetPan, pan)
}

// IsPlaying reports whether c is playing.
func (c Channel) IsPlaying() (result.Optional[bool], error) {
	return checked.QueryBool(c.h(), c.policy, "FMOD_Channel_IsPlaying", c.funcs().IsPlaying)
}

// Stop stops c. It returns false when the policy suppressed a failure.
func (c Channel) Stop() (bool, error) {
	return checked.Do(c.h(), c.policy, "FMOD_Channel_Stop", c.funcs().Stop)
}

// Mode returns the playback mode bits.
func (c Channel) Mode() (result.Optional[Mode], error) {
	v, err := checked.Query(c.h(), c.policy, "FMOD_Channel_GetMode", c.funcs().GetMode)
	if err != nil {
		return result.None[Mode](), err
	}
	return result.FlatMap(v, func(m bindings.Mode) (result.Optional[Mode], error) {
		out, err := modes.Backward(m)
		if err != nil {
			return result.None[Mode](), err
		}
		return result.Some(out), nil
	})
}

// SetMode sets the playback mode bits.
func (c Channel) SetMode(mode Mode) error {
	nm, err := modes.Forward(mode)
	if err != nil {
		return err
	}
	return checked.Update(c.h(), c.policy, "FMOD_Channel_SetMode", c.funcs().SetMode, nm)
}

// LowPassGain returns the gain of the built-in low pass filter.
func (c Channel) LowPassGain() (result.Optional[float32], error) {
	return checked.Query(c.h(), c.policy, "FMOD_Channel_GetLowPassGain", c.funcs().GetLowPassGain)
}

// SetLowPassGain sets the gain of the built-in low pass filter, 0 to 1.
func (c Channel) SetLowPassGain(gain float32) error {
	return checked.Update(c.h(), c.policy, "FMOD_Channel_SetLowPassGain", c.funcs().SetLowPassGain, gain)
}

// IsVirtual reports whether c was made virtual by the voice limiter.
func (c Channel) IsVirtual() (result.Optional[bool], error) {
	return checked.QueryBool(c.h(), c.policy, "FMOD_Channel_IsVirtual", c.funcs().IsVirtual)
}

// CurrentSound returns the sound c is playing. None is also returned when
// nothing is playing.
func (c Channel) CurrentSound() (result.Optional[Sound], error) {
	p, err := checked.Query(c.h(), c.policy, "FMOD_Channel_GetCurrentSound", c.funcs().GetCurrentSound)
	if err != nil {
		return result.None[Sound](), err
	}
	return result.FlatMap(p, func(p uintptr) (result.Optional[Sound], error) {
		if p == 0 {
			return result.None[Sound](), nil
		}
		s, err := SoundFromNative(p)
		return result.Some(s), err
	})
}

// Index returns the index of c in the system channel pool.
func (c Channel) Index() (result.Optional[int], error) {
	v, err := checked.Query(c.h(), c.policy, "FMOD_Channel_GetIndex", c.funcs().GetIndex)
	return result.Map(v, toInt), err
}

func toInt(v int32) int { return int(v) }
