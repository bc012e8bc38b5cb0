//go:build !ios && !android && (amd64 || arm64)

package lowlevel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obinnaokechukwu/fmodgo/internal/bindings"
	"github.com/obinnaokechukwu/fmodgo/result"
)

const chPtr uintptr = 0xc0ffee

func okCode() int32 { return int32(result.OK) }

func newTestChannel(t *testing.T, fns *bindings.ChannelFuncs) Channel {
	t.Helper()
	ch, err := newChannel(fns, chPtr)
	require.NoError(t, err)
	return ch
}

func TestChannelFromNativeRejectsNull(t *testing.T) {
	_, err := ChannelFromNative(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, result.ErrInvalidArgument)
}

func TestChannelIdentity(t *testing.T) {
	a, err := ChannelFromNative(chPtr)
	require.NoError(t, err)
	b, err := ChannelFromNative(chPtr)
	require.NoError(t, err)
	b.SetSuppressHandleStolen(true)

	assert.True(t, a.Equal(b), "toggles must not affect equality")
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, chPtr, a.Native())

	other, err := ChannelFromNative(chPtr + 8)
	require.NoError(t, err)
	assert.False(t, a.Equal(other))
}

func TestTogglesAreInstanceLocal(t *testing.T) {
	a := newTestChannel(t, &bindings.ChannelFuncs{})
	b := a
	b.SetSuppressInvalidHandle(true)

	assert.False(t, a.SuppressInvalidHandle())
	assert.True(t, b.SuppressInvalidHandle())
	assert.False(t, b.SuppressHandleStolen())

	c := a.WithPolicy(result.SuppressAll())
	assert.Equal(t, result.SuppressAll(), c.Policy())
	assert.Equal(t, result.Policy{}, a.Policy())
}

func stolenVolume() *bindings.ChannelFuncs {
	return &bindings.ChannelFuncs{
		GetVolume: func(_ uintptr, v *float32) int32 {
			*v = 0.25
			return int32(result.ErrChannelStolen)
		},
	}
}

func TestVolumeStolenSurfacesByDefault(t *testing.T) {
	ch := newTestChannel(t, stolenVolume())

	v, err := ch.Volume()
	require.Error(t, err)
	assert.True(t, result.IsHandleStolen(err))
	assert.Equal(t, result.ErrChannelStolen, result.Code(err))
	assert.False(t, v.IsPresent())
}

func TestVolumeStolenSuppressed(t *testing.T) {
	ch := newTestChannel(t, stolenVolume())
	ch.SetSuppressHandleStolen(true)

	v, err := ch.Volume()
	require.NoError(t, err)
	assert.False(t, v.IsPresent())
}

func TestInvalidHandleFlagDoesNotCoverStolen(t *testing.T) {
	ch := newTestChannel(t, stolenVolume())
	ch.SetSuppressInvalidHandle(true)

	_, err := ch.Volume()
	assert.True(t, result.IsHandleStolen(err))
}

func TestUnexpectedFailureIgnoresToggles(t *testing.T) {
	ch := newTestChannel(t, &bindings.ChannelFuncs{
		GetPitch: func(uintptr, *float32) int32 { return int32(result.ErrInternal) },
	}).WithPolicy(result.SuppressAll())

	_, err := ch.Pitch()
	require.Error(t, err)
	assert.Equal(t, result.KindUnexpected, result.KindOfError(err))
	assert.Contains(t, err.Error(), "FMOD_Channel_GetPitch")
}

func TestGettersReturnNativeValues(t *testing.T) {
	ch := newTestChannel(t, &bindings.ChannelFuncs{
		GetFrequency: func(_ uintptr, v *float32) int32 { *v = 44100; return okCode() },
		GetPriority:  func(_ uintptr, v *int32) int32 { *v = 128; return okCode() },
		GetLoopCount: func(_ uintptr, v *int32) int32 { *v = -1; return okCode() },
		GetPaused:    func(_ uintptr, v *int32) int32 { *v = 1; return okCode() },
		GetMute:      func(_ uintptr, v *int32) int32 { *v = 0; return okCode() },
		IsPlaying:    func(_ uintptr, v *int32) int32 { *v = 1; return okCode() },
		IsVirtual:    func(_ uintptr, v *int32) int32 { *v = 0; return okCode() },
		GetIndex:     func(_ uintptr, v *int32) int32 { *v = 7; return okCode() },
		GetMode: func(_ uintptr, v *bindings.Mode) int32 {
			*v = bindings.FMOD_LOOP_NORMAL | bindings.FMOD_2D
			return okCode()
		},
	})

	freq, err := ch.Frequency()
	require.NoError(t, err)
	assert.Equal(t, result.Some[float32](44100), freq)

	prio, err := ch.Priority()
	require.NoError(t, err)
	assert.Equal(t, result.Some(128), prio)

	loops, err := ch.LoopCount()
	require.NoError(t, err)
	assert.Equal(t, result.Some(-1), loops)

	paused, err := ch.Paused()
	require.NoError(t, err)
	assert.Equal(t, result.Some(true), paused)

	mute, err := ch.Mute()
	require.NoError(t, err)
	assert.Equal(t, result.Some(false), mute)

	playing, err := ch.IsPlaying()
	require.NoError(t, err)
	assert.Equal(t, result.Some(true), playing)

	virtual, err := ch.IsVirtual()
	require.NoError(t, err)
	assert.Equal(t, result.Some(false), virtual)

	idx, err := ch.Index()
	require.NoError(t, err)
	assert.Equal(t, result.Some(7), idx)

	mode, err := ch.Mode()
	require.NoError(t, err)
	assert.Equal(t, result.Some(ModeLoopNormal|Mode2D), mode)
}

func TestSettersPassArguments(t *testing.T) {
	var (
		volume float32
		paused int32
		mode   bindings.Mode
		group  uintptr
	)
	ch := newTestChannel(t, &bindings.ChannelFuncs{
		SetVolume:       func(_ uintptr, v float32) int32 { volume = v; return okCode() },
		SetPaused:       func(_ uintptr, v int32) int32 { paused = v; return okCode() },
		SetMode:         func(_ uintptr, v bindings.Mode) int32 { mode = v; return okCode() },
		SetChannelGroup: func(_ uintptr, g uintptr) int32 { group = g; return okCode() },
	})

	require.NoError(t, ch.SetVolume(0.5))
	require.NoError(t, ch.SetPaused(true))
	require.NoError(t, ch.SetMode(ModeLoopNormal|Mode3D))
	g, err := ChannelGroupFromNative(0x42)
	require.NoError(t, err)
	require.NoError(t, ch.SetChannelGroup(g))

	assert.Equal(t, float32(0.5), volume)
	assert.Equal(t, int32(1), paused)
	assert.Equal(t, bindings.FMOD_LOOP_NORMAL|bindings.FMOD_3D, mode)
	assert.Equal(t, uintptr(0x42), group)
}

func TestSetterSuppressedIsNotAnError(t *testing.T) {
	ch := newTestChannel(t, &bindings.ChannelFuncs{
		SetVolume: func(uintptr, float32) int32 { return int32(result.ErrInvalidHandle) },
	})
	require.Error(t, ch.SetVolume(1))

	ch.SetSuppressInvalidHandle(true)
	assert.NoError(t, ch.SetVolume(1))
}

func TestStop(t *testing.T) {
	code := result.OK
	ch := newTestChannel(t, &bindings.ChannelFuncs{
		Stop: func(uintptr) int32 { return int32(code) },
	})

	stopped, err := ch.Stop()
	require.NoError(t, err)
	assert.True(t, stopped)

	code = result.ErrChannelStolen
	ch.SetSuppressHandleStolen(true)
	stopped, err = ch.Stop()
	require.NoError(t, err)
	assert.False(t, stopped)
}

func TestPositionTranslatesUnit(t *testing.T) {
	var unit bindings.TimeUnit
	ch := newTestChannel(t, &bindings.ChannelFuncs{
		GetPosition: func(_ uintptr, pos *uint32, u bindings.TimeUnit) int32 {
			unit = u
			*pos = 1024
			return okCode()
		},
	})

	pos, err := ch.Position(TimeUnitPCM)
	require.NoError(t, err)
	assert.Equal(t, result.Some[uint32](1024), pos)
	assert.Equal(t, bindings.FMOD_TIMEUNIT_PCM, unit)
}

func TestPositionRejectsUnknownUnit(t *testing.T) {
	called := false
	ch := newTestChannel(t, &bindings.ChannelFuncs{
		GetPosition: func(uintptr, *uint32, bindings.TimeUnit) int32 {
			called = true
			return okCode()
		},
	})

	_, err := ch.Position(TimeUnit(0x3))
	require.Error(t, err)
	assert.ErrorIs(t, err, result.ErrInvalidArgument)
	assert.False(t, called)
}

func TestNullReferencesAreNone(t *testing.T) {
	ch := newTestChannel(t, &bindings.ChannelFuncs{
		GetChannelGroup: func(_ uintptr, g *uintptr) int32 { *g = 0; return okCode() },
		GetCurrentSound: func(_ uintptr, s *uintptr) int32 { *s = 0; return okCode() },
	})

	g, err := ch.ChannelGroup()
	require.NoError(t, err)
	assert.False(t, g.IsPresent())

	s, err := ch.CurrentSound()
	require.NoError(t, err)
	assert.False(t, s.IsPresent())
}

func TestReferencesAreWrapped(t *testing.T) {
	ch := newTestChannel(t, &bindings.ChannelFuncs{
		GetChannelGroup: func(_ uintptr, g *uintptr) int32 { *g = 0x10; return okCode() },
		GetCurrentSound: func(_ uintptr, s *uintptr) int32 { *s = 0x20; return okCode() },
	})

	g, err := ch.ChannelGroup()
	require.NoError(t, err)
	grp, present := g.Get()
	require.True(t, present)
	assert.Equal(t, uintptr(0x10), grp.Native())

	s, err := ch.CurrentSound()
	require.NoError(t, err)
	snd, present := s.Get()
	require.True(t, present)
	assert.Equal(t, uintptr(0x20), snd.Native())
}

func TestNotLoaded(t *testing.T) {
	ch, err := ChannelFromNative(chPtr)
	require.NoError(t, err)

	_, err = ch.Volume()
	assert.ErrorIs(t, err, bindings.ErrNotLoaded)
	assert.ErrorIs(t, ch.SetVolume(1), bindings.ErrNotLoaded)
	_, err = ch.Position(TimeUnitMS)
	assert.ErrorIs(t, err, bindings.ErrNotLoaded)
	_, err = ch.FadePoints()
	assert.ErrorIs(t, err, bindings.ErrNotLoaded)
	assert.ErrorIs(t, ch.SetCallback(func(Channel, CallbackType, uintptr, uintptr) {}), bindings.ErrNotLoaded)
}

func TestEquivalencesAreValid(t *testing.T) {
	assert.NoError(t, timeUnits.Validate())
	assert.NoError(t, modes.Validate())
	assert.NoError(t, callbackTypes.Validate())
}
