//go:build !ios && !android && (amd64 || arm64)

package bindings

// ChannelFuncs binds the FMOD_Channel_* API (fmod.h). Every function takes
// the FMOD_CHANNEL* first and returns an FMOD_RESULT. FMOD_BOOL is int32.
type ChannelFuncs struct {
	SetFrequency func(channel uintptr, frequency float32) int32
	GetFrequency func(channel uintptr, frequency *float32) int32
	SetPriority  func(channel uintptr, priority int32) int32
	GetPriority  func(channel uintptr, priority *int32) int32

	SetPosition func(channel uintptr, position uint32, posType TimeUnit) int32
	GetPosition func(channel uintptr, position *uint32, posType TimeUnit) int32

	SetChannelGroup func(channel uintptr, group uintptr) int32
	GetChannelGroup func(channel uintptr, group *uintptr) int32

	SetLoopCount  func(channel uintptr, loopCount int32) int32
	GetLoopCount  func(channel uintptr, loopCount *int32) int32
	SetLoopPoints func(channel uintptr, loopStart uint32, startType TimeUnit, loopEnd uint32, endType TimeUnit) int32
	GetLoopPoints func(channel uintptr, loopStart *uint32, startType TimeUnit, loopEnd *uint32, endType TimeUnit) int32

	Stop          func(channel uintptr) int32
	SetPaused     func(channel uintptr, paused int32) int32
	GetPaused     func(channel uintptr, paused *int32) int32
	SetVolume     func(channel uintptr, volume float32) int32
	GetVolume     func(channel uintptr, volume *float32) int32
	SetVolumeRamp func(channel uintptr, ramp int32) int32
	GetVolumeRamp func(channel uintptr, ramp *int32) int32
	GetAudibility func(channel uintptr, audibility *float32) int32
	SetPitch      func(channel uintptr, pitch float32) int32
	GetPitch      func(channel uintptr, pitch *float32) int32
	SetMute       func(channel uintptr, mute int32) int32
	GetMute       func(channel uintptr, mute *int32) int32
	SetPan        func(channel uintptr, pan float32) int32
	IsPlaying     func(channel uintptr, isPlaying *int32) int32
	SetMode       func(channel uintptr, mode Mode) int32
	GetMode       func(channel uintptr, mode *Mode) int32

	SetLowPassGain func(channel uintptr, gain float32) int32
	GetLowPassGain func(channel uintptr, gain *float32) int32

	GetDSPClock      func(channel uintptr, dspClock, parentClock *uint64) int32
	SetDelay         func(channel uintptr, dspClockStart, dspClockEnd uint64, stopChannels int32) int32
	GetDelay         func(channel uintptr, dspClockStart, dspClockEnd *uint64, stopChannels *int32) int32
	AddFadePoint     func(channel uintptr, dspClock uint64, volume float32) int32
	SetFadePointRamp func(channel uintptr, dspClock uint64, volume float32) int32
	RemoveFadePoints func(channel uintptr, dspClockStart, dspClockEnd uint64) int32
	GetFadePoints    func(channel uintptr, numPoints *uint32, pointDSPClock *uint64, pointVolume *float32) int32

	IsVirtual       func(channel uintptr, isVirtual *int32) int32
	GetCurrentSound func(channel uintptr, sound *uintptr) int32
	GetIndex        func(channel uintptr, index *int32) int32

	SetCallback func(channel uintptr, callback uintptr) int32
	SetUserData func(channel uintptr, userData uintptr) int32
	GetUserData func(channel uintptr, userData *uintptr) int32
}

var channelFuncs ChannelFuncs

// Channel returns the process-wide FMOD_Channel_* table. Its fields are nil
// until Load succeeds.
func Channel() *ChannelFuncs {
	return &channelFuncs
}

func (f *ChannelFuncs) register(lib uintptr) {
	registerAll(lib, []binding{
		{&f.SetFrequency, "FMOD_Channel_SetFrequency"},
		{&f.GetFrequency, "FMOD_Channel_GetFrequency"},
		{&f.SetPriority, "FMOD_Channel_SetPriority"},
		{&f.GetPriority, "FMOD_Channel_GetPriority"},
		{&f.SetPosition, "FMOD_Channel_SetPosition"},
		{&f.GetPosition, "FMOD_Channel_GetPosition"},
		{&f.SetChannelGroup, "FMOD_Channel_SetChannelGroup"},
		{&f.GetChannelGroup, "FMOD_Channel_GetChannelGroup"},
		{&f.SetLoopCount, "FMOD_Channel_SetLoopCount"},
		{&f.GetLoopCount, "FMOD_Channel_GetLoopCount"},
		{&f.SetLoopPoints, "FMOD_Channel_SetLoopPoints"},
		{&f.GetLoopPoints, "FMOD_Channel_GetLoopPoints"},
		{&f.Stop, "FMOD_Channel_Stop"},
		{&f.SetPaused, "FMOD_Channel_SetPaused"},
		{&f.GetPaused, "FMOD_Channel_GetPaused"},
		{&f.SetVolume, "FMOD_Channel_SetVolume"},
		{&f.GetVolume, "FMOD_Channel_GetVolume"},
		{&f.SetVolumeRamp, "FMOD_Channel_SetVolumeRamp"},
		{&f.GetVolumeRamp, "FMOD_Channel_GetVolumeRamp"},
		{&f.GetAudibility, "FMOD_Channel_GetAudibility"},
		{&f.SetPitch, "FMOD_Channel_SetPitch"},
		{&f.GetPitch, "FMOD_Channel_GetPitch"},
		{&f.SetMute, "FMOD_Channel_SetMute"},
		{&f.GetMute, "FMOD_Channel_GetMute"},
		{&f.SetPan, "FMOD_Channel_SetPan"},
		{&f.IsPlaying, "FMOD_Channel_IsPlaying"},
		{&f.SetMode, "FMOD_Channel_SetMode"},
		{&f.GetMode, "FMOD_Channel_GetMode"},
		{&f.SetLowPassGain, "FMOD_Channel_SetLowPassGain"},
		{&f.GetLowPassGain, "FMOD_Channel_GetLowPassGain"},
		{&f.GetDSPClock, "FMOD_Channel_GetDSPClock"},
		{&f.SetDelay, "FMOD_Channel_SetDelay"},
		{&f.GetDelay, "FMOD_Channel_GetDelay"},
		{&f.AddFadePoint, "FMOD_Channel_AddFadePoint"},
		{&f.SetFadePointRamp, "FMOD_Channel_SetFadePointRamp"},
		{&f.RemoveFadePoints, "FMOD_Channel_RemoveFadePoints"},
		{&f.GetFadePoints, "FMOD_Channel_GetFadePoints"},
		{&f.IsVirtual, "FMOD_Channel_IsVirtual"},
		{&f.GetCurrentSound, "FMOD_Channel_GetCurrentSound"},
		{&f.GetIndex, "FMOD_Channel_GetIndex"},
		{&f.SetCallback, "FMOD_Channel_SetCallback"},
		{&f.SetUserData, "FMOD_Channel_SetUserData"},
		{&f.GetUserData, "FMOD_Channel_GetUserData"},
	})
}
