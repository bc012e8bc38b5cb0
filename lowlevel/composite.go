package lowlevel

// LoopPoints is a loop region. Start and End are in the units requested
// from Channel.LoopPoints.
type LoopPoints struct {
	Start uint32
	End   uint32
}

// Loop combines a channel's loop count with its loop region.
type Loop struct {
	Count  int // -1 loops forever, 0 plays once
	Points LoopPoints
}

// DSPClock holds the DSP clock of a channel and of its parent group, in
// output samples.
type DSPClock struct {
	Clock  uint64
	Parent uint64
}

// ChannelDelay is a sample-accurate start/stop window on the parent DSP
// clock. Zero for either clock means "not set".
type ChannelDelay struct {
	DSPClockStart uint64
	DSPClockEnd   uint64
	// StopChannels stops the channel at DSPClockEnd instead of pausing it.
	StopChannels bool
}

// FadePoint is one volume breakpoint on the parent DSP clock.
type FadePoint struct {
	DSPClock uint64
	Volume   float32
}
