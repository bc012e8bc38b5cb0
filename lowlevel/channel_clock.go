//go:build !ios && !android && (amd64 || arm64)

package lowlevel

import (
	"github.com/obinnaokechukwu/fmodgo/internal/bindings"
	"github.com/obinnaokechukwu/fmodgo/internal/checked"
	"github.com/obinnaokechukwu/fmodgo/result"
)

// DSPClock returns the DSP clocks of c and of its parent group.
func (c Channel) DSPClock() (result.Optional[DSPClock], error) {
	fn := c.funcs().GetDSPClock
	if fn == nil {
		return result.None[DSPClock](), bindings.ErrNotLoaded
	}
	var clk DSPClock
	code := result.Result(fn(c.h(), &clk.Clock, &clk.Parent))
	return result.CheckValue(code, clk, "FMOD_Channel_GetDSPClock", c.policy)
}

// Delay returns the start/stop window set by SetDelay.
func (c Channel) Delay() (result.Optional[ChannelDelay], error) {
	fn := c.funcs().GetDelay
	if fn == nil {
		return result.None[ChannelDelay](), bindings.ErrNotLoaded
	}
	var (
		d    ChannelDelay
		stop int32
	)
	code := result.Result(fn(c.h(), &d.DSPClockStart, &d.DSPClockEnd, &stop))
	d.StopChannels = stop != 0
	return result.CheckValue(code, d, "FMOD_Channel_GetDelay", c.policy)
}

// SetDelay schedules c to start and stop on the parent DSP clock.
func (c Channel) SetDelay(d ChannelDelay) error {
	fn := c.funcs().SetDelay
	if fn == nil {
		return bindings.ErrNotLoaded
	}
	code := result.Result(fn(c.h(), d.DSPClockStart, d.DSPClockEnd, bindings.Bool(d.StopChannels)))
	_, err := result.Check(code, "FMOD_Channel_SetDelay", c.policy)
	return err
}

// AddFadePoint adds a volume breakpoint at dspClock. FMOD interpolates
// linearly between points.
func (c Channel) AddFadePoint(dspClock uint64, volume float32) error {
	fn := c.funcs().AddFadePoint
	if fn == nil {
		return bindings.ErrNotLoaded
	}
	code := result.Result(fn(c.h(), dspClock, volume))
	_, err := result.Check(code, "FMOD_Channel_AddFadePoint", c.policy)
	return err
}

// SetFadePointRamp ramps from the current volume to volume, ending at
// dspClock.
func (c Channel) SetFadePointRamp(dspClock uint64, volume float32) error {
	fn := c.funcs().SetFadePointRamp
	if fn == nil {
		return bindings.ErrNotLoaded
	}
	code := result.Result(fn(c.h(), dspClock, volume))
	_, err := result.Check(code, "FMOD_Channel_SetFadePointRamp", c.policy)
	return err
}

// RemoveFadePoints removes the breakpoints between start and end, inclusive.
func (c Channel) RemoveFadePoints(start, end uint64) error {
	fn := c.funcs().RemoveFadePoints
	if fn == nil {
		return bindings.ErrNotLoaded
	}
	code := result.Result(fn(c.h(), start, end))
	_, err := result.Check(code, "FMOD_Channel_RemoveFadePoints", c.policy)
	return err
}

// FadePointCount returns the number of fade points on c.
func (c Channel) FadePointCount() (result.Optional[int], error) {
	fn := c.funcs().GetFadePoints
	if fn == nil {
		return result.None[int](), bindings.ErrNotLoaded
	}
	return c.fadePointCount(fn)
}

func (c Channel) fadePointCount(fn func(uintptr, *uint32, *uint64, *float32) int32) (result.Optional[int], error) {
	return checked.Query(c.h(), c.policy, "FMOD_Channel_GetFadePoints", func(h uintptr, n *int) int32 {
		var num uint32
		code := fn(h, &num, nil, nil)
		*n = int(num)
		return code
	})
}

// FadePoints returns every fade point on c. It asks FMOD for the count and
// then for the points; if either call is suppressed the result is None.
func (c Channel) FadePoints() (result.Optional[[]FadePoint], error) {
	fn := c.funcs().GetFadePoints
	if fn == nil {
		return result.None[[]FadePoint](), bindings.ErrNotLoaded
	}
	count, err := c.fadePointCount(fn)
	if err != nil {
		return result.None[[]FadePoint](), err
	}
	n, ok := count.Get()
	if !ok {
		return result.None[[]FadePoint](), nil
	}
	if n == 0 {
		return result.Some([]FadePoint{}), nil
	}

	clocks := make([]uint64, n)
	volumes := make([]float32, n)
	num := uint32(n)
	code := result.Result(fn(c.h(), &num, &clocks[0], &volumes[0]))
	ok, err = result.Check(code, "FMOD_Channel_GetFadePoints", c.policy)
	if err != nil || !ok {
		return result.None[[]FadePoint](), err
	}

	// Points may have been removed between the two calls.
	got := min(int(num), n)
	points := make([]FadePoint, got)
	for i := range points {
		points[i] = FadePoint{DSPClock: clocks[i], Volume: volumes[i]}
	}
	return result.Some(points), nil
}
