//go:build !ios && !android && (amd64 || arm64)

package lowlevel

import (
	"github.com/obinnaokechukwu/fmodgo/internal/bindings"
	"github.com/obinnaokechukwu/fmodgo/result"
)

// LoopPoints returns the loop region, with Start in startUnit and End in
// endUnit.
func (c Channel) LoopPoints(startUnit, endUnit TimeUnit) (result.Optional[LoopPoints], error) {
	su, err := timeUnits.Forward(startUnit)
	if err != nil {
		return result.None[LoopPoints](), err
	}
	eu, err := timeUnits.Forward(endUnit)
	if err != nil {
		return result.None[LoopPoints](), err
	}
	fn := c.funcs().GetLoopPoints
	if fn == nil {
		return result.None[LoopPoints](), bindings.ErrNotLoaded
	}

	var lp LoopPoints
	code := result.Result(fn(c.h(), &lp.Start, su, &lp.End, eu))
	return result.CheckValue(code, lp, "FMOD_Channel_GetLoopPoints", c.policy)
}

// SetLoopPoints sets the loop region.
func (c Channel) SetLoopPoints(lp LoopPoints, startUnit, endUnit TimeUnit) error {
	su, err := timeUnits.Forward(startUnit)
	if err != nil {
		return err
	}
	eu, err := timeUnits.Forward(endUnit)
	if err != nil {
		return err
	}
	fn := c.funcs().SetLoopPoints
	if fn == nil {
		return bindings.ErrNotLoaded
	}
	code := result.Result(fn(c.h(), lp.Start, su, lp.End, eu))
	_, err = result.Check(code, "FMOD_Channel_SetLoopPoints", c.policy)
	return err
}

// Loop returns the loop count and loop region together. It makes two
// native calls and returns a Loop only if both succeed; if either is
// suppressed the result is None.
func (c Channel) Loop(startUnit, endUnit TimeUnit) (result.Optional[Loop], error) {
	count, err := c.LoopCount()
	if err != nil {
		return result.None[Loop](), err
	}
	points, err := c.LoopPoints(startUnit, endUnit)
	if err != nil {
		return result.None[Loop](), err
	}

	n, ok := count.Get()
	if !ok {
		return result.None[Loop](), nil
	}
	lp, ok := points.Get()
	if !ok {
		return result.None[Loop](), nil
	}
	return result.Some(Loop{Count: n, Points: lp}), nil
}
