package equiv

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obinnaokechukwu/fmodgo/result"
)

type nativeUnit uint32

const (
	nativeMS  nativeUnit = 0x1
	nativePCM nativeUnit = 0x2
	nativeRaw nativeUnit = 0x8
	nativeMod nativeUnit = 0x100
)

type publicUnit uint32

const (
	unitMS  publicUnit = 0x1
	unitPCM publicUnit = 0x2
	unitRaw publicUnit = 0x8
	unitMod publicUnit = 0x100
)

func (u publicUnit) String() string {
	switch u {
	case unitMS:
		return "MS"
	case unitPCM:
		return "PCM"
	case unitRaw:
		return "Raw"
	case unitMod:
		return "Mod"
	}
	return "?"
}

func nativeUnits() []nativeUnit { return []nativeUnit{nativeMS, nativePCM, nativeRaw, nativeMod} }
func publicUnits() []publicUnit { return []publicUnit{unitMS, unitPCM, unitRaw, unitMod} }

func TestForwardBackward(t *testing.T) {
	e := Declare("unit", publicUnits, nativeUnits)
	require.NoError(t, e.Validate())

	n, err := e.Forward(unitRaw)
	require.NoError(t, err)
	assert.Equal(t, nativeRaw, n)

	p, err := e.Backward(nativeMod)
	require.NoError(t, err)
	assert.Equal(t, unitMod, p)

	assert.Equal(t, nativePCM, e.MustForward(unitPCM))
	assert.Equal(t, "unit", e.Name())
}

func TestNonMemberIsInvalidArgument(t *testing.T) {
	e := Declare("unit", publicUnits, nativeUnits)

	_, err := e.Forward(publicUnit(3))
	require.Error(t, err)
	assert.ErrorIs(t, err, result.ErrInvalidArgument)
	assert.NotErrorIs(t, err, ErrConfiguration)

	assert.Panics(t, func() { e.MustForward(publicUnit(0x40)) })
}

func TestMissingCounterpartFailsValidation(t *testing.T) {
	// The first side has a member with value 7 and the second does not.
	broken := Declare("broken",
		func() []publicUnit { return []publicUnit{unitMS, unitPCM, 7} },
		func() []nativeUnit { return []nativeUnit{nativeMS, nativePCM, nativeRaw} },
	)

	err := broken.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)

	var cfg *ConfigurationError
	require.True(t, errors.As(err, &cfg))
	require.Len(t, cfg.MissingB, 1)
	assert.Contains(t, cfg.MissingB[0], "0x7")
	assert.Equal(t, []string{"0x8"}, cfg.MissingA)

	// Every later cast on the pair fails the same way, including members
	// that would otherwise match.
	for i := 0; i < 3; i++ {
		_, err := broken.Forward(unitMS)
		assert.ErrorIs(t, err, ErrConfiguration)
		_, err = broken.Backward(nativePCM)
		assert.ErrorIs(t, err, ErrConfiguration)
	}
	assert.Same(t, err, broken.Validate())
}

func TestCountMismatchFailsValidation(t *testing.T) {
	e := Declare("short",
		func() []publicUnit { return []publicUnit{unitMS} },
		func() []nativeUnit { return []nativeUnit{nativeMS, nativePCM} },
	)
	err := e.Validate()
	require.Error(t, err)

	var cfg *ConfigurationError
	require.True(t, errors.As(err, &cfg))
	assert.Equal(t, 1, cfg.CountA)
	assert.Equal(t, 2, cfg.CountB)
	assert.Contains(t, err.Error(), "member counts differ")
}

func TestDuplicateValuesCountOnce(t *testing.T) {
	// Aliases share a value and are one member for validation purposes.
	e := Declare("alias",
		func() []publicUnit { return []publicUnit{unitMS, unitMS, unitPCM} },
		func() []nativeUnit { return []nativeUnit{nativeMS, nativePCM} },
	)
	assert.NoError(t, e.Validate())
}

func TestValidationIsLazyAndOnce(t *testing.T) {
	calls := 0
	e := Declare("lazy",
		func() []publicUnit { calls++; return publicUnits() },
		nativeUnits,
	)
	assert.Equal(t, 0, calls)

	_, _ = e.Forward(unitMS)
	_, _ = e.Backward(nativeMS)
	_ = e.Validate()
	assert.Equal(t, 1, calls)
}

type nativeFlag uint32

const (
	nativeLoopOff nativeFlag = 0x1
	nativeLoop    nativeFlag = 0x2
	native2D      nativeFlag = 0x8
	native3D      nativeFlag = 0x10
)

type publicFlag uint32

const (
	flagLoopOff publicFlag = 0x1
	flagLoop    publicFlag = 0x2
	flag2D      publicFlag = 0x8
	flag3D      publicFlag = 0x10
)

func TestFlagsCombination(t *testing.T) {
	e := Declare("flags",
		func() []publicFlag { return []publicFlag{flagLoopOff, flagLoop, flag2D, flag3D} },
		func() []nativeFlag { return []nativeFlag{nativeLoopOff, nativeLoop, native2D, native3D} },
		Flags(),
	)

	n, err := e.Forward(flagLoop | flag3D)
	require.NoError(t, err)
	assert.Equal(t, nativeLoop|native3D, n)

	_, err = e.Forward(flagLoop | 0x4)
	assert.ErrorIs(t, err, result.ErrInvalidArgument)

	// Without Flags a combination is not a member.
	plain := Declare("plain",
		func() []publicFlag { return []publicFlag{flagLoopOff, flagLoop, flag2D, flag3D} },
		func() []nativeFlag { return []nativeFlag{nativeLoopOff, nativeLoop, native2D, native3D} },
	)
	_, err = plain.Forward(flagLoop | flag3D)
	assert.ErrorIs(t, err, result.ErrInvalidArgument)
}

func TestProperty_Bijection(t *testing.T) {
	e := Declare("unit", publicUnits, nativeUnits)
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("Backward(Forward(x)) == x", prop.ForAll(
		func(x publicUnit) bool {
			n, err := e.Forward(x)
			if err != nil {
				return false
			}
			back, err := e.Backward(n)
			return err == nil && back == x && uint32(n) == uint32(x)
		},
		gen.OneConstOf(unitMS, unitPCM, unitRaw, unitMod),
	))

	properties.Property("Forward(Backward(y)) == y", prop.ForAll(
		func(y nativeUnit) bool {
			p, err := e.Backward(y)
			if err != nil {
				return false
			}
			back, err := e.Forward(p)
			return err == nil && back == y
		},
		gen.OneConstOf(nativeMS, nativePCM, nativeRaw, nativeMod),
	))

	properties.TestingRun(t)
}
