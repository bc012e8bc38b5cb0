package result

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		code Result
		want Kind
	}{
		{OK, KindNone},
		{ErrInvalidHandle, KindInvalidHandle},
		{ErrChannelStolen, KindHandleStolen},
		{ErrInvalidParam, KindUnexpected},
		{ErrMemory, KindUnexpected},
		{Result(500), KindUnexpected},
		{Result(-1), KindUnexpected},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.code))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		code   Result
		policy Policy
		want   Outcome
	}{
		{"ok strict", OK, Policy{}, OutcomeOK},
		{"ok lenient", OK, SuppressAll(), OutcomeOK},
		{"invalid strict", ErrInvalidHandle, Policy{}, OutcomeSurfaced},
		{"invalid suppressed", ErrInvalidHandle, Policy{SuppressInvalidHandle: true}, OutcomeSuppressed},
		{"invalid other flag", ErrInvalidHandle, Policy{SuppressHandleStolen: true}, OutcomeSurfaced},
		{"stolen strict", ErrChannelStolen, Policy{}, OutcomeSurfaced},
		{"stolen suppressed", ErrChannelStolen, Policy{SuppressHandleStolen: true}, OutcomeSuppressed},
		{"stolen other flag", ErrChannelStolen, Policy{SuppressInvalidHandle: true}, OutcomeSurfaced},
		{"unexpected lenient", ErrFileNotFound, SuppressAll(), OutcomeSurfaced},
		{"unknown lenient", Result(1234), SuppressAll(), OutcomeSurfaced},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.code, tt.policy)
			assert.Equal(t, tt.want, c.Outcome)
			assert.Equal(t, tt.code, c.Code)
			assert.Equal(t, KindOf(tt.code), c.Kind)
		})
	}
}

func TestResultStrings(t *testing.T) {
	assert.Equal(t, "FMOD_OK", OK.String())
	assert.Equal(t, "FMOD_ERR_CHANNEL_STOLEN", ErrChannelStolen.String())
	assert.Equal(t, "FMOD_ERR_TOOMANYSAMPLES", ErrTooManySamples.String())
	assert.Equal(t, "FMOD_RESULT(99)", Result(99).String())
	assert.Equal(t, "An invalid object handle was used.", ErrInvalidHandle.Description())
	assert.Equal(t, "Unknown error.", Result(-4).Description())
	assert.Len(t, resultNames, len(resultDescriptions))
	for i, name := range resultNames {
		assert.NotEmpty(t, name, "code %d has no name", i)
		assert.NotEmpty(t, resultDescriptions[i], "code %d has no description", i)
	}
}

func genPolicy() gopter.Gen {
	return gopter.CombineGens(gen.Bool(), gen.Bool()).Map(func(v []interface{}) Policy {
		return Policy{SuppressInvalidHandle: v[0].(bool), SuppressHandleStolen: v[1].(bool)}
	})
}

func TestProperty_ClassifyDeterministic(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("same code and policy always classify the same", prop.ForAll(
		func(code int32, p Policy) bool {
			return Classify(Result(code), p) == Classify(Result(code), p)
		},
		gen.Int32Range(-10, 200),
		genPolicy(),
	))

	properties.Property("only suppressible kinds are ever suppressed", prop.ForAll(
		func(code int32, p Policy) bool {
			c := Classify(Result(code), p)
			if c.Outcome != OutcomeSuppressed {
				return true
			}
			return c.Kind.Suppressible() && p.Suppresses(c.Kind)
		},
		gen.Int32Range(-10, 200),
		genPolicy(),
	))

	properties.TestingRun(t)
}
