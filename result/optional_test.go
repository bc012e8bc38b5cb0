package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	some := Some(3)
	none := None[int]()

	assert.True(t, some.IsPresent())
	assert.False(t, none.IsPresent())
	assert.Equal(t, 3, some.OrElse(9))
	assert.Equal(t, 9, none.OrElse(9))
	assert.Equal(t, "Some(3)", some.String())
	assert.Equal(t, "None", none.String())

	// A present zero is distinct from absence.
	zero := Some(0)
	v, ok := zero.Get()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	assert.NotEqual(t, zero, none)
}

func TestMap(t *testing.T) {
	double := func(v int) int { return v * 2 }
	assert.Equal(t, Some(6), Map(Some(3), double))
	assert.Equal(t, None[int](), Map(None[int](), double))
}

func TestFlatMap(t *testing.T) {
	boom := errors.New("boom")

	got, err := FlatMap(Some(2), func(v int) (Optional[string], error) {
		return Some("two"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, Some("two"), got)

	got, err = FlatMap(None[int](), func(v int) (Optional[string], error) {
		t.Fatal("f must not run for an empty Optional")
		return None[string](), nil
	})
	require.NoError(t, err)
	assert.False(t, got.IsPresent())

	_, err = FlatMap(Some(2), func(v int) (Optional[string], error) {
		return None[string](), boom
	})
	assert.ErrorIs(t, err, boom)
}
