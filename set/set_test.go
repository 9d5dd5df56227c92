package set

import (
	"testing"

	"github.com/asayers/compactor"
	"github.com/asayers/compactor/aggregate"
	"github.com/asayers/compactor/datetime"
	"github.com/stretchr/testify/require"
)

func testPolicy(t *testing.T) compactor.Policy {
	t.Helper()
	p, err := compactor.NewPolicyBuilder().KeepForDays(7, datetime.Day).Build()
	require.NoError(t, err)

	return p
}

func TestCompactorSet_GetOrCreateIdempotent(t *testing.T) {
	s := NewCompactorSet[aggregate.Concat[int]](testPolicy(t))

	a := s.GetOrCreate("cpu.load")
	b := s.GetOrCreate("cpu.load")
	require.Same(t, a, b)
	require.Equal(t, 1, s.Len())
}

func TestCompactorSet_GetOrCreateUsesSetPolicy(t *testing.T) {
	p := testPolicy(t)
	s := NewCompactorSet[aggregate.Concat[int]](p)

	c := s.GetOrCreate("cpu.load")
	require.Equal(t, p, c.Policy())
}

func TestCompactorSet_GetMissing(t *testing.T) {
	s := NewCompactorSet[aggregate.Concat[int]](testPolicy(t))
	_, ok := s.Get("missing")
	require.False(t, ok)
}

func TestCompactorSet_DistinctNames(t *testing.T) {
	s := NewCompactorSet[aggregate.Concat[int]](testPolicy(t))

	a := s.GetOrCreate("cpu.load")
	b := s.GetOrCreate("mem.used")
	require.NotSame(t, a, b)
	require.Equal(t, 2, s.Len())
	require.Equal(t, []string{"cpu.load", "mem.used"}, s.Names())
}

func TestCompactorSet_Delete(t *testing.T) {
	s := NewCompactorSet[aggregate.Concat[int]](testPolicy(t))

	s.GetOrCreate("cpu.load")
	require.Equal(t, 1, s.Len())

	s.Delete("cpu.load")
	require.Equal(t, 0, s.Len())

	_, ok := s.Get("cpu.load")
	require.False(t, ok)

	// Re-registering after deletion creates a fresh Compactor.
	c := s.GetOrCreate("cpu.load")
	require.True(t, c.IsEmpty())
}

func TestCompactorSet_DeleteMissing(t *testing.T) {
	s := NewCompactorSet[aggregate.Concat[int]](testPolicy(t))
	s.Delete("missing")
	require.Equal(t, 0, s.Len())
}
