package sharedptr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	t.Run("Local", func(t *testing.T) { testCounter(t, Local{}.newCounter()) })
	t.Run("Atomic", func(t *testing.T) { testCounter(t, Atomic{}.newCounter()) })
}

func testCounter(t *testing.T, c counter) {
	require.Equal(t, int64(1), c.strongCount())
	require.Equal(t, int64(0), c.weakCount())

	c.incStrong()
	require.Equal(t, int64(2), c.strongCount())
	require.False(t, c.tryClaimUnique())

	require.Equal(t, int64(1), c.decStrong())
	require.True(t, c.tryIncStrong())
	require.Equal(t, int64(1), c.decStrong())

	c.incWeak()
	c.incWeak()
	require.Equal(t, int64(2), c.weakCount())
	require.Equal(t, int64(1), c.decWeak())

	require.True(t, c.tryClaimUnique())
	require.Equal(t, int64(0), c.strongCount())
	require.False(t, c.tryIncStrong())
	require.False(t, c.tryClaimUnique())

	require.Panics(t, func() {
		c.incStrong()
	})
}

func TestDisciplineNames(t *testing.T) {
	require.Equal(t, "Local", Local{}.name())
	require.Equal(t, "Atomic", Atomic{}.name())
}
