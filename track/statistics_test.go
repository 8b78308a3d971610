package track

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddDetailedStatistics(t *testing.T) {
	var left, right DetailedStatistics
	left.Clear()
	right.Clear()

	left.AllocationCount = 2
	left.AddAllocation(1, 0)
	left.AddAllocation(3, 1)

	right.AllocationCount = 5
	right.DropCount = 4
	right.AddAllocation(2, 4)

	left.AddDetailedStatistics(&right)
	require.Equal(t, DetailedStatistics{
		Statistics: Statistics{
			AllocationCount: 7,
			DropCount:       4,
		},
		SharedCount:    2,
		ObservedCount:  2,
		StrongCountMax: 3,
		WeakCountMax:   4,
	}, left)

	left.Clear()
	require.Equal(t, DetailedStatistics{}, left)
}
