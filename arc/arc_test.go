package arc_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/sharedptr/arc"
	"github.com/vkngwrapper/arsenal/sharedptr/track"
	"golang.org/x/sync/errgroup"
)

type payload struct {
	value int
	label string
	drops *atomic.Int32
}

func (p *payload) Drop() {
	p.drops.Add(1)
}

func TestUpgradeDuringCloneChurn(t *testing.T) {
	var drops atomic.Int32
	tracker := track.New(nil, track.CreateOptions{Name: "churn"})

	a := arc.NewSharedIn(tracker, payload{value: 42, label: "forty-two", drops: &drops})
	w, ok := a.Weak()
	require.True(t, ok)

	const iterations = 10000
	group, _ := errgroup.WithContext(context.Background())

	group.Go(func() error {
		for i := 0; i < iterations; i++ {
			clone := a.Clone()
			clone.SetNull()
		}
		return nil
	})

	var upgrades atomic.Int32
	group.Go(func() error {
		for i := 0; i < iterations; i++ {
			upgraded, ok := w.Upgrade()
			if !ok {
				continue
			}
			upgrades.Add(1)

			value := upgraded.Value()
			if value.value != 42 || value.label != "forty-two" {
				upgraded.SetNull()
				return errTorn
			}
			upgraded.SetNull()
		}
		return nil
	})

	require.NoError(t, group.Wait())

	// a was alive for the whole test, so every upgrade should have succeeded
	require.Equal(t, int32(iterations), upgrades.Load())
	require.Equal(t, int32(0), drops.Load())
	require.Equal(t, 1, a.Deref().StrongCount())
	require.NoError(t, tracker.Validate())

	a.SetNull()
	require.Equal(t, int32(1), drops.Load())

	_, ok = w.Upgrade()
	require.False(t, ok)
	require.NoError(t, tracker.Destroy())
}

func TestUpgradeRacesLastRelease(t *testing.T) {
	var drops atomic.Int32

	for round := 0; round < 200; round++ {
		a := arc.NewShared(payload{value: round, drops: &drops})
		w, _ := a.Weak()

		group, _ := errgroup.WithContext(context.Background())

		group.Go(func() error {
			a.SetNull()
			return nil
		})

		expected := round
		group.Go(func() error {
			for i := 0; i < 50; i++ {
				upgraded, ok := w.Upgrade()
				if !ok {
					return nil
				}

				if upgraded.Value().value != expected {
					upgraded.SetNull()
					return errTorn
				}
				upgraded.SetNull()
			}
			return nil
		})

		require.NoError(t, group.Wait())

		// Whichever goroutine released last dropped the payload exactly once
		require.Equal(t, int32(round+1), drops.Load())
		_, ok := w.Upgrade()
		require.False(t, ok)
		w.SetNull()
	}
}

func TestUniqueExtractionAcrossGoroutines(t *testing.T) {
	a := arc.New(payload{value: 7})
	clones := make([]arc.Arc[payload], 8)
	for i := range clones {
		clones[i] = a.Clone()
	}

	group, _ := errgroup.WithContext(context.Background())
	for i := range clones {
		clone := &clones[i]
		group.Go(func() error {
			clone.Release()
			return nil
		})
	}
	require.NoError(t, group.Wait())

	value, err := a.TryUnwrap()
	require.NoError(t, err)
	require.Equal(t, 7, value.value)
}
