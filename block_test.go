package sharedptr

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/sharedptr/track"
)

type valueDropper struct {
	drops *int
}

func (d valueDropper) Drop() {
	*d.drops++
}

type pointerDropper struct {
	drops int
}

func (d *pointerDropper) Drop() {
	d.drops++
}

func TestDropPayload(t *testing.T) {
	var drops int
	value := valueDropper{drops: &drops}
	dropPayload(&value)
	require.Equal(t, 1, drops)

	pointer := &pointerDropper{}
	dropPayload(&pointer)
	require.Equal(t, 1, pointer.drops)

	inPlace := pointerDropper{}
	dropPayload(&inPlace)
	require.Equal(t, 1, inPlace.drops)

	plain := 5
	dropPayload(&plain)
	require.Equal(t, 5, plain)
}

func TestBlockReleaseZeroesPayload(t *testing.T) {
	var drops int
	b := newBlock[valueDropper, Local](nil, valueDropper{drops: &drops})
	b.counts.incStrong()

	b.release()
	require.Equal(t, 0, drops)
	require.NotNil(t, b.value.drops)

	b.release()
	require.Equal(t, 1, drops)
	require.Nil(t, b.value.drops)
	require.NoError(t, b.Validate())

	require.PanicsWithValue(t, "too many releases", func() {
		b.release()
	})
	require.Error(t, b.Validate())
}

func TestBlockTryUnwrap(t *testing.T) {
	tracker := track.New(nil, track.CreateOptions{})
	b := newBlock[string, Atomic](tracker, "payload")
	require.Equal(t, 1, tracker.LiveCount())

	b.counts.incStrong()
	_, ok := b.tryUnwrap()
	require.False(t, ok)
	require.Equal(t, "payload", b.value)

	b.release()
	value, ok := b.tryUnwrap()
	require.True(t, ok)
	require.Equal(t, "payload", value)
	require.Equal(t, "", b.value)

	stats := tracker.Statistics()
	require.Equal(t, 0, stats.LiveCount)
	require.Equal(t, 1, stats.UnwrapCount)
	require.Equal(t, 0, stats.DropCount)
}

func TestBlockRegistersTypeName(t *testing.T) {
	tracker := track.New(nil, track.CreateOptions{})
	b := newBlock[*pointerDropper, Local](tracker, &pointerDropper{})

	stats, err := tracker.StatsString()
	require.NoError(t, err)
	require.Contains(t, stats, `"Type":"*sharedptr.pointerDropper"`)
	require.Contains(t, stats, `"Discipline":"Local"`)

	b.release()
	require.Nil(t, b.value)
	require.Equal(t, 0, tracker.LiveCount())
}

func TestStorageMisuse(t *testing.T) {
	var s storage[int, Local]
	require.True(t, s.isNull())
	require.NoError(t, s.validate())

	require.PanicsWithValue(t, "use of released Rc", func() {
		s.take()
	})

	s.install(newBlock[int, Local](nil, 1))
	require.False(t, s.isNull())
	require.NoError(t, s.validate())

	require.PanicsWithValue(t, "attempting to install an allocation into an occupied shared pointer", func() {
		s.install(newBlock[int, Local](nil, 2))
	})

	b := s.take()
	require.True(t, s.isNull())
	require.Equal(t, 1, b.value)
}
