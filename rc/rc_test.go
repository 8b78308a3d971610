package rc_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/sharedptr"
	"github.com/vkngwrapper/arsenal/sharedptr/rc"
	"github.com/vkngwrapper/arsenal/sharedptr/track"
)

type foo struct {
	name string
}

func TestSharedPtr(t *testing.T) {
	ptr := rc.Zeroed[foo]()
	require.True(t, ptr.IsNull())

	ptr.Write(foo{name: "122"})
	require.Equal(t, "122", ptr.Value().name)

	ptr2 := ptr.Clone()
	require.Equal(t, "122", ptr2.Value().name)

	ptr2.SetNull()
	require.Equal(t, "122", ptr.Value().name)

	_, ok := ptr2.Weak()
	require.False(t, ok)

	wk, ok := ptr.Weak()
	require.True(t, ok)

	upgraded, ok := wk.Upgrade()
	require.True(t, ok)
	require.Equal(t, "122", upgraded.Value().name)

	r, ok := upgraded.AssumeInit()
	require.True(t, ok)
	ptr3 := rc.From(&r)
	require.Equal(t, "122", ptr3.Value().name)
	require.Equal(t, 2, ptr3.Deref().StrongCount())

	ptr.SetNull()
	ptr3.SetNull()

	_, ok = wk.Upgrade()
	require.False(t, ok)

	var resettable sharedptr.ResettableWeak = &wk
	resettable.SetNull()
	require.True(t, wk.IsNull())
}

func TestRc(t *testing.T) {
	r := rc.New(5)
	clone := r.Clone()
	require.Equal(t, 2, r.StrongCount())

	value, err := r.TryUnwrap()
	require.ErrorIs(t, err, sharedptr.ErrNotUnique)
	require.Equal(t, 0, value)

	clone.Release()
	value, err = r.TryUnwrap()
	require.NoError(t, err)
	require.Equal(t, 5, value)
}

func TestTrackedLeak(t *testing.T) {
	tracker := track.New(nil, track.CreateOptions{
		Flags: track.CreateExternallySynchronized | track.CreateLogAllocations,
		Name:  "rc",
	})

	leaked := rc.NewSharedIn(tracker, foo{name: "leaked"})
	released := rc.NewIn(tracker, foo{name: "released"})
	require.Equal(t, 2, tracker.LiveCount())

	released.Release()
	require.NoError(t, tracker.Validate())

	err := tracker.Destroy()
	require.EqualError(t, err, "1 allocations were not released before the destruction of this tracker")

	// Releasing after destruction is ignored
	leaked.SetNull()
	require.Equal(t, 0, tracker.LiveCount())
}

func TestNewShared(t *testing.T) {
	p := rc.NewShared([]int{1, 2})
	value, ok := p.GetMut()
	require.True(t, ok)
	*value = append(*value, 3)

	inner, err := p.IntoInner()
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, inner)
	require.True(t, p.IsNull())
}
