package sharedptr

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/sharedptr/track"
)

// block is a single counted allocation: the payload plus its strong/weak counts.
// The payload is zeroed once the strong count reaches 0.
type block[T any] struct {
	counts  counter
	value   T
	tracker *track.Tracker
	id      uint64
}

func newBlock[T any, D Discipline](tracker *track.Tracker, value T) *block[T] {
	var discipline D

	b := &block[T]{
		counts:  discipline.newCounter(),
		value:   value,
		tracker: tracker,
	}

	if tracker != nil {
		b.id = tracker.Register(reflect.TypeOf((*T)(nil)).Elem().String(), discipline.name(), b)
	}

	return b
}

func (b *block[T]) StrongCount() int { return int(b.counts.strongCount()) }
func (b *block[T]) WeakCount() int   { return int(b.counts.weakCount()) }

func (b *block[T]) isUnique() bool {
	return b.counts.strongCount() == 1 && b.counts.weakCount() == 0
}

func (b *block[T]) release() {
	remaining := b.counts.decStrong()
	if remaining > 0 {
		return
	} else if remaining < 0 {
		panic("too many releases")
	}

	dropPayload(&b.value)

	var zero T
	b.value = zero

	if b.tracker != nil {
		b.tracker.Release(b.id, track.ReleaseDropped)
	}
}

func (b *block[T]) releaseWeak() {
	if b.counts.decWeak() < 0 {
		panic("too many weak releases")
	}
}

// tryUnwrap moves the payload out of the allocation if the caller holds the only strong reference.
// Weak references may remain: they will fail to upgrade from now on.
func (b *block[T]) tryUnwrap() (T, bool) {
	if !b.counts.tryClaimUnique() {
		var zero T
		return zero, false
	}

	value := b.value

	var zero T
	b.value = zero

	if b.tracker != nil {
		b.tracker.Release(b.id, track.ReleaseUnwrapped)
	}

	return value, true
}

func (b *block[T]) Validate() error {
	strong := b.counts.strongCount()
	weak := b.counts.weakCount()

	if strong < 0 {
		return errors.Newf("allocation has a negative strong count (%d)", strong)
	}
	if weak < 0 {
		return errors.Newf("allocation has a negative weak count (%d)", weak)
	}

	return nil
}

func dropPayload[T any](value *T) {
	if dropper, ok := any(value).(Dropper); ok {
		dropper.Drop()
		return
	}

	if dropper, ok := any(*value).(Dropper); ok {
		dropper.Drop()
	}
}

func cloneValue[T any](value *T) T {
	if cloner, ok := any(*value).(Cloner[T]); ok {
		return cloner.Clone()
	}

	if cloner, ok := any(value).(Cloner[T]); ok {
		return cloner.Clone()
	}

	return *value
}
