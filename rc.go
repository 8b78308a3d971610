package sharedptr

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/sharedptr/track"
)

// Rc is a strong reference to a counted allocation. It is the handle a SharedPtr holds
// while Occupied, and the handle Deref exposes.
//
// The zero Rc holds no allocation and every method other than PtrEq panics on it. Release
// leaves the Rc in that state.
type Rc[T any, D Discipline] struct {
	block  *block[T]
	noCopy noCopy
}

// NewRc allocates value with a strong count of 1. If tracker is not nil, the allocation is
// registered with it until the payload is dropped or moved out.
func NewRc[T any, D Discipline](tracker *track.Tracker, value T) Rc[T, D] {
	return Rc[T, D]{block: newBlock[T, D](tracker, value)}
}

func (r *Rc[T, D]) live() *block[T] {
	if r.block == nil {
		panic("use of released Rc")
	}

	return r.block
}

// Clone adds a strong reference to the allocation and returns it
func (r *Rc[T, D]) Clone() Rc[T, D] {
	b := r.live()
	b.counts.incStrong()
	return Rc[T, D]{block: b}
}

// Release gives up this strong reference. If it was the last one, the payload is dropped.
func (r *Rc[T, D]) Release() {
	b := r.live()
	r.block = nil
	b.release()
	DebugValidate(b)
}

// Value returns a copy of the payload
func (r *Rc[T, D]) Value() T {
	return r.live().value
}

func (r *Rc[T, D]) StrongCount() int {
	return r.live().StrongCount()
}

func (r *Rc[T, D]) WeakCount() int {
	return r.live().WeakCount()
}

// Downgrade creates a weak reference to the allocation
func (r *Rc[T, D]) Downgrade() Weak[T, D] {
	b := r.live()
	b.counts.incWeak()
	return Weak[T, D]{block: b}
}

// GetMut returns a mutable view into the payload if this is the only reference of any kind
// to the allocation. Weak references count, since they could be upgraded at any time.
func (r *Rc[T, D]) GetMut() (*T, bool) {
	b := r.live()
	if !b.isUnique() {
		return nil, false
	}

	return &b.value, true
}

// TryUnwrap moves the payload out of the allocation if this is its only strong reference,
// releasing the Rc. Otherwise the Rc is left untouched and the returned error wraps ErrNotUnique.
func (r *Rc[T, D]) TryUnwrap() (T, error) {
	b := r.live()

	value, ok := b.tryUnwrap()
	if !ok {
		return value, errors.Wrapf(ErrNotUnique, "strong count is %d", b.StrongCount())
	}

	r.block = nil
	return value, nil
}

// UnwrapOrClone moves the payload out of the allocation if this is its only strong
// reference, or returns a clone of it otherwise. The Rc is always released.
func (r *Rc[T, D]) UnwrapOrClone() T {
	value, err := r.TryUnwrap()
	if err == nil {
		return value
	}

	value = cloneValue(&r.block.value)
	r.Release()
	return value
}

// PtrEq returns true if both handles refer to the same allocation
func (r *Rc[T, D]) PtrEq(other *Rc[T, D]) bool {
	return r.block == other.block
}
