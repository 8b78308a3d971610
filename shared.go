package sharedptr

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/sharedptr/track"
)

// SharedPtr is a nullable, reseatable strong reference to a counted allocation. The zero
// SharedPtr is Empty and performs no allocation.
//
// An Occupied SharedPtr shares its allocation with every clone made from it. Write and
// SetNull only ever affect the SharedPtr they are called on: other clones keep referring to
// the allocation they were cloned from.
type SharedPtr[T any, D Discipline] struct {
	slot storage[T, D]
}

// Zeroed returns an Empty SharedPtr. It is equivalent to the zero value.
func Zeroed[T any, D Discipline]() SharedPtr[T, D] {
	return SharedPtr[T, D]{}
}

// NewShared allocates value with a strong count of 1 and returns an Occupied SharedPtr
// holding it. If tracker is not nil, the allocation is registered with it.
func NewShared[T any, D Discipline](tracker *track.Tracker, value T) SharedPtr[T, D] {
	return SharedPtr[T, D]{slot: occupiedStorage[T, D](newBlock[T, D](tracker, value))}
}

// FromRc moves the strong reference held by rc into a new Occupied SharedPtr, leaving rc
// released. The allocation and its counts are not touched.
func FromRc[T any, D Discipline](rc *Rc[T, D]) SharedPtr[T, D] {
	b := rc.live()
	rc.block = nil
	return SharedPtr[T, D]{slot: occupiedStorage[T, D](b)}
}

// IsNull returns true if the SharedPtr is Empty
func (p *SharedPtr[T, D]) IsNull() bool {
	return p.slot.isNull()
}

// Write replaces the payload with value. If the SharedPtr is Occupied, its strong reference
// is released first, dropping the previous payload if no other strong reference remains,
// and only then is a new allocation created for value. The new allocation is registered with
// the same tracker as the allocation it replaces, if any.
func (p *SharedPtr[T, D]) Write(value T) {
	var tracker *track.Tracker
	if !p.slot.isNull() {
		tracker = p.slot.handle().live().tracker
	}

	p.WriteIn(tracker, value)
}

// WriteIn behaves like Write, except that the new allocation is registered with the
// provided tracker, which may be nil.
func (p *SharedPtr[T, D]) WriteIn(tracker *track.Tracker, value T) {
	if !p.slot.isNull() {
		p.slot.take().release()
	}

	p.slot.install(newBlock[T, D](tracker, value))
	DebugValidate(p)
}

// SetNull releases the strong reference, dropping the payload if no other strong reference
// remains, and leaves the SharedPtr Empty. It does nothing if the SharedPtr is already Empty.
func (p *SharedPtr[T, D]) SetNull() {
	if p.slot.isNull() {
		return
	}

	p.slot.take().release()
	DebugValidate(p)
}

// Weak creates a weak reference to the allocation. It returns false if the SharedPtr is Empty.
func (p *SharedPtr[T, D]) Weak() (Weak[T, D], bool) {
	if p.slot.isNull() {
		return Weak[T, D]{}, false
	}

	return p.slot.handle().Downgrade(), true
}

// Clone returns a second strong reference to the allocation, or an Empty SharedPtr if this
// SharedPtr is Empty
func (p *SharedPtr[T, D]) Clone() SharedPtr[T, D] {
	if p.slot.isNull() {
		return SharedPtr[T, D]{}
	}

	b := p.slot.handle().live()
	b.counts.incStrong()
	return SharedPtr[T, D]{slot: occupiedStorage[T, D](b)}
}

// Deref returns the strong handle held by an Occupied SharedPtr, which exposes the
// allocation's counts as well as its payload. It panics if the SharedPtr is Empty: check
// IsNull first where emptiness is possible.
//
// The returned handle belongs to the SharedPtr. Releasing or unwrapping it directly
// leaves the SharedPtr in an inconsistent state; use SetNull, AssumeInit or IntoInner instead.
func (p *SharedPtr[T, D]) Deref() *Rc[T, D] {
	if p.slot.isNull() {
		panic("null shared deref")
	}

	return p.slot.handle()
}

// Value returns a copy of the payload. It panics if the SharedPtr is Empty.
func (p *SharedPtr[T, D]) Value() T {
	return p.Deref().Value()
}

// AssumeInit moves the strong reference out of the SharedPtr, leaving it Empty. It returns
// false if the SharedPtr was already Empty.
func (p *SharedPtr[T, D]) AssumeInit() (Rc[T, D], bool) {
	if p.slot.isNull() {
		return Rc[T, D]{}, false
	}

	return Rc[T, D]{block: p.slot.take()}, true
}

// IntoInner moves the payload out of the allocation if the SharedPtr holds its only strong
// reference, leaving the SharedPtr Empty. Otherwise the SharedPtr is left exactly as it was
// and the returned error wraps ErrNull or ErrNotUnique.
func (p *SharedPtr[T, D]) IntoInner() (T, error) {
	if p.slot.isNull() {
		var zero T
		return zero, errors.Wrap(ErrNull, "cannot move a payload out of an empty shared pointer")
	}

	value, err := p.slot.handle().TryUnwrap()
	if err != nil {
		return value, err
	}

	// TryUnwrap released the handle
	p.slot = storage[T, D]{}
	return value, nil
}

// IntoOrCloneInner moves the payload out of the allocation if the SharedPtr holds its only
// strong reference. Otherwise, the payload is cloned and the strong reference is released.
// The shared allocation itself is never modified. Either way the SharedPtr is left Empty. It
// returns false if the SharedPtr was already Empty.
func (p *SharedPtr[T, D]) IntoOrCloneInner() (T, bool) {
	rc, ok := p.AssumeInit()
	if !ok {
		var zero T
		return zero, false
	}

	return rc.UnwrapOrClone(), true
}

// GetMut returns a mutable view into the payload if the SharedPtr holds the only reference
// of any kind to the allocation. It returns false if the allocation is shared, observed by
// a weak reference, or if the SharedPtr is Empty.
func (p *SharedPtr[T, D]) GetMut() (*T, bool) {
	if p.slot.isNull() {
		return nil, false
	}

	return p.slot.handle().GetMut()
}

// GetMutUnchecked returns a mutable view into the payload without checking whether the
// allocation is shared. It panics if the SharedPtr is Empty.
//
// Using the returned pointer while any other reference is reading or writing the payload,
// including from another goroutine, is a data race. Prefer GetMut unless exclusive access
// is guaranteed by some other means.
func (p *SharedPtr[T, D]) GetMutUnchecked() *T {
	return &p.Deref().live().value
}

// Validate performs internal consistency checks on the SharedPtr and its allocation
func (p *SharedPtr[T, D]) Validate() error {
	err := p.slot.validate()
	if err != nil {
		return err
	}

	if p.slot.isNull() {
		return nil
	}

	b := p.slot.handle().live()
	if b.StrongCount() < 1 {
		return errors.Newf("shared pointer refers to an allocation with a strong count of %d", b.StrongCount())
	}

	return b.Validate()
}
