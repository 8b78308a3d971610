// Package arc provides nullable reference-counted handles that may be shared between goroutines.
//
// Reference counts are maintained atomically, so a SharedPtr may be cloned, released and
// upgraded from any goroutine, and a Weak observing it may be upgraded concurrently with those
// operations. The payload receives no synchronization of its own: it must be safe for
// concurrent reads, and mutation through GetMutUnchecked must be protected by the caller.
// GetMut and IntoInner remain safe, since they only succeed for the sole owner.
//
// Individual handles are not themselves synchronized. Two goroutines may each hold a clone
// of the same SharedPtr, but must not call Write, SetNull or another mutating method on the
// same SharedPtr value concurrently.
package arc

import (
	"github.com/vkngwrapper/arsenal/sharedptr"
	"github.com/vkngwrapper/arsenal/sharedptr/track"
)

// Arc is a strong reference to an atomically counted allocation
type Arc[T any] = sharedptr.Rc[T, sharedptr.Atomic]

// Weak is a weak reference to an atomically counted allocation
type Weak[T any] = sharedptr.Weak[T, sharedptr.Atomic]

// SharedPtr is a nullable, reseatable strong reference to an atomically counted allocation
type SharedPtr[T any] = sharedptr.SharedPtr[T, sharedptr.Atomic]

// New allocates value and returns the only strong reference to it
func New[T any](value T) Arc[T] {
	return sharedptr.NewRc[T, sharedptr.Atomic](nil, value)
}

// NewIn allocates value, registers the allocation with tracker and returns the only strong
// reference to it. The tracker must not have been created with track.CreateExternallySynchronized
// if the allocation will be released from more than one goroutine.
func NewIn[T any](tracker *track.Tracker, value T) Arc[T] {
	return sharedptr.NewRc[T, sharedptr.Atomic](tracker, value)
}

// NewShared allocates value and returns an Occupied SharedPtr holding it
func NewShared[T any](value T) SharedPtr[T] {
	return sharedptr.NewShared[T, sharedptr.Atomic](nil, value)
}

// NewSharedIn allocates value, registers the allocation with tracker and returns an Occupied
// SharedPtr holding it
func NewSharedIn[T any](tracker *track.Tracker, value T) SharedPtr[T] {
	return sharedptr.NewShared[T, sharedptr.Atomic](tracker, value)
}

// Zeroed returns an Empty SharedPtr
func Zeroed[T any]() SharedPtr[T] {
	return sharedptr.Zeroed[T, sharedptr.Atomic]()
}

// From moves the strong reference held by a into a SharedPtr, leaving a released
func From[T any](a *Arc[T]) SharedPtr[T] {
	return sharedptr.FromRc(a)
}
