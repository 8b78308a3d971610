// Package rc provides nullable reference-counted handles for values owned by a single goroutine.
//
// Reference counts are plain integers, which makes cloning and releasing cheap. A SharedPtr,
// and every clone and weak handle derived from it, must never be used from more than one
// goroutine. Use the arc package for handles that are shared between goroutines.
package rc

import (
	"github.com/vkngwrapper/arsenal/sharedptr"
	"github.com/vkngwrapper/arsenal/sharedptr/track"
)

// Rc is a strong reference to a single-goroutine counted allocation
type Rc[T any] = sharedptr.Rc[T, sharedptr.Local]

// Weak is a weak reference to a single-goroutine counted allocation
type Weak[T any] = sharedptr.Weak[T, sharedptr.Local]

// SharedPtr is a nullable, reseatable strong reference to a single-goroutine counted allocation
type SharedPtr[T any] = sharedptr.SharedPtr[T, sharedptr.Local]

// New allocates value and returns the only strong reference to it
func New[T any](value T) Rc[T] {
	return sharedptr.NewRc[T, sharedptr.Local](nil, value)
}

// NewIn allocates value, registers the allocation with tracker and returns the only strong
// reference to it
func NewIn[T any](tracker *track.Tracker, value T) Rc[T] {
	return sharedptr.NewRc[T, sharedptr.Local](tracker, value)
}

// NewShared allocates value and returns an Occupied SharedPtr holding it
func NewShared[T any](value T) SharedPtr[T] {
	return sharedptr.NewShared[T, sharedptr.Local](nil, value)
}

// NewSharedIn allocates value, registers the allocation with tracker and returns an Occupied
// SharedPtr holding it
func NewSharedIn[T any](tracker *track.Tracker, value T) SharedPtr[T] {
	return sharedptr.NewShared[T, sharedptr.Local](tracker, value)
}

// Zeroed returns an Empty SharedPtr
func Zeroed[T any]() SharedPtr[T] {
	return sharedptr.Zeroed[T, sharedptr.Local]()
}

// From moves the strong reference held by r into a SharedPtr, leaving r released
func From[T any](r *Rc[T]) SharedPtr[T] {
	return sharedptr.FromRc(r)
}
