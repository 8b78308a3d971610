// Package sharedptr implements nullable, reseatable reference-counted handles.
//
// A SharedPtr is either Empty or Occupied. Occupied pointers share a single counted
// allocation with every clone made from them, and the payload is dropped when the last
// strong reference is released. Unlike a bare Rc, a SharedPtr can be zero-initialized
// without constructing a payload, and Write can reseat it in place: the previous payload
// reference is released before the new allocation is created.
//
// Every type in this package is parameterized over a counting Discipline. Local uses plain
// counters and must only ever be touched from a single goroutine. Atomic uses sync/atomic
// counters and may be cloned, released and upgraded from any number of goroutines. The rc
// and arc packages provide the two instantiations under shorter names, and most consumers
// should use those instead of this package directly.
//
// Go has no destructors, so releasing a strong reference is always explicit: Rc.Release,
// SharedPtr.SetNull, or a consuming call such as SharedPtr.IntoInner. If the payload
// implements Dropper, its Drop method runs exactly once, when the last strong reference
// is released. A handle that is simply abandoned never drops its payload.
//
// Handles must not be copied by value. Use Clone to produce a second strong reference.
// go vet's copylocks check will flag accidental copies.
//
// By default the Empty state is represented with an explicit occupancy flag. Building with
// the sharedptr_sentinel tag switches to a representation in which Empty is the all-zero
// handle, tested by reading a single machine word. Both behave identically, and the test
// suite should be run under both:
//
//	go test -race ./...
//	go test -race -tags sharedptr_sentinel,debug_sharedptr ./...
//
// Building with the debug_sharedptr tag enables internal consistency validation after
// every state transition, panicking if any inconsistency is discovered.
package sharedptr
