package sharedptr

// Weak is a non-owning reference to a counted allocation. It does not keep the payload
// alive, but may be upgraded to a new strong reference while at least one exists.
//
// The zero Weak has no target and never upgrades.
type Weak[T any, D Discipline] struct {
	block  *block[T]
	noCopy noCopy
}

// Upgrade attempts to create a new strong reference to the allocation. It returns an
// Occupied SharedPtr and true if the allocation still had a strong reference at the moment
// of the call, or an Empty SharedPtr and false otherwise.
//
// Handles using the Atomic discipline race with concurrent releases on other goroutines.
// Either result is correct for such a race, but an Occupied result always holds a
// fully-constructed payload.
func (w *Weak[T, D]) Upgrade() (SharedPtr[T, D], bool) {
	if w.block == nil || !w.block.counts.tryIncStrong() {
		return SharedPtr[T, D]{}, false
	}

	return SharedPtr[T, D]{slot: occupiedStorage[T, D](w.block)}, true
}

// SetNull releases this weak reference and resets the handle to have no target. It does
// not affect any strong reference to the allocation.
func (w *Weak[T, D]) SetNull() {
	if w.block == nil {
		return
	}

	b := w.block
	w.block = nil
	b.releaseWeak()
}

// IsNull returns true if the handle has no target. A handle whose allocation has been
// dropped still has a target: use StrongCount to find out whether it can be upgraded.
func (w *Weak[T, D]) IsNull() bool {
	return w.block == nil
}

// Clone creates another weak reference to the same allocation
func (w *Weak[T, D]) Clone() Weak[T, D] {
	if w.block == nil {
		return Weak[T, D]{}
	}

	w.block.counts.incWeak()
	return Weak[T, D]{block: w.block}
}

// StrongCount returns the number of strong references to the allocation, or 0 if there is no target
func (w *Weak[T, D]) StrongCount() int {
	if w.block == nil {
		return 0
	}

	return w.block.StrongCount()
}

// WeakCount returns the number of weak references to the allocation, including this one,
// or 0 if there is no target
func (w *Weak[T, D]) WeakCount() int {
	if w.block == nil {
		return 0
	}

	return w.block.WeakCount()
}
