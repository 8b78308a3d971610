package sharedptr

//go:generate mockgen -destination ./mocks/sharedptr.go -package mock_sharedptr github.com/vkngwrapper/arsenal/sharedptr Dropper,ResettableWeak

// Dropper is implemented by payloads that need to release resources when the last strong
// reference to their allocation is released. Drop is discovered on either *T or T, and is
// called exactly once per allocation. It is not called when the payload is moved out of
// the allocation with IntoInner, AssumeInit followed by TryUnwrap, or similar.
type Dropper interface {
	Drop()
}

// Cloner is implemented by payloads that need a deep copy when IntoOrCloneInner or
// Rc.UnwrapOrClone must duplicate a shared value. Payloads that do not implement it are
// duplicated with an ordinary Go assignment.
type Cloner[T any] interface {
	Clone() T
}

// ResettableWeak is implemented by the weak handles of every discipline. It allows
// code to reset a weak handle to its no-target state without knowing which discipline
// produced it.
type ResettableWeak interface {
	SetNull()
}

// UncheckedMutable is implemented by SharedPtr of every discipline. GetMutUnchecked
// returns a mutable view into the payload without checking that the caller holds the only
// strong reference.
//
// Calling GetMutUnchecked while any other reference is reading or writing the payload,
// including a clone held by another goroutine, is a data race. It exists for callers who
// already guarantee exclusive access by some other means, such as an external lock.
type UncheckedMutable[T any] interface {
	GetMutUnchecked() *T
}

// SetNullAll resets every provided weak handle to its no-target state
func SetNullAll(weakHandles ...ResettableWeak) {
	for _, weak := range weakHandles {
		if weak != nil {
			weak.SetNull()
		}
	}
}

var _ ResettableWeak = (*Weak[struct{}, Local])(nil)
var _ ResettableWeak = (*Weak[struct{}, Atomic])(nil)
var _ UncheckedMutable[struct{}] = (*SharedPtr[struct{}, Local])(nil)
var _ UncheckedMutable[struct{}] = (*SharedPtr[struct{}, Atomic])(nil)
var _ Validatable = (*SharedPtr[struct{}, Local])(nil)
