//go:build sharedptr_sentinel

package sharedptr

import "unsafe"

// storage represents the Empty state as the all-zero handle. A valid handle always points
// at a block, so its first word is never zero. Rc must keep its block pointer as its first field.
type storage[T any, D Discipline] struct {
	rc Rc[T, D]
}

func occupiedStorage[T any, D Discipline](b *block[T]) storage[T, D] {
	return storage[T, D]{rc: Rc[T, D]{block: b}}
}

func (s *storage[T, D]) isNull() bool {
	return *(*uintptr)(unsafe.Pointer(&s.rc)) == 0
}

func (s *storage[T, D]) handle() *Rc[T, D] {
	return &s.rc
}

func (s *storage[T, D]) install(b *block[T]) {
	if !s.isNull() {
		panic("attempting to install an allocation into an occupied shared pointer")
	}

	s.rc.block = b
}

func (s *storage[T, D]) take() *block[T] {
	b := s.rc.live()
	s.rc.block = nil
	return b
}

func (s *storage[T, D]) validate() error {
	return nil
}
