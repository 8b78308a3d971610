//go:build !sharedptr_sentinel

package sharedptr

import "github.com/cockroachdb/errors"

// storage represents the Empty state with an explicit occupancy flag alongside the handle
type storage[T any, D Discipline] struct {
	rc       Rc[T, D]
	occupied bool
}

func occupiedStorage[T any, D Discipline](b *block[T]) storage[T, D] {
	return storage[T, D]{rc: Rc[T, D]{block: b}, occupied: true}
}

func (s *storage[T, D]) isNull() bool {
	return !s.occupied
}

func (s *storage[T, D]) handle() *Rc[T, D] {
	return &s.rc
}

func (s *storage[T, D]) install(b *block[T]) {
	if s.occupied {
		panic("attempting to install an allocation into an occupied shared pointer")
	}

	s.rc.block = b
	s.occupied = true
}

func (s *storage[T, D]) take() *block[T] {
	b := s.rc.live()
	s.rc.block = nil
	s.occupied = false
	return b
}

func (s *storage[T, D]) validate() error {
	if s.occupied && s.rc.block == nil {
		return errors.New("shared pointer is marked occupied but holds no allocation")
	}
	if !s.occupied && s.rc.block != nil {
		return errors.New("shared pointer is marked empty but still holds an allocation")
	}

	return nil
}
