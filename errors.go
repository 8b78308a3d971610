package sharedptr

import "github.com/pkg/errors"

// ErrNotUnique is the error returned from IntoInner, TryUnwrap, or other methods if the
// allocation is shared with another strong reference
var ErrNotUnique error = errors.New("allocation is shared by more than one strong reference")

// ErrNull is the error returned from IntoInner or other methods if the shared pointer is Empty
var ErrNull error = errors.New("shared pointer is null")
