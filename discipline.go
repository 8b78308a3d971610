package sharedptr

import (
	"fmt"
	"sync/atomic"
)

// Discipline selects how an allocation's strong and weak counts are maintained. It is
// sealed: the only disciplines are Local and Atomic.
type Discipline interface {
	Local | Atomic

	newCounter() counter
	name() string
}

// Local maintains reference counts with plain integers. Handles using the Local discipline,
// and every clone or weak handle derived from them, must only be used from the goroutine
// that owns them. Nothing in the type system enforces this, so the race detector is the
// best way to catch violations.
type Local struct{}

func (Local) newCounter() counter { return &localCounter{strong: 1} }
func (Local) name() string        { return "Local" }

// Atomic maintains reference counts with sync/atomic operations. Handles using the Atomic
// discipline may be cloned, released and upgraded from any goroutine. The payload itself
// receives no synchronization: it must be safe for concurrent reads, and any mutation must
// be protected by the caller.
type Atomic struct{}

func (Atomic) newCounter() counter {
	c := &atomicCounter{}
	c.strong.Store(1)
	return c
}
func (Atomic) name() string { return "Atomic" }

// counter is the strong/weak count pair attached to a single allocation. New counters
// start with a strong count of 1 and a weak count of 0.
type counter interface {
	strongCount() int64
	weakCount() int64

	// incStrong adds a strong reference to a live allocation
	incStrong()
	// decStrong removes a strong reference and returns the remaining count
	decStrong() int64
	// tryIncStrong adds a strong reference only if at least one still exists
	tryIncStrong() bool
	// tryClaimUnique moves the strong count from 1 to 0, failing if it is anything else
	tryClaimUnique() bool

	incWeak()
	decWeak() int64
}

type localCounter struct {
	strong int64
	weak   int64
}

func (c *localCounter) strongCount() int64 { return c.strong }
func (c *localCounter) weakCount() int64   { return c.weak }

func (c *localCounter) incStrong() {
	c.strong++
	if c.strong <= 1 {
		panic(fmt.Sprintf("attempting to clone a released allocation: strong count is %d", c.strong))
	}
}

func (c *localCounter) decStrong() int64 {
	c.strong--
	return c.strong
}

func (c *localCounter) tryIncStrong() bool {
	if c.strong <= 0 {
		return false
	}
	c.strong++
	return true
}

func (c *localCounter) tryClaimUnique() bool {
	if c.strong != 1 {
		return false
	}
	c.strong = 0
	return true
}

func (c *localCounter) incWeak() {
	c.weak++
}

func (c *localCounter) decWeak() int64 {
	c.weak--
	return c.weak
}

type atomicCounter struct {
	strong atomic.Int64
	weak   atomic.Int64
}

func (c *atomicCounter) strongCount() int64 { return c.strong.Load() }
func (c *atomicCounter) weakCount() int64   { return c.weak.Load() }

func (c *atomicCounter) incStrong() {
	count := c.strong.Add(1)
	if count <= 1 {
		panic(fmt.Sprintf("attempting to clone a released allocation: strong count is %d", count))
	}
}

func (c *atomicCounter) decStrong() int64 {
	return c.strong.Add(-1)
}

func (c *atomicCounter) tryIncStrong() bool {
	for {
		last := c.strong.Load()
		if last <= 0 {
			return false
		}

		if c.strong.CompareAndSwap(last, last+1) {
			return true
		}
	}
}

func (c *atomicCounter) tryClaimUnique() bool {
	return c.strong.CompareAndSwap(1, 0)
}

func (c *atomicCounter) incWeak() {
	c.weak.Add(1)
}

func (c *atomicCounter) decWeak() int64 {
	return c.weak.Add(-1)
}
