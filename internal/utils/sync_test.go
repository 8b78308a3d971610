package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionalRWMutexDisabled(t *testing.T) {
	var m OptionalRWMutex

	// With the mutex disabled, reacquiring never blocks
	m.Lock()
	m.Lock()
	m.RLock()
	m.Unlock()
	m.RUnlock()
	m.Unlock()

	require.True(t, m.Mutex.TryLock())
	m.Mutex.Unlock()
}

func TestOptionalRWMutexEnabled(t *testing.T) {
	m := OptionalRWMutex{UseMutex: true}

	m.Lock()
	require.False(t, m.Mutex.TryRLock())
	m.Unlock()

	m.RLock()
	require.True(t, m.Mutex.TryRLock())
	m.Mutex.RUnlock()
	require.False(t, m.Mutex.TryLock())
	m.RUnlock()
}
