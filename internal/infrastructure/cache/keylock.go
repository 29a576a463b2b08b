package cache

import (
	"context"
	"sync"

	appsync "github.com/erp/partysync/internal/application/sync"
)

// InMemoryKeyLock implements CreationLock using per-key mutexes.
// This is suitable for single-instance deployments and testing.
type InMemoryKeyLock struct {
	mu    sync.Mutex
	locks map[string]*keyLockEntry
}

type keyLockEntry struct {
	mu      sync.Mutex
	waiters int
}

// NewInMemoryKeyLock creates a new in-memory key lock
func NewInMemoryKeyLock() *InMemoryKeyLock {
	return &InMemoryKeyLock{
		locks: make(map[string]*keyLockEntry),
	}
}

// Acquire blocks until the key lock is held and returns a release
// function. Entries are removed once the last holder releases, so the
// map does not grow with the key space.
func (l *InMemoryKeyLock) Acquire(ctx context.Context, key string) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &keyLockEntry{}
		l.locks[key] = e
	}
	e.waiters++
	l.mu.Unlock()

	e.mu.Lock()

	release := func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.waiters--
		if e.waiters == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
	return release, nil
}

// Size returns the number of keys currently tracked (for testing/monitoring)
func (l *InMemoryKeyLock) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

// Ensure InMemoryKeyLock implements CreationLock
var _ appsync.CreationLock = (*InMemoryKeyLock)(nil)
