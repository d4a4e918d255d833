package usecase

import (
	"sync"

	"github.com/google/uuid"
)

// resourceLocker serializes admission attempts per resource. The engine holds
// the resource's mutex across the conflict check and the ledger write, so two
// concurrent overlapping requests on one resource cannot both observe "no
// conflict". Mutexes are created on first use and retained; the catalog is a
// small static set.
type resourceLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newResourceLocker() *resourceLocker {
	return &resourceLocker{
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// lock acquires the mutex for the resource and returns it for unlocking.
func (l *resourceLocker) lock(resourceID uuid.UUID) *sync.Mutex {
	l.mu.Lock()
	m, ok := l.locks[resourceID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[resourceID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m
}
