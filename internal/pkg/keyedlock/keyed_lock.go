// Package keyedlock provides per-key mutual exclusion. Status mutations for a
// given order must be linearizable, so command handlers hold the order's lock
// across their read-modify-write sequence.
package keyedlock

import "sync"

// KeyedLock serializes critical sections per int64 key. Entries are reference
// counted and removed once the last holder releases, so the map does not grow
// with the key space.
type KeyedLock struct {
	mu    sync.Mutex
	locks map[int64]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedLock creates an empty KeyedLock.
func NewKeyedLock() *KeyedLock {
	return &KeyedLock{locks: make(map[int64]*entry)}
}

// Lock acquires the lock for key, blocking until it is available.
func (k *KeyedLock) Lock(key int64) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the lock for key. Unlocking a key that is not held panics,
// same as sync.Mutex.
func (k *KeyedLock) Unlock(key int64) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		k.mu.Unlock()
		panic("keyedlock: unlock of unlocked key")
	}
	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}
