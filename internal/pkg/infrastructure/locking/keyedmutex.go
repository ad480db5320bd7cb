package locking

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var ErrPurged = errors.New("lock purged")

// KeyedMutex hands out exclusive locks keyed by an opaque resource path,
// e.g. "/home/{userID}/{homeID}/{appCode}/{operation}". At most one holder
// per key; waiters are queued and served in strict FIFO order.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	holders int
	waiters []chan error
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		entries: make(map[string]*entry),
	}
}

// Key formats a resource path for a lock scoped to a home, user, app and
// operation name.
func Key(userID, homeID, appCode, operation string) string {
	return fmt.Sprintf("/home/%s/%s/%s/%s", userID, homeID, appCode, operation)
}

// Acquire blocks until the lock for key is held by the caller. When the
// caller's context is cancelled while queued, the waiter is removed from the
// queue and ctx.Err() is returned. A Purge of the key while queued returns
// ErrPurged. Callers must not proceed with the protected operation when an
// error is returned.
func (m *KeyedMutex) Acquire(ctx context.Context, key string) error {
	m.mu.Lock()

	e, ok := m.entries[key]
	if !ok {
		e = &entry{}
		m.entries[key] = e
	}

	if e.holders == 0 && len(e.waiters) == 0 {
		e.holders++
		m.mu.Unlock()
		return nil
	}

	wait := make(chan error, 1)
	e.waiters = append(e.waiters, wait)
	m.mu.Unlock()

	select {
	case err := <-wait:
		return err
	case <-ctx.Done():
		m.abandon(key, wait)
		// the lock may have been granted while we were giving up
		select {
		case err := <-wait:
			if err == nil {
				m.Release(key)
			}
		default:
		}
		return ctx.Err()
	}
}

// Release decrements the holder count for key and promotes the next FIFO
// waiter, if any. Releasing a key that is not held is a no-op.
func (m *KeyedMutex) Release(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return
	}

	if e.holders > 0 {
		e.holders--
	}

	m.take(key, e)
}

// take promotes exactly one queued waiter to holder. Caller must hold m.mu.
func (m *KeyedMutex) take(key string, e *entry) {
	if e.holders == 0 && len(e.waiters) > 0 {
		next := e.waiters[0]
		e.waiters = e.waiters[1:]
		e.holders++
		next <- nil
		return
	}

	if e.holders == 0 && len(e.waiters) == 0 {
		delete(m.entries, key)
	}
}

// Purge rejects every queued waiter for key with ErrPurged and resets the
// key's state. Used for resource cleanup, not part of the normal lifecycle.
func (m *KeyedMutex) Purge(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return
	}

	for _, w := range e.waiters {
		w <- ErrPurged
	}

	delete(m.entries, key)
}

func (m *KeyedMutex) abandon(key string, wait chan error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return
	}

	for i, w := range e.waiters {
		if w == wait {
			e.waiters = append(e.waiters[:i], e.waiters[i+1:]...)
			break
		}
	}

	if e.holders == 0 && len(e.waiters) == 0 {
		delete(m.entries, key)
	}
}
