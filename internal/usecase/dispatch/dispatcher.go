// Package dispatch serializes webhook processing per transaction id
// while bounding overall concurrency. It replaces a global event
// emitter: handlers call Do synchronously so typed errors propagate to
// the gateway and trigger its redelivery policy.
package dispatch

import (
	"context"
	"sync"
)

const defaultMaxConcurrent = 32

type keyLock struct {
	mu   sync.Mutex
	refs int
}

type Dispatcher struct {
	mu    sync.Mutex
	locks map[string]*keyLock
	sem   chan struct{}
}

func New(maxConcurrent int) *Dispatcher {
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrent
	}
	return &Dispatcher{
		locks: make(map[string]*keyLock),
		sem:   make(chan struct{}, maxConcurrent),
	}
}

// Do runs fn while holding the lock for key. Concurrent calls with the
// same key run one at a time; calls with distinct keys run in parallel
// up to the concurrency bound.
func (d *Dispatcher) Do(ctx context.Context, key string, fn func() error) error {
	select {
	case d.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-d.sem }()

	lock := d.acquire(key)
	lock.mu.Lock()
	defer func() {
		lock.mu.Unlock()
		d.release(key)
	}()

	return fn()
}

func (d *Dispatcher) acquire(key string) *keyLock {
	d.mu.Lock()
	defer d.mu.Unlock()

	lock, ok := d.locks[key]
	if !ok {
		lock = &keyLock{}
		d.locks[key] = lock
	}
	lock.refs++
	return lock
}

func (d *Dispatcher) release(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	lock := d.locks[key]
	lock.refs--
	if lock.refs == 0 {
		delete(d.locks, key)
	}
}
