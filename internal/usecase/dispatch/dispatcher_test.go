//go:build unit

package dispatch

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_SerializesSameKey(t *testing.T) {
	d := New(8)

	var active, maxActive int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := d.Do(context.Background(), "tx-1", func() error {
				cur := atomic.AddInt32(&active, 1)
				for {
					prev := atomic.LoadInt32(&maxActive)
					if cur <= prev || atomic.CompareAndSwapInt32(&maxActive, prev, cur) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&active, -1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxActive))
}

func TestDo_DistinctKeysRunConcurrently(t *testing.T) {
	d := New(4)

	started := make(chan struct{}, 2)
	release := make(chan struct{})
	var wg sync.WaitGroup
	for _, key := range []string{"tx-a", "tx-b"} {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			_ = d.Do(context.Background(), key, func() error {
				started <- struct{}{}
				<-release
				return nil
			})
		}(key)
	}

	for i := 0; i < 2; i++ {
		select {
		case <-started:
		case <-time.After(time.Second):
			t.Fatal("keys did not run concurrently")
		}
	}
	close(release)
	wg.Wait()
}

func TestDo_ContextCancelledWhileWaiting(t *testing.T) {
	d := New(1)

	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = d.Do(context.Background(), "tx-1", func() error {
			<-release
			return nil
		})
	}()

	// Wait until the first call holds the single slot.
	require.Eventually(t, func() bool { return len(d.sem) == 1 }, time.Second, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := d.Do(ctx, "tx-2", func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
	wg.Wait()
}

func TestDo_LockTableDrains(t *testing.T) {
	d := New(2)

	require.NoError(t, d.Do(context.Background(), "tx-1", func() error { return nil }))

	d.mu.Lock()
	defer d.mu.Unlock()
	assert.Empty(t, d.locks)
}
