package keylock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockerSerializesSameKey(t *testing.T) {
	t.Parallel()

	locker := New[string]()

	var (
		mu      sync.Mutex
		active  int
		maxSeen int
		wg      sync.WaitGroup
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locker.Lock("b1")
			defer unlock()

			mu.Lock()
			active++
			if active > maxSeen {
				maxSeen = active
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
}

func TestLockerDoesNotBlockOtherKeys(t *testing.T) {
	t.Parallel()

	locker := New[string]()
	unlock := locker.Lock("b1")
	defer unlock()

	done := make(chan struct{})
	go func() {
		release := locker.Lock("b2")
		release()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		require.FailNow(t, "lock on a different key was blocked")
	}
}

func TestLockerEvictsReleasedKeys(t *testing.T) {
	t.Parallel()

	locker := New[string]()
	unlock := locker.Lock("b1")

	acquired := make(chan func())
	go func() {
		acquired <- locker.Lock("b1")
	}()
	require.Eventually(t, func() bool {
		locker.mu.Lock()
		defer locker.mu.Unlock()
		return locker.locks["b1"] != nil && locker.locks["b1"].refs == 2
	}, time.Second, time.Millisecond)

	unlock()
	assert.Equal(t, 1, locker.size())

	second := <-acquired
	second()
	second()
	assert.Zero(t, locker.size())

	for i := 0; i < 32; i++ {
		locker.Lock(string(rune('a' + i%26)))()
	}
	assert.Zero(t, locker.size())
}
