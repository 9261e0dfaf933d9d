package lock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_MutualExclusion(t *testing.T) {
	locks := NewKeyedMutex()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("user-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	locks := NewKeyedMutex()

	unlockA := locks.Lock("user-a")
	defer unlockA()

	// A different key must not block.
	done := make(chan struct{})
	go func() {
		unlockB := locks.Lock("user-b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on independent key blocked")
	}
}

func TestKeyedMutex_ReverseOrderPairs(t *testing.T) {
	locks := NewKeyedMutex()

	// Two goroutines taking the same pair in opposite argument order must
	// not deadlock.
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("user-a", "user-b")
			defer unlock()
		}()
		go func() {
			defer wg.Done()
			unlock := locks.Lock("user-b", "user-a")
			defer unlock()
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("reverse-order pair acquisition deadlocked")
	}
}

func TestKeyedMutex_DuplicateKeysCollapsed(t *testing.T) {
	locks := NewKeyedMutex()

	// Duplicate keys would self-deadlock if not collapsed.
	done := make(chan struct{})
	go func() {
		unlock := locks.Lock("user-a", "user-a")
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("duplicate key acquisition deadlocked")
	}
}
