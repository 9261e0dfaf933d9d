// Package lock provides named mutexes for serializing operations that
// touch one or two users at a time.
package lock

import (
	"sort"
	"sync"
)

// KeyedMutex hands out one mutex per key. Multi-key acquisition always
// locks in sorted key order so two overlapping dual-user operations
// cannot deadlock each other.
type KeyedMutex struct {
	mu      sync.Mutex
	mutexes map[string]*sync.Mutex
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{mutexes: make(map[string]*sync.Mutex)}
}

func (k *KeyedMutex) mutex(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	m, ok := k.mutexes[key]
	if !ok {
		m = &sync.Mutex{}
		k.mutexes[key] = m
	}
	return m
}

// Lock acquires the mutexes for the given keys (duplicates collapsed,
// sorted order) and returns the matching release function.
func (k *KeyedMutex) Lock(keys ...string) func() {
	unique := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, key)
	}
	sort.Strings(unique)

	locked := make([]*sync.Mutex, 0, len(unique))
	for _, key := range unique {
		m := k.mutex(key)
		m.Lock()
		locked = append(locked, m)
	}

	return func() {
		for i := len(locked) - 1; i >= 0; i-- {
			locked[i].Unlock()
		}
	}
}
