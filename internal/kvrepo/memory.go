// Package kvrepo provides key-value namespaces backing the record store.
package kvrepo

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
)

// ErrQuotaExceeded is returned when a write would grow the namespace past its quota.
var ErrQuotaExceeded = errors.New("namespace quota exceeded")

// Memory is an in-process namespace. Its content is lost on restart.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
	size   int
	quota  int
}

// NewMemory returns Memory limited to quota bytes of keys and values.
// A quota of zero or less means unlimited.
func NewMemory(quota int) *Memory {
	return &Memory{
		values: make(map[string]string),
		quota:  quota,
	}
}

// Get returns the value stored under key.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]

	return v, ok, nil
}

// Set stores value under key, rejecting writes over the quota.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	size := m.size + len(value)
	if old, ok := m.values[key]; ok {
		size -= len(old)
	} else {
		size += len(key)
	}

	if m.quota > 0 && size > m.quota {
		return ErrQuotaExceeded
	}

	m.values[key] = value
	m.size = size

	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.values[key]; ok {
		m.size -= len(key) + len(old)
		delete(m.values, key)
	}

	return nil
}

// Keys returns sorted keys starting with prefix.
func (m *Memory) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0)

	for k := range m.values {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}

	sort.Strings(keys)

	return keys, nil
}

// Size returns the number of bytes used by keys and values.
func (m *Memory) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.size
}
