package testutil

import (
	"context"
	"sync"

	"github.com/arthur-debert/qualia/pkg/errors"
	"github.com/arthur-debert/qualia/pkg/settings"
)

// Write is one recorded MemoryStore.Set call
type Write struct {
	Key   settings.Key
	Value string
}

// MemoryStore is an in-memory settings.Store recording every write
type MemoryStore struct {
	mu          sync.Mutex
	name        string
	unavailable bool
	values      map[settings.Key]string
	writes      []Write
	failSet     map[settings.Key]bool
}

// NewMemoryStore creates an available store with the given name
func NewMemoryStore(name string) *MemoryStore {
	return &MemoryStore{
		name:    name,
		values:  map[settings.Key]string{},
		failSet: map[settings.Key]bool{},
	}
}

// SetUnavailable makes the store behave as if its client were missing
func (m *MemoryStore) SetUnavailable(unavailable bool) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unavailable = unavailable
	return m
}

// Seed sets a value without recording a write
func (m *MemoryStore) Seed(namespace, name, value string) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[settings.Key{Namespace: namespace, Name: name}] = value
	return m
}

// FailSet makes writes to key fail
func (m *MemoryStore) FailSet(namespace, name string) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failSet[settings.Key{Namespace: namespace, Name: name}] = true
	return m
}

func (m *MemoryStore) Name() string { return m.name }

func (m *MemoryStore) Available() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.unavailable
}

// Get returns the stored value, "" for unset keys
func (m *MemoryStore) Get(_ context.Context, key settings.Key) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return "", errors.Newf(errors.ErrStoreUnavailable, "'%s' not found", m.name)
	}
	return m.values[key], nil
}

// Set stores value and records the write
func (m *MemoryStore) Set(_ context.Context, key settings.Key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return errors.Newf(errors.ErrStoreUnavailable, "'%s' not found", m.name)
	}
	if m.failSet[key] {
		return errors.Newf(errors.ErrCommandFailed, "failed to set %s", key)
	}
	m.values[key] = value
	m.writes = append(m.writes, Write{Key: key, Value: value})
	return nil
}

// Value returns the current value of a key
func (m *MemoryStore) Value(namespace, name string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[settings.Key{Namespace: namespace, Name: name}]
}

// Writes returns every recorded write, in order
func (m *MemoryStore) Writes() []Write {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Write(nil), m.writes...)
}

// ResetWrites clears the write log, keeping values
func (m *MemoryStore) ResetWrites() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = nil
}
