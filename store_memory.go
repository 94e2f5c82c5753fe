package swt

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// storeEntry is a stored wire string with its expiration time.
type storeEntry struct {
	wire      string
	expiresAt time.Time
}

// MemoryTokenStore is an in-memory TokenStore. Suitable for
// development, testing, or single-instance deployments.
type MemoryTokenStore struct {
	mu          sync.RWMutex
	tokens      map[string]storeEntry
	stopCleanup chan struct{}
	closeOnce   sync.Once
}

var _ TokenStore = (*MemoryTokenStore)(nil)

// NewMemoryTokenStore creates an in-memory token store.
// cleanupInterval determines how often expired entries are removed
// (default: 5 minutes). Call Close to stop the cleanup goroutine.
func NewMemoryTokenStore(cleanupInterval time.Duration) *MemoryTokenStore {
	if cleanupInterval <= 0 {
		cleanupInterval = 5 * time.Minute
	}

	store := &MemoryTokenStore{
		tokens:      make(map[string]storeEntry),
		stopCleanup: make(chan struct{}),
	}

	go store.periodicCleanup(cleanupInterval)

	return store
}

// Save stores wire under id for ttl.
func (m *MemoryTokenStore) Save(ctx context.Context, id string, wire string, ttl time.Duration) error {
	if id == "" {
		return fmt.Errorf("swt: token ID cannot be empty")
	}
	if wire == "" {
		return fmt.Errorf("swt: wire text cannot be empty")
	}
	if ttl <= 0 {
		return fmt.Errorf("swt: ttl must be positive")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.tokens[hashStoreKey(id)] = storeEntry{
		wire:      wire,
		expiresAt: time.Now().Add(ttl),
	}

	return nil
}

// Load returns the wire string stored under id. Expired entries count
// as missing even before the cleanup pass removes them.
func (m *MemoryTokenStore) Load(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("swt: token ID cannot be empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.tokens[hashStoreKey(id)]
	if !ok || time.Now().After(entry.expiresAt) {
		return "", ErrTokenNotFound
	}

	return entry.wire, nil
}

// Delete removes the token stored under id, if any.
func (m *MemoryTokenStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("swt: token ID cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.tokens, hashStoreKey(id))

	return nil
}

// Exists reports whether a live token is stored under id.
func (m *MemoryTokenStore) Exists(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("swt: token ID cannot be empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.tokens[hashStoreKey(id)]
	return ok && time.Now().Before(entry.expiresAt), nil
}

// Close stops the background cleanup goroutine. The store remains
// usable; expired entries are then dropped lazily on access.
func (m *MemoryTokenStore) Close() {
	m.closeOnce.Do(func() {
		close(m.stopCleanup)
	})
}

func (m *MemoryTokenStore) periodicCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.removeExpired()
		case <-m.stopCleanup:
			return
		}
	}
}

func (m *MemoryTokenStore) removeExpired() {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for key, entry := range m.tokens {
		if now.After(entry.expiresAt) {
			delete(m.tokens, key)
		}
	}
}
