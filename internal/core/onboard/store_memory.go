package onboard

import (
	"context"
	"sync"
	"time"

	"github.com/taibuivan/artistly/internal/platform/apperr"
)

type memoryEntry struct {
	draft     Draft
	expiresAt time.Time
}

// MemoryStore is the single-process [DraftStore].
//
// Expired entries are dropped lazily on access and by [MemoryStore.Sweep].
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates an empty store. A nil clock falls back to [time.Now].
func NewMemoryStore(ttl time.Duration, clock func() time.Time) *MemoryStore {
	if clock == nil {
		clock = time.Now
	}
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     clock,
	}
}

func (store *MemoryStore) Get(_ context.Context, id string) (Draft, error) {
	store.mu.RLock()
	entry, ok := store.entries[id]
	store.mu.RUnlock()

	if !ok || !store.now().Before(entry.expiresAt) {
		return Draft{}, apperr.NotFound("Draft")
	}
	return entry.draft.Clone(), nil
}

func (store *MemoryStore) Save(_ context.Context, draft Draft) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.entries[draft.ID] = memoryEntry{
		draft:     draft.Clone(),
		expiresAt: store.now().Add(store.ttl),
	}
	return nil
}

func (store *MemoryStore) Delete(_ context.Context, id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	delete(store.entries, id)
	return nil
}

// Sweep removes expired drafts and reports how many were dropped.
func (store *MemoryStore) Sweep() int {
	store.mu.Lock()
	defer store.mu.Unlock()

	now := store.now()
	removed := 0
	for id, entry := range store.entries {
		if !now.Before(entry.expiresAt) {
			delete(store.entries, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (store *MemoryStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			store.Sweep()
		}
	}
}
