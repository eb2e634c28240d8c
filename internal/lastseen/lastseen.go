// Package lastseen keeps, per owner, the moment the activity feed was last
// acknowledged. The unseen counter compares record timestamps against it.
package lastseen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cradoe/biodata/internal/cache"
)

// DefaultWindow is how far back the counter looks for an owner with no marker.
const DefaultWindow = 24 * time.Hour

const keyPrefix = "activity:last_seen:"

type Marker struct {
	At      time.Time `json:"at"`
	Version int64     `json:"version"`
}

// Next returns the marker that replaces m when the feed is marked as seen at now.
func (m Marker) Next(now time.Time) Marker {
	return Marker{At: now.UTC(), Version: m.Version + 1}
}

// Effective is the instant the counter compares against.
func Effective(m Marker, found bool, now time.Time) time.Time {
	if !found || m.At.IsZero() {
		return now.Add(-DefaultWindow)
	}
	return m.At
}

type Store interface {
	Get(ctx context.Context, ownerID string) (Marker, bool, error)
	Set(ctx context.Context, ownerID string, marker Marker) error
}

// KV is the subset of the cache the redis store needs.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, expiration time.Duration) error
}

type RedisStore struct {
	kv KV
}

func NewRedisStore(kv KV) *RedisStore {
	return &RedisStore{kv: kv}
}

func (s *RedisStore) Get(ctx context.Context, ownerID string) (Marker, bool, error) {
	raw, err := s.kv.Get(ctx, keyPrefix+ownerID)
	if errors.Is(err, cache.ErrMiss) {
		return Marker{}, false, nil
	}
	if err != nil {
		return Marker{}, false, fmt.Errorf("read last-seen marker: %w", err)
	}

	var m Marker
	if err := json.Unmarshal(raw, &m); err != nil {
		return Marker{}, false, fmt.Errorf("decode last-seen marker: %w", err)
	}
	return m, true, nil
}

func (s *RedisStore) Set(ctx context.Context, ownerID string, marker Marker) error {
	raw, err := json.Marshal(marker)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, keyPrefix+ownerID, raw, 0); err != nil {
		return fmt.Errorf("write last-seen marker: %w", err)
	}
	return nil
}

// MemoryStore keeps markers in process. The service falls back to it when
// REDIS_SERVER is empty.
type MemoryStore struct {
	mu      sync.RWMutex
	markers map[string]Marker
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{markers: make(map[string]Marker)}
}

func (s *MemoryStore) Get(_ context.Context, ownerID string) (Marker, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.markers[ownerID]
	return m, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, ownerID string, marker Marker) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.markers[ownerID] = marker
	return nil
}
