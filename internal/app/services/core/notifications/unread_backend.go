package notifications

import (
	"context"
	"fmt"
	"konsulin-portal/internal/app/contracts"
	"konsulin-portal/internal/pkg/constvars"
	"strconv"
	"sync"
	"time"
)

type memoryEntry struct {
	count     int
	expiresAt time.Time
}

// memoryBackend keeps counts in process. A zero ttl never expires.
type memoryBackend struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

func NewMemoryBackend(ttl time.Duration) contracts.UnreadCountBackend {
	return &memoryBackend{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (b *memoryBackend) Load(ctx context.Context, userID string) (int, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	entry, ok := b.entries[userID]
	if !ok {
		return 0, false, nil
	}
	if !entry.expiresAt.IsZero() && b.now().After(entry.expiresAt) {
		delete(b.entries, userID)
		return 0, false, nil
	}
	return entry.count, true, nil
}

func (b *memoryBackend) Save(ctx context.Context, userID string, count int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	entry := memoryEntry{count: count}
	if b.ttl > 0 {
		entry.expiresAt = b.now().Add(b.ttl)
	}
	b.entries[userID] = entry
	return nil
}

func (b *memoryBackend) Invalidate(ctx context.Context, userID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.entries, userID)
	return nil
}

type redisBackend struct {
	repository contracts.RedisRepository
	ttl        time.Duration
}

// NewRedisBackend stores one key per user under portal:unread:{userID}.
func NewRedisBackend(repository contracts.RedisRepository, ttl time.Duration) contracts.UnreadCountBackend {
	return &redisBackend{repository: repository, ttl: ttl}
}

func (b *redisBackend) Load(ctx context.Context, userID string) (int, bool, error) {
	value, err := b.repository.Get(ctx, unreadKey(userID))
	if err != nil {
		return 0, false, err
	}
	if value == "" {
		return 0, false, nil
	}
	count, err := strconv.Atoi(value)
	if err != nil {
		return 0, false, nil
	}
	return count, true, nil
}

func (b *redisBackend) Save(ctx context.Context, userID string, count int) error {
	return b.repository.Set(ctx, unreadKey(userID), count, b.ttl)
}

func (b *redisBackend) Invalidate(ctx context.Context, userID string) error {
	return b.repository.Delete(ctx, unreadKey(userID))
}

func unreadKey(userID string) string {
	return fmt.Sprintf(constvars.RedisKeyUnreadCountFormat, userID)
}
