package redis

import (
	"context"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/pkg/exceptions"
	"path"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// memoryRepository mimics the Redis semantics used by this service inside one process.
type memoryRepository struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryRepository() contracts.RedisRepository {
	return &memoryRepository{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (r *memoryRepository) lookup(key string) (memoryEntry, bool) {
	entry, ok := r.entries[key]
	if !ok {
		return entry, false
	}
	if !entry.expiresAt.IsZero() && r.now().After(entry.expiresAt) {
		delete(r.entries, key)
		return memoryEntry{}, false
	}
	return entry, true
}

func (r *memoryRepository) expiry(exp time.Duration) time.Time {
	if exp <= 0 {
		return time.Time{}
	}
	return r.now().Add(exp)
}

func (r *memoryRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
	return nil
}

func (r *memoryRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = memoryEntry{value: string(jsonValue), expiresAt: r.expiry(exp)}
	return nil
}

func (r *memoryRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, _ := r.lookup(key)
	return entry.value, nil
}

func (r *memoryRepository) Increment(ctx context.Context, key string) error {
	_, err := r.IncrementWithTTL(ctx, key, 0)
	return err
}

func (r *memoryRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.lookup(key)
	var current int64
	if ok {
		parsed, err := strconv.ParseInt(entry.value, 10, 64)
		if err != nil {
			return 0, exceptions.ErrRedisIncrement(err)
		}
		current = parsed
	} else {
		entry.expiresAt = r.expiry(ttl)
	}
	current++
	entry.value = strconv.FormatInt(current, 10)
	r.entries[key] = entry
	return current, nil
}

func (r *memoryRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return false, exceptions.ErrCannotMarshalJSON(err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lookup(key); ok {
		return false, nil
	}
	r.entries[key] = memoryEntry{value: string(jsonValue), expiresAt: r.expiry(exp)}
	return true, nil
}

func (r *memoryRepository) ScanKeys(ctx context.Context, pattern string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var keys []string
	for key := range r.entries {
		if _, ok := r.lookup(key); !ok {
			continue
		}
		if matched, _ := path.Match(pattern, key); matched {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}
