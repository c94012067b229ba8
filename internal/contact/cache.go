package contact

import (
	"context"
	"fmt"
	"log"
)

// CacheKey is the well-known key the cached log is stored under.
const CacheKey = "contactSubmissions"

// KV is the local persisted key/value storage backing the cache.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Remover is implemented by KV stores that can delete a key.
type Remover interface {
	Remove(ctx context.Context, key string) error
}

// Cache is the local cached copy of the submission log.
type Cache struct {
	kv  KV
	key string
}

// NewCache returns a cache stored under CacheKey.
func NewCache(kv KV) *Cache {
	return &Cache{kv: kv, key: CacheKey}
}

// Load returns the cached log. Unreadable or corrupt content is treated as
// an empty log.
func (c *Cache) Load(ctx context.Context) Log {
	raw, ok, err := c.kv.Get(ctx, c.key)
	if err != nil {
		log.Printf("contact: reading cached submissions: %v", err)
		return Log{}
	}
	if !ok {
		return Log{}
	}
	l, err := ParseLog([]byte(raw))
	if err != nil {
		log.Printf("contact: failed to parse stored submissions: %v", err)
		return Log{}
	}
	return l
}

// Append adds r to the cached log and returns the updated log. The
// returned log is valid even when persisting it fails.
func (c *Cache) Append(ctx context.Context, r Record) (Log, error) {
	l := c.Load(ctx).Append(r)
	data, err := l.Compact()
	if err != nil {
		return l, fmt.Errorf("encoding cached submissions: %w", err)
	}
	if err := c.kv.Set(ctx, c.key, string(data)); err != nil {
		return l, fmt.Errorf("persisting cached submissions: %w", err)
	}
	return l, nil
}

// Clear empties the cached log, deleting the key when the store supports it.
func (c *Cache) Clear(ctx context.Context) error {
	if r, ok := c.kv.(Remover); ok {
		if err := r.Remove(ctx, c.key); err != nil {
			return fmt.Errorf("clearing cached submissions: %w", err)
		}
		return nil
	}
	if err := c.kv.Set(ctx, c.key, "[]"); err != nil {
		return fmt.Errorf("clearing cached submissions: %w", err)
	}
	return nil
}
