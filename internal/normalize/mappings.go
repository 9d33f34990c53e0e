package normalize

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"foodrisk/internal/domain"
)

// MappingLoader loads registered normalization overrides.
type MappingLoader interface {
	Load(ctx context.Context, minConfidence float64) ([]domain.Mapping, error)
}

// MappingCache holds registered overrides together with the time they were loaded.
// Nothing refreshes it implicitly; callers decide when via RefreshIfStale.
type MappingCache struct {
	loader        MappingLoader
	ttl           time.Duration
	minConfidence float64

	mu            sync.RWMutex
	values        map[domain.MappingKind]map[string]string
	lastRefreshed time.Time
}

func NewMappingCache(loader MappingLoader, ttl time.Duration, minConfidence float64) *MappingCache {
	return &MappingCache{
		loader:        loader,
		ttl:           ttl,
		minConfidence: minConfidence,
		values:        make(map[domain.MappingKind]map[string]string),
	}
}

// Stale reports whether the cache should be reloaded at now.
func (c *MappingCache) Stale(now time.Time) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastRefreshed.IsZero() || now.Sub(c.lastRefreshed) >= c.ttl
}

// RefreshIfStale reloads the overrides when older than the TTL and reports whether it did.
// On error the previous values stay in place.
func (c *MappingCache) RefreshIfStale(ctx context.Context, now time.Time) (bool, error) {
	if !c.Stale(now) {
		return false, nil
	}
	if err := c.Refresh(ctx, now); err != nil {
		return false, err
	}
	return true, nil
}

// Refresh unconditionally reloads the overrides.
func (c *MappingCache) Refresh(ctx context.Context, now time.Time) error {
	mappings, err := c.loader.Load(ctx, c.minConfidence)
	if err != nil {
		return fmt.Errorf("load mappings: %w", err)
	}

	values := make(map[domain.MappingKind]map[string]string)
	for _, m := range mappings {
		byKind, ok := values[m.Kind]
		if !ok {
			byKind = make(map[string]string)
			values[m.Kind] = byKind
		}
		byKind[mappingKey(m.RawValue)] = strings.TrimSpace(m.NormalizedValue)
	}

	c.mu.Lock()
	c.values = values
	c.lastRefreshed = now
	c.mu.Unlock()
	return nil
}

// Invalidate forces the next RefreshIfStale to reload.
func (c *MappingCache) Invalidate() {
	c.mu.Lock()
	c.lastRefreshed = time.Time{}
	c.mu.Unlock()
}

func (c *MappingCache) LastRefreshed() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastRefreshed
}

// Len returns the number of loaded overrides.
func (c *MappingCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, byKind := range c.values {
		n += len(byKind)
	}
	return n
}

// Lookup finds an override for raw, ignoring case and surrounding whitespace.
func (c *MappingCache) Lookup(kind domain.MappingKind, raw string) (string, bool) {
	if c == nil {
		return "", false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[kind][mappingKey(raw)]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func mappingKey(raw string) string {
	return strings.ToLower(collapseSpaces(Repair(raw)))
}
