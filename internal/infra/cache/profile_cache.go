// Package cache holds the process-wide profile snapshot.
package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"biolink/internal/domain/entity"
	"biolink/internal/infra/metrics"

	"github.com/pkg/errors"
)

// ProfileCache publishes immutable snapshots. The refresh task is the only
// writer; readers load the current pointer and never observe a partial update.
type ProfileCache struct {
	snapshot  atomic.Pointer[entity.Snapshot]
	ready     chan struct{}
	readyOnce sync.Once
	now       func() time.Time
}

// NewProfileCache returns a cache holding an empty, not-yet-ready snapshot.
func NewProfileCache() *ProfileCache {
	c := &ProfileCache{
		ready: make(chan struct{}),
		now:   time.Now,
	}
	c.snapshot.Store(&entity.Snapshot{Profiles: []entity.Profile{}})

	return c
}

// Snapshot returns the current snapshot. It is never nil.
func (c *ProfileCache) Snapshot() *entity.Snapshot {
	return c.snapshot.Load()
}

// Replace swaps in a new snapshot built from profiles and marks the cache ready.
// The profile with mainID becomes Main; when mainID is empty or absent the
// first profile is used.
func (c *ProfileCache) Replace(profiles []entity.Profile, mainID string) *entity.Snapshot {
	owned := make([]entity.Profile, len(profiles))
	copy(owned, profiles)

	next := &entity.Snapshot{
		Version:     c.Snapshot().Version + 1,
		Profiles:    owned,
		RefreshedAt: c.now(),
	}
	next.Main = next.Find(mainID)
	if next.Main == nil && len(owned) > 0 {
		next.Main = &owned[0]
	}

	c.snapshot.Store(next)
	metrics.CachedProfiles.Set(float64(len(owned)))
	c.MarkReady()

	return next
}

// MarkReady releases readers waiting for the first refresh, successful or not.
func (c *ProfileCache) MarkReady() {
	c.readyOnce.Do(func() { close(c.ready) })
}

// Ready is closed once the first refresh has finished.
func (c *ProfileCache) Ready() <-chan struct{} {
	return c.ready
}

// IsReady reports whether the first refresh has finished.
func (c *ProfileCache) IsReady() bool {
	select {
	case <-c.ready:
		return true
	default:
		return false
	}
}

// WaitReady blocks until the first refresh finished or ctx is done.
func (c *ProfileCache) WaitReady(ctx context.Context) error {
	select {
	case <-c.ready:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
