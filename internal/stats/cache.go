package stats

import "sync"

// Cache memoizes snapshots by data revision. The reactive original only
// recomputed when its input collections changed identity; here the store's
// monotonic revision plays that role: a snapshot is rebuilt only when the
// revision has moved.
type Cache struct {
	mu       sync.Mutex
	revision int64
	snap     *Snapshot
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{revision: -1}
}

// Snapshot returns the cached snapshot when the revision is current,
// otherwise calls load, stores the result, and returns it.
func (c *Cache) Snapshot(revision int64, load func() (*Snapshot, error)) (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snap != nil && c.revision == revision {
		return c.snap, nil
	}
	snap, err := load()
	if err != nil {
		return nil, err
	}
	c.snap = snap
	c.revision = revision
	return snap, nil
}
