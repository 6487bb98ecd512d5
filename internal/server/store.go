package server

import (
	"github.com/ifancyabroad/the-nightingames/internal/stats"
	"github.com/ifancyabroad/the-nightingames/internal/storage"
)

// store serves snapshots to handlers, rebuilding only when the data revision
// has moved since the last load.
type store struct {
	db    *storage.DB
	cache *stats.Cache
}

func newStore(db *storage.DB) *store {
	return &store{db: db, cache: stats.NewCache()}
}

func (s *store) snapshot() (*stats.Snapshot, error) {
	rev, err := s.db.Revision()
	if err != nil {
		return nil, err
	}
	return s.cache.Snapshot(rev, s.db.LoadSnapshot)
}
