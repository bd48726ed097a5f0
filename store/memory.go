package store

import (
	"context"
	"sync"

	"orderdash/models"
)

// MemoryStore is an in-memory SnapshotStore used by tests and by local
// runs without a database.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots []*models.Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, snap *models.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots = append(s.snapshots, snap)
	return nil
}

func (s *MemoryStore) Latest(_ context.Context) (*models.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.snapshots) == 0 {
		return nil, ErrNotFound
	}
	latest := s.snapshots[0]
	for _, snap := range s.snapshots[1:] {
		if snap.SubmittedAt.After(latest.SubmittedAt) {
			latest = snap
		}
	}
	return latest, nil
}
