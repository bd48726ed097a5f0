// Package store persists dashboard snapshots. The history is append-only;
// read paths only ever want the most recently submitted snapshot, so two
// near-simultaneous uploads racing is accepted — the later submitted_at
// wins for subsequent reads.
package store

import (
	"context"
	"errors"

	"orderdash/models"
)

// ErrNotFound is returned by Latest when no snapshot has been stored yet.
var ErrNotFound = errors.New("no snapshot found")

// SnapshotStore is the append-only snapshot log.
type SnapshotStore interface {
	// Append stores a new snapshot. Snapshots are never updated in place.
	Append(ctx context.Context, snap *models.Snapshot) error
	// Latest returns the most recently submitted snapshot, or ErrNotFound.
	Latest(ctx context.Context) (*models.Snapshot, error)
}
