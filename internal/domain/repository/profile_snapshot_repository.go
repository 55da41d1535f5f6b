package repository

import (
	"context"

	"biolink/internal/domain/entity"
)

// ProfileSnapshotRepository is the in-memory store of refreshed profiles.
// Writers replace the whole snapshot; readers never see a partial update.
type ProfileSnapshotRepository interface {
	// Snapshot returns the current snapshot; never nil.
	Snapshot() *entity.Snapshot

	// Replace publishes profiles as the next snapshot and marks the store ready.
	Replace(profiles []entity.Profile, mainID string) *entity.Snapshot

	// MarkReady releases readers waiting for the first refresh.
	MarkReady()

	// IsReady reports whether the first refresh has completed.
	IsReady() bool

	// WaitReady blocks until the first refresh completed or ctx is done.
	WaitReady(ctx context.Context) error
}
