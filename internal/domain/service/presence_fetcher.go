package service

import (
	"context"

	"biolink/internal/domain/entity"
)

// PresenceFetcher retrieves live presence for one user.
type PresenceFetcher interface {
	// Name identifies the strategy in logs and metrics.
	Name() string

	// FetchPresence never fails: any error is logged and reported as nil.
	FetchPresence(ctx context.Context, userID string) *entity.Presence
}
