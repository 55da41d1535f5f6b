package usecase

import "context"

// RefreshUsecase rebuilds the profile snapshot from configuration and live presence.
type RefreshUsecase interface {
	// Refresh loads every config, fetches presence for all of them concurrently
	// and publishes the result as one snapshot.
	Refresh(ctx context.Context) error
}
