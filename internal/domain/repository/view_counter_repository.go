package repository

import "context"

// ViewCounterRepository persists the page view counter as a whole document.
type ViewCounterRepository interface {
	// Load returns the stored count. Failures wrap domainerrors.ErrStorageUnavailable.
	Load(ctx context.Context) (int64, error)

	// Save overwrites the stored count.
	Save(ctx context.Context, views int64) error
}
