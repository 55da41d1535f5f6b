package usecase

import "context"

// ViewUsecase counts page views.
type ViewUsecase interface {
	// Increment adds one view and returns the new total. Persisting the total
	// is best effort, so it never fails.
	Increment(ctx context.Context) int64
}
