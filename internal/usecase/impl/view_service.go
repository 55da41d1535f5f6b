package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "biolink/internal/delivery/context"
	"biolink/internal/domain/repository"
	"biolink/internal/infra/metrics"
	"biolink/internal/usecase"
)

// viewService implements the ViewUsecase interface.
type viewService struct {
	// mu serialises read-modify-write within this process only.
	mu     sync.Mutex
	views  repository.ViewCounterRepository
	logger *slog.Logger
}

// NewViewService is the constructor for viewService.
func NewViewService(views repository.ViewCounterRepository, logger *slog.Logger) usecase.ViewUsecase {
	return &viewService{
		views:  views,
		logger: logger,
	}
}

// log returns the request-scoped logger when present, otherwise the service logger.
func (srv *viewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Increment treats an unreadable counter as zero and ignores write failures,
// since some deployments serve from a read-only filesystem.
func (srv *viewService) Increment(ctx context.Context) int64 {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	current, err := srv.views.Load(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to read view counter, starting from zero", slog.Any("error", err))
		current = 0
	}

	next := current + 1
	if err := srv.views.Save(ctx, next); err != nil {
		srv.log(ctx).Warn("Failed to persist view counter", slog.Int64("views", next), slog.Any("error", err))
	}
	metrics.ViewsTotal.Inc()

	return next
}
