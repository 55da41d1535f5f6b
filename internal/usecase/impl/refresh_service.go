// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"biolink/config"
	deliverycontext "biolink/internal/delivery/context"
	"biolink/internal/domain/entity"
	"biolink/internal/domain/profile"
	"biolink/internal/domain/repository"
	"biolink/internal/domain/service"
	"biolink/internal/infra/metrics"
	"biolink/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// refreshService implements the RefreshUsecase interface.
type refreshService struct {
	mu sync.Mutex

	configs  repository.ProfileConfigRepository
	snapshot repository.ProfileSnapshotRepository
	fetcher  service.PresenceFetcher
	mainID   string
	logger   *slog.Logger
}

// NewRefreshService is the constructor for refreshService.
func NewRefreshService(
	configs repository.ProfileConfigRepository,
	snapshot repository.ProfileSnapshotRepository,
	fetcher service.PresenceFetcher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.RefreshUsecase {
	return &refreshService{
		configs:  configs,
		snapshot: snapshot,
		fetcher:  fetcher,
		mainID:   cfg.Discord.UserID,
		logger:   logger,
	}
}

// log returns the request-scoped logger when present, otherwise the service logger.
func (srv *refreshService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Refresh rebuilds the snapshot. Overlapping calls run one after another.
// When the configuration cannot be read the previous snapshot stays in place,
// but waiting readers are still released.
func (srv *refreshService) Refresh(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	start := time.Now()
	defer func() {
		metrics.ProfileRefreshDuration.Observe(time.Since(start).Seconds())
	}()

	configs, err := srv.configs.List(ctx)
	if err != nil {
		srv.snapshot.MarkReady()
		metrics.ProfileRefreshTotal.WithLabelValues(metrics.ResultFailure).Inc()
		srv.log(ctx).Error("Failed to load profile configs, keeping previous snapshot", slog.Any("error", err))

		return errors.Wrap(err, "failed to load profile configs")
	}

	presences := make([]*entity.Presence, len(configs))
	group, groupCtx := errgroup.WithContext(ctx)
	for i := range configs {
		group.Go(func() error {
			presences[i] = srv.fetcher.FetchPresence(groupCtx, configs[i].ID)

			return nil
		})
	}
	// fetches never return an error
	_ = group.Wait()

	profiles := make([]entity.Profile, 0, len(configs))
	resolved := 0
	for i, cfg := range configs {
		if presences[i] != nil {
			resolved++
		}
		profiles = append(profiles, profile.Candidate(cfg, presences[i]))
	}

	next := srv.snapshot.Replace(profiles, srv.mainID)
	metrics.ProfileRefreshTotal.WithLabelValues(metrics.ResultSuccess).Inc()

	srv.log(ctx).Info("Updated profiles",
		slog.Int("profiles", len(profiles)),
		slog.Int("with_presence", resolved),
		slog.String("provider", srv.fetcher.Name()),
		slog.Uint64("version", next.Version),
	)

	return nil
}
