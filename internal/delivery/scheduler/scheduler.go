// Package scheduler runs the periodic profile refresh as a delivery.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"biolink/config"
	"biolink/internal/delivery"
	"biolink/internal/domain/lifecycle"
	"biolink/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SchedulerParams holds dependencies for the refresh scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	RefreshUC usecase.RefreshUsecase
}

type refreshScheduler struct {
	interval  time.Duration
	refreshUC usecase.RefreshUsecase
	logger    *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
}

// NewScheduler creates the delivery that refreshes the profile cache once at
// start and then on a fixed interval.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	s := newRefreshScheduler(params.RefreshUC, params.Config.Presence.RefreshInterval, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newRefreshScheduler(refreshUC usecase.RefreshUsecase, interval time.Duration, logger *slog.Logger) *refreshScheduler {
	return &refreshScheduler{
		interval:  interval,
		refreshUC: refreshUC,
		logger:    logger,
		stopCh:    make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Serve blocks until ctx is cancelled or the scheduler is stopped.
func (s *refreshScheduler) Serve(ctx context.Context) error {
	defer close(s.done)

	if s.interval <= 0 {
		return errors.Errorf("invalid refresh interval %s", s.interval)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-s.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	s.logger.Info("Starting profile refresh scheduler", slog.Duration("interval", s.interval))
	s.refresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *refreshScheduler) refresh(ctx context.Context) {
	if err := s.refreshUC.Refresh(ctx); err != nil && ctx.Err() == nil {
		s.logger.Warn("Profile refresh failed", slog.Any("error", err))
	}
}

func (s *refreshScheduler) stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopCh) })

	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Stopping profile refresh scheduler")

	select {
	case <-s.done:
		return nil
	case <-shutdownCtx.Done():
		return errors.Wrap(shutdownCtx.Err(), "refresh scheduler did not stop")
	}
}
