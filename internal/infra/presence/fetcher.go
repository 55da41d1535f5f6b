package presence

import (
	"context"
	"log/slog"

	"biolink/internal/domain/entity"
	"biolink/internal/domain/service"
	"biolink/internal/infra/metrics"

	"github.com/pkg/errors"
)

// errSkipped marks a lookup that was not attempted, e.g. no credential.
var errSkipped = errors.New("presence lookup skipped")

type fetchFunc func(ctx context.Context, userID string) (*entity.Presence, error)

// fetcher adapts a strategy's fetchFunc to the never-failing PresenceFetcher
// contract: errors are logged and counted, and the caller sees nil.
type fetcher struct {
	name   string
	fetch  fetchFunc
	logger *slog.Logger
}

func newFetcher(name string, fetch fetchFunc, logger *slog.Logger) service.PresenceFetcher {
	return &fetcher{
		name:   name,
		fetch:  fetch,
		logger: logger,
	}
}

func (f *fetcher) Name() string {
	return f.name
}

func (f *fetcher) FetchPresence(ctx context.Context, userID string) *entity.Presence {
	if userID == "" {
		return nil
	}

	presence, err := f.fetch(ctx, userID)
	switch {
	case errors.Is(err, errSkipped):
		metrics.PresenceFetchTotal.WithLabelValues(f.name, metrics.ResultSkipped).Inc()
		f.logger.Debug("Presence lookup skipped",
			slog.String("provider", f.name),
			slog.String("user_id", userID),
		)

		return nil
	case err != nil:
		metrics.PresenceFetchTotal.WithLabelValues(f.name, metrics.ResultFailure).Inc()
		f.logger.Warn("Presence fetch failed",
			slog.String("provider", f.name),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)

		return nil
	}

	metrics.PresenceFetchTotal.WithLabelValues(f.name, metrics.ResultSuccess).Inc()

	return presence
}
