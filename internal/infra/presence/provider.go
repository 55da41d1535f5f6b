package presence

import (
	"context"
	"log/slog"
	"net/http"

	"biolink/config"
	"biolink/internal/domain/entity"
	"biolink/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderNone disables presence lookups entirely.
const ProviderNone = "none"

// noopFetcher is used when presence lookups are disabled
type noopFetcher struct{}

func (noopFetcher) Name() string { return ProviderNone }

func (noopFetcher) FetchPresence(context.Context, string) *entity.Presence { return nil }

// FetcherParams holds dependencies for PresenceFetcher, injected by Fx
type FetcherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPresenceFetcher picks exactly one presence strategy from configuration.
// An empty provider selects discord when a bot token is configured, else lanyard.
func NewPresenceFetcher(params FetcherParams) (service.PresenceFetcher, error) {
	cfg := params.Config.Presence
	token := params.Config.Discord.BotToken
	logger := params.Logger

	provider := cfg.Provider
	if provider == "" {
		provider = ProviderLanyard
		if token != "" {
			provider = ProviderDiscord
		}
	}

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	cdn := NewCDN(cfg.CDNBaseURL)

	switch provider {
	case ProviderLanyard:
		logger.Info("Using Lanyard presence provider", slog.String("base_url", cfg.LanyardBaseURL))

		return NewLanyardFetcher(cfg.LanyardBaseURL, cdn, httpClient, logger), nil

	case ProviderDiscord:
		if token == "" {
			logger.Warn("Discord presence provider selected without a bot token; presence disabled")
		} else {
			logger.Info("Using Discord bot presence provider", slog.String("base_url", cfg.DiscordAPIBaseURL))
		}

		return NewDiscordFetcher(cfg.DiscordAPIBaseURL, token, cdn, httpClient, logger), nil

	case ProviderNone:
		logger.Info("Presence lookups disabled")

		return noopFetcher{}, nil

	default:
		return nil, errors.Errorf("unknown presence provider: %s", provider)
	}
}
