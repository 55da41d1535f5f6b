package presence

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"biolink/internal/domain/entity"
	"biolink/internal/domain/service"

	"github.com/pkg/errors"
)

// ProviderLanyard queries the public Lanyard REST API.
const ProviderLanyard = "lanyard"

type lanyardResponse struct {
	Success bool `json:"success"`
	Data    struct {
		DiscordUser   discordUser `json:"discord_user"`
		DiscordStatus string      `json:"discord_status"`
	} `json:"data"`
}

type lanyardFetcher struct {
	baseURL    string
	cdn        CDN
	httpClient *http.Client
}

// NewLanyardFetcher creates an unauthenticated fetcher that also reports live status.
func NewLanyardFetcher(baseURL string, cdn CDN, httpClient *http.Client, logger *slog.Logger) service.PresenceFetcher {
	f := &lanyardFetcher{
		baseURL:    strings.TrimRight(baseURL, "/"),
		cdn:        cdn,
		httpClient: httpClient,
	}

	return newFetcher(ProviderLanyard, f.fetch, logger)
}

func (f *lanyardFetcher) fetch(ctx context.Context, userID string) (*entity.Presence, error) {
	var body lanyardResponse
	if err := getJSON(ctx, f.httpClient, f.baseURL+"/users/"+url.PathEscape(userID), nil, &body); err != nil {
		return nil, err
	}

	if !body.Success {
		return nil, errors.Errorf("lanyard reported failure for user %s", userID)
	}

	status := entity.ParsePresenceStatus(body.Data.DiscordStatus)

	return body.Data.DiscordUser.toPresence(userID, status, f.cdn, time.Now()), nil
}
