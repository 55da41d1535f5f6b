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
)

// ProviderDiscord queries the Discord REST API with a bot token.
const ProviderDiscord = "discord"

type discordFetcher struct {
	baseURL    string
	token      string
	cdn        CDN
	httpClient *http.Client
}

// NewDiscordFetcher creates a bot-token fetcher. The Discord user endpoint
// carries no presence status, so records from it have an empty Status.
func NewDiscordFetcher(baseURL, token string, cdn CDN, httpClient *http.Client, logger *slog.Logger) service.PresenceFetcher {
	f := &discordFetcher{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		cdn:        cdn,
		httpClient: httpClient,
	}

	return newFetcher(ProviderDiscord, f.fetch, logger)
}

func (f *discordFetcher) fetch(ctx context.Context, userID string) (*entity.Presence, error) {
	if f.token == "" {
		return nil, errSkipped
	}

	header := http.Header{}
	header.Set("Authorization", "Bot "+f.token)

	var user discordUser
	if err := getJSON(ctx, f.httpClient, f.baseURL+"/users/"+url.PathEscape(userID), header, &user); err != nil {
		return nil, err
	}

	return user.toPresence(userID, "", f.cdn, time.Now()), nil
}
