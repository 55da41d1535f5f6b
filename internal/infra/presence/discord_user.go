package presence

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"biolink/internal/domain/entity"

	"github.com/pkg/errors"
)

const maxResponseBytes = 1 << 20

// discordUser is the user object shared by the Discord REST API and Lanyard.
type discordUser struct {
	ID                   string `json:"id"`
	Username             string `json:"username"`
	GlobalName           string `json:"global_name"`
	Avatar               string `json:"avatar"`
	AvatarDecorationData *struct {
		Asset string `json:"asset"`
	} `json:"avatar_decoration_data"`
}

func (u discordUser) toPresence(requestedID string, status entity.PresenceStatus, cdn CDN, now time.Time) *entity.Presence {
	id := u.ID
	if id == "" {
		id = requestedID
	}

	username := u.GlobalName
	if username == "" {
		username = u.Username
	}

	var decoration string
	if u.AvatarDecorationData != nil {
		decoration = cdn.DecorationURL(u.AvatarDecorationData.Asset)
	}

	return &entity.Presence{
		ID:         id,
		Username:   username,
		Avatar:     cdn.AvatarURL(id, u.Avatar),
		Decoration: decoration,
		Status:     status,
		UpdatedAt:  now,
	}
}

// getJSON performs a GET and decodes a 2xx JSON body into out.
func getJSON(ctx context.Context, client *http.Client, url string, header http.Header, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("upstream returned non-success status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return errors.Wrap(err, "decode upstream body")
	}

	return nil
}
