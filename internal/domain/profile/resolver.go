// Package profile reconciles authored profile configuration with cached
// presence data. Every output field follows one documented precedence rule:
// a non-empty config value wins over a non-empty cached value, which wins
// over the field's literal default.
package profile

import (
	"maps"

	"biolink/internal/domain/entity"
)

const (
	// UnknownUsername is the last-resort username.
	UnknownUsername = "Unknown User"

	// DefaultAvatarURL is the placeholder avatar used when nothing else resolves.
	DefaultAvatarURL = "https://cdn.discordapp.com/embed/avatars/0.png"
)

// SiteDefaults supplies the card fallbacks that depend on the deployment.
type SiteDefaults struct {
	Name        string
	Description string
}

// FindBySlugOrID returns the first config whose slug equals slug or whose id
// equals id. A slug match anywhere in the list wins over an id match.
func FindBySlugOrID(configs []entity.ProfileConfig, slug, id string) *entity.ProfileConfig {
	if slug != "" {
		for i := range configs {
			if configs[i].Slug == slug {
				return &configs[i]
			}
		}
	}

	if id != "" {
		for i := range configs {
			if configs[i].ID == id {
				return &configs[i]
			}
		}
	}

	return nil
}

// FindByID returns the config with the given id, or nil.
func FindByID(configs []entity.ProfileConfig, id string) *entity.ProfileConfig {
	return FindBySlugOrID(configs, "", id)
}

// Resolve merges cfg and cached into a response-ready profile.
// It reports false when both inputs are nil so callers can tell an unknown
// user apart from a known user with minimal data.
func Resolve(cfg *entity.ProfileConfig, cached *entity.Profile) (*entity.Profile, bool) {
	if cfg == nil && cached == nil {
		return nil, false
	}

	var c entity.ProfileConfig
	if cfg != nil {
		c = *cfg
	}

	var p entity.Profile
	if cached != nil {
		p = *cached
	}

	return &entity.Profile{
		ID:         first(c.ID, p.ID),
		Slug:       first(c.Slug, p.Slug),
		Username:   first(c.Username, p.Username, c.Slug, UnknownUsername),
		Avatar:     first(c.Avatar, p.Avatar, DefaultAvatarURL),
		Decoration: p.Decoration,
		Status:     p.Status,
		Bio:        first(c.Bio, p.Bio),
		Background: first(c.Background, p.Background),
		Music:      first(c.Music, p.Music),
		MusicMeta:  firstMusicMeta(c.MusicMeta, p.MusicMeta),
		Socials:    firstSocials(c.Socials, p.Socials),
		UpdatedAt:  p.UpdatedAt,
	}, true
}

// Candidate builds the cache record for one config during a refresh.
// presence may be nil when the fetch failed.
func Candidate(cfg entity.ProfileConfig, presence *entity.Presence) entity.Profile {
	var live entity.Presence
	if presence != nil {
		live = *presence
	}

	candidate := entity.Profile{
		ID:         cfg.ID,
		Slug:       cfg.Slug,
		Username:   first(cfg.Username, live.Username, UnknownUsername),
		Avatar:     first(cfg.Avatar, live.Avatar, DefaultAvatarURL),
		Decoration: live.Decoration,
		Status:     live.Status,
		Bio:        cfg.Bio,
		Background: cfg.Background,
		Music:      cfg.Music,
		MusicMeta:  firstMusicMeta(cfg.MusicMeta, nil),
		Socials:    firstSocials(cfg.Socials, nil),
	}
	if !live.UpdatedAt.IsZero() {
		candidate.UpdatedAt = live.UpdatedAt.UnixMilli()
	}

	return candidate
}

// ResolveCard picks the social preview values for a matched config.
func ResolveCard(cfg entity.ProfileConfig, cached *entity.Profile, site SiteDefaults) entity.Card {
	var p entity.Profile
	if cached != nil {
		p = *cached
	}

	return entity.Card{
		Title:       first(cfg.Username, p.Username, site.Name),
		Description: first(cfg.Bio, site.Description),
		Image:       first(cfg.Avatar, p.Avatar, DefaultAvatarURL),
	}
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func firstMusicMeta(values ...*entity.MusicMeta) *entity.MusicMeta {
	for _, v := range values {
		if v != nil && *v != (entity.MusicMeta{}) {
			meta := *v

			return &meta
		}
	}

	return nil
}

func firstSocials(values ...map[string]string) map[string]string {
	for _, v := range values {
		if len(v) > 0 {
			return maps.Clone(v)
		}
	}

	return nil
}
