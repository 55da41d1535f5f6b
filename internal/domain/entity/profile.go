// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// MusicMeta describes the track shown by the profile's music player.
type MusicMeta struct {
	Title  string `json:"title,omitempty"`
	Artist string `json:"artist,omitempty"`
	Cover  string `json:"cover,omitempty"`
}

// ProfileConfig is the authored, static configuration of one profile.
// It is owned by the backing document and never mutated by the service.
type ProfileConfig struct {
	ID         string            `json:"id"`                   // Platform user identifier, the durable join key.
	Slug       string            `json:"slug,omitempty"`       // Optional human-readable alias, unique among configs.
	Username   string            `json:"username,omitempty"`   // Optional override of the live username.
	Avatar     string            `json:"avatar,omitempty"`     // Optional override of the live avatar URL.
	Bio        string            `json:"bio,omitempty"`        // Free text shown under the name and in previews.
	Background string            `json:"background,omitempty"` // Image or video URL.
	Music      string            `json:"music,omitempty"`      // Audio URL.
	MusicMeta  *MusicMeta        `json:"musicMeta,omitempty"`  // Track title/artist/cover.
	Socials    map[string]string `json:"socials,omitempty"`    // Platform name -> URL.
}

// Profile is the response-ready union of a ProfileConfig and live presence data.
// It doubles as the cache record built by each refresh.
type Profile struct {
	ID         string            `json:"id"`
	Slug       string            `json:"slug,omitempty"`
	Username   string            `json:"username"`
	Avatar     string            `json:"avatar"`
	Decoration string            `json:"decoration,omitempty"`
	Status     PresenceStatus    `json:"status,omitempty"`
	Bio        string            `json:"bio,omitempty"`
	Background string            `json:"background,omitempty"`
	Music      string            `json:"music,omitempty"`
	MusicMeta  *MusicMeta        `json:"musicMeta,omitempty"`
	Socials    map[string]string `json:"socials,omitempty"`
	UpdatedAt  int64             `json:"updatedAt,omitempty"` // Unix milliseconds of the last successful presence fetch.
}

// Card holds the values injected into the social preview meta tags.
type Card struct {
	Title       string
	Description string
	Image       string
}
