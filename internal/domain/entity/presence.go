package entity

import "time"

// PresenceStatus is the live status reported by the presence API.
type PresenceStatus string

const (
	PresenceOnline  PresenceStatus = "online"
	PresenceIdle    PresenceStatus = "idle"
	PresenceDND     PresenceStatus = "dnd"
	PresenceOffline PresenceStatus = "offline"
)

// ParsePresenceStatus maps an upstream status string onto a known status.
// Unknown values yield the empty status.
func ParsePresenceStatus(s string) PresenceStatus {
	switch PresenceStatus(s) {
	case PresenceOnline, PresenceIdle, PresenceDND, PresenceOffline:
		return PresenceStatus(s)
	default:
		return ""
	}
}

// Presence is the normalized result of one successful presence fetch.
// A failed fetch produces no Presence at all.
type Presence struct {
	ID         string
	Username   string
	Avatar     string // Resolved CDN URL.
	Decoration string // Resolved CDN URL, empty when the user has none.
	Status     PresenceStatus
	UpdatedAt  time.Time
}
