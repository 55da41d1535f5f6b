package entity

import "time"

// Snapshot is an immutable point-in-time copy of the profile cache.
// Refreshes build a new Snapshot and swap it in; nothing mutates one in place.
type Snapshot struct {
	Version     uint64
	Profiles    []Profile
	Main        *Profile // Profile served by /api/profile when storage is unavailable.
	RefreshedAt time.Time
}

// Find returns the cached profile with the given id, or nil.
func (s *Snapshot) Find(id string) *Profile {
	if s == nil || id == "" {
		return nil
	}

	for i := range s.Profiles {
		if s.Profiles[i].ID == id {
			return &s.Profiles[i]
		}
	}

	return nil
}

// List returns a copy of the cached profiles.
func (s *Snapshot) List() []Profile {
	if s == nil {
		return []Profile{}
	}

	out := make([]Profile, len(s.Profiles))
	copy(out, s.Profiles)

	return out
}
