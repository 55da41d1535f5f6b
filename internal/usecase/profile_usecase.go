// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"biolink/internal/domain/entity"
)

// ProfileUsecase defines the read operations behind the profile API and card pages.
type ProfileUsecase interface {
	// GetMainProfile returns the designated main profile, falling back to the
	// last refreshed snapshot when storage is unavailable.
	GetMainProfile(ctx context.Context) (*entity.Profile, error)

	// GetProfile returns the merged profile for id or domainerrors.ErrProfileNotFound.
	GetProfile(ctx context.Context, id string) (*entity.Profile, error)

	// ListProfiles returns every configured profile merged with cached presence.
	ListProfiles(ctx context.Context) ([]entity.Profile, error)

	// ResolveCard returns the social preview for a slug or user id.
	ResolveCard(ctx context.Context, slug, id string) (*entity.Card, error)

	// CardURL returns the shareable card address of a profile.
	CardURL(profile *entity.Profile) string
}
