package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"biolink/config"
	deliverycontext "biolink/internal/delivery/context"
	"biolink/internal/domain/entity"
	domainerrors "biolink/internal/domain/errors"
	"biolink/internal/domain/profile"
	"biolink/internal/domain/repository"
	"biolink/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	configs  repository.ProfileConfigRepository
	snapshot repository.ProfileSnapshotRepository
	mainID   string
	site     profile.SiteDefaults
	baseURL  string
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	configs repository.ProfileConfigRepository,
	snapshot repository.ProfileSnapshotRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		configs:  configs,
		snapshot: snapshot,
		mainID:   cfg.Discord.UserID,
		site: profile.SiteDefaults{
			Name:        cfg.Site.Name,
			Description: cfg.Site.DefaultDescription,
		},
		baseURL: cfg.Site.BaseURL,
		logger:  logger,
	}
}

// log returns the request-scoped logger when present, otherwise the service logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// GetMainProfile resolves the configured main user, or the first config when
// no main user is set or it is not configured.
func (srv *profileService) GetMainProfile(ctx context.Context) (*entity.Profile, error) {
	if err := srv.snapshot.WaitReady(ctx); err != nil {
		return nil, errors.Wrap(err, "wait for first refresh")
	}
	snap := srv.snapshot.Snapshot()

	configs, err := srv.configs.List(ctx)
	if err != nil {
		srv.log(ctx).Warn("Profile configs unavailable, serving cached main profile", slog.Any("error", err))

		return srv.cachedMain(snap, domainerrors.ErrInternalError)
	}

	cfg := profile.FindByID(configs, srv.mainID)
	if cfg == nil && len(configs) > 0 {
		cfg = &configs[0]
	}

	cachedID := srv.mainID
	if cfg != nil {
		cachedID = cfg.ID
	}

	merged, ok := profile.Resolve(cfg, snap.Find(cachedID))
	if !ok {
		return srv.cachedMain(snap, domainerrors.ErrProfileNotFound)
	}

	return merged, nil
}

func (srv *profileService) cachedMain(snap *entity.Snapshot, fallback *domainerrors.BaseError) (*entity.Profile, error) {
	if snap.Main == nil {
		return nil, fallback
	}
	main := *snap.Main

	return &main, nil
}

// GetProfile resolves one profile by id. It does not wait for the first refresh.
func (srv *profileService) GetProfile(ctx context.Context, id string) (*entity.Profile, error) {
	cached := srv.snapshot.Snapshot().Find(id)

	configs, err := srv.configs.List(ctx)
	if err != nil {
		if cached != nil {
			srv.log(ctx).Warn("Profile configs unavailable, serving cached profile",
				slog.String("id", id), slog.Any("error", err))
			result := *cached

			return &result, nil
		}
		srv.log(ctx).Error("Profile configs unavailable and nothing cached",
			slog.String("id", id), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	merged, ok := profile.Resolve(profile.FindByID(configs, id), cached)
	if !ok {
		return nil, domainerrors.ErrProfileNotFound
	}

	return merged, nil
}

// ListProfiles merges every configured profile with the cache, in config order.
func (srv *profileService) ListProfiles(ctx context.Context) ([]entity.Profile, error) {
	if err := srv.snapshot.WaitReady(ctx); err != nil {
		return nil, errors.Wrap(err, "wait for first refresh")
	}
	snap := srv.snapshot.Snapshot()

	configs, err := srv.configs.List(ctx)
	if err != nil {
		srv.log(ctx).Warn("Profile configs unavailable, serving cached profiles", slog.Any("error", err))

		return snap.List(), nil
	}

	profiles := make([]entity.Profile, 0, len(configs))
	for i := range configs {
		merged, _ := profile.Resolve(&configs[i], snap.Find(configs[i].ID))
		profiles = append(profiles, *merged)
	}

	return profiles, nil
}

// ResolveCard looks the user up by slug first, then by id.
func (srv *profileService) ResolveCard(ctx context.Context, slug, id string) (*entity.Card, error) {
	if slug == "" && id == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("slug or user id is required")
	}

	configs, err := srv.configs.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile configs")
	}

	cfg := profile.FindBySlugOrID(configs, slug, id)
	if cfg == nil {
		return nil, domainerrors.ErrProfileNotFound
	}

	card := profile.ResolveCard(*cfg, srv.snapshot.Snapshot().Find(cfg.ID), srv.site)

	return &card, nil
}

// CardURL prefers the slug path; profiles without a slug use the card page query form.
func (srv *profileService) CardURL(p *entity.Profile) string {
	if p.Slug != "" {
		return fmt.Sprintf("%s/%s", srv.baseURL, url.PathEscape(p.Slug))
	}

	return fmt.Sprintf("%s/card.html?user=%s", srv.baseURL, url.QueryEscape(p.ID))
}
