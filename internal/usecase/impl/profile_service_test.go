package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"biolink/config"
	deliverycontext "biolink/internal/delivery/context"
	"biolink/internal/domain/entity"
	domainerrors "biolink/internal/domain/errors"
	"biolink/internal/domain/profile"
	"biolink/internal/infra/cache"
	mockRepo "biolink/internal/mocks/repository"
	"biolink/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service usecase.ProfileUsecase
	configs *mockRepo.MockProfileConfigRepository
	cache   *cache.ProfileCache
}

func createTestProfileService(t *testing.T, mainID string) profileServiceFixtures {
	configs := mockRepo.NewMockProfileConfigRepository(t)
	profileCache := cache.NewProfileCache()

	cfg := &config.Config{}
	cfg.Discord.UserID = mainID
	cfg.Site.Name = "MNBLCK"
	cfg.Site.DefaultDescription = "View my profile on MNBLCK"
	cfg.Site.BaseURL = "https://example.com"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return profileServiceFixtures{
		service: NewProfileService(configs, profileCache, cfg, logger),
		configs: configs,
		cache:   profileCache,
	}
}

func TestProfileService_GetProfile_ConfigOverridesCache(t *testing.T) {
	fx := createTestProfileService(t, "")
	ctx := context.Background()

	fx.cache.Replace([]entity.Profile{{ID: "42", Username: "Annie", Avatar: "X"}}, "")
	fx.configs.EXPECT().List(ctx).Return([]entity.ProfileConfig{{ID: "42", Username: "Ann"}}, nil)

	got, err := fx.service.GetProfile(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Username)
	assert.Equal(t, "X", got.Avatar)
}

func TestProfileService_GetProfile_CacheOnly(t *testing.T) {
	fx := createTestProfileService(t, "")
	ctx := context.Background()

	fx.cache.Replace([]entity.Profile{{ID: "7", Username: "Cached"}}, "")
	fx.configs.EXPECT().List(ctx).Return([]entity.ProfileConfig{}, nil)

	got, err := fx.service.GetProfile(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, "Cached", got.Username)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t, "")
	ctx := context.Background()

	fx.configs.EXPECT().List(ctx).Return([]entity.ProfileConfig{{ID: "42"}}, nil)

	got, err := fx.service.GetProfile(ctx, "999")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_GetProfile_StorageError(t *testing.T) {
	t.Run("falls back to cache", func(t *testing.T) {
		fx := createTestProfileService(t, "")
		ctx := context.Background()

		fx.cache.Replace([]entity.Profile{{ID: "42", Username: "Annie"}}, "")
		fx.configs.EXPECT().List(ctx).Return(nil, domainerrors.ErrStorageUnavailable)

		got, err := fx.service.GetProfile(ctx, "42")
		require.NoError(t, err)
		assert.Equal(t, "Annie", got.Username)
	})

	t.Run("internal error without cache", func(t *testing.T) {
		fx := createTestProfileService(t, "")
		ctx := context.Background()

		fx.configs.EXPECT().List(ctx).Return(nil, domainerrors.ErrStorageUnavailable)

		_, err := fx.service.GetProfile(ctx, "42")
		assert.ErrorIs(t, err, domainerrors.ErrInternalError)
	})
}

func TestProfileService_GetMainProfile(t *testing.T) {
	tests := []struct {
		name     string
		mainID   string
		configs  []entity.ProfileConfig
		cached   []entity.Profile
		wantID   string
		wantName string
	}{
		{
			name:     "configured main user",
			mainID:   "2",
			configs:  []entity.ProfileConfig{{ID: "1", Username: "One"}, {ID: "2", Username: "Two"}},
			wantID:   "2",
			wantName: "Two",
		},
		{
			name:     "first config when main unset",
			configs:  []entity.ProfileConfig{{ID: "1", Slug: "one"}, {ID: "2"}},
			wantID:   "1",
			wantName: "one",
		},
		{
			name:     "first config when main not configured",
			mainID:   "9",
			configs:  []entity.ProfileConfig{{ID: "1"}},
			cached:   []entity.Profile{{ID: "1", Username: "Live"}},
			wantID:   "1",
			wantName: "Live",
		},
		{
			name:     "cache only main user",
			mainID:   "9",
			configs:  []entity.ProfileConfig{},
			cached:   []entity.Profile{{ID: "9", Username: "Cached"}},
			wantID:   "9",
			wantName: "Cached",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t, tt.mainID)
			ctx := context.Background()

			fx.cache.Replace(tt.cached, tt.mainID)
			fx.configs.EXPECT().List(ctx).Return(tt.configs, nil)

			got, err := fx.service.GetMainProfile(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
			assert.Equal(t, tt.wantName, got.Username)
		})
	}
}

func TestProfileService_GetMainProfile_Fallbacks(t *testing.T) {
	t.Run("storage error serves cached main", func(t *testing.T) {
		fx := createTestProfileService(t, "")
		ctx := context.Background()

		fx.cache.Replace([]entity.Profile{{ID: "1", Username: "Stale"}}, "")
		fx.configs.EXPECT().List(ctx).Return(nil, domainerrors.ErrStorageUnavailable)

		got, err := fx.service.GetMainProfile(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Stale", got.Username)
	})

	t.Run("storage error without cache", func(t *testing.T) {
		fx := createTestProfileService(t, "")
		ctx := context.Background()

		fx.cache.MarkReady()
		fx.configs.EXPECT().List(ctx).Return(nil, domainerrors.ErrStorageUnavailable)

		_, err := fx.service.GetMainProfile(ctx)
		assert.ErrorIs(t, err, domainerrors.ErrInternalError)
	})

	t.Run("nothing configured or cached", func(t *testing.T) {
		fx := createTestProfileService(t, "")
		ctx := context.Background()

		fx.cache.MarkReady()
		fx.configs.EXPECT().List(ctx).Return(nil, nil)

		_, err := fx.service.GetMainProfile(ctx)
		assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	})
}

func TestProfileService_GetMainProfile_WaitsForFirstRefresh(t *testing.T) {
	fx := createTestProfileService(t, "")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := fx.service.GetMainProfile(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	fx.configs.EXPECT().List(mock.Anything).Return([]entity.ProfileConfig{{ID: "1"}}, nil)

	done := make(chan *entity.Profile)
	go func() {
		p, _ := fx.service.GetMainProfile(context.Background())
		done <- p
	}()

	fx.cache.Replace([]entity.Profile{{ID: "1", Username: "Live"}}, "")

	select {
	case p := <-done:
		require.NotNil(t, p)
		assert.Equal(t, "Live", p.Username)
	case <-time.After(time.Second):
		t.Fatal("GetMainProfile did not return after the first refresh")
	}
}

func TestProfileService_ListProfiles(t *testing.T) {
	fx := createTestProfileService(t, "")
	ctx := context.Background()

	fx.cache.Replace([]entity.Profile{{ID: "1", Username: "Live", Avatar: "a1"}, {ID: "3", Username: "Gone"}}, "")
	fx.configs.EXPECT().List(ctx).Return([]entity.ProfileConfig{{ID: "2", Slug: "two"}, {ID: "1"}}, nil)

	got, err := fx.service.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "two", got[0].Username)
	assert.Equal(t, profile.DefaultAvatarURL, got[0].Avatar)

	assert.Equal(t, "Live", got[1].Username)
	assert.Equal(t, "a1", got[1].Avatar)
}

func TestProfileService_ListProfiles_StorageErrorServesCache(t *testing.T) {
	fx := createTestProfileService(t, "")
	ctx := context.Background()

	fx.cache.Replace([]entity.Profile{{ID: "1"}, {ID: "2"}}, "")
	fx.configs.EXPECT().List(ctx).Return(nil, domainerrors.ErrStorageUnavailable)

	got, err := fx.service.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestProfileService_ResolveCard(t *testing.T) {
	fx := createTestProfileService(t, "")
	ctx := context.Background()

	fx.cache.Replace([]entity.Profile{{ID: "100", Username: "Live", Avatar: "live.png"}}, "")
	fx.configs.EXPECT().List(ctx).Return([]entity.ProfileConfig{{ID: "100", Slug: "neji", Bio: "hello"}}, nil)

	bySlug, err := fx.service.ResolveCard(ctx, "neji", "")
	require.NoError(t, err)
	assert.Equal(t, &entity.Card{Title: "Live", Description: "hello", Image: "live.png"}, bySlug)

	byID, err := fx.service.ResolveCard(ctx, "", "100")
	require.NoError(t, err)
	assert.Equal(t, bySlug, byID)

	_, err = fx.service.ResolveCard(ctx, "nobody", "")
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_ResolveCard_RequiresIdentifier(t *testing.T) {
	fx := createTestProfileService(t, "")

	_, err := fx.service.ResolveCard(context.Background(), "", "")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_CardURL(t *testing.T) {
	fx := createTestProfileService(t, "")

	assert.Equal(t, "https://example.com/neji", fx.service.CardURL(&entity.Profile{ID: "1", Slug: "neji"}))
	assert.Equal(t, "https://example.com/card.html?user=1", fx.service.CardURL(&entity.Profile{ID: "1"}))
}

func TestProfileService_GetProfile_LogsWithRequestLogger(t *testing.T) {
	fx := createTestProfileService(t, "")

	var buf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&buf, nil)).With(slog.String("request_id", "req-7"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	fx.cache.Replace([]entity.Profile{{ID: "42", Username: "Annie"}}, "")
	fx.configs.EXPECT().List(ctx).Return(nil, domainerrors.ErrStorageUnavailable)

	_, err := fx.service.GetProfile(ctx, "42")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "request_id=req-7")
	assert.Contains(t, buf.String(), "serving cached profile")
}
