package storage

import (
	"context"
	"testing"

	"biolink/config"
	"biolink/internal/domain/entity"
	domainerrors "biolink/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func newTestBucket(t *testing.T) (*blob.Bucket, *config.Config) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	cfg := &config.Config{}
	cfg.Storage.ProfilesKey = "profiles.json"
	cfg.Storage.ViewsKey = "views.json"

	return bucket, cfg
}

func TestProfileConfigRepository_List(t *testing.T) {
	ctx := context.Background()
	bucket, cfg := newTestBucket(t)
	repo := NewProfileConfigRepository(bucket, cfg)

	doc := `[
		{"id": "100", "slug": "neji", "username": "Neji", "bio": "hello",
		 "musicMeta": {"title": "Song", "artist": "Band", "cover": "c.png"},
		 "socials": {"github": "https://github.com/neji"}},
		{"id": "200"}
	]`
	require.NoError(t, bucket.WriteAll(ctx, "profiles.json", []byte(doc), nil))

	configs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, configs, 2)

	assert.Equal(t, entity.ProfileConfig{
		ID:        "100",
		Slug:      "neji",
		Username:  "Neji",
		Bio:       "hello",
		MusicMeta: &entity.MusicMeta{Title: "Song", Artist: "Band", Cover: "c.png"},
		Socials:   map[string]string{"github": "https://github.com/neji"},
	}, configs[0])
	assert.Equal(t, "200", configs[1].ID)
}

func TestProfileConfigRepository_EmptyDocument(t *testing.T) {
	ctx := context.Background()
	bucket, cfg := newTestBucket(t)
	require.NoError(t, bucket.WriteAll(ctx, "profiles.json", []byte("  \n"), nil))

	configs, err := NewProfileConfigRepository(bucket, cfg).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, configs)
}

func TestProfileConfigRepository_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("missing document", func(t *testing.T) {
		bucket, cfg := newTestBucket(t)

		configs, err := NewProfileConfigRepository(bucket, cfg).List(ctx)
		assert.ErrorIs(t, err, domainerrors.ErrStorageUnavailable)
		assert.Nil(t, configs)
	})

	t.Run("malformed document", func(t *testing.T) {
		bucket, cfg := newTestBucket(t)
		require.NoError(t, bucket.WriteAll(ctx, "profiles.json", []byte("{not json"), nil))

		_, err := NewProfileConfigRepository(bucket, cfg).List(ctx)
		assert.ErrorIs(t, err, domainerrors.ErrStorageUnavailable)
	})
}

func TestViewCounterRepository(t *testing.T) {
	ctx := context.Background()
	bucket, cfg := newTestBucket(t)
	repo := NewViewCounterRepository(bucket, cfg)

	views, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Zero(t, views)

	require.NoError(t, repo.Save(ctx, 41))

	views, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(41), views)

	raw, err := bucket.ReadAll(ctx, "views.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"views":41}`, string(raw))
}

func TestViewCounterRepository_Malformed(t *testing.T) {
	ctx := context.Background()
	bucket, cfg := newTestBucket(t)
	require.NoError(t, bucket.WriteAll(ctx, "views.json", []byte("oops"), nil))

	_, err := NewViewCounterRepository(bucket, cfg).Load(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrStorageUnavailable)
}
