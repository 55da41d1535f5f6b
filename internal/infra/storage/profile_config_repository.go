package storage

import (
	"bytes"
	"context"
	"encoding/json"

	"biolink/config"
	"biolink/internal/domain/entity"
	domainerrors "biolink/internal/domain/errors"
	"biolink/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
)

type profileConfigRepository struct {
	bucket *blob.Bucket
	key    string
}

// NewProfileConfigRepository reads profile configs from the storage.profilesKey document.
func NewProfileConfigRepository(bucket *blob.Bucket, cfg *config.Config) repository.ProfileConfigRepository {
	return &profileConfigRepository{
		bucket: bucket,
		key:    cfg.Storage.ProfilesKey,
	}
}

// List re-reads the whole document on every call; nothing is cached here.
func (r *profileConfigRepository) List(ctx context.Context) ([]entity.ProfileConfig, error) {
	data, err := r.bucket.ReadAll(ctx, r.key)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrStorageUnavailable.WithDetails(err.Error()), "read %s", r.key)
	}

	configs := []entity.ProfileConfig{}
	if len(bytes.TrimSpace(data)) == 0 {
		return configs, nil
	}

	if err := json.Unmarshal(data, &configs); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrStorageUnavailable.WithDetails(err.Error()), "parse %s", r.key)
	}

	return configs, nil
}
