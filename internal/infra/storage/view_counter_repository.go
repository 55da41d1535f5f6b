package storage

import (
	"context"
	"encoding/json"

	"biolink/config"
	domainerrors "biolink/internal/domain/errors"
	"biolink/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// viewsDocument is the on-disk shape of the counter.
type viewsDocument struct {
	Views int64 `json:"views"`
}

type viewCounterRepository struct {
	bucket *blob.Bucket
	key    string
}

// NewViewCounterRepository stores the counter in the storage.viewsKey document.
func NewViewCounterRepository(bucket *blob.Bucket, cfg *config.Config) repository.ViewCounterRepository {
	return &viewCounterRepository{
		bucket: bucket,
		key:    cfg.Storage.ViewsKey,
	}
}

// Load treats a missing document as zero views.
func (r *viewCounterRepository) Load(ctx context.Context) (int64, error) {
	data, err := r.bucket.ReadAll(ctx, r.key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrapf(domainerrors.ErrStorageUnavailable.WithDetails(err.Error()), "read %s", r.key)
	}

	var doc viewsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, errors.Wrapf(domainerrors.ErrStorageUnavailable.WithDetails(err.Error()), "parse %s", r.key)
	}

	return doc.Views, nil
}

func (r *viewCounterRepository) Save(ctx context.Context, views int64) error {
	data, err := json.Marshal(viewsDocument{Views: views})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := r.bucket.WriteAll(ctx, r.key, data, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return errors.Wrapf(err, "write %s", r.key)
	}

	return nil
}
