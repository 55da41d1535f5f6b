// Package storage keeps the service's flat JSON documents in a gocloud blob
// bucket: a local directory by default, or any bucket URL gocloud understands.
package storage

import (
	"context"
	"log/slog"

	"biolink/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"

	// URL openers for storage.bucketUrl
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// BucketParams holds dependencies for the document bucket, injected by Fx
type BucketParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBucket opens the bucket holding the profile and view documents.
func NewBucket(params BucketParams) (*blob.Bucket, error) {
	cfg := params.Config.Storage

	var (
		bucket *blob.Bucket
		err    error
	)
	if cfg.BucketURL != "" {
		params.Logger.Info("Opening document bucket", slog.String("url", cfg.BucketURL))
		bucket, err = blob.OpenBucket(params.Ctx, cfg.BucketURL)
	} else {
		params.Logger.Info("Opening document directory", slog.String("dir", cfg.Dir))
		bucket, err = fileblob.OpenBucket(cfg.Dir, &fileblob.Options{
			CreateDir: true,
			Metadata:  fileblob.MetadataDontWrite,
		})
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to open document bucket")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing document bucket")

			return errors.WithStack(bucket.Close())
		},
	})

	return bucket, nil
}
