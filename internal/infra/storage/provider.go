package storage

import (
	"context"
	"log/slog"

	"atelier/config"
	"atelier/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket URL schemes: file://, gs://, mem://
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// BucketParams holds dependencies for FileStorage, injected by Fx
type BucketParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// OpenBucket opens the bucket named by a gocloud URL, scoped to prefix.
func OpenBucket(ctx context.Context, bucketURL, prefix string) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	if prefix != "" {
		bucket = blob.PrefixedBucket(bucket, prefix)
	}

	return bucket, nil
}

// NewFileStorage opens the configured bucket and closes it on shutdown.
func NewFileStorage(params BucketParams) (service.FileStorage, error) {
	cfg := params.Config.Storage

	bucket, err := OpenBucket(params.Ctx, cfg.BucketURL, cfg.Prefix)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Uploads bucket opened",
		slog.String("bucket_url", cfg.BucketURL),
		slog.String("prefix", cfg.Prefix),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return New(bucket, cfg.PublicBaseURL, params.Logger), nil
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewFileStorage),
)
