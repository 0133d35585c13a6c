// Package storage provides the attachment store backed by gocloud.dev blob
// buckets, so receipts can live on GCS in production and on disk locally.
package storage

import (
	"context"
	"log/slog"
	"time"

	"amptrack/config"
	"amptrack/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selected by the bucket URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

const defaultSignedURLTTL = 15 * time.Minute

// blobAttachmentStore implements AttachmentStore on top of a gocloud blob bucket.
type blobAttachmentStore struct {
	bucket *blob.Bucket
	ttl    time.Duration
	logger *slog.Logger
}

// StoreParams holds dependencies for the attachment store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobAttachmentStore opens the configured bucket and returns it as an
// AttachmentStore. The bucket URL scheme picks the driver (file://, gs://).
func NewBlobAttachmentStore(params StoreParams) (service.AttachmentStore, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be provided")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	ttl := cfg.SignedURLTTL
	if ttl <= 0 {
		ttl = defaultSignedURLTTL
	}

	params.Logger.Info("Attachment store initialized",
		slog.String("bucket_url", cfg.BucketURL),
		slog.Duration("signed_url_ttl", ttl),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing attachment store")

			return bucket.Close()
		},
	})

	return &blobAttachmentStore{
		bucket: bucket,
		ttl:    ttl,
		logger: params.Logger,
	}, nil
}

// SignedUploadURL returns a URL the client may PUT the object to.
func (s *blobAttachmentStore) SignedUploadURL(ctx context.Context, key, contentType string) (string, error) {
	url, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{
		Method:      "PUT",
		Expiry:      s.ttl,
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign upload URL for %s", key)
	}

	return url, nil
}

// SignedDownloadURL returns a URL the client may GET the object from.
func (s *blobAttachmentStore) SignedDownloadURL(ctx context.Context, key string) (string, error) {
	url, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{
		Method: "GET",
		Expiry: s.ttl,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign download URL for %s", key)
	}

	return url, nil
}

// TTL reports how long issued URLs stay valid.
func (s *blobAttachmentStore) TTL() time.Duration {
	return s.ttl
}

// Close releases the underlying bucket handle.
func (s *blobAttachmentStore) Close() error {
	return s.bucket.Close()
}
