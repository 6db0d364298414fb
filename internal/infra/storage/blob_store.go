// Package storage persists uploaded scan images in a blob bucket and hands
// back publicly reachable URLs.
package storage

import (
	"context"
	"strings"

	"firetrace/config"
	"firetrace/internal/domain/lifecycle"
	"firetrace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

const defaultFolder = "firetrace_uploads"

var extByMediaType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type blobStore struct {
	bucket        *blob.Bucket
	folder        string
	publicBaseURL string
}

// NewBlobStore opens the configured bucket and registers its close on
// application shutdown.
func NewBlobStore(lc fx.Lifecycle, cfg *config.Config) (service.AssetStore, error) {
	if cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be configured")
	}
	if cfg.Storage.PublicBaseURL == "" {
		return nil, errors.New("storage public base URL must be configured")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", cfg.Storage.BucketURL)
	}

	folder := cfg.Storage.Folder
	if folder == "" {
		folder = defaultFolder
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStore{
		bucket:        bucket,
		folder:        folder,
		publicBaseURL: strings.TrimSuffix(cfg.Storage.PublicBaseURL, "/"),
	}, nil
}

func (s *blobStore) Upload(ctx context.Context, image []byte, mediaType string) (string, error) {
	ext, ok := extByMediaType[strings.ToLower(mediaType)]
	if !ok {
		ext = ".bin"
	}

	key := s.folder + "/" + uuid.NewString() + ext

	err := s.bucket.WriteAll(ctx, key, image, &blob.WriterOptions{
		ContentType: mediaType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to write blob %q", key)
	}

	return s.publicBaseURL + "/" + key, nil
}
