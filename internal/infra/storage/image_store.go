// Package storage persists uploaded product images through a blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"path"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// blobImageStore implements service.ImageStore on top of a gocloud blob
// bucket. The local fileblob driver keeps development dependency-free while
// the same code path works against cloud buckets.
type blobImageStore struct {
	bucket  *blob.Bucket
	baseURL string
}

// NewImageStore opens the configured bucket and registers its shutdown hook.
func NewImageStore(params Params) (service.ImageStore, error) {
	bucket, err := fileblob.OpenBucket(params.Config.Uploads.Dir, &fileblob.Options{
		CreateDir: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobImageStore{
		bucket:  bucket,
		baseURL: strings.TrimRight(params.Config.Uploads.BaseURL, "/"),
	}, nil
}

// Save writes the image under a random name and returns its public URL path.
// The caller validates extension and size; Save only persists bytes.
func (s *blobImageStore) Save(ctx context.Context, ext string, r io.Reader) (string, error) {
	name := uuid.NewString() + strings.ToLower(ext)

	writer, err := s.bucket.NewWriter(ctx, name, &blob.WriterOptions{
		ContentType: mime.TypeByExtension(strings.ToLower(ext)),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open image writer")
	}

	if _, err := io.Copy(writer, r); err != nil {
		// Close aborts the partially written blob on error.
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write image")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize image")
	}

	return path.Join(s.baseURL, name), nil
}
