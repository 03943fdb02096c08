// Package storage keeps uploaded images in a gocloud blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "mem://"

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// StorageParams holds dependencies for FileStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFileStorage opens the configured bucket.
func NewFileStorage(params StorageParams) (service.FileStorage, error) {
	bucketURL := defaultBucketURL
	publicBaseURL := ""
	if cfg := params.Config.Storage; cfg != nil {
		if cfg.BucketURL != "" {
			bucketURL = cfg.BucketURL
		}
		publicBaseURL = cfg.PublicBaseURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("File storage initialized", slog.String("bucket", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return newBlobStorage(bucket, publicBaseURL), nil
}

func newBlobStorage(bucket *blob.Bucket, publicBaseURL string) *blobStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Save writes data under key.
func (s *blobStorage) Save(ctx context.Context, key, contentType string, data io.Reader) (*service.StoredFile, error) {
	key = strings.TrimLeft(key, "/")

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(writer, data); err != nil {
		_ = writer.Close()

		return nil, errors.Wrapf(err, "failed to write %s", key)
	}

	if err := writer.Close(); err != nil {
		return nil, errors.Wrapf(err, "failed to finish %s", key)
	}

	return &service.StoredFile{Key: key, URL: s.publicURL(key)}, nil
}

// Open returns a reader for key together with its content type.
func (s *blobStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	reader, err := s.bucket.NewReader(ctx, strings.TrimLeft(key, "/"), nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrFileNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to open %s", key)
	}

	return reader, reader.ContentType(), nil
}

// Delete removes key, ignoring missing objects.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}

	err := s.bucket.Delete(ctx, strings.TrimLeft(key, "/"))
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

func (s *blobStorage) publicURL(key string) string {
	if s.publicBaseURL == "" {
		return "/uploads/" + key
	}

	return s.publicBaseURL + "/" + key
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewFileStorage),
)
