package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_SaveOpenDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	storage := newBlobStorage(bucket, "http://localhost:8080/uploads/")

	stored, err := storage.Save(ctx, "/order-payments/proof.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "order-payments/proof.png", stored.Key)
	assert.Equal(t, "http://localhost:8080/uploads/order-payments/proof.png", stored.URL)

	reader, contentType, err := storage.Open(ctx, stored.Key)
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NoError(t, reader.Close())
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "image/png", contentType)

	require.NoError(t, storage.Delete(ctx, stored.Key))

	_, _, err = storage.Open(ctx, stored.Key)
	assert.ErrorIs(t, err, service.ErrFileNotFound)
}

func TestBlobStorage_DeleteMissingKey(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	storage := newBlobStorage(bucket, "")

	assert.NoError(t, storage.Delete(context.Background(), "does/not/exist.png"))
	assert.NoError(t, storage.Delete(context.Background(), ""))
}

func TestBlobStorage_RelativeURLWithoutBase(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	storage := newBlobStorage(bucket, "")

	stored, err := storage.Save(context.Background(), "payment-qr/a.png", "image/png", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/payment-qr/a.png", stored.URL)
}
