package impl

import (
	"bytes"
	"context"
	"io"
	"path"
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// imageUploader validates uploaded images by content and writes them to storage.
type imageUploader struct {
	storage  service.FileStorage
	maxBytes int64
}

// store sniffs the file, rejects non-images and oversize files, and saves it under
// "<prefix>/<owner>/<random><ext>".
func (u imageUploader) store(ctx context.Context, prefix string, owner uuid.UUID, file *usecase.FileUpload) (*service.StoredFile, error) {
	if u.maxBytes > 0 && file.Size > u.maxBytes {
		return nil, domainerrors.ErrFileTooLarge.WithDetails(util.UploadLimit(u.maxBytes))
	}

	reader := file.Content
	if u.maxBytes > 0 {
		reader = io.LimitReader(file.Content, u.maxBytes+1)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read upload")
	}
	if len(data) == 0 {
		return nil, domainerrors.ErrScreenshotRequired
	}
	if u.maxBytes > 0 && int64(len(data)) > u.maxBytes {
		return nil, domainerrors.ErrFileTooLarge.WithDetails(util.UploadLimit(u.maxBytes))
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, domainerrors.ErrUnsupportedFileType.WithDetails(mtype.String())
	}

	key := path.Join(prefix, owner.String(), uuid.NewString()+mtype.Extension())

	stored, err := u.storage.Save(ctx, key, mtype.String(), bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to store upload")
	}

	return stored, nil
}

// hasContent reports whether the client actually sent a file.
func hasContent(file *usecase.FileUpload) bool {
	return file != nil && file.Content != nil
}
