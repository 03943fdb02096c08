package handler

import (
	"mime/multipart"
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// formFile opens an optional multipart file. A missing field yields a nil upload.
// The returned close func is always safe to call.
func formFile(c echo.Context, field string) (*usecase.FileUpload, func(), error) {
	noop := func() {}

	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, noop, nil
		}

		return nil, noop, errors.Wrap(err, "failed to read multipart form")
	}

	file, err := header.Open()
	if err != nil {
		return nil, noop, errors.Wrap(err, "failed to open uploaded file")
	}

	return toFileUpload(header, file), func() { _ = file.Close() }, nil
}

func toFileUpload(header *multipart.FileHeader, file multipart.File) *usecase.FileUpload {
	return &usecase.FileUpload{
		Filename: header.Filename,
		Size:     header.Size,
		Content:  file,
	}
}
