package handler

import (
	"net/http"
	"path"
	"strings"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FileHandlerParams holds dependencies for FileHandler, injected by Fx.
type FileHandlerParams struct {
	fx.In

	Storage service.FileStorage
}

// FileHandler serves uploaded images out of the blob bucket.
type FileHandler struct {
	storage service.FileStorage
}

// NewFileHandler is the constructor for FileHandler.
func NewFileHandler(params FileHandlerParams) *FileHandler {
	return &FileHandler{storage: params.Storage}
}

// Serve handles GET /uploads/*.
func (h *FileHandler) Serve(c echo.Context) error {
	key := strings.TrimPrefix(path.Clean("/"+c.Param("*")), "/")
	if key == "" || key == "." {
		return response.Error(c, http.StatusNotFound, "NOT_FOUND", "File not found", nil)
	}

	reader, contentType, err := h.storage.Open(c.Request().Context(), key)
	if err != nil {
		if errors.Is(err, service.ErrFileNotFound) {
			return response.Error(c, http.StatusNotFound, "NOT_FOUND", "File not found", nil)
		}

		return errors.WithStack(err)
	}
	defer reader.Close()

	c.Response().Header().Set("X-Content-Type-Options", "nosniff")

	return c.Stream(http.StatusOK, contentType, reader)
}
