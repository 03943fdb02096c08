package service

import (
	"io"

	"storefront/internal/domain/entity"
)

// OrderExporter writes orders as a spreadsheet.
type OrderExporter interface {
	ContentType() string
	FileExtension() string
	Export(w io.Writer, orders []*entity.Order) error
}
