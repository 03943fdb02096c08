// Package report renders admin order exports.
package report

import (
	"io"
	"strconv"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/tealeg/xlsx"
)

const (
	sheetName  = "Orders"
	timeLayout = "2006-01-02 15:04:05"
)

//nolint:gochecknoglobals
var orderColumns = []string{
	"Order Code", "Created At", "Status", "Payment Method", "Customer ID",
	"Items", "Total Amount", "City", "Pincode", "Payment Screenshot",
}

type xlsxExporter struct{}

// NewOrderExporter returns an exporter writing one row per order to an .xlsx workbook.
func NewOrderExporter() service.OrderExporter {
	return xlsxExporter{}
}

func (xlsxExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (xlsxExporter) FileExtension() string {
	return "xlsx"
}

func (xlsxExporter) Export(w io.Writer, orders []*entity.Order) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return errors.Wrap(err, "failed to create sheet")
	}

	header := sheet.AddRow()
	for _, column := range orderColumns {
		header.AddCell().SetValue(column)
	}

	for _, order := range orders {
		row := sheet.AddRow()
		row.AddCell().SetValue(order.UniqueCode)
		row.AddCell().SetValue(order.CreatedAt.Format(timeLayout))
		row.AddCell().SetValue(order.Status.String())
		row.AddCell().SetValue(order.PaymentMethod.String())
		row.AddCell().SetValue(order.UserID.String())
		row.AddCell().SetValue(describeItems(order.Items))
		row.AddCell().SetValue(order.TotalAmount.StringFixed(2))

		city, pincode := "", ""
		if order.Address != nil {
			city, pincode = order.Address.City, order.Address.Pincode
		}
		row.AddCell().SetValue(city)
		row.AddCell().SetValue(pincode)
		row.AddCell().SetValue(order.PaymentScreenshot)
	}

	return errors.Wrap(file.Write(w), "failed to write workbook")
}

// describeItems renders lines as "Paneer Tikka x2; Naan x4".
func describeItems(items []entity.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.ProductName+" x"+strconv.Itoa(item.Quantity))
	}

	return strings.Join(parts, "; ")
}
