package report

import (
	"bytes"
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func TestXLSXExporter_Export(t *testing.T) {
	orders := []*entity.Order{
		{
			ID:            uuid.New(),
			UserID:        uuid.New(),
			UniqueCode:    "ORD01HZXA",
			Status:        entity.OrderStatusPaid,
			PaymentMethod: entity.PaymentMethodUPI,
			TotalAmount:   decimal.RequireFromString("360"),
			Items: []entity.OrderItem{
				{ProductName: "Paneer Tikka", Quantity: 2, PriceAtOrder: decimal.NewFromInt(150)},
				{ProductName: "Naan", Quantity: 2, PriceAtOrder: decimal.NewFromInt(30)},
			},
			Address:   &entity.Address{City: "Pune", Pincode: "411001"},
			CreatedAt: time.Date(2026, 3, 1, 19, 30, 0, 0, time.UTC),
		},
		{
			ID:            uuid.New(),
			UserID:        uuid.New(),
			UniqueCode:    "ORD01HZXB",
			Status:        entity.OrderStatusPending,
			PaymentMethod: entity.PaymentMethodCOD,
			TotalAmount:   decimal.NewFromInt(90),
		},
	}

	exporter := NewOrderExporter()
	assert.Equal(t, "xlsx", exporter.FileExtension())

	var buf bytes.Buffer
	require.NoError(t, exporter.Export(&buf, orders))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)

	sheet, ok := file.Sheet[sheetName]
	require.True(t, ok)
	require.Len(t, sheet.Rows, 3)

	assert.Equal(t, "Order Code", sheet.Rows[0].Cells[0].Value)
	assert.Equal(t, "ORD01HZXA", sheet.Rows[1].Cells[0].Value)
	assert.Equal(t, "2026-03-01 19:30:00", sheet.Rows[1].Cells[1].Value)
	assert.Equal(t, "Paneer Tikka x2; Naan x2", sheet.Rows[1].Cells[5].Value)
	assert.Equal(t, "360.00", sheet.Rows[1].Cells[6].Value)
	assert.Equal(t, "Pune", sheet.Rows[1].Cells[7].Value)
	assert.Equal(t, "COD", sheet.Rows[2].Cells[3].Value)
}

func TestXLSXExporter_EmptyExportHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewOrderExporter().Export(&buf, nil))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheet[sheetName].Rows, 1)
	assert.Len(t, file.Sheet[sheetName].Rows[0].Cells, len(orderColumns))
}
