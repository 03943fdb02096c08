package entity

import "github.com/shopspring/decimal"

// DashboardStats summarises the store for the admin home page.
type DashboardStats struct {
	TotalUsers       int64
	TotalProducts    int64
	TotalOrders      int64
	Revenue          decimal.Decimal       // Sum over orders whose status counts as revenue.
	OrdersByStatus   map[OrderStatus]int64 // Every status is present, zero when unused.
	LowStockProducts []*Product
}
