package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dashboardFixtures struct {
	userRepo    *mockRepo.MockUserRepository
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
}

func createTestDashboardService(t *testing.T) (*dashboardService, dashboardFixtures) {
	fx := dashboardFixtures{
		userRepo:    mockRepo.NewMockUserRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
	}

	srv := NewDashboardService(DashboardServiceParams{
		UserRepo:    fx.userRepo,
		ProductRepo: fx.productRepo,
		OrderRepo:   fx.orderRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}).(*dashboardService)

	return srv, fx
}

func TestDashboardService_GetStats(t *testing.T) {
	srv, fx := createTestDashboardService(t)
	lowStock := []*entity.Product{newTestProduct(2, "80")}

	fx.userRepo.EXPECT().Count(mock.Anything).Return(int64(12), nil)
	fx.productRepo.EXPECT().Count(mock.Anything).Return(int64(30), nil)
	fx.orderRepo.EXPECT().Count(mock.Anything).Return(int64(7), nil)
	fx.orderRepo.EXPECT().CountByStatus(mock.Anything).Return(map[entity.OrderStatus]int64{
		entity.OrderStatusPaid:      4,
		entity.OrderStatusDelivered: 3,
	}, nil)
	fx.orderRepo.EXPECT().
		SumRevenue(mock.Anything, []entity.OrderStatus{entity.OrderStatusPaid, entity.OrderStatusVerified, entity.OrderStatusDelivered}).
		Return(decimal.RequireFromString("1520.50"), nil)
	fx.productRepo.EXPECT().FindLowStock(mock.Anything, 5).Return(lowStock, nil)

	stats, err := srv.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalUsers)
	assert.Equal(t, int64(30), stats.TotalProducts)
	assert.Equal(t, int64(7), stats.TotalOrders)
	assert.Equal(t, "1520.50", stats.Revenue.StringFixed(2))
	assert.Len(t, stats.OrdersByStatus, len(entity.OrderStatuses()))
	assert.Equal(t, int64(4), stats.OrdersByStatus[entity.OrderStatusPaid])
	assert.Equal(t, int64(0), stats.OrdersByStatus[entity.OrderStatusCancelled])
	assert.Equal(t, lowStock, stats.LowStockProducts)
}

func TestDashboardService_GetStats_QueryFailure(t *testing.T) {
	srv, fx := createTestDashboardService(t)

	fx.userRepo.EXPECT().Count(mock.Anything).Return(int64(0), errors.New("timeout"))
	fx.productRepo.EXPECT().Count(mock.Anything).Return(int64(0), nil).Maybe()
	fx.orderRepo.EXPECT().Count(mock.Anything).Return(int64(0), nil).Maybe()
	fx.orderRepo.EXPECT().CountByStatus(mock.Anything).Return(nil, nil).Maybe()
	fx.orderRepo.EXPECT().SumRevenue(mock.Anything, mock.Anything).Return(decimal.Zero, nil).Maybe()
	fx.productRepo.EXPECT().FindLowStock(mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	_, err := srv.GetStats(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "count users")
}
