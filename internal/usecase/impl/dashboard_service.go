package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	userRepo          repository.UserRepository
	productRepo       repository.ProductRepository
	orderRepo         repository.OrderRepository
	lowStockThreshold int
	logger            *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewDashboardService creates the admin dashboard usecase.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	threshold := 0
	if params.Config != nil && params.Config.Store != nil {
		threshold = params.Config.Store.LowStockThreshold
	}

	return &dashboardService{
		userRepo:          params.UserRepo,
		productRepo:       params.ProductRepo,
		orderRepo:         params.OrderRepo,
		lowStockThreshold: threshold,
		logger:            params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetStats runs the independent aggregate queries concurrently.
func (srv *dashboardService) GetStats(ctx context.Context) (*entity.DashboardStats, error) {
	stats := &entity.DashboardStats{
		OrdersByStatus: make(map[entity.OrderStatus]int64, len(entity.OrderStatuses())),
	}
	for _, status := range entity.OrderStatuses() {
		stats.OrdersByStatus[status] = 0
	}

	var revenueStatuses []entity.OrderStatus
	for _, status := range entity.OrderStatuses() {
		if status.CountsAsRevenue() {
			revenueStatuses = append(revenueStatuses, status)
		}
	}

	var byStatus map[entity.OrderStatus]int64

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		stats.TotalUsers, err = srv.userRepo.Count(gctx)

		return errors.Wrap(err, "count users")
	})
	group.Go(func() (err error) {
		stats.TotalProducts, err = srv.productRepo.Count(gctx)

		return errors.Wrap(err, "count products")
	})
	group.Go(func() (err error) {
		stats.TotalOrders, err = srv.orderRepo.Count(gctx)

		return errors.Wrap(err, "count orders")
	})
	group.Go(func() (err error) {
		byStatus, err = srv.orderRepo.CountByStatus(gctx)

		return errors.Wrap(err, "count orders by status")
	})
	group.Go(func() (err error) {
		stats.Revenue, err = srv.orderRepo.SumRevenue(gctx, revenueStatuses)

		return errors.Wrap(err, "sum revenue")
	})
	group.Go(func() (err error) {
		stats.LowStockProducts, err = srv.productRepo.FindLowStock(gctx, srv.lowStockThreshold)

		return errors.Wrap(err, "find low stock products")
	})

	if err := group.Wait(); err != nil {
		srv.log(ctx).Error("Failed to build dashboard", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to build dashboard")
	}

	for status, count := range byStatus {
		if _, ok := stats.OrdersByStatus[status]; ok {
			stats.OrdersByStatus[status] = count
		}
	}
	if stats.LowStockProducts == nil {
		stats.LowStockProducts = []*entity.Product{}
	}

	return stats, nil
}
