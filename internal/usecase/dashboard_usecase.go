package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// DashboardUsecase aggregates back-office figures.
type DashboardUsecase interface {
	GetStats(ctx context.Context) (*entity.DashboardStats, error)
}
