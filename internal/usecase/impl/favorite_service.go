package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	Logger       *slog.Logger
}

// NewFavoriteService creates the favorites usecase.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ToggleFavorite flips the pair. Losing a race against a concurrent toggle still reports
// the state that ends up stored.
func (srv *favoriteService) ToggleFavorite(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	exists, err := srv.favoriteRepo.Exists(ctx, userID, productID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check favorite")
	}

	if exists {
		if err := srv.favoriteRepo.Delete(ctx, userID, productID); err != nil && !errors.Is(err, repository.ErrFavoriteNotFound) {
			return false, errors.Wrap(err, "failed to remove favorite")
		}

		return false, nil
	}

	favorite := &entity.Favorite{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
	}
	if err := srv.favoriteRepo.Create(ctx, favorite); err != nil {
		switch {
		case errors.Is(err, repository.ErrFavoriteExists):
			return true, nil
		case errors.Is(err, repository.ErrProductNotFound):
			return false, domainerrors.ErrProductNotFound
		default:
			return false, errors.Wrap(err, "failed to add favorite")
		}
	}

	srv.log(ctx).Debug("Favorite added", slog.String("user_id", userID.String()), slog.String("product_id", productID.String()))

	return true, nil
}

func (srv *favoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	favorites, err := srv.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}

func (srv *favoriteService) RemoveFavorite(ctx context.Context, userID, productID uuid.UUID) error {
	if err := srv.favoriteRepo.Delete(ctx, userID, productID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrFavoriteNotFound
		}

		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}
