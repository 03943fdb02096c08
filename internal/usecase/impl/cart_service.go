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

var errQuantityTooLow = domainerrors.NewValidationError("Quantity must be at least 1")

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService creates the cart usecase.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return &entity.Cart{UserID: userID, Items: []entity.CartItem{}}, nil
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

func (srv *cartService) ListItems(ctx context.Context, userID uuid.UUID, page entity.Page) (*usecase.CartItemPage, error) {
	items, total, err := srv.cartRepo.ListItems(ctx, userID, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	return &usecase.CartItemPage{
		Items:    items,
		PageInfo: entity.NewPageInfo(page, total),
	}, nil
}

// AddItem checks the request against current stock before writing. The repository repeats
// the check on the merged quantity so concurrent adds cannot push the line past stock.
func (srv *cartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, errQuantityTooLow
	}

	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.HasStock(quantity) {
		return nil, domainerrors.NewInsufficientStockError(product.Stock)
	}

	cart, err := srv.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	if err := srv.cartRepo.IncrementItem(ctx, cart.ID, productID, quantity, product.Stock); err != nil {
		if errors.Is(err, repository.ErrCartItemLimit) {
			return nil, domainerrors.NewCartLimitError(product.Stock)
		}

		return nil, errors.Wrap(err, "failed to add cart item")
	}

	srv.log(ctx).Debug("Cart item added",
		slog.String("user_id", userID.String()),
		slog.String("product_id", productID.String()),
		slog.Int("quantity", quantity),
	)

	return srv.GetCart(ctx, userID)
}

func (srv *cartService) UpdateItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, errQuantityTooLow
	}

	cart, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}
	if _, ok := cart.Item(productID); !ok {
		return nil, domainerrors.ErrCartItemNotFound
	}

	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.HasStock(quantity) {
		return nil, domainerrors.NewInsufficientStockError(product.Stock)
	}

	if err := srv.cartRepo.SetItemQuantity(ctx, cart.ID, productID, quantity); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to update cart item")
	}

	return srv.GetCart(ctx, userID)
}

func (srv *cartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return &entity.Cart{UserID: userID, Items: []entity.CartItem{}}, nil
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}

	if err := srv.cartRepo.RemoveItem(ctx, cart.ID, productID); err != nil {
		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return srv.GetCart(ctx, userID)
}

func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if err := srv.cartRepo.DeleteByUser(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

func (srv *cartService) findProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}
