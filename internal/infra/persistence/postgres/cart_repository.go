package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the domain.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindByUser loads the user's cart with every line and its product.
func (repo *cartRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel
	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.created_at ASC")
		}).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cartM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	return toCartDomain(&cartM), nil
}

// GetOrCreate returns the user's cart, inserting an empty one when missing.
// Concurrent first adds race on the user_id unique index and both read the winner.
func (repo *cartRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cartM := model.CartModel{ID: uuid.New(), UserID: userID}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Omit("Items").
		Create(&cartM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}

	return repo.FindByUser(ctx, userID)
}

// IncrementItem inserts the line or adds to its quantity in one statement.
func (repo *cartRepository) IncrementItem(ctx context.Context, cartID, productID uuid.UUID, quantity, maxQuantity int) error {
	if quantity > maxQuantity {
		return repository.ErrCartItemLimit
	}

	now := time.Now()
	itemM := model.CartItemModel{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
				"updated_at": now,
			}),
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Expr{SQL: "cart_items.quantity + excluded.quantity <= ?", Vars: []any{maxQuantity}},
			}},
		}).
		Omit("Product").
		Create(&itemM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to add cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemLimit
	}

	return repo.touch(ctx, cartID, now)
}

// SetItemQuantity overwrites the quantity of an existing line.
func (repo *cartRepository) SetItemQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity int) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Updates(map[string]any{"quantity": quantity, "updated_at": now})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return repo.touch(ctx, cartID, now)
}

// RemoveItem deletes the line if present.
func (repo *cartRepository) RemoveItem(ctx context.Context, cartID, productID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove cart item")
	}
	if result.RowsAffected == 0 {
		return nil
	}

	return repo.touch(ctx, cartID, time.Now())
}

// ListItems returns a page of the user's lines, oldest first.
func (repo *cartRepository) ListItems(ctx context.Context, userID uuid.UUID, page entity.Page) ([]entity.CartItem, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("carts.user_id = ?", userID).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count cart items")
	}

	var itemModels []model.CartItemModel
	err := query.
		Preload("Product").
		Order("cart_items.created_at ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&itemModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list cart items")
	}

	return toCartItemDomains(itemModels), total, nil
}

// DeleteByUser removes the user's cart together with its lines.
func (repo *cartRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("cart_id IN (?)", repo.db.Model(&model.CartModel{}).Select("id").Where("user_id = ?", userID)).
		Delete(&model.CartItemModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete cart items")
	}

	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.CartModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart")
	}

	return nil
}

func (repo *cartRepository) touch(ctx context.Context, cartID uuid.UUID, at time.Time) error {
	err := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("id = ?", cartID).
		Update("updated_at", at).Error

	return errors.Wrap(err, "failed to touch cart")
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	return &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		Items:     toCartItemDomains(data.Items),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toCartItemDomains(data []model.CartItemModel) []entity.CartItem {
	items := make([]entity.CartItem, 0, len(data))
	for i := range data {
		items = append(items, entity.CartItem{
			ProductID: data[i].ProductID,
			Quantity:  data[i].Quantity,
			Product:   toProductDomain(data[i].Product),
			AddedAt:   data[i].CreatedAt,
		})
	}

	return items
}
