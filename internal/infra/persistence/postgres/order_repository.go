package postgres

import (
	"context"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the domain.OrderRepository interface.
type orderRepository struct {
	ownedFinder[model.OrderModel, entity.Order]

	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		ownedFinder: ownedFinder[model.OrderModel, entity.Order]{
			db:          db,
			ownerColumn: "user_id",
			notFound:    repository.ErrOrderNotFound,
			scopes:      []func(*gorm.DB) *gorm.DB{withOrderDetails},
			toDomain:    toOrderDomain,
		},
		db: db,
	}
}

// withOrderDetails preloads the items in checkout order and the delivery address.
func withOrderDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.position ASC")
		}).
		Preload("Address")
}

// Create inserts the order header and then its items. A taken code inserts nothing,
// which keeps the surrounding transaction usable for a retry.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.Status == "" {
		order.Status = entity.OrderStatusPending
	}
	orderM := fromOrderDomain(order)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "unique_code"}},
			DoNothing: true,
		}).
		Omit("Items", "Address").
		Create(orderM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrAddressNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to create order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderCodeConflict
	}

	if len(orderM.Items) > 0 {
		if err := repo.db.WithContext(ctx).Omit("ID").Create(&orderM.Items).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
		}
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order with its items and address.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).Where("orders.id = ?", id))
}

// FindByIDForUpdate locks the order row, then loads it with its details.
func (repo *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var locked model.OrderModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", id).
		First(&locked).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to lock order")
	}

	return repo.FindByID(ctx, id)
}

// FindByCode retrieves an order by its customer-facing code, ignoring case.
func (repo *orderRepository) FindByCode(ctx context.Context, code string) (*entity.Order, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).Where("orders.unique_code = ?", strings.ToUpper(strings.TrimSpace(code))))
}

// FindLatestByUser retrieves the user's most recent order.
func (repo *orderRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).Where("orders.user_id = ?", userID).Order("orders.created_at DESC"))
}

func (repo *orderRepository) findOne(_ context.Context, query *gorm.DB) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := query.Scopes(withOrderDetails).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser returns a page of the user's orders, newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID, page entity.Page) ([]*entity.Order, int64, error) {
	return repo.listPage(ctx, repo.db.WithContext(ctx).Model(&model.OrderModel{}).Where("user_id = ?", userID), page)
}

// List returns a page of all orders matching filter, newest first.
func (repo *orderRepository) List(ctx context.Context, filter entity.OrderFilter, page entity.Page) ([]*entity.Order, int64, error) {
	return repo.listPage(ctx, repo.filtered(ctx, filter), page)
}

// ListAll returns every order matching filter, newest first.
func (repo *orderRepository) ListAll(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error) {
	var orderModels []model.OrderModel
	err := repo.filtered(ctx, filter).
		Scopes(withOrderDetails).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomains(orderModels), nil
}

func (repo *orderRepository) filtered(ctx context.Context, filter entity.OrderFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	return query
}

func (repo *orderRepository) listPage(_ context.Context, query *gorm.DB, page entity.Page) ([]*entity.Order, int64, error) {
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderModels []model.OrderModel
	err := query.
		Scopes(withOrderDetails).
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&orderModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomains(orderModels), total, nil
}

// UpdateStatus moves the order from expected to next.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, expected, next entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, expected.String()).
		Updates(map[string]any{"status": next.String(), "updated_at": time.Now()})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderStateChanged
	}

	return nil
}

// AttachPaymentProof records the screenshot and marks the order Paid when no proof exists yet
// and the order is still open.
func (repo *orderRepository) AttachPaymentProof(ctx context.Context, id uuid.UUID, url, path string) error {
	closed := []string{entity.OrderStatusDelivered.String(), entity.OrderStatusCancelled.String()}
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND payment_screenshot IS NULL AND status NOT IN ?", id, closed).
		Updates(map[string]any{
			"payment_screenshot":      url,
			"payment_screenshot_path": path,
			"status":                  entity.OrderStatusPaid.String(),
			"updated_at":              time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to attach payment proof")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderStateChanged
	}

	return nil
}

// Count returns the total number of orders.
func (repo *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// CountByStatus returns order counts grouped by status. Statuses without orders are absent.
func (repo *orderRepository) CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}

	counts := make(map[entity.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.OrderStatus(row.Status)] = row.Count
	}

	return counts, nil
}

// SumRevenue totals the amounts of orders in statuses.
func (repo *orderRepository) SumRevenue(ctx context.Context, statuses []entity.OrderStatus) (decimal.Decimal, error) {
	if len(statuses) == 0 {
		return decimal.Zero, nil
	}

	names := make([]string, 0, len(statuses))
	for _, status := range statuses {
		names = append(names, status.String())
	}

	var sum decimal.Decimal
	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status IN ?", names).
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum revenue")
	}

	return sum, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			Quantity:     item.Quantity,
			PriceAtOrder: item.PriceAtOrder,
		})
	}

	return &entity.Order{
		ID:                    data.ID,
		UserID:                data.UserID,
		AddressID:             data.AddressID,
		Address:               toAddressDomain(data.Address),
		Items:                 items,
		TotalAmount:           data.TotalAmount,
		PaymentMethod:         entity.PaymentMethod(data.PaymentMethod),
		Status:                entity.OrderStatus(data.Status),
		PaymentScreenshot:     derefString(data.PaymentScreenshot),
		PaymentScreenshotPath: derefString(data.PaymentScreenshotPath),
		UniqueCode:            data.UniqueCode,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func toOrderDomains(data []model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(data))
	for i := range data {
		orders = append(orders, toOrderDomain(&data[i]))
	}

	return orders
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for i, item := range data.Items {
		items = append(items, model.OrderItemModel{
			OrderID:      data.ID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			Quantity:     item.Quantity,
			PriceAtOrder: item.PriceAtOrder,
			Position:     i,
		})
	}

	return &model.OrderModel{
		ID:                    data.ID,
		UserID:                data.UserID,
		AddressID:             data.AddressID,
		Items:                 items,
		TotalAmount:           data.TotalAmount,
		PaymentMethod:         data.PaymentMethod.String(),
		Status:                data.Status.String(),
		PaymentScreenshot:     optionalString(data.PaymentScreenshot),
		PaymentScreenshotPath: optionalString(data.PaymentScreenshotPath),
		UniqueCode:            data.UniqueCode,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
