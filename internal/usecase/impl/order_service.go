package impl

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxOrderCodeAttempts bounds retries when a generated code collides with an existing one.
const maxOrderCodeAttempts = 5

type orderService struct {
	txManager         repository.TransactionManager
	orderRepo         repository.OrderRepository
	paymentDetailRepo repository.PaymentDetailRepository
	codeGenerator     service.OrderCodeGenerator
	productCache      service.ProductCache
	idempotency       service.IdempotencyStore
	publisher         service.EventPublisher
	qrCodeService     service.QRCodeService
	exporter          service.OrderExporter
	uploader          imageUploader
	logger            *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	OrderRepo         repository.OrderRepository
	PaymentDetailRepo repository.PaymentDetailRepository
	CodeGenerator     service.OrderCodeGenerator
	ProductCache      service.ProductCache
	Idempotency       service.IdempotencyStore
	Publisher         service.EventPublisher
	QRCodeService     service.QRCodeService
	Exporter          service.OrderExporter
	Storage           service.FileStorage
	Config            *config.Config
	Logger            *slog.Logger
}

// NewOrderService creates the checkout and order lifecycle usecase.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	var maxUploadBytes int64
	if params.Config != nil && params.Config.Storage != nil {
		maxUploadBytes = params.Config.Storage.MaxUploadBytes
	}

	return &orderService{
		txManager:         params.TxManager,
		orderRepo:         params.OrderRepo,
		paymentDetailRepo: params.PaymentDetailRepo,
		codeGenerator:     params.CodeGenerator,
		productCache:      params.ProductCache,
		idempotency:       params.Idempotency,
		publisher:         params.Publisher,
		qrCodeService:     params.QRCodeService,
		exporter:          params.Exporter,
		uploader:          imageUploader{storage: params.Storage, maxBytes: maxUploadBytes},
		logger:            params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder checks out the caller's cart. A repeated idempotency key returns the order the
// first request produced instead of placing another one.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	method, ok := entity.ParsePaymentMethod(input.PaymentMethod)
	if !ok {
		return nil, domainerrors.ErrInvalidPaymentMethod
	}

	idemKey := ""
	if key := strings.TrimSpace(input.IdempotencyKey); key != "" {
		idemKey = input.UserID.String() + ":" + key

		orderID, found, err := srv.idempotency.Reserve(ctx, idemKey)
		if err != nil {
			if errors.Is(err, service.ErrIdempotencyInProgress) {
				return nil, domainerrors.ErrDuplicateRequest
			}

			return nil, errors.Wrap(err, "failed to reserve idempotency key")
		}

		if found {
			srv.log(ctx).Info("Replaying idempotent order", slog.String("order_id", orderID.String()))

			return srv.findOwned(ctx, orderID, input.UserID)
		}
	}

	order, err := srv.placeOrder(ctx, input.UserID, input.AddressID, method)
	if err != nil {
		if idemKey != "" {
			if releaseErr := srv.idempotency.Release(ctx, idemKey); releaseErr != nil {
				srv.log(ctx).Warn("Failed to release idempotency key", slog.Any("error", releaseErr))
			}
		}

		return nil, err
	}

	if idemKey != "" {
		if err := srv.idempotency.Complete(ctx, idemKey, order.ID); err != nil {
			srv.log(ctx).Warn("Failed to record idempotency key", slog.String("order_id", order.ID.String()), slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Order placed",
		slog.String("order_id", order.ID.String()),
		slog.String("unique_code", order.UniqueCode),
		slog.String("total", order.TotalAmount.StringFixed(2)),
		slog.String("payment_method", order.PaymentMethod.String()),
	)

	srv.invalidateProducts(ctx, order.Items)
	srv.publish(ctx, entity.NewOrderEvent(entity.OrderEventPlaced, order))

	return order, nil
}

// placeOrder snapshots the cart, takes the stock, creates the order and deletes the cart
// in a single transaction.
func (srv *orderService) placeOrder(ctx context.Context, userID, addressID uuid.UUID, method entity.PaymentMethod) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		address, err := factory.NewAddressRepository().FindOwned(ctx, addressID, userID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domainerrors.ErrAddressNotFound
			}

			return errors.Wrap(err, "failed to find address")
		}

		cartRepo := factory.NewCartRepository()
		cart, err := cartRepo.FindByUser(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return domainerrors.ErrEmptyCart
			}

			return errors.Wrap(err, "failed to load cart")
		}

		items, total := entity.SnapshotCart(cart)
		if len(items) == 0 {
			return domainerrors.ErrEmptyCart
		}

		if err := takeStock(ctx, factory.NewProductRepository(), items); err != nil {
			return err
		}

		order = &entity.Order{
			ID:            uuid.New(),
			UserID:        userID,
			AddressID:     address.ID,
			Address:       address,
			Items:         items,
			TotalAmount:   total,
			PaymentMethod: method,
			Status:        entity.OrderStatusPending,
		}
		if err := srv.createWithUniqueCode(ctx, factory.NewOrderRepository(), order); err != nil {
			return err
		}

		if err := cartRepo.DeleteByUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete cart")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// takeStock decrements stock line by line in product id order so concurrent checkouts lock rows
// in the same sequence.
func takeStock(ctx context.Context, productRepo repository.ProductRepository, items []entity.OrderItem) error {
	sorted := slices.Clone(items)
	slices.SortFunc(sorted, func(a, b entity.OrderItem) int {
		return strings.Compare(a.ProductID.String(), b.ProductID.String())
	})

	for _, item := range sorted {
		err := productRepo.DecrementStock(ctx, item.ProductID, item.Quantity)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrStockNotAvailable) {
			return errors.Wrap(err, "failed to decrement stock")
		}

		product, findErr := productRepo.FindByID(ctx, item.ProductID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(findErr, "failed to find product")
		}

		return domainerrors.NewInsufficientStockError(product.Stock)
	}

	return nil
}

func (srv *orderService) createWithUniqueCode(ctx context.Context, orderRepo repository.OrderRepository, order *entity.Order) error {
	for attempt := 1; attempt <= maxOrderCodeAttempts; attempt++ {
		order.UniqueCode = srv.codeGenerator.Generate()

		err := orderRepo.Create(ctx, order)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrOrderCodeConflict) {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domainerrors.ErrAddressNotFound
			}

			return errors.Wrap(err, "failed to create order")
		}

		srv.log(ctx).Warn("Order code collision", slog.String("code", order.UniqueCode), slog.Int("attempt", attempt))
	}

	return domainerrors.ErrOrderCodeExhausted
}

// UploadPaymentProof stores the screenshot and marks the order Paid. A concurrent upload that
// wins the race leaves this one with AlreadyProvided and its file removed.
func (srv *orderService) UploadPaymentProof(ctx context.Context, userID, orderID uuid.UUID, file *usecase.FileUpload) (*entity.Order, error) {
	order, err := srv.findOwned(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}

	switch {
	case order.PaymentMethod != entity.PaymentMethodUPI:
		return nil, domainerrors.ErrScreenshotNotAllowed
	case order.HasPaymentProof():
		return nil, domainerrors.ErrScreenshotAlreadyAdded
	case order.Status.IsTerminal():
		return nil, domainerrors.ErrOrderClosed
	case file == nil || file.Content == nil:
		return nil, domainerrors.ErrScreenshotRequired
	}

	stored, err := srv.uploader.store(ctx, constants.PaymentScreenshotPrefix, order.ID, file)
	if err != nil {
		return nil, err
	}

	if err := srv.orderRepo.AttachPaymentProof(ctx, order.ID, stored.URL, stored.Key); err != nil {
		srv.discardFile(ctx, stored.Key)

		if errors.Is(err, repository.ErrOrderStateChanged) {
			return nil, srv.proofConflict(ctx, order.ID)
		}

		return nil, errors.Wrap(err, "failed to attach payment proof")
	}

	previous := order.Status
	updated, err := srv.orderRepo.FindByID(ctx, order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload order")
	}

	srv.log(ctx).Info("Payment proof uploaded", slog.String("order_id", order.ID.String()), slog.String("key", stored.Key))

	event := entity.NewOrderEvent(entity.OrderEventPaymentProofUploaded, updated)
	event.PreviousStatus = previous
	srv.publish(ctx, event)

	return updated, nil
}

// UpdateStatus applies an admin status change. Moving to the current status changes nothing;
// cancelling returns every line's quantity to stock in the same transaction.
func (srv *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*entity.Order, error) {
	next, ok := entity.ParseOrderStatus(status)
	if !ok {
		return nil, domainerrors.ErrInvalidStatus.WithDetails(status)
	}

	var (
		order    *entity.Order
		previous entity.OrderStatus
	)

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		orderRepo := factory.NewOrderRepository()

		found, err := orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to lock order")
		}
		order = found
		previous = found.Status

		if previous == next {
			return nil
		}
		if previous.IsTerminal() {
			return domainerrors.ErrOrderClosed
		}
		if !previous.CanTransitionTo(next) {
			return domainerrors.ErrInvalidState
		}

		if err := orderRepo.UpdateStatus(ctx, orderID, previous, next); err != nil {
			if errors.Is(err, repository.ErrOrderStateChanged) {
				return domainerrors.ErrInvalidState
			}

			return errors.Wrap(err, "failed to update status")
		}

		if next == entity.OrderStatusCancelled {
			productRepo := factory.NewProductRepository()
			for _, item := range found.Items {
				if err := productRepo.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
					if errors.Is(err, repository.ErrProductNotFound) {
						continue
					}

					return errors.Wrap(err, "failed to restore stock")
				}
			}
		}

		order.Status = next

		return nil
	})
	if err != nil {
		return nil, err
	}

	if previous == next {
		return order, nil
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("order_id", orderID.String()),
		slog.String("from", previous.String()),
		slog.String("to", next.String()),
	)

	if next == entity.OrderStatusCancelled {
		srv.invalidateProducts(ctx, order.Items)
	}

	event := entity.NewOrderEvent(entity.OrderEventStatusChanged, order)
	event.PreviousStatus = previous
	srv.publish(ctx, event)

	return order, nil
}

func (srv *orderService) ListMyOrders(ctx context.Context, userID uuid.UUID, page entity.Page) (*usecase.OrderPage, error) {
	orders, total, err := srv.orderRepo.ListByUser(ctx, userID, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderPage{Items: orders, PageInfo: entity.NewPageInfo(page, total)}, nil
}

func (srv *orderService) ListOrders(ctx context.Context, filter entity.OrderFilter, page entity.Page) (*usecase.OrderPage, error) {
	orders, total, err := srv.orderRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderPage{Items: orders, PageInfo: entity.NewPageInfo(page, total)}, nil
}

// GetOrderByCode hides orders of other customers behind NotFound.
func (srv *orderService) GetOrderByCode(ctx context.Context, requester usecase.Requester, code string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if !requester.IsAdmin && !order.IsOwnedBy(requester.UserID) {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

func (srv *orderService) LatestOrder(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindLatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrNoOrders
		}

		return nil, errors.Wrap(err, "failed to find latest order")
	}

	return order, nil
}

// PaymentQR renders a UPI QR for the order amount, payable to the active payment details.
func (srv *orderService) PaymentQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.findOwned(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	if order.PaymentMethod != entity.PaymentMethodUPI {
		return nil, domainerrors.ErrPaymentQRNotAvailable
	}

	detail, err := srv.paymentDetailRepo.FindActive(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentDetailNotFound) {
			return nil, domainerrors.ErrNoActivePaymentDetail
		}

		return nil, errors.Wrap(err, "failed to find payment details")
	}

	png, err := srv.qrCodeService.GenerateUPIQR(service.UPIPayment{
		PayeeVPA:  detail.UPIID,
		PayeeName: detail.AccountHolderName,
		Amount:    order.TotalAmount,
		Note:      order.UniqueCode,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment QR")
	}

	return png, nil
}

func (srv *orderService) ExportOrders(ctx context.Context, filter entity.OrderFilter) (*usecase.OrderExport, error) {
	orders, err := srv.orderRepo.ListAll(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	var buf bytes.Buffer
	if err := srv.exporter.Export(&buf, orders); err != nil {
		return nil, errors.Wrap(err, "failed to export orders")
	}

	name := "orders"
	if filter.Status != nil {
		name += "-" + strings.ToLower(filter.Status.String())
	}
	name += "-" + time.Now().UTC().Format("20060102-150405") + srv.exporter.FileExtension()

	srv.log(ctx).Info("Orders exported", slog.Int("count", len(orders)), slog.String("filename", name))

	return &usecase.OrderExport{
		Filename:    name,
		ContentType: srv.exporter.ContentType(),
		Data:        buf.Bytes(),
	}, nil
}

// proofConflict explains why a guarded proof attach matched no row.
func (srv *orderService) proofConflict(ctx context.Context, orderID uuid.UUID) error {
	current, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return errors.Wrap(err, "failed to reload order")
	}
	if !current.HasPaymentProof() && current.Status.IsTerminal() {
		return domainerrors.ErrOrderClosed
	}

	return domainerrors.ErrScreenshotAlreadyAdded
}

func (srv *orderService) findOwned(ctx context.Context, orderID, userID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOwned(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

func (srv *orderService) invalidateProducts(ctx context.Context, items []entity.OrderItem) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	if err := srv.productCache.Invalidate(ctx, ids); err != nil {
		srv.log(ctx).Warn("Product cache invalidation failed", slog.Any("error", err))
	}
}

// publish sends the event after commit. Failures are logged and never fail the request.
func (srv *orderService) publish(ctx context.Context, event *entity.OrderEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event",
			slog.String("type", string(event.Type)),
			slog.String("order_id", event.OrderID.String()),
			slog.Any("error", err),
		)
	}
}

func (srv *orderService) discardFile(ctx context.Context, key string) {
	if err := srv.uploader.storage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete orphaned upload", slog.String("key", key), slog.Any("error", err))
	}
}
