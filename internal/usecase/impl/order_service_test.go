package impl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type orderServiceFixtures struct {
	service           usecase.OrderUsecase
	txManager         *mockRepo.MockTransactionManager
	factory           *mockRepo.MockRepositoryFactory
	orderRepo         *mockRepo.MockOrderRepository
	paymentDetailRepo *mockRepo.MockPaymentDetailRepository
	txAddressRepo     *mockRepo.MockAddressRepository
	txCartRepo        *mockRepo.MockCartRepository
	txProductRepo     *mockRepo.MockProductRepository
	txOrderRepo       *mockRepo.MockOrderRepository
	codeGenerator     *mockSvc.MockOrderCodeGenerator
	productCache      *mockSvc.MockProductCache
	idempotency       *mockSvc.MockIdempotencyStore
	publisher         *mockSvc.MockEventPublisher
	qrCodeService     *mockSvc.MockQRCodeService
	exporter          *mockSvc.MockOrderExporter
	storage           *mockSvc.MockFileStorage
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fx := orderServiceFixtures{
		txManager:         mockRepo.NewMockTransactionManager(t),
		factory:           newTxFactory(t),
		orderRepo:         mockRepo.NewMockOrderRepository(t),
		paymentDetailRepo: mockRepo.NewMockPaymentDetailRepository(t),
		txAddressRepo:     mockRepo.NewMockAddressRepository(t),
		txCartRepo:        mockRepo.NewMockCartRepository(t),
		txProductRepo:     mockRepo.NewMockProductRepository(t),
		txOrderRepo:       mockRepo.NewMockOrderRepository(t),
		codeGenerator:     mockSvc.NewMockOrderCodeGenerator(t),
		productCache:      mockSvc.NewMockProductCache(t),
		idempotency:       mockSvc.NewMockIdempotencyStore(t),
		publisher:         mockSvc.NewMockEventPublisher(t),
		qrCodeService:     mockSvc.NewMockQRCodeService(t),
		exporter:          mockSvc.NewMockOrderExporter(t),
		storage:           mockSvc.NewMockFileStorage(t),
	}

	fx.service = NewOrderService(OrderServiceParams{
		TxManager:         fx.txManager,
		OrderRepo:         fx.orderRepo,
		PaymentDetailRepo: fx.paymentDetailRepo,
		CodeGenerator:     fx.codeGenerator,
		ProductCache:      fx.productCache,
		Idempotency:       fx.idempotency,
		Publisher:         fx.publisher,
		QRCodeService:     fx.qrCodeService,
		Exporter:          fx.exporter,
		Storage:           fx.storage,
		Config:            newTestConfig(),
		Logger:            newDiscardLogger(),
	})

	return fx
}

// expectCheckoutTx wires the transaction factory to the tx-scoped repositories.
func (fx orderServiceFixtures) expectCheckoutTx() {
	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewAddressRepository().Return(fx.txAddressRepo).Maybe()
	fx.factory.EXPECT().NewCartRepository().Return(fx.txCartRepo).Maybe()
	fx.factory.EXPECT().NewProductRepository().Return(fx.txProductRepo).Maybe()
	fx.factory.EXPECT().NewOrderRepository().Return(fx.txOrderRepo).Maybe()
}

func eventOfType(eventType entity.OrderEventType) any {
	return mock.MatchedBy(func(event *entity.OrderEvent) bool {
		return event.Type == eventType
	})
}

type checkoutScenario struct {
	userID   uuid.UUID
	address  *entity.Address
	cart     *entity.Cart
	productA *entity.Product
	productB *entity.Product
}

func newCheckoutScenario() checkoutScenario {
	userID := uuid.New()
	productA := &entity.Product{ID: uuid.New(), Name: "Butter Chicken", Price: decimal.NewFromInt(100), Stock: 5}
	productB := &entity.Product{ID: uuid.New(), Name: "Garlic Naan", Price: decimal.NewFromInt(50), Stock: 5}

	return checkoutScenario{
		userID:   userID,
		address:  &entity.Address{ID: uuid.New(), UserID: userID, City: "Delhi"},
		productA: productA,
		productB: productB,
		cart: &entity.Cart{
			ID:     uuid.New(),
			UserID: userID,
			Items: []entity.CartItem{
				{ProductID: productA.ID, Quantity: 2, Product: productA},
				{ProductID: productB.ID, Quantity: 1, Product: productB},
			},
		},
	}
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)
	sc := newCheckoutScenario()
	ctx := context.Background()

	fx.expectCheckoutTx()
	fx.txAddressRepo.EXPECT().FindOwned(ctx, sc.address.ID, sc.userID).Return(sc.address, nil)
	fx.txCartRepo.EXPECT().FindByUser(ctx, sc.userID).Return(sc.cart, nil)
	fx.txProductRepo.EXPECT().DecrementStock(ctx, sc.productA.ID, 2).Return(nil)
	fx.txProductRepo.EXPECT().DecrementStock(ctx, sc.productB.ID, 1).Return(nil)
	fx.codeGenerator.EXPECT().Generate().Return("ORD01HZX")
	fx.txOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.txCartRepo.EXPECT().DeleteByUser(ctx, sc.userID).Return(nil)
	fx.productCache.EXPECT().Invalidate(ctx, []uuid.UUID{sc.productA.ID, sc.productB.ID}).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, eventOfType(entity.OrderEventPlaced)).Return(nil)

	order, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		UserID:    sc.userID,
		AddressID: sc.address.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentMethodCOD, order.PaymentMethod)
	assert.Equal(t, "ORD01HZX", order.UniqueCode)
	assert.True(t, decimal.NewFromInt(250).Equal(order.TotalAmount), "total was %s", order.TotalAmount)
	require.Len(t, order.Items, 2)
	assert.True(t, decimal.NewFromInt(100).Equal(order.Items[0].PriceAtOrder))
	assert.Equal(t, "Butter Chicken", order.Items[0].ProductName)
}

func TestOrderService_PlaceOrder_PriceFrozenAfterCheckout(t *testing.T) {
	fx := createTestOrderService(t)
	sc := newCheckoutScenario()
	ctx := context.Background()

	fx.expectCheckoutTx()
	fx.txAddressRepo.EXPECT().FindOwned(ctx, sc.address.ID, sc.userID).Return(sc.address, nil)
	fx.txCartRepo.EXPECT().FindByUser(ctx, sc.userID).Return(sc.cart, nil)
	fx.txProductRepo.EXPECT().DecrementStock(ctx, mock.Anything, mock.Anything).Return(nil)
	fx.codeGenerator.EXPECT().Generate().Return("ORD1")
	fx.txOrderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.txCartRepo.EXPECT().DeleteByUser(ctx, sc.userID).Return(nil)
	fx.productCache.EXPECT().Invalidate(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	order, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{UserID: sc.userID, AddressID: sc.address.ID, PaymentMethod: "upi"})
	require.NoError(t, err)

	sc.productA.Price = decimal.NewFromInt(999)

	assert.True(t, decimal.NewFromInt(100).Equal(order.Items[0].PriceAtOrder))
	assert.Equal(t, entity.PaymentMethodUPI, order.PaymentMethod)
}

func TestOrderService_PlaceOrder_EmptyCart(t *testing.T) {
	tests := []struct {
		name string
		cart *entity.Cart
		err  error
	}{
		{name: "no cart", err: repository.ErrCartNotFound},
		{name: "cart without lines", cart: &entity.Cart{ID: uuid.New()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			sc := newCheckoutScenario()
			ctx := context.Background()

			fx.expectCheckoutTx()
			fx.txAddressRepo.EXPECT().FindOwned(ctx, sc.address.ID, sc.userID).Return(sc.address, nil)
			fx.txCartRepo.EXPECT().FindByUser(ctx, sc.userID).Return(tt.cart, tt.err)

			_, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{UserID: sc.userID, AddressID: sc.address.ID})

			assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
		})
	}
}

func TestOrderService_PlaceOrder_AddressOfAnotherUser(t *testing.T) {
	fx := createTestOrderService(t)
	sc := newCheckoutScenario()
	ctx := context.Background()

	fx.expectCheckoutTx()
	fx.txAddressRepo.EXPECT().FindOwned(ctx, sc.address.ID, sc.userID).Return(nil, repository.ErrAddressNotFound)

	_, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{UserID: sc.userID, AddressID: sc.address.ID})

	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestOrderService_PlaceOrder_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t)
	sc := newCheckoutScenario()
	ctx := context.Background()
	sc.cart.Items = sc.cart.Items[:1]

	fx.expectCheckoutTx()
	fx.txAddressRepo.EXPECT().FindOwned(ctx, sc.address.ID, sc.userID).Return(sc.address, nil)
	fx.txCartRepo.EXPECT().FindByUser(ctx, sc.userID).Return(sc.cart, nil)
	fx.txProductRepo.EXPECT().DecrementStock(ctx, sc.productA.ID, 2).Return(repository.ErrStockNotAvailable)
	fx.txProductRepo.EXPECT().FindByID(ctx, sc.productA.ID).Return(&entity.Product{ID: sc.productA.ID, Stock: 1}, nil)

	_, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{UserID: sc.userID, AddressID: sc.address.ID})

	require.Error(t, err)
	assert.True(t, domainerrors.HasCode(err, "INSUFFICIENT_STOCK"))
	assert.EqualError(t, err, "Only 1 items in stock")
	fx.txCartRepo.AssertNotCalled(t, "DeleteByUser", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_RetriesCodeCollision(t *testing.T) {
	fx := createTestOrderService(t)
	sc := newCheckoutScenario()
	ctx := context.Background()

	fx.expectCheckoutTx()
	fx.txAddressRepo.EXPECT().FindOwned(ctx, sc.address.ID, sc.userID).Return(sc.address, nil)
	fx.txCartRepo.EXPECT().FindByUser(ctx, sc.userID).Return(sc.cart, nil)
	fx.txProductRepo.EXPECT().DecrementStock(ctx, mock.Anything, mock.Anything).Return(nil)
	fx.codeGenerator.EXPECT().Generate().Return("ORDTAKEN").Once()
	fx.codeGenerator.EXPECT().Generate().Return("ORDFREE").Once()
	fx.txOrderRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrOrderCodeConflict).Once()
	fx.txOrderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
	fx.txCartRepo.EXPECT().DeleteByUser(ctx, sc.userID).Return(nil)
	fx.productCache.EXPECT().Invalidate(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	order, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{UserID: sc.userID, AddressID: sc.address.ID})

	require.NoError(t, err)
	assert.Equal(t, "ORDFREE", order.UniqueCode)
}

func TestOrderService_PlaceOrder_CodeSpaceExhausted(t *testing.T) {
	fx := createTestOrderService(t)
	sc := newCheckoutScenario()
	ctx := context.Background()

	fx.expectCheckoutTx()
	fx.txAddressRepo.EXPECT().FindOwned(ctx, sc.address.ID, sc.userID).Return(sc.address, nil)
	fx.txCartRepo.EXPECT().FindByUser(ctx, sc.userID).Return(sc.cart, nil)
	fx.txProductRepo.EXPECT().DecrementStock(ctx, mock.Anything, mock.Anything).Return(nil)
	fx.codeGenerator.EXPECT().Generate().Return("ORDTAKEN").Times(maxOrderCodeAttempts)
	fx.txOrderRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrOrderCodeConflict).Times(maxOrderCodeAttempts)

	_, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{UserID: sc.userID, AddressID: sc.address.ID})

	assert.ErrorIs(t, err, domainerrors.ErrOrderCodeExhausted)
}

func TestOrderService_PlaceOrder_InvalidPaymentMethod(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{UserID: uuid.New(), PaymentMethod: "card"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidPaymentMethod)
}

func TestOrderService_PlaceOrder_PublishFailureDoesNotFail(t *testing.T) {
	fx := createTestOrderService(t)
	sc := newCheckoutScenario()
	ctx := context.Background()

	fx.expectCheckoutTx()
	fx.txAddressRepo.EXPECT().FindOwned(ctx, sc.address.ID, sc.userID).Return(sc.address, nil)
	fx.txCartRepo.EXPECT().FindByUser(ctx, sc.userID).Return(sc.cart, nil)
	fx.txProductRepo.EXPECT().DecrementStock(ctx, mock.Anything, mock.Anything).Return(nil)
	fx.codeGenerator.EXPECT().Generate().Return("ORD1")
	fx.txOrderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.txCartRepo.EXPECT().DeleteByUser(ctx, sc.userID).Return(nil)
	fx.productCache.EXPECT().Invalidate(ctx, mock.Anything).Return(errors.New("redis down"))
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(errors.New("pubsub down"))

	order, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{UserID: sc.userID, AddressID: sc.address.ID})

	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_PlaceOrder_Idempotency(t *testing.T) {
	t.Run("completed key replays the first order", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		userID := uuid.New()
		existing := &entity.Order{ID: uuid.New(), UserID: userID, UniqueCode: "ORDFIRST"}

		fx.idempotency.EXPECT().Reserve(ctx, userID.String()+":key-1").Return(existing.ID, true, nil)
		fx.orderRepo.EXPECT().FindOwned(ctx, existing.ID, userID).Return(existing, nil)

		order, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{UserID: userID, AddressID: uuid.New(), IdempotencyKey: "key-1"})

		require.NoError(t, err)
		assert.Equal(t, "ORDFIRST", order.UniqueCode)
		fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})

	t.Run("key in flight", func(t *testing.T) {
		fx := createTestOrderService(t)
		userID := uuid.New()

		fx.idempotency.EXPECT().Reserve(mock.Anything, mock.Anything).Return(uuid.Nil, false, service.ErrIdempotencyInProgress)

		_, err := fx.service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{UserID: userID, IdempotencyKey: "key-1"})

		assert.ErrorIs(t, err, domainerrors.ErrDuplicateRequest)
	})

	t.Run("failure releases the key", func(t *testing.T) {
		fx := createTestOrderService(t)
		sc := newCheckoutScenario()
		ctx := context.Background()
		key := sc.userID.String() + ":key-2"

		fx.idempotency.EXPECT().Reserve(ctx, key).Return(uuid.Nil, false, nil)
		fx.expectCheckoutTx()
		fx.txAddressRepo.EXPECT().FindOwned(ctx, sc.address.ID, sc.userID).Return(sc.address, nil)
		fx.txCartRepo.EXPECT().FindByUser(ctx, sc.userID).Return(nil, repository.ErrCartNotFound)
		fx.idempotency.EXPECT().Release(ctx, key).Return(nil)

		_, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{UserID: sc.userID, AddressID: sc.address.ID, IdempotencyKey: "key-2"})

		assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
	})

	t.Run("success completes the key", func(t *testing.T) {
		fx := createTestOrderService(t)
		sc := newCheckoutScenario()
		ctx := context.Background()
		key := sc.userID.String() + ":key-3"

		fx.idempotency.EXPECT().Reserve(ctx, key).Return(uuid.Nil, false, nil)
		fx.expectCheckoutTx()
		fx.txAddressRepo.EXPECT().FindOwned(ctx, sc.address.ID, sc.userID).Return(sc.address, nil)
		fx.txCartRepo.EXPECT().FindByUser(ctx, sc.userID).Return(sc.cart, nil)
		fx.txProductRepo.EXPECT().DecrementStock(ctx, mock.Anything, mock.Anything).Return(nil)
		fx.codeGenerator.EXPECT().Generate().Return("ORD1")
		fx.txOrderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
		fx.txCartRepo.EXPECT().DeleteByUser(ctx, sc.userID).Return(nil)
		fx.idempotency.EXPECT().Complete(ctx, key, mock.AnythingOfType("uuid.UUID")).Return(nil)
		fx.productCache.EXPECT().Invalidate(ctx, mock.Anything).Return(nil)
		fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

		_, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{UserID: sc.userID, AddressID: sc.address.ID, IdempotencyKey: " key-3 "})

		require.NoError(t, err)
	})
}

func newUPIOrder(userID uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:            uuid.New(),
		UserID:        userID,
		PaymentMethod: entity.PaymentMethodUPI,
		Status:        entity.OrderStatusPending,
		TotalAmount:   decimal.RequireFromString("450.50"),
		UniqueCode:    "ORD01HZX",
	}
}

func pngUpload() *usecase.FileUpload {
	return &usecase.FileUpload{Filename: "proof.png", Size: int64(len(pngHeader)), Content: bytes.NewReader(pngHeader)}
}

func TestOrderService_UploadPaymentProof_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	order := newUPIOrder(userID)
	paid := *order
	paid.Status = entity.OrderStatusPaid
	paid.PaymentScreenshot = "/uploads/order-payments/x.png"

	fx.orderRepo.EXPECT().FindOwned(ctx, order.ID, userID).Return(order, nil)
	fx.storage.EXPECT().
		Save(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "order-payments/"+order.ID.String()+"/") && strings.HasSuffix(key, ".png")
		}), "image/png", mock.Anything).
		Return(&service.StoredFile{Key: "order-payments/x.png", URL: "/uploads/order-payments/x.png"}, nil)
	fx.orderRepo.EXPECT().AttachPaymentProof(ctx, order.ID, "/uploads/order-payments/x.png", "order-payments/x.png").Return(nil)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(&paid, nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(event *entity.OrderEvent) bool {
			return event.Type == entity.OrderEventPaymentProofUploaded &&
				event.PreviousStatus == entity.OrderStatusPending &&
				event.Status == entity.OrderStatusPaid
		})).
		Return(nil)

	updated, err := fx.service.UploadPaymentProof(ctx, userID, order.ID, pngUpload())

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, updated.Status)
}

func TestOrderService_UploadPaymentProof_Rejections(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name   string
		mutate func(order *entity.Order)
		file   *usecase.FileUpload
		want   error
	}{
		{
			name:   "cash on delivery",
			mutate: func(order *entity.Order) { order.PaymentMethod = entity.PaymentMethodCOD },
			file:   pngUpload(),
			want:   domainerrors.ErrScreenshotNotAllowed,
		},
		{
			name:   "already uploaded",
			mutate: func(order *entity.Order) { order.PaymentScreenshot = "/uploads/a.png" },
			file:   pngUpload(),
			want:   domainerrors.ErrScreenshotAlreadyAdded,
		},
		{
			name:   "cancelled order",
			mutate: func(order *entity.Order) { order.Status = entity.OrderStatusCancelled },
			file:   pngUpload(),
			want:   domainerrors.ErrOrderClosed,
		},
		{
			name:   "missing file",
			mutate: func(*entity.Order) {},
			want:   domainerrors.ErrScreenshotRequired,
		},
		{
			name:   "not an image",
			mutate: func(*entity.Order) {},
			file:   &usecase.FileUpload{Filename: "proof.png", Size: 11, Content: strings.NewReader("hello world")},
			want:   domainerrors.ErrUnsupportedFileType,
		},
		{
			name:   "too large",
			mutate: func(*entity.Order) {},
			file:   &usecase.FileUpload{Filename: "proof.png", Size: 2 << 20, Content: bytes.NewReader(pngHeader)},
			want:   domainerrors.ErrFileTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			order := newUPIOrder(userID)
			tt.mutate(order)

			fx.orderRepo.EXPECT().FindOwned(mock.Anything, order.ID, userID).Return(order, nil)

			_, err := fx.service.UploadPaymentProof(context.Background(), userID, order.ID, tt.file)

			assert.ErrorIs(t, err, tt.want)
			fx.storage.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_UploadPaymentProof_NotOwned(t *testing.T) {
	fx := createTestOrderService(t)
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindOwned(mock.Anything, orderID, mock.Anything).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.UploadPaymentProof(context.Background(), uuid.New(), orderID, pngUpload())

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_UploadPaymentProof_LostRaceRemovesFile(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	order := newUPIOrder(userID)

	fx.orderRepo.EXPECT().FindOwned(ctx, order.ID, userID).Return(order, nil)
	fx.storage.EXPECT().Save(ctx, mock.Anything, "image/png", mock.Anything).
		Return(&service.StoredFile{Key: "order-payments/late.png", URL: "/uploads/order-payments/late.png"}, nil)
	fx.orderRepo.EXPECT().AttachPaymentProof(ctx, order.ID, mock.Anything, mock.Anything).Return(repository.ErrOrderStateChanged)
	fx.storage.EXPECT().Delete(ctx, "order-payments/late.png").Return(nil)
	winner := *order
	winner.Status = entity.OrderStatusPaid
	winner.PaymentScreenshot = "/uploads/order-payments/first.png"
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(&winner, nil)

	_, err := fx.service.UploadPaymentProof(ctx, userID, order.ID, pngUpload())

	assert.ErrorIs(t, err, domainerrors.ErrScreenshotAlreadyAdded)
}

func TestOrderService_UploadPaymentProof_CancelledMeanwhile(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	order := newUPIOrder(userID)

	fx.orderRepo.EXPECT().FindOwned(ctx, order.ID, userID).Return(order, nil)
	fx.storage.EXPECT().Save(ctx, mock.Anything, "image/png", mock.Anything).
		Return(&service.StoredFile{Key: "order-payments/late.png", URL: "/uploads/order-payments/late.png"}, nil)
	fx.orderRepo.EXPECT().AttachPaymentProof(ctx, order.ID, mock.Anything, mock.Anything).Return(repository.ErrOrderStateChanged)
	fx.storage.EXPECT().Delete(ctx, "order-payments/late.png").Return(nil)
	cancelled := *order
	cancelled.Status = entity.OrderStatusCancelled
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(&cancelled, nil)

	_, err := fx.service.UploadPaymentProof(ctx, userID, order.ID, pngUpload())

	assert.ErrorIs(t, err, domainerrors.ErrOrderClosed)
	fx.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	for _, status := range []string{"Lost", "paid", " Shipped "} {
		t.Run("rejects "+status, func(t *testing.T) {
			fx := createTestOrderService(t)

			_, err := fx.service.UpdateStatus(context.Background(), uuid.New(), status)

			assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
			fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}

	t.Run("forward transition publishes event", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := newUPIOrder(uuid.New())
		order.Status = entity.OrderStatusPaid

		fx.expectCheckoutTx()
		fx.txOrderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
		fx.txOrderRepo.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderStatusPaid, entity.OrderStatusVerified).Return(nil)
		fx.publisher.EXPECT().
			PublishOrderEvent(ctx, mock.MatchedBy(func(event *entity.OrderEvent) bool {
				return event.Type == entity.OrderEventStatusChanged &&
					event.PreviousStatus == entity.OrderStatusPaid &&
					event.Status == entity.OrderStatusVerified
			})).
			Return(nil)

		updated, err := fx.service.UpdateStatus(ctx, order.ID, "Verified")

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusVerified, updated.Status)
	})

	t.Run("backward transition allowed while open", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := newUPIOrder(uuid.New())
		order.Status = entity.OrderStatusShipped

		fx.expectCheckoutTx()
		fx.txOrderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
		fx.txOrderRepo.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderStatusShipped, entity.OrderStatusProcessing).Return(nil)
		fx.publisher.EXPECT().PublishOrderEvent(ctx, eventOfType(entity.OrderEventStatusChanged)).Return(nil)

		updated, err := fx.service.UpdateStatus(ctx, order.ID, "Processing")

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusProcessing, updated.Status)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := newUPIOrder(uuid.New())

		fx.expectCheckoutTx()
		fx.txOrderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

		updated, err := fx.service.UpdateStatus(ctx, order.ID, "Pending")

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusPending, updated.Status)
		fx.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
	})

	t.Run("terminal order", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := newUPIOrder(uuid.New())
		order.Status = entity.OrderStatusDelivered

		fx.expectCheckoutTx()
		fx.txOrderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)

		_, err := fx.service.UpdateStatus(ctx, order.ID, "Cancelled")

		assert.ErrorIs(t, err, domainerrors.ErrOrderClosed)
	})

	t.Run("cancel restores stock", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		productID := uuid.New()
		order := newUPIOrder(uuid.New())
		order.Items = []entity.OrderItem{{ProductID: productID, Quantity: 3, PriceAtOrder: decimal.NewFromInt(10)}}

		fx.expectCheckoutTx()
		fx.txOrderRepo.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
		fx.txOrderRepo.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusCancelled).Return(nil)
		fx.txProductRepo.EXPECT().IncrementStock(ctx, productID, 3).Return(nil)
		fx.productCache.EXPECT().Invalidate(ctx, []uuid.UUID{productID}).Return(nil)
		fx.publisher.EXPECT().PublishOrderEvent(ctx, eventOfType(entity.OrderEventStatusChanged)).Return(nil)

		updated, err := fx.service.UpdateStatus(ctx, order.ID, "Cancelled")

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusCancelled, updated.Status)
	})

	t.Run("missing order", func(t *testing.T) {
		fx := createTestOrderService(t)
		orderID := uuid.New()

		fx.expectCheckoutTx()
		fx.txOrderRepo.EXPECT().FindByIDForUpdate(mock.Anything, orderID).Return(nil, repository.ErrOrderNotFound)

		_, err := fx.service.UpdateStatus(context.Background(), orderID, "Paid")

		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})
}

func TestOrderService_GetOrderByCode(t *testing.T) {
	owner := uuid.New()
	order := newUPIOrder(owner)

	tests := []struct {
		name      string
		requester usecase.Requester
		wantErr   error
	}{
		{name: "owner", requester: usecase.Requester{UserID: owner}},
		{name: "admin", requester: usecase.Requester{UserID: uuid.New(), IsAdmin: true}},
		{name: "other customer", requester: usecase.Requester{UserID: uuid.New()}, wantErr: domainerrors.ErrOrderNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			fx.orderRepo.EXPECT().FindByCode(mock.Anything, "ord01hzx").Return(order, nil)

			found, err := fx.service.GetOrderByCode(context.Background(), tt.requester, " ord01hzx ")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, order.ID, found.ID)
		})
	}
}

func TestOrderService_LatestOrder_NoOrders(t *testing.T) {
	fx := createTestOrderService(t)
	userID := uuid.New()

	fx.orderRepo.EXPECT().FindLatestByUser(mock.Anything, userID).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.LatestOrder(context.Background(), userID)

	assert.ErrorIs(t, err, domainerrors.ErrNoOrders)
}

func TestOrderService_PaymentQR(t *testing.T) {
	t.Run("renders QR for active details", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		userID := uuid.New()
		order := newUPIOrder(userID)

		fx.orderRepo.EXPECT().FindOwned(ctx, order.ID, userID).Return(order, nil)
		fx.paymentDetailRepo.EXPECT().FindActive(ctx).
			Return(&entity.PaymentDetail{UPIID: "shop@okaxis", AccountHolderName: "Spice Corner", IsActive: true}, nil)
		fx.qrCodeService.EXPECT().
			GenerateUPIQR(service.UPIPayment{
				PayeeVPA:  "shop@okaxis",
				PayeeName: "Spice Corner",
				Amount:    order.TotalAmount,
				Note:      "ORD01HZX",
			}).
			Return(pngHeader, nil)

		png, err := fx.service.PaymentQR(ctx, userID, order.ID)

		require.NoError(t, err)
		assert.Equal(t, pngHeader, png)
	})

	t.Run("cash order", func(t *testing.T) {
		fx := createTestOrderService(t)
		userID := uuid.New()
		order := newUPIOrder(userID)
		order.PaymentMethod = entity.PaymentMethodCOD

		fx.orderRepo.EXPECT().FindOwned(mock.Anything, order.ID, userID).Return(order, nil)

		_, err := fx.service.PaymentQR(context.Background(), userID, order.ID)

		assert.ErrorIs(t, err, domainerrors.ErrPaymentQRNotAvailable)
	})

	t.Run("payments not configured", func(t *testing.T) {
		fx := createTestOrderService(t)
		userID := uuid.New()
		order := newUPIOrder(userID)

		fx.orderRepo.EXPECT().FindOwned(mock.Anything, order.ID, userID).Return(order, nil)
		fx.paymentDetailRepo.EXPECT().FindActive(mock.Anything).Return(nil, repository.ErrPaymentDetailNotFound)

		_, err := fx.service.PaymentQR(context.Background(), userID, order.ID)

		assert.ErrorIs(t, err, domainerrors.ErrNoActivePaymentDetail)
	})
}

func TestOrderService_ExportOrders(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	status := entity.OrderStatusPaid
	filter := entity.OrderFilter{Status: &status}
	orders := []*entity.Order{newUPIOrder(uuid.New())}

	fx.orderRepo.EXPECT().ListAll(ctx, filter).Return(orders, nil)
	fx.exporter.EXPECT().Export(mock.Anything, orders).
		RunAndReturn(func(w io.Writer, _ []*entity.Order) error {
			_, err := w.Write([]byte("xlsx"))

			return err
		})
	fx.exporter.EXPECT().FileExtension().Return(".xlsx")
	fx.exporter.EXPECT().ContentType().Return("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	export, err := fx.service.ExportOrders(ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), export.Data)
	assert.True(t, strings.HasPrefix(export.Filename, "orders-paid-"))
	assert.True(t, strings.HasSuffix(export.Filename, ".xlsx"))
}

func TestOrderService_ListMyOrders(t *testing.T) {
	fx := createTestOrderService(t)
	userID := uuid.New()
	page := entity.NewPage(1, 10, 10, 100)

	fx.orderRepo.EXPECT().ListByUser(mock.Anything, userID, page).Return([]*entity.Order{newUPIOrder(userID)}, int64(1), nil)

	result, err := fx.service.ListMyOrders(context.Background(), userID, page)

	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, 1, result.PageInfo.TotalPages)
}
