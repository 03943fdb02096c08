package impl

import (
	"context"
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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentDetailFixtures struct {
	service usecase.PaymentDetailUsecase
	repo    *mockRepo.MockPaymentDetailRepository
	storage *mockSvc.MockFileStorage
}

func createTestPaymentDetailService(t *testing.T) paymentDetailFixtures {
	repo := mockRepo.NewMockPaymentDetailRepository(t)
	storage := mockSvc.NewMockFileStorage(t)

	return paymentDetailFixtures{
		service: NewPaymentDetailService(PaymentDetailServiceParams{
			PaymentDetailRepo: repo,
			Storage:           storage,
			Config:            newTestConfig(),
			Logger:            newDiscardLogger(),
		}),
		repo:    repo,
		storage: storage,
	}
}

func paymentInput(qr *usecase.FileUpload) *usecase.PaymentDetailInput {
	return &usecase.PaymentDetailInput{
		AccountHolderName: " Spice Corner ",
		UPIID:             "Shop@OKAXIS",
		Phone:             "9876543210",
		QRCode:            qr,
	}
}

func TestPaymentDetailService_Save_FirstSetupRequiresQR(t *testing.T) {
	fx := createTestPaymentDetailService(t)
	adminID := uuid.New()

	fx.repo.EXPECT().FindByAdmin(mock.Anything, adminID).Return(nil, repository.ErrPaymentDetailNotFound)

	_, err := fx.service.Save(context.Background(), adminID, paymentInput(nil))

	assert.ErrorIs(t, err, domainerrors.ErrPaymentQRRequired)
}

func TestPaymentDetailService_Save_FirstSetup(t *testing.T) {
	fx := createTestPaymentDetailService(t)
	ctx := context.Background()
	adminID := uuid.New()

	fx.repo.EXPECT().FindByAdmin(ctx, adminID).Return(nil, repository.ErrPaymentDetailNotFound)
	fx.storage.EXPECT().
		Save(ctx, mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, "payment-qr/"+adminID.String()+"/") }), "image/png", mock.Anything).
		Return(&service.StoredFile{Key: "payment-qr/new.png", URL: "/uploads/payment-qr/new.png"}, nil)
	fx.repo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.PaymentDetail")).Return(nil)

	detail, err := fx.service.Save(ctx, adminID, paymentInput(pngUpload()))

	require.NoError(t, err)
	assert.Equal(t, "shop@okaxis", detail.UPIID)
	assert.Equal(t, "Spice Corner", detail.AccountHolderName)
	assert.Equal(t, "/uploads/payment-qr/new.png", detail.QRCodeImage)
	assert.True(t, detail.IsActive)
}

func TestPaymentDetailService_Save_ReplacesQR(t *testing.T) {
	fx := createTestPaymentDetailService(t)
	ctx := context.Background()
	adminID := uuid.New()
	existing := &entity.PaymentDetail{ID: uuid.New(), AdminID: adminID, QRCodeImage: "/uploads/old.png", QRCodePath: "payment-qr/old.png"}

	fx.repo.EXPECT().FindByAdmin(ctx, adminID).Return(existing, nil)
	fx.storage.EXPECT().Save(ctx, mock.Anything, "image/png", mock.Anything).
		Return(&service.StoredFile{Key: "payment-qr/new.png", URL: "/uploads/new.png"}, nil)
	fx.repo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.PaymentDetail")).Return(nil)
	fx.storage.EXPECT().Delete(ctx, "payment-qr/old.png").Return(nil)

	detail, err := fx.service.Save(ctx, adminID, paymentInput(pngUpload()))

	require.NoError(t, err)
	assert.Equal(t, existing.ID, detail.ID)
	assert.Equal(t, "payment-qr/new.png", detail.QRCodePath)
}

func TestPaymentDetailService_Save_KeepsQRWithoutUpload(t *testing.T) {
	fx := createTestPaymentDetailService(t)
	ctx := context.Background()
	adminID := uuid.New()
	existing := &entity.PaymentDetail{ID: uuid.New(), AdminID: adminID, QRCodeImage: "/uploads/old.png", QRCodePath: "payment-qr/old.png"}

	fx.repo.EXPECT().FindByAdmin(ctx, adminID).Return(existing, nil)
	fx.repo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.PaymentDetail")).Return(nil)

	detail, err := fx.service.Save(ctx, adminID, paymentInput(nil))

	require.NoError(t, err)
	assert.Equal(t, "payment-qr/old.png", detail.QRCodePath)
}

func TestPaymentDetailService_Save_UpsertFailureRemovesUpload(t *testing.T) {
	fx := createTestPaymentDetailService(t)
	ctx := context.Background()
	adminID := uuid.New()

	fx.repo.EXPECT().FindByAdmin(ctx, adminID).Return(nil, repository.ErrPaymentDetailNotFound)
	fx.storage.EXPECT().Save(ctx, mock.Anything, "image/png", mock.Anything).
		Return(&service.StoredFile{Key: "payment-qr/new.png", URL: "/uploads/new.png"}, nil)
	fx.repo.EXPECT().Upsert(ctx, mock.Anything).Return(errors.New("db down"))
	fx.storage.EXPECT().Delete(ctx, "payment-qr/new.png").Return(nil)

	_, err := fx.service.Save(ctx, adminID, paymentInput(pngUpload()))

	require.Error(t, err)
}

func TestPaymentDetailService_Save_Validation(t *testing.T) {
	fx := createTestPaymentDetailService(t)
	input := paymentInput(nil)
	input.UPIID = "not-a-vpa"

	_, err := fx.service.Save(context.Background(), uuid.New(), input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPaymentDetailService_Delete(t *testing.T) {
	adminID := uuid.New()

	t.Run("active details must be deactivated first", func(t *testing.T) {
		fx := createTestPaymentDetailService(t)

		fx.repo.EXPECT().FindByAdmin(mock.Anything, adminID).Return(&entity.PaymentDetail{AdminID: adminID, IsActive: true}, nil)

		err := fx.service.Delete(context.Background(), adminID)

		assert.ErrorIs(t, err, domainerrors.ErrPaymentDetailStillLive)
	})

	t.Run("removes record and QR", func(t *testing.T) {
		fx := createTestPaymentDetailService(t)
		ctx := context.Background()

		fx.repo.EXPECT().FindByAdmin(ctx, adminID).Return(&entity.PaymentDetail{AdminID: adminID, QRCodePath: "payment-qr/a.png"}, nil)
		fx.repo.EXPECT().Delete(ctx, adminID).Return(nil)
		fx.storage.EXPECT().Delete(ctx, "payment-qr/a.png").Return(nil)

		require.NoError(t, fx.service.Delete(ctx, adminID))
	})
}

func TestPaymentDetailService_Deactivate(t *testing.T) {
	fx := createTestPaymentDetailService(t)
	ctx := context.Background()
	adminID := uuid.New()
	detail := &entity.PaymentDetail{AdminID: adminID, IsActive: true}

	fx.repo.EXPECT().FindByAdmin(ctx, adminID).Return(detail, nil)
	fx.repo.EXPECT().Upsert(ctx, detail).Return(nil)

	updated, err := fx.service.Deactivate(ctx, adminID)

	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestPaymentDetailService_GetActive_NotConfigured(t *testing.T) {
	fx := createTestPaymentDetailService(t)

	fx.repo.EXPECT().FindActive(mock.Anything).Return(nil, repository.ErrPaymentDetailNotFound)

	_, err := fx.service.GetActive(context.Background())

	assert.ErrorIs(t, err, domainerrors.ErrNoActivePaymentDetail)
}
