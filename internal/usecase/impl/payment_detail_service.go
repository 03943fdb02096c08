package impl

import (
	"context"
	"log/slog"
	"strings"

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

type paymentDetailService struct {
	paymentDetailRepo repository.PaymentDetailRepository
	uploader          imageUploader
	logger            *slog.Logger
}

// PaymentDetailServiceParams holds dependencies for PaymentDetailService, injected by Fx.
type PaymentDetailServiceParams struct {
	fx.In

	PaymentDetailRepo repository.PaymentDetailRepository
	Storage           service.FileStorage
	Config            *config.Config
	Logger            *slog.Logger
}

// NewPaymentDetailService creates the payment detail usecase.
func NewPaymentDetailService(params PaymentDetailServiceParams) usecase.PaymentDetailUsecase {
	var maxUploadBytes int64
	if params.Config != nil && params.Config.Storage != nil {
		maxUploadBytes = params.Config.Storage.MaxUploadBytes
	}

	return &paymentDetailService{
		paymentDetailRepo: params.PaymentDetailRepo,
		uploader:          imageUploader{storage: params.Storage, maxBytes: maxUploadBytes},
		logger:            params.Logger,
	}
}

func (srv *paymentDetailService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *paymentDetailService) GetActive(ctx context.Context) (*entity.PaymentDetail, error) {
	detail, err := srv.paymentDetailRepo.FindActive(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentDetailNotFound) {
			return nil, domainerrors.ErrNoActivePaymentDetail
		}

		return nil, errors.Wrap(err, "failed to find active payment details")
	}

	return detail, nil
}

func (srv *paymentDetailService) GetMine(ctx context.Context, adminID uuid.UUID) (*entity.PaymentDetail, error) {
	detail, err := srv.paymentDetailRepo.FindByAdmin(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentDetailNotFound) {
			return nil, domainerrors.ErrPaymentDetailNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment details")
	}

	return detail, nil
}

// Save upserts the admin's details. A new QR image replaces the stored one, which is then deleted.
func (srv *paymentDetailService) Save(ctx context.Context, adminID uuid.UUID, input *usecase.PaymentDetailInput) (*entity.PaymentDetail, error) {
	holder := strings.TrimSpace(input.AccountHolderName)
	upiID := strings.ToLower(strings.TrimSpace(input.UPIID))
	phone := strings.TrimSpace(input.Phone)

	if holder == "" || upiID == "" || phone == "" {
		return nil, domainerrors.NewValidationError("UPI ID, Phone, and Account Holder Name are required")
	}
	if !strings.Contains(upiID, "@") {
		return nil, domainerrors.NewValidationError("UPI ID must look like name@bank")
	}

	existing, err := srv.paymentDetailRepo.FindByAdmin(ctx, adminID)
	if err != nil && !errors.Is(err, repository.ErrPaymentDetailNotFound) {
		return nil, errors.Wrap(err, "failed to find payment details")
	}

	detail := &entity.PaymentDetail{
		ID:                uuid.New(),
		AdminID:           adminID,
		AccountHolderName: holder,
		UPIID:             upiID,
		Phone:             phone,
		IsActive:          true,
	}
	if existing != nil {
		detail.ID = existing.ID
		detail.QRCodeImage = existing.QRCodeImage
		detail.QRCodePath = existing.QRCodePath
	}

	var replacedKey, uploadedKey string
	if input.QRCode != nil && input.QRCode.Content != nil {
		stored, err := srv.uploader.store(ctx, constants.PaymentQRPrefix, adminID, input.QRCode)
		if err != nil {
			return nil, err
		}

		replacedKey = detail.QRCodePath
		uploadedKey = stored.Key
		detail.QRCodeImage = stored.URL
		detail.QRCodePath = stored.Key
	}

	if detail.QRCodeImage == "" {
		return nil, domainerrors.ErrPaymentQRRequired
	}

	if err := srv.paymentDetailRepo.Upsert(ctx, detail); err != nil {
		if uploadedKey != "" {
			srv.discardFile(ctx, uploadedKey)
		}

		return nil, errors.Wrap(err, "failed to save payment details")
	}

	if replacedKey != "" {
		srv.discardFile(ctx, replacedKey)
	}

	srv.log(ctx).Info("Payment details saved", slog.String("admin_id", adminID.String()), slog.String("upi_id", upiID))

	return detail, nil
}

func (srv *paymentDetailService) Deactivate(ctx context.Context, adminID uuid.UUID) (*entity.PaymentDetail, error) {
	detail, err := srv.GetMine(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if !detail.IsActive {
		return detail, nil
	}

	detail.IsActive = false
	if err := srv.paymentDetailRepo.Upsert(ctx, detail); err != nil {
		return nil, errors.Wrap(err, "failed to deactivate payment details")
	}

	srv.log(ctx).Info("Payment details deactivated", slog.String("admin_id", adminID.String()))

	return detail, nil
}

// Delete removes deactivated details and their QR image.
func (srv *paymentDetailService) Delete(ctx context.Context, adminID uuid.UUID) error {
	detail, err := srv.GetMine(ctx, adminID)
	if err != nil {
		return err
	}
	if detail.IsActive {
		return domainerrors.ErrPaymentDetailStillLive
	}

	if err := srv.paymentDetailRepo.Delete(ctx, adminID); err != nil {
		if errors.Is(err, repository.ErrPaymentDetailNotFound) {
			return domainerrors.ErrPaymentDetailNotFound
		}

		return errors.Wrap(err, "failed to delete payment details")
	}

	if detail.QRCodePath != "" {
		srv.discardFile(ctx, detail.QRCodePath)
	}

	return nil
}

func (srv *paymentDetailService) discardFile(ctx context.Context, key string) {
	if err := srv.uploader.storage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete QR image", slog.String("key", key), slog.Any("error", err))
	}
}
