package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// paymentDetailRepository implements the domain.PaymentDetailRepository interface.
type paymentDetailRepository struct {
	ownedFinder[model.PaymentDetailModel, entity.PaymentDetail]

	db *gorm.DB
}

// NewPaymentDetailRepository is the constructor for paymentDetailRepository.
func NewPaymentDetailRepository(db *gorm.DB) repository.PaymentDetailRepository {
	return &paymentDetailRepository{
		ownedFinder: ownedFinder[model.PaymentDetailModel, entity.PaymentDetail]{
			db:          db,
			ownerColumn: "admin_id",
			notFound:    repository.ErrPaymentDetailNotFound,
			toDomain:    toPaymentDetailDomain,
		},
		db: db,
	}
}

// FindByAdmin returns the admin's payment details.
func (repo *paymentDetailRepository) FindByAdmin(ctx context.Context, adminID uuid.UUID) (*entity.PaymentDetail, error) {
	return repo.findOneByOwner(ctx, adminID)
}

// FindActive returns the most recently updated active record.
func (repo *paymentDetailRepository) FindActive(ctx context.Context) (*entity.PaymentDetail, error) {
	var detailM model.PaymentDetailModel
	err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("updated_at DESC").
		First(&detailM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentDetailNotFound
		}

		return nil, errors.Wrap(err, "failed to find active payment detail")
	}

	return toPaymentDetailDomain(&detailM), nil
}

// Upsert inserts the admin's record or replaces its editable fields.
func (repo *paymentDetailRepository) Upsert(ctx context.Context, detail *entity.PaymentDetail) error {
	if detail.ID == uuid.Nil {
		detail.ID = uuid.New()
	}
	now := time.Now()
	detailM := fromPaymentDetailDomain(detail)
	detailM.UpdatedAt = now
	if detailM.CreatedAt.IsZero() {
		detailM.CreatedAt = now
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "admin_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"account_holder_name", "upi_id", "phone", "qr_code_image", "qr_code_path", "is_active", "updated_at",
			}),
		}).
		Create(detailM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save payment details")
	}

	stored, err := repo.FindByAdmin(ctx, detail.AdminID)
	if err != nil {
		return err
	}
	*detail = *stored

	return nil
}

// Delete removes the admin's record.
func (repo *paymentDetailRepository) Delete(ctx context.Context, adminID uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("admin_id = ?", adminID).Delete(&model.PaymentDetailModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete payment details")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPaymentDetailNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPaymentDetailDomain(data *model.PaymentDetailModel) *entity.PaymentDetail {
	if data == nil {
		return nil
	}

	return &entity.PaymentDetail{
		ID:                data.ID,
		AdminID:           data.AdminID,
		AccountHolderName: data.AccountHolderName,
		UPIID:             data.UPIID,
		Phone:             data.Phone,
		QRCodeImage:       data.QRCodeImage,
		QRCodePath:        data.QRCodePath,
		IsActive:          data.IsActive,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromPaymentDetailDomain(data *entity.PaymentDetail) *model.PaymentDetailModel {
	if data == nil {
		return nil
	}

	return &model.PaymentDetailModel{
		ID:                data.ID,
		AdminID:           data.AdminID,
		AccountHolderName: data.AccountHolderName,
		UPIID:             data.UPIID,
		Phone:             data.Phone,
		QRCodeImage:       data.QRCodeImage,
		QRCodePath:        data.QRCodePath,
		IsActive:          data.IsActive,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
