// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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
)

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	ownedFinder[model.AddressModel, entity.Address]

	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		ownedFinder: ownedFinder[model.AddressModel, entity.Address]{
			db:          db,
			ownerColumn: "user_id",
			notFound:    repository.ErrAddressNotFound,
			toDomain:    toAddressDomain,
		},
		db: db,
	}
}

// Create persists a new address for its owner.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	if address.ID == uuid.Nil {
		address.ID = uuid.New()
	}
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// Update overwrites the address when its owner matches.
func (repo *addressRepository) Update(ctx context.Context, address *entity.Address) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ? AND user_id = ?", address.ID, address.UserID).
		Updates(map[string]any{
			"label":         address.Label,
			"address_line1": address.AddressLine1,
			"address_line2": address.AddressLine2,
			"city":          address.City,
			"state":         address.State,
			"country":       address.Country,
			"pincode":       address.Pincode,
			"phone":         address.Phone,
			"latitude":      address.Latitude,
			"longitude":     address.Longitude,
			"is_default":    address.IsDefault,
			"updated_at":    now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	address.UpdatedAt = now

	return nil
}

// Delete removes an address owned by userID.
func (repo *addressRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.AddressModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WithDetails("address is used by existing orders")
		}

		return errors.Wrap(result.Error, "failed to delete address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// ListByUser returns the user's addresses, default first and then oldest first.
func (repo *addressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	var addressModels []model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at ASC").
		Find(&addressModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by user")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for i := range addressModels {
		addresses = append(addresses, toAddressDomain(&addressModels[i]))
	}

	return addresses, nil
}

// CountByUser returns how many addresses the user has saved.
func (repo *addressRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.AddressModel{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count addresses")
	}

	return count, nil
}

// ClearDefault unsets the default flag on all of the user's addresses.
func (repo *addressRepository) ClearDefault(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Updates(map[string]any{"is_default": false, "updated_at": time.Now()}).Error

	return errors.Wrap(err, "failed to clear default address")
}

// --- Mapper Functions ---

func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:           data.ID,
		UserID:       data.UserID,
		Label:        data.Label,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		City:         data.City,
		State:        data.State,
		Country:      data.Country,
		Pincode:      data.Pincode,
		Phone:        data.Phone,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		IsDefault:    data.IsDefault,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Label:        data.Label,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		City:         data.City,
		State:        data.State,
		Country:      data.Country,
		Pincode:      data.Pincode,
		Phone:        data.Phone,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		IsDefault:    data.IsDefault,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
