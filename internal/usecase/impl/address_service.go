package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type addressService struct {
	txManager      repository.TransactionManager
	addressRepo    repository.AddressRepository
	deliveryZone   service.DeliveryZone
	defaultCountry string
	logger         *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AddressRepo  repository.AddressRepository
	DeliveryZone service.DeliveryZone
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAddressService creates the address usecase.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	defaultCountry := ""
	if params.Config != nil && params.Config.Store != nil {
		defaultCountry = params.Config.Store.DefaultCountry
	}

	return &addressService{
		txManager:      params.TxManager,
		addressRepo:    params.AddressRepo,
		deliveryZone:   params.DeliveryZone,
		defaultCountry: defaultCountry,
		logger:         params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

func (srv *addressService) GetAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error) {
	address, err := srv.addressRepo.FindOwned(ctx, addressID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address")
	}

	return address, nil
}

// CreateAddress stores a new address. A user's first address becomes the default.
func (srv *addressService) CreateAddress(ctx context.Context, userID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	address := &entity.Address{ID: uuid.New(), UserID: userID}
	srv.applyInput(address, input)

	if err := srv.validate(address); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		addressRepo := factory.NewAddressRepository()

		count, err := addressRepo.CountByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count addresses")
		}
		if count == 0 {
			address.IsDefault = true
		}

		if address.IsDefault {
			if err := addressRepo.ClearDefault(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to clear default address")
			}
		}

		return addressRepo.Create(ctx, address)
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	srv.log(ctx).Info("Address created",
		slog.String("user_id", userID.String()),
		slog.String("address_id", address.ID.String()),
		slog.Bool("is_default", address.IsDefault),
	)

	return address, nil
}

// UpdateAddress replaces the editable fields. The default flag can be set here but not cleared,
// so a user with addresses always keeps a default.
func (srv *addressService) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	var updated *entity.Address

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		addressRepo := factory.NewAddressRepository()

		address, err := addressRepo.FindOwned(ctx, addressID, userID)
		if err != nil {
			return err
		}

		wasDefault := address.IsDefault
		srv.applyInput(address, input)
		address.IsDefault = wasDefault || input.IsDefault

		if err := srv.validate(address); err != nil {
			return err
		}

		if address.IsDefault && !wasDefault {
			if err := addressRepo.ClearDefault(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to clear default address")
			}
		}

		if err := addressRepo.Update(ctx, address); err != nil {
			return err
		}
		updated = address

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, err
	}

	return updated, nil
}

func (srv *addressService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	if err := srv.addressRepo.Delete(ctx, addressID, userID); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}

		return err
	}

	srv.log(ctx).Info("Address deleted", slog.String("user_id", userID.String()), slog.String("address_id", addressID.String()))

	return nil
}

// SetDefaultAddress makes addressID the only default address of the user.
func (srv *addressService) SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error) {
	var address *entity.Address

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		addressRepo := factory.NewAddressRepository()

		found, err := addressRepo.FindOwned(ctx, addressID, userID)
		if err != nil {
			return err
		}
		if found.IsDefault {
			address = found

			return nil
		}

		if err := addressRepo.ClearDefault(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear default address")
		}

		found.IsDefault = true
		if err := addressRepo.Update(ctx, found); err != nil {
			return err
		}
		address = found

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, err
	}

	return address, nil
}

func (srv *addressService) applyInput(address *entity.Address, input *usecase.AddressInput) {
	address.Label = strings.TrimSpace(input.Label)
	address.AddressLine1 = strings.TrimSpace(input.AddressLine1)
	address.AddressLine2 = strings.TrimSpace(input.AddressLine2)
	address.City = strings.TrimSpace(input.City)
	address.State = strings.TrimSpace(input.State)
	address.Country = strings.TrimSpace(input.Country)
	address.Pincode = strings.TrimSpace(input.Pincode)
	address.Phone = strings.TrimSpace(input.Phone)
	address.Latitude = input.Latitude
	address.Longitude = input.Longitude
	address.IsDefault = input.IsDefault

	if address.Country == "" {
		address.Country = srv.defaultCountry
	}
}

func (srv *addressService) validate(address *entity.Address) error {
	var missing []string
	for field, value := range map[string]string{
		"addressLine1": address.AddressLine1,
		"city":         address.City,
		"state":        address.State,
		"pincode":      address.Pincode,
	} {
		if value == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)

		return domainerrors.NewValidationError(strings.Join(missing, ", ") + " required")
	}

	if (address.Latitude == nil) != (address.Longitude == nil) {
		return domainerrors.NewValidationError("latitude and longitude must be provided together")
	}

	if address.HasCoordinates() && !srv.deliveryZone.Contains(*address.Latitude, *address.Longitude) {
		return domainerrors.ErrOutsideDeliveryArea
	}

	return nil
}
