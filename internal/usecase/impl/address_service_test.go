package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type addressServiceFixtures struct {
	service      usecase.AddressUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	addressRepo  *mockRepo.MockAddressRepository
	txRepo       *mockRepo.MockAddressRepository
	deliveryZone *mockSvc.MockDeliveryZone
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	fx := addressServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      newTxFactory(t),
		addressRepo:  mockRepo.NewMockAddressRepository(t),
		txRepo:       mockRepo.NewMockAddressRepository(t),
		deliveryZone: mockSvc.NewMockDeliveryZone(t),
	}
	fx.service = NewAddressService(AddressServiceParams{
		TxManager:    fx.txManager,
		AddressRepo:  fx.addressRepo,
		DeliveryZone: fx.deliveryZone,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return fx
}

func (fx addressServiceFixtures) expectTx() {
	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewAddressRepository().Return(fx.txRepo)
}

func validAddressInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		Label:        "Home",
		AddressLine1: "12 MG Road",
		City:         "Bengaluru",
		State:        "Karnataka",
		Pincode:      "560001",
	}
}

func TestAddressService_CreateAddress_FirstBecomesDefault(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.expectTx()
	fx.txRepo.EXPECT().CountByUser(ctx, userID).Return(int64(0), nil)
	fx.txRepo.EXPECT().ClearDefault(ctx, userID).Return(nil)
	fx.txRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)

	address, err := fx.service.CreateAddress(ctx, userID, validAddressInput())

	require.NoError(t, err)
	assert.True(t, address.IsDefault)
	assert.Equal(t, "India", address.Country)
	assert.Equal(t, userID, address.UserID)
}

func TestAddressService_CreateAddress_SecondIsNotDefault(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.expectTx()
	fx.txRepo.EXPECT().CountByUser(ctx, userID).Return(int64(2), nil)
	fx.txRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)

	address, err := fx.service.CreateAddress(ctx, userID, validAddressInput())

	require.NoError(t, err)
	assert.False(t, address.IsDefault)
	fx.txRepo.AssertNotCalled(t, "ClearDefault", mock.Anything, mock.Anything)
}

func TestAddressService_CreateAddress_Validation(t *testing.T) {
	lat, lng := 28.61, 77.20

	tests := []struct {
		name   string
		mutate func(input *usecase.AddressInput)
		setup  func(fx addressServiceFixtures)
		want   error
	}{
		{
			name:   "missing city",
			mutate: func(input *usecase.AddressInput) { input.City = " " },
			want:   domainerrors.ErrValidationFailed,
		},
		{
			name:   "latitude without longitude",
			mutate: func(input *usecase.AddressInput) { input.Latitude = &lat },
			want:   domainerrors.ErrValidationFailed,
		},
		{
			name: "outside delivery area",
			mutate: func(input *usecase.AddressInput) {
				input.Latitude = &lat
				input.Longitude = &lng
			},
			setup: func(fx addressServiceFixtures) {
				fx.deliveryZone.EXPECT().Contains(lat, lng).Return(false)
			},
			want: domainerrors.ErrOutsideDeliveryArea,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAddressService(t)
			input := validAddressInput()
			tt.mutate(input)
			if tt.setup != nil {
				tt.setup(fx)
			}

			_, err := fx.service.CreateAddress(context.Background(), uuid.New(), input)

			assert.True(t, domainerrors.HasCode(err, "VALIDATION_FAILED"))
			assert.ErrorIs(t, err, tt.want)
			fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestAddressService_GetAddress_OtherUsersAddress(t *testing.T) {
	fx := createTestAddressService(t)
	addressID, userID := uuid.New(), uuid.New()

	fx.addressRepo.EXPECT().FindOwned(mock.Anything, addressID, userID).Return(nil, repository.ErrAddressNotFound)

	_, err := fx.service.GetAddress(context.Background(), userID, addressID)

	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
	assert.EqualError(t, err, "Address not found or not authorized")
}

func TestAddressService_SetDefaultAddress(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	userID := uuid.New()
	address := &entity.Address{ID: uuid.New(), UserID: userID}

	fx.expectTx()
	fx.txRepo.EXPECT().FindOwned(ctx, address.ID, userID).Return(address, nil)
	fx.txRepo.EXPECT().ClearDefault(ctx, userID).Return(nil)
	fx.txRepo.EXPECT().Update(ctx, address).Return(nil)

	updated, err := fx.service.SetDefaultAddress(ctx, userID, address.ID)

	require.NoError(t, err)
	assert.True(t, updated.IsDefault)
}

func TestAddressService_UpdateAddress_KeepsDefault(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	userID := uuid.New()
	address := &entity.Address{ID: uuid.New(), UserID: userID, IsDefault: true, City: "Pune"}

	fx.expectTx()
	fx.txRepo.EXPECT().FindOwned(ctx, address.ID, userID).Return(address, nil)
	fx.txRepo.EXPECT().Update(ctx, address).Return(nil)

	updated, err := fx.service.UpdateAddress(ctx, userID, address.ID, validAddressInput())

	require.NoError(t, err)
	assert.True(t, updated.IsDefault)
	assert.Equal(t, "Bengaluru", updated.City)
}

func TestAddressService_DeleteAddress_NotFound(t *testing.T) {
	fx := createTestAddressService(t)
	addressID, userID := uuid.New(), uuid.New()

	fx.addressRepo.EXPECT().Delete(mock.Anything, addressID, userID).Return(repository.ErrAddressNotFound)

	err := fx.service.DeleteAddress(context.Background(), userID, addressID)

	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}
