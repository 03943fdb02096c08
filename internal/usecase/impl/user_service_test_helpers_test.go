package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:  12,
			AdminEmails: []string{"owner@example.com"},
		},
		Store: &config.StoreConfig{
			DefaultPageSize:   10,
			MaxPageSize:       100,
			LowStockThreshold: 5,
			DefaultCountry:    "India",
		},
		Storage: &config.StorageConfig{
			MaxUploadBytes: 1 << 20,
		},
	}
}

// expectTransaction makes txManager run the callback against factory and return its error.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager_Execute_Call {
	return txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// newTxFactory returns a factory mock; expectations for the repositories it hands out are
// registered by the caller.
func newTxFactory(t *testing.T) *mockRepo.MockRepositoryFactory {
	return mockRepo.NewMockRepositoryFactory(t)
}
