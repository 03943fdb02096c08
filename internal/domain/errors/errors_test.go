package errors

import (
	"net/http"
	"testing"

	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestNewInsufficientStockError(t *testing.T) {
	err := NewInsufficientStockError(3)

	assert.Equal(t, http.StatusConflict, err.HTTPCode())
	assert.Equal(t, "INSUFFICIENT_STOCK", err.ErrorCode())
	assert.Equal(t, "Only 3 items in stock", err.Message())
	assert.Equal(t, "3", err.Details())
}

func TestBaseError_IsMatchesCodeAndMessage(t *testing.T) {
	wrapped := errors.Wrap(ErrScreenshotAlreadyAdded, "upload payment proof")

	assert.True(t, errors.Is(wrapped, ErrScreenshotAlreadyAdded))
	assert.False(t, errors.Is(wrapped, ErrScreenshotNotAllowed))
	assert.True(t, errors.Is(ErrOrderNotFound.WithDetails("order 42"), ErrOrderNotFound))
}

func TestHasCode(t *testing.T) {
	err := errors.Wrap(NewCartLimitError(2), "add item")

	assert.True(t, HasCode(err, "INSUFFICIENT_STOCK"))
	assert.False(t, HasCode(err, "NOT_FOUND"))
	assert.False(t, HasCode(errors.New("plain"), "INSUFFICIENT_STOCK"))
}

func TestOwnershipMismatchSharesNotFoundCode(t *testing.T) {
	for _, err := range []*BaseError{ErrAddressNotFound, ErrOrderNotFound, ErrCartItemNotFound, ErrProductNotFound} {
		assert.Equal(t, "NOT_FOUND", err.ErrorCode())
		assert.Equal(t, http.StatusNotFound, err.HTTPCode())
	}
}
