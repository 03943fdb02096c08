package errors

import (
	"fmt"
	"net/http"
	"strconv"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithMessage returns a copy with a different user-facing message
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Is matches other BaseErrors sharing the same code and message
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode && e.message == other.message
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Generic taxonomy
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_STOCK",
		"Not enough items in stock",
		"",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Cart is empty",
		"",
	)

	ErrInvalidState = NewBaseError(
		http.StatusConflict,
		"INVALID_STATE",
		"Operation not allowed in the current state",
		"",
	)

	ErrAlreadyProvided = NewBaseError(
		http.StatusConflict,
		"ALREADY_PROVIDED",
		"Already provided",
		"",
	)

	ErrInvalidStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"Invalid order status",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// User-related errors
	ErrUserNotFound = ErrNotFound.WithMessage("User not found")

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Catalog and cart errors
	ErrProductNotFound  = ErrNotFound.WithMessage("Product not found")
	ErrCartItemNotFound = ErrNotFound.WithMessage("Item not found in cart")

	// Address errors
	ErrAddressNotFound     = ErrNotFound.WithMessage("Address not found or not authorized")
	ErrOutsideDeliveryArea = ErrValidationFailed.WithMessage("Address is outside the delivery area")

	// Order errors
	ErrOrderNotFound          = ErrNotFound.WithMessage("Order not found")
	ErrNoOrders               = ErrNotFound.WithMessage("No orders found")
	ErrScreenshotNotAllowed   = ErrInvalidState.WithMessage("Screenshot only allowed for UPI payments")
	ErrScreenshotAlreadyAdded = ErrAlreadyProvided.WithMessage("Screenshot already uploaded")
	ErrScreenshotRequired     = ErrValidationFailed.WithMessage("No file uploaded")
	ErrInvalidPaymentMethod   = ErrValidationFailed.WithMessage("Payment method must be COD or UPI")
	ErrOrderClosed            = ErrInvalidState.WithMessage("Order is already closed")
	ErrPaymentQRNotAvailable  = ErrInvalidState.WithMessage("Payment QR is only available for UPI orders")
	ErrOrderCodeExhausted     = ErrInternalError.WithMessage("Could not allocate a unique order code")
	ErrDuplicateRequest       = ErrConflict.WithMessage("A request with this idempotency key is already in progress")

	// Payment detail errors
	ErrPaymentDetailNotFound  = ErrNotFound.WithMessage("Payment details not found")
	ErrNoActivePaymentDetail  = ErrNotFound.WithMessage("No active payment details")
	ErrPaymentQRRequired      = ErrValidationFailed.WithMessage("QR code image is required")
	ErrPaymentDetailStillLive = ErrInvalidState.WithMessage("Deactivate payment details before deleting them")

	// Favorite errors
	ErrFavoriteNotFound = ErrNotFound.WithMessage("Favorite not found")

	// Review errors
	ErrReviewNotFound = ErrNotFound.WithMessage("Review not found")

	// Hero banner errors
	ErrHeroBannerNotFound   = ErrNotFound.WithMessage("Hero banner not found")
	ErrHeroBannerIncomplete = ErrValidationFailed.WithMessage("Title and banner image are required")

	// Upload errors
	ErrUnsupportedFileType = ErrValidationFailed.WithMessage("Only image files are allowed")
	ErrFileTooLarge        = ErrValidationFailed.WithMessage("File is too large")
)

// NewInsufficientStockError reports how many units are left.
func NewInsufficientStockError(available int) *BaseError {
	return ErrInsufficientStock.
		WithMessage(fmt.Sprintf("Only %d items in stock", available)).
		WithDetails(strconv.Itoa(available))
}

// NewCartLimitError reports that the cart already holds all available units.
func NewCartLimitError(available int) *BaseError {
	return ErrInsufficientStock.
		WithMessage(fmt.Sprintf("Cannot add more. Only %d in stock", available)).
		WithDetails(strconv.Itoa(available))
}

// NewValidationError wraps a validation failure description.
func NewValidationError(details string) *BaseError {
	return ErrValidationFailed.WithDetails(details)
}

// HasCode reports whether err carries an AppError with the given business code.
func HasCode(err error, code string) bool {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.ErrorCode() == code
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
