package errors

import (
	"net/http"

	"neocart/internal/errors"
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
	// Session-related errors
	ErrAuthRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_REQUIRED",
		"Please log in to continue",
		"",
	)

	ErrInvalidCredential = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIAL",
		"Session expired or credential invalid",
		"",
	)

	ErrSessionNotFound = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_NOT_FOUND",
		"No active session for this credential",
		"",
	)

	ErrLoginFailed = NewBaseError(
		http.StatusUnauthorized,
		"LOGIN_FAILED",
		"Login was rejected by the identity provider",
		"",
	)

	// Cart-related errors
	ErrCartLineNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_LINE_NOT_FOUND",
		"Item is not in the cart",
		"",
	)

	ErrEmptyCouponCode = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_COUPON_CODE",
		"Please enter a coupon code",
		"",
	)

	ErrCouponRejected = NewBaseError(
		http.StatusBadRequest,
		"COUPON_REJECTED",
		"Invalid coupon code",
		"",
	)

	ErrCouponAlreadyApplied = NewBaseError(
		http.StatusConflict,
		"COUPON_ALREADY_APPLIED",
		"A coupon is already applied to this cart",
		"",
	)

	// Wishlist-related errors
	ErrAlreadyInWishlist = NewBaseError(
		http.StatusConflict,
		"ALREADY_IN_WISHLIST",
		"Item is already in the wishlist",
		"",
	)

	ErrWishlistLineNotFound = NewBaseError(
		http.StatusNotFound,
		"WISHLIST_LINE_NOT_FOUND",
		"Item is not in the wishlist",
		"",
	)

	// Upstream-related errors
	ErrUpstreamRejected = NewBaseError(
		http.StatusBadRequest,
		"UPSTREAM_REJECTED",
		"The commerce API rejected the request",
		"",
	)

	ErrUpstreamUnavailable = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_UNAVAILABLE",
		"The commerce API could not be reached",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
