package services

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("not authorized")
	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrInvalidPayment     = errors.New("invalid payment method")
	ErrItemUnavailable    = errors.New("menu item is not available")
	ErrRestaurantMismatch = errors.New("menu item does not belong to the restaurant")
	ErrNotCancellable     = errors.New("order cannot be cancelled at this stage")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrIllegalTransition  = errors.New("illegal status transition")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
