package domain

import "errors"

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrTicketTypeNotFound = errors.New("ticket type not found")
)

var (
	ErrInsufficientInventory     = errors.New("not enough tickets available")
	ErrAlreadyConfirmed          = errors.New("booking already confirmed")
	ErrBookingCancelled          = errors.New("booking is cancelled")
	ErrBookingRefTaken           = errors.New("booking reference already taken")
	ErrExternalOrderAttached     = errors.New("external order already attached")
	ErrPaymentVerificationFailed = errors.New("payment verification failed")
)

var (
	ErrForbidden  = errors.New("not allowed")
	ErrValidation = errors.New("validation error")
)
