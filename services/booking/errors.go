package booking

import "errors"

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrEmailMismatch    = errors.New("email does not match this booking")
	ErrAlreadyCancelled = errors.New("this booking is already cancelled")
	ErrInvalidUnit      = errors.New("unknown unit")
	ErrInvalidDateRange = errors.New("check-out must be after check-in")
	ErrInvalidGuests    = errors.New("guest count out of range for this unit")
	ErrMissingContact   = errors.New("guest name and email are required")
	ErrDatesUnavailable = errors.New("requested dates are not available")
)
