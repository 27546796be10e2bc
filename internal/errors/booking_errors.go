package errors

import "errors"

var (
	ErrBookingAlreadyActive = errors.New("a booking is already active")
	ErrNoActiveBooking      = errors.New("no active booking")
	ErrInvalidTransportMode = errors.New("invalid transport mode")
)
