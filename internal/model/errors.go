package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidRole     = errors.New("invalid role")

	// Service errors
	ErrServiceNotFound = errors.New("service not found")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidStatus   = errors.New("invalid booking status")
)
