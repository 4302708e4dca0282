package model

import (
	"sort"
	"time"
)

// BookingID uniquely identifies a booking
type BookingID string

// BookingStatus is the lifecycle state of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus validates a status string from an external source
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return BookingStatus(s), nil
	}
	return "", ErrInvalidStatus
}

// Booking is a user's reservation of a service at a date and time
type Booking struct {
	ID        BookingID
	ServiceID ServiceID
	Date      string // YYYY-MM-DD
	Time      string // HH:MM
	Address   string
	Note      string
	UserID    string
	Status    BookingStatus
	CreatedAt time.Time
}

// SortBookingsByNewest orders bookings by creation time, most recent
// first. Bookings with equal stamps keep their incoming order.
func SortBookingsByNewest(bookings []*Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
}
