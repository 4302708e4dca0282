package redis

import (
	"fmt"

	"github.com/kwanchai/cleanbook/internal/model"
)

// Key prefix for all booking-related data
const keyPrefix = "cleanbook"

// accountKey returns the Redis key for an Account
func accountKey(id model.AccountID) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> account_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// serviceKey returns the Redis key for a Service
func serviceKey(id model.ServiceID) string {
	return fmt.Sprintf("%s:service:%s", keyPrefix, id)
}

// servicesIndexKey returns the Redis key for the SET of all service ids
func servicesIndexKey() string {
	return fmt.Sprintf("%s:idx:services", keyPrefix)
}

// bookingKey returns the Redis key for a Booking
func bookingKey(id model.BookingID) string {
	return fmt.Sprintf("%s:booking:%s", keyPrefix, id)
}

// bookingsIndexKey returns the Redis key for the SET of all booking ids
func bookingsIndexKey() string {
	return fmt.Sprintf("%s:idx:bookings", keyPrefix)
}

// userBookingsIndexKey returns the Redis key for the SET of a user's booking ids
func userBookingsIndexKey(userID string) string {
	return fmt.Sprintf("%s:idx:bookings_for_user:%s", keyPrefix, userID)
}
