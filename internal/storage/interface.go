package storage

import (
	"context"

	"github.com/kwanchai/cleanbook/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Account operations
	SaveAccount(ctx context.Context, account *model.Account) error
	GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (*model.Account, error)

	// Service operations
	SaveService(ctx context.Context, service *model.Service) error
	GetService(ctx context.Context, id model.ServiceID) (*model.Service, error)
	ListServices(ctx context.Context) ([]*model.Service, error)
	DeleteService(ctx context.Context, id model.ServiceID) error

	// Booking operations
	SaveBooking(ctx context.Context, booking *model.Booking) error
	GetBooking(ctx context.Context, id model.BookingID) (*model.Booking, error)
	ListBookings(ctx context.Context) ([]*model.Booking, error)
	ListBookingsByUser(ctx context.Context, userID string) ([]*model.Booking, error)
	DeleteBooking(ctx context.Context, id model.BookingID) error
}
