// Package booking manages reservations of catalogue services
package booking

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kwanchai/cleanbook/internal/dependencies/clock"
	"github.com/kwanchai/cleanbook/internal/model"
	"github.com/kwanchai/cleanbook/internal/storage"
)

// Service manages bookings
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a booking Service
func New(storage storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{storage: storage, clock: clk, logger: logger}
}

// CreateInput carries the fields for a new booking
type CreateInput struct {
	ServiceID model.ServiceID
	Date      string
	Time      string
	Address   string
	Note      string
	UserID    string
	Status    model.BookingStatus
	CreatedAt time.Time
}

// Create records a booking. A missing status defaults to pending and a
// missing creation stamp to now.
func (s *Service) Create(ctx context.Context, in CreateInput) (*model.Booking, error) {
	if _, err := s.storage.GetService(ctx, in.ServiceID); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = model.StatusPending
	}
	createdAt := in.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.clock.Now()
	}

	booking := &model.Booking{
		ID:        model.BookingID(uuid.NewString()),
		ServiceID: in.ServiceID,
		Date:      in.Date,
		Time:      in.Time,
		Address:   in.Address,
		Note:      in.Note,
		UserID:    in.UserID,
		Status:    status,
		CreatedAt: createdAt,
	}

	if err := s.storage.SaveBooking(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		slog.String("booking_id", string(booking.ID)),
		slog.String("service_id", string(booking.ServiceID)),
		slog.String("user_id", booking.UserID),
	)
	return booking, nil
}

// Get returns a single booking
func (s *Service) Get(ctx context.Context, id model.BookingID) (*model.Booking, error) {
	return s.storage.GetBooking(ctx, id)
}

// List returns all bookings, newest first
func (s *Service) List(ctx context.Context) ([]*model.Booking, error) {
	bookings, err := s.storage.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	model.SortBookingsByNewest(bookings)
	return bookings, nil
}

// ListByUser returns a user's bookings, newest first
func (s *Service) ListByUser(ctx context.Context, userID string) ([]*model.Booking, error) {
	bookings, err := s.storage.ListBookingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	model.SortBookingsByNewest(bookings)
	return bookings, nil
}

// Patch enumerates the fields an update may change; nil means keep
type Patch struct {
	Date    *string
	Time    *string
	Address *string
	Note    *string
	Status  *model.BookingStatus
}

// Update applies a patch to a booking
func (s *Service) Update(ctx context.Context, id model.BookingID, patch Patch) (*model.Booking, error) {
	booking, err := s.storage.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *booking
	if patch.Date != nil {
		updated.Date = *patch.Date
	}
	if patch.Time != nil {
		updated.Time = *patch.Time
	}
	if patch.Address != nil {
		updated.Address = *patch.Address
	}
	if patch.Note != nil {
		updated.Note = *patch.Note
	}
	if patch.Status != nil {
		if _, err := model.ParseBookingStatus(string(*patch.Status)); err != nil {
			return nil, err
		}
		updated.Status = *patch.Status
	}

	if err := s.storage.SaveBooking(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a booking
func (s *Service) Delete(ctx context.Context, id model.BookingID) error {
	if err := s.storage.DeleteBooking(ctx, id); err != nil {
		return err
	}
	s.logger.Info("booking deleted", slog.String("booking_id", string(id)))
	return nil
}
