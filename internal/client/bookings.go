package client

import (
	"context"
	"net/url"
	"time"

	"github.com/kwanchai/cleanbook/internal/dependencies/clock"
	"github.com/kwanchai/cleanbook/internal/model"
)

// BookingForm carries the fields for creating a booking
type BookingForm struct {
	ServiceID model.ServiceID
	Date      string
	Time      string
	Address   string
	Note      string
	UserID    string
}

// BookingPatch enumerates exactly the fields an update may change
type BookingPatch struct {
	Date    *string
	Time    *string
	Address *string
	Note    *string
	Status  *model.BookingStatus
}

// BookingsAPI talks to the booking endpoints
type BookingsAPI struct {
	c     *Client
	clock clock.Clock
}

// NewBookingsAPI creates a BookingsAPI
func NewBookingsAPI(c *Client, clk clock.Clock) *BookingsAPI {
	if clk == nil {
		clk = clock.New()
	}
	return &BookingsAPI{c: c, clock: clk}
}

// List returns all bookings
func (b *BookingsAPI) List(ctx context.Context) ([]*model.Booking, error) {
	return b.list(ctx, "/bookings")
}

// ListByUser returns the bookings belonging to a user
func (b *BookingsAPI) ListByUser(ctx context.Context, userID string) ([]*model.Booking, error) {
	return b.list(ctx, "/bookings/user/"+url.PathEscape(userID))
}

// list fetches and shapes a booking collection. Ordering is imposed
// here rather than trusted from the server, so listings read the same
// against any backend.
func (b *BookingsAPI) list(ctx context.Context, path string) ([]*model.Booking, error) {
	var dtos []bookingDTO
	if err := b.c.get(ctx, path, &dtos); err != nil {
		return nil, err
	}
	bookings := make([]*model.Booking, 0, len(dtos))
	for _, dto := range dtos {
		bookings = append(bookings, bookingFromDTO(dto))
	}
	model.SortBookingsByNewest(bookings)
	return bookings, nil
}

// Get returns a single booking
func (b *BookingsAPI) Get(ctx context.Context, id model.BookingID) (*model.Booking, error) {
	var dto bookingDTO
	if err := b.c.get(ctx, "/bookings/"+url.PathEscape(string(id)), &dto); err != nil {
		return nil, err
	}
	return bookingFromDTO(dto), nil
}

// Create creates a booking. New bookings start pending with a creation
// stamp taken now.
func (b *BookingsAPI) Create(ctx context.Context, form BookingForm) (*model.Booking, error) {
	var dto bookingDTO
	if err := b.c.post(ctx, "/bookings", bookingDTO{
		ServiceID: wireID(form.ServiceID),
		Date:      form.Date,
		Time:      form.Time,
		Address:   form.Address,
		Note:      form.Note,
		UserID:    wireID(form.UserID),
		Status:    string(model.StatusPending),
		CreatedAt: b.clock.Now().UTC().Format(time.RFC3339),
	}, &dto); err != nil {
		return nil, err
	}
	return bookingFromDTO(dto), nil
}

// Update applies a patch to a booking
func (b *BookingsAPI) Update(ctx context.Context, id model.BookingID, patch BookingPatch) (*model.Booking, error) {
	body := make(map[string]any)
	if patch.Date != nil {
		body["date"] = *patch.Date
	}
	if patch.Time != nil {
		body["time"] = *patch.Time
	}
	if patch.Address != nil {
		body["address"] = *patch.Address
	}
	if patch.Note != nil {
		body["note"] = *patch.Note
	}
	if patch.Status != nil {
		body["status"] = string(*patch.Status)
	}

	var dto bookingDTO
	if err := b.c.put(ctx, "/bookings/"+url.PathEscape(string(id)), body, &dto); err != nil {
		return nil, err
	}
	return bookingFromDTO(dto), nil
}

// Delete removes a booking
func (b *BookingsAPI) Delete(ctx context.Context, id model.BookingID) error {
	return b.c.delete(ctx, "/bookings/"+url.PathEscape(string(id)))
}
