package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwanchai/cleanbook/internal/model"
)

func TestAccountRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	account := &model.Account{
		ID:           "acc_1",
		Username:     "somchai",
		Role:         model.RoleUser,
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, s.SaveAccount(ctx, account))

	byID, err := s.GetAccount(ctx, "acc_1")
	require.NoError(t, err)
	assert.Equal(t, "somchai", byID.Username)

	byName, err := s.GetAccountByUsername(ctx, "somchai")
	require.NoError(t, err)
	assert.Equal(t, model.AccountID("acc_1"), byName.ID)

	_, err = s.GetAccountByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, model.ErrAccountNotFound)
}

func TestServiceCRUD(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.SaveService(ctx, &model.Service{ID: "svc_1", Name: "Deep Clean"}))
	require.NoError(t, s.SaveService(ctx, &model.Service{ID: "svc_2", Name: "Window Clean"}))

	services, err := s.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "Deep Clean", services[0].Name, "insertion order is preserved")

	// Overwrite does not duplicate
	require.NoError(t, s.SaveService(ctx, &model.Service{ID: "svc_1", Name: "Deeper Clean"}))
	services, err = s.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "Deeper Clean", services[0].Name)

	require.NoError(t, s.DeleteService(ctx, "svc_1"))
	_, err = s.GetService(ctx, "svc_1")
	assert.ErrorIs(t, err, model.ErrServiceNotFound)

	assert.ErrorIs(t, s.DeleteService(ctx, "svc_1"), model.ErrServiceNotFound)
}

func TestBookingCRUDAndUserIndex(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.SaveBooking(ctx, &model.Booking{ID: "b_1", UserID: "u_1", ServiceID: "svc_1"}))
	require.NoError(t, s.SaveBooking(ctx, &model.Booking{ID: "b_2", UserID: "u_2", ServiceID: "svc_1"}))
	require.NoError(t, s.SaveBooking(ctx, &model.Booking{ID: "b_3", UserID: "u_1", ServiceID: "svc_2"}))

	all, err := s.ListBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := s.ListBookingsByUser(ctx, "u_1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, model.BookingID("b_1"), mine[0].ID)

	require.NoError(t, s.DeleteBooking(ctx, "b_1"))
	mine, err = s.ListBookingsByUser(ctx, "u_1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	assert.ErrorIs(t, s.DeleteBooking(ctx, "b_1"), model.ErrBookingNotFound)
}
