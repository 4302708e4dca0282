package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/kwanchai/cleanbook/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Account tests

func (s *StorageSuite) TestSaveAndGetAccount() {
	account := &model.Account{
		ID:           "acc_1",
		Username:     "somchai",
		Role:         model.RoleAuthor,
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}

	s.Require().NoError(s.storage.SaveAccount(s.ctx, account))

	retrieved, err := s.storage.GetAccount(s.ctx, "acc_1")
	s.Require().NoError(err)
	s.Equal(account.Username, retrieved.Username)
	s.Equal(model.RoleAuthor, retrieved.Role)
}

func (s *StorageSuite) TestGetAccountByUsername() {
	account := &model.Account{ID: "acc_1", Username: "somchai", Role: model.RoleUser}
	s.Require().NoError(s.storage.SaveAccount(s.ctx, account))

	retrieved, err := s.storage.GetAccountByUsername(s.ctx, "somchai")
	s.Require().NoError(err)
	s.Equal(model.AccountID("acc_1"), retrieved.ID)

	_, err = s.storage.GetAccountByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

// Service tests

func (s *StorageSuite) TestServiceCRUD() {
	svc := &model.Service{
		ID:          "svc_1",
		Name:        "Deep Clean",
		Description: "Full home clean",
		Price:       1200,
		Duration:    "3 hours",
	}

	s.Require().NoError(s.storage.SaveService(s.ctx, svc))

	retrieved, err := s.storage.GetService(s.ctx, "svc_1")
	s.Require().NoError(err)
	s.Equal("Deep Clean", retrieved.Name)
	s.Equal(1200.0, retrieved.Price)

	services, err := s.storage.ListServices(s.ctx)
	s.Require().NoError(err)
	s.Len(services, 1)

	s.Require().NoError(s.storage.DeleteService(s.ctx, "svc_1"))

	_, err = s.storage.GetService(s.ctx, "svc_1")
	s.ErrorIs(err, model.ErrServiceNotFound)

	services, err = s.storage.ListServices(s.ctx)
	s.Require().NoError(err)
	s.Empty(services)
}

func (s *StorageSuite) TestDeleteMissingService() {
	s.ErrorIs(s.storage.DeleteService(s.ctx, "svc_missing"), model.ErrServiceNotFound)
}

// Booking tests

func (s *StorageSuite) TestBookingCRUD() {
	booking := &model.Booking{
		ID:        "b_1",
		ServiceID: "svc_1",
		Date:      "2025-07-01",
		Time:      "09:00",
		Address:   "12 Main St",
		UserID:    "u_1",
		Status:    model.StatusPending,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	s.Require().NoError(s.storage.SaveBooking(s.ctx, booking))

	retrieved, err := s.storage.GetBooking(s.ctx, "b_1")
	s.Require().NoError(err)
	s.Equal(model.StatusPending, retrieved.Status)

	s.Require().NoError(s.storage.DeleteBooking(s.ctx, "b_1"))
	_, err = s.storage.GetBooking(s.ctx, "b_1")
	s.ErrorIs(err, model.ErrBookingNotFound)
}

func (s *StorageSuite) TestListBookingsByUser() {
	s.Require().NoError(s.storage.SaveBooking(s.ctx, &model.Booking{ID: "b_1", UserID: "u_1"}))
	s.Require().NoError(s.storage.SaveBooking(s.ctx, &model.Booking{ID: "b_2", UserID: "u_2"}))
	s.Require().NoError(s.storage.SaveBooking(s.ctx, &model.Booking{ID: "b_3", UserID: "u_1"}))

	mine, err := s.storage.ListBookingsByUser(s.ctx, "u_1")
	s.Require().NoError(err)
	s.Len(mine, 2)

	all, err := s.storage.ListBookings(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 3)

	// Deleting cleans the user index too
	s.Require().NoError(s.storage.DeleteBooking(s.ctx, "b_1"))
	mine, err = s.storage.ListBookingsByUser(s.ctx, "u_1")
	s.Require().NoError(err)
	s.Len(mine, 1)
}
