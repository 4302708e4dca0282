package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kwanchai/cleanbook/internal/model"
	"github.com/kwanchai/cleanbook/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{client: client, cfg: cfg}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{client: client, cfg: cfg}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}

	// Pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, accountKey(account.ID), data, 0)
	pipe.Set(ctx, usernameIndexKey(account.Username), string(account.ID), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error) {
	data, err := s.client.Get(ctx, accountKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}

	var account model.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *Storage) GetAccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	id, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}
	return s.GetAccount(ctx, model.AccountID(id))
}

// Service operations

func (s *Storage) SaveService(ctx context.Context, service *model.Service) error {
	data, err := json.Marshal(service)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, serviceKey(service.ID), data, 0)
	pipe.SAdd(ctx, servicesIndexKey(), string(service.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetService(ctx context.Context, id model.ServiceID) (*model.Service, error) {
	data, err := s.client.Get(ctx, serviceKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrServiceNotFound
		}
		return nil, err
	}

	var service model.Service
	if err := json.Unmarshal(data, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (s *Storage) ListServices(ctx context.Context) ([]*model.Service, error) {
	ids, err := s.client.SMembers(ctx, servicesIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	services := make([]*model.Service, 0, len(ids))
	for _, id := range ids {
		service, err := s.GetService(ctx, model.ServiceID(id))
		if err != nil {
			if errors.Is(err, model.ErrServiceNotFound) {
				// Stale index entry
				continue
			}
			return nil, err
		}
		services = append(services, service)
	}
	return services, nil
}

func (s *Storage) DeleteService(ctx context.Context, id model.ServiceID) error {
	if _, err := s.GetService(ctx, id); err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, serviceKey(id))
	pipe.SRem(ctx, servicesIndexKey(), string(id))
	_, err := pipe.Exec(ctx)
	return err
}

// Booking operations

func (s *Storage) SaveBooking(ctx context.Context, booking *model.Booking) error {
	data, err := json.Marshal(booking)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, bookingKey(booking.ID), data, 0)
	pipe.SAdd(ctx, bookingsIndexKey(), string(booking.ID))
	if booking.UserID != "" {
		pipe.SAdd(ctx, userBookingsIndexKey(booking.UserID), string(booking.ID))
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetBooking(ctx context.Context, id model.BookingID) (*model.Booking, error) {
	data, err := s.client.Get(ctx, bookingKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrBookingNotFound
		}
		return nil, err
	}

	var booking model.Booking
	if err := json.Unmarshal(data, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *Storage) ListBookings(ctx context.Context) ([]*model.Booking, error) {
	return s.listBookingSet(ctx, bookingsIndexKey())
}

func (s *Storage) ListBookingsByUser(ctx context.Context, userID string) ([]*model.Booking, error) {
	return s.listBookingSet(ctx, userBookingsIndexKey(userID))
}

func (s *Storage) listBookingSet(ctx context.Context, indexKey string) ([]*model.Booking, error) {
	ids, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}

	bookings := make([]*model.Booking, 0, len(ids))
	for _, id := range ids {
		booking, err := s.GetBooking(ctx, model.BookingID(id))
		if err != nil {
			if errors.Is(err, model.ErrBookingNotFound) {
				continue
			}
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func (s *Storage) DeleteBooking(ctx context.Context, id model.BookingID) error {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, bookingKey(id))
	pipe.SRem(ctx, bookingsIndexKey(), string(id))
	if booking.UserID != "" {
		pipe.SRem(ctx, userBookingsIndexKey(booking.UserID), string(id))
	}
	_, err = pipe.Exec(ctx)
	return err
}
