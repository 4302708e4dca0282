package memory

import (
	"context"
	"sync"

	"github.com/kwanchai/cleanbook/internal/model"
	"github.com/kwanchai/cleanbook/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	accounts      map[model.AccountID]*model.Account
	usernameIndex map[string]model.AccountID
	services      map[model.ServiceID]*model.Service
	serviceOrder  []model.ServiceID
	bookings      map[model.BookingID]*model.Booking
	bookingOrder  []model.BookingID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		accounts:      make(map[model.AccountID]*model.Account),
		usernameIndex: make(map[string]model.AccountID),
		services:      make(map[model.ServiceID]*model.Service),
		bookings:      make(map[model.BookingID]*model.Booking),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.ID] = account
	s.usernameIndex[account.Username] = account.ID
	return nil
}

func (s *Storage) GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return account, nil
}

func (s *Storage) GetAccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	account, ok := s.accounts[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return account, nil
}

// Service operations

func (s *Storage) SaveService(ctx context.Context, service *model.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.services[service.ID]; !exists {
		s.serviceOrder = append(s.serviceOrder, service.ID)
	}
	s.services[service.ID] = service
	return nil
}

func (s *Storage) GetService(ctx context.Context, id model.ServiceID) (*model.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	service, ok := s.services[id]
	if !ok {
		return nil, model.ErrServiceNotFound
	}
	return service, nil
}

func (s *Storage) ListServices(ctx context.Context) ([]*model.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	services := make([]*model.Service, 0, len(s.services))
	for _, id := range s.serviceOrder {
		if service, ok := s.services[id]; ok {
			services = append(services, service)
		}
	}
	return services, nil
}

func (s *Storage) DeleteService(ctx context.Context, id model.ServiceID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.services[id]; !ok {
		return model.ErrServiceNotFound
	}
	delete(s.services, id)
	for i, sid := range s.serviceOrder {
		if sid == id {
			s.serviceOrder = append(s.serviceOrder[:i], s.serviceOrder[i+1:]...)
			break
		}
	}
	return nil
}

// Booking operations

func (s *Storage) SaveBooking(ctx context.Context, booking *model.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.bookings[booking.ID]; !exists {
		s.bookingOrder = append(s.bookingOrder, booking.ID)
	}
	s.bookings[booking.ID] = booking
	return nil
}

func (s *Storage) GetBooking(ctx context.Context, id model.BookingID) (*model.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	booking, ok := s.bookings[id]
	if !ok {
		return nil, model.ErrBookingNotFound
	}
	return booking, nil
}

func (s *Storage) ListBookings(ctx context.Context) ([]*model.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bookings := make([]*model.Booking, 0, len(s.bookings))
	for _, id := range s.bookingOrder {
		if booking, ok := s.bookings[id]; ok {
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}

func (s *Storage) ListBookingsByUser(ctx context.Context, userID string) ([]*model.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var bookings []*model.Booking
	for _, id := range s.bookingOrder {
		if booking, ok := s.bookings[id]; ok && booking.UserID == userID {
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}

func (s *Storage) DeleteBooking(ctx context.Context, id model.BookingID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[id]; !ok {
		return model.ErrBookingNotFound
	}
	delete(s.bookings, id)
	for i, bid := range s.bookingOrder {
		if bid == id {
			s.bookingOrder = append(s.bookingOrder[:i], s.bookingOrder[i+1:]...)
			break
		}
	}
	return nil
}
