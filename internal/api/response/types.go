package response

import (
	"time"

	"github.com/kwanchai/cleanbook/internal/model"
	"github.com/kwanchai/cleanbook/internal/services/account"
)

// LoginResponse is the response for a successful login
type LoginResponse struct {
	SubjectID   string `json:"subjectId"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	AccessToken string `json:"accessToken"`
}

// LoginResponseFromToken builds a LoginResponse from an issued token
func LoginResponseFromToken(t *account.Token) LoginResponse {
	return LoginResponse{
		SubjectID:   string(t.AccountID),
		Username:    t.Account.Username,
		Role:        string(t.Account.Role),
		AccessToken: t.Value,
	}
}

// Service represents a service in API responses
type Service struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Details       string  `json:"details"`
	Price         float64 `json:"price"`
	CoverImageURL string  `json:"coverImageUrl,omitempty"`
	Duration      string  `json:"duration,omitempty"`
}

// ServiceFromModel converts a model.Service to a response Service
func ServiceFromModel(s *model.Service) Service {
	return Service{
		ID:            string(s.ID),
		Name:          s.Name,
		Details:       s.Description,
		Price:         s.Price,
		CoverImageURL: s.Image,
		Duration:      s.Duration,
	}
}

// ServicesFromModel converts a slice of services
func ServicesFromModel(services []*model.Service) []Service {
	out := make([]Service, 0, len(services))
	for _, s := range services {
		out = append(out, ServiceFromModel(s))
	}
	return out
}

// Booking represents a booking in API responses
type Booking struct {
	ID        string `json:"id"`
	ServiceID string `json:"serviceId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Address   string `json:"address"`
	Note      string `json:"note,omitempty"`
	UserID    string `json:"userId,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// BookingFromModel converts a model.Booking to a response Booking
func BookingFromModel(b *model.Booking) Booking {
	return Booking{
		ID:        string(b.ID),
		ServiceID: string(b.ServiceID),
		Date:      b.Date,
		Time:      b.Time,
		Address:   b.Address,
		Note:      b.Note,
		UserID:    b.UserID,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// BookingsFromModel converts a slice of bookings
func BookingsFromModel(bookings []*model.Booking) []Booking {
	out := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingFromModel(b))
	}
	return out
}
