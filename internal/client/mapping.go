package client

import (
	"encoding/json"
	"time"

	"github.com/kwanchai/cleanbook/internal/model"
)

// wireID tolerates the identifier shapes the API has emitted over time:
// string, number, "id", "_id", or "subjectId". Normalisation happens here
// once; nothing past this file branches on the variants.
type wireID string

// UnmarshalJSON accepts either a JSON string or number
func (w *wireID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*w = wireID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*w = wireID(n.String())
		return nil
	}
	// Unknown shape reads as absent rather than failing the whole payload
	*w = ""
	return nil
}

// canonicalID picks the first non-empty identifier
func canonicalID(ids ...wireID) string {
	for _, id := range ids {
		if id != "" {
			return string(id)
		}
	}
	return ""
}

// serviceDTO is the wire form of a service
type serviceDTO struct {
	ID            wireID  `json:"id,omitempty"`
	LegacyID      wireID  `json:"_id,omitempty"`
	Name          string  `json:"name"`
	Details       string  `json:"details"`
	Price         float64 `json:"price"`
	CoverImageURL string  `json:"coverImageUrl,omitempty"`
	Duration      string  `json:"duration,omitempty"`
}

func serviceFromDTO(dto serviceDTO) *model.Service {
	return &model.Service{
		ID:          model.ServiceID(canonicalID(dto.LegacyID, dto.ID)),
		Name:        dto.Name,
		Description: dto.Details,
		Price:       dto.Price,
		Image:       dto.CoverImageURL,
		Duration:    dto.Duration,
	}
}

// bookingDTO is the wire form of a booking
type bookingDTO struct {
	ID        wireID `json:"id,omitempty"`
	LegacyID  wireID `json:"_id,omitempty"`
	ServiceID wireID `json:"serviceId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Address   string `json:"address"`
	Note      string `json:"note,omitempty"`
	UserID    wireID `json:"userId,omitempty"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

func bookingFromDTO(dto bookingDTO) *model.Booking {
	createdAt, _ := time.Parse(time.RFC3339, dto.CreatedAt)
	return &model.Booking{
		ID:        model.BookingID(canonicalID(dto.LegacyID, dto.ID)),
		ServiceID: model.ServiceID(string(dto.ServiceID)),
		Date:      dto.Date,
		Time:      dto.Time,
		Address:   dto.Address,
		Note:      dto.Note,
		UserID:    string(dto.UserID),
		Status:    model.BookingStatus(dto.Status),
		CreatedAt: createdAt,
	}
}

// userDTO is the wire form of a login response
type userDTO struct {
	SubjectID   wireID `json:"subjectId,omitempty"`
	ID          wireID `json:"id,omitempty"`
	LegacyID    wireID `json:"_id,omitempty"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	AccessToken string `json:"accessToken,omitempty"`
}

func identityFromDTO(dto userDTO) *model.Identity {
	return &model.Identity{
		SubjectID:   canonicalID(dto.SubjectID, dto.LegacyID, dto.ID),
		DisplayName: dto.Username,
		Role:        model.Role(dto.Role),
		Credential:  dto.AccessToken,
	}
}
