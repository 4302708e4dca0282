package request

// RegisterRequest is the request body for registering an account
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ServiceRequest is the JSON body for creating or updating a service.
// Pointer fields on update distinguish "absent" from "set to zero".
type ServiceRequest struct {
	Name          *string  `json:"name,omitempty"`
	Details       *string  `json:"details,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	CoverImageURL *string  `json:"coverImageUrl,omitempty"`
	Duration      *string  `json:"duration,omitempty"`
}

// BookingCreateRequest is the request body for creating a booking
type BookingCreateRequest struct {
	ServiceID string `json:"serviceId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Address   string `json:"address"`
	Note      string `json:"note,omitempty"`
	UserID    string `json:"userId,omitempty"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// BookingUpdateRequest is the request body for updating a booking
type BookingUpdateRequest struct {
	Date    *string `json:"date,omitempty"`
	Time    *string `json:"time,omitempty"`
	Address *string `json:"address,omitempty"`
	Note    *string `json:"note,omitempty"`
	Status  *string `json:"status,omitempty"`
}
