package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/kwanchai/cleanbook/internal/api/middleware"
	"github.com/kwanchai/cleanbook/internal/api/request"
	"github.com/kwanchai/cleanbook/internal/api/response"
	"github.com/kwanchai/cleanbook/internal/model"
	"github.com/kwanchai/cleanbook/internal/services/booking"
)

// BookingsHandler handles booking endpoints
type BookingsHandler struct {
	bookingService *booking.Service
}

// NewBookingsHandler creates a new bookings handler
func NewBookingsHandler(bookingService *booking.Service) *BookingsHandler {
	return &BookingsHandler{
		bookingService: bookingService,
	}
}

// List handles GET /bookings
func (h *BookingsHandler) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.BookingsFromModel(bookings))
}

// ListByUser handles GET /bookings/user/{userId}
func (h *BookingsHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	bookings, err := h.bookingService.ListByUser(r.Context(), userID)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.BookingsFromModel(bookings))
}

// Get handles GET /bookings/{id}
func (h *BookingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	b, err := h.bookingService.Get(r.Context(), model.BookingID(id))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.BookingFromModel(b))
}

// Create handles POST /bookings
func (h *BookingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.BookingCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.ServiceID == "" {
		WriteError(w, NewInvalidRequestError("serviceId is required"))
		return
	}
	if req.Date == "" {
		WriteError(w, NewInvalidRequestError("date is required"))
		return
	}
	if req.Time == "" {
		WriteError(w, NewInvalidRequestError("time is required"))
		return
	}

	in := booking.CreateInput{
		ServiceID: model.ServiceID(req.ServiceID),
		Date:      req.Date,
		Time:      req.Time,
		Address:   req.Address,
		Note:      req.Note,
		UserID:    req.UserID,
	}

	// The caller's identity wins over any userId in the payload
	if acct := middleware.GetAccount(r.Context()); acct != nil {
		in.UserID = string(acct.ID)
	}

	if req.Status != "" {
		status, err := model.ParseBookingStatus(req.Status)
		if err != nil {
			WriteError(w, err)
			return
		}
		in.Status = status
	}
	if req.CreatedAt != "" {
		createdAt, err := time.Parse(time.RFC3339, req.CreatedAt)
		if err != nil {
			WriteError(w, NewInvalidRequestError("createdAt must be RFC 3339"))
			return
		}
		in.CreatedAt = createdAt
	}

	b, err := h.bookingService.Create(r.Context(), in)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.BookingFromModel(b))
}

// Update handles PUT /bookings/{id}
func (h *BookingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req request.BookingUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	patch := booking.Patch{
		Date:    req.Date,
		Time:    req.Time,
		Address: req.Address,
		Note:    req.Note,
	}
	if req.Status != nil {
		status, err := model.ParseBookingStatus(*req.Status)
		if err != nil {
			WriteError(w, err)
			return
		}
		patch.Status = &status
	}

	b, err := h.bookingService.Update(r.Context(), model.BookingID(id), patch)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.BookingFromModel(b))
}

// Delete handles DELETE /bookings/{id}
func (h *BookingsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.bookingService.Delete(r.Context(), model.BookingID(id)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
