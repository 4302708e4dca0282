package handler

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/kwanchai/cleanbook/internal/client"
	"github.com/kwanchai/cleanbook/internal/model"
	"github.com/kwanchai/cleanbook/internal/web/middleware"
	"github.com/kwanchai/cleanbook/internal/web/templates/pages"
)

// BookingsHandler handles the booking pages for regular visitors
type BookingsHandler struct {
	services *client.ServicesAPI
	bookings *client.BookingsAPI
}

// NewBookingsHandler creates a new BookingsHandler
func NewBookingsHandler(services *client.ServicesAPI, bookings *client.BookingsAPI) *BookingsHandler {
	return &BookingsHandler{
		services: services,
		bookings: bookings,
	}
}

// BookPage renders the booking form for the service named by the
// service query parameter
func (h *BookingsHandler) BookPage(w http.ResponseWriter, r *http.Request) {
	serviceID := r.URL.Query().Get("service")
	if serviceID == "" {
		middleware.SetFlash(w, "error", "Pick a service to book first")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	svc, err := h.services.Get(r.Context(), model.ServiceID(serviceID))
	if err != nil {
		middleware.SetFlash(w, "error", "That service is not available")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	render(w, r, pages.Book(pages.BookData{
		PageData: pageData(r, "Book "+svc.Name),
		Service:  svc,
	}))
}

// Book handles the booking form submission
func (h *BookingsHandler) Book(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	serviceID := r.FormValue("service")
	date := strings.TrimSpace(r.FormValue("date"))
	timeOfDay := strings.TrimSpace(r.FormValue("time"))
	address := strings.TrimSpace(r.FormValue("address"))
	note := strings.TrimSpace(r.FormValue("note"))

	svc, err := h.services.Get(r.Context(), model.ServiceID(serviceID))
	if err != nil {
		middleware.SetFlash(w, "error", "That service is not available")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	renderError := func(msg string) {
		render(w, r, pages.Book(pages.BookData{
			PageData: pageData(r, "Book "+svc.Name),
			Service:  svc,
			Date:     date,
			Time:     timeOfDay,
			Address:  address,
			Note:     note,
			Error:    msg,
		}))
	}

	if date == "" || timeOfDay == "" || address == "" {
		renderError("Date, time, and address are required")
		return
	}

	id := middleware.GetIdentity(r.Context())
	_, err = h.bookings.Create(r.Context(), client.BookingForm{
		ServiceID: svc.ID,
		Date:      date,
		Time:      timeOfDay,
		Address:   address,
		Note:      note,
		UserID:    id.SubjectID,
	})
	if err != nil {
		renderError("Could not place the booking right now. Please try again.")
		return
	}

	middleware.SetFlash(w, "success", "Booking placed for "+svc.Name)
	http.Redirect(w, r, "/my-bookings", http.StatusSeeOther)
}

// MyBookings renders the caller's bookings, newest first
func (h *BookingsHandler) MyBookings(w http.ResponseWriter, r *http.Request) {
	id := middleware.GetIdentity(r.Context())

	data := pages.MyBookingsData{
		PageData: pageData(r, "My Bookings"),
	}

	bookings, err := h.bookings.ListByUser(r.Context(), id.SubjectID)
	if err != nil {
		w.WriteHeader(http.StatusBadGateway)
		render(w, r, pages.Error(pages.ErrorData{
			PageData: pageData(r, "Unavailable"),
			Message:  "Could not load your bookings right now. Please try again.",
		}))
		return
	}

	data.Bookings = h.joinServiceNames(r, bookings)
	render(w, r, pages.MyBookings(data))
}

// CancelBooking removes one of the caller's own bookings
func (h *BookingsHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["id"]
	id := middleware.GetIdentity(r.Context())

	booking, err := h.bookings.Get(r.Context(), model.BookingID(bookingID))
	if err != nil || booking.UserID != id.SubjectID {
		middleware.SetFlash(w, "error", "That booking could not be found")
		http.Redirect(w, r, "/my-bookings", http.StatusSeeOther)
		return
	}

	if err := h.bookings.Delete(r.Context(), booking.ID); err != nil {
		middleware.SetFlash(w, "error", "Could not cancel the booking right now")
	} else {
		middleware.SetFlash(w, "success", "Booking cancelled")
	}
	http.Redirect(w, r, "/my-bookings", http.StatusSeeOther)
}

// joinServiceNames resolves service display names for booking rows.
// A service that no longer exists shows as its raw id.
func (h *BookingsHandler) joinServiceNames(r *http.Request, bookings []*model.Booking) []pages.BookingRow {
	names := make(map[model.ServiceID]string)
	if services, err := h.services.List(r.Context()); err == nil {
		for _, svc := range services {
			names[svc.ID] = svc.Name
		}
	}

	rows := make([]pages.BookingRow, 0, len(bookings))
	for _, b := range bookings {
		name, ok := names[b.ServiceID]
		if !ok {
			name = string(b.ServiceID)
		}
		rows = append(rows, pages.BookingRow{Booking: b, ServiceName: name})
	}
	return rows
}
