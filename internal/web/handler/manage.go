package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/kwanchai/cleanbook/internal/client"
	"github.com/kwanchai/cleanbook/internal/model"
	"github.com/kwanchai/cleanbook/internal/web/middleware"
	"github.com/kwanchai/cleanbook/internal/web/templates/pages"
)

const maxUploadSize = 10 << 20

// ManageHandler handles the author administration pages
type ManageHandler struct {
	services *client.ServicesAPI
	bookings *client.BookingsAPI
}

// NewManageHandler creates a new ManageHandler
func NewManageHandler(services *client.ServicesAPI, bookings *client.BookingsAPI) *ManageHandler {
	return &ManageHandler{
		services: services,
		bookings: bookings,
	}
}

// ManageServices renders the catalogue administration screen
func (h *ManageHandler) ManageServices(w http.ResponseWriter, r *http.Request) {
	data := pages.ManageServicesData{
		PageData: pageData(r, "Manage Services"),
	}

	services, err := h.services.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusBadGateway)
		render(w, r, pages.Error(pages.ErrorData{
			PageData: pageData(r, "Unavailable"),
			Message:  "Could not load services right now. Please try again.",
		}))
		return
	}

	data.Services = services
	render(w, r, pages.ManageServices(data))
}

// AddServicePage renders the add-service form
func (h *ManageHandler) AddServicePage(w http.ResponseWriter, r *http.Request) {
	render(w, r, pages.ServiceForm(pages.ServiceFormData{
		PageData: pageData(r, "Add Service"),
	}))
}

// AddService handles the add-service form submission
func (h *ManageHandler) AddService(w http.ResponseWriter, r *http.Request) {
	form, errMsg := h.parseServiceForm(r)
	if errMsg != "" {
		render(w, r, pages.ServiceForm(pages.ServiceFormData{
			PageData: pageData(r, "Add Service"),
			Error:    errMsg,
		}))
		return
	}

	svc, err := h.services.Create(r.Context(), *form)
	if err != nil {
		render(w, r, pages.ServiceForm(pages.ServiceFormData{
			PageData: pageData(r, "Add Service"),
			Error:    "Could not save the service right now. Please try again.",
		}))
		return
	}

	middleware.SetFlash(w, "success", "Service created: "+svc.Name)
	http.Redirect(w, r, "/manage-services", http.StatusSeeOther)
}

// EditServicePage renders the edit form for a service
func (h *ManageHandler) EditServicePage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	svc, err := h.services.Get(r.Context(), model.ServiceID(id))
	if err != nil {
		middleware.SetFlash(w, "error", "That service could not be found")
		http.Redirect(w, r, "/manage-services", http.StatusSeeOther)
		return
	}

	render(w, r, pages.ServiceForm(pages.ServiceFormData{
		PageData: pageData(r, "Edit Service"),
		Service:  svc,
	}))
}

// EditService handles the edit-service form submission
func (h *ManageHandler) EditService(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	svc, err := h.services.Get(r.Context(), model.ServiceID(id))
	if err != nil {
		middleware.SetFlash(w, "error", "That service could not be found")
		http.Redirect(w, r, "/manage-services", http.StatusSeeOther)
		return
	}

	form, errMsg := h.parseServiceForm(r)
	if errMsg != "" {
		render(w, r, pages.ServiceForm(pages.ServiceFormData{
			PageData: pageData(r, "Edit Service"),
			Service:  svc,
			Error:    errMsg,
		}))
		return
	}

	patch := client.ServicePatch{
		Name:        &form.Name,
		Description: &form.Description,
		Price:       &form.Price,
		Duration:    &form.Duration,
		File:        form.File,
	}

	if _, err := h.services.Update(r.Context(), svc.ID, patch); err != nil {
		render(w, r, pages.ServiceForm(pages.ServiceFormData{
			PageData: pageData(r, "Edit Service"),
			Service:  svc,
			Error:    "Could not save the service right now. Please try again.",
		}))
		return
	}

	middleware.SetFlash(w, "success", "Service updated")
	http.Redirect(w, r, "/manage-services", http.StatusSeeOther)
}

// DeleteService removes a service
func (h *ManageHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.services.Delete(r.Context(), model.ServiceID(id)); err != nil {
		middleware.SetFlash(w, "error", "Could not delete the service right now")
	} else {
		middleware.SetFlash(w, "success", "Service deleted")
	}
	http.Redirect(w, r, "/manage-services", http.StatusSeeOther)
}

// ManageBookings renders the booking administration screen
func (h *ManageHandler) ManageBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusBadGateway)
		render(w, r, pages.Error(pages.ErrorData{
			PageData: pageData(r, "Unavailable"),
			Message:  "Could not load bookings right now. Please try again.",
		}))
		return
	}

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

	render(w, r, pages.ManageBookings(pages.ManageBookingsData{
		PageData: pageData(r, "Manage Bookings"),
		Bookings: rows,
	}))
}

// UpdateBookingStatus changes a booking's status
func (h *ManageHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/manage-bookings", http.StatusSeeOther)
		return
	}

	status, err := model.ParseBookingStatus(r.FormValue("status"))
	if err != nil {
		middleware.SetFlash(w, "error", "Unknown booking status")
		http.Redirect(w, r, "/manage-bookings", http.StatusSeeOther)
		return
	}

	patch := client.BookingPatch{Status: &status}
	if _, err := h.bookings.Update(r.Context(), model.BookingID(id), patch); err != nil {
		middleware.SetFlash(w, "error", "Could not update the booking right now")
	} else {
		middleware.SetFlash(w, "success", "Booking updated")
	}
	http.Redirect(w, r, "/manage-bookings", http.StatusSeeOther)
}

// DeleteBooking removes a booking
func (h *ManageHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.bookings.Delete(r.Context(), model.BookingID(id)); err != nil {
		middleware.SetFlash(w, "error", "Could not delete the booking right now")
	} else {
		middleware.SetFlash(w, "success", "Booking deleted")
	}
	http.Redirect(w, r, "/manage-bookings", http.StatusSeeOther)
}

// parseServiceForm reads the multipart add/edit service form. The
// returned error string is suitable for inline display.
func (h *ManageHandler) parseServiceForm(r *http.Request) (*client.ServiceForm, string) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, "Invalid form data"
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		return nil, "Name is required"
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("price")), 64)
	if err != nil || price < 0 {
		return nil, "Price must be a non-negative number"
	}

	form := &client.ServiceForm{
		Name:        name,
		Description: strings.TrimSpace(r.FormValue("details")),
		Price:       price,
		Duration:    strings.TrimSpace(r.FormValue("duration")),
	}

	file, header, err := r.FormFile("file")
	if err == nil {
		form.File = &client.FileUpload{
			Name:    header.Filename,
			Content: file,
		}
	} else if err != http.ErrMissingFile {
		return nil, "Invalid file upload"
	}

	return form, ""
}
