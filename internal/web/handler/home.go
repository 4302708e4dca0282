package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kwanchai/cleanbook/internal/client"
	"github.com/kwanchai/cleanbook/internal/model"
	"github.com/kwanchai/cleanbook/internal/web/templates/layout"
	"github.com/kwanchai/cleanbook/internal/web/templates/pages"
)

// HomeHandler handles the catalogue pages
type HomeHandler struct {
	services *client.ServicesAPI
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(services *client.ServicesAPI) *HomeHandler {
	return &HomeHandler{
		services: services,
	}
}

// Home renders the service catalogue, filtered by the q query parameter
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	data := pages.HomeData{
		PageData: pageData(r, "Home"),
		Query:    query,
	}

	services, err := h.services.List(r.Context())
	if err != nil {
		data.Flash = &layout.FlashMessage{Type: "error", Message: "Could not load services right now"}
	} else {
		data.Services = model.FilterServices(services, query)
	}

	render(w, r, pages.Home(data))
}

// ServiceDetail renders a single service
func (h *HomeHandler) ServiceDetail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	svc, err := h.services.Get(r.Context(), model.ServiceID(id))
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			w.WriteHeader(http.StatusNotFound)
			render(w, r, pages.Error(pages.ErrorData{
				PageData: pageData(r, "Not Found"),
				Message:  "That service does not exist.",
			}))
			return
		}
		w.WriteHeader(http.StatusBadGateway)
		render(w, r, pages.Error(pages.ErrorData{
			PageData: pageData(r, "Unavailable"),
			Message:  "Could not load the service right now. Please try again.",
		}))
		return
	}

	render(w, r, pages.ServiceDetail(pages.ServiceDetailData{
		PageData: pageData(r, svc.Name),
		Service:  svc,
	}))
}
