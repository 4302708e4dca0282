package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/kwanchai/cleanbook/internal/api/request"
	"github.com/kwanchai/cleanbook/internal/api/response"
	"github.com/kwanchai/cleanbook/internal/model"
	"github.com/kwanchai/cleanbook/internal/services/catalog"
)

const maxUploadSize = 10 << 20

// ServicesHandler handles service catalogue endpoints
type ServicesHandler struct {
	catalogService *catalog.Service
}

// NewServicesHandler creates a new services handler
func NewServicesHandler(catalogService *catalog.Service) *ServicesHandler {
	return &ServicesHandler{
		catalogService: catalogService,
	}
}

// List handles GET /services
func (h *ServicesHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.ServicesFromModel(services))
}

// Get handles GET /services/{id}
func (h *ServicesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	svc, err := h.catalogService.Get(r.Context(), model.ServiceID(id))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.ServiceFromModel(svc))
}

// Create handles POST /services, accepting JSON or multipart form
func (h *ServicesHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := decodeServiceRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if req.Name == nil || *req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	in := catalog.CreateInput{Name: *req.Name}
	if req.Details != nil {
		in.Description = *req.Details
	}
	if req.Price != nil {
		in.Price = *req.Price
	}
	if req.CoverImageURL != nil {
		in.Image = *req.CoverImageURL
	}
	if req.Duration != nil {
		in.Duration = *req.Duration
	}

	svc, err := h.catalogService.Create(r.Context(), in)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.ServiceFromModel(svc))
}

// Update handles PUT /services/{id}, accepting JSON or multipart form
func (h *ServicesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	req, err := decodeServiceRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	patch := catalog.Patch{
		Name:        req.Name,
		Description: req.Details,
		Price:       req.Price,
		Image:       req.CoverImageURL,
		Duration:    req.Duration,
	}

	svc, err := h.catalogService.Update(r.Context(), model.ServiceID(id), patch)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.ServiceFromModel(svc))
}

// Delete handles DELETE /services/{id}
func (h *ServicesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.catalogService.Delete(r.Context(), model.ServiceID(id)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// decodeServiceRequest parses a service payload from a JSON body or a
// multipart form. An uploaded file becomes a data URL in CoverImageURL.
func decodeServiceRequest(r *http.Request) (*request.ServiceRequest, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, NewInvalidRequestError("invalid content type")
	}

	if mediaType != "multipart/form-data" {
		var req request.ServiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, NewInvalidRequestError("invalid request body")
		}
		return &req, nil
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, NewInvalidRequestError("invalid multipart form")
	}

	var req request.ServiceRequest
	if v, ok := formValue(r, "name"); ok {
		req.Name = &v
	}
	if v, ok := formValue(r, "details"); ok {
		req.Details = &v
	}
	if v, ok := formValue(r, "price"); ok {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, NewInvalidRequestError("price must be a number")
		}
		req.Price = &price
	}
	if v, ok := formValue(r, "coverImageUrl"); ok {
		req.CoverImageURL = &v
	}
	if v, ok := formValue(r, "duration"); ok {
		req.Duration = &v
	}

	file, header, err := r.FormFile("file")
	if err == nil {
		defer func() { _ = file.Close() }()
		url, err := fileDataURL(file, header)
		if err != nil {
			return nil, err
		}
		req.CoverImageURL = &url
	} else if err != http.ErrMissingFile {
		return nil, NewInvalidRequestError("invalid file upload")
	}

	return &req, nil
}

func formValue(r *http.Request, key string) (string, bool) {
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// fileDataURL inlines an uploaded image as a base64 data URL
func fileDataURL(file multipart.File, header *multipart.FileHeader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		return "", NewInvalidRequestError("could not read uploaded file")
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", NewInvalidRequestError("uploaded file must be an image")
	}

	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)), nil
}
