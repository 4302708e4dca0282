package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kwanchai/cleanbook/internal/model"
)

// FileUpload is an optional file attached to a service create or update
type FileUpload struct {
	Name    string
	Content io.Reader
}

// ServiceForm carries the fields for creating a service
type ServiceForm struct {
	Name        string
	Description string
	Price       float64
	Image       string // cover image URL; ignored when File is set
	Duration    string
	File        *FileUpload
}

// ServicePatch enumerates exactly the fields an update may change.
// Nil fields are left untouched on the server.
type ServicePatch struct {
	Name        *string
	Description *string
	Price       *float64
	Image       *string
	Duration    *string
	File        *FileUpload
}

// ServicesAPI talks to the service catalogue endpoints
type ServicesAPI struct {
	c *Client
}

// NewServicesAPI creates a ServicesAPI
func NewServicesAPI(c *Client) *ServicesAPI {
	return &ServicesAPI{c: c}
}

// List returns all services
func (s *ServicesAPI) List(ctx context.Context) ([]*model.Service, error) {
	var dtos []serviceDTO
	if err := s.c.get(ctx, "/services", &dtos); err != nil {
		return nil, err
	}
	services := make([]*model.Service, 0, len(dtos))
	for _, dto := range dtos {
		services = append(services, serviceFromDTO(dto))
	}
	return services, nil
}

// Get returns a single service
func (s *ServicesAPI) Get(ctx context.Context, id model.ServiceID) (*model.Service, error) {
	var dto serviceDTO
	if err := s.c.get(ctx, "/services/"+url.PathEscape(string(id)), &dto); err != nil {
		return nil, err
	}
	return serviceFromDTO(dto), nil
}

// Create creates a service. A form with a file goes out as multipart,
// one without as JSON.
func (s *ServicesAPI) Create(ctx context.Context, form ServiceForm) (*model.Service, error) {
	var dto serviceDTO
	var err error
	if form.File != nil {
		err = s.sendMultipart(ctx, http.MethodPost, "/services", form, &dto)
	} else {
		err = s.c.post(ctx, "/services", serviceDTO{
			Name:          form.Name,
			Details:       form.Description,
			Price:         form.Price,
			CoverImageURL: form.Image,
			Duration:      form.Duration,
		}, &dto)
	}
	if err != nil {
		return nil, err
	}
	return serviceFromDTO(dto), nil
}

// Update applies a patch to a service
func (s *ServicesAPI) Update(ctx context.Context, id model.ServiceID, patch ServicePatch) (*model.Service, error) {
	path := "/services/" + url.PathEscape(string(id))

	var dto serviceDTO
	var err error
	if patch.File != nil {
		err = s.sendPatchMultipart(ctx, path, patch, &dto)
	} else {
		err = s.c.put(ctx, path, patchBody(patch), &dto)
	}
	if err != nil {
		return nil, err
	}
	return serviceFromDTO(dto), nil
}

// Delete removes a service
func (s *ServicesAPI) Delete(ctx context.Context, id model.ServiceID) error {
	return s.c.delete(ctx, "/services/"+url.PathEscape(string(id)))
}

// patchBody builds the JSON payload with exactly the set fields
func patchBody(patch ServicePatch) map[string]any {
	body := make(map[string]any)
	if patch.Name != nil {
		body["name"] = *patch.Name
	}
	if patch.Description != nil {
		body["details"] = *patch.Description
	}
	if patch.Price != nil {
		body["price"] = *patch.Price
	}
	if patch.Image != nil {
		body["coverImageUrl"] = *patch.Image
	}
	if patch.Duration != nil {
		body["duration"] = *patch.Duration
	}
	return body
}

func (s *ServicesAPI) sendMultipart(ctx context.Context, method, path string, form ServiceForm, result any) error {
	fields := map[string]string{
		"name":     form.Name,
		"details":  form.Description,
		"price":    strconv.FormatFloat(form.Price, 'f', -1, 64),
		"duration": form.Duration,
	}
	return s.multipart(ctx, method, path, fields, form.File, result)
}

func (s *ServicesAPI) sendPatchMultipart(ctx context.Context, path string, patch ServicePatch, result any) error {
	fields := make(map[string]string)
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Description != nil {
		fields["details"] = *patch.Description
	}
	if patch.Price != nil {
		fields["price"] = strconv.FormatFloat(*patch.Price, 'f', -1, 64)
	}
	if patch.Duration != nil {
		fields["duration"] = *patch.Duration
	}
	return s.multipart(ctx, http.MethodPut, path, fields, patch.File, result)
}

func (s *ServicesAPI) multipart(ctx context.Context, method, path string, fields map[string]string, file *FileUpload, result any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write form field: %w", err)
		}
	}

	if file != nil {
		part, err := mw.CreateFormFile("file", file.Name)
		if err != nil {
			return fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return fmt.Errorf("failed to copy file content: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return err
	}

	return s.c.send(ctx, method, path, &buf, mw.FormDataContentType(), result)
}
