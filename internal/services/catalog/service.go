// Package catalog manages the cleaning service offerings
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kwanchai/cleanbook/internal/model"
	"github.com/kwanchai/cleanbook/internal/storage"
)

// Service manages the service catalogue
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a catalog Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{storage: storage, logger: logger}
}

// CreateInput carries the fields for a new offering
type CreateInput struct {
	Name        string
	Description string
	Price       float64
	Image       string
	Duration    string
}

// Create adds an offering to the catalogue
func (s *Service) Create(ctx context.Context, in CreateInput) (*model.Service, error) {
	svc := &model.Service{
		ID:          model.ServiceID(uuid.NewString()),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Duration:    in.Duration,
	}

	if err := s.storage.SaveService(ctx, svc); err != nil {
		return nil, err
	}

	s.logger.Info("service created",
		slog.String("service_id", string(svc.ID)),
		slog.String("name", svc.Name),
	)
	return svc, nil
}

// Get returns a single offering
func (s *Service) Get(ctx context.Context, id model.ServiceID) (*model.Service, error) {
	return s.storage.GetService(ctx, id)
}

// List returns all offerings
func (s *Service) List(ctx context.Context) ([]*model.Service, error) {
	return s.storage.ListServices(ctx)
}

// Patch enumerates the fields an update may change; nil means keep
type Patch struct {
	Name        *string
	Description *string
	Price       *float64
	Image       *string
	Duration    *string
}

// Update applies a patch to an offering
func (s *Service) Update(ctx context.Context, id model.ServiceID, patch Patch) (*model.Service, error) {
	svc, err := s.storage.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *svc
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.Description != nil {
		updated.Description = *patch.Description
	}
	if patch.Price != nil {
		updated.Price = *patch.Price
	}
	if patch.Image != nil {
		updated.Image = *patch.Image
	}
	if patch.Duration != nil {
		updated.Duration = *patch.Duration
	}

	if err := s.storage.SaveService(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an offering
func (s *Service) Delete(ctx context.Context, id model.ServiceID) error {
	if err := s.storage.DeleteService(ctx, id); err != nil {
		return err
	}
	s.logger.Info("service deleted", slog.String("service_id", string(id)))
	return nil
}
