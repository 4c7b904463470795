package status

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/consilium/internal/common"
	"github.com/ternarybob/consilium/internal/interfaces"
	"github.com/ternarybob/consilium/internal/models"
)

// Service records and lists client status checks
type Service struct {
	storage  interfaces.StatusStorage
	validate *validator.Validate
}

func NewService(storage interfaces.StatusStorage) *Service {
	return &Service{
		storage:  storage,
		validate: validator.New(),
	}
}

// Create validates and persists a status check
func (s *Service) Create(ctx context.Context, input models.StatusCheckCreate) (*models.StatusCheck, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid status check: %w", err)
	}

	check := &models.StatusCheck{
		ID:         common.NewStatusID(),
		ClientName: input.ClientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.storage.Save(ctx, check); err != nil {
		return nil, err
	}
	return check, nil
}

// List returns status checks newest first
func (s *Service) List(ctx context.Context, limit int) ([]*models.StatusCheck, error) {
	checks, err := s.storage.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	if checks == nil {
		checks = []*models.StatusCheck{}
	}
	return checks, nil
}
