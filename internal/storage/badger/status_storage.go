package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/consilium/internal/interfaces"
	"github.com/ternarybob/consilium/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// StatusStorage implements the StatusStorage interface for Badger
type StatusStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewStatusStorage creates a new StatusStorage instance
func NewStatusStorage(db *BadgerDB, logger arbor.ILogger) interfaces.StatusStorage {
	return &StatusStorage{
		db:     db,
		logger: logger,
	}
}

func (s *StatusStorage) Save(ctx context.Context, check *models.StatusCheck) error {
	if check.ID == "" {
		return fmt.Errorf("status check ID is required")
	}
	if check.Timestamp.IsZero() {
		check.Timestamp = time.Now().UTC()
	}

	if err := s.db.Store().Upsert(check.ID, check); err != nil {
		return fmt.Errorf("failed to save status check: %w", err)
	}
	return nil
}

func (s *StatusStorage) List(ctx context.Context, limit int) ([]*models.StatusCheck, error) {
	query := badgerhold.Where("ID").Ne("").SortBy("Timestamp").Reverse()
	if limit > 0 {
		query = query.Limit(limit)
	}

	var checks []models.StatusCheck
	if err := s.db.Store().Find(&checks, query); err != nil {
		return nil, fmt.Errorf("failed to list status checks: %w", err)
	}

	result := make([]*models.StatusCheck, len(checks))
	for i := range checks {
		result[i] = &checks[i]
	}
	return result, nil
}
