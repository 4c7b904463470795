package badger

import (
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/consilium/internal/common"
	"github.com/ternarybob/consilium/internal/interfaces"
)

// Manager implements the StorageManager interface for Badger
type Manager struct {
	db             *BadgerDB
	recommendation interfaces.RecommendationStorage
	news           interfaces.NewsStorage
	status         interfaces.StatusStorage
	logger         arbor.ILogger
}

// NewManager creates a new Badger storage manager
func NewManager(logger arbor.ILogger, config *common.BadgerConfig) (interfaces.StorageManager, error) {
	db, err := NewBadgerDB(logger, config)
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		db:             db,
		recommendation: NewRecommendationStorage(db, logger),
		news:           NewNewsStorage(db, logger),
		status:         NewStatusStorage(db, logger),
		logger:         logger,
	}

	logger.Info().Msg("Badger storage manager initialized")

	return manager, nil
}

// RecommendationStorage returns the Recommendation storage interface
func (m *Manager) RecommendationStorage() interfaces.RecommendationStorage {
	return m.recommendation
}

// NewsStorage returns the News storage interface
func (m *Manager) NewsStorage() interfaces.NewsStorage {
	return m.news
}

// StatusStorage returns the Status storage interface
func (m *Manager) StatusStorage() interfaces.StatusStorage {
	return m.status
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
