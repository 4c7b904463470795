package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/consilium/internal/common"
	"github.com/ternarybob/consilium/internal/handlers"
	"github.com/ternarybob/consilium/internal/interfaces"
	"github.com/ternarybob/consilium/internal/services/advisor"
	"github.com/ternarybob/consilium/internal/services/content"
	"github.com/ternarybob/consilium/internal/services/investments"
	"github.com/ternarybob/consilium/internal/services/news"
	"github.com/ternarybob/consilium/internal/services/status"
	badgerstorage "github.com/ternarybob/consilium/internal/storage/badger"
)

// App holds all application components and dependencies
type App struct {
	Config         *common.Config
	Logger         arbor.ILogger
	StorageManager interfaces.StorageManager

	// Domain services
	NewsService        *news.Service
	InvestmentsService *investments.Service
	AdvisorService     *advisor.Service
	ContentService     *content.Service
	StatusService      *status.Service
	Scheduler          *content.Scheduler

	// HTTP handlers
	APIHandler        *handlers.APIHandler
	NewsHandler       *handlers.NewsHandler
	InvestmentHandler *handlers.InvestmentHandler
	StatusHandler     *handlers.StatusHandler
	ContentHandler    *handlers.ContentHandler
}

// New wires storage, services and handlers from config. The returned
// App owns the storage connection; call Shutdown to release it.
func New(ctx context.Context, config *common.Config, logger arbor.ILogger) (*App, error) {
	storageManager, err := badgerstorage.NewManager(logger, &config.Storage.Badger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	app := &App{
		Config:         config,
		Logger:         logger,
		StorageManager: storageManager,
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	app.NewsService = news.NewService(storageManager.NewsStorage(), config.Advisor.MaxListLimit)
	app.InvestmentsService = investments.NewService(storageManager.RecommendationStorage(), config.Advisor.MaxListLimit)
	app.AdvisorService = advisor.NewService(storageManager.RecommendationStorage(), advisor.NewGenerator(rng))
	app.ContentService = content.NewService(storageManager, rng, config.Content.PacksDir)
	app.StatusService = status.NewService(storageManager.StatusStorage())
	app.Scheduler = content.NewScheduler(app.ContentService, config.Content)

	app.APIHandler = handlers.NewAPIHandler(storageManager)
	app.NewsHandler = handlers.NewNewsHandler(app.NewsService)
	app.InvestmentHandler = handlers.NewInvestmentHandler(
		app.InvestmentsService, app.AdvisorService,
		config.Advisor.AskRateLimit, config.Advisor.AskRateBurst)
	app.StatusHandler = handlers.NewStatusHandler(app.StatusService)
	app.ContentHandler = handlers.NewContentHandler(app.ContentService)

	if config.Content.SeedOnStartup {
		result, err := app.ContentService.SeedIfEmpty(ctx)
		if err != nil {
			storageManager.Close()
			return nil, fmt.Errorf("failed to seed content: %w", err)
		}
		if result.Recommendations > 0 {
			logger.Info().
				Int("recommendations", result.Recommendations).
				Int("articles", result.Articles).
				Msg("Seeded empty store on startup")
		}
	}

	if err := app.Scheduler.Start(); err != nil {
		storageManager.Close()
		return nil, fmt.Errorf("failed to start content scheduler: %w", err)
	}

	logger.Info().Msg("Application initialized")
	return app, nil
}

// Shutdown stops the scheduler and closes storage
func (a *App) Shutdown() error {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	if a.StorageManager != nil {
		if err := a.StorageManager.Close(); err != nil {
			return fmt.Errorf("failed to close storage: %w", err)
		}
	}
	a.Logger.Info().Msg("Application shut down")
	return nil
}
