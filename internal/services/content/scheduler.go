package content

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/consilium/internal/common"
)

// Scheduler runs the content jobs on cron schedules from config.
// Empty schedules disable the corresponding job.
type Scheduler struct {
	cron    *cron.Cron
	content *Service
	config  common.ContentConfig
	logger  arbor.ILogger
}

func NewScheduler(content *Service, config common.ContentConfig) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		content: content,
		config:  config,
		logger:  common.GetLogger(),
	}
}

// Start validates and registers the configured schedules, then starts
// the cron runner. Returns an error for invalid schedules rather than
// silently skipping them.
func (s *Scheduler) Start() error {
	registered := 0

	if schedule := s.config.UpdateSchedule; schedule != "" {
		if err := common.ValidateJobSchedule(schedule); err != nil {
			return fmt.Errorf("invalid update_schedule: %w", err)
		}
		if _, err := s.cron.AddFunc(schedule, s.runMarketUpdate); err != nil {
			return fmt.Errorf("failed to schedule market update: %w", err)
		}
		s.logger.Info().Str("schedule", schedule).Msg("Scheduled market update job")
		registered++
	}

	if schedule := s.config.RefreshSchedule; schedule != "" {
		if err := common.ValidateJobSchedule(schedule); err != nil {
			return fmt.Errorf("invalid refresh_schedule: %w", err)
		}
		if _, err := s.cron.AddFunc(schedule, s.runNewsRefresh); err != nil {
			return fmt.Errorf("failed to schedule news refresh: %w", err)
		}
		s.logger.Info().Str("schedule", schedule).Msg("Scheduled news refresh job")
		registered++
	}

	if registered == 0 {
		s.logger.Debug().Msg("No content jobs scheduled")
		return nil
	}

	s.cron.Start()
	return nil
}

// Stop halts the cron runner and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runMarketUpdate() {
	if _, err := s.content.MarketUpdate(context.Background()); err != nil {
		s.logger.Error().Err(err).Msg("Scheduled market update failed")
	}
}

func (s *Scheduler) runNewsRefresh() {
	if _, err := s.content.RefreshNews(context.Background()); err != nil {
		s.logger.Error().Err(err).Msg("Scheduled news refresh failed")
	}
}
