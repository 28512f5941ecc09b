// Package scheduler runs the obligation sweep on a cron schedule, once per
// active agency per tick.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/agencyops/backoffice/internal/core/ports"
)

// Scheduler triggers the notification sweep for every active agency.
type Scheduler struct {
	cron     *cron.Cron
	agencies ports.AgencyRepository
	sweep    ports.SweepService
	log      zerolog.Logger
}

func New(agencies ports.AgencyRepository, sweep ports.SweepService, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		agencies: agencies,
		sweep:    sweep,
		log:      log,
	}
}

// Start registers the sweep job under the given cron expression and starts
// the scheduler. An empty expression disables scheduling.
func (s *Scheduler) Start(schedule string) error {
	if schedule == "" {
		s.log.Info().Msg("sweep scheduler disabled (no schedule configured)")
		return nil
	}

	if _, err := s.cron.AddFunc(schedule, s.runAll); err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info().Str("schedule", schedule).Msg("sweep scheduler started")
	return nil
}

// Stop gracefully stops the cron scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info().Msg("sweep scheduler stopped")
}

// runAll sweeps every active agency. A per-agency failure is logged and the
// loop carries on to the next agency.
func (s *Scheduler) runAll() {
	ctx := context.Background()

	agencies, err := s.agencies.ListActive(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("scheduled sweep: failed to list agencies")
		return
	}

	total := 0
	for _, a := range agencies {
		created, err := s.sweep.GenerateNotifications(ctx, a.ID)
		if err != nil {
			s.log.Warn().Err(err).Str("agency_id", a.ID).Msg("scheduled sweep failed for agency")
			continue
		}
		total += created
	}

	s.log.Info().Int("agencies", len(agencies)).Int("created", total).Msg("scheduled sweep completed")
}
