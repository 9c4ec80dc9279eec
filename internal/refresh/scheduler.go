// Package refresh keeps the calendar and football caches warm on a cron
// schedule so dashboard reads stay fast.
package refresh

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"dashgrid/internal/calendar"
	"dashgrid/internal/football"
)

// Scheduler periodically refreshes the data provider caches.
type Scheduler struct {
	cron     *cron.Cron
	calendar *calendar.Service
	football *football.Service
}

// New creates a scheduler for the given services. Either service may be nil.
func New(calendarSvc *calendar.Service, footballSvc *football.Service) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		calendar: calendarSvc,
		football: footballSvc,
	}
}

// Start registers the refresh job under the given cron spec and starts the
// scheduler. An empty spec disables background refresh.
func (s *Scheduler) Start(spec string) error {
	if spec == "" {
		return nil
	}
	if _, err := s.cron.AddFunc(spec, s.refreshAll); err != nil {
		return err
	}
	s.cron.Start()
	slog.Info("refresh scheduler started", "schedule", spec)
	return nil
}

// Restart replaces the schedule, stopping the current cron first. An empty
// spec leaves background refresh disabled.
func (s *Scheduler) Restart(spec string) error {
	<-s.cron.Stop().Done()
	s.cron = cron.New()
	return s.Start(spec)
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) refreshAll() {
	ctx := context.Background()
	if s.calendar != nil {
		if _, source, err := s.calendar.Refresh(ctx); err != nil {
			slog.Warn("calendar refresh failed", "error", err)
		} else {
			slog.Debug("calendar cache refreshed", "source", source)
		}
	}
	if s.football != nil {
		data := s.football.Refresh(ctx)
		slog.Debug("football cache refreshed", "source", data.Source)
	}
}
