package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/pulse-uk/culture-pulse/internal/config"
	"github.com/pulse-uk/culture-pulse/internal/intelligence"
)

// Service schedules the full pulse run and the frequent velocity check
type Service struct {
	cron         *cron.Cron
	intelligence *intelligence.Service
	config       *config.Config
}

// NewService creates a scheduler in the configured timezone
func NewService(cfg *config.Config, intel *intelligence.Service) (*Service, error) {
	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %s: %w", cfg.TimeZone, err)
	}

	c := cron.New(
		cron.WithLocation(location),
		cron.WithSeconds(),
	)

	return &Service{
		cron:         c,
		intelligence: intel,
		config:       cfg,
	}, nil
}

// Start registers the cron entries and starts the scheduler.
// The full pulse runs at 09:00 local time daily or weekly; the
// velocity check runs every four hours.
func (s *Service) Start() error {
	pulseSchedule := "0 0 9 * * *"
	if s.config.ReportSchedule == "weekly" {
		pulseSchedule = "0 0 9 * * MON"
	}

	_, err := s.cron.AddFunc(pulseSchedule, func() {
		logrus.Info("Running scheduled pulse")
		if err := s.intelligence.RunPulse(); err != nil {
			logrus.Errorf("Scheduled pulse failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule pulse run: %w", err)
	}

	_, err = s.cron.AddFunc("0 0 */4 * * *", func() {
		logrus.Info("Running scheduled velocity check")
		if err := s.intelligence.RunVelocityCheck(); err != nil {
			logrus.Errorf("Scheduled velocity check failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule velocity check: %w", err)
	}

	s.cron.Start()
	logrus.Infof("Scheduler started (%s pulse at 09:00 %s, velocity check every 4h)",
		s.config.ReportSchedule, s.config.TimeZone)

	return nil
}

// Stop stops the scheduler and waits for running jobs to finish
func (s *Service) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logrus.Info("Scheduler stopped")
}
