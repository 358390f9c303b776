package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pulse-uk/culture-pulse/internal/config"
	"github.com/pulse-uk/culture-pulse/internal/models"
	"github.com/pulse-uk/culture-pulse/internal/notifications"
	"github.com/pulse-uk/culture-pulse/internal/sources"
	"github.com/pulse-uk/culture-pulse/internal/storage"
	"github.com/pulse-uk/culture-pulse/internal/synthesis"
)

// Service orchestrates snapshot collection, the synthesis pipeline,
// archival and notification.
type Service struct {
	config              *config.Config
	storage             storage.StorageInterface
	notificationService notifications.NotificationInterface
	collectors          []sources.Collector
	synthesizer         *synthesis.Synthesizer
	tracker             *synthesis.Tracker
	metrics             *Metrics
	mu                  sync.RWMutex
}

// Metrics holds pulse run metrics
type Metrics struct {
	TotalRecords        int            `json:"total_records"`
	LastRun             time.Time      `json:"last_run"`
	LastRunDuration     string         `json:"last_run_duration"`
	PlatformCounts      map[string]int `json:"platform_counts"`
	CrossPlatformTrends int            `json:"cross_platform_trends"`
	ViralCandidates     int            `json:"viral_candidates"`
	SleepingGiants      int            `json:"sleeping_giants"`
	ErrorCount          int            `json:"error_count"`
}

// NewService creates the intelligence service with its collectors and
// a velocity tracker that lives for the process lifetime.
func NewService(cfg *config.Config, store storage.StorageInterface, notificationService notifications.NotificationInterface) *Service {
	service := &Service{
		config:              cfg,
		storage:             store,
		notificationService: notificationService,
		synthesizer:         synthesis.NewSynthesizer(),
		tracker:             synthesis.NewTracker(cfg.VelocityHistorySize),
		metrics: &Metrics{
			PlatformCounts: make(map[string]int),
		},
	}

	service.initializeCollectors()

	return service
}

func (s *Service) initializeCollectors() {
	s.collectors = []sources.Collector{
		sources.NewRedditCollector(
			s.config.RedditClientID,
			s.config.RedditClientSecret,
			s.config.RedditUserAgent,
			s.config.Subreddits,
			s.config.PostsPerCommunity,
			s.config.TopPostLimit,
		),
		sources.NewYouTubeCollector(s.config.YouTubeAPIKey, s.config.VideoLimit),
		sources.NewGuardianCollector(
			s.config.GuardianAPIKey,
			s.config.NewsSections,
			s.config.TopPostLimit,
			s.config.PostsPerCommunity,
		),
	}
}

// CollectSnapshot fetches from all enabled collectors concurrently and
// returns a fully materialized snapshot plus the number of collector
// errors. Failed or disabled platforms are simply absent.
func (s *Service) CollectSnapshot(ctx context.Context) (*models.Snapshot, int) {
	snap := &models.Snapshot{Timestamp: time.Now()}

	var wg sync.WaitGroup
	var mu sync.Mutex
	errorCount := 0

	for _, collector := range s.collectors {
		if !collector.IsEnabled() {
			logrus.Debugf("Collector %s disabled", collector.GetName())
			continue
		}

		wg.Add(1)
		go func(c sources.Collector) {
			defer wg.Done()

			logrus.Infof("Collecting from %s", c.GetName())
			// Collectors write to disjoint snapshot fields, but the
			// error count is shared.
			if err := c.Collect(ctx, snap); err != nil {
				logrus.Errorf("Error collecting from %s: %v", c.GetName(), err)
				mu.Lock()
				errorCount++
				mu.Unlock()
				return
			}
			logrus.Infof("Collected %s data", c.GetName())
		}(collector)
	}

	wg.Wait()
	return snap, errorCount
}

// RunPulse performs a full collection and analysis run: snapshot,
// citations, every analysis, weather report, archive, notify.
func (s *Service) RunPulse() error {
	start := time.Now()
	logrus.Info("Starting pulse run")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	snap, errorCount := s.CollectSnapshot(ctx)
	logrus.Infof("Collected snapshot with %d records", snap.RecordCount())

	citations, err := s.synthesizer.ExtractSources(snap)
	if err != nil {
		return fmt.Errorf("citation extraction failed: %w", err)
	}

	patterns, err := s.synthesizer.CrossPlatformPatterns(snap)
	if err != nil {
		return fmt.Errorf("pattern recognition failed: %w", err)
	}

	insights, err := s.synthesizer.GenerateInsights(snap, patterns)
	if err != nil {
		return fmt.Errorf("insight generation failed: %w", err)
	}

	regional, err := s.synthesizer.RegionalCulture(snap)
	if err != nil {
		return fmt.Errorf("regional analysis failed: %w", err)
	}

	temporal, err := s.tracker.Observe(snap)
	if err != nil {
		return fmt.Errorf("temporal analysis failed: %w", err)
	}

	opportunities, err := s.synthesizer.ScoreOpportunities(snap, patterns, insights, temporal)
	if err != nil {
		return fmt.Errorf("opportunity scoring failed: %w", err)
	}

	report := synthesis.BuildWeatherReport(patterns, insights, regional, temporal, opportunities, citations)

	if err := s.archive("snapshot", snap); err != nil {
		logrus.Errorf("Failed to archive snapshot: %v", err)
	}
	if err := s.archive("report", report); err != nil {
		logrus.Errorf("Failed to archive report: %v", err)
	}

	s.updateMetrics(snap, patterns, temporal, time.Since(start), errorCount)

	if err := s.notificationService.SendReport(report); err != nil {
		logrus.Errorf("Failed to send report: %v", err)
		return err
	}

	logrus.Infof("Pulse run completed in %v", time.Since(start))
	return nil
}

// RunVelocityCheck is the frequent spot check between full runs: it
// collects a snapshot, feeds the tracker and alerts on sleeping giants
// or extreme platform velocity.
func (s *Service) RunVelocityCheck() error {
	start := time.Now()
	logrus.Info("Starting velocity check")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	snap, _ := s.CollectSnapshot(ctx)

	temporal, err := s.tracker.Observe(snap)
	if err != nil {
		return fmt.Errorf("temporal analysis failed: %w", err)
	}

	patterns, err := s.synthesizer.CrossPlatformPatterns(snap)
	if err != nil {
		return fmt.Errorf("pattern recognition failed: %w", err)
	}
	insights, err := s.synthesizer.GenerateInsights(snap, patterns)
	if err != nil {
		return fmt.Errorf("insight generation failed: %w", err)
	}

	alerts := velocityAlerts(temporal, insights)
	if len(alerts) == 0 {
		logrus.Info("No velocity alerts")
		return nil
	}

	logrus.Infof("Found %d velocity alerts", len(alerts))
	for _, alert := range alerts {
		if err := s.notificationService.SendAlert(alert); err != nil {
			logrus.Errorf("Failed to send alert: %v", err)
		}
	}

	logrus.Infof("Velocity check completed in %v", time.Since(start))
	return nil
}

// velocityAlerts builds alerts for sleeping giants and platforms
// spreading content unusually fast.
func velocityAlerts(temporal *synthesis.TemporalAnalysis, insights *synthesis.Insights) []*models.Alert {
	var alerts []*models.Alert
	now := time.Now()

	for _, giant := range temporal.SleepingGiants {
		alerts = append(alerts, &models.Alert{
			ID:    fmt.Sprintf("giant-%s-%d", giant.Topic, now.Unix()),
			Type:  "velocity",
			Title: fmt.Sprintf("Sleeping giant: '%s'", giant.Topic),
			Message: fmt.Sprintf("Topic '%s' accelerating at velocity %.2f. %s",
				giant.Topic, giant.Velocity, giant.Prediction),
			CreatedAt: now,
		})
	}

	if insights.MemeticVelocityIndex["reddit_velocity"] > 1000 {
		alerts = append(alerts, &models.Alert{
			ID:        fmt.Sprintf("reddit-velocity-%d", now.Unix()),
			Type:      "velocity",
			Title:     "High Reddit velocity",
			Message:   "Reddit engagement is spreading unusually fast; trends may jump platforms within hours",
			CreatedAt: now,
		})
	}

	return alerts
}

func (s *Service) archive(kind string, payload interface{}) error {
	if s.storage == nil {
		return nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", kind, err)
	}

	filename := fmt.Sprintf("%s-%s.json", kind, time.Now().Format("2006-01-02-15-04-05"))
	return s.storage.Store(filename, data)
}

func (s *Service) updateMetrics(snap *models.Snapshot, patterns *synthesis.PatternAnalysis, temporal *synthesis.TemporalAnalysis, duration time.Duration, errorCount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics.TotalRecords = snap.RecordCount()
	s.metrics.LastRun = time.Now()
	s.metrics.LastRunDuration = duration.String()
	s.metrics.ErrorCount = errorCount
	s.metrics.CrossPlatformTrends = len(patterns.CrossPlatformTrends)
	s.metrics.ViralCandidates = len(patterns.ViralCandidates)
	s.metrics.SleepingGiants = len(temporal.SleepingGiants)

	s.metrics.PlatformCounts = make(map[string]int)
	if snap.Social != nil {
		for _, posts := range snap.Social.ByCommunity {
			s.metrics.PlatformCounts["reddit"] += len(posts)
		}
	}
	if snap.Video != nil {
		s.metrics.PlatformCounts["youtube"] = len(snap.Video.Items)
	}
	if snap.News != nil {
		for _, articles := range snap.News.BySection {
			s.metrics.PlatformCounts["guardian"] += len(articles)
		}
	}
}

// GetMetrics returns current metrics as JSON
func (s *Service) GetMetrics() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, _ := json.MarshalIndent(s.metrics, "", "  ")
	return string(data)
}
