package intelligence

import (
	"context"
	"fmt"

	"github.com/pulse-uk/culture-pulse/internal/synthesis"
)

// On-demand analysis entry points backing the HTTP API. Each collects
// a fresh snapshot and runs a single stage of the pipeline.

func (s *Service) AnalyzePatterns(ctx context.Context) (*synthesis.PatternAnalysis, error) {
	snap, _ := s.CollectSnapshot(ctx)
	return s.synthesizer.CrossPlatformPatterns(snap)
}

func (s *Service) AnalyzeInsights(ctx context.Context) (*synthesis.Insights, error) {
	snap, _ := s.CollectSnapshot(ctx)
	patterns, err := s.synthesizer.CrossPlatformPatterns(snap)
	if err != nil {
		return nil, err
	}
	return s.synthesizer.GenerateInsights(snap, patterns)
}

func (s *Service) AnalyzeRegional(ctx context.Context) (*synthesis.RegionalAnalysis, error) {
	snap, _ := s.CollectSnapshot(ctx)
	return s.synthesizer.RegionalCulture(snap)
}

func (s *Service) AnalyzeNetwork(ctx context.Context) (*synthesis.NetworkAnalysis, error) {
	snap, _ := s.CollectSnapshot(ctx)
	return s.synthesizer.MapNetwork(snap)
}

func (s *Service) AnalyzeTemporal(ctx context.Context) (*synthesis.TemporalAnalysis, error) {
	snap, _ := s.CollectSnapshot(ctx)
	return s.tracker.Observe(snap)
}

func (s *Service) AnalyzeOpportunities(ctx context.Context) (*synthesis.OpportunityAnalysis, error) {
	snap, _ := s.CollectSnapshot(ctx)

	patterns, err := s.synthesizer.CrossPlatformPatterns(snap)
	if err != nil {
		return nil, fmt.Errorf("pattern recognition failed: %w", err)
	}
	insights, err := s.synthesizer.GenerateInsights(snap, patterns)
	if err != nil {
		return nil, fmt.Errorf("insight generation failed: %w", err)
	}
	temporal, err := s.tracker.Observe(snap)
	if err != nil {
		return nil, fmt.Errorf("temporal analysis failed: %w", err)
	}

	return s.synthesizer.ScoreOpportunities(snap, patterns, insights, temporal)
}

// AnalyzeReport runs the full pipeline and returns the weather report
// without archiving or notifying.
func (s *Service) AnalyzeReport(ctx context.Context) (*synthesis.WeatherReport, error) {
	snap, _ := s.CollectSnapshot(ctx)

	citations, err := s.synthesizer.ExtractSources(snap)
	if err != nil {
		return nil, err
	}
	patterns, err := s.synthesizer.CrossPlatformPatterns(snap)
	if err != nil {
		return nil, err
	}
	insights, err := s.synthesizer.GenerateInsights(snap, patterns)
	if err != nil {
		return nil, err
	}
	regional, err := s.synthesizer.RegionalCulture(snap)
	if err != nil {
		return nil, err
	}
	temporal, err := s.tracker.Observe(snap)
	if err != nil {
		return nil, err
	}
	opportunities, err := s.synthesizer.ScoreOpportunities(snap, patterns, insights, temporal)
	if err != nil {
		return nil, err
	}

	return synthesis.BuildWeatherReport(patterns, insights, regional, temporal, opportunities, citations), nil
}
