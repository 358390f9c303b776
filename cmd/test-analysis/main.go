package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pulse-uk/culture-pulse/internal/models"
	"github.com/pulse-uk/culture-pulse/internal/synthesis"
)

// TestStorage implements simple file-based storage for testing
type TestStorage struct{}

func (t *TestStorage) Store(filename string, data []byte) error {
	dir := "test_output"
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, filename), data, 0644)
}

func (t *TestStorage) Retrieve(filename string) ([]byte, error) {
	return os.ReadFile(filepath.Join("test_output", filename))
}

func (t *TestStorage) List(prefix string) ([]string, error) {
	return []string{}, nil
}

func (t *TestStorage) Delete(filename string) error {
	return os.Remove(filepath.Join("test_output", filename))
}

func main() {
	fmt.Println("🤖 Culture Pulse - Analysis Pipeline Test")
	fmt.Println("=========================================")

	snap := sampleSnapshot()
	fmt.Printf("\n📊 Running analysis on %d sample records...\n", snap.RecordCount())

	synth := synthesis.NewSynthesizer()
	tracker := synthesis.NewTracker(synthesis.DefaultHistorySize)

	citations, err := synth.ExtractSources(snap)
	fail(err)
	patterns, err := synth.CrossPlatformPatterns(snap)
	fail(err)
	insights, err := synth.GenerateInsights(snap, patterns)
	fail(err)
	regional, err := synth.RegionalCulture(snap)
	fail(err)
	network, err := synth.MapNetwork(snap)
	fail(err)
	temporal, err := tracker.Observe(snap)
	fail(err)
	opportunities, err := synth.ScoreOpportunities(snap, patterns, insights, temporal)
	fail(err)

	fmt.Println("\n" + strings.Repeat("=", 70))
	fmt.Println("🔍 PATTERN RECOGNITION")
	fmt.Println(strings.Repeat("=", 70))
	for _, theme := range patterns.EmergingThemes {
		fmt.Printf("   • %-20s freq=%d (%s)\n", theme.Theme, theme.Frequency, theme.Classification)
	}
	fmt.Printf("\n🔥 Viral candidates: %d\n", len(patterns.ViralCandidates))
	for _, candidate := range patterns.ViralCandidates {
		fmt.Printf("   • [%s] %s (ratio %.2f)\n", candidate.Platform, candidate.Title, candidate.EngagementRatio)
	}

	fmt.Println("\n" + strings.Repeat("=", 70))
	fmt.Println("💡 INSIGHTS")
	fmt.Println(strings.Repeat("=", 70))
	for _, hypothesis := range insights.CulturalHypotheses {
		fmt.Printf("   • %s (confidence %d%%)\n", hypothesis.Hypothesis, hypothesis.Confidence)
	}

	fmt.Println("\n" + strings.Repeat("=", 70))
	fmt.Println("🗺️  REGIONAL PULSE")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("   London vs regional: %s\n", regional.LondonVsRegional.Balance)
	fmt.Printf("   North/South: %s\n", regional.NorthSouthDivide.Balance)

	fmt.Println("\n" + strings.Repeat("=", 70))
	fmt.Println("🕸️  NETWORK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("   Entities tracked: %d\n", len(network.Nodes))
	fmt.Printf("   Top Reddit users: %d, top YouTube channels: %d\n",
		len(network.InfluencerNetwork.TopRedditUsers), len(network.InfluencerNetwork.TopYouTubeChannels))

	fmt.Println("\n" + strings.Repeat("=", 70))
	fmt.Println("💰 OPPORTUNITIES")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("   High confidence: %d, experimental: %d, avoid: %d\n",
		len(opportunities.HighConfidence), len(opportunities.Experimental), len(opportunities.Avoid))
	for i, opp := range opportunities.HighConfidence {
		if i >= 5 {
			fmt.Printf("   ... and %d more\n", len(opportunities.HighConfidence)-5)
			break
		}
		fmt.Printf("   • %-20s combined=%.1f (%s)\n", opp.Trend, opp.CombinedScore, opp.RecommendedApproach)
	}

	report := synthesis.BuildWeatherReport(patterns, insights, regional, temporal, opportunities, citations)

	fmt.Println("\n" + strings.Repeat("=", 70))
	fmt.Println("🌦️  CULTURAL WEATHER REPORT")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("   Temperature: %s\n", report.Summary.CulturalTemperature)
	fmt.Printf("   Velocity: %s\n", report.Summary.TrendVelocity)
	fmt.Printf("   Top trends: %s\n", strings.Join(report.Top3Trends, ", "))
	fmt.Printf("   Forecast: %s\n", strings.Join(report.Forecast24h, "; "))

	if err := saveReport(report); err != nil {
		fmt.Printf("\n⚠️  Warning: Could not save report: %v\n", err)
	}

	fmt.Println("\n✅ Analysis pipeline test completed!")
	fmt.Println("\n💡 Next steps:")
	fmt.Println("   • Check the 'test_output' directory for the saved JSON report")
	fmt.Println("   • Run 'go test ./internal/synthesis -v' for detailed tests")
	fmt.Println("   • Configure real API keys and run the full service with 'go run cmd/bot/main.go'")
}

func fail(err error) {
	if err != nil {
		fmt.Printf("❌ Analysis failed: %v\n", err)
		os.Exit(1)
	}
}

func saveReport(report *synthesis.WeatherReport) error {
	storage := &TestStorage{}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	filename := fmt.Sprintf("weather_report_%s.json", time.Now().Format("2006-01-02_15-04-05"))
	if err := storage.Store(filename, data); err != nil {
		return err
	}
	fmt.Printf("\n💾 Report saved to: test_output/%s\n", filename)
	return nil
}

func sampleSnapshot() *models.Snapshot {
	now := time.Now()
	return &models.Snapshot{
		Timestamp: now,
		Social: &models.SocialData{
			ByCommunity: map[string][]models.SocialPost{
				"CasualUK": {
					{
						Title:    "Greggs festive bake is back and the queue in Manchester proves it",
						Score:    2400,
						Comments: 180,
						Author:   "northern_snacker",
						Created:  now.Add(-3 * time.Hour),
						URL:      "https://reddit.com/r/CasualUK/comments/sample1",
						Text:     "Honestly the festive bake might be the best thing Greggs has ever done",
					},
					{
						Title:    "Why does every train to London cost more than a flight to Spain?",
						Score:    1850,
						Comments: 425,
						Author:   "commuter_blues",
						Created:  now.Add(-5 * time.Hour),
						URL:      "https://reddit.com/r/CasualUK/comments/sample2",
						Text:     "Booked a peak ticket from Leeds and genuinely considered moving house instead",
					},
				},
				"unitedkingdom": {
					{
						Title:    "Scottish independence debate returns as Holyrood sets out new plans",
						Score:    960,
						Comments: 710,
						Author:   "politics_watcher",
						Created:  now.Add(-2 * time.Hour),
						URL:      "https://reddit.com/r/unitedkingdom/comments/sample3",
						Text:     "The SNP announcement has everyone talking about Scotland again",
					},
				},
			},
			Top: []models.SocialPost{
				{
					Title:    "Greggs festive bake is back and the queue in Manchester proves it",
					Score:    2400,
					Comments: 180,
					Author:   "northern_snacker",
					Created:  now.Add(-3 * time.Hour),
					URL:      "https://reddit.com/r/CasualUK/comments/sample1",
				},
			},
		},
		Video: &models.VideoData{
			Items: []models.VideoItem{
				{
					Title:       "I tried every festive bake in Britain",
					Channel:     "FoodTourUK",
					Views:       450000,
					Likes:       38000,
					Comments:    2100,
					Published:   now.Add(-20 * time.Hour),
					Description: "Ranking every festive bake from Greggs to the posh bakeries of London",
					URL:         "https://youtube.com/watch?v=sample1",
				},
				{
					Title:       "Why UK trains are broken",
					Channel:     "TransportExplained",
					Views:       890000,
					Likes:       52000,
					Comments:    6800,
					Published:   now.Add(-30 * time.Hour),
					Description: "The economics behind Britain's rail pricing and what it means for commuters",
					URL:         "https://youtube.com/watch?v=sample2",
				},
			},
		},
		News: &models.NewsData{
			BySection: map[string][]models.NewsArticle{
				"politics": {
					{
						Title:       "Holyrood publishes fresh independence prospectus",
						Section:     "politics",
						Published:   now.Add(-4 * time.Hour),
						URL:         "https://theguardian.com/politics/sample1",
						Description: "Scottish government sets out economic case as Westminster pushes back",
					},
				},
				"business": {
					{
						Title:       "Rail fares to rise again as operators blame energy costs",
						Section:     "business",
						Published:   now.Add(-6 * time.Hour),
						URL:         "https://theguardian.com/business/sample1",
						Description: "Commuters face another year of above-inflation increases on peak routes",
					},
				},
			},
			Latest: []models.NewsArticle{
				{
					Title:     "Holyrood publishes fresh independence prospectus",
					Section:   "politics",
					Published: now.Add(-4 * time.Hour),
					URL:       "https://theguardian.com/politics/sample1",
				},
			},
		},
	}
}
