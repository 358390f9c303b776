package synthesis

import (
	"fmt"
	"time"
)

// ReportSummary is the headline state of the cultural weather.
type ReportSummary struct {
	CulturalTemperature string `json:"cultural_temperature"` // "Hot" or "Moderate"
	TrendVelocity       string `json:"trend_velocity"`       // "High" or "Normal"
	RegionalBalance     string `json:"regional_balance"`
}

// BrandRecommendations aggregates what to do now, prepare for and avoid.
type BrandRecommendations struct {
	DoNow      []string `json:"do_now"`
	PrepareFor []string `json:"prepare_for"`
	Avoid      []string `json:"avoid"`
}

// DataSources summarizes the evidence behind the report.
type DataSources struct {
	Summary              string         `json:"summary"`
	TotalSourcesAnalyzed int            `json:"total_sources_analyzed"`
	Breakdown            map[string]int `json:"breakdown"`
	SampleReferences     []string       `json:"sample_references"`
}

// WeatherReport is the executive summary combining every analysis.
type WeatherReport struct {
	ReportType           string               `json:"report_type"`
	GeneratedAt          time.Time            `json:"generated_at"`
	Summary              ReportSummary        `json:"summary"`
	Top3Trends           []string             `json:"top_3_trends"`
	EmergingThemes       []EmergingTheme      `json:"emerging_themes"`
	ViralWatch           []string             `json:"viral_watch"`
	RegionalHighlights   map[string][]string  `json:"regional_highlights"`
	BrandRecommendations BrandRecommendations `json:"brand_recommendations"`
	Forecast24h          []string             `json:"24h_forecast"`
	WeeklyOutlook        []string             `json:"weekly_outlook"`
	DataSources          DataSources          `json:"data_sources"`
	Methodology          string               `json:"methodology"`
}

// BuildWeatherReport assembles the executive report from the
// individual analyses. Any input may be nil; the corresponding
// sections degrade to empty.
func BuildWeatherReport(patterns *PatternAnalysis, insights *Insights, regional *RegionalAnalysis, temporal *TemporalAnalysis, opportunities *OpportunityAnalysis, citations *SourceCitations) *WeatherReport {
	if patterns == nil {
		patterns = &PatternAnalysis{}
	}
	if insights == nil {
		insights = &Insights{}
	}
	if temporal == nil {
		temporal = &TemporalAnalysis{}
	}
	if opportunities == nil {
		opportunities = &OpportunityAnalysis{}
	}

	report := &WeatherReport{
		ReportType:  "UK Cultural Weather Report",
		GeneratedAt: time.Now(),
		Summary: ReportSummary{
			CulturalTemperature: temperature(patterns),
			TrendVelocity:       velocityLabel(insights),
			RegionalBalance:     regionalBalance(regional),
		},
		Top3Trends:         head(patterns.CrossPlatformTrends, 3),
		EmergingThemes:     headThemes(patterns.EmergingThemes, 3),
		ViralWatch:         viralWatch(patterns.ViralCandidates, 3),
		RegionalHighlights: regionalHighlights(regional),
		BrandRecommendations: BrandRecommendations{
			DoNow:      opportunities.TimingRecommendations.Immediate,
			PrepareFor: giantTopics(temporal.SleepingGiants, 2),
			Avoid:      avoidTrends(opportunities.Avoid, 2),
		},
		Forecast24h:   []string{},
		WeeklyOutlook: []string{},
		Methodology:   MethodologyNote(),
	}

	if len(temporal.SleepingGiants) > 0 {
		report.Forecast24h = append(report.Forecast24h,
			fmt.Sprintf("'%s' expected to trend", temporal.SleepingGiants[0].Topic))
	}
	if len(insights.CulturalCollisions) > 0 {
		report.WeeklyOutlook = append(report.WeeklyOutlook, insights.CulturalCollisions[0].Prediction)
	}
	if len(patterns.EmergingThemes) > 0 {
		report.WeeklyOutlook = append(report.WeeklyOutlook,
			fmt.Sprintf("'%s' will dominate UK discourse", patterns.EmergingThemes[0].Theme))
	}

	if citations != nil {
		report.DataSources = DataSources{
			Summary:              citations.SummaryText(),
			TotalSourcesAnalyzed: citations.SourceSummary.TotalSources,
			Breakdown:            citations.SourceSummary.ByType,
			SampleReferences:     head(citations.References, 5),
		}
	}

	return report
}

func temperature(patterns *PatternAnalysis) string {
	if len(patterns.ViralCandidates) > 3 {
		return "Hot"
	}
	return "Moderate"
}

func velocityLabel(insights *Insights) string {
	if insights.MemeticVelocityIndex["reddit_velocity"] > redditVelocityAlert {
		return "High"
	}
	return "Normal"
}

func regionalBalance(regional *RegionalAnalysis) string {
	if regional == nil {
		return "Unknown"
	}
	return regional.LondonVsRegional.Balance
}

func regionalHighlights(regional *RegionalAnalysis) map[string][]string {
	highlights := map[string][]string{
		"scotland":         {},
		"wales":            {},
		"northern_ireland": {},
	}
	if regional == nil {
		return highlights
	}
	for nation, trends := range regional.NationSpecific {
		highlights[nation] = head(trends, 1)
	}
	return highlights
}

func viralWatch(candidates []ViralCandidate, limit int) []string {
	watch := []string{}
	for _, candidate := range candidates {
		watch = append(watch, truncate(candidate.Title, 50))
		if len(watch) == limit {
			break
		}
	}
	return watch
}

func giantTopics(giants []SleepingGiant, limit int) []string {
	topics := []string{}
	for _, giant := range giants {
		topics = append(topics, giant.Topic)
		if len(topics) == limit {
			break
		}
	}
	return topics
}

func avoidTrends(avoid []Opportunity, limit int) []string {
	trends := []string{}
	for _, opportunity := range avoid {
		trends = append(trends, opportunity.Trend)
		if len(trends) == limit {
			break
		}
	}
	return trends
}

func head(items []string, limit int) []string {
	if items == nil {
		return []string{}
	}
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

func headThemes(themes []EmergingTheme, limit int) []EmergingTheme {
	if themes == nil {
		return []EmergingTheme{}
	}
	if len(themes) > limit {
		return themes[:limit]
	}
	return themes
}
