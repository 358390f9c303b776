package synthesis

import (
	"fmt"
	"strings"

	"github.com/pulse-uk/culture-pulse/internal/models"
)

const (
	safetyWeight      = 0.4
	opportunityWeight = 0.6

	highConfidenceFloor = 70.0
	experimentalFloor   = 40.0

	controversyPenalty = 20.0

	frequencyBonusFloor  = 100
	frequencyBonusHigher = 500

	redditVelocityAlert  = 1000.0
	youtubeVelocityAlert = 10000.0
)

var controversialTerms = []string{"politics", "brexit", "covid", "scandal", "crisis", "protest"}

// Opportunity is the scored brand assessment of a single topic.
// CombinedScore is always safetyWeight*safety + opportunityWeight*opportunity.
type Opportunity struct {
	Trend               string  `json:"trend"`
	SafetyScore         float64 `json:"safety_score"`
	OpportunityScore    float64 `json:"opportunity_score"`
	CombinedScore       float64 `json:"combined_score"`
	RecommendedApproach string  `json:"recommended_approach"`
}

// TimingRecommendations advises when to act, derived from the velocity
// index and sleeping giants.
type TimingRecommendations struct {
	Immediate []string `json:"immediate"`
	Next24h   []string `json:"next_24h"`
	NextWeek  []string `json:"next_week"`
	WatchList []string `json:"watch_list"`
}

// OpportunityAnalysis buckets every scored topic into exactly one band.
type OpportunityAnalysis struct {
	HighConfidence        []Opportunity         `json:"high_confidence"`
	Experimental          []Opportunity         `json:"experimental"`
	Avoid                 []Opportunity         `json:"avoid"`
	TimingRecommendations TimingRecommendations `json:"timing_recommendations"`
}

// ScoreOpportunities scores every topic in the snapshot's combined
// top-topic map. Emerging-theme matches come from patterns, white-space
// matches and the velocity index from insights, sleeping giants from
// the temporal analysis; any of those inputs may be nil.
func (s *Synthesizer) ScoreOpportunities(snap *models.Snapshot, patterns *PatternAnalysis, insights *Insights, temporal *TemporalAnalysis) (*OpportunityAnalysis, error) {
	if err := validateSnapshot(snap); err != nil {
		return nil, err
	}
	if patterns == nil {
		patterns = &PatternAnalysis{}
	}
	if insights == nil {
		insights = &Insights{}
	}

	analysis := &OpportunityAnalysis{
		HighConfidence: []Opportunity{},
		Experimental:   []Opportunity{},
		Avoid:          []Opportunity{},
	}

	for trend, frequency := range extractTopics(allContent(snap)) {
		safety := brandSafety(trend)
		opportunity := opportunityScore(trend, frequency, patterns.EmergingThemes, insights.WhiteSpaces)

		scored := Opportunity{
			Trend:               trend,
			SafetyScore:         safety,
			OpportunityScore:    opportunity,
			CombinedScore:       safetyWeight*safety + opportunityWeight*opportunity,
			RecommendedApproach: brandApproach(safety, opportunity),
		}

		switch {
		case scored.CombinedScore > highConfidenceFloor:
			analysis.HighConfidence = append(analysis.HighConfidence, scored)
		case scored.CombinedScore > experimentalFloor:
			analysis.Experimental = append(analysis.Experimental, scored)
		default:
			analysis.Avoid = append(analysis.Avoid, scored)
		}
	}

	analysis.TimingRecommendations = timingRecommendations(insights, temporal)
	return analysis, nil
}

// brandSafety starts neutral at 50, shifts by the lexical polarity of
// the topic string and penalizes controversial terms, clamped to
// [0, 100]. An unscorable topic stays at the neutral default.
func brandSafety(trend string) float64 {
	safety := 50 + sentimentPolarity(trend)*50

	lower := strings.ToLower(trend)
	for _, term := range controversialTerms {
		if strings.Contains(lower, term) {
			safety -= controversyPenalty
			break
		}
	}

	if safety < 0 {
		return 0
	}
	if safety > 100 {
		return 100
	}
	return safety
}

// opportunityScore starts at a base of 50 and adds cumulative bonuses
// for raw frequency, emerging-theme matches and white-space matches.
// It cannot go negative by construction, so only the ceiling is
// clamped.
func opportunityScore(trend string, frequency int, emerging []EmergingTheme, whiteSpaces []WhiteSpace) float64 {
	opportunity := 50.0

	if frequency > frequencyBonusFloor {
		opportunity += 20
	}
	if frequency > frequencyBonusHigher {
		opportunity += 10
	}

	for _, theme := range emerging {
		if strings.Contains(theme.Theme, trend) {
			opportunity += 15
			break
		}
	}
	for _, space := range whiteSpaces {
		if strings.Contains(space.Opportunity, trend) {
			opportunity += 25
			break
		}
	}

	if opportunity > 100 {
		return 100
	}
	return opportunity
}

func brandApproach(safety, opportunity float64) string {
	switch {
	case safety > 70 && opportunity > 70:
		return "Aggressive participation - high confidence opportunity"
	case safety > 50 && opportunity > 50:
		return "Cautious participation - test with small campaign"
	case opportunity > 70 && safety < 50:
		return "High risk/reward - only for bold brands"
	default:
		return "Monitor only - not recommended for brand participation"
	}
}

func timingRecommendations(insights *Insights, temporal *TemporalAnalysis) TimingRecommendations {
	recs := TimingRecommendations{
		Immediate: []string{},
		Next24h:   []string{},
		NextWeek:  []string{},
		WatchList: []string{},
	}

	velocity := insights.MemeticVelocityIndex
	if velocity["reddit_velocity"] > redditVelocityAlert {
		recs.Immediate = append(recs.Immediate, "High Reddit velocity - engage within 2 hours")
	}
	if velocity["youtube_velocity"] > youtubeVelocityAlert {
		recs.Next24h = append(recs.Next24h, "YouTube trend building - prepare content for tomorrow")
	}

	if temporal != nil {
		for _, giant := range temporal.SleepingGiants {
			recs.NextWeek = append(recs.NextWeek, fmt.Sprintf("Prepare for '%s' - predicted to peak soon", giant.Topic))
		}
	}

	return recs
}
