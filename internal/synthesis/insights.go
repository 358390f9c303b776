package synthesis

import (
	"fmt"
	"strings"

	"github.com/pulse-uk/culture-pulse/internal/models"
)

const (
	hypothesisTrendLimit = 3
	hypothesisViralLimit = 2

	highPerformerScore    = 1000
	questionTitleRatio    = 0.3
	personalNarrativeRate = 0.4
)

// Hypothesis is a prediction about what will trend next.
type Hypothesis struct {
	Hypothesis        string `json:"hypothesis"`
	Confidence        int    `json:"confidence"`
	Reasoning         string `json:"reasoning"`
	RecommendedAction string `json:"recommended_action"`
}

// TrendDNA captures stylistic correlates of high-engagement content.
type TrendDNA struct {
	SuccessfulPatterns []string          `json:"successful_patterns"`
	EngagementDrivers  []string          `json:"engagement_drivers"`
	FormatPreferences  map[string]string `json:"format_preferences"`
}

// CounterTrend is an opportunity to go against a prevailing trend.
type CounterTrend struct {
	Opportunity string `json:"opportunity"`
	Reasoning   string `json:"reasoning"`
	Confidence  int    `json:"confidence"`
}

// WhiteSpace is a content gap: an audience or topic absent from the
// current corpus.
type WhiteSpace struct {
	Opportunity string `json:"opportunity"`
	Gap         string `json:"gap"`
	Potential   string `json:"potential"`
}

// Collision predicts two trends merging.
type Collision struct {
	Collision   string `json:"collision"`
	Prediction  string `json:"prediction"`
	Opportunity string `json:"opportunity"`
}

// Insights is the combined output of the insight generator.
type Insights struct {
	CulturalHypotheses   []Hypothesis       `json:"cultural_hypotheses"`
	TrendDNA             TrendDNA           `json:"trend_dna"`
	CounterTrends        []CounterTrend     `json:"counter_trends"`
	WhiteSpaces          []WhiteSpace       `json:"white_spaces"`
	CulturalCollisions   []Collision        `json:"cultural_collisions"`
	MemeticVelocityIndex map[string]float64 `json:"memetic_velocity_index"`
}

// GenerateInsights combines pattern output and raw snapshot data into
// hypotheses, trend DNA, counter-trends, white spaces, predicted
// collisions and a per-platform velocity index.
func (s *Synthesizer) GenerateInsights(snap *models.Snapshot, patterns *PatternAnalysis) (*Insights, error) {
	if err := validateSnapshot(snap); err != nil {
		return nil, err
	}
	if patterns == nil {
		patterns = &PatternAnalysis{}
	}

	insights := &Insights{
		CulturalHypotheses:   culturalHypotheses(patterns),
		TrendDNA:             analyzeTrendDNA(snap),
		CounterTrends:        counterTrends(patterns),
		WhiteSpaces:          findWhiteSpaces(snap),
		CulturalCollisions:   predictCollisions(patterns),
		MemeticVelocityIndex: memeticVelocity(snap),
	}
	return insights, nil
}

func culturalHypotheses(patterns *PatternAnalysis) []Hypothesis {
	hypotheses := []Hypothesis{}

	trends := patterns.CrossPlatformTrends
	if len(trends) > hypothesisTrendLimit {
		trends = trends[:hypothesisTrendLimit]
	}
	for _, trend := range trends {
		hypotheses = append(hypotheses, Hypothesis{
			Hypothesis:        fmt.Sprintf("'%s' will become mainstream UK discourse within 7 days", trend),
			Confidence:        75,
			Reasoning:         "Strong presence across all platforms",
			RecommendedAction: fmt.Sprintf("Prepare content around %s theme", trend),
		})
	}

	candidates := patterns.ViralCandidates
	if len(candidates) > hypothesisViralLimit {
		candidates = candidates[:hypothesisViralLimit]
	}
	for _, candidate := range candidates {
		hypotheses = append(hypotheses, Hypothesis{
			Hypothesis:        fmt.Sprintf("Content similar to '%s' will proliferate", truncate(candidate.Title, 50)),
			Confidence:        60,
			Reasoning:         fmt.Sprintf("High engagement ratio of %.2f", candidate.EngagementRatio),
			RecommendedAction: "Monitor and prepare derivative content",
		})
	}

	return hypotheses
}

// analyzeTrendDNA inspects high-performing forum posts for stylistic
// patterns. With no high performers there is nothing to measure and
// no patterns are emitted.
func analyzeTrendDNA(snap *models.Snapshot) TrendDNA {
	dna := TrendDNA{
		SuccessfulPatterns: []string{},
		EngagementDrivers:  []string{},
		FormatPreferences:  map[string]string{},
	}

	var highPerformers []string
	if snap.Social != nil {
		for _, posts := range snap.Social.ByCommunity {
			for _, post := range posts {
				if post.Score > highPerformerScore {
					highPerformers = append(highPerformers, post.Title)
				}
			}
		}
	}
	if len(highPerformers) == 0 {
		return dna
	}

	questions := 0
	personal := 0
	for _, title := range highPerformers {
		if strings.Contains(title, "?") {
			questions++
		}
		lower := strings.ToLower(title)
		if strings.Contains(lower, "i") || strings.Contains(lower, "my") || strings.Contains(lower, "me") {
			personal++
		}
	}

	total := float64(len(highPerformers))
	if float64(questions)/total > questionTitleRatio {
		dna.SuccessfulPatterns = append(dna.SuccessfulPatterns, "Question-based titles drive engagement")
	}
	if float64(personal)/total > personalNarrativeRate {
		dna.SuccessfulPatterns = append(dna.SuccessfulPatterns, "Personal narratives resonate strongly")
	}

	return dna
}

func counterTrends(patterns *PatternAnalysis) []CounterTrend {
	counter := []CounterTrend{}
	trends := toSet(patterns.CrossPlatformTrends)

	if _, ok := trends["politics"]; ok {
		counter = append(counter, CounterTrend{
			Opportunity: "Light-hearted content",
			Reasoning:   "Heavy news cycle creates demand for escapism",
			Confidence:  70,
		})
	}
	if _, ok := trends["technology"]; ok {
		counter = append(counter, CounterTrend{
			Opportunity: "Traditional/nostalgic content",
			Reasoning:   "Digital fatigue creates nostalgia demand",
			Confidence:  65,
		})
	}
	return counter
}

// findWhiteSpaces flags audience gaps via case-insensitive presence
// checks over the full corpus.
func findWhiteSpaces(snap *models.Snapshot) []WhiteSpace {
	spaces := []WhiteSpace{}
	joined := strings.ToLower(strings.Join(allContent(snap), " "))

	if !strings.Contains(joined, "pensioner") && !strings.Contains(joined, "elderly") {
		spaces = append(spaces, WhiteSpace{
			Opportunity: "Senior-focused content",
			Gap:         "Minimal content addressing 65+ demographic",
			Potential:   "High - underserved large demographic",
		})
	}
	if !strings.Contains(joined, "wales") && !strings.Contains(joined, "welsh") {
		spaces = append(spaces, WhiteSpace{
			Opportunity: "Welsh cultural content",
			Gap:         "Wales underrepresented in trending content",
			Potential:   "Medium - engaged but smaller audience",
		})
	}
	return spaces
}

func predictCollisions(patterns *PatternAnalysis) []Collision {
	collisions := []Collision{}
	trends := patterns.CrossPlatformTrends
	if len(trends) >= 2 {
		collisions = append(collisions, Collision{
			Collision:   fmt.Sprintf("%s meets %s", trends[0], trends[1]),
			Prediction:  "These themes will merge in content within 48 hours",
			Opportunity: fmt.Sprintf("Create content combining %s and %s themes", trends[0], trends[1]),
		})
	}
	return collisions
}

// memeticVelocity computes mean per-item engagement for each platform
// with at least one item. Absent platforms omit their key entirely.
func memeticVelocity(snap *models.Snapshot) map[string]float64 {
	index := map[string]float64{}

	if snap.Social != nil {
		engagement, count := 0, 0
		for _, posts := range snap.Social.ByCommunity {
			for _, post := range posts {
				engagement += post.Score + post.Comments
				count++
			}
		}
		if count > 0 {
			index["reddit_velocity"] = float64(engagement) / float64(count)
		}
	}

	if snap.Video != nil {
		engagement, count := 0, 0
		for _, video := range snap.Video.Items {
			engagement += video.Views + video.Likes
			count++
		}
		if count > 0 {
			index["youtube_velocity"] = float64(engagement) / float64(count)
		}
	}

	return index
}
