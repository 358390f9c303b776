package synthesis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pulse-uk/culture-pulse/internal/models"
)

func TestCulturalHypotheses(t *testing.T) {
	patterns := &PatternAnalysis{
		CrossPlatformTrends: []string{"greggs", "trains", "weather", "rugby"},
		ViralCandidates: []ViralCandidate{
			{Title: "Quiet viral hit", EngagementRatio: 100},
			{Title: "Second hit", EngagementRatio: 50},
			{Title: "Third hit", EngagementRatio: 20},
		},
	}

	hypotheses := culturalHypotheses(patterns)

	// Three from trends (capped), two from virals (capped).
	assert.Len(t, hypotheses, 5)
	assert.Equal(t, "'greggs' will become mainstream UK discourse within 7 days", hypotheses[0].Hypothesis)
	assert.Equal(t, 75, hypotheses[0].Confidence)
	assert.Equal(t, 60, hypotheses[3].Confidence)
	assert.Equal(t, "High engagement ratio of 100.00", hypotheses[3].Reasoning)
}

func TestAnalyzeTrendDNA(t *testing.T) {
	snap := &models.Snapshot{
		Social: &models.SocialData{
			ByCommunity: map[string][]models.SocialPost{
				"CasualUK": {
					{Title: "Why is my train always late?", Score: 2000},
					{Title: "Proud of my local chippy", Score: 1500},
				},
			},
		},
	}

	dna := analyzeTrendDNA(snap)
	assert.Contains(t, dna.SuccessfulPatterns, "Question-based titles drive engagement")
	assert.Contains(t, dna.SuccessfulPatterns, "Personal narratives resonate strongly")
}

func TestAnalyzeTrendDNA_NoHighPerformers(t *testing.T) {
	snap := &models.Snapshot{
		Social: &models.SocialData{
			ByCommunity: map[string][]models.SocialPost{
				"CasualUK": {{Title: "Is this a question?", Score: 1000}}, // threshold is strict
			},
		},
	}

	dna := analyzeTrendDNA(snap)
	assert.Empty(t, dna.SuccessfulPatterns)
	assert.Empty(t, dna.EngagementDrivers)
}

func TestCounterTrends(t *testing.T) {
	both := counterTrends(&PatternAnalysis{CrossPlatformTrends: []string{"politics", "technology"}})
	assert.Len(t, both, 2)
	assert.Equal(t, "Light-hearted content", both[0].Opportunity)
	assert.Equal(t, 70, both[0].Confidence)
	assert.Equal(t, "Traditional/nostalgic content", both[1].Opportunity)

	none := counterTrends(&PatternAnalysis{CrossPlatformTrends: []string{"greggs"}})
	assert.Empty(t, none)
}

func TestFindWhiteSpaces(t *testing.T) {
	empty := findWhiteSpaces(textSnapshot("trains and weather chat"))
	assert.Len(t, empty, 2)
	assert.Equal(t, "Senior-focused content", empty[0].Opportunity)
	assert.Equal(t, "Welsh cultural content", empty[1].Opportunity)

	// Mentioning Wales closes only the Welsh gap.
	one := findWhiteSpaces(textSnapshot("welsh rugby dominates the weekend"))
	assert.Len(t, one, 1)
	assert.Equal(t, "Senior-focused content", one[0].Opportunity)

	// Either lexicon term closes the senior gap.
	assert.Empty(t, findWhiteSpaces(textSnapshot("elderly welsh choir goes viral")))
}

func TestPredictCollisions(t *testing.T) {
	collisions := predictCollisions(&PatternAnalysis{CrossPlatformTrends: []string{"greggs", "trains"}})
	assert.Len(t, collisions, 1)
	assert.Equal(t, "greggs meets trains", collisions[0].Collision)

	assert.Empty(t, predictCollisions(&PatternAnalysis{CrossPlatformTrends: []string{"greggs"}}))
}

func TestMemeticVelocity(t *testing.T) {
	snap := &models.Snapshot{
		Social: &models.SocialData{
			ByCommunity: map[string][]models.SocialPost{
				"CasualUK": {
					{Title: "a", Score: 100, Comments: 20},
					{Title: "b", Score: 60, Comments: 20},
				},
			},
		},
	}

	index := memeticVelocity(snap)
	assert.InDelta(t, 100.0, index["reddit_velocity"], 1e-9)

	// No video platform means no youtube key at all, not a zero.
	_, ok := index["youtube_velocity"]
	assert.False(t, ok)
}

func TestGenerateInsights_NilPatterns(t *testing.T) {
	synth := NewSynthesizer()

	insights, err := synth.GenerateInsights(textSnapshot("plain chat"), nil)
	assert.NoError(t, err)
	assert.Empty(t, insights.CulturalHypotheses)
	assert.Empty(t, insights.CounterTrends)
	assert.Empty(t, insights.CulturalCollisions)
}
