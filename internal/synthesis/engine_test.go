package synthesis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pulse-uk/culture-pulse/internal/models"
)

func TestSynthesizer_NilSnapshot(t *testing.T) {
	synth := NewSynthesizer()

	_, err := synth.CrossPlatformPatterns(nil)
	assert.ErrorIs(t, err, ErrInvalidSnapshot)

	_, err = synth.GenerateInsights(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidSnapshot)

	_, err = synth.RegionalCulture(nil)
	assert.ErrorIs(t, err, ErrInvalidSnapshot)

	_, err = synth.MapNetwork(nil)
	assert.ErrorIs(t, err, ErrInvalidSnapshot)

	_, err = synth.ScoreOpportunities(nil, nil, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidSnapshot)

	_, err = synth.ExtractSources(nil)
	assert.ErrorIs(t, err, ErrInvalidSnapshot)

	tracker := NewTracker(0)
	_, err = tracker.Observe(nil)
	assert.ErrorIs(t, err, ErrInvalidSnapshot)
	assert.Equal(t, 0, tracker.Len())
}

func TestSynthesizer_EmptySnapshot(t *testing.T) {
	synth := NewSynthesizer()
	snap := &models.Snapshot{}

	patterns, err := synth.CrossPlatformPatterns(snap)
	assert.NoError(t, err)
	assert.Empty(t, patterns.CrossPlatformTrends)
	assert.Empty(t, patterns.ViralCandidates)
	assert.Empty(t, patterns.EmergingThemes)

	insights, err := synth.GenerateInsights(snap, patterns)
	assert.NoError(t, err)
	assert.Empty(t, insights.CulturalHypotheses)
	assert.Empty(t, insights.MemeticVelocityIndex)
	// A corpus with no content mentions nothing, so every audience gap
	// is open.
	assert.Len(t, insights.WhiteSpaces, 2)

	regional, err := synth.RegionalCulture(snap)
	assert.NoError(t, err)
	assert.Equal(t, "Regionally balanced", regional.LondonVsRegional.Balance)
	assert.Equal(t, "Balanced", regional.NorthSouthDivide.Balance)

	network, err := synth.MapNetwork(snap)
	assert.NoError(t, err)
	assert.Empty(t, network.Nodes)
	assert.Empty(t, network.InfluencerNetwork.TopRedditUsers)

	citations, err := synth.ExtractSources(snap)
	assert.NoError(t, err)
	assert.Equal(t, 0, citations.SourceSummary.TotalSources)
}
