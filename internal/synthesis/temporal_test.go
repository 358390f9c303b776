package synthesis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pulse-uk/culture-pulse/internal/models"
)

// topicSnapshot builds a snapshot whose only content is the word
// "greggs" repeated count times.
func topicSnapshot(count int) *models.Snapshot {
	return &models.Snapshot{
		Social: &models.SocialData{
			ByCommunity: map[string][]models.SocialPost{
				"CasualUK": {{Title: "pulse", Text: strings.TrimSpace(strings.Repeat("greggs ", count))}},
			},
		},
	}
}

func TestTracker_FirstObservationIsEmpty(t *testing.T) {
	tracker := NewTracker(0)

	analysis, err := tracker.Observe(topicSnapshot(10))
	assert.NoError(t, err)
	assert.Empty(t, analysis.VelocityAnalysis)
	assert.Empty(t, analysis.SleepingGiants)
	assert.Equal(t, 1, tracker.Len())
}

func TestTracker_VelocityAndSleepingGiant(t *testing.T) {
	tracker := NewTracker(0)

	_, err := tracker.Observe(topicSnapshot(10))
	assert.NoError(t, err)

	analysis, err := tracker.Observe(topicSnapshot(40))
	assert.NoError(t, err)

	velocity, ok := analysis.VelocityAnalysis["greggs"]
	assert.True(t, ok)
	assert.Equal(t, 40, velocity.CurrentScore)
	assert.InDelta(t, 3.0, velocity.Velocity, 1e-9)
	assert.Equal(t, "rising", velocity.Trend)

	// Low current frequency plus high velocity marks a sleeping giant.
	assert.Len(t, analysis.SleepingGiants, 1)
	assert.Equal(t, "greggs", analysis.SleepingGiants[0].Topic)
	assert.Equal(t, "Likely to trend within 24-48 hours", analysis.SleepingGiants[0].Prediction)
}

func TestTracker_FallingAndStableTrends(t *testing.T) {
	tracker := NewTracker(0)

	_, err := tracker.Observe(topicSnapshot(40))
	assert.NoError(t, err)

	analysis, err := tracker.Observe(topicSnapshot(10))
	assert.NoError(t, err)
	assert.Equal(t, "falling", analysis.VelocityAnalysis["greggs"].Trend)
	assert.Empty(t, analysis.SleepingGiants)

	analysis, err = tracker.Observe(topicSnapshot(10))
	assert.NoError(t, err)
	assert.Equal(t, "stable", analysis.VelocityAnalysis["greggs"].Trend)
}

func TestTracker_NewTopicCountsFromZero(t *testing.T) {
	tracker := NewTracker(0)

	_, err := tracker.Observe(topicSnapshot(5))
	assert.NoError(t, err)

	snap := &models.Snapshot{
		Social: &models.SocialData{
			ByCommunity: map[string][]models.SocialPost{
				"CasualUK": {{Text: "pasty pasty pasty"}},
			},
		},
	}
	analysis, err := tracker.Observe(snap)
	assert.NoError(t, err)

	// Previous frequency is 0, denominator floored at 1.
	assert.InDelta(t, 3.0, analysis.VelocityAnalysis["pasty"].Velocity, 1e-9)
}

func TestTracker_BoundedHistory(t *testing.T) {
	tracker := NewTracker(3)

	for i := 0; i < 5; i++ {
		_, err := tracker.Observe(topicSnapshot(i + 1))
		assert.NoError(t, err)
	}
	assert.Equal(t, 3, tracker.Len())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker(0)

	_, err := tracker.Observe(topicSnapshot(5))
	assert.NoError(t, err)
	_, err = tracker.Observe(topicSnapshot(5))
	assert.NoError(t, err)
	assert.Equal(t, 2, tracker.Len())

	tracker.Reset()
	assert.Equal(t, 0, tracker.Len())

	// The first observation after a reset has no baseline again.
	analysis, err := tracker.Observe(topicSnapshot(5))
	assert.NoError(t, err)
	assert.Empty(t, analysis.VelocityAnalysis)
}
