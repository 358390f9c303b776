package synthesis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pulse-uk/culture-pulse/internal/models"
)

func TestExtractEntities_Classification(t *testing.T) {
	entities := extractEntities([]string{
		"London is buzzing again",
		"Guardian readers react to Boris Johnson",
		"Meeting on Monday as usual",
	})

	assert.Equal(t, 1, entities["places"]["London"])
	assert.Equal(t, 1, entities["organizations"]["Guardian"])
	// A capitalized run not in the place or organization lists is
	// bucketed as a person.
	assert.Equal(t, 1, entities["people"]["Boris Johnson"])

	// Weekday names are noise, not entities.
	assert.NotContains(t, entities["people"], "Monday")

	// "Meeting" starts a sentence, so it is extracted too; the pattern
	// has no notion of sentence position.
	assert.Contains(t, entities["people"], "Meeting")
}

func TestExtractEntities_CountsRepeats(t *testing.T) {
	entities := extractEntities([]string{
		"Manchester derby tonight",
		"Manchester braces for rain",
	})
	assert.Equal(t, 2, entities["places"]["Manchester"])
}

func TestEntityNodes(t *testing.T) {
	entities := map[string]map[string]int{
		"people":        {"Boris Johnson": 3},
		"places":        {"London": 5},
		"organizations": {},
	}

	nodes := entityNodes(entities)
	assert.Len(t, nodes, 2)

	byLabel := make(map[string]EntityNode)
	for _, node := range nodes {
		byLabel[node.Label] = node
	}

	assert.Equal(t, "places", byLabel["London"].Type)
	assert.Equal(t, 5, byLabel["London"].Weight)
	assert.Len(t, byLabel["London"].ID, 8)

	// IDs are content-derived, so the same label always gets the same ID.
	again := entityNodes(entities)
	byLabelAgain := make(map[string]EntityNode)
	for _, node := range again {
		byLabelAgain[node.Label] = node
	}
	assert.Equal(t, byLabel["London"].ID, byLabelAgain["London"].ID)
}

func TestMapNetwork_Influencers(t *testing.T) {
	synth := NewSynthesizer()

	snap := &models.Snapshot{
		Social: &models.SocialData{
			ByCommunity: map[string][]models.SocialPost{
				"CasualUK": {
					{Title: "first", Author: "alice", Score: 100},
					{Title: "second", Author: "alice", Score: 50},
					{Title: "third", Author: "bob", Score: 120},
					{Title: "fourth", Score: 999}, // anonymous, ignored
				},
			},
		},
		Video: &models.VideoData{
			Items: []models.VideoItem{
				{Title: "a", Channel: "FoodTourUK", Views: 1000},
				{Title: "b", Channel: "FoodTourUK", Views: 500},
				{Title: "c", Channel: "TransportExplained", Views: 2000},
			},
		},
	}

	network, err := synth.MapNetwork(snap)
	assert.NoError(t, err)

	users := network.InfluencerNetwork.TopRedditUsers
	assert.Len(t, users, 2)
	assert.Equal(t, Influencer{Name: "alice", Score: 150}, users[0])
	assert.Equal(t, Influencer{Name: "bob", Score: 120}, users[1])

	channels := network.InfluencerNetwork.TopYouTubeChannels
	assert.Len(t, channels, 2)
	assert.Equal(t, Influencer{Name: "TransportExplained", Score: 2000}, channels[0])
	assert.Equal(t, Influencer{Name: "FoodTourUK", Score: 1500}, channels[1])
}

func TestRankInfluencers_TieBreakAndLimit(t *testing.T) {
	scores := map[string]int{
		"zeta": 10, "alpha": 10, "mid": 20,
		"a": 1, "b": 2, "c": 3, "d": 4,
	}

	ranked := rankInfluencers(scores)
	assert.Len(t, ranked, influencerLimit)
	assert.Equal(t, "mid", ranked[0].Name)
	// Equal scores order lexically.
	assert.Equal(t, "alpha", ranked[1].Name)
	assert.Equal(t, "zeta", ranked[2].Name)
}

func TestMapNetwork_BridgeConcepts(t *testing.T) {
	synth := NewSynthesizer()

	network, err := synth.MapNetwork(&models.Snapshot{})
	assert.NoError(t, err)
	assert.Equal(t, []string{"technology", "culture", "politics", "entertainment", "sports"}, network.BridgeConcepts)
}
