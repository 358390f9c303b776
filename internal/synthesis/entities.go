package synthesis

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"sort"
	"strings"

	"github.com/pulse-uk/culture-pulse/internal/models"
)

const influencerLimit = 5

var (
	entityPattern = regexp.MustCompile(`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*`)

	weekdayNames = map[string]struct{}{
		"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
		"friday": {}, "saturday": {}, "sunday": {},
	}

	// Closed, static classification lists. Anything capitalized that
	// is not a known place or organization is bucketed as a person.
	// This is intentionally not named-entity recognition.
	knownPlaces = map[string]struct{}{
		"London": {}, "Manchester": {}, "Scotland": {}, "Wales": {},
		"England": {}, "UK": {}, "Birmingham": {}, "Glasgow": {},
	}
	knownOrganizations = map[string]struct{}{
		"BBC": {}, "NHS": {}, "Guardian": {}, "Reddit": {},
		"YouTube": {}, "Twitter": {},
	}

	bridgeConcepts = []string{"technology", "culture", "politics", "entertainment", "sports"}
)

// EntityNode is one entity in the semantic network.
type EntityNode struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Type   string `json:"type"` // "people", "places" or "organizations"
	Weight int    `json:"weight"`
}

// Influencer is a ranked content contributor.
type Influencer struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// InfluencerNetwork ranks forum authors by summed post score and video
// channels by summed views.
type InfluencerNetwork struct {
	TopRedditUsers     []Influencer `json:"top_reddit_users"`
	TopYouTubeChannels []Influencer `json:"top_youtube_channels"`
}

// NetworkAnalysis maps entities and contributor networks found in the
// snapshot.
type NetworkAnalysis struct {
	Entities          map[string]map[string]int `json:"entities"`
	Nodes             []EntityNode              `json:"nodes"`
	BridgeConcepts    []string                  `json:"bridge_concepts"`
	InfluencerNetwork InfluencerNetwork         `json:"influencer_network"`
}

// MapNetwork extracts capitalized-run "entities" from every text item,
// buckets them with the static classification lists and ranks the top
// contributors per platform.
func (s *Synthesizer) MapNetwork(snap *models.Snapshot) (*NetworkAnalysis, error) {
	if err := validateSnapshot(snap); err != nil {
		return nil, err
	}

	entities := extractEntities(allContent(snap))

	analysis := &NetworkAnalysis{
		Entities:          entities,
		Nodes:             entityNodes(entities),
		BridgeConcepts:    bridgeConcepts,
		InfluencerNetwork: mapInfluencers(snap),
	}
	return analysis, nil
}

func extractEntities(content []string) map[string]map[string]int {
	entities := map[string]map[string]int{
		"people":        {},
		"places":        {},
		"organizations": {},
	}

	for _, text := range content {
		for _, entity := range entityPattern.FindAllString(text, -1) {
			if _, weekday := weekdayNames[strings.ToLower(entity)]; weekday {
				continue
			}
			switch {
			case inSet(knownPlaces, entity):
				entities["places"][entity]++
			case inSet(knownOrganizations, entity):
				entities["organizations"][entity]++
			default:
				entities["people"][entity]++
			}
		}
	}

	return entities
}

func inSet(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}

func entityNodes(entities map[string]map[string]int) []EntityNode {
	nodes := []EntityNode{}
	for entityType, byName := range entities {
		for name, weight := range byName {
			sum := md5.Sum([]byte(name))
			nodes = append(nodes, EntityNode{
				ID:     hex.EncodeToString(sum[:])[:8],
				Label:  name,
				Type:   entityType,
				Weight: weight,
			})
		}
	}
	return nodes
}

func mapInfluencers(snap *models.Snapshot) InfluencerNetwork {
	network := InfluencerNetwork{
		TopRedditUsers:     []Influencer{},
		TopYouTubeChannels: []Influencer{},
	}

	if snap.Social != nil {
		authors := make(map[string]int)
		for _, posts := range snap.Social.ByCommunity {
			for _, post := range posts {
				if post.Author != "" {
					authors[post.Author] += post.Score
				}
			}
		}
		network.TopRedditUsers = rankInfluencers(authors)
	}

	if snap.Video != nil {
		channels := make(map[string]int)
		for _, video := range snap.Video.Items {
			if video.Channel != "" {
				channels[video.Channel] += video.Views
			}
		}
		network.TopYouTubeChannels = rankInfluencers(channels)
	}

	return network
}

func rankInfluencers(scores map[string]int) []Influencer {
	ranked := make([]Influencer, 0, len(scores))
	for name, score := range scores {
		ranked = append(ranked, Influencer{Name: name, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > influencerLimit {
		ranked = ranked[:influencerLimit]
	}
	return ranked
}
