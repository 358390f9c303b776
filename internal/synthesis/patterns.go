package synthesis

import (
	"sort"
	"time"

	"github.com/pulse-uk/culture-pulse/internal/models"
)

const (
	exclusiveThemeLimit = 5
	viralCandidateLimit = 5

	socialViralRatio = 10.0
	videoViralRatio  = 0.05
)

// PatternAnalysis is the result of cross-platform pattern recognition.
// CrossPlatformTrends and PlatformDivergence are derived from set
// operations; their ordering is unspecified and callers should rely on
// membership only.
type PatternAnalysis struct {
	Timestamp           time.Time           `json:"timestamp"`
	EmergingThemes      []EmergingTheme     `json:"emerging_themes"`
	CrossPlatformTrends []string            `json:"cross_platform_trends"`
	PlatformDivergence  map[string][]string `json:"platform_divergence"`
	ViralCandidates     []ViralCandidate    `json:"viral_candidates"`
}

// ViralCandidate is a record whose engagement ratio exceeds the
// platform threshold.
type ViralCandidate struct {
	Platform        string  `json:"platform"`
	Title           string  `json:"title"`
	EngagementRatio float64 `json:"engagement_ratio"`
	URL             string  `json:"url,omitempty"`
	Views           int     `json:"views,omitempty"`
}

// CrossPlatformPatterns detects themes shared by all three platforms,
// themes exclusive to one, viral candidates and emerging phrases.
func (s *Synthesizer) CrossPlatformPatterns(snap *models.Snapshot) (*PatternAnalysis, error) {
	if err := validateSnapshot(snap); err != nil {
		return nil, err
	}

	socialThemes := toSet(extractThemes(socialTitles(snap)))
	videoThemes := toSet(extractThemes(videoTitles(snap)))
	newsThemes := toSet(extractThemes(newsTitles(snap)))

	analysis := &PatternAnalysis{
		Timestamp:           time.Now(),
		CrossPlatformTrends: intersect(socialThemes, videoThemes, newsThemes),
		PlatformDivergence: map[string][]string{
			"reddit_unique":   subtract(socialThemes, videoThemes, newsThemes),
			"youtube_unique":  subtract(videoThemes, socialThemes, newsThemes),
			"guardian_unique": subtract(newsThemes, socialThemes, videoThemes),
		},
		ViralCandidates: detectViralCandidates(snap),
		EmergingThemes:  emergingThemes(allContent(snap)),
	}

	return analysis, nil
}

func toSet(themes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(themes))
	for _, theme := range themes {
		set[theme] = struct{}{}
	}
	return set
}

func intersect(a, b, c map[string]struct{}) []string {
	common := []string{}
	for theme := range a {
		if _, inB := b[theme]; !inB {
			continue
		}
		if _, inC := c[theme]; !inC {
			continue
		}
		common = append(common, theme)
	}
	return common
}

// subtract returns up to exclusiveThemeLimit themes present in a but
// in neither b nor c.
func subtract(a, b, c map[string]struct{}) []string {
	only := []string{}
	for theme := range a {
		if _, inB := b[theme]; inB {
			continue
		}
		if _, inC := c[theme]; inC {
			continue
		}
		only = append(only, theme)
		if len(only) == exclusiveThemeLimit {
			break
		}
	}
	return only
}

// detectViralCandidates flags records with an outsized engagement
// ratio: forum score per comment, or video likes per view. The
// denominator is floored at 1 so malformed records never divide by
// zero.
func detectViralCandidates(snap *models.Snapshot) []ViralCandidate {
	candidates := []ViralCandidate{}

	if snap.Social != nil {
		for _, posts := range snap.Social.ByCommunity {
			for _, post := range posts {
				ratio := float64(post.Score) / float64(max(post.Comments, 1))
				if post.Comments > 0 && ratio > socialViralRatio {
					candidates = append(candidates, ViralCandidate{
						Platform:        "Reddit",
						Title:           post.Title,
						EngagementRatio: ratio,
						URL:             post.URL,
					})
				}
			}
		}
	}

	if snap.Video != nil {
		for _, video := range snap.Video.Items {
			ratio := float64(video.Likes) / float64(max(video.Views, 1))
			if video.Views > 0 && ratio > videoViralRatio {
				candidates = append(candidates, ViralCandidate{
					Platform:        "YouTube",
					Title:           video.Title,
					EngagementRatio: ratio,
					Views:           video.Views,
				})
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].EngagementRatio > candidates[j].EngagementRatio
	})
	if len(candidates) > viralCandidateLimit {
		candidates = candidates[:viralCandidateLimit]
	}
	return candidates
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
