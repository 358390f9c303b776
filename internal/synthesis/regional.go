package synthesis

import (
	"strings"

	"github.com/pulse-uk/culture-pulse/internal/models"
)

const (
	nationTrendLimit    = 5
	nationTrendMaxChars = 100
	northSouthTolerance = 10
)

var (
	londonKeywords   = []string{"tube", "london", "westminster", "city", "zone"}
	regionalKeywords = []string{"manchester", "birmingham", "liverpool", "newcastle", "glasgow"}

	scottishIndicators = []string{"scotland", "scottish", "edinburgh", "glasgow", "snp", "independence"}
	welshIndicators    = []string{"wales", "welsh", "cardiff", "rugby", "cymru"}
	niIndicators       = []string{"northern ireland", "belfast", "stormont", "ulster"}

	northKeywords = []string{"manchester", "liverpool", "leeds", "newcastle", "sheffield", "yorkshire"}
	southKeywords = []string{"london", "brighton", "oxford", "cambridge", "kent", "surrey"}

	genZKeywords       = []string{"tiktok", "vibe", "aesthetic", "stan", "sus", "bussin", "rizz"}
	millennialKeywords = []string{"adulting", "netflix", "brunch", "90s", "nostalgia"}
	genXKeywords       = []string{"mortgage", "pension", "school", "career", "family"}
)

// LondonBalance compares London-centric keyword presence against the
// major regional cities.
type LondonBalance struct {
	LondonFocus   int    `json:"london_focus"`
	RegionalFocus int    `json:"regional_focus"`
	Balance       string `json:"balance"`
}

// NorthSouthDivide compares north-England and south-England keyword
// presence.
type NorthSouthDivide struct {
	NorthRepresentation int    `json:"north_representation"`
	SouthRepresentation int    `json:"south_representation"`
	Balance             string `json:"balance"`
}

// GenerationalGaps scores the snapshot against three generational
// slang lexicons. Each keyword present anywhere contributes one point.
type GenerationalGaps struct {
	GenZScore       int `json:"gen_z_score"`
	MillennialScore int `json:"millennial_score"`
	GenXScore       int `json:"gen_x_score"`
}

// RegionalAnalysis describes regional and demographic skew of the
// snapshot's content.
type RegionalAnalysis struct {
	LondonVsRegional LondonBalance       `json:"london_vs_regional"`
	NationSpecific   map[string][]string `json:"nation_specific"`
	NorthSouthDivide NorthSouthDivide    `json:"north_south_divide"`
	GenerationalGaps GenerationalGaps    `json:"generational_gaps"`
}

// RegionalCulture analyzes regional and demographic variation via
// case-insensitive keyword presence. This is deliberately lexical:
// substring counting against fixed lists, no geo resolution.
func (s *Synthesizer) RegionalCulture(snap *models.Snapshot) (*RegionalAnalysis, error) {
	if err := validateSnapshot(snap); err != nil {
		return nil, err
	}

	content := allContent(snap)
	joined := strings.ToLower(strings.Join(content, " "))

	londonScore := keywordPresence(joined, londonKeywords)
	regionalScore := keywordPresence(joined, regionalKeywords)

	balance := "Regionally balanced"
	if float64(londonScore) > 1.5*float64(regionalScore) {
		balance = "London-centric"
	}

	analysis := &RegionalAnalysis{
		LondonVsRegional: LondonBalance{
			LondonFocus:   londonScore,
			RegionalFocus: regionalScore,
			Balance:       balance,
		},
		NationSpecific: map[string][]string{
			"scotland":         nationTrends(content, scottishIndicators),
			"wales":            nationTrends(content, welshIndicators),
			"northern_ireland": nationTrends(content, niIndicators),
		},
		NorthSouthDivide: northSouthDivide(joined),
		GenerationalGaps: GenerationalGaps{
			GenZScore:       keywordHits(joined, genZKeywords),
			MillennialScore: keywordHits(joined, millennialKeywords),
			GenXScore:       keywordHits(joined, genXKeywords),
		},
	}

	return analysis, nil
}

// keywordPresence sums substring occurrence counts.
func keywordPresence(joined string, keywords []string) int {
	score := 0
	for _, keyword := range keywords {
		score += strings.Count(joined, strings.ToLower(keyword))
	}
	return score
}

// keywordHits counts how many keywords appear at least once.
func keywordHits(joined string, keywords []string) int {
	hits := 0
	for _, keyword := range keywords {
		if strings.Contains(joined, keyword) {
			hits++
		}
	}
	return hits
}

// nationTrends keeps up to nationTrendLimit texts containing any
// indicator term, truncated for display. A text matching several
// indicators is kept once.
func nationTrends(content []string, indicators []string) []string {
	trends := []string{}
	for _, text := range content {
		lower := strings.ToLower(text)
		for _, indicator := range indicators {
			if strings.Contains(lower, indicator) {
				trends = append(trends, truncate(text, nationTrendMaxChars))
				break
			}
		}
		if len(trends) == nationTrendLimit {
			break
		}
	}
	return trends
}

func northSouthDivide(joined string) NorthSouthDivide {
	north := keywordPresence(joined, northKeywords)
	south := keywordPresence(joined, southKeywords)

	balance := "Balanced"
	diff := north - south
	if diff < 0 {
		diff = -diff
	}
	if diff >= northSouthTolerance {
		if south > north {
			balance = "South-heavy"
		} else {
			balance = "North-heavy"
		}
	}

	return NorthSouthDivide{
		NorthRepresentation: north,
		SouthRepresentation: south,
		Balance:             balance,
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
