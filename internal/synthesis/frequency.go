package synthesis

import (
	"regexp"
	"sort"
	"strings"
)

const (
	themeLimit = 10
	topicLimit = 50

	// An n-gram seen more than twice is worth reporting; below ten
	// occurrences it is still "emerging", at ten it is "established".
	emergingMinFrequency = 2
	establishedThreshold = 10
	emergingThemeLimit   = 10
)

var (
	wordPattern    = regexp.MustCompile(`\b[a-z]{4,}\b`)
	bigramPattern  = regexp.MustCompile(`\b[a-z]+\s+[a-z]+\b`)
	trigramPattern = regexp.MustCompile(`\b[a-z]+\s+[a-z]+\s+[a-z]+\b`)

	stopWords = map[string]struct{}{
		"that": {}, "this": {}, "with": {}, "from": {}, "have": {},
		"been": {}, "what": {}, "when": {}, "where": {}, "which": {},
		"their": {}, "would": {}, "could": {}, "should": {},
	}
)

// EmergingTheme is a frequency-ranked n-gram phrase.
type EmergingTheme struct {
	Theme          string `json:"theme"`
	Frequency      int    `json:"frequency"`
	Classification string `json:"classification"` // "emerging" or "established"
}

type wordCount struct {
	word  string
	count int
}

func countWords(texts []string) map[string]int {
	joined := strings.ToLower(strings.Join(texts, " "))
	counts := make(map[string]int)
	for _, word := range wordPattern.FindAllString(joined, -1) {
		if _, stop := stopWords[word]; stop {
			continue
		}
		counts[word]++
	}
	return counts
}

// rankedWords sorts descending by count. Ties are broken lexically so
// output is deterministic; callers must not read meaning into tie order.
func rankedWords(counts map[string]int) []wordCount {
	ranked := make([]wordCount, 0, len(counts))
	for word, count := range counts {
		ranked = append(ranked, wordCount{word, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].word < ranked[j].word
	})
	return ranked
}

// extractThemes returns the top single-word themes for a body of text:
// alphabetic tokens of length >= 4, stop words removed, ranked by
// frequency.
func extractThemes(texts []string) []string {
	ranked := rankedWords(countWords(texts))
	if len(ranked) > themeLimit {
		ranked = ranked[:themeLimit]
	}
	themes := make([]string, 0, len(ranked))
	for _, wc := range ranked {
		themes = append(themes, wc.word)
	}
	return themes
}

// extractTopics returns the top topics with their raw frequencies.
func extractTopics(texts []string) map[string]int {
	ranked := rankedWords(countWords(texts))
	if len(ranked) > topicLimit {
		ranked = ranked[:topicLimit]
	}
	topics := make(map[string]int, len(ranked))
	for _, wc := range ranked {
		topics[wc.word] = wc.count
	}
	return topics
}

// emergingThemes extracts two- and three-word phrases by scanning the
// joined lowercase text with the n-gram patterns. The scan is a raw
// leftmost non-overlapping regex pass over the untokenized text, so
// phrases spanning item boundaries are counted too; that overcount is
// the defined behavior.
func emergingThemes(texts []string) []EmergingTheme {
	joined := strings.ToLower(strings.Join(texts, " "))

	counts := make(map[string]int)
	for _, phrase := range bigramPattern.FindAllString(joined, -1) {
		counts[phrase]++
	}
	for _, phrase := range trigramPattern.FindAllString(joined, -1) {
		counts[phrase]++
	}

	ranked := rankedWords(counts)
	if len(ranked) > emergingThemeLimit {
		ranked = ranked[:emergingThemeLimit]
	}

	emerging := make([]EmergingTheme, 0, len(ranked))
	for _, wc := range ranked {
		if wc.count <= emergingMinFrequency {
			continue
		}
		classification := "emerging"
		if wc.count >= establishedThreshold {
			classification = "established"
		}
		emerging = append(emerging, EmergingTheme{
			Theme:          wc.word,
			Frequency:      wc.count,
			Classification: classification,
		})
	}
	return emerging
}
