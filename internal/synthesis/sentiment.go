package synthesis

import "strings"

// Lexicons for the polarity estimate. Deliberately small and lexical;
// the scoring contract depends on this level of sophistication, not on
// a trained model.
var (
	positiveWords = []string{
		"good", "great", "excellent", "love", "awesome", "fantastic",
		"helpful", "works", "solved", "success", "best", "happy", "win",
	}
	negativeWords = []string{
		"bad", "terrible", "awful", "hate", "broken", "error", "fail",
		"problem", "issue", "worst", "angry", "loss",
	}
)

// sentimentPolarity estimates polarity of a text in [-1, 1] by counting
// lexicon hits: (positive - negative) / matched. Text matching no
// lexicon entry is neutral (0), which also serves as the default when
// there is nothing to score.
func sentimentPolarity(text string) float64 {
	lower := strings.ToLower(text)

	positive, negative := 0, 0
	for _, word := range positiveWords {
		if strings.Contains(lower, word) {
			positive++
		}
	}
	for _, word := range negativeWords {
		if strings.Contains(lower, word) {
			negative++
		}
	}

	matched := positive + negative
	if matched == 0 {
		return 0
	}
	return float64(positive-negative) / float64(matched)
}
