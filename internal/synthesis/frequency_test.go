package synthesis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name     string
		texts    []string
		expected map[string]int
	}{
		{
			name:     "lowercases and counts",
			texts:    []string{"Greggs opens", "greggs closes"},
			expected: map[string]int{"greggs": 2, "opens": 1, "closes": 1},
		},
		{
			name:     "short words ignored",
			texts:    []string{"the cat sat on big mats"},
			expected: map[string]int{"mats": 1},
		},
		{
			name:     "stop words removed",
			texts:    []string{"that this with from have been trains"},
			expected: map[string]int{"trains": 1},
		},
		{
			name:     "digits break tokens",
			texts:    []string{"covid19 lockdown"},
			expected: map[string]int{"lockdown": 1},
		},
		{
			name:     "empty input",
			texts:    nil,
			expected: map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, countWords(tt.texts))
		})
	}
}

func TestExtractThemes_RankingAndLimit(t *testing.T) {
	texts := []string{
		strings.Repeat("trains ", 5),
		strings.Repeat("weather ", 3),
		"pasty",
	}

	themes := extractThemes(texts)
	assert.Equal(t, []string{"trains", "weather", "pasty"}, themes)

	// Ties break lexically so repeated runs are deterministic.
	tied := extractThemes([]string{"zebra apple mango"})
	assert.Equal(t, []string{"apple", "mango", "zebra"}, tied)

	var many []string
	for _, word := range []string{
		"alpha", "bravo", "charlie", "delta", "echofoxtrot", "golf",
		"hotel", "india", "juliet", "kilo", "lima", "mike",
	} {
		many = append(many, word)
	}
	assert.Len(t, extractThemes(many), themeLimit)
}

func TestExtractTopics_KeepsFrequencies(t *testing.T) {
	topics := extractTopics([]string{strings.Repeat("greggs ", 4) + "pasty"})
	assert.Equal(t, 4, topics["greggs"])
	assert.Equal(t, 1, topics["pasty"])
}

func TestEmergingThemes(t *testing.T) {
	// Three identical titles joined into one text yield each adjacent
	// word pair three times.
	texts := []string{
		"greggs festive bake returns",
		"greggs festive bake returns",
		"greggs festive bake returns",
	}

	themes := emergingThemes(texts)

	byTheme := make(map[string]EmergingTheme)
	for _, theme := range themes {
		byTheme[theme.Theme] = theme
	}

	assert.Contains(t, byTheme, "greggs festive")
	assert.Equal(t, 3, byTheme["greggs festive"].Frequency)
	assert.Equal(t, "emerging", byTheme["greggs festive"].Classification)

	// A phrase seen only twice stays below the reporting floor.
	assert.Empty(t, emergingThemes([]string{"festive bake", "festive bake"}))
}

func TestEmergingThemes_EstablishedAtTen(t *testing.T) {
	texts := make([]string, 10)
	for i := range texts {
		texts[i] = "festive bake"
	}

	themes := emergingThemes(texts)
	assert.NotEmpty(t, themes)

	// The top phrase is the bigram itself, seen once per title and now
	// established.
	assert.Equal(t, "festive bake", themes[0].Theme)
	assert.Equal(t, 10, themes[0].Frequency)
	assert.Equal(t, "established", themes[0].Classification)
}
