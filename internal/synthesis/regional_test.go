package synthesis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pulse-uk/culture-pulse/internal/models"
)

func textSnapshot(texts ...string) *models.Snapshot {
	posts := make([]models.SocialPost, 0, len(texts))
	for _, text := range texts {
		posts = append(posts, models.SocialPost{Text: text})
	}
	return &models.Snapshot{
		Social: &models.SocialData{
			ByCommunity: map[string][]models.SocialPost{"CasualUK": posts},
		},
	}
}

func TestRegionalCulture_LondonCentric(t *testing.T) {
	synth := NewSynthesizer()

	snap := textSnapshot("london london london mentions but manchester only once")
	analysis, err := synth.RegionalCulture(snap)
	assert.NoError(t, err)

	assert.Equal(t, 3, analysis.LondonVsRegional.LondonFocus)
	assert.Equal(t, 1, analysis.LondonVsRegional.RegionalFocus)
	assert.Equal(t, "London-centric", analysis.LondonVsRegional.Balance)
}

func TestRegionalCulture_RegionallyBalanced(t *testing.T) {
	synth := NewSynthesizer()

	snap := textSnapshot("london and manchester both mentioned")
	analysis, err := synth.RegionalCulture(snap)
	assert.NoError(t, err)
	assert.Equal(t, "Regionally balanced", analysis.LondonVsRegional.Balance)
}

func TestRegionalCulture_NationSpecific(t *testing.T) {
	synth := NewSynthesizer()

	long := "Scotland announced a new policy today " + strings.Repeat("and the debate continues ", 5)
	snap := textSnapshot(
		long,
		"Cardiff hosts the rugby final",
		"Stormont talks resume in Belfast",
		"Nothing regional here",
	)

	analysis, err := synth.RegionalCulture(snap)
	assert.NoError(t, err)

	assert.Len(t, analysis.NationSpecific["scotland"], 1)
	assert.Len(t, analysis.NationSpecific["wales"], 1)
	assert.Len(t, analysis.NationSpecific["northern_ireland"], 1)

	// Matched texts are truncated for display.
	assert.LessOrEqual(t, len([]rune(analysis.NationSpecific["scotland"][0])), nationTrendMaxChars)

	// A text matching two indicators of the same nation is kept once.
	assert.Equal(t, "Cardiff hosts the rugby final", analysis.NationSpecific["wales"][0])
}

func TestRegionalCulture_NorthSouthDivide(t *testing.T) {
	synth := NewSynthesizer()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "small difference is balanced",
			text:     strings.Repeat("leeds ", 5) + strings.Repeat("london ", 8),
			expected: "Balanced",
		},
		{
			name:     "south heavy",
			text:     strings.Repeat("london ", 12) + "leeds",
			expected: "South-heavy",
		},
		{
			name:     "north heavy",
			text:     strings.Repeat("yorkshire ", 15) + "london",
			expected: "North-heavy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, err := synth.RegionalCulture(textSnapshot(tt.text))
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, analysis.NorthSouthDivide.Balance)
		})
	}
}

func TestRegionalCulture_GenerationalGaps(t *testing.T) {
	synth := NewSynthesizer()

	snap := textSnapshot(
		"The tiktok aesthetic is everywhere",
		"Netflix and brunch culture",
		"Worried about my mortgage and pension",
	)

	analysis, err := synth.RegionalCulture(snap)
	assert.NoError(t, err)

	// Presence scoring: each keyword counts once no matter how often it
	// appears.
	assert.Equal(t, 2, analysis.GenerationalGaps.GenZScore)
	assert.Equal(t, 2, analysis.GenerationalGaps.MillennialScore)
	assert.Equal(t, 2, analysis.GenerationalGaps.GenXScore)
}
