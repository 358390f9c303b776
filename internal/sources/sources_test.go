package sources

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pulse-uk/culture-pulse/internal/models"
)

func TestRedditCollector_GetName(t *testing.T) {
	collector := NewRedditCollector("client_id", "client_secret", "agent", []string{"CasualUK"}, 5, 10)
	assert.Equal(t, "reddit", collector.GetName())
}

func TestRedditCollector_IsEnabled(t *testing.T) {
	tests := []struct {
		name         string
		clientID     string
		clientSecret string
		expected     bool
	}{
		{
			name:         "Both credentials provided",
			clientID:     "client_id",
			clientSecret: "client_secret",
			expected:     true,
		},
		{
			name:         "Missing client ID",
			clientID:     "",
			clientSecret: "client_secret",
			expected:     false,
		},
		{
			name:         "Missing client secret",
			clientID:     "client_id",
			clientSecret: "",
			expected:     false,
		},
		{
			name:         "Both missing",
			clientID:     "",
			clientSecret: "",
			expected:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector := NewRedditCollector(tt.clientID, tt.clientSecret, "agent", []string{"CasualUK"}, 5, 10)
			assert.Equal(t, tt.expected, collector.IsEnabled())
		})
	}
}

func TestRedditCollector_DisabledCollectIsNoop(t *testing.T) {
	collector := NewRedditCollector("", "", "agent", []string{"CasualUK"}, 5, 10)

	snap := &models.Snapshot{}
	err := collector.Collect(context.Background(), snap)
	assert.NoError(t, err)
	assert.Nil(t, snap.Social)
}

func TestYouTubeCollector_GetName(t *testing.T) {
	collector := NewYouTubeCollector("api_key", 10)
	assert.Equal(t, "youtube", collector.GetName())
}

func TestYouTubeCollector_IsEnabled(t *testing.T) {
	assert.True(t, NewYouTubeCollector("api_key", 10).IsEnabled())
	assert.False(t, NewYouTubeCollector("", 10).IsEnabled())
}

func TestYouTubeCollector_DisabledCollectIsNoop(t *testing.T) {
	collector := NewYouTubeCollector("", 10)

	snap := &models.Snapshot{}
	err := collector.Collect(context.Background(), snap)
	assert.NoError(t, err)
	assert.Nil(t, snap.Video)
}

func TestGuardianCollector_GetName(t *testing.T) {
	collector := NewGuardianCollector("api_key", []string{"politics"}, 10, 5)
	assert.Equal(t, "guardian", collector.GetName())
}

func TestGuardianCollector_IsEnabled(t *testing.T) {
	assert.True(t, NewGuardianCollector("api_key", nil, 10, 5).IsEnabled())
	assert.False(t, NewGuardianCollector("", nil, 10, 5).IsEnabled())
}

func TestAtoiOrZero(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "Valid number", input: "45000", expected: 45000},
		{name: "Empty string", input: "", expected: 0},
		{name: "Garbage", input: "n/a", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, atoiOrZero(tt.input))
		})
	}
}
