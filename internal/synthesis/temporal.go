package synthesis

import (
	"sync"

	"github.com/pulse-uk/culture-pulse/internal/models"
)

const (
	// DefaultHistorySize bounds the tracker's snapshot ring. One day
	// of 4-hourly runs plus headroom; older entries are discarded.
	DefaultHistorySize = 24

	risingThreshold  = 0.1
	fallingThreshold = -0.1

	sleepingGiantMaxScore    = 100
	sleepingGiantMinVelocity = 0.5
	sleepingGiantPrediction  = "Likely to trend within 24-48 hours"
)

// TopicVelocity is the rate of change of a topic between the two most
// recent observations.
type TopicVelocity struct {
	CurrentScore int     `json:"current_score"`
	Velocity     float64 `json:"velocity"`
	Trend        string  `json:"trend"` // "rising", "falling" or "stable"
}

// SleepingGiant is a low-frequency topic accelerating fast enough that
// it is predicted to trend soon.
type SleepingGiant struct {
	Topic      string  `json:"topic"`
	Velocity   float64 `json:"velocity"`
	Prediction string  `json:"prediction"`
}

// TemporalAnalysis is the result of one tracker observation. With
// fewer than two snapshots in history both fields are empty.
type TemporalAnalysis struct {
	VelocityAnalysis map[string]TopicVelocity `json:"velocity_analysis"`
	SleepingGiants   []SleepingGiant          `json:"sleeping_giants"`
}

// Tracker accumulates topic-frequency snapshots across calls and
// computes per-topic velocity. It is the only stateful part of the
// engine: callers own a Tracker for the process lifetime and may share
// it across goroutines; history mutation is guarded by a mutex. The
// history is a bounded ring so long-running processes do not leak.
type Tracker struct {
	mu       sync.Mutex
	history  []map[string]int
	capacity int
}

// NewTracker creates a tracker keeping at most capacity snapshots.
// A non-positive capacity selects DefaultHistorySize.
func NewTracker(capacity int) *Tracker {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &Tracker{capacity: capacity}
}

// Observe appends the snapshot's topic frequencies to the history and,
// when at least two observations exist, computes velocity for every
// topic in the current map. A topic absent from the previous
// observation has previous frequency 0.
func (t *Tracker) Observe(snap *models.Snapshot) (*TemporalAnalysis, error) {
	if err := validateSnapshot(snap); err != nil {
		return nil, err
	}

	current := extractTopics(allContent(snap))

	t.mu.Lock()
	defer t.mu.Unlock()

	t.history = append(t.history, current)
	if len(t.history) > t.capacity {
		t.history = t.history[len(t.history)-t.capacity:]
	}

	analysis := &TemporalAnalysis{
		VelocityAnalysis: map[string]TopicVelocity{},
		SleepingGiants:   []SleepingGiant{},
	}

	if len(t.history) < 2 {
		return analysis, nil
	}

	previous := t.history[len(t.history)-2]
	for topic, score := range current {
		prev := previous[topic]
		velocity := float64(score-prev) / float64(max(prev, 1))

		trend := "stable"
		if velocity > risingThreshold {
			trend = "rising"
		} else if velocity < fallingThreshold {
			trend = "falling"
		}

		analysis.VelocityAnalysis[topic] = TopicVelocity{
			CurrentScore: score,
			Velocity:     velocity,
			Trend:        trend,
		}

		if score < sleepingGiantMaxScore && velocity > sleepingGiantMinVelocity {
			analysis.SleepingGiants = append(analysis.SleepingGiants, SleepingGiant{
				Topic:      topic,
				Velocity:   velocity,
				Prediction: sleepingGiantPrediction,
			})
		}
	}

	return analysis, nil
}

// Len reports how many snapshots are currently held.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.history)
}

// Reset discards all accumulated history.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.history = nil
}
