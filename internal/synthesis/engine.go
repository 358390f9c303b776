// Package synthesis turns a snapshot of UK social, video and news
// records into ranked cultural intelligence: cross-platform patterns,
// topic velocity, regional skew, entity networks, novel insights and
// brand opportunity scores.
//
// Every analysis is a pure function of the snapshot it is given. The
// only stateful component is Tracker, which accumulates topic counts
// across calls to compute velocity. All outputs are plain structs of
// primitives so callers can serialize them directly.
package synthesis

import (
	"errors"

	"github.com/pulse-uk/culture-pulse/internal/models"
)

// ErrInvalidSnapshot is returned when an analysis is handed a nil
// snapshot. Missing platforms, empty partitions and absent fields are
// never errors; they degrade to empty results.
var ErrInvalidSnapshot = errors.New("synthesis: nil snapshot")

// Synthesizer runs the analysis pipeline. It holds no state and is
// safe for concurrent use across independent snapshots.
type Synthesizer struct{}

// NewSynthesizer creates a new synthesis engine.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

func validateSnapshot(snap *models.Snapshot) error {
	if snap == nil {
		return ErrInvalidSnapshot
	}
	return nil
}
