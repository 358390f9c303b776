package sources

import (
	"context"

	"github.com/pulse-uk/culture-pulse/internal/models"
)

// Collector fetches one platform's records and writes them into the
// snapshot. A disabled collector (missing credentials) contributes
// nothing; the snapshot's platform stays nil.
type Collector interface {
	GetName() string
	IsEnabled() bool
	Collect(ctx context.Context, snap *models.Snapshot) error
}
