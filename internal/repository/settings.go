package repository

import (
	"context"

	"github.com/osse101/ClassPoint_Go/internal/domain"
)

// Settings persists the level thresholds.
type Settings interface {
	// GetThresholds returns (nil, nil) when nothing has been saved yet.
	GetThresholds(ctx context.Context) (*domain.ThresholdConfig, error)
	// SaveThresholds writes t only if the stored version equals expectedVersion
	// (0 means no row yet). It returns the stored config and false on a
	// version mismatch.
	SaveThresholds(ctx context.Context, t domain.LevelThresholds, expectedVersion int64) (*domain.ThresholdConfig, bool, error)
}
