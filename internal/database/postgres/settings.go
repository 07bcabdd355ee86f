package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ClassPoint_Go/internal/domain"
	"github.com/osse101/ClassPoint_Go/internal/repository"
)

// SettingsRepository keeps versioned JSON settings in app_settings
type SettingsRepository struct {
	db *pgxpool.Pool
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

var _ repository.Settings = (*SettingsRepository)(nil)

// GetThresholds returns (nil, nil) when no thresholds have been saved
func (r *SettingsRepository) GetThresholds(ctx context.Context) (*domain.ThresholdConfig, error) {
	query := `SELECT value, version, updated_at FROM app_settings WHERE key = $1`

	var (
		raw []byte
		cfg domain.ThresholdConfig
	)
	err := r.db.QueryRow(ctx, query, SettingsKeyLevelThresholds).Scan(&raw, &cfg.Version, &cfg.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf(ErrMsgQueryFailedFmt, "thresholds", err)
	}
	if err := json.Unmarshal(raw, &cfg.Thresholds); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeFailedFmt, "thresholds", err)
	}
	return &cfg, nil
}

// SaveThresholds writes t when the stored version still equals
// expectedVersion. On a mismatch it returns the stored config and false.
func (r *SettingsRepository) SaveThresholds(ctx context.Context, t domain.LevelThresholds, expectedVersion int64) (*domain.ThresholdConfig, bool, error) {
	raw, err := json.Marshal(t)
	if err != nil {
		return nil, false, fmt.Errorf(ErrMsgEncodeFailedFmt, "thresholds", err)
	}

	var query string
	args := []any{SettingsKeyLevelThresholds, raw}
	if expectedVersion == 0 {
		query = `
			INSERT INTO app_settings (key, value, version, updated_at)
			VALUES ($1, $2, 1, NOW())
			ON CONFLICT (key) DO NOTHING
			RETURNING version, updated_at
		`
	} else {
		query = `
			UPDATE app_settings
			SET value = $2, version = version + 1, updated_at = NOW()
			WHERE key = $1 AND version = $3
			RETURNING version, updated_at
		`
		args = append(args, expectedVersion)
	}

	cfg := domain.ThresholdConfig{Thresholds: t}
	err = r.db.QueryRow(ctx, query, args...).Scan(&cfg.Version, &cfg.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		current, gerr := r.GetThresholds(ctx)
		return current, false, gerr
	}
	if err != nil {
		return nil, false, fmt.Errorf(ErrMsgUpdateFailedFmt, "thresholds", err)
	}
	return &cfg, true, nil
}
