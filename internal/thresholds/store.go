// Package thresholds owns the level threshold configuration: validation,
// auto-correction and versioned persistence.
package thresholds

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/osse101/ClassPoint_Go/internal/domain"
	"github.com/osse101/ClassPoint_Go/internal/event"
	"github.com/osse101/ClassPoint_Go/internal/logger"
	"github.com/osse101/ClassPoint_Go/internal/repository"
	"github.com/osse101/ClassPoint_Go/internal/retry"
)

// Service reads and updates the level thresholds
type Service interface {
	Get(ctx context.Context) (domain.ThresholdConfig, error)
	Thresholds(ctx context.Context) (domain.LevelThresholds, error)
	Set(ctx context.Context, candidate domain.LevelThresholds) (domain.ThresholdConfig, error)
}

// Store caches the current configuration and persists changes with an
// optimistic version check.
type Store struct {
	repo      repository.Settings
	runner    *retry.Runner
	publisher event.Publisher
	defaults  domain.LevelThresholds

	current atomic.Pointer[domain.ThresholdConfig]
	// writes are serialized in-process; the version check covers other processes
	writeMu sync.Mutex
}

// NewStore creates a threshold store. defaults are used until a
// configuration is saved; publisher may be nil.
func NewStore(repo repository.Settings, runner *retry.Runner, publisher event.Publisher, defaults domain.LevelThresholds) *Store {
	if runner == nil {
		runner = retry.New(retry.DefaultPolicy())
	}
	return &Store{
		repo:      repo,
		runner:    runner,
		publisher: publisher,
		defaults:  defaults,
	}
}

// Load reads the persisted configuration, falling back to the defaults.
func (s *Store) Load(ctx context.Context) (domain.ThresholdConfig, error) {
	var stored *domain.ThresholdConfig
	err := s.runner.Do(ctx, "load_thresholds", func(ctx context.Context) error {
		var err error
		stored, err = s.repo.GetThresholds(ctx)
		return err
	})
	if err != nil {
		return domain.ThresholdConfig{}, domain.NewPersistenceError(ErrMsgLoadFailed, err)
	}

	cfg := domain.ThresholdConfig{Thresholds: s.defaults}
	if stored != nil {
		cfg = *stored
		if verr := Validate(cfg.Thresholds); verr != nil {
			logger.FromContext(ctx).Warn(LogMsgStoredInvalid, "thresholds", cfg.Thresholds, "error", verr)
			cfg.Thresholds = Normalize(cfg.Thresholds)
		}
	}

	s.current.Store(&cfg)
	logger.FromContext(ctx).Info(LogMsgLoaded, "thresholds", cfg.Thresholds, "version", cfg.Version)
	return cfg, nil
}

// Get returns the current configuration, loading it on first use.
func (s *Store) Get(ctx context.Context) (domain.ThresholdConfig, error) {
	if cfg := s.current.Load(); cfg != nil {
		return *cfg, nil
	}
	return s.Load(ctx)
}

// Thresholds returns only the threshold values of Get.
func (s *Store) Thresholds(ctx context.Context) (domain.LevelThresholds, error) {
	cfg, err := s.Get(ctx)
	if err != nil {
		return domain.LevelThresholds{}, err
	}
	return cfg.Thresholds, nil
}

// Set auto-corrects candidate, validates the result and persists it.
// A concurrent change made elsewhere yields domain.ErrThresholdConflict
// after the store has reloaded the winning configuration.
func (s *Store) Set(ctx context.Context, candidate domain.LevelThresholds) (domain.ThresholdConfig, error) {
	log := logger.FromContext(ctx)

	if candidate.Hat != 0 {
		return domain.ThresholdConfig{}, fmt.Errorf("%w (got %d)", domain.ErrHatThresholdNonZero, candidate.Hat)
	}

	corrected := Normalize(candidate)
	if err := Validate(corrected); err != nil {
		return domain.ThresholdConfig{}, err
	}
	if corrected != candidate {
		log.Info(LogMsgAutoCorrected, "requested", candidate, "corrected", corrected)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current, err := s.Get(ctx)
	if err != nil {
		return domain.ThresholdConfig{}, err
	}

	var (
		saved *domain.ThresholdConfig
		ok    bool
	)
	err = s.runner.Do(ctx, "save_thresholds", func(ctx context.Context) error {
		var err error
		saved, ok, err = s.repo.SaveThresholds(ctx, corrected, current.Version)
		return err
	})
	if err != nil {
		return domain.ThresholdConfig{}, domain.NewPersistenceError(ErrMsgSaveFailed, err)
	}

	if !ok {
		log.Warn(LogMsgVersionConflict, "expected_version", current.Version)
		if _, lerr := s.Load(ctx); lerr != nil {
			return domain.ThresholdConfig{}, errors.Join(domain.ErrThresholdConflict, lerr)
		}
		return domain.ThresholdConfig{}, domain.ErrThresholdConflict
	}

	s.current.Store(saved)
	log.Info(LogMsgSaved, "thresholds", saved.Thresholds, "version", saved.Version)

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewThresholdsUpdatedEvent(*saved))
	}
	return *saved, nil
}

// Normalize raises negative values to zero and then pushes each threshold
// above the previous one: nay_mam to at least 1, cay_con above nay_mam and
// cay_to above cay_con. Hat is forced to 0.
func Normalize(t domain.LevelThresholds) domain.LevelThresholds {
	t.Hat = 0
	t.NayMam = max(t.NayMam, 0)
	t.CayCon = max(t.CayCon, 0)
	t.CayTo = max(t.CayTo, 0)

	if t.NayMam < 1 {
		t.NayMam = 1
	}
	if t.CayCon <= t.NayMam {
		t.CayCon = t.NayMam + 1
	}
	if t.CayTo <= t.CayCon {
		t.CayTo = t.CayCon + 1
	}
	return t
}

// Validate checks 0 = hat < nay_mam < cay_con < cay_to without correcting.
func Validate(t domain.LevelThresholds) error {
	if t.Hat != 0 {
		return fmt.Errorf("%w (got %d)", domain.ErrHatThresholdNonZero, t.Hat)
	}
	if t.Hat < t.NayMam && t.NayMam < t.CayCon && t.CayCon < t.CayTo {
		return nil
	}
	return fmt.Errorf("%w: %d/%d/%d/%d", domain.ErrInvalidThresholds, t.Hat, t.NayMam, t.CayCon, t.CayTo)
}
