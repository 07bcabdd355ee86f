package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/ClassPoint_Go/internal/concurrency"
	"github.com/osse101/ClassPoint_Go/internal/config"
	"github.com/osse101/ClassPoint_Go/internal/event"
	"github.com/osse101/ClassPoint_Go/internal/ledger"
	"github.com/osse101/ClassPoint_Go/internal/retry"
	"github.com/osse101/ClassPoint_Go/internal/reward"
	"github.com/osse101/ClassPoint_Go/internal/server"
	"github.com/osse101/ClassPoint_Go/internal/stats"
	"github.com/osse101/ClassPoint_Go/internal/thresholds"
)

// InitializeServices wires the domain services, loads the persisted
// thresholds and makes sure at least one class exists.
func InitializeServices(ctx context.Context, cfg *config.Config, repos *Repositories, publisher event.Publisher) (server.Services, error) {
	policy := retry.DefaultPolicy()
	policy.MaxAttempts = cfg.RetryAttempts
	policy.InitialDelay = cfg.RetryInitialDelay
	policy.Timeout = cfg.OperationTimeout
	runner := retry.New(policy)

	// Ledger and catalog serialize on the same per-student and per-class keys
	locks := concurrency.NewLockManager()

	store := thresholds.NewStore(repos.Settings, runner, publisher, cfg.DefaultThresholds)
	loaded, err := store.Load(ctx)
	if err != nil {
		return server.Services{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadSettings, err)
	}
	slog.Info(LogMsgThresholdsLoaded, "thresholds", loaded.Thresholds, "version", loaded.Version)

	rewardService := reward.NewService(repos.Reward, reward.CacheConfig{
		Size: cfg.RewardCacheSize,
		TTL:  cfg.RewardCacheTTL,
	}, locks, runner)
	ledgerService := ledger.NewService(repos.Ledger, store, locks, runner, publisher, rewardService)
	statsService := stats.NewService(repos.Stats, store, runner, cfg.Location())

	class, err := ledgerService.EnsureDefaultClass(ctx, cfg.DefaultClassName)
	if err != nil {
		return server.Services{}, fmt.Errorf("%s: %w", ErrMsgFailedDefaultClass, err)
	}
	slog.Info(LogMsgDefaultClassReady, "class_id", class.ID, "name", class.Name)

	return server.Services{
		Ledger:     ledgerService,
		Rewards:    rewardService,
		Stats:      statsService,
		Thresholds: store,
	}, nil
}
