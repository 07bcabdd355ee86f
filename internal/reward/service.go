// Package reward manages each class's reward catalog.
package reward

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/ClassPoint_Go/internal/concurrency"
	"github.com/osse101/ClassPoint_Go/internal/domain"
	"github.com/osse101/ClassPoint_Go/internal/logger"
	"github.com/osse101/ClassPoint_Go/internal/repository"
	"github.com/osse101/ClassPoint_Go/internal/retry"
)

// Service defines the reward catalog operations
type Service interface {
	Add(ctx context.Context, classID string, reward domain.NewReward) (*domain.Reward, error)
	Update(ctx context.Context, rewardID string, update domain.RewardUpdate) (*domain.Reward, error)
	Delete(ctx context.Context, rewardID string) error
	Get(ctx context.Context, rewardID string) (*domain.Reward, error)
	List(ctx context.Context, classID string) ([]domain.Reward, error)
	ListActive(ctx context.Context, classID string) ([]domain.Reward, error)
	// InvalidateClass drops the cached catalog of a class whose rewards
	// changed outside this service, such as a deleted class.
	InvalidateClass(classID string)
}

// CacheConfig sizes the per-class catalog cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type service struct {
	repo   repository.Reward
	cache  *catalogCache
	locks  *concurrency.LockManager
	runner *retry.Runner
	now    func() time.Time
	newID  func() string
}

// NewService creates a reward catalog service
func NewService(repo repository.Reward, cacheCfg CacheConfig, locks *concurrency.LockManager, runner *retry.Runner) Service {
	if cacheCfg.Size <= 0 {
		cacheCfg.Size = DefaultCacheSize
	}
	if cacheCfg.TTL <= 0 {
		cacheCfg.TTL = DefaultCacheTTL
	}
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	if runner == nil {
		runner = retry.New(retry.DefaultPolicy())
	}
	return &service{
		repo:   repo,
		cache:  newCatalogCache(cacheCfg.Size, cacheCfg.TTL),
		locks:  locks,
		runner: runner,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

func (s *service) Add(ctx context.Context, classID string, in domain.NewReward) (*domain.Reward, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}
	if in.Cost <= 0 {
		return nil, fmt.Errorf("%w (got %d)", domain.ErrInvalidCost, in.Cost)
	}

	unlock := s.locks.Lock(lockPrefix + classID)
	defer unlock()

	var class *domain.Class
	if err := s.do(ctx, OpAddReward, func(ctx context.Context) error {
		var err error
		class, err = s.repo.GetClass(ctx, classID)
		return err
	}); err != nil {
		return nil, err
	}
	if class == nil {
		return nil, fmt.Errorf(ErrMsgClassIDFmt, domain.ErrClassNotFound, classID)
	}

	icon := strings.TrimSpace(in.Icon)
	if icon == "" {
		icon = domain.DefaultRewardIcon
	}
	reward := &domain.Reward{
		ID:          s.newID(),
		ClassID:     classID,
		Name:        name,
		Description: trimOptional(in.Description),
		Cost:        in.Cost,
		Icon:        icon,
		IsActive:    true,
		CreatedAt:   s.now(),
	}

	if err := s.do(ctx, OpAddReward, func(ctx context.Context) error {
		maxOrder, err := s.repo.MaxRewardOrder(ctx, classID)
		if err != nil {
			return err
		}
		reward.OrderNumber = maxOrder + 1
		return s.repo.InsertReward(ctx, reward)
	}); err != nil {
		return nil, err
	}

	s.cache.Invalidate(classID)
	logger.FromContext(ctx).Info(LogMsgRewardAdded, "reward_id", reward.ID, "class_id", classID, "name", name, "cost", reward.Cost)
	return reward, nil
}

// Update applies the non-nil fields of update
func (s *service) Update(ctx context.Context, rewardID string, update domain.RewardUpdate) (*domain.Reward, error) {
	reward, err := s.Get(ctx, rewardID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(lockPrefix + reward.ClassID)
	defer unlock()

	if err := applyUpdate(reward, update); err != nil {
		return nil, err
	}

	if err := s.do(ctx, OpUpdateReward, func(ctx context.Context) error {
		return s.repo.UpdateReward(ctx, reward)
	}); err != nil {
		return nil, err
	}

	s.cache.Invalidate(reward.ClassID)
	logger.FromContext(ctx).Info(LogMsgRewardUpdated, "reward_id", rewardID)
	return reward, nil
}

func applyUpdate(reward *domain.Reward, update domain.RewardUpdate) error {
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return domain.ErrEmptyName
		}
		reward.Name = name
	}
	if update.Cost != nil {
		if *update.Cost <= 0 {
			return fmt.Errorf("%w (got %d)", domain.ErrInvalidCost, *update.Cost)
		}
		reward.Cost = *update.Cost
	}
	if update.Description != nil {
		reward.Description = trimOptional(update.Description)
	}
	if update.Icon != nil {
		if icon := strings.TrimSpace(*update.Icon); icon != "" {
			reward.Icon = icon
		} else {
			reward.Icon = domain.DefaultRewardIcon
		}
	}
	if update.OrderNumber != nil {
		reward.OrderNumber = *update.OrderNumber
	}
	if update.IsActive != nil {
		reward.IsActive = *update.IsActive
	}
	return nil
}

// Delete removes the reward. Past redemptions keep their snapshots.
func (s *service) Delete(ctx context.Context, rewardID string) error {
	reward, err := s.Get(ctx, rewardID)
	if err != nil {
		return err
	}

	unlock := s.locks.Lock(lockPrefix + reward.ClassID)
	defer unlock()

	var deleted bool
	if err := s.do(ctx, OpDeleteReward, func(ctx context.Context) error {
		var err error
		deleted, err = s.repo.DeleteReward(ctx, rewardID)
		return err
	}); err != nil {
		return err
	}
	s.cache.Invalidate(reward.ClassID)
	if !deleted {
		return fmt.Errorf(ErrMsgRewardIDFmt, domain.ErrRewardNotFound, rewardID)
	}

	logger.FromContext(ctx).Info(LogMsgRewardDeleted, "reward_id", rewardID, "class_id", reward.ClassID)
	return nil
}

func (s *service) Get(ctx context.Context, rewardID string) (*domain.Reward, error) {
	var reward *domain.Reward
	if err := s.do(ctx, OpGetReward, func(ctx context.Context) error {
		var err error
		reward, err = s.repo.GetReward(ctx, rewardID)
		return err
	}); err != nil {
		return nil, err
	}
	if reward == nil {
		return nil, fmt.Errorf(ErrMsgRewardIDFmt, domain.ErrRewardNotFound, rewardID)
	}
	return reward, nil
}

// List returns the class catalog ordered by OrderNumber
func (s *service) List(ctx context.Context, classID string) ([]domain.Reward, error) {
	if rewards, ok := s.cache.Get(classID); ok {
		logger.FromContext(ctx).Debug(LogMsgCacheHit, "class_id", classID)
		return rewards, nil
	}

	gen := s.cache.Generation(classID)
	var rewards []domain.Reward
	if err := s.do(ctx, OpListRewards, func(ctx context.Context) error {
		var err error
		rewards, err = s.repo.ListRewards(ctx, classID, false)
		return err
	}); err != nil {
		return nil, err
	}

	SortRewards(rewards)
	if !s.cache.SetIfCurrent(classID, gen, rewards) {
		logger.FromContext(ctx).Debug(LogMsgCacheStaleSkipped, "class_id", classID)
	}
	return rewards, nil
}

func (s *service) InvalidateClass(classID string) {
	s.cache.Invalidate(classID)
}

// ListActive returns only the rewards that can currently be redeemed
func (s *service) ListActive(ctx context.Context, classID string) ([]domain.Reward, error) {
	rewards, err := s.List(ctx, classID)
	if err != nil {
		return nil, err
	}
	active := make([]domain.Reward, 0, len(rewards))
	for _, r := range rewards {
		if r.IsActive {
			active = append(active, r)
		}
	}
	return active, nil
}

// SortRewards orders by OrderNumber, breaking ties by creation time
func SortRewards(rewards []domain.Reward) {
	sort.SliceStable(rewards, func(i, j int) bool {
		if rewards[i].OrderNumber != rewards[j].OrderNumber {
			return rewards[i].OrderNumber < rewards[j].OrderNumber
		}
		return rewards[i].CreatedAt.Before(rewards[j].CreatedAt)
	})
}

func (s *service) do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	err := s.runner.Do(ctx, op, fn)
	if err == nil {
		return nil
	}
	if domain.ErrorKind(err) == nil {
		err = domain.NewPersistenceError(op, err)
	}
	logger.FromContext(ctx).Error(LogMsgOpFailed, "operation", op, "error", err)
	return err
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
