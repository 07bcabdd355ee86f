package repository

import (
	"context"

	"github.com/osse101/ClassPoint_Go/internal/domain"
)

// Reward defines persistence for a class's reward catalog
type Reward interface {
	GetClass(ctx context.Context, classID string) (*domain.Class, error)
	GetReward(ctx context.Context, rewardID string) (*domain.Reward, error)
	ListRewards(ctx context.Context, classID string, activeOnly bool) ([]domain.Reward, error)
	MaxRewardOrder(ctx context.Context, classID string) (int, error)
	InsertReward(ctx context.Context, reward *domain.Reward) error
	UpdateReward(ctx context.Context, reward *domain.Reward) error
	DeleteReward(ctx context.Context, rewardID string) (bool, error)
}
