package reward

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/ClassPoint_Go/internal/domain"
)

// MockRepository implements repository.Reward for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetClass(ctx context.Context, classID string) (*domain.Class, error) {
	args := m.Called(ctx, classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Class), args.Error(1)
}

func (m *MockRepository) GetReward(ctx context.Context, rewardID string) (*domain.Reward, error) {
	args := m.Called(ctx, rewardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reward), args.Error(1)
}

func (m *MockRepository) ListRewards(ctx context.Context, classID string, activeOnly bool) ([]domain.Reward, error) {
	args := m.Called(ctx, classID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reward), args.Error(1)
}

func (m *MockRepository) MaxRewardOrder(ctx context.Context, classID string) (int, error) {
	args := m.Called(ctx, classID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) InsertReward(ctx context.Context, reward *domain.Reward) error {
	args := m.Called(ctx, reward)
	return args.Error(0)
}

func (m *MockRepository) UpdateReward(ctx context.Context, reward *domain.Reward) error {
	args := m.Called(ctx, reward)
	return args.Error(0)
}

func (m *MockRepository) DeleteReward(ctx context.Context, rewardID string) (bool, error) {
	args := m.Called(ctx, rewardID)
	return args.Bool(0), args.Error(1)
}
