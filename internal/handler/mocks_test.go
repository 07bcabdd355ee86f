package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/ClassPoint_Go/internal/domain"
)

// MockDBPool mocks database.Pool
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

// MockLedgerService mocks ledger.Service
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) ApplyPointChange(ctx context.Context, studentID string, delta int, reason *string) (*domain.PointChangeResult, error) {
	args := m.Called(ctx, studentID, delta, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PointChangeResult), args.Error(1)
}

func (m *MockLedgerService) RedeemReward(ctx context.Context, studentID, rewardID string, pointsCost int) (*domain.RewardRedemption, error) {
	args := m.Called(ctx, studentID, rewardID, pointsCost)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RewardRedemption), args.Error(1)
}

func (m *MockLedgerService) AddStudent(ctx context.Context, classID, name string, orderNumber int) (*domain.Student, error) {
	args := m.Called(ctx, classID, name, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockLedgerService) DeleteStudent(ctx context.Context, studentID string) error {
	return m.Called(ctx, studentID).Error(0)
}

func (m *MockLedgerService) GetStudent(ctx context.Context, studentID string) (*domain.Student, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockLedgerService) ListStudents(ctx context.Context, classID string, sort domain.StudentSort) ([]domain.Student, error) {
	args := m.Called(ctx, classID, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Student), args.Error(1)
}

func (m *MockLedgerService) StudentHistory(ctx context.Context, studentID string, limit int) ([]domain.PointHistoryEntry, error) {
	args := m.Called(ctx, studentID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PointHistoryEntry), args.Error(1)
}

func (m *MockLedgerService) StudentRedemptions(ctx context.Context, studentID string) ([]domain.RewardRedemption, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RewardRedemption), args.Error(1)
}

func (m *MockLedgerService) ImportStudents(ctx context.Context, defaultClassID string, rows []domain.ImportRow) (*domain.ImportResult, error) {
	args := m.Called(ctx, defaultClassID, rows)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportResult), args.Error(1)
}

func (m *MockLedgerService) ListClasses(ctx context.Context) ([]domain.ClassSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClassSummary), args.Error(1)
}

func (m *MockLedgerService) CreateClass(ctx context.Context, name string) (*domain.Class, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Class), args.Error(1)
}

func (m *MockLedgerService) RenameClass(ctx context.Context, classID, name string) (*domain.Class, error) {
	args := m.Called(ctx, classID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Class), args.Error(1)
}

func (m *MockLedgerService) DeleteClass(ctx context.Context, classID string) error {
	return m.Called(ctx, classID).Error(0)
}

func (m *MockLedgerService) DeleteAllStudents(ctx context.Context, classID string) (int64, error) {
	args := m.Called(ctx, classID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerService) EnsureDefaultClass(ctx context.Context, name string) (*domain.Class, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Class), args.Error(1)
}

// MockRewardService mocks reward.Service
type MockRewardService struct {
	mock.Mock
}

func (m *MockRewardService) Add(ctx context.Context, classID string, r domain.NewReward) (*domain.Reward, error) {
	args := m.Called(ctx, classID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reward), args.Error(1)
}

func (m *MockRewardService) Update(ctx context.Context, rewardID string, u domain.RewardUpdate) (*domain.Reward, error) {
	args := m.Called(ctx, rewardID, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reward), args.Error(1)
}

func (m *MockRewardService) Delete(ctx context.Context, rewardID string) error {
	return m.Called(ctx, rewardID).Error(0)
}

func (m *MockRewardService) Get(ctx context.Context, rewardID string) (*domain.Reward, error) {
	args := m.Called(ctx, rewardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reward), args.Error(1)
}

func (m *MockRewardService) List(ctx context.Context, classID string) ([]domain.Reward, error) {
	args := m.Called(ctx, classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reward), args.Error(1)
}

func (m *MockRewardService) ListActive(ctx context.Context, classID string) ([]domain.Reward, error) {
	args := m.Called(ctx, classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reward), args.Error(1)
}

func (m *MockRewardService) InvalidateClass(classID string) {
	m.Called(classID)
}

// MockStatsService mocks stats.Service
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Overview(ctx context.Context, classID string) (*domain.ClassOverview, error) {
	args := m.Called(ctx, classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClassOverview), args.Error(1)
}

func (m *MockStatsService) Leaderboard(ctx context.Context, classID string, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, classID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func (m *MockStatsService) StudentSummary(ctx context.Context, studentID string) (*domain.StudentSummary, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudentSummary), args.Error(1)
}

// MockThresholdService mocks thresholds.Service
type MockThresholdService struct {
	mock.Mock
}

func (m *MockThresholdService) Get(ctx context.Context) (domain.ThresholdConfig, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ThresholdConfig), args.Error(1)
}

func (m *MockThresholdService) Thresholds(ctx context.Context) (domain.LevelThresholds, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.LevelThresholds), args.Error(1)
}

func (m *MockThresholdService) Set(ctx context.Context, candidate domain.LevelThresholds) (domain.ThresholdConfig, error) {
	args := m.Called(ctx, candidate)
	return args.Get(0).(domain.ThresholdConfig), args.Error(1)
}
