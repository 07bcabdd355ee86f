package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ClassPoint_Go/internal/domain"
	"github.com/osse101/ClassPoint_Go/internal/retry"
)

// fakeStatsRepository is an in-memory repository.Stats
type fakeStatsRepository struct {
	classes     map[string]*domain.Class
	students    []domain.Student
	history     map[string][]domain.PointHistoryEntry
	redemptions map[string][]domain.RewardRedemption
	err         error
	topLimit    int
}

func newFakeStatsRepository() *fakeStatsRepository {
	return &fakeStatsRepository{
		classes:     map[string]*domain.Class{"c1": {ID: "c1", Name: "9B"}},
		history:     make(map[string][]domain.PointHistoryEntry),
		redemptions: make(map[string][]domain.RewardRedemption),
	}
}

func (f *fakeStatsRepository) GetClass(ctx context.Context, classID string) (*domain.Class, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.classes[classID], nil
}

func (f *fakeStatsRepository) GetStudent(ctx context.Context, studentID string) (*domain.Student, error) {
	for _, s := range f.students {
		if s.ID == studentID {
			s := s
			return &s, nil
		}
	}
	return nil, f.err
}

func (f *fakeStatsRepository) ListStudents(ctx context.Context, classID string) ([]domain.Student, error) {
	var out []domain.Student
	for _, s := range f.students {
		if s.ClassID == classID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStatsRepository) ListClassHistory(ctx context.Context, classID string) ([]domain.PointHistoryEntry, error) {
	var out []domain.PointHistoryEntry
	for _, s := range f.students {
		if s.ClassID == classID {
			out = append(out, f.history[s.ID]...)
		}
	}
	return out, nil
}

func (f *fakeStatsRepository) ListHistory(ctx context.Context, studentID string, limit int) ([]domain.PointHistoryEntry, error) {
	h := f.history[studentID]
	if limit > 0 && len(h) > limit {
		h = h[:limit]
	}
	return h, nil
}

func (f *fakeStatsRepository) ListRedemptions(ctx context.Context, studentID string) ([]domain.RewardRedemption, error) {
	return f.redemptions[studentID], nil
}

func (f *fakeStatsRepository) TopStudents(ctx context.Context, classID string, limit int) ([]domain.Student, error) {
	f.topLimit = limit
	return f.ListStudents(ctx, classID)
}

type staticThresholds domain.LevelThresholds

func (s staticThresholds) Thresholds(ctx context.Context) (domain.LevelThresholds, error) {
	return domain.LevelThresholds(s), nil
}

func newTestService(repo *fakeStatsRepository) Service {
	runner := retry.New(retry.Policy{MaxAttempts: 1, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, Timeout: time.Second})
	return NewService(repo, staticThresholds(domain.DefaultThresholds), runner, time.UTC)
}

func TestOverview(t *testing.T) {
	// ARRANGE
	repo := newFakeStatsRepository()
	repo.students = []domain.Student{
		{ID: "s1", ClassID: "c1", Name: "An", TotalPoints: 60, Level: domain.LevelNayMam},
		{ID: "s2", ClassID: "c1", Name: "Bình", TotalPoints: 0, Level: domain.LevelHat},
		{ID: "x", ClassID: "c2", Name: "Khác", TotalPoints: 500, Level: domain.LevelCayTo},
	}
	day := time.Date(2024, 9, 5, 9, 0, 0, 0, time.UTC)
	repo.history["s1"] = []domain.PointHistoryEntry{
		entry(60, 60, "Phát biểu", day),
	}
	repo.history["s2"] = []domain.PointHistoryEntry{
		entry(5, 5, "", day),
		entry(-10, 0, "Nói chuyện", day.Add(time.Hour)),
	}
	repo.history["x"] = []domain.PointHistoryEntry{entry(500, 500, "", day)}
	svc := newTestService(repo)

	// ACT
	ov, err := svc.Overview(context.Background(), "c1")

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 2, ov.StudentCount)
	assert.Equal(t, 1, ov.LevelDistribution[0].Count)
	assert.Equal(t, 1, ov.LevelDistribution[1].Count)
	assert.Equal(t, 0, ov.LevelDistribution[3].Count)
	assert.Equal(t, domain.PointTotals{Positive: 65, Negative: 10}, ov.Totals)
	require.Len(t, ov.TopNegative, 1)
	assert.Equal(t, "Nói chuyện", ov.TopNegative[0].Reason)
	require.Len(t, ov.DailyTrend, 1)
	assert.Equal(t, domain.DailyPoint{Date: "05/09/2024", AveragePoints: 22, Entries: 3}, ov.DailyTrend[0])
}

func TestOverview_UnknownClass(t *testing.T) {
	svc := newTestService(newFakeStatsRepository())

	_, err := svc.Overview(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrClassNotFound)
}

func TestOverview_PersistenceFailure(t *testing.T) {
	repo := newFakeStatsRepository()
	repo.err = errors.New("connection refused")
	svc := newTestService(repo)

	_, err := svc.Overview(context.Background(), "c1")

	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestLeaderboard_LimitDefaults(t *testing.T) {
	tests := []struct {
		requested int
		want      int
	}{
		{0, domain.DefaultLeaderboardLimit},
		{-1, domain.DefaultLeaderboardLimit},
		{3, 3},
		{1000, domain.MaxLeaderboardLimit},
	}

	for _, tt := range tests {
		repo := newFakeStatsRepository()
		svc := newTestService(repo)

		_, err := svc.Leaderboard(context.Background(), "c1", tt.requested)

		require.NoError(t, err)
		assert.Equal(t, tt.want, repo.topLimit)
	}
}

func TestStudentSummary(t *testing.T) {
	// ARRANGE
	repo := newFakeStatsRepository()
	repo.students = []domain.Student{{ID: "s1", ClassID: "c1", Name: "An", TotalPoints: 75, Level: domain.LevelNayMam}}
	now := time.Now()
	repo.history["s1"] = []domain.PointHistoryEntry{
		entry(-80, 75, domain.RedemptionReason, now),
		entry(-5, 155, "Nói chuyện", now),
		entry(160, 160, "Phát biểu", now),
	}
	repo.redemptions["s1"] = []domain.RewardRedemption{{ID: "r", StudentID: "s1", PointsSpent: 80}}
	svc := newTestService(repo)

	// ACT
	sum, err := svc.StudentSummary(context.Background(), "s1")

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 160, sum.TotalAdded)
	assert.Equal(t, 85, sum.TotalDeducted)
	assert.Equal(t, 1, sum.RedemptionCount)
	assert.Equal(t, 80, sum.TotalSpent)
	assert.Equal(t, domain.LevelProgress{Current: 25, Span: 50, Percentage: 50, PointsNeeded: 25}, sum.Progress)

	_, err = svc.StudentSummary(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrStudentNotFound)
}
