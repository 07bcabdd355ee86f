// Package stats builds read-only statistics over persisted ledger data.
// Nothing is cached; every call reads the current state.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/ClassPoint_Go/internal/domain"
	"github.com/osse101/ClassPoint_Go/internal/leveling"
	"github.com/osse101/ClassPoint_Go/internal/logger"
	"github.com/osse101/ClassPoint_Go/internal/repository"
	"github.com/osse101/ClassPoint_Go/internal/retry"
)

// Service defines the statistics queries
type Service interface {
	Overview(ctx context.Context, classID string) (*domain.ClassOverview, error)
	Leaderboard(ctx context.Context, classID string, limit int) ([]domain.LeaderboardEntry, error)
	StudentSummary(ctx context.Context, studentID string) (*domain.StudentSummary, error)
}

// ThresholdProvider supplies the thresholds used for progress figures
type ThresholdProvider interface {
	Thresholds(ctx context.Context) (domain.LevelThresholds, error)
}

type service struct {
	repo       repository.Stats
	thresholds ThresholdProvider
	runner     *retry.Runner
	loc        *time.Location
}

// NewService creates a new stats service. Trend days are bucketed in loc.
func NewService(repo repository.Stats, thresholds ThresholdProvider, runner *retry.Runner, loc *time.Location) Service {
	if runner == nil {
		runner = retry.New(retry.DefaultPolicy())
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:       repo,
		thresholds: thresholds,
		runner:     runner,
		loc:        loc,
	}
}

// Overview returns the level distribution, top reasons, daily trend and
// totals of a class
func (s *service) Overview(ctx context.Context, classID string) (*domain.ClassOverview, error) {
	if err := s.requireClass(ctx, OpOverview, classID); err != nil {
		return nil, err
	}

	var (
		students []domain.Student
		history  []domain.PointHistoryEntry
	)
	if err := s.do(ctx, OpOverview, func(ctx context.Context) error {
		var err error
		if students, err = s.repo.ListStudents(ctx, classID); err != nil {
			return err
		}
		history, err = s.repo.ListClassHistory(ctx, classID)
		return err
	}); err != nil {
		return nil, err
	}

	overview := &domain.ClassOverview{
		ClassID:           classID,
		StudentCount:      len(students),
		LevelDistribution: LevelDistribution(students),
		TopPositive:       TopReasons(history, true, domain.TopReasonsLimit),
		TopNegative:       TopReasons(history, false, domain.TopReasonsLimit),
		DailyTrend:        DailyTrend(history, s.loc, domain.DailyTrendDays),
		Totals:            PointTotals(history),
	}

	logger.FromContext(ctx).Debug(LogMsgOverviewBuilt, "class_id", classID, "students", len(students), "entries", len(history))
	return overview, nil
}

// Leaderboard returns the top students of a class. limit defaults to 10
// and is capped at 100.
func (s *service) Leaderboard(ctx context.Context, classID string, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = domain.DefaultLeaderboardLimit
	}
	limit = min(limit, domain.MaxLeaderboardLimit)

	if err := s.requireClass(ctx, OpLeaderboard, classID); err != nil {
		return nil, err
	}

	var students []domain.Student
	if err := s.do(ctx, OpLeaderboard, func(ctx context.Context) error {
		var err error
		students, err = s.repo.TopStudents(ctx, classID, limit)
		return err
	}); err != nil {
		return nil, err
	}
	return Leaderboard(students, limit), nil
}

// StudentSummary totals a student's whole history and redemptions
func (s *service) StudentSummary(ctx context.Context, studentID string) (*domain.StudentSummary, error) {
	thresholds, err := s.thresholds.Thresholds(ctx)
	if err != nil {
		return nil, domain.NewPersistenceError(OpStudentSummary, err)
	}

	var (
		student     *domain.Student
		history     []domain.PointHistoryEntry
		redemptions []domain.RewardRedemption
	)
	if err := s.do(ctx, OpStudentSummary, func(ctx context.Context) error {
		var err error
		if student, err = s.repo.GetStudent(ctx, studentID); err != nil || student == nil {
			return err
		}
		if history, err = s.repo.ListHistory(ctx, studentID, 0); err != nil {
			return err
		}
		redemptions, err = s.repo.ListRedemptions(ctx, studentID)
		return err
	}); err != nil {
		return nil, err
	}
	if student == nil {
		return nil, fmt.Errorf(ErrMsgStudentIDFmt, domain.ErrStudentNotFound, studentID)
	}

	totals := PointTotals(history)
	summary := &domain.StudentSummary{
		Student:         student,
		Progress:        leveling.Progress(student.TotalPoints, student.Level, thresholds),
		TotalAdded:      totals.Positive,
		TotalDeducted:   totals.Negative,
		RedemptionCount: len(redemptions),
	}
	for _, r := range redemptions {
		summary.TotalSpent += r.PointsSpent
	}
	return summary, nil
}

func (s *service) requireClass(ctx context.Context, op, classID string) error {
	var class *domain.Class
	if err := s.do(ctx, op, func(ctx context.Context) error {
		var err error
		class, err = s.repo.GetClass(ctx, classID)
		return err
	}); err != nil {
		return err
	}
	if class == nil {
		return fmt.Errorf(ErrMsgClassIDFmt, domain.ErrClassNotFound, classID)
	}
	return nil
}

func (s *service) do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	err := s.runner.Do(ctx, op, fn)
	if err == nil {
		return nil
	}
	err = domain.NewPersistenceError(op, err)
	logger.FromContext(ctx).Error(LogMsgQueryFailed, "operation", op, "error", err)
	return err
}
