package ledger

import (
	"context"
	"fmt"

	"github.com/osse101/ClassPoint_Go/internal/domain"
	"github.com/osse101/ClassPoint_Go/internal/event"
	"github.com/osse101/ClassPoint_Go/internal/leveling"
	"github.com/osse101/ClassPoint_Go/internal/logger"
	"github.com/osse101/ClassPoint_Go/internal/repository"
)

// ApplyPointChange adds delta (possibly negative) to the student's balance.
// The stored balance never drops below zero; the history entry keeps the
// requested delta and the clamped balance.
func (s *service) ApplyPointChange(ctx context.Context, studentID string, delta int, reason *string) (*domain.PointChangeResult, error) {
	log := logger.ForStudent(ctx, studentID)
	reason = normalizeReason(reason)

	thresholds, err := s.currentThresholds(ctx)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(studentLock(studentID))
	defer unlock()

	var result *domain.PointChangeResult
	err = s.inTx(ctx, OpApplyPointChange, func(ctx context.Context, tx repository.LedgerTx) error {
		student, err := lockStudent(ctx, tx, studentID)
		if err != nil {
			return err
		}

		oldLevel := student.Level
		now := s.now()
		student.TotalPoints = max(0, student.TotalPoints+delta)
		student.Level = leveling.LevelFor(student.TotalPoints, thresholds)
		student.UpdatedAt = now

		if err := tx.UpdateStudentBalance(ctx, student.ID, student.TotalPoints, student.Level); err != nil {
			return domain.NewPersistenceError(ErrMsgUpdateBalanceFailed, err)
		}

		entry := &domain.PointHistoryEntry{
			ID:          s.newID(),
			StudentID:   student.ID,
			Change:      delta,
			Reason:      reason,
			PointsAfter: student.TotalPoints,
			CreatedAt:   now,
		}
		if err := tx.InsertHistory(ctx, entry); err != nil {
			return domain.NewPersistenceError(ErrMsgInsertHistoryFailed, err)
		}

		result = &domain.PointChangeResult{
			Student: student,
			Entry:   entry,
			LevelUp: leveling.Changed(student, oldLevel, delta),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgPointsChanged, "change", delta, "points_after", result.Entry.PointsAfter)
	s.publish(ctx, event.NewPointsChangedEvent(result.Student, result.Entry))
	if result.LevelUp != nil {
		log.Info(LogMsgLevelUp, "from", result.LevelUp.OldLevel, "to", result.LevelUp.NewLevel)
		s.publish(ctx, event.NewLevelUpEvent(result.LevelUp))
	}
	return result, nil
}

// RedeemReward spends pointsCost from the student's balance on a reward of
// the student's class. Nothing is written when the balance is too low.
func (s *service) RedeemReward(ctx context.Context, studentID, rewardID string, pointsCost int) (*domain.RewardRedemption, error) {
	log := logger.ForStudent(ctx, studentID)

	if pointsCost <= 0 {
		return nil, fmt.Errorf(ErrMsgRewardIDFmt, domain.ErrInvalidCost, rewardID)
	}

	thresholds, err := s.currentThresholds(ctx)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(studentLock(studentID))
	defer unlock()

	var (
		redemption *domain.RewardRedemption
		student    *domain.Student
		entry      *domain.PointHistoryEntry
	)
	err = s.inTx(ctx, OpRedeemReward, func(ctx context.Context, tx repository.LedgerTx) error {
		var err error
		student, err = lockStudent(ctx, tx, studentID)
		if err != nil {
			return err
		}

		reward, err := tx.GetReward(ctx, rewardID)
		if err != nil {
			return domain.NewPersistenceError(ErrMsgGetRewardFailed, err)
		}
		if reward == nil {
			return rewardNotFound(rewardID)
		}
		if reward.ClassID != student.ClassID {
			return fmt.Errorf(ErrMsgRewardMismatchFmt, domain.ErrRewardClassMismatch, rewardID, studentID)
		}
		if !reward.IsActive {
			return fmt.Errorf(ErrMsgRewardIDFmt, domain.ErrRewardInactive, rewardID)
		}
		if student.TotalPoints < pointsCost {
			return fmt.Errorf(ErrMsgBalanceFmt, domain.ErrInsufficientBalance, studentID, student.TotalPoints, rewardID, pointsCost)
		}

		now := s.now()
		student.TotalPoints -= pointsCost
		student.Level = leveling.LevelFor(student.TotalPoints, thresholds)
		student.UpdatedAt = now

		if err := tx.UpdateStudentBalance(ctx, student.ID, student.TotalPoints, student.Level); err != nil {
			return domain.NewPersistenceError(ErrMsgUpdateBalanceFailed, err)
		}

		redemption = &domain.RewardRedemption{
			ID:          s.newID(),
			StudentID:   student.ID,
			RewardID:    reward.ID,
			RewardName:  reward.Name,
			PointsSpent: pointsCost,
			CreatedAt:   now,
		}
		if err := tx.InsertRedemption(ctx, redemption); err != nil {
			return domain.NewPersistenceError(ErrMsgInsertRedemptionFailed, err)
		}

		reason := domain.RedemptionReason
		entry = &domain.PointHistoryEntry{
			ID:          s.newID(),
			StudentID:   student.ID,
			Change:      -pointsCost,
			Reason:      &reason,
			PointsAfter: student.TotalPoints,
			CreatedAt:   now,
		}
		if err := tx.InsertHistory(ctx, entry); err != nil {
			return domain.NewPersistenceError(ErrMsgInsertHistoryFailed, err)
		}
		return nil
	})
	if err != nil {
		if domain.ErrorKind(err) != domain.ErrPersistence {
			log.Warn(LogMsgRedeemRejected, "reward_id", rewardID, "error", err)
		}
		return nil, err
	}

	log.Info(LogMsgRewardRedeemed, "reward", redemption.RewardName, "cost", pointsCost, "points_after", student.TotalPoints)
	s.publish(ctx, event.NewRewardRedeemedEvent(redemption))
	s.publish(ctx, event.NewPointsChangedEvent(student, entry))
	return redemption, nil
}

func lockStudent(ctx context.Context, tx repository.LedgerTx, studentID string) (*domain.Student, error) {
	student, err := tx.GetStudentForUpdate(ctx, studentID)
	if err != nil {
		return nil, domain.NewPersistenceError(ErrMsgLockStudentFailed, err)
	}
	if student == nil {
		return nil, studentNotFound(studentID)
	}
	return student, nil
}
