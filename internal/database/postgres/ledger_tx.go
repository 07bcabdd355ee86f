package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/ClassPoint_Go/internal/domain"
)

// ledgerTx implements repository.LedgerTx on a pgx transaction
type ledgerTx struct {
	tx pgx.Tx
}

func (t *ledgerTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *ledgerTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetStudentForUpdate locks the student row until the transaction ends
func (t *ledgerTx) GetStudentForUpdate(ctx context.Context, studentID string) (*domain.Student, error) {
	if !validID(studentID) {
		return nil, nil
	}
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1 FOR UPDATE`
	return getOne(ctx, t.tx, "student for update", scanStudent, query, studentID)
}

func (t *ledgerTx) UpdateStudentBalance(ctx context.Context, studentID string, totalPoints int, level domain.Level) error {
	query := `
		UPDATE students
		SET total_points = $2, level = $3, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := t.tx.Exec(ctx, query, studentID, totalPoints, string(level))
	if err != nil {
		return fmt.Errorf(ErrMsgUpdateFailedFmt, "student balance", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf(ErrMsgUpdateFailedFmt, "student balance", pgx.ErrNoRows)
	}
	return nil
}

func (t *ledgerTx) InsertHistory(ctx context.Context, e *domain.PointHistoryEntry) error {
	query := `INSERT INTO point_history (` + historyColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := t.tx.Exec(ctx, query, e.ID, e.StudentID, e.Change, e.Reason, e.PointsAfter, e.CreatedAt); err != nil {
		return fmt.Errorf(ErrMsgInsertFailedFmt, "point history", err)
	}
	return nil
}

func (t *ledgerTx) InsertRedemption(ctx context.Context, r *domain.RewardRedemption) error {
	query := `
		INSERT INTO reward_redemptions (id, student_id, reward_id, reward_name, points_spent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := t.tx.Exec(ctx, query, r.ID, r.StudentID, r.RewardID, r.RewardName, r.PointsSpent, r.CreatedAt); err != nil {
		return fmt.Errorf(ErrMsgInsertFailedFmt, "redemption", err)
	}
	return nil
}

func (t *ledgerTx) GetReward(ctx context.Context, rewardID string) (*domain.Reward, error) {
	return getReward(ctx, t.tx, rewardID)
}

func (t *ledgerTx) ListClasses(ctx context.Context) ([]domain.ClassSummary, error) {
	return listClasses(ctx, t.tx)
}

func (t *ledgerTx) InsertClass(ctx context.Context, class *domain.Class) error {
	return insertClass(ctx, t.tx, class)
}

func (t *ledgerTx) InsertStudent(ctx context.Context, student *domain.Student) error {
	return insertStudent(ctx, t.tx, student)
}
