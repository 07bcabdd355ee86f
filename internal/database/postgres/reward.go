package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ClassPoint_Go/internal/domain"
	"github.com/osse101/ClassPoint_Go/internal/repository"
)

// RewardRepository implements repository.Reward for PostgreSQL
type RewardRepository struct {
	db *pgxpool.Pool
}

// NewRewardRepository creates a new RewardRepository
func NewRewardRepository(db *pgxpool.Pool) *RewardRepository {
	return &RewardRepository{db: db}
}

var _ repository.Reward = (*RewardRepository)(nil)

func (r *RewardRepository) GetClass(ctx context.Context, classID string) (*domain.Class, error) {
	return getClass(ctx, r.db, classID)
}

func (r *RewardRepository) GetReward(ctx context.Context, rewardID string) (*domain.Reward, error) {
	return getReward(ctx, r.db, rewardID)
}

// ListRewards returns a class catalog in display order
func (r *RewardRepository) ListRewards(ctx context.Context, classID string, activeOnly bool) ([]domain.Reward, error) {
	if !validID(classID) {
		return []domain.Reward{}, nil
	}
	query := `
		SELECT ` + rewardColumns + `
		FROM rewards
		WHERE class_id = $1 AND (NOT $2 OR is_active)
		ORDER BY order_number, created_at
	`
	return getMany(ctx, r.db, "rewards", scanReward, query, classID, activeOnly)
}

// MaxRewardOrder returns the highest order number of a class, 0 when empty
func (r *RewardRepository) MaxRewardOrder(ctx context.Context, classID string) (int, error) {
	if !validID(classID) {
		return 0, nil
	}
	var maxOrder int
	err := r.db.QueryRow(ctx, `SELECT COALESCE(MAX(order_number), 0) FROM rewards WHERE class_id = $1`, classID).Scan(&maxOrder)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgQueryFailedFmt, "max reward order", err)
	}
	return maxOrder, nil
}

func (r *RewardRepository) InsertReward(ctx context.Context, rw *domain.Reward) error {
	query := `INSERT INTO rewards (` + rewardColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query, rw.ID, rw.ClassID, rw.Name, rw.Description, rw.Cost, rw.Icon, rw.OrderNumber, rw.IsActive, rw.CreatedAt)
	if err != nil {
		return fmt.Errorf(ErrMsgInsertFailedFmt, "reward", err)
	}
	return nil
}

func (r *RewardRepository) UpdateReward(ctx context.Context, rw *domain.Reward) error {
	query := `
		UPDATE rewards
		SET name = $2, description = $3, cost = $4, icon = $5, order_number = $6, is_active = $7
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, rw.ID, rw.Name, rw.Description, rw.Cost, rw.Icon, rw.OrderNumber, rw.IsActive)
	if err != nil {
		return fmt.Errorf(ErrMsgUpdateFailedFmt, "reward", err)
	}
	return nil
}

// DeleteReward removes a reward. Redemptions keep their snapshot columns.
func (r *RewardRepository) DeleteReward(ctx context.Context, rewardID string) (bool, error) {
	if !validID(rewardID) {
		return false, nil
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM rewards WHERE id = $1`, rewardID)
	if err != nil {
		return false, fmt.Errorf(ErrMsgDeleteFailedFmt, "reward", err)
	}
	return tag.RowsAffected() > 0, nil
}
