package repository

import (
	"context"

	"github.com/osse101/ClassPoint_Go/internal/domain"
)

// Stats defines the read-only queries behind class statistics
type Stats interface {
	GetClass(ctx context.Context, classID string) (*domain.Class, error)
	GetStudent(ctx context.Context, studentID string) (*domain.Student, error)
	ListStudents(ctx context.Context, classID string) ([]domain.Student, error)
	ListClassHistory(ctx context.Context, classID string) ([]domain.PointHistoryEntry, error)
	ListHistory(ctx context.Context, studentID string, limit int) ([]domain.PointHistoryEntry, error)
	ListRedemptions(ctx context.Context, studentID string) ([]domain.RewardRedemption, error)
	TopStudents(ctx context.Context, classID string, limit int) ([]domain.Student, error)
}
