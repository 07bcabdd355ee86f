package repository

import (
	"context"

	"github.com/osse101/ClassPoint_Go/internal/domain"
)

// Ledger defines persistence for classes, students and their point history.
// Lookups return (nil, nil) when the row does not exist.
type Ledger interface {
	GetClass(ctx context.Context, classID string) (*domain.Class, error)
	ListClasses(ctx context.Context) ([]domain.ClassSummary, error)
	InsertClass(ctx context.Context, class *domain.Class) error
	UpdateClassName(ctx context.Context, classID, name string) (*domain.Class, error)
	DeleteClass(ctx context.Context, classID string) error

	GetStudent(ctx context.Context, studentID string) (*domain.Student, error)
	ListStudents(ctx context.Context, classID string) ([]domain.Student, error)
	CountStudents(ctx context.Context, classID string) (int, error)
	InsertStudent(ctx context.Context, student *domain.Student) error
	DeleteStudent(ctx context.Context, studentID string) (bool, error)
	DeleteStudentsInClass(ctx context.Context, classID string) (int64, error)

	ListHistory(ctx context.Context, studentID string, limit int) ([]domain.PointHistoryEntry, error)
	ListClassHistory(ctx context.Context, classID string) ([]domain.PointHistoryEntry, error)
	ListRedemptions(ctx context.Context, studentID string) ([]domain.RewardRedemption, error)

	BeginTx(ctx context.Context) (LedgerTx, error)
}

// LedgerTx is one all-or-nothing unit of ledger writes. History and
// redemptions can only be appended.
type LedgerTx interface {
	Tx
	GetStudentForUpdate(ctx context.Context, studentID string) (*domain.Student, error)
	UpdateStudentBalance(ctx context.Context, studentID string, totalPoints int, level domain.Level) error
	InsertHistory(ctx context.Context, entry *domain.PointHistoryEntry) error
	InsertRedemption(ctx context.Context, redemption *domain.RewardRedemption) error
	GetReward(ctx context.Context, rewardID string) (*domain.Reward, error)
	ListClasses(ctx context.Context) ([]domain.ClassSummary, error)
	InsertClass(ctx context.Context, class *domain.Class) error
	InsertStudent(ctx context.Context, student *domain.Student) error
}
