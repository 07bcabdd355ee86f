// Package ledger owns student balances: point changes, redemptions,
// roster management and bulk import. Every balance change is written
// together with its history row in a single transaction.
package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/ClassPoint_Go/internal/concurrency"
	"github.com/osse101/ClassPoint_Go/internal/domain"
	"github.com/osse101/ClassPoint_Go/internal/event"
	"github.com/osse101/ClassPoint_Go/internal/logger"
	"github.com/osse101/ClassPoint_Go/internal/repository"
	"github.com/osse101/ClassPoint_Go/internal/retry"
)

// Service defines the ledger operations
type Service interface {
	ApplyPointChange(ctx context.Context, studentID string, delta int, reason *string) (*domain.PointChangeResult, error)
	RedeemReward(ctx context.Context, studentID, rewardID string, pointsCost int) (*domain.RewardRedemption, error)

	AddStudent(ctx context.Context, classID, name string, orderNumber int) (*domain.Student, error)
	DeleteStudent(ctx context.Context, studentID string) error
	GetStudent(ctx context.Context, studentID string) (*domain.Student, error)
	ListStudents(ctx context.Context, classID string, sort domain.StudentSort) ([]domain.Student, error)
	StudentHistory(ctx context.Context, studentID string, limit int) ([]domain.PointHistoryEntry, error)
	StudentRedemptions(ctx context.Context, studentID string) ([]domain.RewardRedemption, error)
	ImportStudents(ctx context.Context, defaultClassID string, rows []domain.ImportRow) (*domain.ImportResult, error)

	ListClasses(ctx context.Context) ([]domain.ClassSummary, error)
	CreateClass(ctx context.Context, name string) (*domain.Class, error)
	RenameClass(ctx context.Context, classID, name string) (*domain.Class, error)
	DeleteClass(ctx context.Context, classID string) error
	DeleteAllStudents(ctx context.Context, classID string) (int64, error)
	EnsureDefaultClass(ctx context.Context, name string) (*domain.Class, error)
}

// CatalogInvalidator drops cached reward catalogs of a class
type CatalogInvalidator interface {
	InvalidateClass(classID string)
}

// ThresholdProvider supplies the thresholds in force for a change
type ThresholdProvider interface {
	Thresholds(ctx context.Context) (domain.LevelThresholds, error)
}

type service struct {
	repo       repository.Ledger
	thresholds ThresholdProvider
	locks      *concurrency.LockManager
	runner     *retry.Runner
	publisher  event.Publisher
	catalogs   CatalogInvalidator
	now        func() time.Time
	newID      func() string
}

// NewService creates a new ledger service. publisher and catalogs may be nil.
func NewService(repo repository.Ledger, thresholds ThresholdProvider, locks *concurrency.LockManager, runner *retry.Runner, publisher event.Publisher, catalogs CatalogInvalidator) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	if runner == nil {
		runner = retry.New(retry.DefaultPolicy())
	}
	return &service{
		repo:       repo,
		thresholds: thresholds,
		locks:      locks,
		runner:     runner,
		publisher:  publisher,
		catalogs:   catalogs,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, evt)
	}
}

// read runs a non-transactional repository call under the retry policy
func (s *service) read(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	err := s.runner.Do(ctx, op, fn)
	if err != nil && domain.ErrorKind(err) == nil {
		err = domain.NewPersistenceError(op, err)
	}
	if err != nil && domain.ErrorKind(err) == domain.ErrPersistence {
		logger.FromContext(ctx).Error(LogMsgOperationFailed, "operation", op, "error", err)
	}
	return err
}

// inTx runs fn inside a transaction, retrying the whole unit on transient
// failures. fn's writes are discarded unless it returns nil. A failed commit
// is not retried: the server may have applied it.
func (s *service) inTx(ctx context.Context, op string, fn func(ctx context.Context, tx repository.LedgerTx) error) error {
	return s.read(ctx, op, func(ctx context.Context) error {
		tx, err := s.repo.BeginTx(ctx)
		if err != nil {
			return domain.NewPersistenceError(ErrMsgBeginTransactionFailed, err)
		}
		defer repository.SafeRollback(ctx, tx)

		if err := fn(ctx, tx); err != nil {
			return err
		}
		if err := tx.Commit(ctx); err != nil {
			return retry.CommitFailed(err, domain.NewPersistenceError(ErrMsgCommitTransactionFailed, err))
		}
		return nil
	})
}

func (s *service) currentThresholds(ctx context.Context) (domain.LevelThresholds, error) {
	t, err := s.thresholds.Thresholds(ctx)
	if err != nil {
		return domain.LevelThresholds{}, domain.NewPersistenceError(ErrMsgThresholdsFailed, err)
	}
	return t, nil
}

func studentLock(studentID string) string {
	return studentLockPrefix + studentID
}

// normalizeReason trims the reason and maps blank input to nil
func normalizeReason(reason *string) *string {
	if reason == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*reason)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func requireName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", domain.ErrEmptyName
	}
	return trimmed, nil
}

func studentNotFound(studentID string) error {
	return fmt.Errorf(ErrMsgStudentIDFmt, domain.ErrStudentNotFound, studentID)
}

func classNotFound(classID string) error {
	return fmt.Errorf(ErrMsgClassIDFmt, domain.ErrClassNotFound, classID)
}

func rewardNotFound(rewardID string) error {
	return fmt.Errorf(ErrMsgRewardIDFmt, domain.ErrRewardNotFound, rewardID)
}
