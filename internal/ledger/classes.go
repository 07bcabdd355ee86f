package ledger

import (
	"context"
	"fmt"

	"github.com/osse101/ClassPoint_Go/internal/domain"
	"github.com/osse101/ClassPoint_Go/internal/logger"
	"github.com/osse101/ClassPoint_Go/internal/repository"
)

// ListClasses returns every class with its student count, newest first
func (s *service) ListClasses(ctx context.Context) ([]domain.ClassSummary, error) {
	var classes []domain.ClassSummary
	err := s.read(ctx, OpListClasses, func(ctx context.Context) error {
		var err error
		classes, err = s.repo.ListClasses(ctx)
		return err
	})
	return classes, err
}

func (s *service) CreateClass(ctx context.Context, name string) (*domain.Class, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}

	class := s.newClass(name)
	if err := s.read(ctx, OpCreateClass, func(ctx context.Context) error {
		return s.repo.InsertClass(ctx, class)
	}); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgClassCreated, "class_id", class.ID, "name", name)
	return class, nil
}

func (s *service) RenameClass(ctx context.Context, classID, name string) (*domain.Class, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}

	var class *domain.Class
	if err := s.read(ctx, OpRenameClass, func(ctx context.Context) error {
		var err error
		class, err = s.repo.UpdateClassName(ctx, classID, name)
		return err
	}); err != nil {
		return nil, err
	}
	if class == nil {
		return nil, classNotFound(classID)
	}

	logger.FromContext(ctx).Info(LogMsgClassRenamed, "class_id", classID, "name", name)
	return class, nil
}

// DeleteClass removes an empty class together with its rewards
func (s *service) DeleteClass(ctx context.Context, classID string) error {
	log := logger.ForClass(ctx, classID)

	unlock := s.locks.Lock(classesLockKey)
	defer unlock()

	if _, err := s.getClass(ctx, OpDeleteClass, classID); err != nil {
		return err
	}

	var count int
	if err := s.read(ctx, OpDeleteClass, func(ctx context.Context) error {
		var err error
		count, err = s.repo.CountStudents(ctx, classID)
		return err
	}); err != nil {
		return err
	}
	if count > 0 {
		log.Warn(LogMsgClassDeleteBlocked, "students", count)
		return fmt.Errorf(ErrMsgClassNotEmptyFmt, domain.ErrClassHasStudents, classID, count)
	}

	if err := s.read(ctx, OpDeleteClass, func(ctx context.Context) error {
		return s.repo.DeleteClass(ctx, classID)
	}); err != nil {
		return err
	}
	// the class's rewards went with it
	if s.catalogs != nil {
		s.catalogs.InvalidateClass(classID)
	}

	log.Info(LogMsgClassDeleted)
	return nil
}

// DeleteAllStudents empties a class and returns how many students were removed
func (s *service) DeleteAllStudents(ctx context.Context, classID string) (int64, error) {
	if _, err := s.getClass(ctx, OpDeleteAllStudents, classID); err != nil {
		return 0, err
	}

	var removed int64
	if err := s.read(ctx, OpDeleteAllStudents, func(ctx context.Context) error {
		var err error
		removed, err = s.repo.DeleteStudentsInClass(ctx, classID)
		return err
	}); err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info(LogMsgStudentsCleared, "class_id", classID, "removed", removed)
	return removed, nil
}

// EnsureDefaultClass creates a class named name when no class exists yet
// and returns the newest class otherwise.
func (s *service) EnsureDefaultClass(ctx context.Context, name string) (*domain.Class, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(classesLockKey)
	defer unlock()

	var (
		class   *domain.Class
		created bool
	)
	err = s.inTx(ctx, OpEnsureDefaultClass, func(ctx context.Context, tx repository.LedgerTx) error {
		classes, err := tx.ListClasses(ctx)
		if err != nil {
			return err
		}
		if len(classes) > 0 {
			existing := classes[0].Class
			class, created = &existing, false
			return nil
		}

		class, created = s.newClass(name), true
		return tx.InsertClass(ctx, class)
	})
	if err != nil {
		return nil, err
	}

	if created {
		logger.FromContext(ctx).Info(LogMsgDefaultClass, "class_id", class.ID, "name", name)
	}
	return class, nil
}

func (s *service) newClass(name string) *domain.Class {
	now := s.now()
	return &domain.Class{
		ID:        s.newID(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *service) getClass(ctx context.Context, op, classID string) (*domain.Class, error) {
	var class *domain.Class
	if err := s.read(ctx, op, func(ctx context.Context) error {
		var err error
		class, err = s.repo.GetClass(ctx, classID)
		return err
	}); err != nil {
		return nil, err
	}
	if class == nil {
		return nil, classNotFound(classID)
	}
	return class, nil
}
