package ledger

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/osse101/ClassPoint_Go/internal/domain"
	"github.com/osse101/ClassPoint_Go/internal/logger"
)

// AddStudent creates a student with an empty balance at the lowest level
func (s *service) AddStudent(ctx context.Context, classID, name string, orderNumber int) (*domain.Student, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}

	if _, err := s.getClass(ctx, OpAddStudent, classID); err != nil {
		return nil, err
	}

	now := s.now()
	student := &domain.Student{
		ID:          s.newID(),
		ClassID:     classID,
		Name:        name,
		OrderNumber: orderNumber,
		TotalPoints: 0,
		Level:       domain.LevelHat,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.read(ctx, OpAddStudent, func(ctx context.Context) error {
		return s.repo.InsertStudent(ctx, student)
	}); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgStudentAdded, "student_id", student.ID, "class_id", classID, "name", name)
	return student, nil
}

// DeleteStudent removes the student with their history and redemptions
func (s *service) DeleteStudent(ctx context.Context, studentID string) error {
	unlock := s.locks.Lock(studentLock(studentID))
	defer unlock()

	var deleted bool
	if err := s.read(ctx, OpDeleteStudent, func(ctx context.Context) error {
		var err error
		deleted, err = s.repo.DeleteStudent(ctx, studentID)
		return err
	}); err != nil {
		return err
	}
	if !deleted {
		return studentNotFound(studentID)
	}

	logger.FromContext(ctx).Info(LogMsgStudentDeleted, "student_id", studentID)
	return nil
}

func (s *service) GetStudent(ctx context.Context, studentID string) (*domain.Student, error) {
	var student *domain.Student
	if err := s.read(ctx, OpGetStudent, func(ctx context.Context) error {
		var err error
		student, err = s.repo.GetStudent(ctx, studentID)
		return err
	}); err != nil {
		return nil, err
	}
	if student == nil {
		return nil, studentNotFound(studentID)
	}
	return student, nil
}

// ListStudents returns the class roster in the requested order. An empty
// sort defaults to points.
func (s *service) ListStudents(ctx context.Context, classID string, by domain.StudentSort) ([]domain.Student, error) {
	if by == "" {
		by = domain.SortByPoints
	}
	if !by.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSort, by)
	}

	if _, err := s.getClass(ctx, OpListStudents, classID); err != nil {
		return nil, err
	}

	var students []domain.Student
	if err := s.read(ctx, OpListStudents, func(ctx context.Context) error {
		var err error
		students, err = s.repo.ListStudents(ctx, classID)
		return err
	}); err != nil {
		return nil, err
	}

	SortStudents(students, by)
	return students, nil
}

// SortStudents orders students in place. Points sort highest first, names
// use Vietnamese collation and order numbers ascend. Ties fall back to name.
func SortStudents(students []domain.Student, by domain.StudentSort) {
	col := collate.New(language.Vietnamese)
	byName := func(a, b domain.Student) int {
		return col.CompareString(a.Name, b.Name)
	}

	sort.SliceStable(students, func(i, j int) bool {
		a, b := students[i], students[j]
		switch by {
		case domain.SortByName:
			return byName(a, b) < 0
		case domain.SortByOrder:
			if a.OrderNumber != b.OrderNumber {
				return a.OrderNumber < b.OrderNumber
			}
		default:
			if a.TotalPoints != b.TotalPoints {
				return a.TotalPoints > b.TotalPoints
			}
		}
		return byName(a, b) < 0
	})
}

// StudentHistory returns the most recent history entries, newest first
func (s *service) StudentHistory(ctx context.Context, studentID string, limit int) ([]domain.PointHistoryEntry, error) {
	if limit <= 0 || limit > domain.StudentHistoryLimit {
		limit = domain.StudentHistoryLimit
	}
	if _, err := s.GetStudent(ctx, studentID); err != nil {
		return nil, err
	}

	var history []domain.PointHistoryEntry
	err := s.read(ctx, OpStudentHistory, func(ctx context.Context) error {
		var err error
		history, err = s.repo.ListHistory(ctx, studentID, limit)
		return err
	})
	return history, err
}

// StudentRedemptions returns the student's redemptions, newest first
func (s *service) StudentRedemptions(ctx context.Context, studentID string) ([]domain.RewardRedemption, error) {
	if _, err := s.GetStudent(ctx, studentID); err != nil {
		return nil, err
	}

	var redemptions []domain.RewardRedemption
	err := s.read(ctx, OpStudentRedemptions, func(ctx context.Context) error {
		var err error
		redemptions, err = s.repo.ListRedemptions(ctx, studentID)
		return err
	})
	return redemptions, err
}
