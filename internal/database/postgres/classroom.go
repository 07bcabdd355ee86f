package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ClassPoint_Go/internal/domain"
	"github.com/osse101/ClassPoint_Go/internal/repository"
)

// ClassroomRepository stores classes, students and their ledgers. It
// implements repository.Ledger and repository.Stats.
type ClassroomRepository struct {
	db *pgxpool.Pool
}

// NewClassroomRepository creates a new ClassroomRepository
func NewClassroomRepository(db *pgxpool.Pool) *ClassroomRepository {
	return &ClassroomRepository{db: db}
}

var (
	_ repository.Ledger = (*ClassroomRepository)(nil)
	_ repository.Stats  = (*ClassroomRepository)(nil)
)

func (r *ClassroomRepository) GetClass(ctx context.Context, classID string) (*domain.Class, error) {
	return getClass(ctx, r.db, classID)
}

// ListClasses returns every class with its student count, newest first
func (r *ClassroomRepository) ListClasses(ctx context.Context) ([]domain.ClassSummary, error) {
	return listClasses(ctx, r.db)
}

func (r *ClassroomRepository) InsertClass(ctx context.Context, class *domain.Class) error {
	return insertClass(ctx, r.db, class)
}

func (r *ClassroomRepository) UpdateClassName(ctx context.Context, classID, name string) (*domain.Class, error) {
	if !validID(classID) {
		return nil, nil
	}
	query := `
		UPDATE classes SET name = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + classColumns
	return getOne(ctx, r.db, "class", scanClass, query, classID, name)
}

// DeleteClass removes the class and its rewards. The students foreign key
// rejects the delete while students remain.
func (r *ClassroomRepository) DeleteClass(ctx context.Context, classID string) error {
	if !validID(classID) {
		return nil
	}
	_, err := r.db.Exec(ctx, `DELETE FROM classes WHERE id = $1`, classID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeForeignKeyViolation {
			return fmt.Errorf("%w: %s", domain.ErrClassHasStudents, classID)
		}
		return fmt.Errorf(ErrMsgDeleteFailedFmt, "class", err)
	}
	return nil
}

func (r *ClassroomRepository) GetStudent(ctx context.Context, studentID string) (*domain.Student, error) {
	if !validID(studentID) {
		return nil, nil
	}
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	return getOne(ctx, r.db, "student", scanStudent, query, studentID)
}

// ListStudents returns a class roster ordered by order number
func (r *ClassroomRepository) ListStudents(ctx context.Context, classID string) ([]domain.Student, error) {
	if !validID(classID) {
		return []domain.Student{}, nil
	}
	query := `
		SELECT ` + studentColumns + `
		FROM students
		WHERE class_id = $1
		ORDER BY order_number, name
	`
	return getMany(ctx, r.db, "students", scanStudent, query, classID)
}

func (r *ClassroomRepository) CountStudents(ctx context.Context, classID string) (int, error) {
	if !validID(classID) {
		return 0, nil
	}
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students WHERE class_id = $1`, classID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgQueryFailedFmt, "student count", err)
	}
	return count, nil
}

func (r *ClassroomRepository) InsertStudent(ctx context.Context, student *domain.Student) error {
	return insertStudent(ctx, r.db, student)
}

// DeleteStudent removes a student; history and redemptions cascade
func (r *ClassroomRepository) DeleteStudent(ctx context.Context, studentID string) (bool, error) {
	if !validID(studentID) {
		return false, nil
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, studentID)
	if err != nil {
		return false, fmt.Errorf(ErrMsgDeleteFailedFmt, "student", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ClassroomRepository) DeleteStudentsInClass(ctx context.Context, classID string) (int64, error) {
	if !validID(classID) {
		return 0, nil
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE class_id = $1`, classID)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgDeleteFailedFmt, "students", err)
	}
	return tag.RowsAffected(), nil
}

// ListHistory returns a student's entries newest first. limit <= 0 returns all.
func (r *ClassroomRepository) ListHistory(ctx context.Context, studentID string, limit int) ([]domain.PointHistoryEntry, error) {
	if !validID(studentID) {
		return []domain.PointHistoryEntry{}, nil
	}
	query := `
		SELECT ` + historyColumns + `
		FROM point_history
		WHERE student_id = $1
		ORDER BY created_at DESC, id
		LIMIT NULLIF($2, 0)
	`
	return getMany(ctx, r.db, "point history", scanHistory, query, studentID, max(limit, 0))
}

// ListClassHistory returns every entry of the class's current students
func (r *ClassroomRepository) ListClassHistory(ctx context.Context, classID string) ([]domain.PointHistoryEntry, error) {
	if !validID(classID) {
		return []domain.PointHistoryEntry{}, nil
	}
	query := `
		SELECT h.id, h.student_id, h.change, h.reason, h.points_after, h.created_at
		FROM point_history h
		JOIN students s ON s.id = h.student_id
		WHERE s.class_id = $1
		ORDER BY h.created_at
	`
	return getMany(ctx, r.db, "class history", scanHistory, query, classID)
}

func (r *ClassroomRepository) ListRedemptions(ctx context.Context, studentID string) ([]domain.RewardRedemption, error) {
	if !validID(studentID) {
		return []domain.RewardRedemption{}, nil
	}
	query := `
		SELECT id, student_id, reward_id, reward_name, points_spent, created_at
		FROM reward_redemptions
		WHERE student_id = $1
		ORDER BY created_at DESC
	`
	return getMany(ctx, r.db, "redemptions", func(row pgx.Row) (*domain.RewardRedemption, error) {
		var rr domain.RewardRedemption
		err := row.Scan(&rr.ID, &rr.StudentID, &rr.RewardID, &rr.RewardName, &rr.PointsSpent, &rr.CreatedAt)
		return &rr, err
	}, query, studentID)
}

// TopStudents returns the highest balances of a class. Students tied with
// the last place are all included; the caller breaks ties by name.
func (r *ClassroomRepository) TopStudents(ctx context.Context, classID string, limit int) ([]domain.Student, error) {
	if !validID(classID) {
		return []domain.Student{}, nil
	}
	query := `
		SELECT ` + studentColumns + `
		FROM students
		WHERE class_id = $1
		ORDER BY total_points DESC
		FETCH FIRST $2 ROWS WITH TIES
	`
	return getMany(ctx, r.db, "top students", scanStudent, query, classID, limit)
}

// BeginTx starts a ledger transaction
func (r *ClassroomRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailedFmt, err)
	}
	return &ledgerTx{tx: tx}, nil
}
