package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/ClassPoint_Go/internal/domain"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// validID reports whether id can be a primary key. Malformed IDs are
// treated as missing rows rather than sent to the server.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// ---- Column lists ----

const (
	classColumns   = `id, name, created_at, updated_at`
	studentColumns = `id, class_id, name, order_number, avatar, total_points, level, created_at, updated_at`
	historyColumns = `id, student_id, change, reason, points_after, created_at`
	rewardColumns  = `id, class_id, name, description, cost, icon, order_number, is_active, created_at`
)

func scanClass(row pgx.Row) (*domain.Class, error) {
	var c domain.Class
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanStudent(row pgx.Row) (*domain.Student, error) {
	var (
		s     domain.Student
		level string
	)
	err := row.Scan(&s.ID, &s.ClassID, &s.Name, &s.OrderNumber, &s.Avatar, &s.TotalPoints, &level, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Level = domain.Level(level)
	return &s, nil
}

func scanHistory(row pgx.Row) (*domain.PointHistoryEntry, error) {
	var e domain.PointHistoryEntry
	if err := row.Scan(&e.ID, &e.StudentID, &e.Change, &e.Reason, &e.PointsAfter, &e.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func scanReward(row pgx.Row) (*domain.Reward, error) {
	var r domain.Reward
	err := row.Scan(&r.ID, &r.ClassID, &r.Name, &r.Description, &r.Cost, &r.Icon, &r.OrderNumber, &r.IsActive, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// getOne runs a single-row query and returns (nil, nil) when nothing matched
func getOne[T any](ctx context.Context, q querier, what string, scan func(pgx.Row) (*T, error), query string, args ...any) (*T, error) {
	v, err := scan(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf(ErrMsgQueryFailedFmt, what, err)
	}
	return v, nil
}

// getMany collects every row of query
func getMany[T any](ctx context.Context, q querier, what string, scan func(pgx.Row) (*T, error), query string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryFailedFmt, what, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgScanFailedFmt, what, err)
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgRowIterationFmt, what, err)
	}
	return out, nil
}

// ---- Shared statements used by both the pool and transactions ----

func getClass(ctx context.Context, q querier, classID string) (*domain.Class, error) {
	if !validID(classID) {
		return nil, nil
	}
	query := `SELECT ` + classColumns + ` FROM classes WHERE id = $1`
	return getOne(ctx, q, "class", scanClass, query, classID)
}

func listClasses(ctx context.Context, q querier) ([]domain.ClassSummary, error) {
	query := `
		SELECT c.id, c.name, c.created_at, c.updated_at, COUNT(s.id)
		FROM classes c
		LEFT JOIN students s ON s.class_id = c.id
		GROUP BY c.id
		ORDER BY c.created_at DESC, c.name
	`
	return getMany(ctx, q, "classes", func(row pgx.Row) (*domain.ClassSummary, error) {
		var cs domain.ClassSummary
		err := row.Scan(&cs.ID, &cs.Name, &cs.CreatedAt, &cs.UpdatedAt, &cs.StudentCount)
		return &cs, err
	}, query)
}

func insertClass(ctx context.Context, q querier, class *domain.Class) error {
	query := `INSERT INTO classes (` + classColumns + `) VALUES ($1, $2, $3, $4)`
	if _, err := q.Exec(ctx, query, class.ID, class.Name, class.CreatedAt, class.UpdatedAt); err != nil {
		return fmt.Errorf(ErrMsgInsertFailedFmt, "class", err)
	}
	return nil
}

func insertStudent(ctx context.Context, q querier, s *domain.Student) error {
	query := `INSERT INTO students (` + studentColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := q.Exec(ctx, query, s.ID, s.ClassID, s.Name, s.OrderNumber, s.Avatar, s.TotalPoints, string(s.Level), s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf(ErrMsgInsertFailedFmt, "student", err)
	}
	return nil
}

func getReward(ctx context.Context, q querier, rewardID string) (*domain.Reward, error) {
	if !validID(rewardID) {
		return nil, nil
	}
	query := `SELECT ` + rewardColumns + ` FROM rewards WHERE id = $1`
	return getOne(ctx, q, "reward", scanReward, query, rewardID)
}
