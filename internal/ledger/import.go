package ledger

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/ClassPoint_Go/internal/domain"
	"github.com/osse101/ClassPoint_Go/internal/event"
	"github.com/osse101/ClassPoint_Go/internal/logger"
	"github.com/osse101/ClassPoint_Go/internal/repository"
)

// importGroup collects the rows destined for one class
type importGroup struct {
	key       string // folded class name, empty for the default class
	className string
	rows      []domain.ImportRow
}

// ImportStudents adds students in bulk. Rows are grouped by class name
// (compared case-insensitively) and each group is committed on its own, in
// the order the class first appears. Rows without a class go to
// defaultClassID. When a group fails the others still commit and the
// returned error is a *domain.ImportError.
func (s *service) ImportStudents(ctx context.Context, defaultClassID string, rows []domain.ImportRow) (*domain.ImportResult, error) {
	log := logger.FromContext(ctx)

	groups, err := groupImportRows(rows, defaultClassID)
	if err != nil {
		return nil, err
	}

	var defaultClass *domain.Class
	if hasDefaultGroup(groups) {
		defaultClass, err = s.getClass(ctx, OpImportGroup, defaultClassID)
		if err != nil {
			return nil, err
		}
	}

	unlock := s.locks.Lock(classesLockKey)
	defer unlock()

	result := &domain.ImportResult{Groups: make([]domain.ImportGroupResult, 0, len(groups))}
	for _, g := range groups {
		gr := s.importGroup(ctx, g, defaultClass)
		if gr.Failed() {
			log.Warn(LogMsgImportGroupFailed, "class", gr.ClassName, "error", gr.Err())
		} else {
			result.TotalImported += gr.Imported
			log.Info(LogMsgImportGroupDone, "class", gr.ClassName, "class_id", gr.ClassID, "imported", gr.Imported, "created", gr.ClassCreated)
		}
		result.Groups = append(result.Groups, gr)
	}

	failed := result.Failed()
	log.Info(LogMsgImportFinished, "imported", result.TotalImported, "groups", len(result.Groups), "failed_groups", len(failed))
	s.publish(ctx, event.NewStudentsImportedEvent(result))

	if len(failed) > 0 {
		succeeded := make([]domain.ImportGroupResult, 0, len(result.Groups)-len(failed))
		for _, g := range result.Groups {
			if !g.Failed() {
				succeeded = append(succeeded, g)
			}
		}
		return result, &domain.ImportError{Succeeded: succeeded, Failed: failed}
	}
	return result, nil
}

// importGroup commits one group in its own transaction
func (s *service) importGroup(ctx context.Context, g importGroup, defaultClass *domain.Class) domain.ImportGroupResult {
	gr := domain.ImportGroupResult{ClassName: g.className}
	if g.key == "" {
		gr.ClassName = defaultClass.Name
	}

	err := s.inTx(ctx, OpImportGroup, func(ctx context.Context, tx repository.LedgerTx) error {
		// reset per attempt so a retried transaction reports cleanly
		gr.ClassID, gr.ClassCreated, gr.Imported = "", false, 0

		classID, created, err := s.resolveImportClass(ctx, tx, g, defaultClass)
		if err != nil {
			return err
		}
		gr.ClassID, gr.ClassCreated = classID, created

		now := s.now()
		for _, row := range g.rows {
			student := &domain.Student{
				ID:          s.newID(),
				ClassID:     classID,
				Name:        strings.TrimSpace(row.Name),
				OrderNumber: row.OrderNumber,
				Level:       domain.LevelHat,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := tx.InsertStudent(ctx, student); err != nil {
				return fmt.Errorf("insert student %q: %w", student.Name, err)
			}
			gr.Imported++
		}
		return nil
	})
	if err != nil {
		return domain.ImportGroupResult{ClassName: gr.ClassName}.WithError(err)
	}
	return gr
}

func (s *service) resolveImportClass(ctx context.Context, tx repository.LedgerTx, g importGroup, defaultClass *domain.Class) (string, bool, error) {
	if g.key == "" {
		return defaultClass.ID, false, nil
	}

	classes, err := tx.ListClasses(ctx)
	if err != nil {
		return "", false, err
	}
	fold := cases.Fold()
	for _, c := range classes {
		if fold.String(strings.TrimSpace(c.Name)) == g.key {
			return c.ID, false, nil
		}
	}

	class := s.newClass(g.className)
	if err := tx.InsertClass(ctx, class); err != nil {
		return "", false, err
	}
	return class.ID, true, nil
}

// groupImportRows validates every row and groups them by folded class name
// in first-appearance order. No group is returned when any row is invalid.
func groupImportRows(rows []domain.ImportRow, defaultClassID string) ([]importGroup, error) {
	if len(rows) == 0 {
		return nil, domain.ErrEmptyImport
	}

	fold := cases.Fold()
	index := make(map[string]int)
	var groups []importGroup

	for i, row := range rows {
		if strings.TrimSpace(row.Name) == "" {
			return nil, fmt.Errorf(ErrMsgRowFmt, domain.ErrEmptyName, i+1)
		}

		var className string
		if row.ClassName != nil {
			className = strings.TrimSpace(*row.ClassName)
		}
		if className == "" && defaultClassID == "" {
			return nil, fmt.Errorf(ErrMsgRowFmt, domain.ErrNoDefaultClass, i+1)
		}

		key := fold.String(className)
		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, importGroup{key: key, className: className})
		}
		groups[pos].rows = append(groups[pos].rows, row)
	}
	return groups, nil
}

func hasDefaultGroup(groups []importGroup) bool {
	for _, g := range groups {
		if g.key == "" {
			return true
		}
	}
	return false
}
