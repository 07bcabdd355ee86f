package ledger

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/osse101/ClassPoint_Go/internal/domain"
	"github.com/osse101/ClassPoint_Go/internal/repository"
)

// fakeRepository is a stateful in-memory repository.Ledger. Transactions
// stage their writes and apply them on commit only. History and
// redemptions have no update or delete path.
type fakeRepository struct {
	mu          sync.Mutex
	classes     []domain.Class
	students    map[string]*domain.Student
	history     []domain.PointHistoryEntry
	redemptions []domain.RewardRedemption
	rewards     map[string]*domain.Reward

	// fault injection
	insertStudentErr func(student *domain.Student) error
	commitErr        error
	// lostCommitAck is returned once by a commit that did apply
	lostCommitAck error
	beginErr         error

	commits   int
	rollbacks int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		students: make(map[string]*domain.Student),
		rewards:  make(map[string]*domain.Reward),
	}
}

func (f *fakeRepository) addClass(id, name string) *domain.Class {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := domain.Class{ID: id, Name: name}
	f.classes = append(f.classes, c)
	return &c
}

func (f *fakeRepository) addStudent(id, classID, name string, points int, level domain.Level) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.students[id] = &domain.Student{ID: id, ClassID: classID, Name: name, TotalPoints: points, Level: level}
}

func (f *fakeRepository) addReward(r domain.Reward) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rewards[r.ID] = &r
}

func (f *fakeRepository) student(id string) domain.Student {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.students[id]
}

func (f *fakeRepository) historyFor(studentID string) []domain.PointHistoryEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.PointHistoryEntry
	for _, e := range f.history {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out
}

func (f *fakeRepository) studentsIn(classID string) []domain.Student {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.studentsInLocked(classID)
}

func (f *fakeRepository) studentsInLocked(classID string) []domain.Student {
	var out []domain.Student
	for _, s := range f.students {
		if s.ClassID == classID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderNumber < out[j].OrderNumber })
	return out
}

func (f *fakeRepository) classByName(name string) *domain.Class {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.classes {
		if c.Name == name {
			c := c
			return &c
		}
	}
	return nil
}

func (f *fakeRepository) GetClass(ctx context.Context, classID string) (*domain.Class, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.classes {
		if c.ID == classID {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) ListClasses(ctx context.Context) ([]domain.ClassSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listClassesLocked(), nil
}

// listClassesLocked returns classes newest first
func (f *fakeRepository) listClassesLocked() []domain.ClassSummary {
	out := make([]domain.ClassSummary, 0, len(f.classes))
	for i := len(f.classes) - 1; i >= 0; i-- {
		c := f.classes[i]
		out = append(out, domain.ClassSummary{Class: c, StudentCount: len(f.studentsInLocked(c.ID))})
	}
	return out
}

func (f *fakeRepository) InsertClass(ctx context.Context, class *domain.Class) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.classes = append(f.classes, *class)
	return nil
}

func (f *fakeRepository) UpdateClassName(ctx context.Context, classID, name string) (*domain.Class, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.classes {
		if f.classes[i].ID == classID {
			f.classes[i].Name = name
			c := f.classes[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) DeleteClass(ctx context.Context, classID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.classes {
		if f.classes[i].ID == classID {
			f.classes = append(f.classes[:i], f.classes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeRepository) GetStudent(ctx context.Context, studentID string) (*domain.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.students[studentID]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeRepository) ListStudents(ctx context.Context, classID string) ([]domain.Student, error) {
	return f.studentsIn(classID), nil
}

func (f *fakeRepository) CountStudents(ctx context.Context, classID string) (int, error) {
	return len(f.studentsIn(classID)), nil
}

func (f *fakeRepository) InsertStudent(ctx context.Context, student *domain.Student) error {
	if f.insertStudentErr != nil {
		if err := f.insertStudentErr(student); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *student
	f.students[student.ID] = &cp
	return nil
}

func (f *fakeRepository) DeleteStudent(ctx context.Context, studentID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.students[studentID]; !ok {
		return false, nil
	}
	f.deleteStudentLocked(studentID)
	return true, nil
}

func (f *fakeRepository) deleteStudentLocked(studentID string) {
	delete(f.students, studentID)
	history := f.history[:0]
	for _, e := range f.history {
		if e.StudentID != studentID {
			history = append(history, e)
		}
	}
	f.history = history
	redemptions := f.redemptions[:0]
	for _, r := range f.redemptions {
		if r.StudentID != studentID {
			redemptions = append(redemptions, r)
		}
	}
	f.redemptions = redemptions
}

func (f *fakeRepository) DeleteStudentsInClass(ctx context.Context, classID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, s := range f.studentsInLocked(classID) {
		f.deleteStudentLocked(s.ID)
		n++
	}
	return n, nil
}

func (f *fakeRepository) ListHistory(ctx context.Context, studentID string, limit int) ([]domain.PointHistoryEntry, error) {
	entries := f.historyFor(studentID)
	// newest first
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (f *fakeRepository) ListClassHistory(ctx context.Context, classID string) ([]domain.PointHistoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.PointHistoryEntry
	for _, e := range f.history {
		if s, ok := f.students[e.StudentID]; ok && s.ClassID == classID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeRepository) ListRedemptions(ctx context.Context, studentID string) ([]domain.RewardRedemption, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.RewardRedemption
	for i := len(f.redemptions) - 1; i >= 0; i-- {
		if f.redemptions[i].StudentID == studentID {
			out = append(out, f.redemptions[i])
		}
	}
	return out, nil
}

func (f *fakeRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	return &fakeTx{repo: f}, nil
}

// fakeTx stages writes until Commit
type fakeTx struct {
	repo   *fakeRepository
	staged []func()
	done   bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.done {
		return errors.New(domain.ErrMsgTxClosed)
	}
	if t.repo.commitErr != nil {
		return t.repo.commitErr
	}
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	for _, apply := range t.staged {
		apply()
	}
	t.done = true
	t.repo.commits++
	if err := t.repo.lostCommitAck; err != nil {
		t.repo.lostCommitAck = nil
		return err
	}
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if t.done {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.done = true
	t.repo.mu.Lock()
	t.repo.rollbacks++
	t.repo.mu.Unlock()
	return nil
}

func (t *fakeTx) GetStudentForUpdate(ctx context.Context, studentID string) (*domain.Student, error) {
	return t.repo.GetStudent(ctx, studentID)
}

func (t *fakeTx) UpdateStudentBalance(ctx context.Context, studentID string, totalPoints int, level domain.Level) error {
	t.staged = append(t.staged, func() {
		if s, ok := t.repo.students[studentID]; ok {
			s.TotalPoints = totalPoints
			s.Level = level
		}
	})
	return nil
}

func (t *fakeTx) InsertHistory(ctx context.Context, entry *domain.PointHistoryEntry) error {
	e := *entry
	t.staged = append(t.staged, func() { t.repo.history = append(t.repo.history, e) })
	return nil
}

func (t *fakeTx) InsertRedemption(ctx context.Context, redemption *domain.RewardRedemption) error {
	r := *redemption
	t.staged = append(t.staged, func() { t.repo.redemptions = append(t.repo.redemptions, r) })
	return nil
}

func (t *fakeTx) GetReward(ctx context.Context, rewardID string) (*domain.Reward, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	if r, ok := t.repo.rewards[rewardID]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (t *fakeTx) ListClasses(ctx context.Context) ([]domain.ClassSummary, error) {
	return t.repo.ListClasses(ctx)
}

func (t *fakeTx) InsertClass(ctx context.Context, class *domain.Class) error {
	c := *class
	t.staged = append(t.staged, func() { t.repo.classes = append(t.repo.classes, c) })
	return nil
}

func (t *fakeTx) InsertStudent(ctx context.Context, student *domain.Student) error {
	if t.repo.insertStudentErr != nil {
		if err := t.repo.insertStudentErr(student); err != nil {
			return err
		}
	}
	s := *student
	t.staged = append(t.staged, func() { t.repo.students[s.ID] = &s })
	return nil
}
