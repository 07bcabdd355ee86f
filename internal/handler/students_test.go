package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/ClassPoint_Go/internal/domain"
)

const testClassID = "0e8c5d3a-1b2f-4c7d-9e6a-5f4b3c2d1e0f"

func TestHandleListStudents(t *testing.T) {
	t.Run("passes the sort mode through", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("ListStudents", mock.Anything, "c1", domain.SortByName).Return([]domain.Student{
			{ID: "s2", Name: "An"}, {ID: "s1", Name: "Bình"},
		}, nil)

		rec := httptest.NewRecorder()
		req := newRequest(t, http.MethodGet, "/?sort=name", nil, map[string]string{ParamClassID: "c1"})
		HandleListStudents(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		got := decodeBody[[]domain.Student](t, rec)
		assert.Equal(t, "An", got[0].Name)
		svc.AssertExpectations(t)
	})

	t.Run("unsupported sort is 400", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("ListStudents", mock.Anything, "c1", domain.StudentSort("age")).Return(nil, domain.ErrInvalidSort)

		rec := httptest.NewRecorder()
		req := newRequest(t, http.MethodGet, "/?sort=age", nil, map[string]string{ParamClassID: "c1"})
		HandleListStudents(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), domain.ErrMsgInvalidSort)
	})
}

func TestHandleAddStudent(t *testing.T) {
	svc := new(MockLedgerService)
	svc.On("AddStudent", mock.Anything, "c1", "Nguyễn Văn An", 4).Return(&domain.Student{
		ID: "s1", ClassID: "c1", Name: "Nguyễn Văn An", OrderNumber: 4, Level: domain.LevelHat,
	}, nil)

	rec := httptest.NewRecorder()
	req := newRequest(t, http.MethodPost, "/", AddStudentRequest{Name: "Nguyễn Văn An", OrderNumber: 4},
		map[string]string{ParamClassID: "c1"})
	HandleAddStudent(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	got := decodeBody[domain.Student](t, rec)
	assert.Equal(t, 0, got.TotalPoints)
	assert.Equal(t, domain.LevelHat, got.Level)
}

func TestHandleGetStudent_NotFound(t *testing.T) {
	svc := new(MockLedgerService)
	svc.On("GetStudent", mock.Anything, "s9").Return(nil, domain.ErrStudentNotFound)

	rec := httptest.NewRecorder()
	HandleGetStudent(svc).ServeHTTP(rec, newRequest(t, http.MethodGet, "/", nil, map[string]string{ParamStudentID: "s9"}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "student not found", decodeBody[ErrorResponse](t, rec).Error)
}

func TestHandleDeleteStudent(t *testing.T) {
	svc := new(MockLedgerService)
	svc.On("DeleteStudent", mock.Anything, "s1").Return(nil)

	rec := httptest.NewRecorder()
	HandleDeleteStudent(svc).ServeHTTP(rec, newRequest(t, http.MethodDelete, "/", nil, map[string]string{ParamStudentID: "s1"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, MsgStudentDeleted, decodeBody[SuccessResponse](t, rec).Message)
}

func TestHandleStudentHistory(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantLimit  int
		wantStatus int
	}{
		{"default limit", "/", domain.StudentHistoryLimit, http.StatusOK},
		{"explicit limit", "/?limit=5", 5, http.StatusOK},
		{"zero means all", "/?limit=0", 0, http.StatusOK},
		{"negative limit", "/?limit=-1", 0, http.StatusBadRequest},
		{"non numeric limit", "/?limit=ten", 0, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockLedgerService)
			if tt.wantStatus == http.StatusOK {
				svc.On("StudentHistory", mock.Anything, "s1", tt.wantLimit).Return([]domain.PointHistoryEntry{}, nil)
			}

			rec := httptest.NewRecorder()
			req := newRequest(t, http.MethodGet, tt.target, nil, map[string]string{ParamStudentID: "s1"})
			HandleStudentHistory(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleStudentRedemptions(t *testing.T) {
	svc := new(MockLedgerService)
	svc.On("StudentRedemptions", mock.Anything, "s1").Return([]domain.RewardRedemption{
		{ID: "rd1", RewardName: "Kẹo", PointsSpent: 20},
	}, nil)

	rec := httptest.NewRecorder()
	HandleStudentRedemptions(svc).ServeHTTP(rec, newRequest(t, http.MethodGet, "/", nil, map[string]string{ParamStudentID: "s1"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]domain.RewardRedemption](t, rec), 1)
}

func TestHandleStudentSummary(t *testing.T) {
	svc := new(MockStatsService)
	svc.On("StudentSummary", mock.Anything, "s1").Return(&domain.StudentSummary{
		Student:    &domain.Student{ID: "s1", TotalPoints: 75, Level: domain.LevelNayMam},
		Progress:   domain.LevelProgress{Current: 25, Span: 50, Percentage: 50, PointsNeeded: 25},
		TotalAdded: 90, TotalDeducted: 15,
	}, nil)

	rec := httptest.NewRecorder()
	HandleStudentSummary(svc).ServeHTTP(rec, newRequest(t, http.MethodGet, "/", nil, map[string]string{ParamStudentID: "s1"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[domain.StudentSummary](t, rec)
	assert.Equal(t, 50, got.Progress.Percentage)
	assert.Equal(t, 15, got.TotalDeducted)
}

func TestHandleImportStudents(t *testing.T) {
	className := "10A"
	body := ImportStudentsRequest{
		DefaultClassID: testClassID,
		Rows: []ImportRowRequest{
			{Name: "An", OrderNumber: 1},
			{Name: "Bình", OrderNumber: 1, ClassName: &className},
		},
	}
	expectedRows := []domain.ImportRow{
		{Name: "An", OrderNumber: 1},
		{Name: "Bình", OrderNumber: 1, ClassName: &className},
	}

	t.Run("all groups committed", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("ImportStudents", mock.Anything, testClassID, expectedRows).Return(&domain.ImportResult{
			Groups: []domain.ImportGroupResult{
				{ClassName: "", ClassID: testClassID, Imported: 1},
				{ClassName: "10A", ClassID: "c2", ClassCreated: true, Imported: 1},
			},
			TotalImported: 2,
		}, nil)

		rec := httptest.NewRecorder()
		HandleImportStudents(svc).ServeHTTP(rec, newRequest(t, http.MethodPost, "/", body, nil))

		assert.Equal(t, http.StatusCreated, rec.Code)
		got := decodeBody[domain.ImportResult](t, rec)
		assert.Equal(t, 2, got.TotalImported)
		assert.True(t, got.Groups[1].ClassCreated)
	})

	t.Run("partial import is 207 with the group report", func(t *testing.T) {
		ok := domain.ImportGroupResult{ClassName: "", ClassID: testClassID, Imported: 1}
		failed := domain.ImportGroupResult{ClassName: "10A"}.WithError(domain.NewPersistenceError("import group", assert.AnError))
		result := &domain.ImportResult{Groups: []domain.ImportGroupResult{ok, failed}, TotalImported: 1}

		svc := new(MockLedgerService)
		svc.On("ImportStudents", mock.Anything, testClassID, expectedRows).
			Return(result, &domain.ImportError{Succeeded: []domain.ImportGroupResult{ok}, Failed: []domain.ImportGroupResult{failed}})

		rec := httptest.NewRecorder()
		HandleImportStudents(svc).ServeHTTP(rec, newRequest(t, http.MethodPost, "/", body, nil))

		assert.Equal(t, http.StatusMultiStatus, rec.Code)
		got := decodeBody[ImportPartialResponse](t, rec)
		assert.Equal(t, ErrMsgImportPartial, got.Error)
		if assert.NotNil(t, got.Result) {
			assert.Equal(t, 1, got.Result.TotalImported)
			assert.NotEmpty(t, got.Result.Groups[1].Error)
		}
	})

	t.Run("missing default class is 400", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("ImportStudents", mock.Anything, "", mock.Anything).Return(nil, domain.ErrNoDefaultClass)

		rec := httptest.NewRecorder()
		req := newRequest(t, http.MethodPost, "/", `{"rows":[{"name":"An","order_number":1}]}`, nil)
		HandleImportStudents(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), domain.ErrMsgNoDefaultClass)
	})

	t.Run("request validation", func(t *testing.T) {
		tests := map[string]string{
			"no rows":          `{"rows":[]}`,
			"bad class id":     `{"default_class_id":"10A","rows":[{"name":"An"}]}`,
			"negative order":   `{"rows":[{"name":"An","order_number":-1}]}`,
			"name too long":    `{"rows":[{"name":"` + strings.Repeat("a", 101) + `"}]}`,
			"not a json array": `{"rows":"An"}`,
		}
		for name, raw := range tests {
			t.Run(name, func(t *testing.T) {
				svc := new(MockLedgerService)

				rec := httptest.NewRecorder()
				HandleImportStudents(svc).ServeHTTP(rec, newRequest(t, http.MethodPost, "/", raw, nil))

				assert.Equal(t, http.StatusBadRequest, rec.Code)
				svc.AssertNotCalled(t, "ImportStudents")
			})
		}
	})
}
