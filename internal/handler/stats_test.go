package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/ClassPoint_Go/internal/domain"
)

func TestHandleClassOverview(t *testing.T) {
	svc := new(MockStatsService)
	svc.On("Overview", mock.Anything, "c1").Return(&domain.ClassOverview{
		ClassID:      "c1",
		StudentCount: 2,
		LevelDistribution: []domain.LevelCount{
			{Level: domain.LevelHat, Count: 1},
			{Level: domain.LevelNayMam, Count: 1},
			{Level: domain.LevelCayCon},
			{Level: domain.LevelCayTo},
		},
		Totals: domain.PointTotals{Positive: 60, Negative: 5},
	}, nil)

	rec := httptest.NewRecorder()
	HandleClassOverview(svc).ServeHTTP(rec, newRequest(t, http.MethodGet, "/", nil, map[string]string{ParamClassID: "c1"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[domain.ClassOverview](t, rec)
	assert.Len(t, got.LevelDistribution, 4)
	assert.Equal(t, 5, got.Totals.Negative)
}

func TestHandleLeaderboard(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantLimit  int
		wantStatus int
	}{
		{"default", "/", domain.DefaultLeaderboardLimit, http.StatusOK},
		{"custom", "/?limit=3", 3, http.StatusOK},
		{"malformed", "/?limit=x", 0, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockStatsService)
			if tt.wantStatus == http.StatusOK {
				svc.On("Leaderboard", mock.Anything, "c1", tt.wantLimit).Return([]domain.LeaderboardEntry{
					{Rank: 1, StudentID: "s1", Name: "An", TotalPoints: 120, Level: domain.LevelCayCon},
				}, nil)
			}

			rec := httptest.NewRecorder()
			req := newRequest(t, http.MethodGet, tt.target, nil, map[string]string{ParamClassID: "c1"})
			HandleLeaderboard(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleClassOverview_UnknownClass(t *testing.T) {
	svc := new(MockStatsService)
	svc.On("Overview", mock.Anything, "c9").Return(nil, domain.ErrClassNotFound)

	rec := httptest.NewRecorder()
	HandleClassOverview(svc).ServeHTTP(rec, newRequest(t, http.MethodGet, "/", nil, map[string]string{ParamClassID: "c9"}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
