package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/ClassPoint_Go/internal/domain"
	"github.com/osse101/ClassPoint_Go/internal/metrics"
)

const testRewardID = "7b1f3c2e-9a4d-4e8b-8c61-2f5d0a9e4b13"

func TestHandleApplyPoints(t *testing.T) {
	t.Run("level up is reported", func(t *testing.T) {
		// ARRANGE
		svc := new(MockLedgerService)
		reason := "Phát biểu"
		result := &domain.PointChangeResult{
			Student: &domain.Student{ID: "s1", TotalPoints: 53, Level: domain.LevelNayMam},
			Entry:   &domain.PointHistoryEntry{ID: "h1", StudentID: "s1", Change: 5, Reason: &reason, PointsAfter: 53},
			LevelUp: &domain.LevelUpEvent{StudentID: "s1", OldLevel: domain.LevelHat, NewLevel: domain.LevelNayMam},
		}
		svc.On("ApplyPointChange", mock.Anything, "s1", 5, &reason).Return(result, nil)

		req := newRequest(t, http.MethodPost, "/api/v1/students/s1/points",
			PointChangeRequest{Delta: 5, Reason: &reason}, map[string]string{ParamStudentID: "s1"})
		rec := httptest.NewRecorder()

		// ACT
		HandleApplyPoints(svc).ServeHTTP(rec, req)

		// ASSERT
		assert.Equal(t, http.StatusOK, rec.Code)
		got := decodeBody[domain.PointChangeResult](t, rec)
		assert.Equal(t, 53, got.Student.TotalPoints)
		if assert.NotNil(t, got.LevelUp) {
			assert.Equal(t, domain.LevelNayMam, got.LevelUp.NewLevel)
		}
		svc.AssertExpectations(t)
	})

	t.Run("negative delta without reason", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("ApplyPointChange", mock.Anything, "s1", -10, (*string)(nil)).Return(&domain.PointChangeResult{
			Student: &domain.Student{ID: "s1", TotalPoints: 0, Level: domain.LevelHat},
			Entry:   &domain.PointHistoryEntry{Change: -10, PointsAfter: 0},
		}, nil)

		req := newRequest(t, http.MethodPost, "/", `{"delta":-10}`, map[string]string{ParamStudentID: "s1"})
		rec := httptest.NewRecorder()
		HandleApplyPoints(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "level_up")
		svc.AssertExpectations(t)
	})

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"malformed json", `{"delta":`, http.StatusBadRequest},
		{"unknown field", `{"delta":1,"bonus":true}`, http.StatusBadRequest},
		{"delta too large", `{"delta":100000}`, http.StatusBadRequest},
		{"reason too long", fmt.Sprintf(`{"delta":1,"reason":"%0201d"}`, 0), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockLedgerService)
			req := newRequest(t, http.MethodPost, "/", tt.body, map[string]string{ParamStudentID: "s1"})
			rec := httptest.NewRecorder()

			HandleApplyPoints(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			svc.AssertNotCalled(t, "ApplyPointChange")
		})
	}

	t.Run("unknown student is 404", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("ApplyPointChange", mock.Anything, "missing", 1, (*string)(nil)).
			Return(nil, fmt.Errorf("%w (student missing)", domain.ErrStudentNotFound))

		req := newRequest(t, http.MethodPost, "/", `{"delta":1}`, map[string]string{ParamStudentID: "missing"})
		rec := httptest.NewRecorder()
		HandleApplyPoints(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "missing")
	})

	t.Run("persistence failure is 503 and counted", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("ApplyPointChange", mock.Anything, "s1", 1, (*string)(nil)).
			Return(nil, domain.NewPersistenceError("apply", assert.AnError))
		counter := metrics.LedgerErrors.WithLabelValues(OpApplyPoints, KindPersistence)
		before := testutil.ToFloat64(counter)

		req := newRequest(t, http.MethodPost, "/", `{"delta":1}`, map[string]string{ParamStudentID: "s1"})
		rec := httptest.NewRecorder()
		HandleApplyPoints(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
		assert.Equal(t, 1.0, testutil.ToFloat64(counter)-before)
	})
}

func TestHandleRedeemReward(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("RedeemReward", mock.Anything, "s1", testRewardID, 80).Return(&domain.RewardRedemption{
			ID: "rd1", StudentID: "s1", RewardID: testRewardID, RewardName: "Bút chì", PointsSpent: 80,
		}, nil)

		req := newRequest(t, http.MethodPost, "/", RedeemRequest{RewardID: testRewardID, PointsCost: 80},
			map[string]string{ParamStudentID: "s1"})
		rec := httptest.NewRecorder()
		HandleRedeemReward(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		got := decodeBody[domain.RewardRedemption](t, rec)
		assert.Equal(t, "Bút chì", got.RewardName)
		svc.AssertExpectations(t)
	})

	t.Run("insufficient balance is 409", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("RedeemReward", mock.Anything, "s1", testRewardID, 100).
			Return(nil, fmt.Errorf("%w: have 80, need 100", domain.ErrInsufficientBalance))

		req := newRequest(t, http.MethodPost, "/", RedeemRequest{RewardID: testRewardID, PointsCost: 100},
			map[string]string{ParamStudentID: "s1"})
		rec := httptest.NewRecorder()
		HandleRedeemReward(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), domain.ErrMsgInsufficientBalance)
	})

	t.Run("inactive reward is 400", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("RedeemReward", mock.Anything, "s1", testRewardID, 10).Return(nil, domain.ErrRewardInactive)

		req := newRequest(t, http.MethodPost, "/", RedeemRequest{RewardID: testRewardID, PointsCost: 10},
			map[string]string{ParamStudentID: "s1"})
		rec := httptest.NewRecorder()
		HandleRedeemReward(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("request validation", func(t *testing.T) {
		for name, body := range map[string]string{
			"missing reward": `{"points_cost":10}`,
			"bad reward id":  `{"reward_id":"nope","points_cost":10}`,
			"zero cost":      fmt.Sprintf(`{"reward_id":"%s","points_cost":0}`, testRewardID),
			"negative cost":  fmt.Sprintf(`{"reward_id":"%s","points_cost":-5}`, testRewardID),
		} {
			t.Run(name, func(t *testing.T) {
				svc := new(MockLedgerService)
				req := newRequest(t, http.MethodPost, "/", body, map[string]string{ParamStudentID: "s1"})
				rec := httptest.NewRecorder()

				HandleRedeemReward(svc).ServeHTTP(rec, req)

				assert.Equal(t, http.StatusBadRequest, rec.Code)
				resp := decodeBody[ValidationErrorResponse](t, rec)
				assert.Equal(t, ErrMsgInvalidRequestSummary, resp.Error)
				svc.AssertNotCalled(t, "RedeemReward")
			})
		}
	})
}
