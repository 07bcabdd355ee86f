package handler

import (
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/ClassPoint_Go/internal/domain"
	"github.com/osse101/ClassPoint_Go/internal/metrics"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantKind    string
		wantMessage string
	}{
		{"not found", domain.ErrStudentNotFound, http.StatusNotFound, KindNotFound, "student not found"},
		{"validation", domain.ErrEmptyName, http.StatusBadRequest, KindValidation, domain.ErrEmptyName.Error()},
		{"insufficient balance", domain.ErrInsufficientBalance, http.StatusConflict, KindInsufficientBalance, domain.ErrMsgInsufficientBalance},
		{"threshold conflict", domain.ErrThresholdConflict, http.StatusConflict, KindConflict, domain.ErrThresholdConflict.Error()},
		{"persistence", domain.NewPersistenceError("save", fmt.Errorf("pq: password leaked")), http.StatusServiceUnavailable, KindPersistence, ErrMsgUnavailableError},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, KindUnknown, ErrMsgGenericServerError},
		{"nil", nil, http.StatusInternalServerError, KindUnknown, ErrMsgGenericServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, kind, message := mapServiceError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestRespondServiceError_CountsKind(t *testing.T) {
	counter := metrics.LedgerErrors.WithLabelValues(OpRedeemReward, KindInsufficientBalance)
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	respondServiceError(rec, httptest.NewRequest(http.MethodPost, "/", nil), OpRedeemReward, domain.ErrInsufficientBalance)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(counter)-before)
}

func TestRespondJSON(t *testing.T) {
	t.Run("writes status and content type", func(t *testing.T) {
		rec := httptest.NewRecorder()
		respondJSON(rec, http.StatusCreated, SuccessResponse{Message: "ok"})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"message":"ok"}`, rec.Body.String())
	})

	t.Run("encoding failure is a clean 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		respondJSON(rec, http.StatusOK, map[string]float64{"bad": math.Inf(1)})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"`+ErrMsgGenericServerError+`"}`, rec.Body.String())
	})
}
