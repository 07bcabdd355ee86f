package handler

import (
	"net/http"

	"github.com/osse101/ClassPoint_Go/internal/domain"
	"github.com/osse101/ClassPoint_Go/internal/stats"
)

// HandleClassOverview returns the statistics screen of a class
// @Summary Class statistics
// @Description Level distribution, top reasons, 14-day trend and point totals
// @Tags stats
// @Produce json
// @Param classID path string true "Class ID"
// @Success 200 {object} domain.ClassOverview
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/classes/{classID}/stats [get]
func HandleClassOverview(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		classID, ok := GetPathParam(r, w, ParamClassID)
		if !ok {
			return
		}
		overview, err := svc.Overview(r.Context(), classID)
		if err != nil {
			respondServiceError(w, r, OpClassOverview, err)
			return
		}
		respondJSON(w, http.StatusOK, overview)
	}
}

// HandleLeaderboard returns the top students of a class by points
// @Summary Class leaderboard
// @Tags stats
// @Produce json
// @Param classID path string true "Class ID"
// @Param limit query int false "Entries (default 10)"
// @Success 200 {array} domain.LeaderboardEntry
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/classes/{classID}/leaderboard [get]
func HandleLeaderboard(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		classID, ok := GetPathParam(r, w, ParamClassID)
		if !ok {
			return
		}
		limit, ok := GetLimitParam(r, w, domain.DefaultLeaderboardLimit)
		if !ok {
			return
		}

		entries, err := svc.Leaderboard(r.Context(), classID, limit)
		if err != nil {
			respondServiceError(w, r, OpLeaderboard, err)
			return
		}
		respondJSON(w, http.StatusOK, entries)
	}
}
