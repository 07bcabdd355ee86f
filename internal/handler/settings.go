package handler

import (
	"net/http"

	"github.com/osse101/ClassPoint_Go/internal/domain"
	"github.com/osse101/ClassPoint_Go/internal/logger"
	"github.com/osse101/ClassPoint_Go/internal/thresholds"
)

// ThresholdsRequest carries a candidate threshold set. Out-of-order values
// are corrected before saving; a non-zero hat value is rejected.
type ThresholdsRequest struct {
	Hat    int `json:"hat"`
	NayMam int `json:"nay_mam"`
	CayCon int `json:"cay_con"`
	CayTo  int `json:"cay_to"`
}

// HandleGetThresholds returns the thresholds in force
// @Summary Get level thresholds
// @Tags settings
// @Produce json
// @Success 200 {object} domain.ThresholdConfig
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/settings/thresholds [get]
func HandleGetThresholds(svc thresholds.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := svc.Get(r.Context())
		if err != nil {
			respondServiceError(w, r, OpGetThresholds, err)
			return
		}
		respondJSON(w, http.StatusOK, cfg)
	}
}

// HandleSetThresholds saves a new threshold set
// @Summary Update level thresholds
// @Description Values are auto-corrected into strictly increasing order. Existing student levels are not recomputed.
// @Tags settings
// @Accept json
// @Produce json
// @Param request body ThresholdsRequest true "Thresholds"
// @Success 200 {object} domain.ThresholdConfig
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Changed concurrently"
// @Router /api/v1/settings/thresholds [put]
func HandleSetThresholds(svc thresholds.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ThresholdsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set thresholds"); err != nil {
			return
		}

		cfg, err := svc.Set(r.Context(), domain.LevelThresholds{
			Hat:    req.Hat,
			NayMam: req.NayMam,
			CayCon: req.CayCon,
			CayTo:  req.CayTo,
		})
		if err != nil {
			respondServiceError(w, r, OpSetThresholds, err)
			return
		}

		logger.FromContext(r.Context()).Info("Thresholds updated", "thresholds", cfg.Thresholds, "version", cfg.Version)
		respondJSON(w, http.StatusOK, cfg)
	}
}
