package handler

import (
	"net/http"

	"github.com/osse101/ClassPoint_Go/internal/ledger"
	"github.com/osse101/ClassPoint_Go/internal/logger"
)

// PointChangeRequest adjusts a balance by Delta. Negative deltas deduct.
type PointChangeRequest struct {
	Delta  int     `json:"delta" validate:"min=-10000,max=10000"`
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=200"`
}

// RedeemRequest spends PointsCost on a reward
type RedeemRequest struct {
	RewardID   string `json:"reward_id" validate:"required,uuid"`
	PointsCost int    `json:"points_cost" validate:"required,min=1"`
}

// HandleApplyPoints adds or deducts points
// @Summary Adjust points
// @Description The balance never goes below zero. level_up is set when a positive change raises the level.
// @Tags points
// @Accept json
// @Produce json
// @Param studentID path string true "Student ID"
// @Param request body PointChangeRequest true "Change"
// @Success 200 {object} domain.PointChangeResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/students/{studentID}/points [post]
func HandleApplyPoints(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID, ok := GetPathParam(r, w, ParamStudentID)
		if !ok {
			return
		}
		var req PointChangeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Apply points"); err != nil {
			return
		}

		result, err := svc.ApplyPointChange(r.Context(), studentID, req.Delta, req.Reason)
		if err != nil {
			respondServiceError(w, r, OpApplyPoints, err)
			return
		}

		log := logger.FromContext(r.Context())
		log.Info("Points applied", "student_id", studentID, "delta", req.Delta, "points_after", result.Student.TotalPoints)
		if result.LevelUp != nil {
			log.Info("Student leveled up", "student_id", studentID, "level", result.LevelUp.NewLevel)
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleRedeemReward redeems a reward for a student
// @Summary Redeem reward
// @Tags points
// @Accept json
// @Produce json
// @Param studentID path string true "Student ID"
// @Param request body RedeemRequest true "Redemption"
// @Success 201 {object} domain.RewardRedemption
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Insufficient balance"
// @Router /api/v1/students/{studentID}/redeem [post]
func HandleRedeemReward(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID, ok := GetPathParam(r, w, ParamStudentID)
		if !ok {
			return
		}
		var req RedeemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Redeem reward"); err != nil {
			return
		}

		redemption, err := svc.RedeemReward(r.Context(), studentID, req.RewardID, req.PointsCost)
		if err != nil {
			respondServiceError(w, r, OpRedeemReward, err)
			return
		}

		logger.FromContext(r.Context()).Info("Reward redeemed",
			"student_id", studentID, "reward_id", req.RewardID, "points_spent", redemption.PointsSpent)
		respondJSON(w, http.StatusCreated, redemption)
	}
}
