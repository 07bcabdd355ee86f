package handler

import (
	"net/http"

	"github.com/osse101/ClassPoint_Go/internal/domain"
	"github.com/osse101/ClassPoint_Go/internal/reward"
)

// CreateRewardRequest is the body for adding a catalog item
type CreateRewardRequest struct {
	Name        string  `json:"name" validate:"required,notblank,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Cost        int     `json:"cost" validate:"required,min=1"`
	Icon        string  `json:"icon,omitempty" validate:"max=16"`
}

// UpdateRewardRequest is a partial update; omitted fields are unchanged
type UpdateRewardRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,notblank,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Cost        *int    `json:"cost,omitempty" validate:"omitempty,min=1"`
	Icon        *string `json:"icon,omitempty" validate:"omitempty,max=16"`
	OrderNumber *int    `json:"order_number,omitempty" validate:"omitempty,min=0"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// HandleListRewards lists a class catalog by display order
// @Summary List rewards
// @Tags rewards
// @Produce json
// @Param classID path string true "Class ID"
// @Param active query bool false "Only active rewards"
// @Success 200 {array} domain.Reward
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/classes/{classID}/rewards [get]
func HandleListRewards(svc reward.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		classID, ok := GetPathParam(r, w, ParamClassID)
		if !ok {
			return
		}
		activeOnly, ok := GetBoolQueryParam(r, w, QueryParamActive, ErrMsgInvalidActiveFlag)
		if !ok {
			return
		}

		var (
			rewards []domain.Reward
			err     error
		)
		if activeOnly {
			rewards, err = svc.ListActive(r.Context(), classID)
		} else {
			rewards, err = svc.List(r.Context(), classID)
		}
		if err != nil {
			respondServiceError(w, r, OpListRewards, err)
			return
		}
		respondJSON(w, http.StatusOK, rewards)
	}
}

// HandleAddReward adds a reward at the end of the catalog
// @Summary Add reward
// @Tags rewards
// @Accept json
// @Produce json
// @Param classID path string true "Class ID"
// @Param request body CreateRewardRequest true "Reward"
// @Success 201 {object} domain.Reward
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/classes/{classID}/rewards [post]
func HandleAddReward(svc reward.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		classID, ok := GetPathParam(r, w, ParamClassID)
		if !ok {
			return
		}
		var req CreateRewardRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add reward"); err != nil {
			return
		}

		created, err := svc.Add(r.Context(), classID, domain.NewReward{
			Name:        req.Name,
			Description: req.Description,
			Cost:        req.Cost,
			Icon:        req.Icon,
		})
		if err != nil {
			respondServiceError(w, r, OpAddReward, err)
			return
		}
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleUpdateReward applies a partial update
// @Summary Update reward
// @Tags rewards
// @Accept json
// @Produce json
// @Param rewardID path string true "Reward ID"
// @Param request body UpdateRewardRequest true "Fields to change"
// @Success 200 {object} domain.Reward
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/rewards/{rewardID} [patch]
func HandleUpdateReward(svc reward.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rewardID, ok := GetPathParam(r, w, ParamRewardID)
		if !ok {
			return
		}
		var req UpdateRewardRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update reward"); err != nil {
			return
		}

		updated, err := svc.Update(r.Context(), rewardID, domain.RewardUpdate{
			Name:        req.Name,
			Description: req.Description,
			Cost:        req.Cost,
			Icon:        req.Icon,
			OrderNumber: req.OrderNumber,
			IsActive:    req.IsActive,
		})
		if err != nil {
			respondServiceError(w, r, OpUpdateReward, err)
			return
		}
		respondJSON(w, http.StatusOK, updated)
	}
}

// HandleDeleteReward removes a reward. Past redemptions keep their snapshot.
// @Summary Delete reward
// @Tags rewards
// @Produce json
// @Param rewardID path string true "Reward ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/rewards/{rewardID} [delete]
func HandleDeleteReward(svc reward.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rewardID, ok := GetPathParam(r, w, ParamRewardID)
		if !ok {
			return
		}
		if err := svc.Delete(r.Context(), rewardID); err != nil {
			respondServiceError(w, r, OpDeleteReward, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRewardDeleted})
	}
}
