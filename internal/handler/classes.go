package handler

import (
	"net/http"

	"github.com/osse101/ClassPoint_Go/internal/ledger"
	"github.com/osse101/ClassPoint_Go/internal/logger"
)

// ClassNameRequest is the body for creating or renaming a class
type ClassNameRequest struct {
	Name string `json:"name" validate:"required,notblank,max=100"`
}

// HandleListClasses lists classes with their student counts, newest first
// @Summary List classes
// @Tags classes
// @Produce json
// @Success 200 {array} domain.ClassSummary
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/classes [get]
func HandleListClasses(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		classes, err := svc.ListClasses(r.Context())
		if err != nil {
			respondServiceError(w, r, OpListClasses, err)
			return
		}
		respondJSON(w, http.StatusOK, classes)
	}
}

// HandleCreateClass creates a class
// @Summary Create class
// @Tags classes
// @Accept json
// @Produce json
// @Param request body ClassNameRequest true "Class name"
// @Success 201 {object} domain.Class
// @Failure 400 {object} ValidationErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/classes [post]
func HandleCreateClass(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClassNameRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create class"); err != nil {
			return
		}

		class, err := svc.CreateClass(r.Context(), req.Name)
		if err != nil {
			respondServiceError(w, r, OpCreateClass, err)
			return
		}

		logger.FromContext(r.Context()).Info("Class created", "class_id", class.ID, "name", class.Name)
		respondJSON(w, http.StatusCreated, class)
	}
}

// HandleRenameClass renames a class
// @Summary Rename class
// @Tags classes
// @Accept json
// @Produce json
// @Param classID path string true "Class ID"
// @Param request body ClassNameRequest true "New name"
// @Success 200 {object} domain.Class
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/classes/{classID} [patch]
func HandleRenameClass(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		classID, ok := GetPathParam(r, w, ParamClassID)
		if !ok {
			return
		}
		var req ClassNameRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Rename class"); err != nil {
			return
		}

		class, err := svc.RenameClass(r.Context(), classID, req.Name)
		if err != nil {
			respondServiceError(w, r, OpRenameClass, err)
			return
		}
		respondJSON(w, http.StatusOK, class)
	}
}

// HandleDeleteClass deletes an empty class
// @Summary Delete class
// @Description Fails with 400 while the class still has students
// @Tags classes
// @Produce json
// @Param classID path string true "Class ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/classes/{classID} [delete]
func HandleDeleteClass(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		classID, ok := GetPathParam(r, w, ParamClassID)
		if !ok {
			return
		}
		if err := svc.DeleteClass(r.Context(), classID); err != nil {
			respondServiceError(w, r, OpDeleteClass, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgClassDeleted})
	}
}

// HandleDeleteAllStudents removes every student of a class with their history
// @Summary Delete all students of a class
// @Tags classes
// @Produce json
// @Param classID path string true "Class ID"
// @Success 200 {object} DeletedCountResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/classes/{classID}/students [delete]
func HandleDeleteAllStudents(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		classID, ok := GetPathParam(r, w, ParamClassID)
		if !ok {
			return
		}
		n, err := svc.DeleteAllStudents(r.Context(), classID)
		if err != nil {
			respondServiceError(w, r, OpDeleteAllStudents, err)
			return
		}
		respondJSON(w, http.StatusOK, DeletedCountResponse{Message: MsgStudentsCleared, Deleted: n})
	}
}
